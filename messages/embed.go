// Package messages provides the generic user-facing strings the client falls
// back to when the service supplies no detail message. Catalogs are embedded
// per locale; the notes service ships with Chinese UI text, so both "zh" and
// "en" are bundled.
package messages

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
)

// defaultFS holds the embedded locale catalogs.
//
//go:embed locales/*.json
var defaultFS embed.FS

// Catalog maps message keys to localized strings.
type Catalog struct {
	locale  string
	entries map[string]string
}

// Load returns the catalog for the requested locale (e.g. "en", "zh").
func Load(locale string) (*Catalog, error) {
	if locale == "" {
		return nil, fmt.Errorf("locale cannot be empty")
	}
	b, err := fs.ReadFile(defaultFS, "locales/"+locale+".json")
	if err != nil {
		return nil, fmt.Errorf("unknown locale %q: %w", locale, err)
	}
	entries := make(map[string]string)
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("locale %q: %w", locale, err)
	}
	return &Catalog{locale: locale, entries: entries}, nil
}

// Locale returns the catalog's locale code.
func (c *Catalog) Locale() string { return c.locale }

// Get returns the localized string for key, or the key itself when the
// catalog has no entry — a visible placeholder beats an empty banner.
func (c *Catalog) Get(key string) string {
	if c == nil {
		return key
	}
	if v, ok := c.entries[key]; ok {
		return v
	}
	return key
}

// Locales returns all locale codes found under locales/.
func Locales() ([]string, error) {
	entries, err := fs.ReadDir(defaultFS, "locales")
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".json"); ok {
			out = append(out, name)
		}
	}
	return out, nil
}

package types

import (
	"fmt"
	"strings"
)

// ------------------------------
// Shared Validation
// ------------------------------

const maxUsernameLen = 64

// ValidateUsername rejects empty or oversized usernames before a request is
// built. The service performs its own existence checks.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username is required")
	}
	if len(username) > maxUsernameLen {
		return fmt.Errorf("username exceeds %d characters", maxUsernameLen)
	}
	return nil
}

// ValidatePassword rejects empty passwords.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ValidateID rejects non-positive entity ids. field names the id in the
// resulting error ("noteId", "folderId", ...).
func ValidateID(id int, field string) error {
	if id <= 0 {
		return fmt.Errorf("%s must be positive", field)
	}
	return nil
}

// ValidateTitle rejects empty titles.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

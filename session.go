package client

import (
	"context"
	"sync"
)

// Session is the gate in front of everything that needs a signed-in identity.
// It holds at most one username at a time; the client keeps no credentials
// and no token, only this in-memory flag.
type Session struct {
	c *Client

	mu       sync.Mutex
	username string
	onReset  []func()
}

// NewSession wraps c with login/logout/register handling.
func NewSession(c *Client) *Session {
	return &Session{c: c}
}

// Register creates a new account. It does not sign the user in.
func (s *Session) Register(ctx context.Context, username, password string) error {
	_, err := s.c.Register(ctx, username, password)
	return err
}

// Login verifies credentials and, on success, records username as the
// signed-in identity.
func (s *Session) Login(ctx context.Context, username, password string) error {
	if _, err := s.c.Login(ctx, username, password); err != nil {
		return err
	}
	s.mu.Lock()
	s.username = username
	s.mu.Unlock()
	return nil
}

// Logout clears the signed-in identity and resets every registered dependent
// (stores, controllers) so no state from the previous user leaks through.
func (s *Session) Logout() {
	s.mu.Lock()
	s.username = ""
	resets := make([]func(), len(s.onReset))
	copy(resets, s.onReset)
	s.mu.Unlock()

	for _, reset := range resets {
		reset()
	}
}

// ChangePassword rotates the signed-in user's password.
func (s *Session) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	user, err := s.require()
	if err != nil {
		return err
	}
	_, err = s.c.ChangePassword(ctx, ChangePasswordRequest{
		Username:    user,
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
	return err
}

// Username returns the signed-in identity, if any.
func (s *Session) Username() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username, s.username != ""
}

// SignedIn reports whether a user is signed in.
func (s *Session) SignedIn() bool {
	_, ok := s.Username()
	return ok
}

// require returns the signed-in username or ErrNotSignedIn.
func (s *Session) require() (string, error) {
	user, ok := s.Username()
	if !ok {
		return "", ErrNotSignedIn
	}
	return user, nil
}

// subscribeReset registers fn to run on Logout. Called by the constructors of
// session-scoped state holders.
func (s *Session) subscribeReset(fn func()) {
	s.mu.Lock()
	s.onReset = append(s.onReset, fn)
	s.mu.Unlock()
}

// ABOUTME: Session persistence for authenticated mode.
// ABOUTME: Stores the signed-in user identity next to the config file.

package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/fittrack/internal/config"
)

// ErrNotAuthenticated indicates an operation that needs a signed-in
// user was attempted without a session.
var ErrNotAuthenticated = errors.New("not authenticated: run 'fittrack login' first")

// Session is the persisted identity of the signed-in user. Every
// database row and notification channel is scoped by UserID.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionPath returns the session file path.
func SessionPath() string {
	return filepath.Join(config.Dir(), "session.json")
}

// Current loads the active session. Returns ErrNotAuthenticated when
// no session file exists.
func Current() (*Session, error) {
	data, err := os.ReadFile(SessionPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if s.UserID == "" {
		return nil, ErrNotAuthenticated
	}
	return &s, nil
}

// Login creates and persists a session for the given email. The user
// id is derived deterministically from the email so the same account
// maps to the same rows across machines.
func Login(email string) (*Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email: %q", email)
	}

	s := &Session{
		UserID:    uuid.NewSHA1(uuid.NameSpaceURL, []byte("fittrack:"+email)).String(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.save(); err != nil {
		return nil, err
	}
	return s, nil
}

// Logout removes the session file. Logging out twice is fine.
func Logout() error {
	err := os.Remove(SessionPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *Session) save() error {
	path := SessionPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"weddify/models"
)

// Storage keys shared with the original browser clients.
const (
	KeyToken           = "token"
	KeyUser            = "user"
	KeyUserRole        = "userRole"
	KeyRememberedEmail = "rememberedEmail"
)

var ErrNoSession = errors.New("no active session")

// Scope is a single key-value storage area. The durable scope survives
// restarts, the volatile scope lives for the current process only.
type Scope interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Store is the single injectable seam for auth state. All other
// components depend on this interface, never on the storage mechanism.
type Store interface {
	Get() (models.Session, bool)
	Set(s models.Session, remember bool) error
	Clear() error
	RememberedEmail() string
	SetRememberedEmail(email string) error
}

// CombinedStore keeps the session in one of two scopes depending on the
// remember-me choice, and always clears both.
type CombinedStore struct {
	durable  Scope
	volatile Scope
}

func NewStore(durable, volatile Scope) *CombinedStore {
	return &CombinedStore{durable: durable, volatile: volatile}
}

// Get returns the current session, consulting the durable scope first.
func (s *CombinedStore) Get() (models.Session, bool) {
	for _, scope := range []Scope{s.durable, s.volatile} {
		token, ok := scope.Get(KeyToken)
		if !ok || token == "" {
			continue
		}
		sess := models.Session{Token: token}
		if raw, ok := scope.Get(KeyUser); ok {
			if err := json.Unmarshal([]byte(raw), &sess.User); err == nil {
				sess.UserID = sess.User.ID
				sess.Role = sess.User.Role
			}
		}
		if raw, ok := scope.Get(KeyUserRole); ok {
			if role, err := models.ParseRole(raw); err == nil {
				sess.Role = role
			}
		}
		return sess, true
	}
	return models.Session{}, false
}

// Set persists the session, mirroring role and user for quick lookup.
func (s *CombinedStore) Set(sess models.Session, remember bool) error {
	scope := s.volatile
	if remember {
		scope = s.durable
	}
	// A fresh login supersedes whatever the other scope held.
	if err := s.Clear(); err != nil {
		return err
	}
	if err := scope.Set(KeyToken, sess.Token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	userData, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("failed to marshal session user: %w", err)
	}
	if err := scope.Set(KeyUser, string(userData)); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}
	if err := scope.Set(KeyUserRole, sess.Role.String()); err != nil {
		return fmt.Errorf("failed to persist role: %w", err)
	}
	return nil
}

// Clear removes the session keys from both scopes. The remembered email
// is deliberately left alone; it outlives the session.
func (s *CombinedStore) Clear() error {
	for _, scope := range []Scope{s.durable, s.volatile} {
		for _, key := range []string{KeyToken, KeyUser, KeyUserRole} {
			if err := scope.Delete(key); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *CombinedStore) RememberedEmail() string {
	email, _ := s.durable.Get(KeyRememberedEmail)
	return email
}

func (s *CombinedStore) SetRememberedEmail(email string) error {
	if email == "" {
		return s.durable.Delete(KeyRememberedEmail)
	}
	return s.durable.Set(KeyRememberedEmail, email)
}

// Package session holds the client-side record of the currently
// authenticated identity and role. The record is persisted across
// process restarts and cleared on logout; the route guard reads it to
// decide what a protected screen may show.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"onboarding_system/internal/domain"
)

// persisted is the on-disk layout: the identity blob and the role flag,
// written together so a reload never sees one without the other.
type persisted struct {
	User    *domain.Identity `json:"user"`     // Authenticated identity, nil when logged out
	IsAdmin string           `json:"is_admin"` // "true" only for the admin session
	Token   string           `json:"token"`    // Signed session token from the server
}

// Snapshot is the current session state as seen by callers.
type Snapshot struct {
	Identity *domain.Identity // nil while anonymous
	Role     domain.Role      // guest, user or admin
	Token    string           // Session token, empty while anonymous
	Loading  bool             // true only before the first Restore completes
}

// Store is the client-side session store. Single process, single
// writer; a mutex guards the in-memory state.
type Store struct {
	mu       sync.Mutex
	path     string // Session file location
	restored bool   // Restore runs at most once
	current  Snapshot
}

// NewStore creates a session store over the given file path. The store
// starts in the loading state until Restore is called.
func NewStore(path string) *Store {
	return &Store{
		path:    path,
		current: Snapshot{Role: domain.RoleGuest, Loading: true},
	}
}

// Restore reads the persisted session, if any. It is idempotent: only
// the first call attempts the read, and loading flips to false exactly
// once. A missing or unreadable file leaves the session anonymous.
func (s *Store) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.restored {
		return nil // Already restored
	}
	s.restored = true
	s.current.Loading = false

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // No persisted session, stay anonymous
		}
		return err
	}
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil || p.User == nil {
		return nil // Corrupt or empty session file, stay anonymous
	}
	// Reconstruct role from the persisted flag
	role := domain.RoleUser
	if p.IsAdmin == "true" {
		role = domain.RoleAdmin
	}
	s.current.Identity = p.User
	s.current.Role = role
	s.current.Token = p.Token
	return nil
}

// Set records a successful login and persists it durably before
// returning, so a restore in a fresh process reconstructs the same
// identity and role.
func (s *Store) Set(identity domain.Identity, role domain.Role, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := persisted{User: &identity, IsAdmin: "false", Token: token}
	if role == domain.RoleAdmin {
		p.IsAdmin = "true"
	}
	if err := s.persist(p); err != nil {
		return err
	}
	s.current.Identity = &identity
	s.current.Role = role
	s.current.Token = token
	return nil
}

// Clear logs the session out, removing the persisted record before
// dropping the in-memory state.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	s.current.Identity = nil
	s.current.Role = domain.RoleGuest
	s.current.Token = ""
	return nil
}

// Current returns the session state.
func (s *Store) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// persist writes the session file atomically: both keys land together
// or not at all.
func (s *Store) persist(p persisted) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

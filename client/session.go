package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

const sessionFileName = "session.json"

type sessionFile struct {
	Token string `json:"token,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// Session is the single authoritative holder of {token, user}. It persists
// to a JSON file under dir and survives restarts. Every consumer (the HTTP
// wrapper, the guards, callers) goes through this surface; nothing else
// reads or writes the file.
type Session struct {
	mu    sync.Mutex
	path  string
	token string
	user  *User
}

// NewSession loads any persisted session from dir. A missing or unparsable
// file yields a logged-out session; the broken file is discarded.
func NewSession(dir string) (*Session, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	s := &Session{path: filepath.Join(dir, sessionFileName)}

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	var f sessionFile
	if err := json.Unmarshal(raw, &f); err != nil {
		_ = os.Remove(s.path)
		return s, nil
	}
	s.token = f.Token
	s.user = f.User
	return s, nil
}

func (s *Session) persistLocked() {
	if s.token == "" && s.user == nil {
		_ = os.Remove(s.path)
		return
	}
	raw, err := json.Marshal(sessionFile{Token: s.token, User: s.user})
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, raw, 0600)
}

// Login stores the token and user durably and marks the session
// authenticated.
func (s *Session) Login(token string, user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	u := user
	s.user = &u
	s.persistLocked()
}

// Logout clears both fields from durable storage. Idempotent.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.persistLocked()
}

// UserPatch is a partial user update; nil fields are left untouched.
type UserPatch struct {
	Email *string
	Role  *string
}

// UpdateUser shallow-merges the patch into the current user. No-op when
// logged out.
func (s *Session) UpdateUser(patch UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	if patch.Email != nil {
		s.user.Email = *patch.Email
	}
	if patch.Role != nil {
		s.user.Role = *patch.Role
	}
	s.persistLocked()
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns a copy of the current user, or nil when logged out.
func (s *Session) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

// Recheck re-reads the persisted session and reports whether it is still
// intact. A session that disappeared or became unparsable on disk is
// cleared in memory too. Hosts run this periodically (once a minute is
// plenty) to force logout on external tampering.
func (s *Session) Recheck() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" && s.user == nil {
		return false
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.token = ""
		s.user = nil
		return false
	}
	var f sessionFile
	if err := json.Unmarshal(raw, &f); err != nil || f.Token == "" || f.User == nil {
		s.token = ""
		s.user = nil
		s.persistLocked()
		return false
	}
	s.token = f.Token
	s.user = f.User
	return true
}

package client

import (
	"context"
	"encoding/json"
	"math/rand"
	"os"
	"strings"
	"sync"
)

// SessionMode controls how tracking session ids are minted.
type SessionMode int

const (
	// PerCall mints a fresh session id for every tracking call. This is
	// the demo frontend's behavior and the default.
	PerCall SessionMode = iota
	// PerSession mints one id at registration and reuses it until logout.
	PerSession
)

type sessionState struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Session owns the active identity: Anonymous -> (Register) -> Active ->
// (Logout) -> Anonymous. When statePath is set the identity survives
// restarts via a small JSON file; corrupt state is discarded and the
// session falls back to anonymous.
type Session struct {
	mu        sync.RWMutex
	state     sessionState
	sessionID string

	mode      SessionMode
	statePath string
}

// NewSession restores a persisted identity when statePath names a readable,
// well-formed state file; otherwise it starts anonymous. statePath may be
// empty for a purely in-memory session.
func NewSession(statePath string, mode SessionMode) *Session {
	s := &Session{mode: mode, statePath: statePath}
	s.restore()
	return s
}

func (s *Session) restore() {
	if s.statePath == "" {
		return
	}
	raw, err := os.ReadFile(s.statePath)
	if err != nil {
		return
	}
	var st sessionState
	if err := json.Unmarshal(raw, &st); err != nil || st.UserID == "" {
		// corrupt local state: reset to anonymous
		_ = os.Remove(s.statePath)
		return
	}
	s.state = st
	if s.mode == PerSession {
		s.sessionID = newSessionID()
	}
}

// Register creates a backend identity and adopts it as the active user.
func (s *Session) Register(ctx context.Context, c *Client, name, email string) error {
	userID, err := c.CreateUser(ctx, name, email)
	if err != nil {
		return err
	}
	s.Activate(userID, name, email)
	return nil
}

// Activate transitions to Active with an already-issued user id.
func (s *Session) Activate(userID, name, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = sessionState{UserID: userID, Email: email, Name: name}
	if s.mode == PerSession {
		s.sessionID = newSessionID()
	}
	s.persist()
}

// Logout clears the identity in memory and on disk.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = sessionState{}
	s.sessionID = ""
	if s.statePath != "" {
		_ = os.Remove(s.statePath)
	}
}

func (s *Session) persist() {
	if s.statePath == "" {
		return
	}
	raw, err := json.Marshal(s.state)
	if err != nil {
		return
	}
	_ = os.WriteFile(s.statePath, raw, 0o600)
}

func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.UserID != ""
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.UserID
}

func (s *Session) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Name
}

func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Email
}

// SessionID returns the tracking session id per the configured mode.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.mode == PerSession && s.sessionID != "" {
		return s.sessionID
	}
	return newSessionID()
}

const sessionIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newSessionID mirrors the frontend's format: "session_" plus 9 base-36
// characters.
func newSessionID() string {
	var b strings.Builder
	b.WriteString("session_")
	for i := 0; i < 9; i++ {
		b.WriteByte(sessionIDAlphabet[rand.Intn(len(sessionIDAlphabet))])
	}
	return b.String()
}

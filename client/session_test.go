package client

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Lifecycle(t *testing.T) {
	s := NewSession("", PerCall)
	assert.False(t, s.Active())
	assert.Empty(t, s.UserID())

	s.Activate("u-1", "Demo", "demo@example.com")
	assert.True(t, s.Active())
	assert.Equal(t, "u-1", s.UserID())
	assert.Equal(t, "demo@example.com", s.Email())

	s.Logout()
	assert.False(t, s.Active())
	assert.Empty(t, s.UserID())
}

func TestSession_PersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s := NewSession(path, PerCall)
	s.Activate("u-1", "Demo", "demo@example.com")

	restored := NewSession(path, PerCall)
	assert.True(t, restored.Active())
	assert.Equal(t, "u-1", restored.UserID())
	assert.Equal(t, "Demo", restored.Name())
}

func TestSession_CorruptStateFallsBackToAnonymous(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"user_id": tru`), 0o600))

	s := NewSession(path, PerCall)
	assert.False(t, s.Active())

	// corrupt copy is discarded, not retried on the next start
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSession_LogoutRemovesState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewSession(path, PerCall)
	s.Activate("u-1", "Demo", "demo@example.com")
	require.FileExists(t, path)

	s.Logout()
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSession_IDModes(t *testing.T) {
	format := regexp.MustCompile(`^session_[0-9a-z]{9}$`)

	t.Run("per_call_mints_fresh", func(t *testing.T) {
		s := NewSession("", PerCall)
		s.Activate("u-1", "Demo", "demo@example.com")
		a, b := s.SessionID(), s.SessionID()
		assert.Regexp(t, format, a)
		assert.Regexp(t, format, b)
		assert.NotEqual(t, a, b)
	})

	t.Run("per_session_reuses", func(t *testing.T) {
		s := NewSession("", PerSession)
		s.Activate("u-1", "Demo", "demo@example.com")
		a, b := s.SessionID(), s.SessionID()
		assert.Regexp(t, format, a)
		assert.Equal(t, a, b)
	})

	t.Run("per_session_remints_after_relogin", func(t *testing.T) {
		s := NewSession("", PerSession)
		s.Activate("u-1", "Demo", "demo@example.com")
		first := s.SessionID()
		s.Logout()
		s.Activate("u-2", "Demo", "demo@example.com")
		assert.NotEqual(t, first, s.SessionID())
	})
}

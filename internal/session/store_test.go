package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_DefaultState(t *testing.T) {
	s := New(t.TempDir())

	assert.False(t, s.IsLoggedIn(), "never-written store reports logged out")
	iin, ok := s.CurrentUserIIN()
	assert.False(t, ok)
	assert.Equal(t, "", iin)
}

func TestStore_SaveAndRead(t *testing.T) {
	s := New(t.TempDir())

	require.NoError(t, s.Save("123456789012"))

	assert.True(t, s.IsLoggedIn())
	iin, ok := s.CurrentUserIIN()
	assert.True(t, ok)
	assert.Equal(t, "123456789012", iin)

	// idempotent
	require.NoError(t, s.Save("123456789012"))
	assert.True(t, s.IsLoggedIn())
}

func TestStore_ClearAfterRepeatedSaves(t *testing.T) {
	s := New(t.TempDir())

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Save("42"))
	}
	require.NoError(t, s.Clear())

	assert.False(t, s.IsLoggedIn())
	_, ok := s.CurrentUserIIN()
	assert.False(t, ok)

	// clearing an already-cleared store is fine
	require.NoError(t, s.Clear())
	assert.False(t, s.IsLoggedIn())
}

func TestStore_SurvivesReconstruction(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, New(dir).Save("777"))

	// a cold read through a fresh Store sees the persisted record
	s := New(dir)
	assert.True(t, s.IsLoggedIn())
	iin, ok := s.CurrentUserIIN()
	assert.True(t, ok)
	assert.Equal(t, "777", iin)
}

func TestStore_CorruptFileReadsAsLoggedOut(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("{broken"), 0o600))

	s := New(dir)
	assert.False(t, s.IsLoggedIn())
	_, ok := s.CurrentUserIIN()
	assert.False(t, ok)

	// and can be overwritten by a fresh save
	require.NoError(t, s.Save("1"))
	assert.True(t, s.IsLoggedIn())
}

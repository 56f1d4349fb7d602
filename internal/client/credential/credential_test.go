package credential

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SurvivesNewInstance(t *testing.T) {
	dir := t.TempDir()

	s := NewFileStore(dir)
	require.NoError(t, s.Set("tok-1"))

	reopened := NewFileStore(dir)
	got, err := reopened.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)

	info, err := os.Stat(reopened.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_SetReplacesToken(t *testing.T) {
	s := NewFileStore(t.TempDir())
	require.NoError(t, s.Set("first"))
	require.NoError(t, s.Set("second"))

	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	s := NewFileStore(t.TempDir())

	got, err := s.Get()
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Set("tok"))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	got, err = s.Get()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore(t *testing.T) {
	var s Store = NewMemoryStore()
	require.NoError(t, s.Set("tok"))
	got, _ := s.Get()
	assert.Equal(t, "tok", got)

	require.NoError(t, s.Clear())
	got, _ = s.Get()
	assert.Empty(t, got)
}

package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("build", record{Name: "gaming", Total: 6498}))

	var got record
	found, err := store.Load("build", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, record{Name: "gaming", Total: 6498}, got)
}

func TestStore_LoadMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	var got record
	found, err := store.Load("nothing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{oops"), 0o600))

	var got record
	_, err = store.Load("session", &got)
	assert.Error(t, err)
}

func TestStore_DeleteIdempotent(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("session", record{Name: "x"}))
	require.NoError(t, store.Delete("session"))
	require.NoError(t, store.Delete("session"))

	var got record
	found, err := store.Load("session", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save("build", record{Name: "y"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "build.json", entries[0].Name())
}

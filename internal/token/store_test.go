package token

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save("tok-123"))

	tok, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreOverwrite(t *testing.T) {
	store := NewFileStore(t.TempDir())

	require.NoError(t, store.Save("first"))
	require.NoError(t, store.Save("second"))

	tok, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "second", tok)
}

func TestFileStorePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}

	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, store.Save("secret"))

	info, err := os.Stat(filepath.Join(dir, tokenFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStoreClearWhenAbsent(t *testing.T) {
	store := NewFileStore(t.TempDir())
	assert.NoError(t, store.Clear())
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "spendly")
	store := NewFileStore(dir)

	require.NoError(t, store.Save("tok"))
	tok, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
}

func TestFileStoreEmptyTokenIsNotFound(t *testing.T) {
	store := NewFileStore(t.TempDir())
	require.NoError(t, store.Save(""))

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save("tok"))
	tok, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNotFound)
}

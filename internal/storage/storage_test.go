package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemory()

	require.NoError(t, s.Set("k", payload{Name: "tee", Count: 3}))

	var got payload
	require.NoError(t, s.Get("k", &got))
	assert.Equal(t, payload{Name: "tee", Count: 3}, got)

	require.NoError(t, s.Remove("k"))
	assert.ErrorIs(t, s.Get("k", &got), ErrNotFound)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	s := NewMemory()
	var got payload
	assert.ErrorIs(t, s.Get("nothing", &got), ErrNotFound)
	assert.NoError(t, s.Remove("nothing"))
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", payload{Name: "socks", Count: 2}))

	// Reopen and make sure the value survived.
	reopened, err := OpenFile(path)
	require.NoError(t, err)

	var got payload
	require.NoError(t, reopened.Get("k", &got))
	assert.Equal(t, payload{Name: "socks", Count: 2}, got)
}

func TestFileStoreRemovePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", payload{Name: "x"}))
	require.NoError(t, s.Remove("k"))

	reopened, err := OpenFile(path)
	require.NoError(t, err)
	var got payload
	assert.ErrorIs(t, reopened.Get("k", &got), ErrNotFound)
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json at all"), 0o644))

	s, err := OpenFile(path)
	require.NoError(t, err, "a corrupted file must not fail the open")

	var got payload
	assert.ErrorIs(t, s.Get("k", &got), ErrNotFound)

	// The store stays usable after the reset.
	require.NoError(t, s.Set("k", payload{Name: "fresh"}))
	require.NoError(t, s.Get("k", &got))
	assert.Equal(t, "fresh", got.Name)
}

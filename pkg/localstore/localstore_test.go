package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"konaseema/pkg/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blob struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	store.Save("cart_u1", blob{Name: "Kova", Count: 2})

	var got blob
	assert.True(t, store.Load("cart_u1", &got))
	assert.Equal(t, blob{Name: "Kova", Count: 2}, got)
}

func TestLoadMissingKeyReturnsFalse(t *testing.T) {
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	var got blob
	assert.False(t, store.Load("never_saved", &got))
	assert.Equal(t, blob{}, got)
}

func TestLoadMalformedContentReturnsFalse(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.New(dir)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, "cart_u1.json"), []byte("{truncated"), 0o644)
	require.NoError(t, err)

	var got blob
	assert.False(t, store.Load("cart_u1", &got))
}

func TestDeleteRemovesBlob(t *testing.T) {
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	store.Save("cart_u1", blob{Name: "Kova"})
	store.Delete("cart_u1")

	var got blob
	assert.False(t, store.Load("cart_u1", &got))
}

func TestKeysCannotEscapeTheStoreDir(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.New(dir)
	require.NoError(t, err)

	store.Save("../escape", blob{Name: "x"})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

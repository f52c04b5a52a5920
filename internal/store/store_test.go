package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nicehand.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_GetMissingKey(t *testing.T) {
	s := openTestStore(t)

	var v string
	found, err := s.Get(KeyCurrency, &v)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	type settings struct {
		Theme  string  `json:"theme"`
		Factor float64 `json:"factor"`
	}
	in := settings{Theme: "indigo", Factor: 7.2}
	require.NoError(t, s.Put(KeyTheme, in))

	var out settings
	found, err := s.Get(KeyTheme, &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, in, out)
}

func TestStore_PutOverwrites(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(KeyLanguage, "zh"))
	require.NoError(t, s.Put(KeyLanguage, "en"))

	var lang string
	found, err := s.Get(KeyLanguage, &lang)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "en", lang)
}

func TestStore_Delete(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(KeyAutoBackup, true))
	require.NoError(t, s.Delete(KeyAutoBackup))

	var v bool
	found, err := s.Get(KeyAutoBackup, &v)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Delete(KeyAutoBackup))
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nicehand.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(KeyCurrency, "CNY"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	var cur string
	found, err := s.Get(KeyCurrency, &cur)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "CNY", cur)
}

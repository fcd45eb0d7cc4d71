package kv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarkhayat/nutrigo"
)

func TestBackendContract(t *testing.T) {
	backends := map[string]func(t *testing.T) nutrigo.KeyValueStore{
		"memory": func(t *testing.T) nutrigo.KeyValueStore {
			return NewMemory()
		},
		"file": func(t *testing.T) nutrigo.KeyValueStore {
			s, err := OpenFile(filepath.Join(t.TempDir(), "store.json"), nil)
			require.NoError(t, err)
			return s
		},
		"sqlite": func(t *testing.T) nutrigo.KeyValueStore {
			s, err := OpenSQLite(filepath.Join(t.TempDir(), "store.db"))
			require.NoError(t, err)
			return s
		},
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			got, err := s.Get("missing")
			require.NoError(t, err)
			assert.Nil(t, got)

			require.NoError(t, s.Set("k", []byte(`{"a":1}`)))
			got, err = s.Get("k")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"a":1}`), got)

			require.NoError(t, s.Set("k", []byte(`{"a":2}`)))
			got, err = s.Get("k")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"a":2}`), got)

			require.NoError(t, s.Remove("k"))
			got, err = s.Get("k")
			require.NoError(t, err)
			assert.Nil(t, got)

			// removing a missing key is a no-op
			require.NoError(t, s.Remove("k"))
		})
	}
}

func TestFilePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := OpenFile(path, nil)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", []byte(`"v"`)))
	require.NoError(t, s.Close())

	s, err = OpenFile(path, nil)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"v"`), got)
}

func TestFileCorruptDocumentFailsOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o644))

	s, err := OpenFile(path, nil)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Nil(t, got)

	// writes work again after discarding the corrupt document
	require.NoError(t, s.Set("k", []byte(`"v"`)))
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", []byte(`"v"`)))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"v"`), got)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(nutrigo.Config{StorageBackend: "postgres"}, nil)
	assert.Error(t, err)
}

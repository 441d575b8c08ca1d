package index

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndResolve(t *testing.T) {
	idx := New()
	idx.Record("10.0.0.1", "appA.example", "1001")

	entry, ok := idx.Resolve("10.0.0.1")
	require.True(t, ok)
	assert.Equal(t, "appA.example", entry.Environment)
	assert.Equal(t, "1001", entry.NodeID)

	_, ok = idx.Resolve("10.0.0.2")
	assert.False(t, ok)
}

func TestRecordLastWriteWins(t *testing.T) {
	idx := New()
	idx.Record("10.0.0.1", "appA.example", "1001")
	idx.Record("10.0.0.1", "appB.example", "2002")

	entry, ok := idx.Resolve("10.0.0.1")
	require.True(t, ok)
	assert.Equal(t, "appB.example", entry.Environment)
	assert.Equal(t, "2002", entry.NodeID)
	assert.Equal(t, 1, idx.Len())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")

	idx := New()
	idx.Record("10.0.0.1", "appA.example", "1001")
	idx.Record("10.0.0.2", "appB.example", "2002")
	require.NoError(t, idx.Save(path))

	loaded := New()
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, 2, loaded.Len())

	entry, ok := loaded.Resolve("10.0.0.2")
	require.True(t, ok)
	assert.Equal(t, "appB.example", entry.Environment)
	assert.Equal(t, "2002", entry.NodeID)
}

func TestLoadMissingFile(t *testing.T) {
	idx := New()
	err := idx.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	idx := New()
	assert.Error(t, idx.Load(path))
}

func TestSaveSortsKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")

	idx := New()
	idx.Record("10.0.0.9", "z.example", "9")
	idx.Record("10.0.0.1", "a.example", "1")
	require.NoError(t, idx.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Less(t,
		strings.Index(string(data), "10.0.0.1"),
		strings.Index(string(data), "10.0.0.9"))
}

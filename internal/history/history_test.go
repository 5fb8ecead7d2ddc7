package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentAddMovesToFront(t *testing.T) {
	r := NewRecent(3)
	r.Add("a")
	r.Add("b")
	r.Add("a")
	r.Add("")

	assert.Equal(t, []string{"a", "b"}, r.IDs())
	assert.Equal(t, "a", r.Last())
}

func TestRecentBounded(t *testing.T) {
	r := NewRecent(2)
	r.Add("a")
	r.Add("b")
	r.Add("c")

	assert.Equal(t, []string{"c", "b"}, r.IDs())
}

func TestSaveAndLoadRecent(t *testing.T) {
	m, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)

	r := NewRecent(5)
	r.Add("emoticon:🏠")
	r.Add("gift:1")
	require.NoError(t, m.SaveRecent(r))

	loaded, err := m.LoadRecent(5)
	require.NoError(t, err)
	assert.Equal(t, r.IDs(), loaded.IDs())
}

func TestListsShareOneFile(t *testing.T) {
	m, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, m.Save("command", []string{"reload", "select g1"}))
	r := NewRecent(3)
	r.Add("g1")
	require.NoError(t, m.SaveRecent(r))

	commands, err := m.Load("command")
	require.NoError(t, err)
	assert.Equal(t, []string{"reload", "select g1"}, commands)

	data, err := os.ReadFile(m.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "recent_themes")
	assert.Contains(t, string(data), "command")

	entries, err := os.ReadDir(filepath.Dir(m.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestLoadMissingOrCorrupted(t *testing.T) {
	m, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)

	entries, err := m.Load("command")
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, os.WriteFile(m.Path(), []byte("lists = ["), 0644))
	entries, err = m.Load("command")
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, m.Save("command", []string{"reload"}))
	entries, err = m.Load("command")
	require.NoError(t, err)
	assert.Equal(t, []string{"reload"}, entries)
}

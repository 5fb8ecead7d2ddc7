package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/pstuifzand/tui-reconcile/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const yamlCatalog = `
themes:
  - emoticon: "🏠"
    title: Home
gifts:
  - id: g1
    title: Snow Globe
    owner_peer_id: p1
    settings:
      - base_theme: day
        wallpaper: snow-day
peers:
  - id: p1
    name: Alice
`

func TestStoreLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlCatalog), 0644))

	c, err := NewStore(path).Load()
	require.NoError(t, err)

	require.Len(t, c.Gifts, 1)
	assert.Equal(t, "Snow Globe", c.Gifts[0].Title)
	assert.Equal(t, model.BaseDay, c.Gifts[0].Settings[0].BaseTheme)
	assert.Equal(t, "emoticon:🏠", c.Themes[0].ID())
	assert.Equal(t, "Alice", c.Peers[0].Name)
}

func TestStoreJSONRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "catalog.json"))
	assert.False(t, store.FileExists())

	want := &model.Catalog{
		Themes: []model.EmoticonTheme{{Emoticon: "🐥", Title: "Chick"}},
		Gifts:  []model.GiftTheme{{ID: "g1", Title: "Gift"}},
		Peers:  []model.Peer{{ID: "p1", Name: "Bob"}},
	}
	require.NoError(t, store.Save(want))
	assert.True(t, store.FileExists())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStoreMissingAndBroken(t *testing.T) {
	dir := t.TempDir()

	c, err := NewStore(filepath.Join(dir, "missing.json")).Load()
	require.NoError(t, err)
	assert.Empty(t, c.Gifts)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0644))
	_, err = NewStore(broken).Load()
	assert.ErrorContains(t, err, "failed to parse JSON")
}

func TestStoreRejectsReservedGiftIDs(t *testing.T) {
	dir := t.TempDir()
	for name, id := range map[string]string{
		"reset.yaml":    "none:",
		"emoticon.yaml": "emoticon:🏠",
		"empty.yaml":    "",
	} {
		path := filepath.Join(dir, name)
		content := fmt.Sprintf("gifts:\n  - id: %q\n    title: Clash\n", id)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := NewStore(path).Load()
		assert.Error(t, err, name)
	}

	path := filepath.Join(dir, "zero.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gifts:\n  - id: \"0\"\n"), 0644))
	c, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "0", c.Gifts[0].ID)
}

func writeGifts(t *testing.T, path string, n int) {
	t.Helper()
	c := &model.Catalog{Themes: []model.EmoticonTheme{{Emoticon: "🏠"}}}
	for i := 0; i < n; i++ {
		c.Gifts = append(c.Gifts, model.GiftTheme{ID: fmt.Sprintf("g%d", i)})
	}
	require.NoError(t, NewStore(path).Save(c))
}

func TestSourcePaging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	writeGifts(t, path, 5)

	src := NewSource(NewStore(path), 2, zaptest.NewLogger(t))
	require.NoError(t, src.Reload())

	snap := src.Snapshot()
	assert.Len(t, snap.Gifts.Themes, 2)
	assert.True(t, snap.Gifts.DataState.CanLoadMore)
	assert.Len(t, snap.Themes, 1)

	assert.True(t, src.LoadMore())
	assert.True(t, src.LoadMore())
	snap = src.Snapshot()
	assert.Len(t, snap.Gifts.Themes, 5)
	assert.False(t, snap.Gifts.DataState.CanLoadMore)
	assert.True(t, snap.Gifts.DataState.Ready())
	assert.False(t, src.LoadMore())

	g, ok := src.FindGift("g4")
	assert.True(t, ok)
	assert.Equal(t, "g4", g.ID)
	_, ok = src.FindGift("nope")
	assert.False(t, ok)
}

func TestSourceWatchDeliversSnapshots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	writeGifts(t, path, 1)

	src := NewSource(NewStore(path), 10, zaptest.NewLogger(t))
	require.NoError(t, src.Reload())

	ctx, cancel := context.WithCancel(context.Background())
	snapshots, err := src.Watch(ctx, 20*time.Millisecond)
	require.NoError(t, err)

	writeGifts(t, path, 3)

	select {
	case snap := <-snapshots:
		assert.Len(t, snap.Gifts.Themes, 3)
	case <-time.After(5 * time.Second):
		t.Fatal("no snapshot after catalog change")
	}

	cancel()
	for range snapshots {
	}
}

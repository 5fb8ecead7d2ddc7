package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pstuifzand/tui-reconcile/internal/applier"
	"github.com/pstuifzand/tui-reconcile/internal/listdiff"
	"github.com/pstuifzand/tui-reconcile/internal/model"
)

func themeRows(titles ...string) []model.Entry {
	entries := []model.Entry{{Index: 0, Kind: model.KindNone}}
	for _, title := range titles {
		entries = append(entries, model.Entry{
			Index:   len(entries),
			Kind:    model.KindGift,
			ThemeID: "id-" + title,
			Title:   title,
		})
	}
	return entries
}

func numberedRows(n int) []model.Entry {
	titles := make([]string, n-1)
	for i := range titles {
		titles[i] = fmt.Sprintf("t%d", i+1)
	}
	return themeRows(titles...)
}

func batchFor(t *testing.T, previous, next []model.Entry) applier.Batch[model.Entry] {
	t.Helper()
	tr, err := listdiff.Compute[string](previous, next, listdiff.Options{Strict: true})
	require.NoError(t, err)
	return applier.Batch[model.Entry]{
		Deletions:  tr.Deletions,
		Insertions: tr.Insertions,
		Updates:    tr.Updates,
		Entries:    tr.Entries,
	}
}

func TestListViewSynchronousBatch(t *testing.T) {
	v := NewListView(nil, 4, zaptest.NewLogger(t))
	batch := batchFor(t, nil, themeRows("Snow"))
	batch.Synchronous = true

	called := false
	require.NoError(t, v.Apply(batch, func() { called = true }))

	assert.True(t, called)
	assert.False(t, v.Animating())
	assert.Equal(t, themeRows("Snow"), v.Entries())
}

func TestListViewAnimatedBatchFinishesOnTick(t *testing.T) {
	v := NewListView(nil, 3, zaptest.NewLogger(t))
	batch := batchFor(t, nil, themeRows("Snow"))

	calls := 0
	require.NoError(t, v.Apply(batch, func() { calls++ }))
	assert.True(t, v.Animating())
	assert.True(t, v.rows[1].flashing)

	assert.True(t, v.Tick())
	assert.True(t, v.Tick())
	assert.Equal(t, 0, calls)
	assert.True(t, v.Tick())
	assert.Equal(t, 1, calls)
	assert.False(t, v.rows[1].flashing)
	assert.False(t, v.Tick())
}

func TestListViewCrossfadeSkipsFlashes(t *testing.T) {
	v := NewListView(nil, 2, nil)
	batch := batchFor(t, nil, themeRows("Snow"))
	batch.Crossfade = true

	require.NoError(t, v.Apply(batch, func() {}))
	assert.True(t, v.crossfade)
	assert.False(t, v.rows[1].flashing)
}

func TestListViewCloseRefusesBatches(t *testing.T) {
	v := NewListView(nil, 3, nil)
	calls := 0
	require.NoError(t, v.Apply(batchFor(t, nil, themeRows("a")), func() { calls++ }))

	v.Close()
	v.Tick()
	v.Tick()
	v.Tick()
	assert.Equal(t, 0, calls)

	err := v.Apply(batchFor(t, themeRows("a"), themeRows("b")), func() {})
	assert.ErrorIs(t, err, applier.ErrCollectionGone)
}

func TestListViewRejectsBadBatch(t *testing.T) {
	v := NewListView(nil, 0, nil)
	err := v.Apply(applier.Batch[model.Entry]{Deletions: []listdiff.Deletion{{Index: 3}}}, func() {})
	assert.ErrorIs(t, err, listdiff.ErrIndexOutOfRange)
}

func TestListViewWithApplierQueuesBehindAnimation(t *testing.T) {
	v := NewListView(nil, 2, nil)
	a := applier.New[model.Entry](v, applier.WithLogger[model.Entry](zaptest.NewLogger(t)))

	first, err := listdiff.Compute[string](nil, themeRows("a"), listdiff.Options{})
	require.NoError(t, err)
	second, err := listdiff.Compute[string](themeRows("a"), themeRows("a", "b"), listdiff.Options{})
	require.NoError(t, err)

	a.Enqueue(first, false)
	a.Enqueue(second, false)
	assert.Equal(t, 1, a.Pending())
	assert.Len(t, v.Entries(), 2)

	v.Tick()
	v.Tick()
	assert.Equal(t, 0, a.Pending())
	assert.Equal(t, themeRows("a", "b"), v.Entries())

	v.Tick()
	v.Tick()
	assert.Equal(t, 2, a.Applied())
	assert.False(t, a.Busy())
}

func TestListViewApplierDetachesAfterClose(t *testing.T) {
	v := NewListView(nil, 0, nil)
	a := applier.New[model.Entry](v)
	first, err := listdiff.Compute[string](nil, themeRows("a"), listdiff.Options{})
	require.NoError(t, err)
	a.Enqueue(first, true)

	v.Close()
	second, err := listdiff.Compute[string](themeRows("a"), themeRows("b"), listdiff.Options{})
	require.NoError(t, err)
	a.Enqueue(second, false)
	a.Enqueue(second, false)

	assert.Equal(t, 0, a.Pending())
	assert.Equal(t, 1, a.Applied())
}

func TestListViewScrollTarget(t *testing.T) {
	v := NewListView(nil, 0, nil)
	v.SetViewportHeight(6)
	batch := batchFor(t, nil, numberedRows(10))
	batch.ScrollTo = &applier.ScrollTarget{Index: 4, Position: applier.ScrollBottom, Overflow: 1}

	require.NoError(t, v.Apply(batch, func() {}))

	// row 4 spans lines 12-14, bottom anchored with one line of overflow
	assert.Equal(t, 15+1-6, v.Offset())
}

func TestListViewEnsureVisibleNeighborRule(t *testing.T) {
	v := NewListView(nil, 0, nil)
	v.SetViewportHeight(7)
	entries := numberedRows(10)
	require.NoError(t, v.Apply(batchFor(t, nil, entries), func() {}))
	require.Equal(t, 0, v.Offset())

	// row 1 is fully visible; row 2 shows one of three lines
	assert.True(t, v.EnsureVisible(entries[1].StableID(), 0))
	assert.Equal(t, 2, v.Offset())

	assert.True(t, v.EnsureVisible(entries[5].StableID(), 0))
	assert.Equal(t, 18-7, v.Offset())

	// scrolling back up reveals the target with overflow
	assert.True(t, v.EnsureVisible(entries[1].StableID(), 1))
	assert.Equal(t, 2, v.Offset())

	assert.False(t, v.EnsureVisible("missing", 0))
}

func TestListViewEnsureVisiblePrefersPreviousNeighbor(t *testing.T) {
	v := NewListView(nil, 0, nil)
	v.SetViewportHeight(6)
	entries := numberedRows(10)
	require.NoError(t, v.Apply(batchFor(t, nil, entries), func() {}))

	v.offset = 11 // row 3 shows one line, row 4 is full, row 5 shows two
	require.InDelta(t, 1.0/3, v.visibility(3), 0.001)

	assert.True(t, v.EnsureVisible(entries[4].StableID(), 0))
	assert.Equal(t, 9, v.Offset())
	assert.InDelta(t, 1.0, v.visibility(3), 0.001)
}

func TestListViewRowsBelow(t *testing.T) {
	v := NewListView(nil, 0, nil)
	v.SetViewportHeight(7)
	require.NoError(t, v.Apply(batchFor(t, nil, numberedRows(10)), func() {}))

	assert.Equal(t, 7, v.RowsBelow())
	v.SelectLast()
	assert.Equal(t, 0, v.RowsBelow())
}

func TestListViewKeepsViewportStable(t *testing.T) {
	v := NewListView(nil, 0, nil)
	v.SetViewportHeight(6)
	entries := numberedRows(10)
	require.NoError(t, v.Apply(batchFor(t, nil, entries), func() {}))
	v.ensureRowVisible(6, 0)
	before := v.Offset()

	next := make([]model.Entry, 0, len(entries)-1)
	for _, e := range entries {
		if e.Title != "t1" {
			e.Index = len(next)
			next = append(next, e)
		}
	}
	require.NoError(t, v.Apply(batchFor(t, entries, next), func() {}))

	assert.Equal(t, before-RowHeight, v.Offset())
}

func TestListViewSelectionFollowsEntry(t *testing.T) {
	v := NewListView(nil, 0, nil)
	entries := themeRows("a", "b", "c")
	require.NoError(t, v.Apply(batchFor(t, nil, entries), func() {}))
	v.SelectNext()
	v.SelectNext()
	v.SelectNext()
	require.Equal(t, "c", mustSelected(t, v).Title)

	next := themeRows("b", "c")
	require.NoError(t, v.Apply(batchFor(t, entries, next), func() {}))
	assert.Equal(t, "c", mustSelected(t, v).Title)
	assert.Equal(t, 2, v.GetSelectedIndex())

	v.SelectFirst()
	v.SelectPrev()
	assert.Equal(t, 0, v.GetSelectedIndex())
}

func mustSelected(t *testing.T, v *ListView) model.Entry {
	t.Helper()
	e, ok := v.GetSelected()
	require.True(t, ok)
	return e
}

func simScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFromTcell(sim, nil)
	require.NoError(t, err)
	sim.SetSize(w, h)
	screen.Size()
	t.Cleanup(func() { screen.Close() })
	return screen, sim
}

func screenLine(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func TestListViewRender(t *testing.T) {
	screen, sim := simScreen(t, 40, 6)
	v := NewListView(nil, 0, nil)
	entries := themeRows("Snow Globe")
	entries[1].Peer = model.Peer{ID: "p1", Name: "Alice"}
	require.NoError(t, v.Apply(batchFor(t, nil, entries), func() {}))

	v.Render(screen, 0, 0, 40, 6)
	screen.Show()

	assert.Contains(t, screenLine(sim, 0), "No Theme")
	assert.Contains(t, screenLine(sim, 1), "reset to the default look")
	assert.Equal(t, "", screenLine(sim, 2))
	assert.Contains(t, screenLine(sim, 3), "Snow Globe")
	assert.Contains(t, screenLine(sim, 4), "owned by Alice")
}

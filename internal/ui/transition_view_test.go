package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pstuifzand/tui-reconcile/internal/listdiff"
)

func TestListViewRecordsLastTransition(t *testing.T) {
	v := NewListView(nil, 0, zaptest.NewLogger(t))
	assert.Empty(t, v.LastTransition())

	first := themeRows("Snow")
	require.NoError(t, v.Apply(batchFor(t, nil, first), func() {}))
	second := themeRows("Snow", "Rose")
	require.NoError(t, v.Apply(batchFor(t, first, second), func() {}))

	lines := v.LastTransition()
	require.NotEmpty(t, lines)
	assert.Equal(t, listdiff.LineInsertedSection, lines[0].Type)
	assert.Equal(t, "+ [2] Rose", lines[1].Content)
	assert.Equal(t, "0 deleted, 1 inserted, 0 updated", lines[len(lines)-1].Content)

	// an empty batch keeps the previous report
	require.NoError(t, v.Apply(batchFor(t, second, second), func() {}))
	assert.Equal(t, lines, v.LastTransition())
}

func TestTransitionViewScrollAndClose(t *testing.T) {
	screen, sim := simScreen(t, 50, 12)
	tv := NewTransitionView()

	lines := make([]listdiff.Line, 30)
	for i := range lines {
		lines[i] = listdiff.Line{Type: listdiff.LineInserted, Content: "+ row", Indent: 1}
	}
	tv.Show(lines)
	require.True(t, tv.IsVisible())
	tv.Render(screen)
	screen.Show()
	assert.Contains(t, screenLine(sim, 2), "Last transition")
	assert.Contains(t, screenLine(sim, 4), "+ row")

	tv.HandleKeyEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	assert.Equal(t, 30-4, tv.ScrollOffset())
	tv.HandleKeyEvent(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone))
	assert.Equal(t, 30-5, tv.ScrollOffset())
	tv.HandleKeyEvent(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	assert.Equal(t, 0, tv.ScrollOffset())

	tv.HandleKeyEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	assert.False(t, tv.IsVisible())
}

func TestTransitionViewEmpty(t *testing.T) {
	tv := NewTransitionView()
	tv.Show(nil)
	require.Len(t, tv.lines, 1)
	assert.Equal(t, "No transition applied yet", tv.lines[0].Content)
}

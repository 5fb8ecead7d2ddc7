package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/pstuifzand/tui-reconcile/internal/applier"
	"github.com/pstuifzand/tui-reconcile/internal/listdiff"
	"github.com/pstuifzand/tui-reconcile/internal/model"
	"github.com/pstuifzand/tui-reconcile/internal/theme"
)

// RowHeight is the number of screen lines one theme row takes: title,
// subtitle and a spacer
const RowHeight = 3

// DefaultAnimationFrames is the length of flashes and crossfades in frames
const DefaultAnimationFrames = 8

type listRow struct {
	entry    model.Entry
	flash    tcell.Color
	flashing bool
}

// ListView is the live theme list. Transitions are applied to it by the
// applier; inserted and updated rows flash and structural changes crossfade
// over a fixed number of frames advanced by Tick.
type ListView struct {
	renderer *Renderer
	logger   *zap.Logger
	frames   int

	rows        []listRow
	selectedIdx int
	offset      int // first visible line
	height      int // viewport height in lines

	done      func()
	remaining int
	crossfade bool
	closed    bool

	lastLines []listdiff.Line
	activity  *ActivityLog
}

// NewListView creates an empty list. frames <= 0 applies every batch
// without animation.
func NewListView(renderer *Renderer, frames int, logger *zap.Logger) *ListView {
	if renderer == nil {
		renderer = NewRenderer(DefaultBorderCacheSize)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListView{
		renderer: renderer,
		logger:   logger,
		frames:   frames,
		height:   RowHeight,
	}
}

// Apply replays a batch onto the rows. Synchronous batches and lists
// without animation call done before returning.
func (v *ListView) Apply(batch applier.Batch[model.Entry], done func()) error {
	if v.closed {
		return applier.ErrCollectionGone
	}

	previous := v.Entries()
	t := &listdiff.Transition[model.Entry]{
		Deletions:  batch.Deletions,
		Insertions: batch.Insertions,
		Updates:    batch.Updates,
		Crossfade:  batch.Crossfade,
	}
	next, err := listdiff.Apply(previous, t)
	if err != nil {
		return fmt.Errorf("failed to apply batch: %w", err)
	}
	if !t.IsEmpty() {
		v.lastLines = listdiff.BuildLines(previous, t, model.Entry.Label)
		if v.activity != nil {
			deleted, inserted, updated := t.Counts()
			v.activity.Transition(deleted, inserted, updated, t.Crossfade)
		}
	}

	selectedID, hasSelected := "", false
	if e, ok := v.GetSelected(); ok {
		selectedID, hasSelected = e.StableID(), true
	}

	v.keepViewportStable(batch)

	animate := !batch.Synchronous && v.frames > 0
	rows := make([]listRow, len(next))
	for i, e := range next {
		rows[i] = listRow{entry: e}
	}
	if animate && !batch.Crossfade {
		for _, ins := range batch.Insertions {
			rows[ins.Index].flash = paletteOf(ins.Entry).Colors.FlashInsert
			rows[ins.Index].flashing = true
		}
		for _, u := range batch.Updates {
			if !rows[u.Index].flashing {
				rows[u.Index].flash = paletteOf(u.Entry).Colors.FlashUpdate
				rows[u.Index].flashing = true
			}
		}
	}
	v.rows = rows

	if hasSelected {
		v.restoreSelection(selectedID)
	}
	if batch.ScrollTo != nil {
		v.scrollTo(*batch.ScrollTo)
	}
	v.clampOffset()

	if !animate {
		v.logger.Debug("batch applied", zap.Int("rows", len(v.rows)), zap.Bool("synchronous", batch.Synchronous))
		done()
		return nil
	}

	v.done = done
	v.remaining = v.frames
	v.crossfade = batch.Crossfade
	return nil
}

// Tick advances running animations by one frame and finishes the batch
// when they end. It reports whether the view needs a redraw.
func (v *ListView) Tick() bool {
	if v.done == nil {
		return false
	}
	v.remaining--
	if v.remaining > 0 {
		return true
	}

	done := v.done
	v.done = nil
	v.crossfade = false
	for i := range v.rows {
		v.rows[i].flashing = false
	}
	done()
	return true
}

// SetActivityLog makes every non-empty batch show up in log
func (v *ListView) SetActivityLog(log *ActivityLog) {
	v.activity = log
}

// LastTransition returns the report of the last non-empty batch
func (v *ListView) LastTransition() []listdiff.Line {
	return v.lastLines
}

// Animating reports whether a batch is still running
func (v *ListView) Animating() bool {
	return v.done != nil
}

// Close tears the view down. An animating batch never completes and later
// batches are refused with applier.ErrCollectionGone.
func (v *ListView) Close() {
	v.closed = true
	v.done = nil
}

// Entries returns the entries currently shown
func (v *ListView) Entries() []model.Entry {
	entries := make([]model.Entry, len(v.rows))
	for i, r := range v.rows {
		entries[i] = r.entry
	}
	return entries
}

// Len returns the number of rows
func (v *ListView) Len() int {
	return len(v.rows)
}

// SetViewportHeight sets the number of screen lines available to the list
func (v *ListView) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	v.height = height
	v.clampOffset()
}

// Offset returns the first visible line
func (v *ListView) Offset() int {
	return v.offset
}

// RowsBelow returns how many rows lie entirely below the viewport
func (v *ListView) RowsBelow() int {
	end := v.offset + v.height
	visible := (end + RowHeight - 1) / RowHeight
	return max(0, len(v.rows)-visible)
}

// SelectNext moves selection down
func (v *ListView) SelectNext() {
	if v.selectedIdx < len(v.rows)-1 {
		v.selectedIdx++
	}
	v.ensureRowVisible(v.selectedIdx, 0)
}

// SelectPrev moves selection up
func (v *ListView) SelectPrev() {
	if v.selectedIdx > 0 {
		v.selectedIdx--
	}
	v.ensureRowVisible(v.selectedIdx, 0)
}

// SelectFirst moves selection to the first row
func (v *ListView) SelectFirst() {
	v.selectedIdx = 0
	v.ensureRowVisible(v.selectedIdx, 0)
}

// SelectLast moves selection to the last row
func (v *ListView) SelectLast() {
	if len(v.rows) > 0 {
		v.selectedIdx = len(v.rows) - 1
	}
	v.ensureRowVisible(v.selectedIdx, 0)
}

// ScrollPage moves selection by a page of rows, down for a positive sign
func (v *ListView) ScrollPage(sign int) {
	page := max(1, v.height/RowHeight)
	v.selectedIdx = min(max(v.selectedIdx+sign*page, 0), max(len(v.rows)-1, 0))
	v.ensureRowVisible(v.selectedIdx, 0)
}

// GetSelected returns the entry under the selection cursor
func (v *ListView) GetSelected() (model.Entry, bool) {
	if v.selectedIdx < 0 || v.selectedIdx >= len(v.rows) {
		return model.Entry{}, false
	}
	return v.rows[v.selectedIdx].entry, true
}

// GetSelectedIndex returns the row index of the selection cursor
func (v *ListView) GetSelectedIndex() int {
	return v.selectedIdx
}

// EnsureVisible scrolls the row with id into view. When that row is already
// fully visible, a barely visible neighbor is revealed instead, previous
// row first. It reports false when no row has the id.
func (v *ListView) EnsureVisible(id string, overflow int) bool {
	idx := v.indexOf(id)
	if idx < 0 {
		return false
	}

	target := idx
	if v.visibility(idx) == 1 {
		if p := v.visibility(idx - 1); idx > 0 && p > 0 && p < 0.5 {
			target = idx - 1
		} else if n := v.visibility(idx + 1); idx+1 < len(v.rows) && n > 0 && n < 0.5 {
			target = idx + 1
		}
	}
	v.ensureRowVisible(target, overflow)
	return true
}

func (v *ListView) indexOf(id string) int {
	for i, r := range v.rows {
		if r.entry.StableID() == id {
			return i
		}
	}
	return -1
}

// visibility returns the visible fraction of row idx
func (v *ListView) visibility(idx int) float64 {
	if idx < 0 || idx >= len(v.rows) {
		return 0
	}
	top := idx * RowHeight
	visible := min(top+RowHeight, v.offset+v.height) - max(top, v.offset)
	if visible <= 0 {
		return 0
	}
	return float64(visible) / RowHeight
}

func (v *ListView) ensureRowVisible(idx, overflow int) {
	if idx < 0 || idx >= len(v.rows) {
		return
	}
	top := idx * RowHeight
	bottom := top + RowHeight
	switch {
	case top < v.offset:
		v.offset = top - overflow
	case bottom > v.offset+v.height:
		v.offset = bottom + overflow - v.height
	}
	v.clampOffset()
}

func (v *ListView) scrollTo(target applier.ScrollTarget) {
	if target.Index < 0 || target.Index >= len(v.rows) {
		return
	}
	top := target.Index * RowHeight
	switch target.Position {
	case applier.ScrollTop:
		v.offset = top - target.Overflow
	case applier.ScrollCenter:
		v.offset = top + RowHeight/2 - v.height/2
	case applier.ScrollBottom:
		v.offset = top + RowHeight + target.Overflow - v.height
	}
	v.clampOffset()
}

func (v *ListView) clampOffset() {
	maxOffset := max(0, len(v.rows)*RowHeight-v.height)
	v.offset = min(max(v.offset, 0), maxOffset)
}

// keepViewportStable shifts the offset for rows removed or added above the
// viewport so visible rows stay in place
func (v *ListView) keepViewportStable(batch applier.Batch[model.Entry]) {
	if v.offset == 0 {
		return
	}
	first := v.offset / RowHeight
	for _, d := range batch.Deletions {
		if d.Index < first {
			v.offset -= RowHeight
		}
	}
	first = v.offset / RowHeight
	for _, ins := range batch.Insertions {
		if ins.Index < first {
			v.offset += RowHeight
			first++
		}
	}
}

func (v *ListView) restoreSelection(id string) {
	if idx := v.indexOf(id); idx >= 0 {
		v.selectedIdx = idx
		return
	}
	v.selectedIdx = min(v.selectedIdx, max(len(v.rows)-1, 0))
}

func (v *ListView) progress() float64 {
	if v.done == nil || v.frames <= 0 {
		return 1
	}
	return 1 - float64(v.remaining)/float64(v.frames)
}

// Render draws the visible rows into the given area
func (v *ListView) Render(screen *Screen, x, y, width, height int) {
	v.SetViewportHeight(height)
	p := v.progress()

	for line := 0; line < height; line++ {
		abs := v.offset + line
		idx := abs / RowHeight
		if idx >= len(v.rows) {
			screen.FillLine(x, y+line, width, screen.BackgroundStyle())
			continue
		}

		row := v.rows[idx]
		d := v.renderer.Describe(row.entry)
		bg := d.Bg
		if idx == v.selectedIdx {
			bg = d.Cursor
		}
		if row.flashing {
			bg = theme.Blend(row.flash, bg, p)
		}
		fg, sub, border := d.Fg, d.Sub, d.Border.Color
		if v.crossfade {
			fg = theme.Blend(bg, fg, p)
			sub = theme.Blend(bg, sub, p)
			border = theme.Blend(bg, border, p)
		}

		base := theme.ColorPairToStyle(fg, bg)
		screen.FillLine(x, y+line, width, base)
		if abs%RowHeight == RowHeight-1 {
			continue
		}
		screen.SetCell(x, y+line, d.Border.Glyph, theme.ColorPairToStyle(border, bg))

		switch abs % RowHeight {
		case 0:
			col := x + 2
			if d.Emoji != "" {
				col += screen.DrawString(col, y+line, d.Emoji, base) + 1
			}
			style := base
			if d.Selected {
				style = style.Bold(true)
			}
			screen.DrawStringLimited(col, y+line, d.Title, x+width-col, style)
		case 1:
			screen.DrawStringLimited(x+2, y+line, d.Subtitle, width-2, theme.ColorPairToStyle(sub, bg).Dim(true))
		}
	}
}

func paletteOf(e model.Entry) *theme.Theme {
	if e.Palette != nil {
		return e.Palette
	}
	return fallbackPalette
}

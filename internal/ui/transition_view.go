package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-reconcile/internal/listdiff"
)

// TransitionView shows the report of the last list transition in a box
type TransitionView struct {
	visible      bool
	lines        []listdiff.Line
	scrollOffset int
	maxHeight    int
}

// NewTransitionView creates a hidden transition view
func NewTransitionView() *TransitionView {
	return &TransitionView{}
}

// Show displays lines, replacing what was shown before
func (tv *TransitionView) Show(lines []listdiff.Line) {
	tv.lines = lines
	if len(tv.lines) == 0 {
		tv.lines = []listdiff.Line{{Type: listdiff.LineSummary, Content: "No transition applied yet"}}
	}
	tv.scrollOffset = 0
	tv.visible = true
}

// Hide closes the view
func (tv *TransitionView) Hide() {
	tv.visible = false
}

// IsVisible returns whether the view is currently visible
func (tv *TransitionView) IsVisible() bool {
	return tv.visible
}

// ScrollOffset returns the first shown line
func (tv *TransitionView) ScrollOffset() int {
	return tv.scrollOffset
}

// HandleKeyEvent processes keyboard input
func (tv *TransitionView) HandleKeyEvent(ev *tcell.EventKey) {
	if !tv.visible {
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		tv.Hide()
	case tcell.KeyUp:
		tv.scroll(-1)
	case tcell.KeyDown:
		tv.scroll(1)
	case tcell.KeyPgUp, tcell.KeyCtrlU:
		tv.scroll(-tv.contentHeight() / 2)
	case tcell.KeyPgDn, tcell.KeyCtrlD:
		tv.scroll(tv.contentHeight() / 2)
	case tcell.KeyHome:
		tv.scrollOffset = 0
	case tcell.KeyEnd:
		tv.scrollOffset = tv.maxScroll()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 't':
			tv.Hide()
		case 'j':
			tv.scroll(1)
		case 'k':
			tv.scroll(-1)
		}
	}
}

// contentHeight is the box height minus border, header and footer
func (tv *TransitionView) contentHeight() int {
	return max(tv.maxHeight-8, 1)
}

func (tv *TransitionView) maxScroll() int {
	return max(len(tv.lines)-tv.contentHeight(), 0)
}

func (tv *TransitionView) scroll(lines int) {
	tv.scrollOffset = min(max(tv.scrollOffset+lines, 0), tv.maxScroll())
}

// Render draws the view on the screen
func (tv *TransitionView) Render(screen *Screen) {
	if !tv.visible {
		return
	}

	width, height := screen.Size()
	tv.maxHeight = height

	boxWidth := width - 4
	boxHeight := height - 4
	startX, startY := 2, 2
	if boxWidth < 20 || boxHeight < 5 {
		return
	}

	for y := startY; y < startY+boxHeight; y++ {
		screen.FillLine(startX, y, boxWidth, screen.BackgroundStyle())
	}
	drawBox(screen, startX, startY, boxWidth, boxHeight, screen.BorderStyle())
	screen.DrawStringLimited(startX+1, startY, " Last transition ", boxWidth-2, screen.HeaderStyle())

	tv.renderContent(screen, startX+1, startY+2, boxWidth-2, boxHeight-4)

	footer := "j/k/↓/↑: scroll | Ctrl+U/D: page | q/Esc: close"
	screen.DrawStringLimited(startX+1, startY+boxHeight-1, footer, boxWidth-2, screen.BorderStyle())
}

func (tv *TransitionView) renderContent(screen *Screen, x, y, width, height int) {
	end := min(tv.scrollOffset+height, len(tv.lines))
	for i := tv.scrollOffset; i < end; i++ {
		line := tv.lines[i]
		text := strings.Repeat("  ", line.Indent) + line.Content
		screen.DrawStringLimited(x, y+i-tv.scrollOffset, text, width, tv.styleFor(screen, line.Type))
	}

	if len(tv.lines) > height {
		scrollbarY := y + tv.scrollOffset*height/len(tv.lines)
		screen.SetCell(x+width-1, scrollbarY, '█', screen.BorderStyle())
	}
}

func (tv *TransitionView) styleFor(screen *Screen, lineType listdiff.LineType) tcell.Style {
	switch lineType {
	case listdiff.LineHeader, listdiff.LineSummary:
		return screen.HeaderStyle()
	case listdiff.LineInsertedSection, listdiff.LineInserted:
		return screen.InsertedStyle()
	case listdiff.LineUpdatedSection, listdiff.LineUpdated:
		return screen.UpdatedStyle()
	case listdiff.LineDeletedSection, listdiff.LineDeleted:
		return screen.DeletedStyle()
	default:
		return screen.BackgroundStyle()
	}
}

// drawBox draws a simple box border
func drawBox(screen *Screen, x, y, width, height int, style tcell.Style) {
	screen.SetCell(x, y, '┌', style)
	for i := 1; i < width-1; i++ {
		screen.SetCell(x+i, y, '─', style)
	}
	screen.SetCell(x+width-1, y, '┐', style)

	screen.SetCell(x, y+height-1, '└', style)
	for i := 1; i < width-1; i++ {
		screen.SetCell(x+i, y+height-1, '─', style)
	}
	screen.SetCell(x+width-1, y+height-1, '┘', style)

	for i := 1; i < height-1; i++ {
		screen.SetCell(x, y+i, '│', style)
		screen.SetCell(x+width-1, y+i, '│', style)
	}
}

package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-reconcile/internal/theme"
)

// Screen manages the tcell screen and rendering
type Screen struct {
	tcellScreen tcell.Screen
	width       int
	height      int
	Theme       *theme.Theme
}

// NewScreenWithTheme creates a new terminal Screen with a specific theme
func NewScreenWithTheme(t *theme.Theme) (*Screen, error) {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return NewScreenFromTcell(tcellScreen, t)
}

// NewScreenFromTcell wraps an existing tcell screen, such as a simulation
// screen, and initializes it
func NewScreenFromTcell(tcellScreen tcell.Screen, t *theme.Theme) (*Screen, error) {
	if err := tcellScreen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	if t == nil {
		t = theme.Default()
	}

	width, height := tcellScreen.Size()
	return &Screen{
		tcellScreen: tcellScreen,
		width:       width,
		height:      height,
		Theme:       t,
	}, nil
}

// SetTheme switches the chrome theme; list rows carry their own palette
func (s *Screen) SetTheme(t *theme.Theme) {
	if t != nil {
		s.Theme = t
	}
}

// Close closes the screen
func (s *Screen) Close() error {
	s.tcellScreen.Fini()
	return nil
}

// Clear clears the entire screen
func (s *Screen) Clear() {
	s.tcellScreen.Clear()
}

// Fill paints the whole screen with the background style
func (s *Screen) Fill() {
	s.tcellScreen.Fill(' ', s.BackgroundStyle())
}

// SetCell sets a cell at the given position
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.tcellScreen.SetContent(x, y, r, nil, style)
	}
}

// DrawString draws a string at the given position and returns the number
// of columns used. Wide runes take two cells.
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) int {
	col := 0
	for _, r := range text {
		w := RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetCell(x+col, y, r, style)
		col += w
	}
	return col
}

// DrawStringLimited draws a string, truncating it if it exceeds maxWidth
func (s *Screen) DrawStringLimited(x, y int, text string, maxWidth int, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	return s.DrawString(x, y, FitToWidth(text, maxWidth), style)
}

// FillLine paints width cells of row y starting at x
func (s *Screen) FillLine(x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		s.SetCell(x+i, y, ' ', style)
	}
}

// PollEvent polls for the next event (key press, resize, etc.)
func (s *Screen) PollEvent() tcell.Event {
	return s.tcellScreen.PollEvent()
}

// Show shows the screen
func (s *Screen) Show() {
	s.tcellScreen.Show()
}

// Sync redraws the whole terminal, used after a resize
func (s *Screen) Sync() {
	s.tcellScreen.Sync()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (int, int) {
	w, h := s.tcellScreen.Size()
	s.width = w
	s.height = h
	return w, h
}

// Theme-aware style methods

// BackgroundStyle returns the default background style for the application
func (s *Screen) BackgroundStyle() tcell.Style {
	return tcell.StyleDefault.Background(s.Theme.Colors.Background)
}

// HeaderStyle returns the style for header title
func (s *Screen) HeaderStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.HeaderTitle, s.Theme.Colors.HeaderBg).Bold(true)
}

// FilterLabelStyle returns the style for the filter prompt
func (s *Screen) FilterLabelStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.FilterLabel, s.Theme.Colors.Background)
}

// FilterTextStyle returns the style for the filter query
func (s *Screen) FilterTextStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.FilterText, s.Theme.Colors.Background)
}

// StatusModeStyle returns the style for mode indicator
func (s *Screen) StatusModeStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.StatusMode, s.Theme.Colors.StatusModeBg).Bold(true)
}

// StatusMessageStyle returns the style for status messages
func (s *Screen) StatusMessageStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.StatusMessage, s.Theme.Colors.Background)
}

// InsertedStyle returns the style for inserted rows in a transition report
func (s *Screen) InsertedStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.FlashInsert, s.Theme.Colors.Background)
}

// UpdatedStyle returns the style for updated rows in a transition report
func (s *Screen) UpdatedStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.FlashUpdate, s.Theme.Colors.Background)
}

// DeletedStyle returns the style for deleted rows in a transition report
func (s *Screen) DeletedStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.ListSubtitle, s.Theme.Colors.Background).StrikeThrough(true)
}

// BorderStyle returns the style for box borders
func (s *Screen) BorderStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.ListBorder, s.Theme.Colors.Background)
}

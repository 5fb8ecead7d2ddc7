package ui

import "fmt"

// KeyBindingInfo represents a keybinding for display
type KeyBindingInfo interface {
	GetKey() string
	GetDescription() string
}

// HelpScreen shows the keybindings and the recent activity
type HelpScreen struct {
	visible     bool
	keybindings []KeyBindingInfo
	activity    *ActivityLog
}

// NewHelpScreen creates a new HelpScreen
func NewHelpScreen(activity *ActivityLog) *HelpScreen {
	return &HelpScreen{activity: activity}
}

// SetKeybindings sets the keybindings to display
func (h *HelpScreen) SetKeybindings(keybindings []KeyBindingInfo) {
	h.keybindings = keybindings
}

// Toggle toggles the help screen visibility
func (h *HelpScreen) Toggle() {
	h.visible = !h.visible
}

// IsVisible returns whether the help screen is visible
func (h *HelpScreen) IsVisible() bool {
	return h.visible
}

// Lines returns the help text
func (h *HelpScreen) Lines() []string {
	result := []string{"Keybindings:", ""}
	for _, kb := range h.keybindings {
		result = append(result, "  "+PadRight(kb.GetKey(), 6)+" - "+kb.GetDescription())
	}

	result = append(result, "", "Commands:",
		"  :select <id>  :night [on|off]  :filter <query>",
		"  :reload  :more  :refresh  :transition  :q")

	if h.activity != nil && h.activity.Len() > 0 {
		result = append(result, "", "Recent activity:")
		for _, a := range h.activity.Recent() {
			result = append(result, fmt.Sprintf("  %s  %s", a.At.Format("15:04:05"), a))
		}
	}
	return result
}

// Render renders the help screen
func (h *HelpScreen) Render(screen *Screen) {
	if !h.visible {
		return
	}

	width, height := screen.Size()
	contentStyle := screen.StatusMessageStyle()
	borderStyle := screen.FilterLabelStyle()
	titleStyle := screen.HeaderStyle()

	for y := 0; y < height; y++ {
		screen.FillLine(0, y, width, contentStyle)
	}

	startX, startY := 2, 1
	boxWidth := width - 4
	if boxWidth < 4 || height < 4 {
		return
	}

	horizontal := func(y int, left, right rune) {
		screen.SetCell(startX, y, left, borderStyle)
		for i := 1; i < boxWidth-1; i++ {
			screen.SetCell(startX+i, y, '─', borderStyle)
		}
		screen.SetCell(startX+boxWidth-1, y, right, borderStyle)
	}
	side := func(y int) {
		screen.SetCell(startX, y, '│', borderStyle)
		screen.SetCell(startX+boxWidth-1, y, '│', borderStyle)
	}

	horizontal(startY, '┌', '┐')
	side(startY + 1)
	screen.DrawStringLimited(startX+2, startY+1, " Help (? to close) ", boxWidth-4, titleStyle)
	horizontal(startY+2, '├', '┤')

	y := startY + 3
	for _, line := range h.Lines() {
		if y >= height-2 {
			break
		}
		side(y)
		screen.DrawStringLimited(startX+2, y, line, boxWidth-4, contentStyle)
		y++
	}
	horizontal(y, '└', '┘')
}

package ui

import "fmt"

// EmptyState is drawn below the reset row when the list has no themes
type EmptyState struct {
	catalogPath string
}

// NewEmptyState creates an empty state naming the catalog file
func NewEmptyState(catalogPath string) *EmptyState {
	return &EmptyState{catalogPath: catalogPath}
}

// Lines returns the text to show; a filter without matches gets its own
func (e *EmptyState) Lines(query string) []string {
	if query != "" {
		return []string{
			fmt.Sprintf("No themes match %q", query),
			"",
			"Esc clears the filter",
		}
	}
	return []string{
		"~~ No chat themes ~~",
		"",
		"The catalog has no themes yet:",
		"  " + e.catalogPath,
		"",
		"Add themes or gifts to the file,",
		"it is reloaded when it changes.",
		"",
		":reload  - read the catalog again",
		":q       - quit",
	}
}

// Render draws the lines centered in the given area
func (e *EmptyState) Render(screen *Screen, x, y, width, height int, query string) {
	if width <= 0 || height <= 0 {
		return
	}
	content := e.Lines(query)

	blockWidth := 0
	for _, line := range content {
		blockWidth = max(blockWidth, StringWidth(line))
	}
	startY := y + max((height-len(content))/2, 0)
	startX := x + max((width-blockWidth)/2, 0)

	for i, line := range content {
		if startY+i >= y+height {
			break
		}
		style := screen.StatusMessageStyle()
		if i == 0 {
			style = screen.HeaderStyle()
		}
		screen.DrawStringLimited(startX, startY+i, line, width-(startX-x), style)
	}
}

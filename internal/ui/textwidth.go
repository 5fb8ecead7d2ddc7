package ui

import (
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks a label cut to fit its column
const Ellipsis = "…"

// RuneWidth returns the number of cells r occupies. Emoticons and CJK
// take two, combining marks and control runes none.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the number of cells s occupies
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// FitToWidth cuts s to at most width cells, ending it with an ellipsis
// when anything was dropped. Wide runes are never split.
func FitToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if width <= StringWidth(Ellipsis) {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, Ellipsis)
}

// PadRight fills s with spaces up to width cells
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeLabelWidths(t *testing.T) {
	tests := []struct {
		label string
		width int
	}{
		{"Snow Globe", 10},
		{"🏠 Home", 7},
		{"🐥", 2},
		{"雪 Globe", 8},
		{"é", 1},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.width, StringWidth(tt.label))
		})
	}
	assert.Equal(t, 0, RuneWidth('\n'))
}

func TestFitToWidth(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		width    int
		expected string
	}{
		{"fits", "Snow Globe", 10, "Snow Globe"},
		{"cut", "Snow Globe", 6, "Snow …"},
		{"emoticon kept whole", "🏠🏠🏠", 4, "🏠…"},
		{"emoticon never split", "🏠🏠🏠", 3, "🏠…"},
		{"too narrow for ellipsis", "Snow", 1, "S"},
		{"zero", "Snow", 0, ""},
		{"negative", "Snow", -2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitToWidth(tt.in, tt.width)
			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, StringWidth(got), max(tt.width, 0))
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "🐥    ", PadRight("🐥", 6))
	assert.Equal(t, "Escape", PadRight("Escape", 3))
}

package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds all the color definitions for the theme
type Colors struct {
	Background tcell.Color

	// List rows
	ListText           tcell.Color
	ListSubtitle       tcell.Color
	ListSelected       tcell.Color
	ListCursorBg       tcell.Color
	ListBorder         tcell.Color
	ListBorderSelected tcell.Color

	// Transition flashes
	FlashInsert tcell.Color
	FlashUpdate tcell.Color

	// Filter bar
	FilterLabel tcell.Color
	FilterText  tcell.Color

	// Header and status line
	HeaderTitle   tcell.Color
	HeaderBg      tcell.Color
	StatusMode    tcell.Color
	StatusModeBg  tcell.Color
	StatusMessage tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Dark   bool
	Colors Colors
}

// Default returns a default theme using terminal defaults
func Default() *Theme {
	return &Theme{
		Name: "default",
		Dark: true,
		Colors: Colors{
			Background:         tcell.ColorDefault,
			ListText:           tcell.ColorDefault,
			ListSubtitle:       tcell.ColorDefault,
			ListSelected:       tcell.ColorDefault,
			ListCursorBg:       tcell.ColorDefault,
			ListBorder:         tcell.ColorDefault,
			ListBorderSelected: tcell.ColorDefault,
			FlashInsert:        tcell.ColorDefault,
			FlashUpdate:        tcell.ColorDefault,
			FilterLabel:        tcell.ColorDefault,
			FilterText:         tcell.ColorDefault,
			HeaderTitle:        tcell.ColorDefault,
			HeaderBg:           tcell.ColorDefault,
			StatusMode:         tcell.ColorDefault,
			StatusModeBg:       tcell.ColorDefault,
			StatusMessage:      tcell.ColorDefault,
		},
	}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	return &Theme{
		Name: "tokyo-night",
		Dark: true,
		Colors: Colors{
			Background:         HexToColor("#1a1b26"), // Dark background
			ListText:           HexToColor("#c0caf5"), // Light gray-blue
			ListSubtitle:       HexToColor("#565f89"), // Comment gray
			ListSelected:       HexToColor("#7aa2f7"), // Blue
			ListCursorBg:       HexToColor("#283457"),
			ListBorder:         HexToColor("#3b4261"),
			ListBorderSelected: HexToColor("#7dcfff"), // Cyan
			FlashInsert:        HexToColor("#9ece6a"), // Green
			FlashUpdate:        HexToColor("#e0af68"), // Yellow
			FilterLabel:        HexToColor("#bb9af7"), // Magenta
			FilterText:         HexToColor("#c0caf5"),
			HeaderTitle:        HexToColor("#bb9af7"),
			HeaderBg:           HexToColor("#16161e"),
			StatusMode:         HexToColor("#1a1b26"),
			StatusModeBg:       HexToColor("#7aa2f7"),
			StatusMessage:      HexToColor("#9ece6a"),
		},
	}
}

// TokyoDay returns the light Tokyo Night variant
func TokyoDay() *Theme {
	return &Theme{
		Name: "tokyo-day",
		Dark: false,
		Colors: Colors{
			Background:         HexToColor("#e1e2e7"),
			ListText:           HexToColor("#3760bf"),
			ListSubtitle:       HexToColor("#848cb5"),
			ListSelected:       HexToColor("#2e7de9"),
			ListCursorBg:       HexToColor("#c4c8da"),
			ListBorder:         HexToColor("#a8aecb"),
			ListBorderSelected: HexToColor("#007197"),
			FlashInsert:        HexToColor("#587539"),
			FlashUpdate:        HexToColor("#8c6c3e"),
			FilterLabel:        HexToColor("#9854f1"),
			FilterText:         HexToColor("#3760bf"),
			HeaderTitle:        HexToColor("#9854f1"),
			HeaderBg:           HexToColor("#d0d5e3"),
			StatusMode:         HexToColor("#e1e2e7"),
			StatusModeBg:       HexToColor("#2e7de9"),
			StatusMessage:      HexToColor("#587539"),
		},
	}
}

// Builtin returns a built-in theme by name, or nil
func Builtin(name string) *Theme {
	switch name {
	case "default":
		return Default()
	case "tokyo-night":
		return TokyoNight()
	case "tokyo-day":
		return TokyoDay()
	}
	return nil
}

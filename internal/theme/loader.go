package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration
type ThemeConfig struct {
	Name   string `toml:"name"`
	Dark   *bool  `toml:"dark"`
	Colors struct {
		Background         string `toml:"background"`
		ListText           string `toml:"list_text"`
		ListSubtitle       string `toml:"list_subtitle"`
		ListSelected       string `toml:"list_selected"`
		ListCursorBg       string `toml:"list_cursor_bg"`
		ListBorder         string `toml:"list_border"`
		ListBorderSelected string `toml:"list_border_selected"`
		FlashInsert        string `toml:"flash_insert"`
		FlashUpdate        string `toml:"flash_update"`
		FilterLabel        string `toml:"filter_label"`
		FilterText         string `toml:"filter_text"`
		HeaderTitle        string `toml:"header_title"`
		HeaderBg           string `toml:"header_bg"`
		StatusMode         string `toml:"status_mode"`
		StatusModeBg       string `toml:"status_mode_bg"`
		StatusMessage      string `toml:"status_message"`
	} `toml:"colors"`
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	paths := []string{}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "tui-reconcile", "themes"),
			filepath.Join(home, ".local", "share", "tui-reconcile", "themes"),
		)
	}

	return paths
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config), nil
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme converts a ThemeConfig to a Theme. Missing colors fall back
// to Tokyo Night.
func configToTheme(config ThemeConfig) *Theme {
	t := TokyoNight()

	override := func(dst *tcell.Color, value string) {
		if value != "" {
			*dst = ParseColorString(value)
		}
	}

	c := &t.Colors
	override(&c.Background, config.Colors.Background)
	override(&c.ListText, config.Colors.ListText)
	override(&c.ListSubtitle, config.Colors.ListSubtitle)
	override(&c.ListSelected, config.Colors.ListSelected)
	override(&c.ListCursorBg, config.Colors.ListCursorBg)
	override(&c.ListBorder, config.Colors.ListBorder)
	override(&c.ListBorderSelected, config.Colors.ListBorderSelected)
	override(&c.FlashInsert, config.Colors.FlashInsert)
	override(&c.FlashUpdate, config.Colors.FlashUpdate)
	override(&c.FilterLabel, config.Colors.FilterLabel)
	override(&c.FilterText, config.Colors.FilterText)
	override(&c.HeaderTitle, config.Colors.HeaderTitle)
	override(&c.HeaderBg, config.Colors.HeaderBg)
	override(&c.StatusMode, config.Colors.StatusMode)
	override(&c.StatusModeBg, config.Colors.StatusModeBg)
	override(&c.StatusMessage, config.Colors.StatusMessage)

	if config.Name != "" {
		t.Name = config.Name
	}
	if config.Dark != nil {
		t.Dark = *config.Dark
	}

	return t
}

// LoadThemeOrDefault loads a theme by name: built-in themes first, then TOML
// files, then Tokyo Night
func LoadThemeOrDefault(themeName string) *Theme {
	if t := Builtin(themeName); t != nil {
		return t
	}

	t, err := LoadTheme(themeName)
	if err != nil {
		return TokyoNight()
	}

	return t
}

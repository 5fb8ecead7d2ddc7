package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config holds application configuration
type Config struct {
	Theme           string `toml:"theme"`     // night palette and screen chrome
	DayTheme        string `toml:"day_theme"` // day palette
	Catalog         string `toml:"catalog"`
	LogFile         string `toml:"log_file"`
	NightMode       bool   `toml:"night_mode"`
	Strict          bool   `toml:"strict"`
	AnimationFrames int    `toml:"animation_frames"`
	ScrollOverflow  int    `toml:"scroll_overflow"`
	PageSize        int    `toml:"page_size"`
	Socket          bool   `toml:"socket"`
	HistorySize     int    `toml:"history_size"`

	Settings map[string]string `toml:"settings"`

	// Session settings (not persisted to TOML, overrides persisted settings)
	sessionSettings map[string]string
}

// Load loads the config file from the standard location
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil // Return default if can't find config path
	}

	return LoadFromFile(configPath)
}

// LoadFromFile loads config from a specific file. Keys missing from the
// file keep their defaults.
func LoadFromFile(filePath string) (*Config, error) {
	// If file doesn't exist, return default config
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := defaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Theme == "" {
		config.Theme = "tokyo-night"
	}
	if config.DayTheme == "" {
		config.DayTheme = "tokyo-day"
	}
	if config.Settings == nil {
		config.Settings = make(map[string]string)
	}
	config.sessionSettings = make(map[string]string)

	return config, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	return &Config{
		Theme:           "tokyo-night",
		DayTheme:        "tokyo-day",
		AnimationFrames: 8,
		ScrollOverflow:  1,
		PageSize:        20,
		Socket:          true,
		HistorySize:     20,
		Settings:        make(map[string]string),
		sessionSettings: make(map[string]string),
	}
}

// GetConfigDir returns the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(home, ".config", "tui-reconcile")
	return configDir, nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	return os.MkdirAll(configDir, 0755)
}

// Set sets a session configuration value
func (c *Config) Set(key, value string) {
	if c.sessionSettings == nil {
		c.sessionSettings = make(map[string]string)
	}
	c.sessionSettings[key] = value
}

// Get retrieves a configuration value, checking session settings first (which override persisted settings)
// Returns empty string if not found in either source
func (c *Config) Get(key string) string {
	// Check session settings first (they override persisted settings)
	if c.sessionSettings != nil {
		if val, ok := c.sessionSettings[key]; ok {
			return val
		}
	}

	// Fall back to persisted settings
	if c.Settings != nil {
		if val, ok := c.Settings[key]; ok {
			return val
		}
	}

	return ""
}

// GetAll returns all configuration values (both persisted and session)
// Session settings override persisted settings with the same key
func (c *Config) GetAll() map[string]string {
	result := make(map[string]string)

	if c.Settings != nil {
		for k, v := range c.Settings {
			result[k] = v
		}
	}

	if c.sessionSettings != nil {
		for k, v := range c.sessionSettings {
			result[k] = v
		}
	}

	return result
}

// Bool returns a setting parsed as a boolean, or fallback when it is unset
// or malformed
func (c *Config) Bool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(c.Get(key)); err == nil {
		return v
	}
	return fallback
}

// Int returns a setting parsed as an integer, or fallback when it is unset
// or malformed
func (c *Config) Int(key string, fallback int) int {
	if v, err := strconv.Atoi(c.Get(key)); err == nil {
		return v
	}
	return fallback
}

// String returns a setting, or fallback when it is unset
func (c *Config) String(key, fallback string) string {
	if v := c.Get(key); v != "" {
		return v
	}
	return fallback
}

// Effective accessors: a setting with the same key as a typed field wins

// NightModeEnabled reports whether the picker starts in night mode
func (c *Config) NightModeEnabled() bool {
	return c.Bool("night_mode", c.NightMode)
}

// StrictDiff reports whether list contract violations fail the update
func (c *Config) StrictDiff() bool {
	return c.Bool("strict", c.Strict)
}

// Frames returns the animation length in frames
func (c *Config) Frames() int {
	return c.Int("animation_frames", c.AnimationFrames)
}

// Overflow returns the rows revealed beyond a scroll target
func (c *Config) Overflow() int {
	return c.Int("scroll_overflow", c.ScrollOverflow)
}

// GiftPageSize returns the gift page size
func (c *Config) GiftPageSize() int {
	return c.Int("page_size", c.PageSize)
}

// SocketEnabled reports whether the command socket is started
func (c *Config) SocketEnabled() bool {
	return c.Bool("socket", c.Socket)
}

// RecentSize returns how many recent selections are kept
func (c *Config) RecentSize() int {
	return c.Int("history_size", c.HistorySize)
}

// CatalogPath returns the catalog file to load
func (c *Config) CatalogPath() string {
	return c.String("catalog", c.Catalog)
}

// Save persists the configuration to the TOML file
// Note: This only persists the Settings map, not session settings
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return c.SaveToFile(configPath)
}

// SaveToFile writes the configuration to filePath
func (c *Config) SaveToFile(filePath string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

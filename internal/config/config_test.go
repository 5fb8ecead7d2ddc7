package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSet(t *testing.T) {
	cfg := &Config{
		sessionSettings: make(map[string]string),
	}

	cfg.Set("night_mode", "true")
	if cfg.Get("night_mode") != "true" {
		t.Errorf("Expected 'true', got '%s'", cfg.Get("night_mode"))
	}
}

func TestGet(t *testing.T) {
	cfg := &Config{
		sessionSettings: make(map[string]string),
	}

	// Test getting a value that doesn't exist
	if cfg.Get("nonexistent") != "" {
		t.Errorf("Expected empty string for nonexistent key, got '%s'", cfg.Get("nonexistent"))
	}

	// Set and then get
	cfg.Set("test", "value")
	if cfg.Get("test") != "value" {
		t.Errorf("Expected 'value', got '%s'", cfg.Get("test"))
	}
}

func TestGetAll(t *testing.T) {
	cfg := &Config{
		sessionSettings: make(map[string]string),
	}

	cfg.Set("key1", "value1")
	cfg.Set("key2", "value2")

	all := cfg.GetAll()
	if len(all) != 2 {
		t.Errorf("Expected 2 settings, got %d", len(all))
	}

	if all["key1"] != "value1" {
		t.Errorf("Expected 'value1', got '%s'", all["key1"])
	}

	if all["key2"] != "value2" {
		t.Errorf("Expected 'value2', got '%s'", all["key2"])
	}
}

func TestGetAllReturnsACopy(t *testing.T) {
	cfg := &Config{
		sessionSettings: make(map[string]string),
	}

	cfg.Set("original", "value")

	// Modify the returned map
	all := cfg.GetAll()
	all["original"] = "modified"

	// Verify the original config was not modified
	if cfg.Get("original") != "value" {
		t.Errorf("GetAll() should return a copy, not a reference")
	}
}

func TestNilSessionSettings(t *testing.T) {
	cfg := &Config{}
	// sessionSettings is nil

	// Set should initialize it
	cfg.Set("key", "value")
	if cfg.Get("key") != "value" {
		t.Errorf("Set should initialize nil sessionSettings")
	}

	// Get should handle nil gracefully
	cfg2 := &Config{}
	if cfg2.Get("key") != "" {
		t.Errorf("Get should return empty string for nil sessionSettings")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Theme != "tokyo-night" {
		t.Errorf("Expected default theme 'tokyo-night', got '%s'", cfg.Theme)
	}

	if cfg.sessionSettings == nil {
		t.Errorf("defaultConfig should initialize sessionSettings")
	}
}

func TestLoadFromFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "theme = \"default\"\nstrict = true\nanimation_frames = 3\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Theme != "default" || cfg.DayTheme != "tokyo-day" {
		t.Errorf("unexpected themes %q/%q", cfg.Theme, cfg.DayTheme)
	}
	if !cfg.StrictDiff() || cfg.Frames() != 3 {
		t.Errorf("expected strict with 3 frames, got %v/%d", cfg.StrictDiff(), cfg.Frames())
	}
	if !cfg.SocketEnabled() || cfg.GiftPageSize() != 20 || cfg.RecentSize() != 20 {
		t.Errorf("defaults lost: socket=%v page=%d history=%d", cfg.SocketEnabled(), cfg.GiftPageSize(), cfg.RecentSize())
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("theme = ["), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestSessionOverridesTypedFields(t *testing.T) {
	cfg := defaultConfig()
	cfg.Catalog = "themes.json"

	cfg.Set("night_mode", "true")
	cfg.Set("animation_frames", "0")
	cfg.Set("scroll_overflow", "many")

	if !cfg.NightModeEnabled() {
		t.Error("session night_mode should win")
	}
	if cfg.Frames() != 0 {
		t.Errorf("expected 0 frames, got %d", cfg.Frames())
	}
	if cfg.Overflow() != 1 {
		t.Errorf("malformed override should fall back, got %d", cfg.Overflow())
	}
	if cfg.CatalogPath() != "themes.json" {
		t.Errorf("expected catalog from file, got %q", cfg.CatalogPath())
	}
}

func TestSaveToFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := defaultConfig()
	cfg.Catalog = "gifts.yaml"
	cfg.Settings["greeting"] = "hi"
	cfg.Set("session_only", "x")

	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}
	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if loaded.Catalog != "gifts.yaml" || loaded.Get("greeting") != "hi" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
	if loaded.Get("session_only") != "" {
		t.Error("session settings must not be persisted")
	}
}

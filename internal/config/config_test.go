package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/swimlane/internal/types"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	// Test a few key bindings
	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddCard != "a" {
		t.Errorf("Default AddCard key = %s, want a", defaults.AddCard)
	}
	if defaults.PickUp != "space" {
		t.Errorf("Default PickUp key = %s, want space", defaults.PickUp)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(ThemeFileEnv, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	// Should return default config
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Board.Orientation != "horizontal" {
		t.Errorf("Default orientation = %s, want horizontal", cfg.Board.Orientation)
	}
	if len(cfg.Board.Columns) != 3 {
		t.Errorf("Expected 3 default columns, got %d", len(cfg.Board.Columns))
	}
	if cfg.Sensors.PointerDistance != 5 || cfg.Sensors.TouchDelayMs != 250 || cfg.Sensors.TouchTolerance != 5 {
		t.Errorf("Unexpected default sensors %+v", cfg.Sensors)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(ThemeFileEnv, "")

	configDir := filepath.Join(tempDir, "swimlane")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `key_mappings:
  quit: "x"
  add_card: "n"
board:
  orientation: vertical
  columns:
    - id: A
      name: Backlog
sensors:
  pointer_distance: 2
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddCard != "n" {
		t.Errorf("Loaded AddCard key = %s, want n", cfg.KeyMappings.AddCard)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.DeleteCard != "d" {
		t.Errorf("Loaded DeleteCard key = %s, want d (default)", cfg.KeyMappings.DeleteCard)
	}
	if cfg.Board.Orientation != "vertical" {
		t.Errorf("Loaded orientation = %s, want vertical", cfg.Board.Orientation)
	}

	columns := cfg.Board.DefaultColumns()
	if len(columns) != 1 || columns[0].ID != types.ColumnID("A") || columns[0].Name != "Backlog" {
		t.Errorf("Unexpected columns %+v", columns)
	}

	sensors := cfg.Sensors.DndSensors(nil)
	if sensors.Pointer.Distance != 2 {
		t.Errorf("Pointer distance = %v, want 2", sensors.Pointer.Distance)
	}
	if sensors.Touch.Delay != 250*time.Millisecond {
		t.Errorf("Touch delay = %v, want 250ms", sensors.Touch.Delay)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "swimlane")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("board: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(ThemeFileEnv, "")

	cfg := &Config{
		KeyMappings: KeyMappings{
			Quit:    "x",
			AddCard: "n",
		},
	}

	// Apply defaults to fill missing fields
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "swimlane", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.KeyMappings.AddCard != "n" {
		t.Errorf("Reloaded AddCard key = %s, want n", cfg2.KeyMappings.AddCard)
	}
}

func TestDatabasePath(t *testing.T) {
	t.Setenv(DatabaseEnv, "")
	b := BoardConfig{Database: "/tmp/board.db"}

	got, err := b.DatabasePath()
	if err != nil || got != "/tmp/board.db" {
		t.Errorf("DatabasePath() = %s, %v; want /tmp/board.db", got, err)
	}

	t.Setenv(DatabaseEnv, "/tmp/env.db")
	got, _ = b.DatabasePath()
	if got != "/tmp/env.db" {
		t.Errorf("DatabasePath() = %s, want env override", got)
	}

	t.Setenv(DatabaseEnv, "")
	t.Setenv("HOME", "/home/tester")
	got, _ = BoardConfig{}.DatabasePath()
	if got != filepath.Join("/home/tester", ".swimlane", "swimlane.db") {
		t.Errorf("DatabasePath() = %s, want home default", got)
	}
}

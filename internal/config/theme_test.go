package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestThemeFileLoading(t *testing.T) {
	themeContent := []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
  drop_target: "#0000FF"
`)
	themePath := filepath.Join(t.TempDir(), "swimlane-theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(ThemeFileEnv, themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify theme was merged
	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.ColorScheme.Create)
	}
	if cfg.ColorScheme.DropTarget != "#0000FF" {
		t.Errorf("Expected drop target to be #0000FF, got %s", cfg.ColorScheme.DropTarget)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Delete == "" {
		t.Error("Expected delete to have default value")
	}
}

func TestThemePresetSwitch(t *testing.T) {
	scheme := DefaultColorScheme()

	scheme.MergeFrom(ColorScheme{Preset: "monochrome", Accent: "#123456"})

	if scheme.Preset != "monochrome" {
		t.Errorf("Expected preset monochrome, got %s", scheme.Preset)
	}
	if scheme.Accent != "#123456" {
		t.Errorf("Expected explicit accent to win, got %s", scheme.Accent)
	}
	if scheme.ColumnBorder != MonochromeColorScheme().ColumnBorder {
		t.Errorf("Expected monochrome column border, got %s", scheme.ColumnBorder)
	}
}

func TestApplyDefaultsFromPreset(t *testing.T) {
	scheme := ColorScheme{Preset: "wave", Accent: "#ABCDEF"}

	scheme.ApplyDefaults()

	if scheme.Accent != "#ABCDEF" {
		t.Errorf("Expected custom accent kept, got %s", scheme.Accent)
	}
	if scheme.Normal != "#DCD7BA" {
		t.Errorf("Expected wave normal text color, got %s", scheme.Normal)
	}
}

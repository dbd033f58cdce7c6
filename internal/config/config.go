package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/swimlane/internal/dnd"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Environment overrides
const (
	ThemeFileEnv = "SWIMLANE_THEME_FILE"
	DatabaseEnv  = "SWIMLANE_DB"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings  `yaml:"key_mappings"`
	ColorScheme ColorScheme  `yaml:"theme"`
	Board       BoardConfig  `yaml:"board"`
	Sensors     SensorConfig `yaml:"sensors"`
}

// ColumnConfig seeds a column into an empty board
type ColumnConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// BoardConfig controls the board layout and storage
type BoardConfig struct {
	Orientation string         `yaml:"orientation"` // horizontal or vertical
	Columns     []ColumnConfig `yaml:"columns"`
	Database    string         `yaml:"database"`
}

// SensorConfig holds the drag activation constraints
type SensorConfig struct {
	PointerDistance float64 `yaml:"pointer_distance"`
	TouchDelayMs    int     `yaml:"touch_delay_ms"`
	TouchTolerance  float64 `yaml:"touch_tolerance"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	config := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from SWIMLANE_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := DefaultConfig()
		loadThemeFile(config)
		return config, nil
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := DefaultConfig()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults, then let the theme file win
	config.applyDefaults()
	loadThemeFile(&config)

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "swimlane", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "swimlane", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	c.Board.applyDefaults()
	c.Sensors.applyDefaults()
}

func (b *BoardConfig) applyDefaults() {
	if b.Orientation != "vertical" {
		b.Orientation = "horizontal"
	}
	if len(b.Columns) == 0 {
		for _, col := range models.DefaultColumns {
			b.Columns = append(b.Columns, ColumnConfig{ID: col.ID.String(), Name: col.Name})
		}
	}
}

// DefaultColumns converts the configured columns into board columns
func (b BoardConfig) DefaultColumns() []models.Column {
	columns := make([]models.Column, 0, len(b.Columns))
	for i, col := range b.Columns {
		columns = append(columns, models.Column{ID: types.ColumnID(col.ID), Name: col.Name, Position: i})
	}
	return columns
}

// DatabasePath returns the sqlite file path: $SWIMLANE_DB, the configured
// path, or ~/.swimlane/swimlane.db
func (b BoardConfig) DatabasePath() (string, error) {
	if p := os.Getenv(DatabaseEnv); p != "" {
		return p, nil
	}
	if b.Database != "" {
		return b.Database, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".swimlane", "swimlane.db"), nil
}

func (s *SensorConfig) applyDefaults() {
	if s.PointerDistance <= 0 {
		s.PointerDistance = dnd.DefaultPointerDistance
	}
	if s.TouchDelayMs <= 0 {
		s.TouchDelayMs = int(dnd.DefaultTouchDelay / time.Millisecond)
	}
	if s.TouchTolerance <= 0 {
		s.TouchTolerance = dnd.DefaultTouchTolerance
	}
}

// DndSensors converts the configured constraints into drag sensors
func (s SensorConfig) DndSensors(getter dnd.CoordinateGetter) dnd.Sensors {
	sensors := dnd.DefaultSensors(getter)
	sensors.Pointer.Distance = s.PointerDistance
	sensors.Touch.Delay = time.Duration(s.TouchDelayMs) * time.Millisecond
	sensors.Touch.Tolerance = s.TouchTolerance
	return sensors
}

package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - creation forms, placeholder zone
	Delete string `yaml:"delete"` // Red - trash zone

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	DragBorder     string `yaml:"drag_border"` // Card or column being dragged
	DropTarget     string `yaml:"drop_target"` // Column under the drag

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// Presets lists the preset names accepted in the config file
func Presets() []string {
	return []string{"default", "monochrome", "wave"}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.fill(preset)
}

// MergeFrom overrides colors with the non-empty values of other.
// A preset change in other re-bases every color not set explicitly.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}
	merged := other
	merged.fill(c)
	*c = merged
}

// fill copies every field of base into the empty fields of c
func (c *ColorScheme) fill(base *ColorScheme) {
	set := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	set(&c.Preset, base.Preset)
	set(&c.Accent, base.Accent)
	set(&c.Create, base.Create)
	set(&c.Delete, base.Delete)
	set(&c.ColumnBorder, base.ColumnBorder)
	set(&c.CardBorder, base.CardBorder)
	set(&c.CardBackground, base.CardBackground)
	set(&c.SelectedBorder, base.SelectedBorder)
	set(&c.DragBorder, base.DragBorder)
	set(&c.DropTarget, base.DropTarget)
	set(&c.Title, base.Title)
	set(&c.Subtle, base.Subtle)
	set(&c.Normal, base.Normal)
	set(&c.InfoFg, base.InfoFg)
	set(&c.InfoBg, base.InfoBg)
	set(&c.ErrorFg, base.ErrorFg)
	set(&c.ErrorBg, base.ErrorBg)
}

package theme

import "github.com/thenoetrevino/swimlane/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Create         string
	Delete         string
	ColumnBorder   string
	CardBorder     string
	CardBg         string
	SelectedBorder string
	DragBorder     string
	DropTarget     string
	Title          string
	Subtle         string
	Normal         string
	InfoFg         string
	InfoBg         string
	ErrorFg        string
	ErrorBg        string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Create = colors.Create
	Delete = colors.Delete
	ColumnBorder = colors.ColumnBorder
	CardBorder = colors.CardBorder
	CardBg = colors.CardBackground
	SelectedBorder = colors.SelectedBorder
	DragBorder = colors.DragBorder
	DropTarget = colors.DropTarget
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}

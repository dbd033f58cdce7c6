package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Semantic
		Create: "#5FD75F",
		Delete: "#FF0000",

		// UI elements
		ColumnBorder:   "#5F87D7",
		CardBorder:     "#585858",
		CardBackground: "#262626",
		SelectedBorder: "#D75FD7",
		DragBorder:     "#FFD700",
		DropTarget:     "#5FD75F",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:  "#00AFFF",
		InfoBg:  "#00005F",
		ErrorFg: "#FF0000",
		ErrorBg: "#5F0000",
	}
}

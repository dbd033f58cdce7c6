package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Create: "#FFFFFF",
		Delete: "#FFFFFF",

		ColumnBorder:   "#FFFFFF",
		CardBorder:     "#585858",
		CardBackground: "#1C1C1C",
		SelectedBorder: "#FFFFFF",
		DragBorder:     "#D0D0D0",
		DropTarget:     "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:  "#FFFFFF",
		InfoBg:  "#1C1C1C",
		ErrorFg: "#FFFFFF",
		ErrorBg: "#585858",
	}
}

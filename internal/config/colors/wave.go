package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary accent color (oniViolet)
		Accent: "#957FB8",

		// Semantic colors
		Create: "#98BB6C", // springGreen
		Delete: "#FF5D62", // peachRed

		// UI element colors
		ColumnBorder:   "#54546D", // sumiInk6
		CardBorder:     "#2A2A37", // sumiInk4
		CardBackground: "#1F1F28", // sumiInk3
		SelectedBorder: "#7AA89F", // waveAqua2
		DragBorder:     "#FF9E3B", // roninYellow
		DropTarget:     "#98BB6C",

		// Text colors
		Title:  "#7E9CD8", // crystalBlue
		Subtle: "#727169", // fujiGray
		Normal: "#DCD7BA", // fujiWhite

		// Notification colors
		InfoFg:  "#658594", // dragonBlue
		InfoBg:  "#252535", // winterBlue
		ErrorFg: "#E82424", // samuraiRed
		ErrorBg: "#43242B", // winterRed
	}
}

package config

import "github.com/thenoetrevino/swimlane/internal/config/colors"

// ColorScheme is the theme section of the config file
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}

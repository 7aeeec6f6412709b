package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ColorNameDropIndicator is the color of the insert line shown above the
// active drop position
const ColorNameDropIndicator fyne.ThemeColorName = "dropIndicator"

// LauncherTheme tightens list spacing for a dense sidebar and adds the drop
// indicator color
type LauncherTheme struct{}

// NewLauncherTheme creates the application theme
func NewLauncherTheme() fyne.Theme {
	return &LauncherTheme{}
}

// Color returns theme colors
func (t *LauncherTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameDropIndicator, theme.ColorNamePrimary:
		return color.NRGBA{R: 10, G: 132, B: 255, A: 255} // accent blue
	case theme.ColorNameSelection:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 10, G: 132, B: 255, A: 80}
		}
		return color.NRGBA{R: 10, G: 132, B: 255, A: 48}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 30, G: 30, B: 32, A: 255}
		}
		return color.NRGBA{R: 246, G: 246, B: 248, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *LauncherTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *LauncherTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *LauncherTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 5
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}

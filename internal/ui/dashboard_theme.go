package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Ares palette
var (
	colorMenu      = color.NRGBA{R: 30, G: 34, B: 48, A: 255}
	colorHeader    = color.NRGBA{R: 40, G: 45, B: 62, A: 255}
	colorCard      = color.NRGBA{R: 52, G: 58, B: 78, A: 255}
	colorAccent    = color.NRGBA{R: 0, G: 116, B: 217, A: 255}
	colorSelection = color.NRGBA{R: 0, G: 116, B: 217, A: 90}
)

// DashboardTheme is a dark compact theme with reduced padding and font sizes
type DashboardTheme struct{}

// NewDashboardTheme creates a new dashboard theme
func NewDashboardTheme() fyne.Theme {
	return &DashboardTheme{}
}

// Color returns theme colors
func (t *DashboardTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNamePrimary:
		return colorAccent
	case theme.ColorNameSelection:
		return colorSelection
	case theme.ColorNameBackground:
		return colorHeader
	case theme.ColorNameButton, theme.ColorNameInputBackground:
		return colorCard
	case theme.ColorNameForeground:
		return color.RGBA{R: 236, G: 239, B: 244, A: 255}
	}

	// Use dark defaults for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *DashboardTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DashboardTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *DashboardTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}

package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	TrayMenuTitle = "Ares"
)

// Layout sizing
const (
	MenuButtonWidth    float32 = 60
	MenuButtonHeight   float32 = 41
	HeaderButtonWidth  float32 = 32
	HeaderButtonHeight float32 = 30

	TaskPanelWidth  float32 = 280
	TaskRowHeight   float32 = 32
	TaskRowPadding  float32 = 6
	MetricCardWidth float32 = 150

	ChartMinWidth  float32 = 320
	ChartMinHeight float32 = 240

	MetricValueTextSize float32 = 26
	StrikeThickness     float32 = 1
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 380
)

// Tooltip behavior
const (
	TooltipAutoHide = 1500 * time.Millisecond
	TooltipOffset   = 6
)

// Animations
const (
	ChartFadeDuration = 400 * time.Millisecond
)

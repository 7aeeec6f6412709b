package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconGroup    = "▾"
	IconInstance = "•"
)

// Layout sizing (sidebar rows)
const (
	ChildIndent        float32 = 20
	IndicatorDotSize   float32 = 6
	IndicatorThickness float32 = 2
	IndicatorPadding   float32 = 8

	SidebarMinWidth float32 = 198
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 300
)

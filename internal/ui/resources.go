package ui

import (
	"fyne.io/fyne/v2"
)

// AppIcon is the icon file looked up next to the executable
const AppIcon = "launcher.png"

// LoadAppIcon loads the window icon from disk
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

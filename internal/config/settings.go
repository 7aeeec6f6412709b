package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/launcher/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyInstancesDir  = "instances_directory"
	KeyLanguage      = "app_language"
	KeySidebarOffset = "sidebar_offset"
)

// Default values
const (
	DefaultLanguage      = "system"
	DefaultSidebarOffset = 0.25
	FallbackInstancesDir = "/tmp/launcher/instances"
)

// Sidebar split bounds
const (
	MinSidebarOffset = 0.15
	MaxSidebarOffset = 0.6
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetInstancesDirectory returns the directory holding per-instance folders
func (s *Settings) GetInstancesDirectory() string {
	dir := s.app.Preferences().String(KeyInstancesDir)
	if dir == "" {
		defaultDir, err := platform.GetDefaultInstancesDir()
		if err != nil {
			defaultDir = FallbackInstancesDir
		}
		s.SetInstancesDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetInstancesDirectory sets the instances directory
func (s *Settings) SetInstancesDirectory(dir string) {
	s.app.Preferences().SetString(KeyInstancesDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetSidebarOffset returns the split position between sidebar and detail
func (s *Settings) GetSidebarOffset() float64 {
	return clampOffset(s.app.Preferences().FloatWithFallback(KeySidebarOffset, DefaultSidebarOffset))
}

// SetSidebarOffset stores the split position, clamped to a usable range
func (s *Settings) SetSidebarOffset(offset float64) {
	s.app.Preferences().SetFloat(KeySidebarOffset, clampOffset(offset))
}

func clampOffset(offset float64) float64 {
	if offset < MinSidebarOffset {
		return MinSidebarOffset
	}
	if offset > MaxSidebarOffset {
		return MaxSidebarOffset
	}
	return offset
}

package config

import (
	"fyne.io/fyne/v2"

	"github.com/pydash/ares/internal/charts"
)

// Settings keys for Fyne preferences
const (
	KeyDefaultChart     = "default_chart"
	KeyBarOrientation   = "bar_orientation"
	KeyLanguage         = "app_language"
	KeyRevealBackendFix = "reveal_backend_on_fix"
)

// Default values
const (
	DefaultChart            = charts.KindBar
	DefaultBarOrientation   = charts.Horizontal
	DefaultLanguage         = "system"
	DefaultRevealBackendFix = true
)

// Settings manages user preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDefaultChart returns the chart shown at startup
func (s *Settings) GetDefaultChart() charts.Kind {
	value := s.app.Preferences().String(KeyDefaultChart)
	if value == "" {
		s.SetDefaultChart(DefaultChart)
		return DefaultChart
	}
	kind, err := charts.ParseKind(value)
	if err != nil {
		return DefaultChart
	}
	return kind
}

// SetDefaultChart sets the chart shown at startup
func (s *Settings) SetDefaultChart(kind charts.Kind) {
	s.app.Preferences().SetString(KeyDefaultChart, kind.String())
}

// GetBarOrientation returns the bar chart orientation
func (s *Settings) GetBarOrientation() charts.Orientation {
	value := s.app.Preferences().String(KeyBarOrientation)
	if value == "" {
		s.SetBarOrientation(DefaultBarOrientation)
		return DefaultBarOrientation
	}
	o, err := charts.ParseOrientation(value)
	if err != nil {
		return DefaultBarOrientation
	}
	return o
}

// SetBarOrientation sets the bar chart orientation
func (s *Settings) SetBarOrientation(o charts.Orientation) {
	s.app.Preferences().SetString(KeyBarOrientation, o.String())
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

// GetRevealBackendOnFix returns whether acknowledging a backend failure
// reveals the backend file
func (s *Settings) GetRevealBackendOnFix() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealBackendFix, DefaultRevealBackendFix)
}

// SetRevealBackendOnFix sets whether acknowledging a backend failure reveals
// the backend file
func (s *Settings) SetRevealBackendOnFix(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealBackendFix, reveal)
}

// GetChartOptions returns the selectable chart kinds
func (s *Settings) GetChartOptions() []charts.Kind {
	return []charts.Kind{charts.KindBar, charts.KindLine, charts.KindPie}
}

// GetOrientationOptions returns the selectable bar orientations
func (s *Settings) GetOrientationOptions() []charts.Orientation {
	return []charts.Orientation{charts.Horizontal, charts.Vertical}
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

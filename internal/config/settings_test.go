package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/pydash/ares/internal/charts"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDefaultChart(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if kind := settings.GetDefaultChart(); kind != DefaultChart {
		t.Errorf("Expected default chart %s, got %s", DefaultChart, kind)
	}

	// Test setting custom value
	settings.SetDefaultChart(charts.KindPie)
	if kind := settings.GetDefaultChart(); kind != charts.KindPie {
		t.Errorf("Expected chart %s, got %s", charts.KindPie, kind)
	}

	// Test unknown stored value falls back
	app.Preferences().SetString(KeyDefaultChart, "radar")
	if kind := settings.GetDefaultChart(); kind != DefaultChart {
		t.Errorf("Unknown chart should fall back to %s, got %s", DefaultChart, kind)
	}
}

func TestBarOrientation(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if o := settings.GetBarOrientation(); o != charts.Horizontal {
		t.Errorf("Expected default orientation %s, got %s", charts.Horizontal, o)
	}

	// Test setting custom value
	settings.SetBarOrientation(charts.Vertical)
	if o := settings.GetBarOrientation(); o != charts.Vertical {
		t.Errorf("Expected orientation %s, got %s", charts.Vertical, o)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestRevealBackendOnFix(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetRevealBackendOnFix() {
		t.Error("Reveal on fix should be enabled by default")
	}

	settings.SetRevealBackendOnFix(false)
	if settings.GetRevealBackendOnFix() {
		t.Error("Reveal on fix should be disabled after SetRevealBackendOnFix(false)")
	}
}

func TestGetChartOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetChartOptions()
	expectedOptions := []charts.Kind{charts.KindBar, charts.KindLine, charts.KindPie}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d chart options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Chart option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/pydash/ares/internal/charts"
	"github.com/pydash/ares/internal/config"
	"github.com/pydash/ares/internal/model"
	"github.com/pydash/ares/internal/window"
)

func TestTaskRow_Bind(t *testing.T) {
	test.NewApp()

	tests := []struct {
		name    string
		checked bool
	}{
		{"completed", true},
		{"outstanding", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := NewTaskRow()
			item := model.NewTaskItem("Write report", tt.checked)
			row.Bind(item, false, nil, nil)

			if row.Text() != "Write report" {
				t.Errorf("Text = %q", row.Text())
			}
			if row.IsChecked() != tt.checked {
				t.Errorf("IsChecked = %v, expected %v", row.IsChecked(), tt.checked)
			}
			if row.IsStruck() != tt.checked || row.IsItalic() != tt.checked {
				t.Errorf("Struck/italic = %v/%v, expected %v", row.IsStruck(), row.IsItalic(), tt.checked)
			}
		})
	}
}

func TestTaskRow_Callbacks(t *testing.T) {
	test.NewApp()

	row := NewTaskRow()
	var checked []bool
	tapped := 0
	row.Bind(model.NewTaskItem("Call back", false), false,
		func(c bool) { checked = append(checked, c) },
		func() { tapped++ },
	)

	// Binding must not fire the change callback
	if len(checked) != 0 {
		t.Errorf("Bind fired OnChanged: %v", checked)
	}

	row.check.SetChecked(true)
	if len(checked) != 1 || !checked[0] {
		t.Errorf("Expected one checked callback, got %v", checked)
	}

	test.Tap(row)
	if tapped != 1 {
		t.Errorf("Expected one tap, got %d", tapped)
	}
}

func TestTaskRow_RebindDoesNotLeakCallback(t *testing.T) {
	test.NewApp()

	row := NewTaskRow()
	calls := 0
	row.Bind(model.NewTaskItem("first", false), false, func(bool) { calls++ }, nil)
	row.Bind(model.NewTaskItem("second", true), false, nil, nil)

	if calls != 0 {
		t.Errorf("Rebinding fired the previous callback %d times", calls)
	}
}

func TestChartView_SetChart(t *testing.T) {
	test.NewApp()

	view := NewChartView()
	chart := charts.BarChart(charts.Horizontal)
	view.SetChart(chart)

	if view.Chart() != chart {
		t.Error("Chart() should return the chart that was set")
	}
	if view.image.Image == nil {
		t.Fatal("Expected a rendered image")
	}

	view.Resize(fyne.NewSize(400, 300))
	bounds := view.image.Image.Bounds()
	if bounds.Dx() != 400 || bounds.Dy() != 300 {
		t.Errorf("Rendered size = %dx%d, expected 400x300", bounds.Dx(), bounds.Dy())
	}
}

func TestChartView_NilChartRendersBlank(t *testing.T) {
	test.NewApp()

	view := NewChartView()
	view.SetChart(nil)

	if view.image.Image == nil {
		t.Error("Expected a blank image for a nil chart")
	}
	if size := view.MinSize(); size.Width != ChartMinWidth || size.Height != ChartMinHeight {
		t.Errorf("MinSize = %v", size)
	}
}

func TestControlsLayout(t *testing.T) {
	test.NewApp()

	menu := []fyne.CanvasObject{widget.NewButton("q", nil), widget.NewButton("s", nil), widget.NewButton("u", nil)}
	controlsLayout{}.Layout(menu, fyne.NewSize(210, 680))

	expected := window.ControlPositions(fyne.NewSize(210, 680), fyne.Size{})
	for i, pos := range []fyne.Position{expected.Quit, expected.Settings, expected.User} {
		if menu[i].Position() != pos {
			t.Errorf("Menu control %d at %v, expected %v", i, menu[i].Position(), pos)
		}
	}

	header := []fyne.CanvasObject{widget.NewButton("c", nil), widget.NewButton("t", nil)}
	controlsLayout{header: true}.Layout(header, fyne.NewSize(890, 50))

	if header[0].Position() != fyne.NewPos(809, 10) || header[1].Position() != fyne.NewPos(849, 10) {
		t.Errorf("Header controls at %v and %v", header[0].Position(), header[1].Position())
	}
	if header[1].Size() != fyne.NewSize(HeaderButtonWidth, HeaderButtonHeight) {
		t.Errorf("Header control size = %v", header[1].Size())
	}
}

func TestDragArea_TracksPointerTravel(t *testing.T) {
	test.NewApp()

	host := &fakeHost{}
	frame := window.NewFrame(host)
	area := newDragArea(widget.NewLabel("header"), frame)

	// Press at (100, 10) and move one pixel right per event
	for i := 1; i <= 5; i++ {
		area.Dragged(&fyne.DragEvent{
			PointEvent: fyne.PointEvent{
				Position:         fyne.NewPos(100+float32(i), 10),
				AbsolutePosition: fyne.NewPos(100+float32(i), 10),
			},
			Dragged: fyne.NewDelta(1, 0),
		})
		if got := frame.Position(); got != fyne.NewPos(float32(i), 0) {
			t.Errorf("After event %d position = %v, expected (%d, 0)", i, got, i)
		}
	}
	area.DragEnd()

	if len(host.moves) != 5 {
		t.Errorf("Expected 5 host moves, got %d", len(host.moves))
	}

	// A new drag starts from the tracked position
	area.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{AbsolutePosition: fyne.NewPos(50, 20)},
		Dragged:    fyne.NewDelta(0, 2),
	})
	if got := frame.Position(); got != fyne.NewPos(5, 2) {
		t.Errorf("Second drag position = %v, expected (5, 2)", got)
	}
}

func TestLocalization(t *testing.T) {
	l := NewLocalization()

	if got := l.Format(KeyGreeting, "ana", 2); got != "Hello, ana! You have (2) outstanding tasks to complete." {
		t.Errorf("Format = %q", got)
	}

	l.SetLanguage("xx")
	if l.currentLanguage != "en" {
		t.Errorf("Unknown language should be ignored, got %s", l.currentLanguage)
	}

	l.SetLanguage("ru")
	if l.GetText(KeyQuit) != "Выход" {
		t.Errorf("Russian quit = %q", l.GetText(KeyQuit))
	}

	if l.GetText("missing_key") != "missing_key" {
		t.Error("Missing key should fall back to the key itself")
	}

	l.SetLanguage("system")
	if l.currentLanguage != "en" {
		t.Errorf("System language should resolve to en, got %s", l.currentLanguage)
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	// Every language offered in settings must be fully translated
	for lang := range config.NewSettings(test.NewApp()).GetLanguageOptions() {
		if lang == "system" {
			continue
		}
		if _, ok := l.texts[lang]; !ok {
			t.Errorf("Language %s has no texts", lang)
			continue
		}
		for key := range english {
			if _, ok := l.texts[lang][key]; !ok {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestIconResource(t *testing.T) {
	test.NewApp()

	tests := []struct {
		name   string
		expect bool
	}{
		{IconSettings, true},
		{IconMaximize, true},
		{IconPieChart, true},
		{"", false},
		{"no_such_icon", false},
		{"missing.png", false},
	}

	for _, tt := range tests {
		if got := IconResource(tt.name); (got != nil) != tt.expect {
			t.Errorf("IconResource(%q) = %v, expected present %v", tt.name, got, tt.expect)
		}
	}

	if ToggleIconResource(window.IconMinimize) == nil || ToggleIconResource(window.IconMaximize) == nil {
		t.Error("Toggle icons should resolve")
	}
	if LoadLogoResource("missing.png") == nil {
		t.Error("Missing logo should fall back to the theme logo")
	}
}

func TestTooltipButton(t *testing.T) {
	test.NewApp()

	b := NewTooltipButton("Bar", nil, "Show bars", nil)
	if b.Tooltip() != "Show bars" {
		t.Errorf("Tooltip = %q", b.Tooltip())
	}

	b.SetTooltip(window.TooltipMinimize)
	if b.Tooltip() != window.TooltipMinimize {
		t.Errorf("Tooltip after set = %q", b.Tooltip())
	}
}

func TestSettingsDialog_Save(t *testing.T) {
	app := test.NewApp()
	win := app.NewWindow("settings")
	settings := config.NewSettings(app)

	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), win, func() { saved++ })
	sd.loadCurrentSettings()

	if sd.chartSelect.Selected != charts.KindBar.String() {
		t.Errorf("Chart select = %q", sd.chartSelect.Selected)
	}

	sd.chartSelect.SetSelected(charts.KindLine.String())
	sd.orientationSelect.SetSelected(charts.Vertical.String())
	sd.languageSelect.SetSelected("Português")
	sd.revealCheck.SetChecked(false)
	sd.save()

	if settings.GetDefaultChart() != charts.KindLine {
		t.Errorf("Default chart = %s", settings.GetDefaultChart())
	}
	if settings.GetBarOrientation() != charts.Vertical {
		t.Errorf("Orientation = %s", settings.GetBarOrientation())
	}
	if settings.GetLanguage() != "pt" {
		t.Errorf("Language = %s", settings.GetLanguage())
	}
	if settings.GetRevealBackendOnFix() {
		t.Error("Reveal on fix should be disabled")
	}
	if saved != 1 {
		t.Errorf("onSaved called %d times", saved)
	}
}

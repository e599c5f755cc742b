package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/pydash/ares/internal/charts"
	"github.com/pydash/ares/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	chartSelect       *widget.Select
	orientationSelect *widget.Select
	languageSelect    *widget.Select
	revealCheck       *widget.Check

	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values have been persisted.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	chartOptions := []string{}
	for _, kind := range sd.settings.GetChartOptions() {
		chartOptions = append(chartOptions, kind.String())
	}
	sd.chartSelect = widget.NewSelect(chartOptions, nil)

	orientationOptions := []string{}
	for _, o := range sd.settings.GetOrientationOptions() {
		orientationOptions = append(orientationOptions, o.String())
	}
	sd.orientationSelect = widget.NewSelect(orientationOptions, nil)

	// Languages are listed by display name, sorted for a stable order
	languageOptions := []string{}
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		languageOptions = append(languageOptions, label)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.revealCheck = widget.NewCheck(l.GetText(KeyRevealBackend), nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyChartSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyDefaultChart)+":"),
		sd.chartSelect,

		widget.NewLabel(l.GetText(KeyBarOrientation)+":"),
		sd.orientationSelect,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
		sd.revealCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.chartSelect.SetSelected(sd.settings.GetDefaultChart().String())
	sd.orientationSelect.SetSelected(sd.settings.GetBarOrientation().String())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.revealCheck.SetChecked(sd.settings.GetRevealBackendOnFix())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// save persists the widget values and notifies the owner
func (sd *SettingsDialog) save() {
	if kind, err := charts.ParseKind(sd.chartSelect.Selected); err == nil {
		sd.settings.SetDefaultChart(kind)
	}

	if o, err := charts.ParseOrientation(sd.orientationSelect.Selected); err == nil {
		sd.settings.SetBarOrientation(o)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetRevealBackendOnFix(sd.revealCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

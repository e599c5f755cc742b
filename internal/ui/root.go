package ui

import (
	"context"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/pydash/ares/internal/backend"
	"github.com/pydash/ares/internal/charts"
	"github.com/pydash/ares/internal/config"
	"github.com/pydash/ares/internal/model"
	"github.com/pydash/ares/internal/platform"
	"github.com/pydash/ares/internal/prompt"
	"github.com/pydash/ares/internal/status"
	"github.com/pydash/ares/internal/window"
)

// Logo sizing
const (
	LogoSize float32 = 48
)

var metricWidgets = [model.MetricCount]string{
	config.WidgetMetric1,
	config.WidgetMetric2,
	config.WidgetMetric3,
	config.WidgetMetric4,
}

// StatusChecker runs the three status checks behind the indicator buttons
type StatusChecker interface {
	Backend() status.BackendResult
	Internet(ctx context.Context) status.InternetResult
	Version() status.VersionResult
}

// Options supplies the dashboard's collaborators. Nil fields get the
// production implementations.
type Options struct {
	Version  string
	Prompter prompt.Prompter
	Checker  StatusChecker
	Host     window.Host

	// Exit terminates the application with the given code
	Exit func(code int)

	// Async runs f off the UI goroutine; Main posts f back to it
	Async func(f func())
	Main  func(f func())

	// Reveal shows a file in the OS file manager; Open opens it in the
	// default application when no file manager can reveal it
	Reveal func(path string) error
	Open   func(path string) error

	// User returns the login name for the greeting
	User func() string
}

// Dashboard is the main window: the menu frame with chart and status
// buttons, the header with the greeting and window controls, the metric
// counters, the chart area and the task list.
type Dashboard struct {
	app          fyne.App
	window       fyne.Window
	cfg          *config.Config
	store        *backend.Store
	settings     *config.Settings
	localization *Localization

	prompter prompt.Prompter
	checker  StatusChecker
	host     *fyneHost
	frame    *window.Frame
	exit     func(code int)
	async    func(f func())
	main     func(f func())
	reveal   func(path string) error
	open     func(path string) error
	user     func() string

	state *model.BackendState

	// UI components
	greeting       *widget.Label
	metricValues   [model.MetricCount]*canvas.Text
	chartView      *ChartView
	tasks          *TaskPanel
	backendBtn     *TooltipButton
	internetBtn    *TooltipButton
	versionBtn     *TooltipButton
	toggleBtn      *TooltipButton
	menuControls   *fyne.Container
	headerControls *fyne.Container
}

// NewDashboard builds the dashboard into win and runs the startup sequence:
// load the backend once, show the greeting, metrics and default chart, run
// the three status checks and populate the task list.
func NewDashboard(app fyne.App, win fyne.Window, cfg *config.Config, store *backend.Store, settings *config.Settings, opts Options) *Dashboard {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	d := &Dashboard{
		app:          app,
		window:       win,
		cfg:          cfg,
		store:        store,
		settings:     settings,
		localization: localization,
	}
	d.applyOptions(opts)

	win.SetTitle(cfg.Window.Title)
	d.setupUI()

	d.state = d.store.LoadOrWarn(d.prompter)
	d.updateGreeting()
	d.updateMetrics()
	d.showDefaultChart()
	d.checkBackend(false)
	d.checkInternet(false)
	d.checkVersion(false)
	d.populateTasks()

	log.Printf("Dashboard initialized with backend %s", store.Path())
	return d
}

func (d *Dashboard) applyOptions(opts Options) {
	d.prompter = opts.Prompter
	if d.prompter == nil {
		d.prompter = prompt.NewDialogPrompter(d.window)
	}

	d.checker = opts.Checker
	if d.checker == nil {
		d.checker = status.NewChecker(d.store, d.cfg.Checks.URL, d.cfg.Checks.Timeout, opts.Version)
	}

	host := opts.Host
	if host == nil {
		d.host = newFyneHost(d.app, d.window, fyne.NewSize(d.cfg.Window.Width, d.cfg.Window.Height))
		host = d.host
	}
	d.frame = window.NewFrame(host)

	d.exit = opts.Exit
	if d.exit == nil {
		d.exit = func(code int) {
			if code != 0 {
				os.Exit(code)
			}
			d.app.Quit()
		}
	}

	d.async = opts.Async
	if d.async == nil {
		d.async = func(f func()) { go f() }
	}

	d.main = opts.Main
	if d.main == nil {
		d.main = fyne.Do
	}

	d.reveal = opts.Reveal
	if d.reveal == nil {
		d.reveal = platform.OpenFileInManager
	}

	d.open = opts.Open
	if d.open == nil {
		d.open = platform.OpenFileWithDefaultApp
	}

	d.user = opts.User
	if d.user == nil {
		d.user = platform.CurrentUser
	}
}

// button creates a tooltip button from the named widget's layout entry
func (d *Dashboard) button(name string, tapped func()) *TooltipButton {
	wc := d.cfg.Widget(name)
	return NewTooltipButton(wc.Text, IconResource(wc.Icon), wc.Tooltip, tapped)
}

// setupUI creates and arranges all UI components
func (d *Dashboard) setupUI() {
	cfg := d.cfg

	// Menu frame
	logo := canvas.NewImageFromResource(LoadLogoResource(cfg.Window.Icon))
	logo.FillMode = canvas.ImageFillContain
	logo.SetMinSize(fyne.NewSize(LogoSize, LogoSize))

	chartButtons := container.NewVBox(
		d.button(config.WidgetBarChart, d.onBarChart),
		d.button(config.WidgetLineChart, d.onLineChart),
		d.button(config.WidgetPieChart, d.onPieChart),
	)

	d.backendBtn = d.button(config.WidgetBackend, func() { d.checkBackend(true) })
	d.internetBtn = d.button(config.WidgetInternet, func() { d.checkInternet(true) })
	d.versionBtn = d.button(config.WidgetVersion, func() { d.checkVersion(true) })
	statusButtons := container.NewVBox(d.backendBtn, d.internetBtn, d.versionBtn)

	d.menuControls = container.New(controlsLayout{},
		d.button(config.WidgetQuit, d.onQuit),
		d.button(config.WidgetSettings, d.onShowSettings),
		d.button(config.WidgetUser, d.onShowUser),
	)

	menuBg := canvas.NewRectangle(colorMenu)
	menuBg.SetMinSize(fyne.NewSize(cfg.Window.MenuWidth, 0))
	menu := container.NewStack(
		menuBg,
		container.NewPadded(container.NewVBox(logo, widget.NewSeparator(), chartButtons, widget.NewSeparator(), statusButtons)),
		d.menuControls,
	)

	// Header frame
	d.greeting = widget.NewLabelWithStyle(cfg.Widget(config.WidgetGreeting).Text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	d.toggleBtn = d.button(config.WidgetToggleSize, d.onToggleSize)
	d.applyAppearance(d.frame.Appearance())
	d.headerControls = container.New(controlsLayout{header: true},
		d.button(config.WidgetCollapse, d.onCollapse),
		d.toggleBtn,
	)

	headerBg := canvas.NewRectangle(colorHeader)
	headerBg.SetMinSize(fyne.NewSize(0, cfg.Window.HeaderHeight))
	header := container.NewStack(headerBg, newDragArea(container.NewPadded(d.greeting), d.frame), d.headerControls)

	// Metric counters
	cards := make([]fyne.CanvasObject, 0, model.MetricCount)
	for i, name := range metricWidgets {
		title := widget.NewLabel(cfg.Widget(name).Text)
		value := canvas.NewText(model.MetricPlaceholder, theme.Color(theme.ColorNameForeground))
		value.TextSize = MetricValueTextSize
		value.TextStyle = fyne.TextStyle{Bold: true}
		d.metricValues[i] = value

		cardBg := canvas.NewRectangle(colorCard)
		cardBg.SetMinSize(fyne.NewSize(MetricCardWidth, 0))
		cards = append(cards, container.NewStack(cardBg, container.NewPadded(container.NewVBox(title, value))))
	}
	metricsRow := container.NewGridWithColumns(model.MetricCount, cards...)

	// Chart and tasks
	d.chartView = NewChartView()
	d.tasks = NewTaskPanel(cfg, d.localization)

	tasksBg := canvas.NewRectangle(colorCard)
	tasksBg.SetMinSize(fyne.NewSize(TaskPanelWidth, 0))
	tasksPanel := container.NewStack(tasksBg, container.NewPadded(d.tasks.Container()))

	body := container.NewBorder(container.NewPadded(metricsRow), nil, nil, tasksPanel, container.NewPadded(d.chartView))
	content := container.NewBorder(nil, nil, menu, nil, container.NewBorder(header, nil, nil, nil, body))

	if d.host != nil {
		d.window.SetContent(container.NewStack(content, d.host.overlay))
		setupTray(d.app, d.localization, d.frame.Show, func() {
			d.frame.Show()
			d.onQuit()
		})
	} else {
		d.window.SetContent(content)
	}
	d.frame.SetOpacity(window.DefaultOpacity)

	log.Printf("UI setup completed successfully")
}

// updateGreeting shows the user name and outstanding task count. A missing
// backend state reads as zero tasks.
func (d *Dashboard) updateGreeting() {
	count := 0
	if d.state != nil {
		count = d.state.OutstandingCount()
	}
	d.greeting.SetText(d.localization.Format(KeyGreeting, d.user(), count))
}

// updateMetrics shows the four counters, or placeholders without a state
func (d *Dashboard) updateMetrics() {
	labels := [model.MetricCount]string{model.MetricPlaceholder, model.MetricPlaceholder, model.MetricPlaceholder, model.MetricPlaceholder}
	if d.state != nil {
		labels = model.FormatMetrics(d.state.Metrics)
	}
	for i, value := range d.metricValues {
		value.Text = labels[i]
		value.Refresh()
	}
}

// showDefaultChart shows the chart kind chosen in settings. Line and pie
// charts need metrics, so they fall back to bars without a state.
func (d *Dashboard) showDefaultChart() {
	if d.state != nil {
		switch d.settings.GetDefaultChart() {
		case charts.KindLine:
			d.chartView.SetChart(charts.LineChart(d.state.Metrics))
			return
		case charts.KindPie:
			d.chartView.SetChart(charts.PieChart(d.state.Metrics))
			return
		}
	}
	d.chartView.SetChart(charts.BarChart(d.settings.GetBarOrientation()))
}

func (d *Dashboard) populateTasks() {
	if d.state == nil {
		d.tasks.Populate(model.Tasks{})
		return
	}
	d.tasks.Populate(d.state.Tasks)
}

// checkBackend runs the integrity check. Interactive checks report the
// result, and acknowledging a failure reveals the backend file when enabled.
func (d *Dashboard) checkBackend(interactive bool) {
	res := d.checker.Backend()
	d.backendBtn.SetText(res.Link.Label())
	log.Printf("Backend %s", res.Link)

	if !interactive {
		return
	}

	title := d.localization.GetText(KeyBackendTitle)
	if !res.Link.IsFailure() {
		d.prompter.Prompt(prompt.Information, d.localization.GetText(KeyBackendLinked), title, nil)
		return
	}
	d.prompter.Prompt(prompt.Warning, d.localization.Format(KeyBackendError, res.Err), title, func(c prompt.Choice) {
		if c == prompt.ChoiceOk && d.settings.GetRevealBackendOnFix() {
			d.revealBackend()
		}
	})
}

// revealBackend shows the backend file in the file manager, falling back to
// opening it in the default application
func (d *Dashboard) revealBackend() {
	path := d.store.Path()
	err := d.reveal(path)
	if err == nil {
		return
	}
	log.Printf("Failed to reveal %s: %v", path, err)

	if err := d.open(path); err != nil {
		log.Printf("%s: %v", d.localization.GetText(KeyErrorOpeningFile), err)
	}
}

// checkInternet runs the reachability check off the UI goroutine and applies
// the result back on it
func (d *Dashboard) checkInternet(interactive bool) {
	d.async(func() {
		res := d.checker.Internet(context.Background())
		d.main(func() {
			d.applyInternet(res, interactive)
		})
	})
}

func (d *Dashboard) applyInternet(res status.InternetResult, interactive bool) {
	d.internetBtn.SetText(res.Link.Label())
	log.Printf("Internet %s", res.Link)

	if !interactive {
		return
	}

	title := d.localization.GetText(KeyInternetTitle)
	if !res.Link.IsFailure() {
		d.prompter.Prompt(prompt.Information, d.localization.GetText(KeyInternetConnected), title, nil)
		return
	}
	d.prompter.Prompt(prompt.Warning, d.localization.Format(KeyInternetError, res.Err), title, nil)
}

func (d *Dashboard) checkVersion(interactive bool) {
	res := d.checker.Version()
	d.versionBtn.SetText(res.State.Label())

	if !interactive {
		return
	}
	d.prompter.Prompt(prompt.Information,
		d.localization.Format(KeyVersionMessage, res.Version, res.UpdatedAtString()),
		d.localization.GetText(KeyVersionTitle), nil)
}

// onQuit dims the window and asks for confirmation
func (d *Dashboard) onQuit() {
	d.frame.SetOpacity(window.QuitPromptOpacity)
	d.prompter.Prompt(prompt.Question, d.localization.GetText(KeyQuitMessage), d.localization.GetText(KeyQuitTitle), func(c prompt.Choice) {
		if c == prompt.ChoiceYes {
			log.Printf("Quit confirmed")
			d.exit(0)
			return
		}
		d.frame.SetOpacity(window.DefaultOpacity)
	})
}

func (d *Dashboard) onToggleSize() {
	d.applyAppearance(d.frame.ToggleSize())
	d.menuControls.Refresh()
	d.headerControls.Refresh()
}

func (d *Dashboard) applyAppearance(a window.Appearance) {
	d.toggleBtn.SetIcon(ToggleIconResource(a.Icon))
	d.toggleBtn.SetTooltip(a.Tooltip)
}

func (d *Dashboard) onCollapse() {
	d.frame.Minimize()
}

func (d *Dashboard) onBarChart() {
	d.chartView.SetChart(charts.BarChart(d.settings.GetBarOrientation()))
}

// onLineChart reloads the backend and keeps the current chart on failure
func (d *Dashboard) onLineChart() {
	state := d.store.LoadOrWarn(d.prompter)
	if state == nil {
		return
	}
	d.chartView.SetChart(charts.LineChart(state.Metrics))
}

// onPieChart reloads the backend and keeps the current chart on failure
func (d *Dashboard) onPieChart() {
	state := d.store.LoadOrWarn(d.prompter)
	if state == nil {
		return
	}
	d.chartView.SetChart(charts.PieChart(state.Metrics))
}

func (d *Dashboard) onShowSettings() {
	NewSettingsDialog(d.settings, d.localization, d.window, d.onSettingsSaved).Show()
}

// onSettingsSaved applies a changed language to the visible texts
func (d *Dashboard) onSettingsSaved() {
	d.localization.SetLanguage(d.settings.GetLanguage())
	d.tasks.SetTitle(d.localization.GetText(KeyTasks))
	d.updateGreeting()
}

func (d *Dashboard) onShowUser() {
	d.prompter.Prompt(prompt.Information,
		d.localization.Format(KeyUserMessage, d.user()),
		d.localization.GetText(KeyUserTitle), nil)
}

// Greeting returns the header greeting text
func (d *Dashboard) Greeting() string {
	return d.greeting.Text
}

// MetricLabels returns the four counter texts
func (d *Dashboard) MetricLabels() [model.MetricCount]string {
	var out [model.MetricCount]string
	for i, value := range d.metricValues {
		out[i] = value.Text
	}
	return out
}

// BackendLabel returns the backend indicator text
func (d *Dashboard) BackendLabel() string {
	return d.backendBtn.Text
}

// InternetLabel returns the internet indicator text
func (d *Dashboard) InternetLabel() string {
	return d.internetBtn.Text
}

// VersionLabel returns the version indicator text
func (d *Dashboard) VersionLabel() string {
	return d.versionBtn.Text
}

// ToggleTooltip returns the size toggle button's tooltip
func (d *Dashboard) ToggleTooltip() string {
	return d.toggleBtn.Tooltip()
}

// Chart returns the chart currently shown
func (d *Dashboard) Chart() *charts.Chart {
	return d.chartView.Chart()
}

// Tasks returns the task panel
func (d *Dashboard) Tasks() *TaskPanel {
	return d.tasks
}

// Frame returns the window state machine
func (d *Dashboard) Frame() *window.Frame {
	return d.frame
}

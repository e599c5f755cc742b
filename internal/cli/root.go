// Package cli wires the ares command line: the default command opens the
// dashboard, status runs the checks headless and version prints the build.
package cli

import (
	"fmt"
	"log"
	"strings"
	"time"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/pydash/ares/internal/backend"
	"github.com/pydash/ares/internal/config"
	"github.com/pydash/ares/internal/ui"
)

// AppID identifies the application to fyne for preferences storage
const AppID = "com.pydash.ares"

// App holds the values shared by every subcommand
type App struct {
	Version      string
	BackendPath  string
	LayoutPath   string
	CheckURL     string
	CheckTimeout time.Duration
}

// NewRootCmd builds the ares command tree
func NewRootCmd(version string) *cobra.Command {
	app := &App{Version: version}

	cmd := &cobra.Command{
		Use:          "ares",
		Short:        "Ares desktop dashboard",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Open the dashboard
  ares

  # Use another backend file
  ares --backend ./data/backend.json

  # Run the status checks without a window
  ares status
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(app)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.BackendPath, "backend", "", "backend JSON file (default from layout)")
	flags.StringVar(&app.LayoutPath, "layout", "", "layout YAML file (default embedded)")
	flags.StringVar(&app.CheckURL, "check-url", "", "URL used by the internet check")
	flags.DurationVar(&app.CheckTimeout, "check-timeout", 0, "internet check timeout")

	cmd.AddCommand(newStatusCmd(app))
	cmd.AddCommand(newVersionCmd(app))
	return cmd
}

// loadConfig reads the layout and applies the command line overrides
func (a *App) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.LayoutPath)
	if err != nil {
		return nil, err
	}
	cfg.Override(a.BackendPath, a.CheckURL, a.CheckTimeout)
	return cfg, nil
}

func runDashboard(a *App) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	log.Printf("Ares v%s starting...", a.Version)

	fyneApp := fyneapp.NewWithID(AppID)
	fyneApp.Settings().SetTheme(ui.NewDashboardTheme())

	win := ui.NewMainWindow(fyneApp, cfg)
	settings := config.NewSettings(fyneApp)
	ui.NewDashboard(fyneApp, win, cfg, backend.NewStore(cfg.Backend.Path), settings, ui.Options{Version: a.Version})

	win.ShowAndRun()
	return nil
}

func newVersionCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ares v%s\n", a.Version)
		},
	}
}

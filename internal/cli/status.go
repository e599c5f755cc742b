package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pydash/ares/internal/backend"
	"github.com/pydash/ares/internal/config"
	"github.com/pydash/ares/internal/status"
)

// ErrChecksFailed is returned by status when the backend or internet check fails
var ErrChecksFailed = errors.New("one or more status checks failed")

var (
	successColor = lipgloss.Color("#22C55E")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#888888")
	borderColor  = lipgloss.Color("#333333")

	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Width(10)
	successStyle = lipgloss.NewStyle().Foreground(successColor).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)

	reportBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)
)

func newStatusCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Run the backend, internet and version checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			checker := status.NewChecker(backend.NewStore(cfg.Backend.Path), cfg.Checks.URL, cfg.Checks.Timeout, a.Version)
			report := checker.RunAll(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), renderReport(report, cfg))

			if !report.OK() {
				return ErrChecksFailed
			}
			return nil
		},
	}
}

// renderReport formats the check results as a bordered table
func renderReport(r status.Report, cfg *config.Config) string {
	lines := []string{
		titleStyle.Render("Ares status"),
		"",
		reportLine("Backend", r.Backend.Link.Label(), r.Backend.Link.IsFailure(), detail(cfg.Backend.Path, r.Backend.Err)),
		reportLine("Internet", r.Internet.Link.Label(), r.Internet.Link.IsFailure(), detail(cfg.Checks.URL, r.Internet.Err)),
		reportLine("Version", r.Version.State.Label(), false,
			fmt.Sprintf("v%s, updated %s", r.Version.Version, r.Version.UpdatedAtString())),
	}
	return reportBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func reportLine(name, label string, failed bool, info string) string {
	// Indicator labels carry a second "click to fix" line meant for the window
	state, _, _ := strings.Cut(label, "\n")
	style := successStyle
	if failed {
		style = errorStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render(name),
		style.Render(state),
		"  ",
		mutedStyle.Render(info),
	)
}

func detail(target string, err error) string {
	if err != nil {
		return fmt.Sprintf("%s: %v", target, err)
	}
	return target
}

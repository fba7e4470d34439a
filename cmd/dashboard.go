package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/pdpboard/core"
	"github.com/huangsam/pdpboard/internal/contract"
	"github.com/spf13/cobra"
)

// dashboardCmd renders every view at once.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard [workbook]",
	Short: "Render the full status dashboard.",
	Long: `Render the badges, stage chart, MVP and category splits, the selected
project's radar and detail, and the searchable project table.

With --output html the dashboard is a single self-contained page.
With --watch it is rebuilt whenever the workbook is saved.

Examples:
  # Everything in the terminal
  pdpboard dashboard

  # Shareable HTML page that follows the workbook
  pdpboard dashboard --output html --output-file board.html --watch`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		err := core.ExecuteDashboard(ctx, cfg, tableLoader, publishManager)
		if err != nil && !errors.Is(err, context.Canceled) {
			contract.LogFatal("Cannot render dashboard", err)
		}
	},
}

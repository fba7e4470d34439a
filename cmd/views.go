package cmd

import (
	"github.com/huangsam/pdpboard/core"
	"github.com/huangsam/pdpboard/internal/contract"
	"github.com/spf13/cobra"
)

// summaryCmd shows the headline badges.
var summaryCmd = &cobra.Command{
	Use:   "summary [workbook]",
	Short: "Show the headline project counts.",
	Long: `Show the total number of projects and how many have completed each milestone stage.

Examples:
  # Summarize the default workbook
  pdpboard summary

  # Summarize another workbook as JSON
  pdpboard summary PDP-2025.xlsx --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(rootCtx, cfg, tableLoader, publishManager); err != nil {
			contract.LogFatal("Cannot render summary", err)
		}
	},
}

// stagesCmd shows the stage status summary.
var stagesCmd = &cobra.Command{
	Use:   "stages [workbook]",
	Short: "Count projects per stage and status.",
	Long: `Count how many projects sit in each status for every pipeline stage.

Stages follow the pipeline order and statuses follow Done, In Progress,
Not Started, N/A, with any other values listed after them.

Examples:
  # Stage summary as a table
  pdpboard stages

  # Export for a spreadsheet
  pdpboard stages --output csv --output-file stages.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStages(rootCtx, cfg, tableLoader, publishManager); err != nil {
			contract.LogFatal("Cannot render stage summary", err)
		}
	},
}

// distCmd shows the value counts of one column.
var distCmd = &cobra.Command{
	Use:   "dist [workbook]",
	Short: "Show the value distribution of a column.",
	Long: `Count the distinct values of one column, most frequent first.

Examples:
  # Projects per category (default)
  pdpboard dist

  # MVP status split
  pdpboard dist --column MVP`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDistribution(rootCtx, cfg, tableLoader, publishManager); err != nil {
			contract.LogFatal("Cannot render distribution", err)
		}
	},
}

// radarCmd shows the stage scores of one project.
var radarCmd = &cobra.Command{
	Use:   "radar [workbook]",
	Short: "Show per-stage progress scores for one project.",
	Long: `Score one project across every stage: Done is 1, In Progress is 0.5,
anything else is 0.

Examples:
  pdpboard radar --project "Solar Kiln"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRadar(rootCtx, cfg, tableLoader, publishManager); err != nil {
			contract.LogFatal("Cannot render radar", err)
		}
	},
}

// tableCmd shows the searchable project table.
var tableCmd = &cobra.Command{
	Use:   "table [workbook]",
	Short: "List projects, optionally filtered by a search term.",
	Long: `List every project with its founder, category, decision and progress.
With --query, only rows where any displayed cell contains the term are kept.

Examples:
  pdpboard table --query robotics
  pdpboard table --output csv --output-file projects.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTable(rootCtx, cfg, tableLoader, publishManager); err != nil {
			contract.LogFatal("Cannot render project table", err)
		}
	},
}

// detailCmd shows the detail view of one project.
var detailCmd = &cobra.Command{
	Use:   "detail [workbook]",
	Short: "Show contact details, Key Innovation and progress cards for one project.",
	Long: `Show the detail view of one project with one progress card per stage.

Examples:
  pdpboard detail --project "Solar Kiln"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDetail(rootCtx, cfg, tableLoader, publishManager); err != nil {
			contract.LogFatal("Cannot render project detail", err)
		}
	},
}

// Package cmd defines the command-line interface for pdpboard.
package cmd

import (
	"github.com/huangsam/pdpboard/internal/contract"
	"github.com/huangsam/pdpboard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(distCmd)
	rootCmd.AddCommand(radarCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(detailCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(publishCmd)

	// Add the publish subcommands to the parent publish command
	publishCmd.AddCommand(publishStatusCmd)
	publishCmd.AddCommand(publishClearCmd)
	publishCmd.AddCommand(publishExportCmd)
	publishCmd.AddCommand(publishMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("file", contract.DefaultDataFile, "Path to the PDP workbook (.xlsx, .xlsm or .csv)")
	rootCmd.PersistentFlags().String("sheet", contract.DefaultSheet, "Sheet to read from the workbook")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or yaml or parquet or html")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns (1 or 2)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("publish-backend", "", "Publish sink backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("publish-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("emoji", "no", "Enable emojis in headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Per-view flags are bound in sharedSetup, once the running command is known
	distCmd.Flags().String("column", schema.ColCategory, "Column to count")
	radarCmd.Flags().String("project", "", "Project/Startup name (defaults to the first project)")
	detailCmd.Flags().String("project", "", "Project/Startup name (defaults to the first project)")
	tableCmd.Flags().String("query", "", "Case-insensitive search over every displayed column")
	dashboardCmd.Flags().String("project", "", "Project selected in the radar and detail views")
	dashboardCmd.Flags().Bool("watch", false, "Re-render whenever the workbook changes")

	// Bind all flags of publishMigrateCmd to Viper
	publishMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(publishMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding publish migrate flags", err)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/pdpboard/internal/contract"
	"github.com/huangsam/pdpboard/internal/publish"
	"github.com/huangsam/pdpboard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// loadPublishConfig reads the publish backend settings without touching the workbook.
func loadPublishConfig() error {
	if err := readConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("publish-backend")
	connStr := viper.GetString("publish-db-connect")

	// Handle empty backend as NoneBackend
	backend := schema.NoneBackend
	if backendStr != "" {
		backend = schema.DatabaseBackend(backendStr)
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid publish backend '%s'. must be sqlite, mysql, postgresql, none", backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.PublishBackend = backend
	cfg.PublishDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// publishSetup loads minimal configuration and opens the publish store.
func publishSetup() error {
	if err := loadPublishConfig(); err != nil {
		return err
	}
	if err := publish.InitPublishing(cfg.PublishBackend, cfg.PublishDBConnect); err != nil {
		return fmt.Errorf("failed to initialize publishing: %w", err)
	}
	return nil
}

// publishSetupWrapper wraps publishSetup to provide PreRunE for publish commands.
func publishSetupWrapper(_ *cobra.Command, _ []string) error {
	return publishSetup()
}

// publishMigrateSetup loads configuration for migrations. It does NOT open the
// store or create tables, so migrations can run on a fresh database.
func publishMigrateSetup(_ *cobra.Command, _ []string) error {
	if err := loadPublishConfig(); err != nil {
		return err
	}
	// For SQLite backend with empty connection string, use default path
	if cfg.PublishBackend == schema.SQLiteBackend && cfg.PublishDBConnect == "" {
		cfg.PublishDBConnect = contract.GetPublishDBFilePath()
	}
	return nil
}

// publishCmd focused on the publish sink.
//
// Note: publish subcommands use minimal initialization instead of the full
// sharedSetup used by the views, so no workbook is needed.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Manage the optional publish sink for BI tools",
	Long: `Manage the runs appended to the publish sink.

When --publish-backend is set, every view run appends:
- Run metadata (UUID, timestamp, workbook, command, duration)
- Per-project stage scores
- The stage status summary

The workbook itself is never modified and nothing is read back into the views.

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled, default)

Subcommands:
  status  - Show publish sink statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all published data
  migrate - Run database schema migrations

Examples:
  # Publish a run to the local SQLite file, then check it
  pdpboard stages --publish-backend sqlite
  pdpboard publish status --publish-backend sqlite`,
}

// publishStatusCmd shows publish sink status.
var publishStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display publish sink statistics and connection details",
	Long: `Show the backend, number of runs, last and oldest run timestamps,
total projects scored and table sizes.`,
	PreRunE: publishSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := publish.Manager.GetRunStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get publish status", err)
		}
		publish.PrintPublishStatus(os.Stdout, status)
	},
}

// publishClearCmd removes the published data.
var publishClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all published runs",
	Long: `Delete all published runs, project scores and stage counts.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  pdpboard publish export --output-file backup.parquet
  pdpboard publish clear`,
	PreRunE: publishMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := publish.ClearPublished(cfg.PublishBackend, cfg.PublishDBConnect, cfg.PublishDBConnect); err != nil {
			contract.LogFatal("Failed to clear published data", err)
		}
		fmt.Println("Published data cleared successfully.")
	},
}

// publishExportCmd exports published data to Parquet files.
var publishExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export published data to Parquet for BI tools and analytics",
	Long: `Export runs, project scores and stage counts to three Parquet files
named after --output-file.

Requires: --output-file parameter

Examples:
  pdpboard publish export --output-file pdp.parquet
  duckdb -c "SELECT * FROM read_parquet('pdp.parquet.runs.parquet') LIMIT 10"`,
	PreRunE: publishSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := publish.ExportPublished(os.Stdout, publish.Manager.GetRunStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export published data", err)
		}
	},
}

// publishMigrateCmd runs database migrations for the publish store.
var publishMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the publish sink.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  pdpboard publish migrate --publish-backend sqlite

  # Roll back everything
  pdpboard publish migrate --publish-backend sqlite --target-version 0`,
	PreRunE: publishMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		msg, err := publish.MigratePublish(cfg.PublishBackend, cfg.PublishDBConnect, viper.GetInt("target-version"))
		if err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
		fmt.Println(msg)
	},
}

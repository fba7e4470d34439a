// Package core has core logic for loading, aggregating and presenting PDP project data.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/pdpboard/core/agg"
	"github.com/huangsam/pdpboard/internal/contract"
	"github.com/huangsam/pdpboard/internal/outwriter"
	"github.com/huangsam/pdpboard/schema"
)

// ExecutorFunc defines the function signature for executing the different dashboard views.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, loader contract.TableLoader, mgr contract.PublishManager) error

// ExecuteSummary renders the headline badges.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, loader contract.TableLoader, mgr contract.PublishManager) error {
	start := time.Now()
	table, err := loadForView(ctx, cfg, loader, "summary")
	if err != nil {
		return err
	}
	publishRun(ctx, cfg, mgr, "summary", table, start)
	return outwriter.WriteSummary(BuildSummary(table), cfg, time.Since(start))
}

// ExecuteStages renders the stage status summary.
func ExecuteStages(ctx context.Context, cfg *contract.Config, loader contract.TableLoader, mgr contract.PublishManager) error {
	start := time.Now()
	table, err := loadForView(ctx, cfg, loader, "stages")
	if err != nil {
		return err
	}
	publishRun(ctx, cfg, mgr, "stages", table, start)
	rows := agg.SummarizeStages(table, schema.StageNames())
	return outwriter.WriteStages(rows, cfg, time.Since(start))
}

// ExecuteDistribution renders the value distribution of cfg.Column.
// The column defaults to "Project Category".
func ExecuteDistribution(ctx context.Context, cfg *contract.Config, loader contract.TableLoader, mgr contract.PublishManager) error {
	start := time.Now()
	table, err := loadForView(ctx, cfg, loader, "distribution")
	if err != nil {
		return err
	}
	column := cfg.Column
	if column == "" {
		column = schema.ColCategory
	}
	if !table.HasColumn(column) {
		contract.LogWarn("Distribution", fmt.Errorf("column %q not found in sheet", column))
	}
	publishRun(ctx, cfg, mgr, "dist", table, start)
	return outwriter.WriteDistribution(agg.Distribution(table, column), cfg, time.Since(start))
}

// ExecuteRadar renders the stage scores of the selected project.
func ExecuteRadar(ctx context.Context, cfg *contract.Config, loader contract.TableLoader, mgr contract.PublishManager) error {
	start := time.Now()
	table, err := loadForView(ctx, cfg, loader, "radar")
	if err != nil {
		return err
	}
	rec, err := FindProject(table, cfg.Project)
	if err != nil {
		return err
	}
	publishRun(ctx, cfg, mgr, "radar", table, start)
	return outwriter.WriteRadar(BuildRadar(rec, schema.StageNames()), cfg, time.Since(start))
}

// ExecuteTable renders the searchable project table.
func ExecuteTable(ctx context.Context, cfg *contract.Config, loader contract.TableLoader, mgr contract.PublishManager) error {
	start := time.Now()
	table, err := loadForView(ctx, cfg, loader, "table")
	if err != nil {
		return err
	}
	publishRun(ctx, cfg, mgr, "table", table, start)
	return outwriter.WriteTable(BuildProjectTable(table, cfg.Query), cfg, time.Since(start))
}

// ExecuteDetail renders the detail view of the selected project.
func ExecuteDetail(ctx context.Context, cfg *contract.Config, loader contract.TableLoader, mgr contract.PublishManager) error {
	start := time.Now()
	table, err := loadForView(ctx, cfg, loader, "detail")
	if err != nil {
		return err
	}
	rec, err := FindProject(table, cfg.Project)
	if err != nil {
		return err
	}
	publishRun(ctx, cfg, mgr, "detail", table, start)
	return outwriter.WriteDetail(BuildProjectDetail(rec, schema.StageNames()), cfg, time.Since(start))
}

// ExecuteDashboard renders every view at once. With cfg.Watch it keeps
// re-rendering whenever the workbook changes.
func ExecuteDashboard(ctx context.Context, cfg *contract.Config, loader contract.TableLoader, mgr contract.PublishManager) error {
	if err := renderDashboard(ctx, cfg, loader, mgr); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}
	return WatchDashboard(ctx, cfg, loader, mgr, DefaultDebounce)
}

// renderDashboard runs one full dashboard pass.
func renderDashboard(ctx context.Context, cfg *contract.Config, loader contract.TableLoader, mgr contract.PublishManager) error {
	start := time.Now()
	table, err := loadForView(ctx, cfg, loader, "dashboard")
	if err != nil {
		return err
	}
	result, err := BuildDashboard(table, cfg.DataPath, cfg.Project)
	if err != nil {
		return err
	}
	publishRun(ctx, cfg, mgr, "dashboard", table, start)
	return outwriter.WriteDashboard(result, cfg, time.Since(start))
}

// LoadTable reads the sheet and normalizes the stage columns.
// The returned table is owned by the caller and never written back.
func LoadTable(ctx context.Context, loader contract.TableLoader, path, sheet string) (schema.Table, error) {
	raw, err := loader.Load(ctx, path, sheet)
	if err != nil {
		return schema.Table{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return agg.NormalizeStatuses(raw, schema.StageNames()), nil
}

// loadForView prints the header unless suppressed, then loads the table.
func loadForView(ctx context.Context, cfg *contract.Config, loader contract.TableLoader, view string) (schema.Table, error) {
	if !shouldSuppressHeader(ctx) && cfg.Output == schema.TextOut {
		contract.LogHeader(cfg, view)
	}
	return LoadTable(ctx, loader, cfg.DataPath, cfg.Sheet)
}

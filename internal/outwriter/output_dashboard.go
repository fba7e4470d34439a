package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/pdpboard/internal/contract"
	"github.com/huangsam/pdpboard/internal/parquet"
	"github.com/huangsam/pdpboard/schema"
)

// WriteDashboard outputs every view at once, dispatching based on the output format configured.
// CSV and Parquet carry the project table, the only view that is already tabular.
func WriteDashboard(result schema.DashboardResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut, schema.YAMLOut:
		return writeDataResult(cfg, result, cfg.Output == schema.YAMLOut)
	case schema.HTMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDashboardHTML(w, result, time.Now())
		}, "Wrote HTML dashboard")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProjectCSV(w, result.Table)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetResult(cfg, func(path string) error {
			return parquet.WriteProjectRowsParquet(parquet.ConvertTable(result.Table), path)
		})
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeDashboardText(w, result, cfg); err != nil {
				return err
			}
			return writeFooter(w, duration)
		}, "Wrote dashboard")
	}
}

// section is one titled block of the text dashboard.
type section struct {
	title  string
	render func() error
}

// writeDashboardText stacks the text rendering of each view under a section title.
func writeDashboardText(w io.Writer, result schema.DashboardResult, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	sections := []section{
		{"Summary", func() error { return writeSummaryTable(w, schema.SummaryResult{Badges: result.Badges}) }},
		{"Stage Status", func() error { return writeStagesTable(w, result.Stages, cfg) }},
		{"MVP Status", func() error { return writeDistributionTable(w, result.MVP, cfg, fmtFloat) }},
		{"Project Categories", func() error { return writeDistributionTable(w, result.Categories, cfg, fmtFloat) }},
	}
	if result.Selected != nil {
		radar := selectedRadar(result)
		sections = append(sections,
			section{"Project Radar", func() error { return writeRadarTable(w, radar, cfg, fmtFloat) }},
			section{"Project Detail", func() error { return writeDetailCards(w, *result.Selected, cfg) }},
		)
	}
	sections = append(sections, section{"Projects", func() error { return writeProjectTable(w, result.Table, cfg, fmtFloat) }})

	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeSectionTitle(w, s.title, cfg); err != nil {
			return err
		}
		if err := s.render(); err != nil {
			return err
		}
	}
	return nil
}

// selectedRadar returns the radar of the selected project.
func selectedRadar(result schema.DashboardResult) schema.RadarResult {
	for _, r := range result.Radars {
		if r.Project == result.Selected.Project {
			return r
		}
	}
	return schema.RadarResult{Project: result.Selected.Project}
}

func writeSectionTitle(w io.Writer, title string, cfg *contract.Config) error {
	if cfg.UseEmojis {
		_, err := fmt.Fprintf(w, "▶ %s\n", title)
		return err
	}
	_, err := fmt.Fprintf(w, "== %s ==\n", title)
	return err
}

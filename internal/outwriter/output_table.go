package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/pdpboard/internal/contract"
	"github.com/huangsam/pdpboard/internal/parquet"
	"github.com/huangsam/pdpboard/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteTable outputs the project table, dispatching based on the output format configured.
// Text output condenses the stage columns into a completion figure; every other
// format carries all display columns.
func WriteTable(result schema.TableResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut, schema.YAMLOut:
		return writeDataResult(cfg, result, cfg.Output == schema.YAMLOut)
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProjectCSV(w, result)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetResult(cfg, func(path string) error {
			return parquet.WriteProjectRowsParquet(parquet.ConvertTable(result), path)
		})
	case schema.HTMLOut:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeProjectTable(w, result, cfg, fmtFloat); err != nil {
				return err
			}
			return writeFooter(w, duration)
		}, "Wrote table")
	}
}

// writeProjectTable renders the condensed project table.
func writeProjectTable(w io.Writer, result schema.TableResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Project", "Founder", "Category", "Decision", "Completion %", "Progress"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// Four free-text columns share what the fixed columns leave over
	cellWidth := max(getMaxCellWidth(cfg, 45)/2, 12)
	rows := parquet.ConvertTable(result)
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{
			contract.TruncateText(r.Project, cellWidth),
			contract.TruncateText(r.Founder, cellWidth),
			contract.TruncateText(r.Category, cellWidth),
			contract.TruncateText(r.Decision, cellWidth),
			fmtFloat(r.Completion),
			progressLabel(cfg, r.Completion),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if result.Query != "" {
		_, err := fmt.Fprintf(w, "Showing %d projects matching %q\n", len(rows), result.Query)
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d projects\n", len(rows))
	return err
}

// progressLabel colors the completion label like the status it is closest to.
func progressLabel(cfg *contract.Config, completion float64) string {
	label := schema.GetProgressLabel(completion)
	if !cfg.UseColors {
		return label
	}
	switch {
	case completion >= 100:
		return contract.DoneColor.Sprint(label)
	case completion > 0:
		return contract.InProgressColor.Sprint(label)
	default:
		return contract.NotStartedColor.Sprint(label)
	}
}

// writeProjectCSV writes every display column, one row per project.
func writeProjectCSV(w io.Writer, result schema.TableResult) error {
	return writeCSVWithHeader(w, result.Columns, func(cw *csv.Writer) error {
		for _, row := range result.Rows {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/pdpboard/internal/contract"
	"github.com/huangsam/pdpboard/internal/parquet"
	"github.com/huangsam/pdpboard/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// summaryParquetColumn labels badge rows in Parquet output.
const summaryParquetColumn = "badge"

// WriteSummary outputs the headline badges, dispatching based on the output format configured.
func WriteSummary(result schema.SummaryResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut, schema.YAMLOut:
		return writeDataResult(cfg, result, cfg.Output == schema.YAMLOut)
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryCSV(w, result)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetResult(cfg, func(path string) error {
			return parquet.WriteValueCountsParquet(summaryParquetRows(result), path)
		})
	case schema.HTMLOut:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeSummaryTable(w, result); err != nil {
				return err
			}
			return writeFooter(w, duration)
		}, "Wrote table")
	}
}

// writeSummaryTable renders one row per badge.
func writeSummaryTable(w io.Writer, result schema.SummaryResult) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Count"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(result.Badges))
	for _, b := range result.Badges {
		data = append(data, []string{b.Label, strconv.Itoa(b.Value)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeSummaryCSV(w io.Writer, result schema.SummaryResult) error {
	return writeCSVWithHeader(w, []string{"metric", "count"}, func(cw *csv.Writer) error {
		for _, b := range result.Badges {
			if err := cw.Write([]string{b.Label, strconv.Itoa(b.Value)}); err != nil {
				return err
			}
		}
		return nil
	})
}

func summaryParquetRows(result schema.SummaryResult) []parquet.ValueCount {
	rows := make([]parquet.ValueCount, len(result.Badges))
	for i, b := range result.Badges {
		rows[i] = parquet.ValueCount{Column: summaryParquetColumn, Value: b.Label, Count: int32(b.Value)}
	}
	return rows
}

// writeFooter prints how long the view took to build.
func writeFooter(w io.Writer, duration time.Duration) error {
	_, err := fmt.Fprintf(w, "Rendered in %v\n", duration.Round(time.Millisecond))
	return err
}

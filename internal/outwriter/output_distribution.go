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

// WriteDistribution outputs a value distribution, dispatching based on the output format configured.
func WriteDistribution(result schema.DistributionResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut, schema.YAMLOut:
		return writeDataResult(cfg, result, cfg.Output == schema.YAMLOut)
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDistributionCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetResult(cfg, func(path string) error {
			return parquet.WriteValueCountsParquet(parquet.ConvertDistribution(result), path)
		})
	case schema.HTMLOut:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeDistributionTable(w, result, cfg, fmtFloat); err != nil {
				return err
			}
			return writeFooter(w, duration)
		}, "Wrote table")
	}
}

// distributionTotal sums the counts so shares can be shown.
func distributionTotal(result schema.DistributionResult) int {
	total := 0
	for _, vc := range result.Counts {
		total += vc.Count
	}
	return total
}

// share returns count as a fraction of total, or 0 for an empty distribution.
func share(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}

// writeDistributionTable renders each value with its count, share and a bar.
func writeDistributionTable(w io.Writer, result schema.DistributionResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "Distribution of %s\n", result.Column); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Value", "Count", "Share %", ""})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	total := distributionTotal(result)
	valueWidth := getMaxCellWidth(cfg, 45)
	data := make([][]string, 0, len(result.Counts))
	for _, vc := range result.Counts {
		value := vc.Value
		if schema.IsStage(result.Column) {
			value = statusLabel(cfg, value)
		} else {
			value = contract.TruncateText(value, valueWidth)
		}
		frac := share(vc.Count, total)
		data = append(data, []string{value, strconv.Itoa(vc.Count), fmtFloat(frac * 100), renderBar(frac)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeDistributionCSV(w io.Writer, result schema.DistributionResult, fmtFloat func(float64) string) error {
	total := distributionTotal(result)
	return writeCSVWithHeader(w, []string{"column", "value", "count", "share_pct"}, func(cw *csv.Writer) error {
		for _, vc := range result.Counts {
			rec := []string{result.Column, vc.Value, strconv.Itoa(vc.Count), fmtFloat(share(vc.Count, total) * 100)}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

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

// WriteStages outputs the stage status summary, dispatching based on the output format configured.
func WriteStages(rows []schema.StageStatusCount, cfg *contract.Config, duration time.Duration) error {
	if rows == nil {
		rows = []schema.StageStatusCount{}
	}
	switch cfg.Output {
	case schema.JSONOut, schema.YAMLOut:
		return writeDataResult(cfg, rows, cfg.Output == schema.YAMLOut)
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStagesCSV(w, rows)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetResult(cfg, func(path string) error {
			return parquet.WriteStageCountsParquet(parquet.ConvertStageStatusCounts(rows), path)
		})
	case schema.HTMLOut:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeStagesTable(w, rows, cfg); err != nil {
				return err
			}
			return writeFooter(w, duration)
		}, "Wrote table")
	}
}

// writeStagesTable renders the long-format summary with the stage shown once per group.
func writeStagesTable(w io.Writer, rows []schema.StageStatusCount, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Stage", "Status", "Count"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	stageWidth := getMaxCellWidth(cfg, 30)
	data := make([][]string, 0, len(rows))
	prev := ""
	for _, r := range rows {
		stage := ""
		if r.Stage != prev {
			stage = contract.TruncateText(r.Stage, stageWidth)
			prev = r.Stage
		}
		data = append(data, []string{stage, statusLabel(cfg, r.Status), strconv.Itoa(r.Count)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeStagesCSV(w io.Writer, rows []schema.StageStatusCount) error {
	return writeCSVWithHeader(w, []string{"stage", "status", "count"}, func(cw *csv.Writer) error {
		for _, r := range rows {
			if err := cw.Write([]string{r.Stage, r.Status, strconv.Itoa(r.Count)}); err != nil {
				return err
			}
		}
		return nil
	})
}

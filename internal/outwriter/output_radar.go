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

// WriteRadar outputs the stage scores of one project, dispatching based on the output format configured.
func WriteRadar(result schema.RadarResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut, schema.YAMLOut:
		return writeDataResult(cfg, result, cfg.Output == schema.YAMLOut)
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRadarCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetResult(cfg, func(path string) error {
			return parquet.WriteProjectScoresParquet(parquet.ConvertRadar(result), path)
		})
	case schema.HTMLOut:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeRadarTable(w, result, cfg, fmtFloat); err != nil {
				return err
			}
			return writeFooter(w, duration)
		}, "Wrote table")
	}
}

// writeRadarTable renders one row per radar axis followed by the completion line.
func writeRadarTable(w io.Writer, result schema.RadarResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "Stage progress for %s\n", result.Project); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Stage", "Score", ""})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	stageWidth := getMaxCellWidth(cfg, 40)
	data := make([][]string, 0, len(result.Stages))
	for i, stage := range result.Stages {
		data = append(data, []string{contract.TruncateText(stage, stageWidth), fmtFloat(result.Scores[i]), renderBar(result.Scores[i])})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Completion: %s%% (%s)\n", fmtFloat(result.Completion), result.Label)
	return err
}

func writeRadarCSV(w io.Writer, result schema.RadarResult, fmtFloat func(float64) string) error {
	return writeCSVWithHeader(w, []string{"project", "stage", "score"}, func(cw *csv.Writer) error {
		for i, stage := range result.Stages {
			if err := cw.Write([]string{result.Project, stage, fmtFloat(result.Scores[i])}); err != nil {
				return err
			}
		}
		return nil
	})
}

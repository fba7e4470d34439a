// Package parquet provides data structures and functions for exporting pdpboard
// results and published runs to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/pdpboard/core/agg"
	"github.com/huangsam/pdpboard/schema"
	"github.com/parquet-go/parquet-go"
)

// Run represents a single published dashboard run.
// This struct maps to the pdpboard_runs database table.
type Run struct {
	// RunID is the UUID of the run
	RunID string `parquet:"run_id,snappy"`

	// SourcePath is the workbook the run was computed from
	SourcePath string `parquet:"source_path,snappy"`

	// Command is the view that triggered the run
	Command string `parquet:"command,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// ProjectCount is the number of projects in the sheet
	ProjectCount int32 `parquet:"project_count,snappy"`
}

// ProjectScore is the status and score of one project on one stage.
// This struct maps to the pdpboard_project_scores database table.
type ProjectScore struct {
	RunID      string  `parquet:"run_id,snappy"`
	RowIndex   int32   `parquet:"row_index,snappy"`
	Project    string  `parquet:"project,snappy"`
	Category   string  `parquet:"category,snappy"`
	Stage      string  `parquet:"stage,snappy"`
	StageIndex int32   `parquet:"stage_index,snappy"`
	Status     string  `parquet:"status,snappy"`
	Score      float64 `parquet:"score,snappy"`
}

// StageCount is one row of the stage status summary.
// This struct maps to the pdpboard_stage_counts database table.
type StageCount struct {
	RunID  string `parquet:"run_id,snappy"`
	Stage  string `parquet:"stage,snappy"`
	Status string `parquet:"status,snappy"`
	Count  int32  `parquet:"count,snappy"`
}

// ValueCount is one row of a categorical distribution.
type ValueCount struct {
	Column string `parquet:"column,snappy"`
	Value  string `parquet:"value,snappy"`
	Count  int32  `parquet:"count,snappy"`
}

// ProjectRow is one row of the project table export.
type ProjectRow struct {
	Founder    string  `parquet:"founder,snappy"`
	Project    string  `parquet:"project,snappy"`
	Category   string  `parquet:"category,snappy"`
	Phone      string  `parquet:"phone,snappy"`
	Email      string  `parquet:"email,snappy"`
	Decision   string  `parquet:"decision,snappy"`
	Novelty    *string `parquet:"novelty,optional,snappy"`
	Completion float64 `parquet:"completion,snappy"`
}

// writeParquet writes rows of any tagged struct type to a Parquet file.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the struct tags of T
	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteRunsParquet writes published runs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteProjectScoresParquet writes per-stage project scores to a Parquet file.
func WriteProjectScoresParquet(data []ProjectScore, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteStageCountsParquet writes stage status counts to a Parquet file.
func WriteStageCountsParquet(data []StageCount, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteValueCountsParquet writes a distribution to a Parquet file.
func WriteValueCountsParquet(data []ValueCount, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteProjectRowsParquet writes the project table to a Parquet file.
func WriteProjectRowsParquet(data []ProjectRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertRunRecords converts schema.RunRecord to Run for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, record := range records {
		result[i] = Run{
			RunID:         record.RunID,
			SourcePath:    record.SourcePath,
			Command:       record.Command,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDuration,
			ProjectCount:  record.ProjectCount,
		}
	}
	return result
}

// ConvertProjectScoreRecords converts schema.ProjectScoreRecord to ProjectScore for Parquet export.
func ConvertProjectScoreRecords(records []schema.ProjectScoreRecord) []ProjectScore {
	result := make([]ProjectScore, len(records))
	for i, record := range records {
		result[i] = ProjectScore(record)
	}
	return result
}

// ConvertStageCountRecords converts schema.StageCountRecord to StageCount for Parquet export.
func ConvertStageCountRecords(records []schema.StageCountRecord) []StageCount {
	result := make([]StageCount, len(records))
	for i, record := range records {
		result[i] = StageCount(record)
	}
	return result
}

// ConvertStageStatusCounts converts a stage summary to StageCount rows without a run ID.
func ConvertStageStatusCounts(rows []schema.StageStatusCount) []StageCount {
	result := make([]StageCount, len(rows))
	for i, row := range rows {
		result[i] = StageCount{Stage: row.Stage, Status: row.Status, Count: int32(row.Count)}
	}
	return result
}

// ConvertDistribution converts a distribution to ValueCount rows.
func ConvertDistribution(dist schema.DistributionResult) []ValueCount {
	result := make([]ValueCount, len(dist.Counts))
	for i, vc := range dist.Counts {
		result[i] = ValueCount{Column: dist.Column, Value: vc.Value, Count: int32(vc.Count)}
	}
	return result
}

// ConvertRadar converts a radar to ProjectScore rows without a run ID.
func ConvertRadar(radar schema.RadarResult) []ProjectScore {
	result := make([]ProjectScore, len(radar.Stages))
	for i, stage := range radar.Stages {
		result[i] = ProjectScore{
			Project:    radar.Project,
			Stage:      stage,
			StageIndex: int32(i),
			Score:      radar.Scores[i],
		}
	}
	return result
}

// ConvertDetail converts the progress cards of a detail view to ProjectScore rows.
func ConvertDetail(detail schema.ProjectDetail) []ProjectScore {
	result := make([]ProjectScore, len(detail.Cards))
	for i, card := range detail.Cards {
		result[i] = ProjectScore{
			Project:    detail.Project,
			Category:   detail.Category,
			Stage:      card.Stage,
			StageIndex: int32(i),
			Status:     card.Status,
			Score:      agg.ScoreStatus(card.Status),
		}
	}
	return result
}

// ConvertTable converts the projected project table to ProjectRow records.
// Completion is recomputed from the stage columns of each row.
func ConvertTable(table schema.TableResult) []ProjectRow {
	index := make(map[string]int, len(table.Columns))
	for i, col := range table.Columns {
		index[col] = i
	}
	cell := func(row []string, col string) string {
		if i, ok := index[col]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	stages := schema.StageNames()
	result := make([]ProjectRow, len(table.Rows))
	for i, row := range table.Rows {
		scores := make([]float64, len(stages))
		for j, stage := range stages {
			scores[j] = agg.ScoreStatus(cell(row, stage))
		}
		pr := ProjectRow{
			Founder:    cell(row, schema.ColFounder),
			Project:    cell(row, schema.ColProject),
			Category:   cell(row, schema.ColCategory),
			Phone:      cell(row, schema.ColPhone),
			Email:      cell(row, schema.ColEmail),
			Decision:   cell(row, schema.ColDecision),
			Completion: agg.Completion(scores),
		}
		if novelty := cell(row, schema.ColNovelty); novelty != "" {
			pr.Novelty = &novelty
		}
		result[i] = pr
	}
	return result
}

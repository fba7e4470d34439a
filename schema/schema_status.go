package schema

import "time"

// PublishStatus represents the status of the publish sink.
type PublishStatus struct {
	Backend             string           `json:"backend"`
	Connected           bool             `json:"connected"`
	TotalRuns           int              `json:"total_runs"`
	LastRunID           string           `json:"last_run_id"`
	LastRunTime         time.Time        `json:"last_run_time"`
	OldestRunTime       time.Time        `json:"oldest_run_time"`
	TotalProjectsScored int              `json:"total_projects_scored"`
	TableSizes          map[string]int64 `json:"table_sizes"`
}

// RunRecord represents a row from the pdpboard_runs table.
type RunRecord struct {
	RunID        string
	SourcePath   string
	Command      string
	StartTime    time.Time
	EndTime      *time.Time
	RunDuration  *int32 // milliseconds
	ProjectCount int32
}

// ProjectScoreRecord represents a row from the pdpboard_project_scores table.
type ProjectScoreRecord struct {
	RunID      string
	RowIndex   int32 // Position of the project row in the source table
	Project    string
	Category   string
	Stage      string
	StageIndex int32
	Status     string
	Score      float64
}

// StageCountRecord represents a row from the pdpboard_stage_counts table.
type StageCountRecord struct {
	RunID  string
	Stage  string
	Status string
	Count  int32
}

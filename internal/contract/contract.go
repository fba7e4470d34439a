// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"errors"
	"time"

	"github.com/huangsam/pdpboard/schema"
)

// ErrMissingColumn is returned when a required identity column is absent from the sheet.
var ErrMissingColumn = errors.New("missing required column")

// TableLoader reads a project sheet into memory.
// This allows the dashboard logic to be tested without real workbook files.
type TableLoader interface {
	// Load reads the named sheet of the file at path. Sheet is ignored for CSV files.
	Load(ctx context.Context, path string, sheet string) (schema.Table, error)
}

// PublishManager defines the interface for managing publish stores.
// This allows the publish layer to be mocked for testing.
type PublishManager interface {
	GetRunStore() RunStore
}

// RunStore defines the interface for publishing dashboard runs and their derived results.
// Nothing written here is ever read back into the dashboard pipeline.
type RunStore interface {
	// BeginRun creates a new run and returns its unique ID
	BeginRun(startTime time.Time, sourcePath string, command string) (string, error)

	// EndRun updates the run with completion data
	EndRun(runID string, endTime time.Time, projectCount int) error

	// RecordProjectScores stores the per-stage scores of one project
	RecordProjectScores(runID string, rows []schema.ProjectScoreRecord) error

	// RecordStageCounts stores the stage status summary of the run
	RecordStageCounts(runID string, rows []schema.StageStatusCount) error

	// GetStatus returns status information about the run store
	GetStatus() (schema.PublishStatus, error)

	// GetAllRuns retrieves all published runs
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllProjectScores retrieves all published project scores
	GetAllProjectScores() ([]schema.ProjectScoreRecord, error)

	// GetAllStageCounts retrieves all published stage counts
	GetAllStageCounts() ([]schema.StageCountRecord, error)

	// Close closes the underlying connection
	Close() error
}

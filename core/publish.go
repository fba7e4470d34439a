package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/pdpboard/core/agg"
	"github.com/huangsam/pdpboard/internal/contract"
	"github.com/huangsam/pdpboard/schema"
)

// publishRun appends the derived results of this run to the publish sink.
// Publishing is best effort: failures are logged as warnings and never fail the view.
func publishRun(ctx context.Context, cfg *contract.Config, mgr contract.PublishManager, command string, table schema.Table, start time.Time) {
	if mgr == nil {
		return
	}
	store := mgr.GetRunStore()
	if store == nil {
		return
	}

	runID, err := store.BeginRun(start, cfg.DataPath, command)
	if err != nil {
		contract.LogWarn("Publish initialization failed", err)
		return
	}
	ctx = withRunID(ctx, runID)

	recordRun(ctx, store, table)

	if err := store.EndRun(runID, time.Now(), table.Len()); err != nil {
		contract.LogWarn("Failed to finalize publish run", err)
	}
}

// recordRun writes the stage counts and per-project scores under the run in ctx.
func recordRun(ctx context.Context, store contract.RunStore, table schema.Table) {
	runID, ok := getRunID(ctx)
	if !ok {
		return
	}
	stages := schema.StageNames()

	if err := store.RecordStageCounts(runID, agg.SummarizeStages(table, stages)); err != nil {
		logPublishError("RecordStageCounts", runID, err)
	}

	for i, rec := range table.Records {
		if err := ctx.Err(); err != nil {
			logPublishError("RecordProjectScores", runID, err)
			return
		}
		if err := store.RecordProjectScores(runID, projectScoreRows(runID, int32(i), rec, stages)); err != nil {
			logPublishError("RecordProjectScores", runID, err)
		}
	}
}

// projectScoreRows flattens one record into one row per stage. rowIndex is the
// record's position in the table and keeps rows of same-named projects apart.
func projectScoreRows(runID string, rowIndex int32, rec schema.ProjectRecord, stages []string) []schema.ProjectScoreRecord {
	scores := agg.ScoreProject(rec, stages)
	rows := make([]schema.ProjectScoreRecord, len(stages))
	for i, stage := range stages {
		rows[i] = schema.ProjectScoreRecord{
			RunID:      runID,
			RowIndex:   rowIndex,
			Project:    rec.Name,
			Category:   rec.Category,
			Stage:      stage,
			StageIndex: int32(i),
			Status:     stageStatus(rec, stage),
			Score:      scores[i],
		}
	}
	return rows
}

// logPublishError logs sink errors to stderr without disrupting the view.
func logPublishError(operation, runID string, err error) {
	contract.LogWarn(fmt.Sprintf("Publish failed for %s on run %s", operation, runID), err)
}

package publish

import (
	"errors"
	"fmt"
	"io"

	"github.com/huangsam/pdpboard/internal/contract"
	"github.com/huangsam/pdpboard/internal/parquet"
)

// ExportPublished writes every published table of store to Parquet files named
// after outputFile, and reports progress to w.
func ExportPublished(w io.Writer, store contract.RunStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("publishing is not configured. Set --publish-backend")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get publish status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no published runs found to export")
	}

	_, _ = fmt.Fprintf(w, "Exporting data from %s backend...\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Total runs: %d\n", status.TotalRuns)

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}
	scores, err := store.GetAllProjectScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve project scores: %w", err)
	}
	counts, err := store.GetAllStageCounts()
	if err != nil {
		return fmt.Errorf("failed to retrieve stage counts: %w", err)
	}

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquet.ConvertRunRecords(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d runs to: %s\n", len(runs), runsFile)

	scoresFile := outputFile + ".project_scores.parquet"
	if err := parquet.WriteProjectScoresParquet(parquet.ConvertProjectScoreRecords(scores), scoresFile); err != nil {
		return fmt.Errorf("failed to write project scores: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d project scores to: %s\n", len(scores), scoresFile)

	countsFile := outputFile + ".stage_counts.parquet"
	if err := parquet.WriteStageCountsParquet(parquet.ConvertStageCountRecords(counts), countsFile); err != nil {
		return fmt.Errorf("failed to write stage counts: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d stage counts to: %s\n", len(counts), countsFile)

	return nil
}

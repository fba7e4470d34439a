package publish

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/pdpboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T) *RunStoreImpl {
	t.Helper()
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*RunStoreImpl)
}

func sampleScores(runID string, rowIndex int32, project string) []schema.ProjectScoreRecord {
	return []schema.ProjectScoreRecord{
		{RunID: runID, RowIndex: rowIndex, Project: project, Category: "Hardware", Stage: schema.StageCADDesign, StageIndex: 0, Status: schema.StatusDone, Score: 1.0},
		{RunID: runID, RowIndex: rowIndex, Project: project, Category: "Hardware", Stage: schema.StageCADProduction, StageIndex: 1, Status: schema.StatusInProgress, Score: 0.5},
	}
}

func TestRunStore_NoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	runID, err := store.BeginRun(time.Now(), "PDP-NEW.xlsx", "summary")
	assert.NoError(t, err)
	assert.Empty(t, runID)

	assert.NoError(t, store.EndRun("x", time.Now(), 10))
	assert.NoError(t, store.RecordProjectScores("x", sampleScores("x", 0, "Drone")))
	assert.NoError(t, store.RecordStageCounts("x", []schema.StageStatusCount{{Stage: "MVP", Status: "Done", Count: 1}}))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "none", status.Backend)
	assert.False(t, status.Connected)

	runs, err := store.GetAllRuns()
	assert.NoError(t, err)
	assert.Nil(t, runs)

	assert.NoError(t, store.Close())
}

func TestRunStore_UnsupportedBackend(t *testing.T) {
	_, err := NewRunStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestRunStore_SQLiteRoundTrip(t *testing.T) {
	store := newMemoryStore(t)

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	runID, err := store.BeginRun(start, "/data/PDP-NEW.xlsx", "dashboard")
	require.NoError(t, err)
	assert.Len(t, runID, 36, "run IDs are UUIDs")

	require.NoError(t, store.RecordStageCounts(runID, []schema.StageStatusCount{
		{Stage: schema.StageMVP, Status: schema.StatusDone, Count: 2},
		{Stage: schema.StageMVP, Status: schema.StatusNotStarted, Count: 1},
	}))
	require.NoError(t, store.RecordProjectScores(runID, sampleScores(runID, 0, "Drone")))
	require.NoError(t, store.RecordProjectScores(runID, sampleScores(runID, 1, "Rover")))
	require.NoError(t, store.EndRun(runID, start.Add(1500*time.Millisecond), 2))

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].RunID)
	assert.Equal(t, "dashboard", runs[0].Command)
	assert.True(t, start.Equal(runs[0].StartTime))
	require.NotNil(t, runs[0].EndTime)
	require.NotNil(t, runs[0].RunDuration)
	assert.Equal(t, int32(1500), *runs[0].RunDuration)
	assert.Equal(t, int32(2), runs[0].ProjectCount)

	scores, err := store.GetAllProjectScores()
	require.NoError(t, err)
	require.Len(t, scores, 4)
	assert.Equal(t, "Drone", scores[0].Project)
	assert.Equal(t, schema.StageCADDesign, scores[0].Stage)
	assert.Equal(t, 0.5, scores[1].Score)

	counts, err := store.GetAllStageCounts()
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, int32(2), counts[0].Count)
}

func TestRunStore_EmptyBatches(t *testing.T) {
	store := newMemoryStore(t)
	runID, err := store.BeginRun(time.Now(), "a.csv", "stages")
	require.NoError(t, err)

	assert.NoError(t, store.RecordProjectScores(runID, nil))
	assert.NoError(t, store.RecordStageCounts(runID, nil))
}

func TestRunStore_DuplicateScoresRollBack(t *testing.T) {
	store := newMemoryStore(t)
	runID, err := store.BeginRun(time.Now(), "a.csv", "radar")
	require.NoError(t, err)

	rows := sampleScores(runID, 0, "Drone")
	rows = append(rows, rows[0])
	assert.Error(t, store.RecordProjectScores(runID, rows))

	scores, err := store.GetAllProjectScores()
	require.NoError(t, err)
	assert.Empty(t, scores, "failed batch leaves no partial rows")
}

func TestRunStore_SameNameProjectsKeepAllRows(t *testing.T) {
	store := newMemoryStore(t)
	runID, err := store.BeginRun(time.Now(), "a.csv", "dashboard")
	require.NoError(t, err)

	require.NoError(t, store.RecordProjectScores(runID, sampleScores(runID, 0, "Dup")))
	require.NoError(t, store.RecordProjectScores(runID, sampleScores(runID, 1, "Dup")))

	scores, err := store.GetAllProjectScores()
	require.NoError(t, err)
	require.Len(t, scores, 4)
	for i, want := range []int32{0, 0, 1, 1} {
		assert.Equal(t, "Dup", scores[i].Project)
		assert.Equal(t, want, scores[i].RowIndex)
	}
}

func TestRunStore_EndUnknownRun(t *testing.T) {
	store := newMemoryStore(t)
	err := store.EndRun("missing", time.Now(), 1)
	assert.Error(t, err)
}

func TestRunStore_GetStatus(t *testing.T) {
	store := newMemoryStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Zero(t, status.TotalRuns)
	assert.Len(t, status.TableSizes, 3)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	first, err := store.BeginRun(base, "a.csv", "summary")
	require.NoError(t, err)
	require.NoError(t, store.EndRun(first, base.Add(time.Second), 3))
	second, err := store.BeginRun(base.Add(time.Hour), "a.csv", "table")
	require.NoError(t, err)
	require.NoError(t, store.EndRun(second, base.Add(time.Hour+time.Second), 4))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalRuns)
	assert.Equal(t, second, status.LastRunID)
	assert.True(t, base.Add(time.Hour).Equal(status.LastRunTime))
	assert.True(t, base.Equal(status.OldestRunTime))
	assert.Equal(t, 7, status.TotalProjectsScored)
	assert.Equal(t, int64(2), status.TableSizes[runsTable])
}

func TestRunStore_SQLiteFilePersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "publish.db")

	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	_, err = store.BeginRun(time.Now(), "a.csv", "summary")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	runs, err := reopened.GetAllRuns()
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestFormatTimeSortsChronologically(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	whole := formatTime(base, schema.SQLiteBackend).(string)
	frac := formatTime(base.Add(500*time.Millisecond), schema.SQLiteBackend).(string)
	assert.Less(t, whole, frac)

	native := formatTime(base, schema.PostgreSQLBackend)
	assert.Equal(t, base, native)
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`pdpboard_runs`", quoteTableName(runsTable, schema.MySQLBackend))
	assert.Equal(t, `"pdpboard_runs"`, quoteTableName(runsTable, schema.PostgreSQLBackend))
	assert.Equal(t, `"pdpboard_runs"`, quoteTableName(runsTable, schema.SQLiteBackend))
}

func TestNormalizeMySQLDSN(t *testing.T) {
	dsn, err := normalizeMySQLDSN("user:pass@tcp(localhost:3306)/pdp", false)
	require.NoError(t, err)
	assert.Contains(t, dsn, "parseTime=true")
	assert.NotContains(t, dsn, "multiStatements")

	dsn, err = normalizeMySQLDSN("user:pass@tcp(localhost:3306)/pdp", true)
	require.NoError(t, err)
	assert.Contains(t, dsn, "multiStatements=true")

	_, err = normalizeMySQLDSN("not a dsn", false)
	assert.Error(t, err)
}

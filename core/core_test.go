package core

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/pdpboard/internal/contract"
	"github.com/huangsam/pdpboard/internal/publish"
	"github.com/huangsam/pdpboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testDataPath = "/data/PDP-NEW.xlsx"

// rawTable is what a loader returns before normalization.
func rawTable() schema.Table {
	return schema.Table{
		Columns: []string{schema.ColProject, schema.ColCategory, schema.StageCADDesign, schema.StageMVP},
		Records: []schema.ProjectRecord{
			newRecord(map[string]*string{
				schema.ColProject: s("Solar Kiln"), schema.ColCategory: s("Energy"),
				schema.StageCADDesign: s(" Done "), schema.StageMVP: nil,
			}),
			newRecord(map[string]*string{
				schema.ColProject: s("Water Drone"), schema.ColCategory: s("Robotics"),
				schema.StageCADDesign: s("In Progress"), schema.StageMVP: s("Done"),
			}),
		},
	}
}

func jsonConfig(t *testing.T, name string) (*contract.Config, string) {
	t.Helper()
	out := filepath.Join(t.TempDir(), name)
	return &contract.Config{
		DataPath:   testDataPath,
		Sheet:      contract.DefaultSheet,
		Precision:  1,
		Output:     schema.JSONOut,
		OutputFile: out,
	}, out
}

func mockLoader(table schema.Table, err error) *contract.MockTableLoader {
	loader := &contract.MockTableLoader{}
	loader.On("Load", mock.Anything, testDataPath, contract.DefaultSheet).Return(table, err)
	return loader
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestLoadTableNormalizes(t *testing.T) {
	loader := mockLoader(rawTable(), nil)

	table, err := LoadTable(context.Background(), loader, testDataPath, contract.DefaultSheet)
	require.NoError(t, err)
	assert.Equal(t, "Done", table.Records[0].Value(schema.StageCADDesign))
	assert.Equal(t, schema.StatusNotStarted, table.Records[0].Value(schema.StageMVP))
	loader.AssertExpectations(t)
}

func TestLoadTableWrapsError(t *testing.T) {
	loader := mockLoader(schema.Table{}, contract.ErrMissingColumn)

	_, err := LoadTable(context.Background(), loader, testDataPath, contract.DefaultSheet)
	require.Error(t, err)
	assert.ErrorIs(t, err, contract.ErrMissingColumn)
	assert.Contains(t, err.Error(), testDataPath)
}

func TestExecuteStages(t *testing.T) {
	cfg, out := jsonConfig(t, "stages.json")
	loader := mockLoader(rawTable(), nil)

	require.NoError(t, ExecuteStages(context.Background(), cfg, loader, nil))

	var rows []schema.StageStatusCount
	readJSON(t, out, &rows)
	assert.Equal(t, []schema.StageStatusCount{
		{Stage: schema.StageCADDesign, Status: schema.StatusDone, Count: 1},
		{Stage: schema.StageCADDesign, Status: schema.StatusInProgress, Count: 1},
		{Stage: schema.StageMVP, Status: schema.StatusDone, Count: 1},
		{Stage: schema.StageMVP, Status: schema.StatusNotStarted, Count: 1},
	}, rows)
}

func TestExecuteSummary(t *testing.T) {
	cfg, out := jsonConfig(t, "summary.json")

	require.NoError(t, ExecuteSummary(context.Background(), cfg, mockLoader(rawTable(), nil), nil))

	var result schema.SummaryResult
	readJSON(t, out, &result)
	require.Len(t, result.Badges, 6)
	assert.Equal(t, 2, result.Badges[0].Value)
	assert.Equal(t, schema.Badge{Label: "MVP Achieved", Value: 1}, result.Badges[5])
}

func TestExecuteDistribution(t *testing.T) {
	t.Run("defaults to category", func(t *testing.T) {
		cfg, out := jsonConfig(t, "dist.json")
		require.NoError(t, ExecuteDistribution(context.Background(), cfg, mockLoader(rawTable(), nil), nil))

		var result schema.DistributionResult
		readJSON(t, out, &result)
		assert.Equal(t, schema.ColCategory, result.Column)
		assert.Len(t, result.Counts, 2)
	})

	t.Run("missing column renders empty", func(t *testing.T) {
		cfg, out := jsonConfig(t, "dist.json")
		cfg.Column = "Budget"
		require.NoError(t, ExecuteDistribution(context.Background(), cfg, mockLoader(rawTable(), nil), nil))

		var result schema.DistributionResult
		readJSON(t, out, &result)
		assert.Equal(t, "Budget", result.Column)
		assert.Empty(t, result.Counts)
	})
}

func TestExecuteRadar(t *testing.T) {
	cfg, out := jsonConfig(t, "radar.json")
	cfg.Project = "Water Drone"

	require.NoError(t, ExecuteRadar(context.Background(), cfg, mockLoader(rawTable(), nil), nil))

	var result schema.RadarResult
	readJSON(t, out, &result)
	assert.Equal(t, "Water Drone", result.Project)
	assert.Len(t, result.Scores, len(schema.StageNames()))
}

func TestExecuteRadarUnknownProject(t *testing.T) {
	cfg, _ := jsonConfig(t, "radar.json")
	cfg.Project = "Nope"

	err := ExecuteRadar(context.Background(), cfg, mockLoader(rawTable(), nil), nil)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestExecuteTable(t *testing.T) {
	cfg, out := jsonConfig(t, "table.json")
	cfg.Query = "robot"

	require.NoError(t, ExecuteTable(context.Background(), cfg, mockLoader(rawTable(), nil), nil))

	var result schema.TableResult
	readJSON(t, out, &result)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "Water Drone", result.Rows[0][1])
}

func TestExecuteDetail(t *testing.T) {
	cfg, out := jsonConfig(t, "detail.json")

	require.NoError(t, ExecuteDetail(context.Background(), cfg, mockLoader(rawTable(), nil), nil))

	var result schema.ProjectDetail
	readJSON(t, out, &result)
	assert.Equal(t, "Solar Kiln", result.Project)
	assert.Equal(t, "N/A", result.Phone)
	assert.Nil(t, result.Novelty)
}

func TestExecuteDetailEmptyTable(t *testing.T) {
	cfg, _ := jsonConfig(t, "detail.json")
	empty := schema.Table{Columns: []string{schema.ColProject, schema.ColCategory}}

	err := ExecuteDetail(context.Background(), cfg, mockLoader(empty, nil), nil)
	assert.ErrorIs(t, err, ErrNoProjects)
}

func TestExecuteDashboard(t *testing.T) {
	cfg, out := jsonConfig(t, "dashboard.json")
	cfg.Project = "Water Drone"

	require.NoError(t, ExecuteDashboard(context.Background(), cfg, mockLoader(rawTable(), nil), nil))

	var result schema.DashboardResult
	readJSON(t, out, &result)
	assert.Equal(t, testDataPath, result.Source)
	require.NotNil(t, result.Selected)
	assert.Equal(t, "Water Drone", result.Selected.Project)
	assert.Len(t, result.Radars, 2)
}

func TestExecutorsPropagateLoadError(t *testing.T) {
	executors := map[string]ExecutorFunc{
		"summary":   ExecuteSummary,
		"stages":    ExecuteStages,
		"dist":      ExecuteDistribution,
		"radar":     ExecuteRadar,
		"table":     ExecuteTable,
		"detail":    ExecuteDetail,
		"dashboard": ExecuteDashboard,
	}
	loadErr := errors.New("workbook locked")

	for name, exec := range executors {
		t.Run(name, func(t *testing.T) {
			cfg, out := jsonConfig(t, name+".json")
			err := exec(context.Background(), cfg, mockLoader(schema.Table{}, loadErr), nil)
			assert.ErrorIs(t, err, loadErr)
			assert.NoFileExists(t, out)
		})
	}
}

func TestExecutePublishesRun(t *testing.T) {
	cfg, _ := jsonConfig(t, "stages.json")
	store := &publish.MockRunStore{}
	mgr := &publish.MockPublishManager{}
	mgr.On("GetRunStore").Return(store)
	store.On("BeginRun", mock.Anything, testDataPath, "stages").Return("run-1", nil)
	store.On("RecordStageCounts", "run-1", mock.Anything).Return(nil)
	store.On("RecordProjectScores", "run-1", mock.Anything).Return(nil).Twice()
	store.On("EndRun", "run-1", mock.Anything, 2).Return(nil)

	require.NoError(t, ExecuteStages(context.Background(), cfg, mockLoader(rawTable(), nil), mgr))

	mgr.AssertExpectations(t)
	store.AssertExpectations(t)
}

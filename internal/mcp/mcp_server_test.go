package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/huangsam/pdpboard/internal/contract"
	mcp_internal "github.com/huangsam/pdpboard/internal/mcp"
	"github.com/huangsam/pdpboard/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleTable() schema.Table {
	kiln := schema.NewRecord(map[string]string{
		schema.ColProject:     "Solar Kiln",
		schema.ColCategory:    "Energy",
		schema.ColFounder:     "Amina Yusuf",
		schema.StageCADDesign: " Done",
		schema.StageMVP:       " In Progress ",
	})
	drone := schema.NewRecord(map[string]string{
		schema.ColProject:     "Water Drone",
		schema.ColCategory:    "Robotics",
		schema.ColFounder:     "Li Wei",
		schema.StageCADDesign: "Done",
		schema.StageMVP:       "Not Started",
	})
	return schema.Table{
		Columns: []string{schema.ColFounder, schema.ColProject, schema.ColCategory, schema.StageCADDesign, schema.StageMVP},
		Records: []schema.ProjectRecord{kiln, drone},
	}
}

func newServerWithTable(t *testing.T, table schema.Table, err error) (*contract.MockTableLoader, func(name string, args map[string]any) *mcp.CallToolResult) {
	t.Helper()
	loader := &contract.MockTableLoader{}
	loader.On("Load", mock.Anything, "/data/PDP-NEW.xlsx", "PROJECTS").Return(table, err)

	baseCfg := &contract.Config{DataPath: "/data/PDP-NEW.xlsx", Sheet: "PROJECTS"}
	s := mcp_internal.NewMCPServer(baseCfg, loader)

	call := func(name string, args map[string]any) *mcp.CallToolResult {
		tool := s.GetTool(name)
		require.NotNil(t, tool, "Tool %s should exist", name)
		req := mcp.CallToolRequest{Params: mcp.CallToolParams{Name: name, Arguments: args}}
		res, err := tool.Handler(context.Background(), req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		return res
	}
	return loader, call
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestMCPServerTools(t *testing.T) {
	_, call := newServerWithTable(t, sampleTable(), nil)

	t.Run("get_summary", func(t *testing.T) {
		res := call("get_summary", map[string]any{})
		require.False(t, res.IsError)

		var summary schema.SummaryResult
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &summary))
		require.NotEmpty(t, summary.Badges)
		assert.Equal(t, schema.Badge{Label: "Total Projects", Value: 2}, summary.Badges[0])
		assert.Equal(t, schema.Badge{Label: "CAD Design Completed", Value: 2}, summary.Badges[1], "statuses are trimmed before counting")
	})

	t.Run("get_stage_status", func(t *testing.T) {
		res := call("get_stage_status", map[string]any{})
		require.False(t, res.IsError)

		var rows []schema.StageStatusCount
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &rows))
		assert.Contains(t, rows, schema.StageStatusCount{Stage: schema.StageCADDesign, Status: schema.StatusDone, Count: 2})
		assert.Contains(t, rows, schema.StageStatusCount{Stage: schema.StageMVP, Status: schema.StatusInProgress, Count: 1})
	})

	t.Run("get_distribution defaults to category", func(t *testing.T) {
		res := call("get_distribution", map[string]any{})
		require.False(t, res.IsError)

		var dist schema.DistributionResult
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &dist))
		assert.Equal(t, schema.ColCategory, dist.Column)
		assert.Len(t, dist.Counts, 2)
	})

	t.Run("get_distribution unknown column", func(t *testing.T) {
		res := call("get_distribution", map[string]any{"column": "Budget"})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), `column "Budget" not found`)
	})

	t.Run("get_project_radar", func(t *testing.T) {
		res := call("get_project_radar", map[string]any{"project": "Solar Kiln"})
		require.False(t, res.IsError)

		var radar schema.RadarResult
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &radar))
		assert.Equal(t, "Solar Kiln", radar.Project)
		assert.Equal(t, schema.StageNames(), radar.Stages)
		assert.InDelta(t, 1.0, radar.Scores[0], 1e-9)
	})

	t.Run("get_project_radar unknown project", func(t *testing.T) {
		res := call("get_project_radar", map[string]any{"project": "Nope"})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "project not found")
	})

	t.Run("get_project_detail defaults to first project", func(t *testing.T) {
		res := call("get_project_detail", map[string]any{})
		require.False(t, res.IsError)

		var detail schema.ProjectDetail
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &detail))
		assert.Equal(t, "Solar Kiln", detail.Project)
		assert.Len(t, detail.Cards, len(schema.StageNames()))
		assert.Nil(t, detail.Novelty)
	})

	t.Run("search_projects", func(t *testing.T) {
		res := call("search_projects", map[string]any{"query": "ROBOT"})
		require.False(t, res.IsError)

		var table schema.TableResult
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &table))
		require.Len(t, table.Rows, 1)
		assert.Contains(t, table.Rows[0], "Water Drone")
	})

	t.Run("search_projects limit", func(t *testing.T) {
		res := call("search_projects", map[string]any{"limit": 1.0})
		require.False(t, res.IsError)

		var table schema.TableResult
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &table))
		assert.Len(t, table.Rows, 1)
	})
}

func TestMCPServerLoadErrors(t *testing.T) {
	_, call := newServerWithTable(t, schema.Table{}, contract.ErrMissingColumn)

	for _, name := range []string{"get_summary", "get_stage_status", "get_distribution", "get_project_radar", "get_project_detail", "search_projects"} {
		t.Run(name, func(t *testing.T) {
			res := call(name, map[string]any{})
			assert.True(t, res.IsError, "The response should indicate an error state")
			assert.Contains(t, resultText(t, res), "load failed")
		})
	}
}

func TestMCPServerFileOverride(t *testing.T) {
	loader := &contract.MockTableLoader{}
	loader.On("Load", mock.Anything, "/other/board.csv", "Sheet2").Return(schema.Table{}, nil)

	s := mcp_internal.NewMCPServer(&contract.Config{DataPath: "/data/PDP-NEW.xlsx", Sheet: "PROJECTS"}, loader)
	tool := s.GetTool("get_project_detail")
	require.NotNil(t, tool)

	req := mcp.CallToolRequest{Params: mcp.CallToolParams{
		Name:      "get_project_detail",
		Arguments: map[string]any{"file": "/other/board.csv", "sheet": "Sheet2"},
	}}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "no projects found")
	loader.AssertExpectations(t)
}

type ctxKey string

func TestMCPServerPassesCallerContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxKey("caller"), "agent")
	loader := &contract.MockTableLoader{}
	loader.On("Load", mock.MatchedBy(func(got context.Context) bool { return got == ctx }), "/data/PDP-NEW.xlsx", "PROJECTS").
		Return(sampleTable(), nil)

	s := mcp_internal.NewMCPServer(&contract.Config{DataPath: "/data/PDP-NEW.xlsx", Sheet: "PROJECTS"}, loader)
	tool := s.GetTool("get_summary")
	require.NotNil(t, tool)

	res, err := tool.Handler(ctx, mcp.CallToolRequest{Params: mcp.CallToolParams{Name: "get_summary"}})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	loader.AssertExpectations(t)
}

func TestMCPServerEmptyStageStatus(t *testing.T) {
	empty := schema.Table{Columns: []string{schema.ColProject, schema.ColCategory, schema.StageMVP}}
	_, call := newServerWithTable(t, empty, nil)

	res := call("get_stage_status", map[string]any{})
	require.False(t, res.IsError)
	assert.JSONEq(t, "[]", resultText(t, res))
}

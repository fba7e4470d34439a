package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/pdpboard/core"
	"github.com/huangsam/pdpboard/core/agg"
	"github.com/huangsam/pdpboard/internal/contract"
	"github.com/huangsam/pdpboard/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	loader  contract.TableLoader
}

// loadTable resolves the workbook arguments against the base config and loads the sheet.
func (h *toolHandler) loadTable(ctx context.Context, request mcp.CallToolRequest) (schema.Table, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("file", ""); p != "" {
		cfg.DataPath = p
	}
	if s := request.GetString("sheet", ""); s != "" {
		cfg.Sheet = s
	}
	return core.LoadTable(ctx, h.loader, cfg.DataPath, cfg.Sheet)
}

// jsonResult marshals a result as indented JSON text.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	table, err := h.loadTable(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}
	return jsonResult(core.BuildSummary(table))
}

func (h *toolHandler) handleGetStageStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	table, err := h.loadTable(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}
	return jsonResult(agg.SummarizeStages(table, schema.StageNames()))
}

func (h *toolHandler) handleGetDistribution(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	column := request.GetString("column", schema.ColCategory)
	table, err := h.loadTable(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}
	if !table.HasColumn(column) {
		return mcp.NewToolResultError(fmt.Sprintf("column %q not found in sheet", column)), nil
	}
	return jsonResult(agg.Distribution(table, column))
}

func (h *toolHandler) handleGetProjectRadar(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	table, err := h.loadTable(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}
	rec, err := core.FindProject(table, request.GetString("project", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("radar failed: %v", err)), nil
	}
	return jsonResult(core.BuildRadar(rec, schema.StageNames()))
}

func (h *toolHandler) handleGetProjectDetail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	table, err := h.loadTable(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}
	rec, err := core.FindProject(table, request.GetString("project", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("detail failed: %v", err)), nil
	}
	return jsonResult(core.BuildProjectDetail(rec, schema.StageNames()))
}

func (h *toolHandler) handleSearchProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	table, err := h.loadTable(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}
	result := core.BuildProjectTable(table, request.GetString("query", ""))
	if l := request.GetInt("limit", 0); l > 0 && l < len(result.Rows) {
		result.Rows = result.Rows[:l]
	}
	return jsonResult(result)
}

// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/pdpboard/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Shared argument descriptions.
const (
	fileDesc    = "Path to the PDP workbook (.xlsx or .csv). Defaults to the configured file."
	sheetDesc   = "Sheet to read from the workbook. Defaults to PROJECTS."
	projectDesc = "Project/Startup name. Defaults to the first project in the sheet."
)

// NewMCPServer initializes and configures the PDP dashboard MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, loader contract.TableLoader) *server.MCPServer {
	s := server.NewMCPServer(
		"PDP Dashboard Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		loader:  loader,
	}

	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Headline badges: total projects and the Done counts of the milestone stages."),
		mcp.WithString("file", mcp.Description(fileDesc)),
		mcp.WithString("sheet", mcp.Description(sheetDesc)),
	), h.handleGetSummary)

	s.AddTool(mcp.NewTool("get_stage_status",
		mcp.WithDescription("Count of projects per (stage, status) pair, in pipeline order."),
		mcp.WithString("file", mcp.Description(fileDesc)),
		mcp.WithString("sheet", mcp.Description(sheetDesc)),
	), h.handleGetStageStatus)

	s.AddTool(mcp.NewTool("get_distribution",
		mcp.WithDescription("Value counts of one column, most frequent first."),
		mcp.WithString("column", mcp.Description("Column to count. Defaults to 'Project Category'; use 'MVP' for the MVP status split.")),
		mcp.WithString("file", mcp.Description(fileDesc)),
		mcp.WithString("sheet", mcp.Description(sheetDesc)),
	), h.handleGetDistribution)

	s.AddTool(mcp.NewTool("get_project_radar",
		mcp.WithDescription("Per-stage progress scores (Done 1, In Progress 0.5, otherwise 0) for one project."),
		mcp.WithString("project", mcp.Description(projectDesc)),
		mcp.WithString("file", mcp.Description(fileDesc)),
		mcp.WithString("sheet", mcp.Description(sheetDesc)),
	), h.handleGetProjectRadar)

	s.AddTool(mcp.NewTool("get_project_detail",
		mcp.WithDescription("Founder, contact, Key Innovation and progress cards for one project."),
		mcp.WithString("project", mcp.Description(projectDesc)),
		mcp.WithString("file", mcp.Description(fileDesc)),
		mcp.WithString("sheet", mcp.Description(sheetDesc)),
	), h.handleGetProjectDetail)

	s.AddTool(mcp.NewTool("search_projects",
		mcp.WithDescription("Project table filtered by a case-insensitive match on any displayed cell."),
		mcp.WithString("query", mcp.Description("Text to search for. Empty returns every project.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of rows returned.")),
		mcp.WithString("file", mcp.Description(fileDesc)),
		mcp.WithString("sheet", mcp.Description(sheetDesc)),
	), h.handleSearchProjects)

	return s
}

// StartMCPServer starts the PDP dashboard MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, loader contract.TableLoader) error {
	s := NewMCPServer(baseCfg, loader)
	return server.ServeStdio(s)
}

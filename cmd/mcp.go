package cmd

import (
	"github.com/huangsam/pdpboard/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp [workbook]",
	Short: "Start the PDP dashboard MCP server",
	Long:  `Launch an MCP server that lets AI agents query project status via standard tools.`,
	Args:  cobra.MaximumNArgs(1),
	// Tool handlers suppress the view headers, since stdio carries the protocol.
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, tableLoader)
	},
}

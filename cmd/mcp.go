package cmd

import (
	"github.com/huangsam/ringside/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Ringside MCP server",
	Long: `Launch an MCP server over stdio so AI agents can read and book the league.

Tools cover classification, move recommendations, rosters, title history,
leaderboards, match results, daily rewards and shop purchases. The --guild
value is used when a tool call does not name a guild.`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		league, err := newLeague()
		if err != nil {
			return err
		}
		return mcp.StartMCPServer(rootCtx, cfg, league)
	},
}

// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/ringside/core"
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// guildParam is shared by every tool that reads or writes league state.
var guildParam = mcp.WithString("guild_id", mcp.Description("Discord guild id. Defaults to the configured guild."))

// userParam lets a tool act as a player. Without it the call runs with booker rights.
var userParam = mcp.WithString("user_id", mcp.Description("Act as this Discord user; ownership is checked. Omit to act as a booker."))

// NewMCPServer initializes and configures the Ringside MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, league *core.League) *server.MCPServer {
	s := server.NewMCPServer(
		"Ringside League Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		league:  league,
	}

	// --- 1. Tool: classify_wrestler ---
	classify := []mcp.ToolOption{
		mcp.WithDescription("Run the questionnaire classifier: archetype, alignment, weight class, personality traits and move suggestions."),
		mcp.WithNumber("seed", mcp.Description("Seed for the trait noise. A random seed is used when omitted.")),
	}
	for _, q := range schema.AllQuestions {
		classify = append(classify, mcp.WithString(string(q), mcp.Enum(schema.QuestionOptions[q]...)))
	}
	s.AddTool(mcp.NewTool("classify_wrestler", classify...), h.handleClassifyWrestler)

	// --- 2. Tool: recommend_moves ---
	s.AddTool(mcp.NewTool("recommend_moves",
		mcp.WithDescription("Rank the moves of a category for an alignment and archetype. Moves already taken in the guild are skipped."),
		mcp.WithString("category", mcp.Description("Move category, e.g. 'Submissions'."), mcp.Required()),
		mcp.WithString("alignment", mcp.Description("Face, Heel or Tweener."), mcp.Required()),
		mcp.WithString("archetype", mcp.Description("Giant, Powerhouse, Technical, High Flyer or Striker."), mcp.Required()),
		guildParam,
	), h.handleRecommendMoves)

	// --- 3. Tool: get_roster ---
	s.AddTool(mcp.NewTool("get_roster",
		mcp.WithDescription("List the wrestlers of a guild."),
		guildParam,
		mcp.WithBoolean("include_retired", mcp.Description("Include retired wrestlers.")),
	), h.handleGetRoster)

	// --- 4. Tool: get_wrestler ---
	s.AddTool(mcp.NewTool("get_wrestler",
		mcp.WithDescription("Show one wrestler with level progress and recent matches."),
		mcp.WithString("wrestler", mcp.Description("Wrestler name or id."), mcp.Required()),
		guildParam,
	), h.handleGetWrestler)

	// --- 5. Tool: get_title_history ---
	s.AddTool(mcp.NewTool("get_title_history",
		mcp.WithDescription("Show the reigns of a championship, newest first."),
		mcp.WithString("championship", mcp.Description("Championship name or id."), mcp.Required()),
		guildParam,
	), h.handleGetTitleHistory)

	// --- 6. Tool: get_leaderboard ---
	s.AddTool(mcp.NewTool("get_leaderboard",
		mcp.WithDescription("Rank the active wrestlers of a guild by a stat."),
		mcp.WithString("stat", mcp.Description("Ranking stat. Defaults to 'wins'."), mcp.Enum("wins", "winrate", "currency", "level")),
		guildParam,
	), h.handleGetLeaderboard)

	// --- 7. Tool: record_match ---
	s.AddTool(mcp.NewTool("record_match",
		mcp.WithDescription("Record a match result. Awards XP, settles title changes and fills the event card."),
		mcp.WithString("match_type", mcp.Description("Match type, e.g. 'Singles' or 'Tag Team'."), mcp.Required()),
		mcp.WithString("winners", mcp.Description("Comma-separated winner names or ids."), mcp.Required()),
		mcp.WithString("losers", mcp.Description("Comma-separated loser names or ids."), mcp.Required()),
		mcp.WithString("finish", mcp.Description("How the match ended, e.g. 'Pinfall'.")),
		mcp.WithNumber("rating", mcp.Description("Star rating from 0 to 5.")),
		mcp.WithBoolean("main_event", mcp.Description("Whether the match headlined the show.")),
		mcp.WithString("championship", mcp.Description("Championship name or id when the title was on the line.")),
		mcp.WithNumber("event_id", mcp.Description("Event whose card this match belongs to.")),
		guildParam,
	), h.handleRecordMatch)

	// --- 8. Tool: claim_daily ---
	s.AddTool(mcp.NewTool("claim_daily",
		mcp.WithDescription("Claim the daily currency reward of a wrestler."),
		mcp.WithString("wrestler", mcp.Description("Wrestler name or id."), mcp.Required()),
		guildParam,
		userParam,
	), h.handleClaimDaily)

	// --- 9. Tool: purchase_upgrade ---
	s.AddTool(mcp.NewTool("purchase_upgrade",
		mcp.WithDescription("Buy an attribute upgrade. The upgrade is queued for the booker to apply in-game."),
		mcp.WithString("wrestler", mcp.Description("Wrestler name or id."), mcp.Required()),
		mcp.WithString("attribute", mcp.Description("Attribute name, e.g. 'Strength'."), mcp.Required()),
		mcp.WithNumber("tier", mcp.Description("Upgrade size: 1, 5 or 10."), mcp.Required()),
		guildParam,
		userParam,
	), h.handlePurchaseUpgrade)

	return s
}

// StartMCPServer starts the Ringside MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, league *core.League) error {
	s := NewMCPServer(baseCfg, league)
	return server.ServeStdio(s)
}

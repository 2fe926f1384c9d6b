package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/huangsam/ringside/core"
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	league  *core.League
}

// wrestlerSheet is the get_wrestler payload.
type wrestlerSheet struct {
	Wrestler      schema.Wrestler      `json:"wrestler"`
	Progress      schema.LevelProgress `json:"progress"`
	RecentMatches []schema.Match       `json:"recent_matches"`
}

// titleHistory is the get_title_history payload.
type titleHistory struct {
	Championship schema.Championship `json:"championship"`
	Reigns       []schema.TitleReign `json:"reigns"`
}

// errGuildRequired is returned when neither the request nor the config names a guild.
var errGuildRequired = errors.New("guild_id is required (or set --guild)")

func (h *toolHandler) guild(request mcp.CallToolRequest) (string, error) {
	if g := request.GetString("guild_id", h.baseCfg.Guild); g != "" {
		return g, nil
	}
	return "", errGuildRequired
}

// actor runs calls as the given user, or as a booker when no user is named.
func actor(request mcp.CallToolRequest) core.Actor {
	if u := request.GetString("user_id", ""); u != "" {
		return core.Actor{UserID: u}
	}
	return core.Actor{Admin: true}
}

func jsonResult(v any) *mcp.CallToolResult {
	jsonData, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(jsonData))
}

func failure(action string, err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s failed: %s", action, contract.UserMessage(err)))
}

func (h *toolHandler) handleClassifyWrestler(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	answers := schema.QuestionnaireAnswers{}
	for _, q := range schema.AllQuestions {
		if v := request.GetString(string(q), ""); v != "" {
			answers[q] = v
		}
	}
	if err := core.ValidateAnswers(answers); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid questionnaire: %v", err)), nil
	}
	seed := uint64(request.GetInt("seed", 0))
	if seed == 0 {
		seed = rand.Uint64()
	}
	p := core.Profile(h.league.Catalog(), answers, rand.New(rand.NewPCG(seed, seed)))
	return jsonResult(p), nil
}

func (h *toolHandler) handleRecommendMoves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	align, ok := schema.ParseAlignment(request.GetString("alignment", ""))
	if !ok {
		return mcp.NewToolResultError("alignment must be Face, Heel or Tweener"), nil
	}
	archetype, ok := schema.ParseArchetype(request.GetString("archetype", ""))
	if !ok {
		return mcp.NewToolResultError("archetype must be Giant, Powerhouse, Technical, High Flyer or Striker"), nil
	}
	// A missing guild still ranks the full catalog.
	guild := request.GetString("guild_id", h.baseCfg.Guild)
	moves, err := h.league.RecommendMoves(ctx, guild, request.GetString("category", ""), align, archetype)
	if err != nil {
		return failure("recommendation", err), nil
	}
	return jsonResult(moves), nil
}

func (h *toolHandler) handleGetRoster(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	guild, err := h.guild(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	roster, err := h.league.Roster(ctx, guild, request.GetBool("include_retired", false))
	if err != nil {
		return failure("roster lookup", err), nil
	}
	return jsonResult(roster), nil
}

func (h *toolHandler) handleGetWrestler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	guild, err := h.guild(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	w, err := h.league.ResolveWrestler(ctx, guild, actor(request).UserID, request.GetString("wrestler", ""))
	if err != nil {
		return failure("wrestler lookup", err), nil
	}
	progress, err := h.league.LevelProgress(ctx, guild, w.ID)
	if err != nil {
		return failure("wrestler lookup", err), nil
	}
	matches, err := h.league.MatchHistory(ctx, guild, w.ID, contract.DefaultMatchLimit)
	if err != nil {
		return failure("wrestler lookup", err), nil
	}
	return jsonResult(wrestlerSheet{Wrestler: w, Progress: progress, RecentMatches: matches}), nil
}

func (h *toolHandler) handleGetTitleHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	guild, err := h.guild(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	c, err := h.league.ResolveChampionship(ctx, guild, request.GetString("championship", ""))
	if err != nil {
		return failure("championship lookup", err), nil
	}
	reigns, err := h.league.TitleHistory(ctx, guild, c.ID)
	if err != nil {
		return failure("championship lookup", err), nil
	}
	return jsonResult(titleHistory{Championship: c, Reigns: reigns}), nil
}

func (h *toolHandler) handleGetLeaderboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	guild, err := h.guild(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	stat := schema.LeaderboardStat(request.GetString("stat", string(schema.StatWins)))
	entries, err := h.league.Leaderboard(ctx, guild, stat)
	if err != nil {
		return failure("leaderboard", err), nil
	}
	return jsonResult(entries), nil
}

func (h *toolHandler) handleRecordMatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	guild, err := h.guild(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	winners, err := h.resolveWrestlers(ctx, guild, request.GetString("winners", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid winners: %s", contract.UserMessage(err))), nil
	}
	losers, err := h.resolveWrestlers(ctx, guild, request.GetString("losers", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid losers: %s", contract.UserMessage(err))), nil
	}
	in := core.MatchInput{
		GuildID:   guild,
		MatchType: request.GetString("match_type", ""),
		WinnerIDs: winners,
		LoserIDs:  losers,
		Finish:    request.GetString("finish", ""),
		Rating:    request.GetFloat("rating", 0),
		MainEvent: request.GetBool("main_event", false),
	}
	if ref := request.GetString("championship", ""); ref != "" {
		c, err := h.league.ResolveChampionship(ctx, guild, ref)
		if err != nil {
			return failure("championship lookup", err), nil
		}
		in.ChampionshipID = &c.ID
	}
	if id := int64(request.GetInt("event_id", 0)); id > 0 {
		in.EventID = &id
	}
	outcome, err := h.league.RecordMatch(ctx, in)
	if err != nil {
		return failure("match recording", err), nil
	}
	return jsonResult(outcome), nil
}

// resolveWrestlers turns a comma-separated list of names or ids into wrestler ids.
func (h *toolHandler) resolveWrestlers(ctx context.Context, guild, refs string) ([]int64, error) {
	var ids []int64
	for ref := range strings.SplitSeq(refs, ",") {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		w, err := h.league.ResolveWrestler(ctx, guild, "", ref)
		if err != nil {
			return nil, err
		}
		ids = append(ids, w.ID)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one wrestler is required", contract.ErrInvalidInput)
	}
	return ids, nil
}

func (h *toolHandler) handleClaimDaily(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	guild, err := h.guild(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	w, err := h.league.ResolveWrestler(ctx, guild, actor(request).UserID, request.GetString("wrestler", ""))
	if err != nil {
		return failure("wrestler lookup", err), nil
	}
	res, err := h.league.ClaimDaily(ctx, actor(request), guild, w.ID)
	if err != nil {
		return failure("daily claim", err), nil
	}
	return jsonResult(res), nil
}

func (h *toolHandler) handlePurchaseUpgrade(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	guild, err := h.guild(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tier := request.GetInt("tier", 0)
	if tier <= 0 {
		return mcp.NewToolResultError("tier must be 1, 5 or 10, got " + strconv.Itoa(tier)), nil
	}
	w, err := h.league.ResolveWrestler(ctx, guild, actor(request).UserID, request.GetString("wrestler", ""))
	if err != nil {
		return failure("wrestler lookup", err), nil
	}
	res, err := h.league.PurchaseUpgrade(ctx, actor(request), guild, w.ID, request.GetString("attribute", ""), tier)
	if err != nil {
		return failure("purchase", err), nil
	}
	return jsonResult(res), nil
}

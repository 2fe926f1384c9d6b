package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/internal/outwriter"
	"github.com/huangsam/ringside/schema"
	"github.com/spf13/cobra"
)

// rosterCmd lists a guild's wrestlers.
var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List the wrestlers of a guild",
	Long: `Show every wrestler of the guild with level, alignment, archetype, record and balance.

Examples:
  # Active roster
  ringside roster --guild 123456789

  # Include retired wrestlers and export as CSV
  ringside roster --guild 123456789 --retired --output csv --output-file roster.csv`,
	PreRunE: guildSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		league, err := newLeague()
		if err != nil {
			contract.LogFatal("Cannot start league", err)
		}
		retired, _ := cmd.Flags().GetBool("retired")
		roster, err := league.Roster(rootCtx, cfg.Guild, retired)
		if err != nil {
			contract.LogFatal("Cannot load roster", err)
		}
		if len(roster) > cfg.Limit {
			roster = roster[:cfg.Limit]
		}
		if err := outwriter.WriteRoster(roster, cfg); err != nil {
			contract.LogFatal("Cannot write roster", err)
		}
	},
}

// wrestlerCmd shows one wrestler.
var wrestlerCmd = &cobra.Command{
	Use:   "wrestler <name-or-id>",
	Short: "Show a wrestler's sheet or match history",
	Long: `Show one wrestler: attributes, moves, personality and level progress.

With --matches the recent match history is shown instead.

Examples:
  ringside wrestler "Big Titan" --guild 123456789
  ringside wrestler 42 --guild 123456789 --matches --limit 5`,
	Args:    cobra.ExactArgs(1),
	PreRunE: guildSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		league, err := newLeague()
		if err != nil {
			contract.LogFatal("Cannot start league", err)
		}
		w, err := league.ResolveWrestler(rootCtx, cfg.Guild, "", args[0])
		if err != nil {
			contract.LogFatal("Cannot find wrestler", err)
		}
		if matches, _ := cmd.Flags().GetBool("matches"); matches {
			history, err := league.MatchHistory(rootCtx, cfg.Guild, w.ID, cfg.Limit)
			if err != nil {
				contract.LogFatal("Cannot load match history", err)
			}
			roster, err := league.Roster(rootCtx, cfg.Guild, true)
			if err != nil {
				contract.LogFatal("Cannot load roster", err)
			}
			if err := outwriter.WriteMatches(history, outwriter.NameIndex(roster), cfg); err != nil {
				contract.LogFatal("Cannot write match history", err)
			}
			return
		}
		progress, err := league.LevelProgress(rootCtx, cfg.Guild, w.ID)
		if err != nil {
			contract.LogFatal("Cannot compute level progress", err)
		}
		if err := outwriter.WriteWrestler(w, progress, cfg); err != nil {
			contract.LogFatal("Cannot write wrestler", err)
		}
	},
}

// titlesCmd lists the current champions.
var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "List championships and their current holders",
	Long: `Show every championship of the guild with its holders, reign start and defenses.

Examples:
  ringside titles --guild 123456789`,
	PreRunE: guildSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		league, err := newLeague()
		if err != nil {
			contract.LogFatal("Cannot start league", err)
		}
		views, err := league.CurrentChampions(rootCtx, cfg.Guild)
		if err != nil {
			contract.LogFatal("Cannot load champions", err)
		}
		if err := outwriter.WriteChampions(views, cfg); err != nil {
			contract.LogFatal("Cannot write champions", err)
		}
	},
}

// titleHistoryCmd shows the lineage of one championship.
var titleHistoryCmd = &cobra.Command{
	Use:   "title-history <championship>",
	Short: "Show every reign of a championship",
	Long: `Show the lineage of a championship, newest reign first, with days held and defenses.

Examples:
  ringside title-history "World Title" --guild 123456789`,
	Args:    cobra.ExactArgs(1),
	PreRunE: guildSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		league, err := newLeague()
		if err != nil {
			contract.LogFatal("Cannot start league", err)
		}
		c, err := league.ResolveChampionship(rootCtx, cfg.Guild, args[0])
		if err != nil {
			contract.LogFatal("Cannot find championship", err)
		}
		reigns, err := league.TitleHistory(rootCtx, cfg.Guild, c.ID)
		if err != nil {
			contract.LogFatal("Cannot load title history", err)
		}
		roster, err := league.Roster(rootCtx, cfg.Guild, true)
		if err != nil {
			contract.LogFatal("Cannot load roster", err)
		}
		if err := outwriter.WriteTitleHistory(c, reigns, outwriter.NameIndex(roster), cfg); err != nil {
			contract.LogFatal("Cannot write title history", err)
		}
	},
}

// leaderboardCmd ranks wrestlers by a stat or a streak.
var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard [stat]",
	Short: "Rank wrestlers by wins, win rate, currency, level or streak",
	Long: `Rank the guild's wrestlers.

Stats:
  wins     - total wins (default)
  winrate  - win percentage, five matches minimum
  currency - current balance
  level    - level, then XP
  overall  - longest winning streaks ever
  hot      - current winning streaks
  cold     - current losing streaks

Examples:
  ringside leaderboard --guild 123456789
  ringside leaderboard hot --guild 123456789 --limit 5`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: guildSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		league, err := newLeague()
		if err != nil {
			contract.LogFatal("Cannot start league", err)
		}
		name := string(schema.StatWins)
		if len(args) == 1 {
			name = strings.ToLower(args[0])
		}
		if kind := schema.StreakKind(name); isStreakKind(kind) {
			streaks, err := league.Streaks(rootCtx, cfg.Guild, kind)
			if err != nil {
				contract.LogFatal("Cannot load streaks", err)
			}
			if len(streaks) > cfg.Limit {
				streaks = streaks[:cfg.Limit]
			}
			if err := outwriter.WriteStreaks(kind, streaks, cfg); err != nil {
				contract.LogFatal("Cannot write streaks", err)
			}
			return
		}
		stat := schema.LeaderboardStat(name)
		if _, ok := schema.ValidLeaderboardStats[stat]; !ok {
			contract.LogFatal("Invalid stat", fmt.Errorf("%q must be wins, winrate, currency, level, overall, hot or cold", name))
		}
		entries, err := league.Leaderboard(rootCtx, cfg.Guild, stat)
		if err != nil {
			contract.LogFatal("Cannot load leaderboard", err)
		}
		if len(entries) > cfg.Limit {
			entries = entries[:cfg.Limit]
		}
		if err := outwriter.WriteLeaderboard(stat, entries, cfg); err != nil {
			contract.LogFatal("Cannot write leaderboard", err)
		}
	},
}

func isStreakKind(kind schema.StreakKind) bool {
	_, ok := schema.ValidStreakKinds[kind]
	return ok
}

// cardCmd shows an event card, or the event list without an id.
var cardCmd = &cobra.Command{
	Use:   "card [event-id]",
	Short: "Show an event card, or list events",
	Long: `Show the matches booked on an event in running order, with their participants.
Without an event id, every event of the guild is listed.

Examples:
  ringside card --guild 123456789
  ringside card 7 --guild 123456789`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: guildSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		league, err := newLeague()
		if err != nil {
			contract.LogFatal("Cannot start league", err)
		}
		if len(args) == 0 {
			events, err := league.Events(rootCtx, cfg.Guild, "")
			if err != nil {
				contract.LogFatal("Cannot load events", err)
			}
			if err := outwriter.WriteEvents(events, cfg); err != nil {
				contract.LogFatal("Cannot write events", err)
			}
			return
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			contract.LogFatal("Invalid event id", err)
		}
		ev, card, err := league.EventCard(rootCtx, cfg.Guild, id)
		if err != nil {
			contract.LogFatal("Cannot load event card", err)
		}
		roster, err := league.Roster(rootCtx, cfg.Guild, true)
		if err != nil {
			contract.LogFatal("Cannot load roster", err)
		}
		if err := outwriter.WriteCard(ev, card, outwriter.NameIndex(roster), cfg); err != nil {
			contract.LogFatal("Cannot write event card", err)
		}
	},
}

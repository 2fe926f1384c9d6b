// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the commands.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRoster prints a roster using the configured output format.
func (ow *OutWriter) WriteRoster(wrestlers []schema.Wrestler, cfg *contract.Config) error {
	return WriteRoster(wrestlers, cfg)
}

// WriteWrestler prints one wrestler sheet using the configured output format.
func (ow *OutWriter) WriteWrestler(w schema.Wrestler, progress schema.LevelProgress, cfg *contract.Config) error {
	return WriteWrestler(w, progress, cfg)
}

// WriteProfile prints a questionnaire classification using the configured output format.
func (ow *OutWriter) WriteProfile(p schema.WrestlerProfile, cfg *contract.Config) error {
	return WriteProfile(p, cfg)
}

// WriteChampions prints current champions using the configured output format.
func (ow *OutWriter) WriteChampions(views []schema.ChampionView, cfg *contract.Config) error {
	return WriteChampions(views, cfg)
}

// WriteTitleHistory prints a championship lineage using the configured output format.
func (ow *OutWriter) WriteTitleHistory(c schema.Championship, reigns []schema.TitleReign, names map[int64]string, cfg *contract.Config) error {
	return WriteTitleHistory(c, reigns, names, cfg)
}

// WriteLeaderboard prints a leaderboard using the configured output format.
func (ow *OutWriter) WriteLeaderboard(stat schema.LeaderboardStat, entries []schema.LeaderboardEntry, cfg *contract.Config) error {
	return WriteLeaderboard(stat, entries, cfg)
}

// WriteStreaks prints streaks using the configured output format.
func (ow *OutWriter) WriteStreaks(kind schema.StreakKind, streaks []schema.StreakEntry, cfg *contract.Config) error {
	return WriteStreaks(kind, streaks, cfg)
}

// WriteMatches prints match history using the configured output format.
func (ow *OutWriter) WriteMatches(matches []schema.Match, names map[int64]string, cfg *contract.Config) error {
	return WriteMatches(matches, names, cfg)
}

// WriteEvents prints events using the configured output format.
func (ow *OutWriter) WriteEvents(events []schema.EventInstance, cfg *contract.Config) error {
	return WriteEvents(events, cfg)
}

// WriteCard prints an event card using the configured output format.
func (ow *OutWriter) WriteCard(ev schema.EventInstance, card []schema.CardMatch, names map[int64]string, cfg *contract.Config) error {
	return WriteCard(ev, card, names, cfg)
}

// WriteUpgrades prints upgrade queue entries using the configured output format.
func (ow *OutWriter) WriteUpgrades(entries []schema.UpgradeEntry, cfg *contract.Config) error {
	return WriteUpgrades(entries, cfg)
}

// WriteSweep prints inactivity sweep reports using the configured output format.
func (ow *OutWriter) WriteSweep(reports []schema.InactivityReport, cfg *contract.Config) error {
	return WriteSweep(reports, cfg)
}

// NameIndex maps wrestler ids to names for tables that only carry ids.
func NameIndex(wrestlers []schema.Wrestler) map[int64]string {
	names := make(map[int64]string, len(wrestlers))
	for _, w := range wrestlers {
		names[w.ID] = w.Name
	}
	return names
}

package algo

import (
	"fmt"
	"slices"
	"sort"

	"github.com/huangsam/ringside/schema"
)

const (
	// MaxRecommendations caps the moves returned by Recommend.
	MaxRecommendations = 6

	// MinRecommendations is the count Recommend pads up to when the input allows.
	MinRecommendations = 5

	// LeaderboardSize is the number of entries on a leaderboard.
	LeaderboardSize = 10

	// MinWinRateMatches is the number of matches needed to appear on the win rate board.
	MinWinRateMatches = 3
)

type scoredMove struct {
	name  string
	score int
}

// scoreMove scores a move against an alignment and archetype.
func scoreMove(move string, align schema.Alignment, archetype schema.Archetype) int {
	score := 0
	switch align {
	case schema.Heel:
		if MatchesClass(move, schema.HeelMoves) {
			score += 3
		}
	case schema.Face:
		if MatchesClass(move, schema.FaceMoves) {
			score += 3
		}
		if MatchesClass(move, schema.HeelMoves) {
			score -= 2
		}
	}
	if class, ok := archetypeAffinity[archetype]; ok && MatchesClass(move, class) {
		score += 2
	}
	return score
}

// Recommend ranks moves by affinity with an alignment and archetype and returns at most
// MaxRecommendations of them. Ties keep input order and duplicates are dropped.
// An empty input yields an empty result. Recommend does not exclude any keyword class;
// callers that must avoid one filter with FilterOut first.
func Recommend(moves []string, align schema.Alignment, archetype schema.Archetype) []string {
	scored := make([]scoredMove, 0, len(moves))
	seen := make(map[string]struct{}, len(moves))
	for _, m := range moves {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		scored = append(scored, scoredMove{name: m, score: scoreMove(m, align, archetype)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	result := make([]string, 0, MaxRecommendations)
	for _, s := range scored {
		if len(result) == MaxRecommendations {
			break
		}
		result = append(result, s.name)
	}

	// Pad from the remaining input in original order.
	if len(result) < MinRecommendations {
		for _, s := range scored {
			if len(result) >= MinRecommendations {
				break
			}
			if !slices.Contains(result, s.name) {
				result = append(result, s.name)
			}
		}
	}
	return result
}

// RankWrestlers orders wrestlers by a leaderboard stat and returns the top limit entries.
// Ties keep input order. The win rate board only admits wrestlers with enough matches.
func RankWrestlers(wrestlers []schema.Wrestler, stat schema.LeaderboardStat, limit int) []schema.LeaderboardEntry {
	entries := make([]schema.LeaderboardEntry, 0, len(wrestlers))
	for i := range wrestlers {
		w := &wrestlers[i]
		e := schema.LeaderboardEntry{WrestlerID: w.ID, Name: w.Name}
		switch stat {
		case schema.StatWins:
			e.Value = float64(w.Wins)
			e.Display = fmt.Sprintf("%d wins (%s)", w.Wins, w.Record())
		case schema.StatWinRate:
			if w.MatchCount() < MinWinRateMatches {
				continue
			}
			e.Value = w.WinRate()
			e.Display = fmt.Sprintf("%.1f%% (%s)", e.Value, w.Record())
		case schema.StatCurrency:
			e.Value = float64(w.Currency)
			e.Display = schema.FormatThousands(w.Currency)
		case schema.StatLevel:
			// XP breaks ties between wrestlers at the same level.
			e.Value = float64(w.Level)*1e6 + float64(w.XP)
			e.Display = fmt.Sprintf("Level %d (%s XP)", w.Level, schema.FormatThousands(w.XP))
		default:
			return nil
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// CurrentStreak returns the run of consecutive results for a wrestler.
// Matches must be ordered newest first.
func CurrentStreak(matches []schema.Match, wrestlerID int64) (winning bool, length int) {
	for _, m := range matches {
		won := slices.Contains(m.WinnerIDs, wrestlerID)
		lost := slices.Contains(m.LoserIDs, wrestlerID)
		if !won && !lost {
			continue
		}
		if length == 0 {
			winning = won
		}
		if won != winning {
			break
		}
		length++
	}
	return winning, length
}

// RankStreaks filters and orders streaks by kind, returning the top limit entries.
func RankStreaks(streaks []schema.StreakEntry, kind schema.StreakKind, limit int) []schema.StreakEntry {
	out := make([]schema.StreakEntry, 0, len(streaks))
	for _, s := range streaks {
		if s.Length == 0 {
			continue
		}
		switch kind {
		case schema.StreakHot:
			if !s.Winning {
				continue
			}
		case schema.StreakCold:
			if s.Winning {
				continue
			}
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Length > out[j].Length
	})
	if len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

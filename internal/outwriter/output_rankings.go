package outwriter

import (
	"fmt"
	"strconv"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteLeaderboard outputs the top wrestlers for a stat.
func WriteLeaderboard(stat schema.LeaderboardStat, entries []schema.LeaderboardEntry, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	width := getMaxNameWidth(cfg, 1, 40)
	r := report{
		kind:    "ranked wrestlers",
		data:    entries,
		headers: []string{"Rank", "Name", "Value", "Detail"},
		align:   tw.AlignRight,
	}
	for _, e := range entries {
		rank := strconv.Itoa(e.Rank)
		if e.Rank == 1 {
			rank = contract.ChampColor.Sprint("🏆 1")
		}
		r.rows = append(r.rows, []string{rank, contract.TruncateText(e.Name, width), fmtFloat(e.Value), e.Display})
		r.csvRows = append(r.csvRows, []string{strconv.Itoa(e.Rank), e.Name, fmtFloat(e.Value), e.Display})
	}
	r.footer = fmt.Sprintf("Leaderboard: %s", stat)
	return writeReport(r, cfg)
}

// WriteStreaks outputs current win and loss runs.
func WriteStreaks(kind schema.StreakKind, streaks []schema.StreakEntry, cfg *contract.Config) error {
	r := report{
		kind:    "streaks",
		data:    streaks,
		headers: []string{"Rank", "Name", "Streak"},
		align:   tw.AlignRight,
	}
	for _, s := range streaks {
		label := s.Label()
		text := contract.HeelColor.Sprint(label)
		if s.Winning {
			text = contract.FaceColor.Sprint(label)
		}
		r.rows = append(r.rows, []string{strconv.Itoa(s.Rank), s.Name, text})
		r.csvRows = append(r.csvRows, []string{strconv.Itoa(s.Rank), s.Name, label})
	}
	r.footer = fmt.Sprintf("Streaks: %s", kind)
	return writeReport(r, cfg)
}

// WriteMatches outputs recorded matches, newest first.
func WriteMatches(matches []schema.Match, names map[int64]string, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	width := getMaxNameWidth(cfg, 2, 45)
	r := report{
		kind:    "matches",
		data:    matches,
		headers: []string{"ID", "Date", "Type", "Winners", "Losers", "Finish", "Rating"},
	}
	for i := range matches {
		m := &matches[i]
		kind := m.MatchType
		if m.TitleMatch {
			kind += " 🏆"
		}
		winners := formatNames(m.WinnerIDs, names, " & ")
		losers := formatNames(m.LoserIDs, names, " & ")
		r.rows = append(r.rows, []string{
			strconv.FormatInt(m.ID, 10), formatDate(&m.RecordedAt), kind,
			contract.TruncateText(winners, width), contract.TruncateText(losers, width), m.Finish, fmtFloat(m.Rating),
		})
		r.csvRows = append(r.csvRows, []string{
			strconv.FormatInt(m.ID, 10), formatTimestamp(&m.RecordedAt), m.MatchType,
			winners, losers, m.Finish, fmtFloat(m.Rating),
		})
	}
	return writeReport(r, cfg)
}

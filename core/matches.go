package core

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/huangsam/ringside/core/algo"
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// MaxMatchRating is the highest star rating a match can get.
const MaxMatchRating = 5.0

// MatchInput carries a match result. A set ChampionshipID makes it a title match and a set
// EventID links it to the event card.
type MatchInput struct {
	GuildID        string
	MatchType      string
	WinnerIDs      []int64
	LoserIDs       []int64
	Finish         string
	Rating         float64
	MainEvent      bool
	ChampionshipID *int64
	EventID        *int64
}

func (in *MatchInput) validate() error {
	switch {
	case len(in.WinnerIDs) == 0 || len(in.LoserIDs) == 0:
		return fmt.Errorf("%w: a match needs at least one winner and one loser", contract.ErrInvalidInput)
	case in.Rating < 0 || in.Rating > MaxMatchRating:
		return fmt.Errorf("%w: rating must be between 0 and %.0f", contract.ErrInvalidInput, MaxMatchRating)
	case strings.TrimSpace(in.MatchType) == "":
		return fmt.Errorf("%w: match type is required", contract.ErrInvalidInput)
	}
	for _, id := range in.WinnerIDs {
		if slices.Contains(in.LoserIDs, id) {
			return fmt.Errorf("%w: wrestler %d cannot both win and lose", contract.ErrInvalidInput, id)
		}
	}
	return nil
}

// RecordMatch stores a result and applies everything that follows from it: records, XP and
// level bonuses, rivalry scores, title changes or defenses and the event card link.
func (l *League) RecordMatch(ctx context.Context, in MatchInput) (schema.MatchOutcome, error) {
	if err := in.validate(); err != nil {
		return schema.MatchOutcome{}, err
	}
	var out schema.MatchOutcome
	err := l.store.InTx(ctx, func(tx contract.LeagueStore) error {
		wrestlers, err := loadWrestlers(ctx, tx, in.GuildID, append(slices.Clone(in.WinnerIDs), in.LoserIDs...))
		if err != nil {
			return err
		}
		for _, w := range wrestlers {
			if w.Retired {
				return fmt.Errorf("%w: %s is retired", contract.ErrInvalidState, w.Name)
			}
		}

		m := schema.Match{
			GuildID:    in.GuildID,
			EventID:    in.EventID,
			MatchType:  strings.TrimSpace(in.MatchType),
			WinnerIDs:  in.WinnerIDs,
			LoserIDs:   in.LoserIDs,
			Finish:     in.Finish,
			Rating:     in.Rating,
			MainEvent:  in.MainEvent,
			RecordedAt: l.now(),
		}

		var title *schema.Championship
		if in.ChampionshipID != nil {
			c, err := guildChampionship(ctx, tx, in.GuildID, *in.ChampionshipID)
			if err != nil {
				return err
			}
			if !sameHolders(c.ChampionIDs, in.WinnerIDs) {
				if err := CheckEligibility(c, wrestlers[:len(in.WinnerIDs)]); err != nil {
					return err
				}
			}
			title = &c
			m.TitleMatch = true
			m.ChampionshipID = &c.ID
		}

		var card *schema.CardMatch
		if in.EventID != nil {
			if card, err = pendingCardMatch(ctx, tx, in.GuildID, *in.EventID, m.MatchType); err != nil {
				return err
			}
			if card != nil {
				m.CardMatchID = &card.ID
				m.MainEvent = m.MainEvent || card.MainEvent
			}
		}

		rivals, err := rivalriesAmong(ctx, tx, in.GuildID, m.Participants())
		if err != nil {
			return err
		}
		if _, err := tx.CreateMatch(ctx, &m); err != nil {
			return err
		}
		out.Match = m
		out.RivalryBonus = len(rivals) > 0

		for i := range wrestlers {
			award, err := l.awardMatch(ctx, tx, &wrestlers[i], i < len(in.WinnerIDs), &m, out.RivalryBonus)
			if err != nil {
				return err
			}
			out.Awards = append(out.Awards, award)
		}

		for _, r := range rivals {
			switch {
			case slices.Contains(m.WinnerIDs, r.Wrestler1ID) && slices.Contains(m.LoserIDs, r.Wrestler2ID):
				r.Wins1++
			case slices.Contains(m.WinnerIDs, r.Wrestler2ID) && slices.Contains(m.LoserIDs, r.Wrestler1ID):
				r.Wins2++
			default:
				continue
			}
			if err := tx.UpdateRivalry(ctx, &r); err != nil {
				return err
			}
		}

		if title != nil {
			if err := l.settleTitle(ctx, tx, *title, m.WinnerIDs, &out); err != nil {
				return err
			}
		}

		if card != nil {
			card.Status = schema.CardCompleted
			card.MatchID = &m.ID
			if err := tx.UpdateCardMatch(ctx, card); err != nil {
				return err
			}
			out.LinkedCardMatchID = &card.ID
		}
		return nil
	})
	if err != nil {
		return schema.MatchOutcome{}, err
	}
	l.observer.MatchRecorded(in.GuildID, out.TitleChange)
	return out, nil
}

// awardMatch updates one participant's record and XP and pays level bonuses.
func (l *League) awardMatch(ctx context.Context, tx contract.LeagueStore, w *schema.Wrestler, winner bool, m *schema.Match, rivalry bool) (schema.XPAward, error) {
	xp := algo.MatchXP(winner, m.MainEvent, m.TitleMatch, m.Rating, rivalry)
	level, total, ups := algo.ApplyXP(w.Level, w.XP, xp)
	award := schema.XPAward{
		WrestlerID: w.ID,
		Name:       w.Name,
		XP:         xp,
		TotalXP:    total,
		OldLevel:   w.Level,
		NewLevel:   level,
		LevelUps:   ups,
	}
	for _, up := range ups {
		award.Bonus += up.Bonus
	}
	if winner {
		w.Wins++
	} else {
		w.Losses++
	}
	w.Level, w.XP = level, total
	if err := tx.UpdateWrestler(ctx, w); err != nil {
		return award, err
	}
	if award.Bonus > 0 {
		balance, err := tx.AdjustCurrency(ctx, w.ID, award.Bonus)
		if err != nil {
			return award, err
		}
		w.Currency = balance
	}
	return award, nil
}

// settleTitle records a defense when the holders won and a title change otherwise.
func (l *League) settleTitle(ctx context.Context, tx contract.LeagueStore, c schema.Championship, winners []int64, out *schema.MatchOutcome) error {
	if sameHolders(c.ChampionIDs, winners) {
		reign, err := tx.CurrentReign(ctx, c.ID)
		if err != nil {
			return err
		}
		if err := tx.AddDefense(ctx, reign.ID); err != nil {
			return err
		}
		reign.Defenses++
		out.TitleDefense = true
		out.Reign = &reign
		return nil
	}
	reign, err := l.crown(ctx, tx, c, winners)
	if err != nil {
		return err
	}
	out.TitleChange = true
	out.Reign = &reign
	return nil
}

// sameHolders reports whether two id lists hold the same wrestlers.
func sameHolders(a, b []int64) bool {
	if len(a) == 0 || len(a) != len(b) {
		return false
	}
	x, y := slices.Clone(a), slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}

// pendingCardMatch returns the first pending card slot of matchType on an event, or nil.
func pendingCardMatch(ctx context.Context, tx contract.LeagueStore, guildID string, eventID int64, matchType string) (*schema.CardMatch, error) {
	ev, err := guildEvent(ctx, tx, guildID, eventID)
	if err != nil {
		return nil, err
	}
	if ev.Status == schema.EventClosed {
		return nil, fmt.Errorf("%w: %s is closed", contract.ErrInvalidState, ev.Name)
	}
	card, err := tx.ListCardMatches(ctx, eventID)
	if err != nil {
		return nil, err
	}
	for i := range card {
		if card[i].Status == schema.CardPending && strings.EqualFold(card[i].MatchType, matchType) {
			return &card[i], nil
		}
	}
	return nil, nil
}

// MatchHistory returns a wrestler's matches, newest first.
func (l *League) MatchHistory(ctx context.Context, guildID string, wrestlerID int64, limit int) ([]schema.Match, error) {
	if _, err := guildWrestler(ctx, l.store, guildID, wrestlerID); err != nil {
		return nil, err
	}
	return l.store.ListWrestlerMatches(ctx, wrestlerID, limit)
}

// Leaderboard ranks a guild's active wrestlers by stat.
func (l *League) Leaderboard(ctx context.Context, guildID string, stat schema.LeaderboardStat) ([]schema.LeaderboardEntry, error) {
	if _, ok := schema.ValidLeaderboardStats[stat]; !ok {
		return nil, fmt.Errorf("%w: unknown leaderboard %q", contract.ErrInvalidInput, stat)
	}
	wrestlers, err := l.store.ListWrestlers(ctx, guildID, false)
	if err != nil {
		return nil, err
	}
	return algo.RankWrestlers(wrestlers, stat, algo.LeaderboardSize), nil
}

// Streaks ranks the current win or loss runs of a guild's active wrestlers.
func (l *League) Streaks(ctx context.Context, guildID string, kind schema.StreakKind) ([]schema.StreakEntry, error) {
	if _, ok := schema.ValidStreakKinds[kind]; !ok {
		return nil, fmt.Errorf("%w: unknown streak kind %q", contract.ErrInvalidInput, kind)
	}
	wrestlers, err := l.store.ListWrestlers(ctx, guildID, false)
	if err != nil {
		return nil, err
	}
	matches, err := l.store.ListMatches(ctx, guildID, 0)
	if err != nil {
		return nil, err
	}
	streaks := make([]schema.StreakEntry, 0, len(wrestlers))
	for _, w := range wrestlers {
		winning, length := algo.CurrentStreak(matches, w.ID)
		streaks = append(streaks, schema.StreakEntry{WrestlerID: w.ID, Name: w.Name, Winning: winning, Length: length})
	}
	return algo.RankStreaks(streaks, kind, algo.LeaderboardSize), nil
}

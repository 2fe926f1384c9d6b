package leaguedb

import (
	"context"
	"database/sql"
	"time"

	"github.com/huangsam/ringside/schema"
)

const matchColumns = `m.id, m.guild_id, m.event_id, m.card_match_id, m.match_type, m.winner_ids, m.loser_ids,
	m.finish, m.rating, m.main_event, m.title_match, m.championship_id, m.recorded_at`

func scanMatch(row rowScanner) (schema.Match, error) {
	var m schema.Match
	var eventID, cardID, titleID sql.NullInt64
	var winners, losers sql.NullString
	var mainEvent, titleMatch int
	var recordedAt int64
	err := row.Scan(&m.ID, &m.GuildID, &eventID, &cardID, &m.MatchType, &winners, &losers,
		&m.Finish, &m.Rating, &mainEvent, &titleMatch, &titleID, &recordedAt)
	if err != nil {
		return m, err
	}
	m.EventID = fromNullID(eventID)
	m.CardMatchID = fromNullID(cardID)
	m.ChampionshipID = fromNullID(titleID)
	m.MainEvent = mainEvent != 0
	m.TitleMatch = titleMatch != 0
	m.RecordedAt = fromUnix(recordedAt)
	if err := decodeJSON(winners, &m.WinnerIDs); err != nil {
		return m, err
	}
	return m, decodeJSON(losers, &m.LoserIDs)
}

// CreateMatch implements the LeagueStore interface.
// The match row and its participant rows are written together.
func (s *LeagueStoreImpl) CreateMatch(ctx context.Context, m *schema.Match) (int64, error) {
	winners, err := encodeJSON(m.WinnerIDs)
	if err != nil {
		return 0, wrapErr("insert", matchesTable, err)
	}
	losers, err := encodeJSON(m.LoserIDs)
	if err != nil {
		return 0, wrapErr("insert", matchesTable, err)
	}
	if m.RecordedAt.IsZero() {
		m.RecordedAt = time.Now().UTC()
	}

	var id int64
	err = s.withTx(ctx, func(ts *LeagueStoreImpl) error {
		var err error
		id, err = ts.insert(ctx, matchesTable, `INSERT INTO matches
			(guild_id, event_id, card_match_id, match_type, winner_ids, loser_ids, finish, rating,
			main_event, title_match, championship_id, recorded_at)
			VALUES (`+placeholders(12)+`)`,
			m.GuildID, nullID(m.EventID), nullID(m.CardMatchID), m.MatchType, winners, losers, m.Finish, m.Rating,
			boolInt(m.MainEvent), boolInt(m.TitleMatch), nullID(m.ChampionshipID), unixTime(m.RecordedAt))
		if err != nil {
			return err
		}
		for _, wid := range m.WinnerIDs {
			if _, err := ts.exec(ctx, "insert", participantsTable,
				`INSERT INTO match_participants (match_id, wrestler_id, won) VALUES (?, ?, 1)`, id, wid); err != nil {
				return err
			}
		}
		for _, lid := range m.LoserIDs {
			if _, err := ts.exec(ctx, "insert", participantsTable,
				`INSERT INTO match_participants (match_id, wrestler_id, won) VALUES (?, ?, 0)`, id, lid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	m.ID = id
	return id, nil
}

// ListMatches implements the LeagueStore interface.
func (s *LeagueStoreImpl) ListMatches(ctx context.Context, guildID string, limit int) ([]schema.Match, error) {
	return queryList(ctx, s, matchesTable, `SELECT `+matchColumns+` FROM matches m
		WHERE m.guild_id = ? ORDER BY m.recorded_at DESC, m.id DESC`+limitClause(limit), scanMatch, guildID)
}

// ListWrestlerMatches implements the LeagueStore interface.
func (s *LeagueStoreImpl) ListWrestlerMatches(ctx context.Context, wrestlerID int64, limit int) ([]schema.Match, error) {
	return queryList(ctx, s, matchesTable, `SELECT `+matchColumns+` FROM matches m
		JOIN match_participants p ON p.match_id = m.id
		WHERE p.wrestler_id = ? ORDER BY m.recorded_at DESC, m.id DESC`+limitClause(limit), scanMatch, wrestlerID)
}

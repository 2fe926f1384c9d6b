package leaguedb

import (
	"context"
	"database/sql"
	"time"

	"github.com/huangsam/ringside/schema"
)

const (
	rivalryColumns = `id, guild_id, wrestler1_id, wrestler2_id, wins1, wins2, active, started_at, ended_at`
	turnColumns    = `id, wrestler_id, from_alignment, to_alignment, from_persona, to_persona, turned_at`
)

func scanRivalry(row rowScanner) (schema.Rivalry, error) {
	var r schema.Rivalry
	var active int
	var startedAt int64
	var endedAt sql.NullInt64
	err := row.Scan(&r.ID, &r.GuildID, &r.Wrestler1ID, &r.Wrestler2ID, &r.Wins1, &r.Wins2, &active, &startedAt, &endedAt)
	r.Active = active != 0
	r.StartedAt = fromUnix(startedAt)
	r.EndedAt = fromNullUnix(endedAt)
	return r, err
}

func scanTurn(row rowScanner) (schema.TurnRecord, error) {
	var t schema.TurnRecord
	var turnedAt int64
	err := row.Scan(&t.ID, &t.WrestlerID, &t.FromAlignment, &t.ToAlignment, &t.FromPersona, &t.ToPersona, &turnedAt)
	t.TurnedAt = fromUnix(turnedAt)
	return t, err
}

// CreateRivalry implements the LeagueStore interface.
func (s *LeagueStoreImpl) CreateRivalry(ctx context.Context, r *schema.Rivalry) (int64, error) {
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now().UTC()
	}
	id, err := s.insert(ctx, rivalriesTable, `INSERT INTO rivalries
		(guild_id, wrestler1_id, wrestler2_id, wins1, wins2, active, started_at, ended_at)
		VALUES (`+placeholders(8)+`)`,
		r.GuildID, r.Wrestler1ID, r.Wrestler2ID, r.Wins1, r.Wins2, boolInt(r.Active), unixTime(r.StartedAt), nullUnix(r.EndedAt))
	if err != nil {
		return 0, err
	}
	r.ID = id
	return id, nil
}

// GetRivalry implements the LeagueStore interface.
func (s *LeagueStoreImpl) GetRivalry(ctx context.Context, id int64) (schema.Rivalry, error) {
	r, err := scanRivalry(s.q.QueryRowContext(ctx, s.rebind(`SELECT `+rivalryColumns+` FROM rivalries WHERE id = ?`), id))
	if err != nil {
		return schema.Rivalry{}, wrapErr("get", rivalriesTable, err)
	}
	return r, nil
}

// ListRivalries implements the LeagueStore interface.
func (s *LeagueStoreImpl) ListRivalries(ctx context.Context, guildID string, activeOnly bool) ([]schema.Rivalry, error) {
	query := `SELECT ` + rivalryColumns + ` FROM rivalries WHERE guild_id = ?`
	if activeOnly {
		query += ` AND active = 1`
	}
	return queryList(ctx, s, rivalriesTable, query+` ORDER BY started_at DESC, id DESC`, scanRivalry, guildID)
}

// ActiveRivalry implements the LeagueStore interface.
func (s *LeagueStoreImpl) ActiveRivalry(ctx context.Context, wrestlerID int64) (schema.Rivalry, error) {
	r, err := scanRivalry(s.q.QueryRowContext(ctx, s.rebind(`SELECT `+rivalryColumns+` FROM rivalries
		WHERE active = 1 AND (wrestler1_id = ? OR wrestler2_id = ?) ORDER BY id DESC LIMIT 1`), wrestlerID, wrestlerID))
	if err != nil {
		return schema.Rivalry{}, wrapErr("get", rivalriesTable, err)
	}
	return r, nil
}

// UpdateRivalry implements the LeagueStore interface.
func (s *LeagueStoreImpl) UpdateRivalry(ctx context.Context, r *schema.Rivalry) error {
	return s.execOne(ctx, "update", rivalriesTable, `UPDATE rivalries SET wins1 = ?, wins2 = ?, active = ?, ended_at = ? WHERE id = ?`,
		r.Wins1, r.Wins2, boolInt(r.Active), nullUnix(r.EndedAt), r.ID)
}

// RecordTurn implements the LeagueStore interface.
func (s *LeagueStoreImpl) RecordTurn(ctx context.Context, t *schema.TurnRecord) (int64, error) {
	if t.TurnedAt.IsZero() {
		t.TurnedAt = time.Now().UTC()
	}
	id, err := s.insert(ctx, turnsTable, `INSERT INTO turn_history
		(wrestler_id, from_alignment, to_alignment, from_persona, to_persona, turned_at)
		VALUES (`+placeholders(6)+`)`,
		t.WrestlerID, t.FromAlignment, t.ToAlignment, t.FromPersona, t.ToPersona, unixTime(t.TurnedAt))
	if err != nil {
		return 0, err
	}
	t.ID = id
	return id, nil
}

// ListTurns implements the LeagueStore interface.
func (s *LeagueStoreImpl) ListTurns(ctx context.Context, wrestlerID int64) ([]schema.TurnRecord, error) {
	return queryList(ctx, s, turnsTable, `SELECT `+turnColumns+` FROM turn_history WHERE wrestler_id = ? ORDER BY turned_at DESC, id DESC`,
		scanTurn, wrestlerID)
}

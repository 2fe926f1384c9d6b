package leaguedb

import (
	"context"
	"database/sql"
	"time"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

const wrestlerColumns = `id, guild_id, user_id, name, gender, archetype, alignment, weight_class, persona,
	height_cm, height_feet, body_type, finisher, signature, attributes, personality,
	currency, level, xp, wins, losses, retired, inactive, last_active,
	daily_streak, longest_streak, last_daily, former_names, last_turn_date, last_rename_date, created_at`

func scanWrestler(row rowScanner) (schema.Wrestler, error) {
	var w schema.Wrestler
	var attrs, traits, formerNames sql.NullString
	var retired, inactive int
	var lastActive, lastDaily, lastTurn, lastRename sql.NullInt64
	var createdAt int64
	err := row.Scan(&w.ID, &w.GuildID, &w.UserID, &w.Name, &w.Gender, &w.Archetype, &w.Alignment, &w.WeightClass, &w.Persona,
		&w.HeightCm, &w.HeightFeet, &w.BodyType, &w.Finisher, &w.Signature, &attrs, &traits,
		&w.Currency, &w.Level, &w.XP, &w.Wins, &w.Losses, &retired, &inactive, &lastActive,
		&w.DailyStreak, &w.LongestStreak, &lastDaily, &formerNames, &lastTurn, &lastRename, &createdAt)
	if err != nil {
		return w, err
	}
	w.Retired = retired != 0
	w.Inactive = inactive != 0
	w.LastActive = fromNullUnix(lastActive)
	w.LastDaily = fromNullUnix(lastDaily)
	w.LastTurnDate = fromNullUnix(lastTurn)
	w.LastRenameDate = fromNullUnix(lastRename)
	w.CreatedAt = fromUnix(createdAt)
	if err := decodeJSON(attrs, &w.Attributes); err != nil {
		return w, err
	}
	if err := decodeJSON(traits, &w.Personality); err != nil {
		return w, err
	}
	return w, decodeJSON(formerNames, &w.FormerNames)
}

// wrestlerJSON encodes the JSON columns of a wrestler.
func wrestlerJSON(w *schema.Wrestler) (attrs, traits, formerNames string, err error) {
	if attrs, err = encodeJSON(w.Attributes); err != nil {
		return
	}
	if traits, err = encodeJSON(w.Personality); err != nil {
		return
	}
	formerNames, err = encodeJSON(w.FormerNames)
	return
}

// CreateWrestler implements the LeagueStore interface.
func (s *LeagueStoreImpl) CreateWrestler(ctx context.Context, w *schema.Wrestler) (int64, error) {
	attrs, traits, formerNames, err := wrestlerJSON(w)
	if err != nil {
		return 0, wrapErr("insert", wrestlersTable, err)
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}
	id, err := s.insert(ctx, wrestlersTable, `INSERT INTO wrestlers (
		guild_id, user_id, name, name_key, gender, archetype, alignment, weight_class, persona,
		height_cm, height_feet, body_type, finisher, signature, attributes, personality,
		currency, level, xp, wins, losses, retired, inactive, last_active,
		daily_streak, longest_streak, last_daily, former_names, last_turn_date, last_rename_date, created_at
	) VALUES (`+placeholders(31)+`)`,
		w.GuildID, w.UserID, w.Name, nameKey(w.Name), w.Gender, w.Archetype, w.Alignment, w.WeightClass, w.Persona,
		w.HeightCm, w.HeightFeet, w.BodyType, w.Finisher, w.Signature, attrs, traits,
		w.Currency, w.Level, w.XP, w.Wins, w.Losses, boolInt(w.Retired), boolInt(w.Inactive), nullUnix(w.LastActive),
		w.DailyStreak, w.LongestStreak, nullUnix(w.LastDaily), formerNames, nullUnix(w.LastTurnDate), nullUnix(w.LastRenameDate),
		unixTime(w.CreatedAt))
	if err != nil {
		return 0, err
	}
	w.ID = id
	return id, nil
}

// GetWrestler implements the LeagueStore interface.
func (s *LeagueStoreImpl) GetWrestler(ctx context.Context, id int64) (schema.Wrestler, error) {
	row := s.q.QueryRowContext(ctx, s.rebind(`SELECT `+wrestlerColumns+` FROM wrestlers WHERE id = ?`), id)
	w, err := scanWrestler(row)
	if err != nil {
		return schema.Wrestler{}, wrapErr("get", wrestlersTable, err)
	}
	return w, nil
}

// FindWrestler implements the LeagueStore interface.
// Active wrestlers win over retired ones when names collide across owners.
func (s *LeagueStoreImpl) FindWrestler(ctx context.Context, guildID, name string) (schema.Wrestler, error) {
	row := s.q.QueryRowContext(ctx, s.rebind(`SELECT `+wrestlerColumns+` FROM wrestlers
		WHERE guild_id = ? AND name_key = ? ORDER BY retired, id LIMIT 1`), guildID, nameKey(name))
	w, err := scanWrestler(row)
	if err != nil {
		return schema.Wrestler{}, wrapErr("find", wrestlersTable, err)
	}
	return w, nil
}

// ListWrestlers implements the LeagueStore interface.
func (s *LeagueStoreImpl) ListWrestlers(ctx context.Context, guildID string, includeRetired bool) ([]schema.Wrestler, error) {
	query := `SELECT ` + wrestlerColumns + ` FROM wrestlers WHERE guild_id = ?`
	if !includeRetired {
		query += ` AND retired = 0`
	}
	return queryList(ctx, s, wrestlersTable, query+` ORDER BY id`, scanWrestler, guildID)
}

// ListUserWrestlers implements the LeagueStore interface.
func (s *LeagueStoreImpl) ListUserWrestlers(ctx context.Context, guildID, userID string) ([]schema.Wrestler, error) {
	return queryList(ctx, s, wrestlersTable, `SELECT `+wrestlerColumns+` FROM wrestlers
		WHERE guild_id = ? AND user_id = ? ORDER BY id`, scanWrestler, guildID, userID)
}

// UpdateWrestler implements the LeagueStore interface.
func (s *LeagueStoreImpl) UpdateWrestler(ctx context.Context, w *schema.Wrestler) error {
	attrs, traits, formerNames, err := wrestlerJSON(w)
	if err != nil {
		return wrapErr("update", wrestlersTable, err)
	}
	return s.execOne(ctx, "update", wrestlersTable, `UPDATE wrestlers SET
		name = ?, name_key = ?, gender = ?, archetype = ?, alignment = ?, weight_class = ?, persona = ?,
		height_cm = ?, height_feet = ?, body_type = ?, finisher = ?, signature = ?, attributes = ?, personality = ?,
		level = ?, xp = ?, wins = ?, losses = ?, retired = ?, inactive = ?, last_active = ?,
		daily_streak = ?, longest_streak = ?, last_daily = ?, former_names = ?, last_turn_date = ?, last_rename_date = ?
		WHERE id = ?`,
		w.Name, nameKey(w.Name), w.Gender, w.Archetype, w.Alignment, w.WeightClass, w.Persona,
		w.HeightCm, w.HeightFeet, w.BodyType, w.Finisher, w.Signature, attrs, traits,
		w.Level, w.XP, w.Wins, w.Losses, boolInt(w.Retired), boolInt(w.Inactive), nullUnix(w.LastActive),
		w.DailyStreak, w.LongestStreak, nullUnix(w.LastDaily), formerNames, nullUnix(w.LastTurnDate), nullUnix(w.LastRenameDate),
		w.ID)
}

// AdjustCurrency implements the LeagueStore interface.
// The balance check and the write are one UPDATE, so concurrent debits cannot overdraw.
func (s *LeagueStoreImpl) AdjustCurrency(ctx context.Context, wrestlerID int64, delta int) (int, error) {
	var balance int
	err := s.withTx(ctx, func(ts *LeagueStoreImpl) error {
		res, err := ts.exec(ctx, "adjust", wrestlersTable,
			`UPDATE wrestlers SET currency = currency + ? WHERE id = ? AND currency + ? >= 0`, delta, wrestlerID, delta)
		if err != nil {
			return err
		}
		if err := expectOne(res); err != nil {
			if _, getErr := ts.GetWrestler(ctx, wrestlerID); getErr != nil {
				return getErr
			}
			return wrapErr("adjust", wrestlersTable, contract.ErrInsufficientFunds)
		}
		err = ts.q.QueryRowContext(ctx, ts.rebind(`SELECT currency FROM wrestlers WHERE id = ?`), wrestlerID).Scan(&balance)
		return wrapErr("adjust", wrestlersTable, err)
	})
	return balance, err
}

// TakenMoves implements the LeagueStore interface.
func (s *LeagueStoreImpl) TakenMoves(ctx context.Context, guildID string, exceptID int64) (map[string]struct{}, error) {
	type pair struct{ finisher, signature string }
	pairs, err := queryList(ctx, s, wrestlersTable, `SELECT finisher, signature FROM wrestlers
		WHERE guild_id = ? AND retired = 0 AND id <> ?`, func(row rowScanner) (pair, error) {
		var p pair
		err := row.Scan(&p.finisher, &p.signature)
		return p, err
	}, guildID, exceptID)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]struct{}, len(pairs)*2)
	for _, p := range pairs {
		taken[p.finisher] = struct{}{}
		taken[p.signature] = struct{}{}
	}
	return taken, nil
}

// TouchUserActivity implements the LeagueStore interface.
func (s *LeagueStoreImpl) TouchUserActivity(ctx context.Context, guildID, userID string, at time.Time) (int, error) {
	var revived int
	err := s.withTx(ctx, func(ts *LeagueStoreImpl) error {
		n, err := ts.count(ctx, wrestlersTable, `SELECT COUNT(*) FROM wrestlers
			WHERE guild_id = ? AND user_id = ? AND retired = 0 AND inactive = 1`, guildID, userID)
		if err != nil {
			return err
		}
		revived = n
		_, err = ts.exec(ctx, "touch", wrestlersTable, `UPDATE wrestlers SET last_active = ?, inactive = 0
			WHERE guild_id = ? AND user_id = ? AND retired = 0`, unixTime(at), guildID, userID)
		return err
	})
	return revived, err
}

// SetInactive implements the LeagueStore interface.
func (s *LeagueStoreImpl) SetInactive(ctx context.Context, wrestlerID int64, inactive bool) error {
	return s.execOne(ctx, "update", wrestlersTable, `UPDATE wrestlers SET inactive = ? WHERE id = ?`, boolInt(inactive), wrestlerID)
}

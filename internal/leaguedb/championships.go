package leaguedb

import (
	"context"
	"database/sql"
	"time"

	"github.com/huangsam/ringside/schema"
)

const (
	championshipColumns = `id, guild_id, name, gender, weight_class, tag_team, champion_ids, created_at`
	reignColumns        = `id, championship_id, wrestler_ids, reign_number, won_date, lost_date, days_held, defenses, is_current`
)

func scanChampionship(row rowScanner) (schema.Championship, error) {
	var c schema.Championship
	var tagTeam int
	var champions sql.NullString
	var createdAt int64
	if err := row.Scan(&c.ID, &c.GuildID, &c.Name, &c.Gender, &c.WeightClass, &tagTeam, &champions, &createdAt); err != nil {
		return c, err
	}
	c.TagTeam = tagTeam != 0
	c.CreatedAt = fromUnix(createdAt)
	return c, decodeJSON(champions, &c.ChampionIDs)
}

func scanReign(row rowScanner) (schema.TitleReign, error) {
	var r schema.TitleReign
	var holders sql.NullString
	var wonDate int64
	var lostDate sql.NullInt64
	var current int
	if err := row.Scan(&r.ID, &r.ChampionshipID, &holders, &r.ReignNumber, &wonDate, &lostDate, &r.DaysHeld, &r.Defenses, &current); err != nil {
		return r, err
	}
	r.WonDate = fromUnix(wonDate)
	r.LostDate = fromNullUnix(lostDate)
	r.IsCurrent = current != 0
	return r, decodeJSON(holders, &r.WrestlerIDs)
}

// CreateChampionship implements the LeagueStore interface.
func (s *LeagueStoreImpl) CreateChampionship(ctx context.Context, c *schema.Championship) (int64, error) {
	champions, err := encodeJSON(c.ChampionIDs)
	if err != nil {
		return 0, wrapErr("insert", titlesTable, err)
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	id, err := s.insert(ctx, titlesTable, `INSERT INTO championships
		(guild_id, name, name_key, gender, weight_class, tag_team, champion_ids, created_at)
		VALUES (`+placeholders(8)+`)`,
		c.GuildID, c.Name, nameKey(c.Name), c.Gender, c.WeightClass, boolInt(c.TagTeam), champions, unixTime(c.CreatedAt))
	if err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}

// GetChampionship implements the LeagueStore interface.
func (s *LeagueStoreImpl) GetChampionship(ctx context.Context, id int64) (schema.Championship, error) {
	c, err := scanChampionship(s.q.QueryRowContext(ctx, s.rebind(`SELECT `+championshipColumns+` FROM championships WHERE id = ?`), id))
	if err != nil {
		return schema.Championship{}, wrapErr("get", titlesTable, err)
	}
	return c, nil
}

// FindChampionship implements the LeagueStore interface.
func (s *LeagueStoreImpl) FindChampionship(ctx context.Context, guildID, name string) (schema.Championship, error) {
	c, err := scanChampionship(s.q.QueryRowContext(ctx,
		s.rebind(`SELECT `+championshipColumns+` FROM championships WHERE guild_id = ? AND name_key = ?`), guildID, nameKey(name)))
	if err != nil {
		return schema.Championship{}, wrapErr("find", titlesTable, err)
	}
	return c, nil
}

// ListChampionships implements the LeagueStore interface.
func (s *LeagueStoreImpl) ListChampionships(ctx context.Context, guildID string) ([]schema.Championship, error) {
	return queryList(ctx, s, titlesTable, `SELECT `+championshipColumns+` FROM championships WHERE guild_id = ? ORDER BY id`,
		scanChampionship, guildID)
}

// SetChampions implements the LeagueStore interface.
func (s *LeagueStoreImpl) SetChampions(ctx context.Context, championshipID int64, wrestlerIDs []int64) error {
	champions, err := encodeJSON(wrestlerIDs)
	if err != nil {
		return wrapErr("update", titlesTable, err)
	}
	return s.execOne(ctx, "update", titlesTable, `UPDATE championships SET champion_ids = ? WHERE id = ?`, champions, championshipID)
}

// CurrentReign implements the LeagueStore interface.
func (s *LeagueStoreImpl) CurrentReign(ctx context.Context, championshipID int64) (schema.TitleReign, error) {
	r, err := scanReign(s.q.QueryRowContext(ctx, s.rebind(`SELECT `+reignColumns+` FROM title_reigns
		WHERE championship_id = ? AND is_current = 1 ORDER BY id DESC LIMIT 1`), championshipID))
	if err != nil {
		return schema.TitleReign{}, wrapErr("get", reignsTable, err)
	}
	return r, nil
}

// CountReigns implements the LeagueStore interface.
func (s *LeagueStoreImpl) CountReigns(ctx context.Context, championshipID int64) (int, error) {
	return s.count(ctx, reignsTable, `SELECT COUNT(*) FROM title_reigns WHERE championship_id = ?`, championshipID)
}

// StartReign implements the LeagueStore interface.
func (s *LeagueStoreImpl) StartReign(ctx context.Context, r *schema.TitleReign) (int64, error) {
	holders, err := encodeJSON(r.WrestlerIDs)
	if err != nil {
		return 0, wrapErr("insert", reignsTable, err)
	}
	id, err := s.insert(ctx, reignsTable, `INSERT INTO title_reigns
		(championship_id, wrestler_ids, reign_number, won_date, lost_date, days_held, defenses, is_current)
		VALUES (`+placeholders(8)+`)`,
		r.ChampionshipID, holders, r.ReignNumber, unixTime(r.WonDate), nullUnix(r.LostDate), r.DaysHeld, r.Defenses, boolInt(r.IsCurrent))
	if err != nil {
		return 0, err
	}
	r.ID = id
	return id, nil
}

// EndReign implements the LeagueStore interface.
func (s *LeagueStoreImpl) EndReign(ctx context.Context, reignID int64, lostAt time.Time, daysHeld int) error {
	return s.execOne(ctx, "update", reignsTable, `UPDATE title_reigns SET lost_date = ?, days_held = ?, is_current = 0 WHERE id = ?`,
		unixTime(lostAt), daysHeld, reignID)
}

// AddDefense implements the LeagueStore interface.
func (s *LeagueStoreImpl) AddDefense(ctx context.Context, reignID int64) error {
	return s.execOne(ctx, "update", reignsTable, `UPDATE title_reigns SET defenses = defenses + 1 WHERE id = ?`, reignID)
}

// ListReigns implements the LeagueStore interface.
func (s *LeagueStoreImpl) ListReigns(ctx context.Context, championshipID int64) ([]schema.TitleReign, error) {
	return queryList(ctx, s, reignsTable, `SELECT `+reignColumns+` FROM title_reigns
		WHERE championship_id = ? ORDER BY won_date DESC, id DESC`, scanReign, championshipID)
}

// ListGuildReigns implements the LeagueStore interface.
func (s *LeagueStoreImpl) ListGuildReigns(ctx context.Context, guildID string) ([]schema.TitleReign, error) {
	return queryList(ctx, s, reignsTable, `SELECT r.id, r.championship_id, r.wrestler_ids, r.reign_number, r.won_date,
		r.lost_date, r.days_held, r.defenses, r.is_current
		FROM title_reigns r JOIN championships c ON c.id = r.championship_id
		WHERE c.guild_id = ? ORDER BY r.won_date DESC, r.id DESC`, scanReign, guildID)
}

package leaguedb

import (
	"context"
	"database/sql"
	"time"

	"github.com/huangsam/ringside/schema"
)

const (
	templateColumns = `id, guild_id, name, event_type, created_at`
	eventColumns    = `id, template_id, guild_id, name, event_number, status, scheduled_at, completed_at, created_at`
	cardColumns     = `id, event_id, position, match_type, participant_ids, open_spots, main_event, status, match_id`
)

func scanTemplate(row rowScanner) (schema.EventTemplate, error) {
	var t schema.EventTemplate
	var createdAt int64
	err := row.Scan(&t.ID, &t.GuildID, &t.Name, &t.EventType, &createdAt)
	t.CreatedAt = fromUnix(createdAt)
	return t, err
}

func scanEvent(row rowScanner) (schema.EventInstance, error) {
	var e schema.EventInstance
	var scheduled, completed sql.NullInt64
	var createdAt int64
	err := row.Scan(&e.ID, &e.TemplateID, &e.GuildID, &e.Name, &e.Number, &e.Status, &scheduled, &completed, &createdAt)
	e.ScheduledAt = fromNullUnix(scheduled)
	e.CompletedAt = fromNullUnix(completed)
	e.CreatedAt = fromUnix(createdAt)
	return e, err
}

func scanCard(row rowScanner) (schema.CardMatch, error) {
	var c schema.CardMatch
	var participants sql.NullString
	var mainEvent int
	var matchID sql.NullInt64
	if err := row.Scan(&c.ID, &c.EventID, &c.Position, &c.MatchType, &participants, &c.OpenSpots, &mainEvent, &c.Status, &matchID); err != nil {
		return c, err
	}
	c.MainEvent = mainEvent != 0
	c.MatchID = fromNullID(matchID)
	return c, decodeJSON(participants, &c.ParticipantIDs)
}

// CreateEventTemplate implements the LeagueStore interface.
func (s *LeagueStoreImpl) CreateEventTemplate(ctx context.Context, t *schema.EventTemplate) (int64, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	id, err := s.insert(ctx, templatesTable, `INSERT INTO event_templates (guild_id, name, name_key, event_type, created_at)
		VALUES (?, ?, ?, ?, ?)`, t.GuildID, t.Name, nameKey(t.Name), t.EventType, unixTime(t.CreatedAt))
	if err != nil {
		return 0, err
	}
	t.ID = id
	return id, nil
}

// GetEventTemplate implements the LeagueStore interface.
func (s *LeagueStoreImpl) GetEventTemplate(ctx context.Context, id int64) (schema.EventTemplate, error) {
	t, err := scanTemplate(s.q.QueryRowContext(ctx, s.rebind(`SELECT `+templateColumns+` FROM event_templates WHERE id = ?`), id))
	if err != nil {
		return schema.EventTemplate{}, wrapErr("get", templatesTable, err)
	}
	return t, nil
}

// FindEventTemplate implements the LeagueStore interface.
func (s *LeagueStoreImpl) FindEventTemplate(ctx context.Context, guildID, name string) (schema.EventTemplate, error) {
	t, err := scanTemplate(s.q.QueryRowContext(ctx,
		s.rebind(`SELECT `+templateColumns+` FROM event_templates WHERE guild_id = ? AND name_key = ?`), guildID, nameKey(name)))
	if err != nil {
		return schema.EventTemplate{}, wrapErr("find", templatesTable, err)
	}
	return t, nil
}

// ListEventTemplates implements the LeagueStore interface.
func (s *LeagueStoreImpl) ListEventTemplates(ctx context.Context, guildID string) ([]schema.EventTemplate, error) {
	return queryList(ctx, s, templatesTable, `SELECT `+templateColumns+` FROM event_templates WHERE guild_id = ? ORDER BY id`,
		scanTemplate, guildID)
}

// CountEventInstances implements the LeagueStore interface.
func (s *LeagueStoreImpl) CountEventInstances(ctx context.Context, templateID int64) (int, error) {
	return s.count(ctx, eventsTable, `SELECT COUNT(*) FROM event_instances WHERE template_id = ?`, templateID)
}

// CreateEventInstance implements the LeagueStore interface.
func (s *LeagueStoreImpl) CreateEventInstance(ctx context.Context, e *schema.EventInstance) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	id, err := s.insert(ctx, eventsTable, `INSERT INTO event_instances
		(template_id, guild_id, name, event_number, status, scheduled_at, completed_at, created_at)
		VALUES (`+placeholders(8)+`)`,
		e.TemplateID, e.GuildID, e.Name, e.Number, e.Status, nullUnix(e.ScheduledAt), nullUnix(e.CompletedAt), unixTime(e.CreatedAt))
	if err != nil {
		return 0, err
	}
	e.ID = id
	return id, nil
}

// GetEventInstance implements the LeagueStore interface.
func (s *LeagueStoreImpl) GetEventInstance(ctx context.Context, id int64) (schema.EventInstance, error) {
	e, err := scanEvent(s.q.QueryRowContext(ctx, s.rebind(`SELECT `+eventColumns+` FROM event_instances WHERE id = ?`), id))
	if err != nil {
		return schema.EventInstance{}, wrapErr("get", eventsTable, err)
	}
	return e, nil
}

// ListEventInstances implements the LeagueStore interface.
func (s *LeagueStoreImpl) ListEventInstances(ctx context.Context, guildID string, status schema.EventStatus) ([]schema.EventInstance, error) {
	query := `SELECT ` + eventColumns + ` FROM event_instances WHERE guild_id = ?`
	args := []any{guildID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, status)
	}
	return queryList(ctx, s, eventsTable, query+` ORDER BY id`, scanEvent, args...)
}

// UpdateEventStatus implements the LeagueStore interface.
func (s *LeagueStoreImpl) UpdateEventStatus(ctx context.Context, id int64, status schema.EventStatus, completedAt *time.Time) error {
	return s.execOne(ctx, "update", eventsTable, `UPDATE event_instances SET status = ?, completed_at = ? WHERE id = ?`,
		status, nullUnix(completedAt), id)
}

// CreateCardMatch implements the LeagueStore interface.
func (s *LeagueStoreImpl) CreateCardMatch(ctx context.Context, c *schema.CardMatch) (int64, error) {
	participants, err := encodeJSON(c.ParticipantIDs)
	if err != nil {
		return 0, wrapErr("insert", cardTable, err)
	}
	id, err := s.insert(ctx, cardTable, `INSERT INTO card_matches
		(event_id, position, match_type, participant_ids, open_spots, main_event, status, match_id)
		VALUES (`+placeholders(8)+`)`,
		c.EventID, c.Position, c.MatchType, participants, c.OpenSpots, boolInt(c.MainEvent), c.Status, nullID(c.MatchID))
	if err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}

// GetCardMatch implements the LeagueStore interface.
func (s *LeagueStoreImpl) GetCardMatch(ctx context.Context, id int64) (schema.CardMatch, error) {
	c, err := scanCard(s.q.QueryRowContext(ctx, s.rebind(`SELECT `+cardColumns+` FROM card_matches WHERE id = ?`), id))
	if err != nil {
		return schema.CardMatch{}, wrapErr("get", cardTable, err)
	}
	return c, nil
}

// ListCardMatches implements the LeagueStore interface.
func (s *LeagueStoreImpl) ListCardMatches(ctx context.Context, eventID int64) ([]schema.CardMatch, error) {
	return queryList(ctx, s, cardTable, `SELECT `+cardColumns+` FROM card_matches WHERE event_id = ? ORDER BY position, id`,
		scanCard, eventID)
}

// UpdateCardMatch implements the LeagueStore interface.
func (s *LeagueStoreImpl) UpdateCardMatch(ctx context.Context, c *schema.CardMatch) error {
	participants, err := encodeJSON(c.ParticipantIDs)
	if err != nil {
		return wrapErr("update", cardTable, err)
	}
	return s.execOne(ctx, "update", cardTable, `UPDATE card_matches SET
		position = ?, match_type = ?, participant_ids = ?, open_spots = ?, main_event = ?, status = ?, match_id = ?
		WHERE id = ?`,
		c.Position, c.MatchType, participants, c.OpenSpots, boolInt(c.MainEvent), c.Status, nullID(c.MatchID), c.ID)
}

package leaguedb

import (
	"context"
	"database/sql"
	"time"

	"github.com/huangsam/ringside/schema"
)

const upgradeColumns = `id, guild_id, wrestler_id, wrestler_name, attribute, old_value, new_value, cost, processed, created_at, processed_at`

func scanUpgrade(row rowScanner) (schema.UpgradeEntry, error) {
	var e schema.UpgradeEntry
	var processed int
	var createdAt int64
	var processedAt sql.NullInt64
	err := row.Scan(&e.ID, &e.GuildID, &e.WrestlerID, &e.WrestlerName, &e.Attribute, &e.OldValue, &e.NewValue,
		&e.Cost, &processed, &createdAt, &processedAt)
	e.Processed = processed != 0
	e.CreatedAt = fromUnix(createdAt)
	e.ProcessedAt = fromNullUnix(processedAt)
	return e, err
}

// EnqueueUpgrade implements the LeagueStore interface.
func (s *LeagueStoreImpl) EnqueueUpgrade(ctx context.Context, e *schema.UpgradeEntry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	id, err := s.insert(ctx, upgradesTable, `INSERT INTO upgrade_queue
		(guild_id, wrestler_id, wrestler_name, attribute, old_value, new_value, cost, processed, created_at, processed_at)
		VALUES (`+placeholders(10)+`)`,
		e.GuildID, e.WrestlerID, e.WrestlerName, e.Attribute, e.OldValue, e.NewValue, e.Cost,
		boolInt(e.Processed), unixTime(e.CreatedAt), nullUnix(e.ProcessedAt))
	if err != nil {
		return 0, err
	}
	e.ID = id
	return id, nil
}

// ListUpgrades implements the LeagueStore interface.
func (s *LeagueStoreImpl) ListUpgrades(ctx context.Context, guildID string, pendingOnly bool) ([]schema.UpgradeEntry, error) {
	query := `SELECT ` + upgradeColumns + ` FROM upgrade_queue WHERE guild_id = ?`
	if pendingOnly {
		query += ` AND processed = 0`
	}
	return queryList(ctx, s, upgradesTable, query+` ORDER BY created_at, id`, scanUpgrade, guildID)
}

// MarkUpgradesProcessed implements the LeagueStore interface.
func (s *LeagueStoreImpl) MarkUpgradesProcessed(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	args := make([]any, 0, len(ids)+1)
	args = append(args, unixTime(at))
	for _, id := range ids {
		args = append(args, id)
	}
	_, err := s.exec(ctx, "update", upgradesTable,
		`UPDATE upgrade_queue SET processed = 1, processed_at = ? WHERE processed = 0 AND id IN (`+placeholders(len(ids))+`)`, args...)
	return err
}

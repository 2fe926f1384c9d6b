package leaguedb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/huangsam/ringside/schema"
)

// GetStatus implements the LeagueStore interface.
func (s *LeagueStoreImpl) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(s.backend),
		TableRows: make(map[string]int64),
	}
	if s.db == nil {
		return status, nil
	}
	if err := s.db.PingContext(ctx); err != nil {
		return status, nil
	}
	status.Connected = true

	var version int64
	var dirty bool
	row := s.q.QueryRowContext(ctx, fmt.Sprintf("SELECT version, dirty FROM %s LIMIT 1", quoteTableName(migrationsTable, s.dialect)))
	if err := row.Scan(&version, &dirty); err != nil && err != sql.ErrNoRows {
		return status, fmt.Errorf("failed to get schema version: %w", err)
	}
	status.SchemaVersion = uint(version)
	status.Dirty = dirty

	var err error
	if status.Guilds, err = s.count(ctx, wrestlersTable, `SELECT COUNT(DISTINCT guild_id) FROM wrestlers`); err != nil {
		return status, err
	}
	if status.TotalWrestlers, err = s.count(ctx, wrestlersTable, `SELECT COUNT(*) FROM wrestlers`); err != nil {
		return status, err
	}
	if status.TotalMatches, err = s.count(ctx, matchesTable, `SELECT COUNT(*) FROM matches`); err != nil {
		return status, err
	}

	var last sql.NullInt64
	if err := s.q.QueryRowContext(ctx, `SELECT MAX(recorded_at) FROM matches`).Scan(&last); err != nil {
		return status, fmt.Errorf("failed to get last match time: %w", err)
	}
	if t := fromNullUnix(last); t != nil {
		status.LastMatchTime = *t
	}

	for _, table := range allTables {
		countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(table, s.dialect))
		var count int64
		if err := s.q.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", table, err)
		}
		status.TableRows[table] = count
	}

	return status, nil
}

// PrintLeagueStatus prints store status information.
func PrintLeagueStatus(status schema.StoreStatus) {
	fmt.Printf("League Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Schema Version: %d", status.SchemaVersion)
	if status.Dirty {
		fmt.Print(" (dirty)")
	}
	fmt.Println()
	fmt.Printf("Guilds: %d\n", status.Guilds)
	fmt.Printf("Total Wrestlers: %d\n", status.TotalWrestlers)
	fmt.Printf("Total Matches: %d\n", status.TotalMatches)
	if status.TotalMatches > 0 {
		fmt.Printf("Last Match: %s\n", status.LastMatchTime.Format("2006-01-02 15:04:05"))
	}
	fmt.Println("Table Sizes:")
	for _, table := range allTables {
		fmt.Printf("  %s: %d rows\n", table, status.TableRows[table])
	}
}

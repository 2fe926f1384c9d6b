// Package leaguedb persists league state in SQLite, MySQL or PostgreSQL.
package leaguedb

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// StoreManager implements the StoreManager interface.
type StoreManager struct {
	sync.RWMutex
	league contract.LeagueStore
}

var _ contract.StoreManager = &StoreManager{} // Compile-time check

// GetLeagueStore returns the league store.
func (sm *StoreManager) GetLeagueStore() contract.LeagueStore {
	sm.RLock()
	defer sm.RUnlock()
	return sm.league
}

// Global Manager instance for main logic.
var (
	Manager   = &StoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStores opens the global league store. Later calls are no-ops.
func InitStores(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		store, err := NewLeagueStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize league store: %w", err)
			return
		}
		Manager.Lock()
		Manager.league = store
		Manager.Unlock()
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.league != nil {
			_ = Manager.league.Close()
		}
	})
}

// ClearLeague wipes all league data for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the league tables and the migration table.
// For NoneBackend, it does nothing.
func ClearLeague(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend, schema.PostgreSQLBackend:
		db, err := openDB(backend, connStr)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		if err := db.Ping(); err != nil {
			return fmt.Errorf("failed to ping %s database: %w", backend, err)
		}
		tables := append([]string{migrationsTable}, allTables...)
		for _, table := range tables {
			if err := dropTable(db, backend, table); err != nil {
				return err
			}
		}
		return nil

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported backend for clearing: %s", backend)
	}
}

// dropTable drops the table if it exists.
func dropTable(db *sql.DB, backend schema.DatabaseBackend, table string) error {
	if err := validateTableName(table); err != nil {
		return err
	}
	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteTableName(table, backend))
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table, err)
	}
	return nil
}

package leaguedb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// queryer is the subset of *sql.DB and *sql.Tx the store runs statements through.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// LeagueStoreImpl implements the LeagueStore interface.
type LeagueStoreImpl struct {
	db      *sql.DB
	q       queryer
	tx      *sql.Tx
	backend schema.DatabaseBackend
	dialect schema.DatabaseBackend
}

var _ contract.LeagueStore = &LeagueStoreImpl{} // Compile-time check

// NewLeagueStore opens the league store for backend and migrates it to the latest schema.
// NoneBackend keeps the league in an in-memory SQLite database that is lost on Close.
func NewLeagueStore(backend schema.DatabaseBackend, connStr string) (contract.LeagueStore, error) {
	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure user/password are valid."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Verify the database file is accessible."
		}
		return nil, fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}

	if err := migrateUp(db, backend, connStr); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create league tables: %w", err)
	}

	dialect := backend
	if backend == schema.NoneBackend {
		dialect = schema.SQLiteBackend
	}
	return &LeagueStoreImpl{db: db, q: db, backend: backend, dialect: dialect}, nil
}

func (s *LeagueStoreImpl) rebind(query string) string {
	return rebind(s.dialect, query)
}

// exec runs a statement and maps its error.
func (s *LeagueStoreImpl) exec(ctx context.Context, op, table, query string, args ...any) (sql.Result, error) {
	res, err := s.q.ExecContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, wrapErr(op, table, err)
	}
	return res, nil
}

// execOne runs a statement that must touch exactly one row.
func (s *LeagueStoreImpl) execOne(ctx context.Context, op, table, query string, args ...any) error {
	res, err := s.exec(ctx, op, table, query, args...)
	if err != nil {
		return err
	}
	return wrapErr(op, table, expectOne(res))
}

// insert runs an INSERT and returns the generated id.
// PostgreSQL has no LastInsertId, so the id comes back through RETURNING.
func (s *LeagueStoreImpl) insert(ctx context.Context, table, query string, args ...any) (int64, error) {
	if s.dialect == schema.PostgreSQLBackend {
		var id int64
		if err := s.q.QueryRowContext(ctx, s.rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
			return 0, wrapErr("insert", table, err)
		}
		return id, nil
	}
	res, err := s.exec(ctx, "insert", table, query, args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapErr("insert", table, err)
	}
	return id, nil
}

// count runs a COUNT query.
func (s *LeagueStoreImpl) count(ctx context.Context, table, query string, args ...any) (int, error) {
	var n int
	if err := s.q.QueryRowContext(ctx, s.rebind(query), args...).Scan(&n); err != nil {
		return 0, wrapErr("count", table, err)
	}
	return n, nil
}

// withTx runs fn in a transaction, joining the current one if the store is already bound.
func (s *LeagueStoreImpl) withTx(ctx context.Context, fn func(ts *LeagueStoreImpl) error) error {
	if s.tx != nil {
		return fn(s)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return contract.NewDatabaseError("begin", "transaction", err)
	}
	ts := &LeagueStoreImpl{db: s.db, q: tx, tx: tx, backend: s.backend, dialect: s.dialect}
	if err := fn(ts); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return contract.NewDatabaseError("commit", "transaction", err)
	}
	return nil
}

// InTx implements the LeagueStore interface.
func (s *LeagueStoreImpl) InTx(ctx context.Context, fn func(tx contract.LeagueStore) error) error {
	return s.withTx(ctx, func(ts *LeagueStoreImpl) error { return fn(ts) })
}

// Close implements the LeagueStore interface.
// Closing a transaction-bound store is a no-op.
func (s *LeagueStoreImpl) Close() error {
	if s.tx != nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

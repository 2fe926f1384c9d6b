package cmd

import (
	"fmt"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/internal/leaguedb"
	"github.com/huangsam/ringside/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// dbSetup loads minimal configuration needed for store operations.
// This is used by commands that need the store without full config validation.
func dbSetup() error {
	if err := dbMigrateSetup(); err != nil {
		return err
	}
	if err := leaguedb.InitStores(cfg.DBBackend, cfg.DBConnect); err != nil {
		return fmt.Errorf("failed to initialize league store: %w", err)
	}
	cfg.Guild = viper.GetString("guild")
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// dbSetupWrapper wraps dbSetup to provide PreRunE for db commands.
func dbSetupWrapper(_ *cobra.Command, _ []string) error {
	return dbSetup()
}

// dbMigrateSetup reads the backend settings without opening the store,
// so migrations and clears can run against a fresh or broken database.
func dbMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}
	backend := schema.DatabaseBackend(viper.GetString("db-backend"))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	connStr := viper.GetString("db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}
	cfg.DBBackend = backend
	cfg.DBConnect = connStr
	return nil
}

// dbMigrateSetupWrapper wraps dbMigrateSetup to provide PreRunE for migrate and clear.
func dbMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return dbMigrateSetup()
}

// dbCmd focused on league storage management.
//
// Note: db subcommands use minimal initialization instead of the full sharedSetup.
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the league database",
	Long: `Manage the database that holds every guild's league.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  status  - Show connection info, schema version and row counts
  migrate - Run schema migrations
  clear   - Remove all league data
  export  - Export one guild to Parquet

Examples:
  # Check database status
  ringside db status

  # Use PostgreSQL (set connection string via env variable)
  RINGSIDE_DB_BACKEND=postgresql RINGSIDE_DB_CONNECT="postgres://..." ringside db status`,
}

// dbStatusCmd shows store status.
var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display database statistics and connection details",
	Long: `Show the backend, connection state, schema version and the row count of every table.

Examples:
  ringside db status`,
	PreRunE: dbSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := leaguedb.Manager.GetLeagueStore().GetStatus(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to get database status", err)
		}
		leaguedb.PrintLeagueStatus(status)
	},
}

// dbMigrateCmd runs database migrations.
var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the league store.

Opening the store migrates to the latest version automatically. Use this command
to roll back, or to repair a database left dirty by a failed migration.

Examples:
  # Migrate to the latest version
  ringside db migrate

  # Roll back everything
  ringside db migrate --target-version 0`,
	PreRunE: dbMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		target := viper.GetInt("target-version")
		if err := leaguedb.MigrateLeague(cfg.DBBackend, cfg.DBConnect, target); err != nil {
			contract.LogFatal("Failed to migrate league database", err)
		}
	},
}

// dbClearCmd wipes the store.
var dbClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all league data",
	Long: `Delete every guild's league data from the configured backend.

WARNING: This action cannot be undone. Consider exporting data first.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the league tables

Examples:
  ringside db export --guild 123456789 --output-file backup
  ringside db clear`,
	PreRunE: dbMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := leaguedb.ClearLeague(cfg.DBBackend, contract.GetDBFilePath(), cfg.DBConnect); err != nil {
			contract.LogFatal("Failed to clear league data", err)
		}
		fmt.Println("League data cleared successfully.")
	},
}

// dbExportCmd exports one guild to Parquet files.
var dbExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a guild to Parquet for BI tools and analytics",
	Long: `Export a guild's roster, match history and title reigns to Parquet.

Writes three files next to --output-file:
  <output-file>.wrestlers.parquet
  <output-file>.matches.parquet
  <output-file>.title_reigns.parquet

Requires: --guild and --output-file

Examples:
  ringside db export --guild 123456789 --output-file league
  duckdb -c "SELECT * FROM read_parquet('league.matches.parquet') LIMIT 10"`,
	PreRunE: dbSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := leaguedb.ExecuteLeagueExport(rootCtx, leaguedb.Manager.GetLeagueStore(), cfg.Guild, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export league data", err)
		}
	},
}

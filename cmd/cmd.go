// Package cmd defines the command-line interface for ringside.
package cmd

import (
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(wrestlerCmd)
	rootCmd.AddCommand(titlesCmd)
	rootCmd.AddCommand(titleHistoryCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(botCmd)

	// Add the db subcommands to the parent db command
	dbCmd.AddCommand(dbStatusCmd)
	dbCmd.AddCommand(dbMigrateCmd)
	dbCmd.AddCommand(dbClearCmd)
	dbCmd.AddCommand(dbExportCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("db-backend", string(schema.SQLiteBackend), "League backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string (e.g., user:pass@tcp(host:port)/dbname); sqlite defaults to the XDG data dir")
	rootCmd.PersistentFlags().StringP("guild", "g", "", "Discord guild id to read or modify")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or yaml")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a TOML catalog replacing the built-in moves, personas and attributes")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Questionnaire flags are read directly and never come from the config file.
	for _, q := range schema.AllQuestions {
		classifyCmd.Flags().String(questionFlag(q), "", "Answer to the "+questionFlag(q)+" question")
	}
	classifyCmd.Flags().Uint64("seed", 0, "Seed for trait rolls (0 = random)")

	rosterCmd.Flags().Bool("retired", false, "Include retired wrestlers")
	wrestlerCmd.Flags().Bool("matches", false, "Show recent match history instead of the sheet")
	queueCmd.Flags().Bool("process", false, "Mark the listed upgrades as applied")

	// Bind all flags of botCmd to Viper
	botCmd.Flags().String("metrics-addr", "", "Address for the Prometheus /metrics endpoint (empty = disabled)")
	botCmd.Flags().String("sweep-schedule", contract.DefaultSweepSchedule, "Cron expression for the inactivity sweep")
	botCmd.Flags().String("queue-schedule", "", "Cron expression for flushing upgrade queues (empty = disabled)")
	botCmd.Flags().Bool("debug", false, "Log every handled command")
	if err := viper.BindPFlags(botCmd.Flags()); err != nil {
		contract.LogFatal("Error binding bot flags", err)
	}

	// Bind all flags of dbMigrateCmd to Viper
	dbMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(dbMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding db migrate flags", err)
	}
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/huangsam/ringside/core"
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/internal/leaguedb"
	"github.com/huangsam/ringside/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// storeManager is the global persistence manager instance.
var storeManager contract.StoreManager

// errGuildRequired is returned by guild-scoped commands run without a guild.
var errGuildRequired = errors.New("a guild is required: pass --guild or set RINGSIDE_GUILD")

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "ringside",
	Short:              "Run a Discord wrestling league from the terminal, an agent or a bot.",
	Long:               `Ringside keeps a wrestling league: rosters, matches, titles, an economy and the bot that runs it all.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".ringside")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("RINGSIDE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("db-backend", schema.SQLiteBackend)
	viper.SetDefault("db-connect", "")
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("limit", contract.DefaultResultLimit)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("color", "yes")
	viper.SetDefault("sweep-schedule", contract.DefaultSweepSchedule)
	viper.SetDefault("queue-schedule", "")
	viper.SetDefault("metrics-addr", "")
}

// configSetup merges defaults, file, env and flags into cfg without touching storage.
func configSetup() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	return contract.ProcessAndValidate(cfg, input)
}

// sharedSetup validates the config and opens the league store.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	if err := configSetup(); err != nil {
		return err
	}
	if err := leaguedb.InitStores(cfg.DBBackend, cfg.DBConnect); err != nil {
		return fmt.Errorf("failed to initialize persistence: %w", err)
	}
	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// guildSetupWrapper is sharedSetup for commands that read one guild.
func guildSetupWrapper(cmd *cobra.Command, args []string) error {
	if err := sharedSetup(rootCtx, cmd, args); err != nil {
		return err
	}
	if cfg.Guild == "" {
		return errGuildRequired
	}
	return nil
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".ringside")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// loadCatalog returns the embedded catalog, or the override named by --catalog.
func loadCatalog() (*schema.Catalog, error) {
	if cfg.CatalogPath == "" {
		return schema.DefaultCatalog(), nil
	}
	c, err := schema.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", cfg.CatalogPath, err)
	}
	return c, nil
}

// newLeague builds the league service over the configured store.
func newLeague(opts ...core.Option) (*core.League, error) {
	if storeManager == nil || storeManager.GetLeagueStore() == nil {
		return nil, errors.New("league store is not initialized")
	}
	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	opts = append([]core.Option{core.WithCatalog(catalog)}, opts...)
	return core.NewLeague(storeManager.GetLeagueStore(), opts...), nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetStoreManager sets the global store manager.
func SetStoreManager(mgr contract.StoreManager) {
	storeManager = mgr
}

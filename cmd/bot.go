package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/ringside/core"
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/internal/discord"
	"github.com/huangsam/ringside/internal/metrics"
	"github.com/huangsam/ringside/internal/scheduler"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// newLogger returns the text logger used by long-running commands.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// botCmd runs the Discord bot with its scheduler and metrics endpoint.
var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Discord bot",
	Long: `Connect to Discord and run the league bot until interrupted.

Runs together:
- The gateway connection with every slash command and the chat currency listener
- The inactivity sweep (--sweep-schedule) and optional queue flush (--queue-schedule)
- A Prometheus /metrics endpoint when --metrics-addr is set

Secrets are read from the environment only:
  DISCORD_TOKEN      - bot token (required)
  DISCORD_APP_ID     - application id (required)
  DISCORD_DEV_GUILD  - register commands on one guild only (optional)

Examples:
  DISCORD_TOKEN=... DISCORD_APP_ID=... ringside bot
  ringside bot --metrics-addr :9090 --sweep-schedule "@daily"`,
	PreRunE: sharedSetupWrapper,
	RunE: func(cmd *cobra.Command, _ []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		logger := newLogger(debug)

		secrets, err := contract.ParseBotEnv()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		m := metrics.New()
		league, err := newLeague(core.WithObserver(m))
		if err != nil {
			return err
		}
		bot, err := discord.New(discord.Config{
			Token:    secrets.Token,
			AppID:    secrets.AppID,
			DevGuild: secrets.DevGuild,
		}, league, logger, discord.WithRecorder(m))
		if err != nil {
			return err
		}
		sched, err := scheduler.New(scheduler.Config{
			SweepSchedule: cfg.SweepSchedule,
			QueueSchedule: cfg.QueueSchedule,
		}, league, logger, scheduler.WithRecorder(m), scheduler.WithNotifier(bot))
		if err != nil {
			return err
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return bot.Run(gctx) })
		g.Go(func() error { return sched.Run(gctx) })
		if cfg.MetricsAddr != "" {
			g.Go(func() error {
				logger.Info("serving metrics", "addr", cfg.MetricsAddr)
				return m.Serve(gctx, cfg.MetricsAddr)
			})
		}
		logger.Info("ringside bot starting", "version", version, "jobs", sched.Jobs())
		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		logger.Info("ringside bot stopped")
		return nil
	},
}

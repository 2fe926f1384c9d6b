package cmd

import (
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/internal/outwriter"
	"github.com/huangsam/ringside/schema"
	"github.com/spf13/cobra"
)

// queueCmd shows, and optionally clears, the upgrade queue.
var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show the attribute upgrades waiting for a booker",
	Long: `List the shop purchases that still have to be applied in the game, oldest first.

With --process the listed upgrades are marked as applied.

Examples:
  ringside queue --guild 123456789
  ringside queue --guild 123456789 --process`,
	PreRunE: guildSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		league, err := newLeague()
		if err != nil {
			contract.LogFatal("Cannot start league", err)
		}
		var entries []schema.UpgradeEntry
		if process, _ := cmd.Flags().GetBool("process"); process {
			entries, err = league.ProcessUpgradeQueue(rootCtx, cfg.Guild)
		} else {
			entries, err = league.PendingUpgrades(rootCtx, cfg.Guild)
		}
		if err != nil {
			contract.LogFatal("Cannot read upgrade queue", err)
		}
		if err := outwriter.WriteUpgrades(entries, cfg); err != nil {
			contract.LogFatal("Cannot write upgrade queue", err)
		}
	},
}

// sweepCmd runs the inactivity sweep once.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Flag idle wrestlers and warn those close to the limit",
	Long: `Run the inactivity sweep the bot runs on its schedule.

Wrestlers idle for the guild's inactivity days are flagged inactive, and wrestlers
on the warning day are listed. Champions are marked so their titles can be reviewed.

Without --guild every guild that finished setup is swept.

Examples:
  ringside sweep
  ringside sweep --guild 123456789 --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		league, err := newLeague()
		if err != nil {
			contract.LogFatal("Cannot start league", err)
		}
		var reports []schema.InactivityReport
		if cfg.Guild != "" {
			report, err := league.SweepInactivity(rootCtx, cfg.Guild)
			if err != nil {
				contract.LogFatal("Sweep failed", err)
			}
			reports = append(reports, report)
		} else {
			reports, err = league.SweepAll(rootCtx)
			if err != nil {
				// Partial results are still worth printing.
				contract.LogWarn("Sweep failed for some guilds", err)
			}
		}
		if err := outwriter.WriteSweep(reports, cfg); err != nil {
			contract.LogFatal("Cannot write sweep report", err)
		}
	},
}

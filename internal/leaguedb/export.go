package leaguedb

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/internal/parquet"
)

// ExecuteLeagueExport writes a guild's roster, matches and title reigns to Parquet files
// named after outputFile.
func ExecuteLeagueExport(ctx context.Context, store contract.LeagueStore, guildID, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if guildID == "" {
		return errors.New("--guild is required for export command")
	}

	wrestlers, err := store.ListWrestlers(ctx, guildID, true)
	if err != nil {
		return fmt.Errorf("failed to retrieve wrestlers: %w", err)
	}
	matches, err := store.ListMatches(ctx, guildID, 0)
	if err != nil {
		return fmt.Errorf("failed to retrieve matches: %w", err)
	}
	reigns, err := store.ListGuildReigns(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to retrieve title reigns: %w", err)
	}
	if len(wrestlers) == 0 && len(matches) == 0 {
		return fmt.Errorf("no league data found for guild %s", guildID)
	}

	wrestlersFile := outputFile + ".wrestlers.parquet"
	if err := parquet.WriteWrestlersParquet(parquet.ConvertWrestlers(wrestlers), wrestlersFile); err != nil {
		return fmt.Errorf("failed to write wrestlers: %w", err)
	}
	fmt.Printf("Exported %d wrestlers to: %s\n", len(wrestlers), wrestlersFile)

	matchesFile := outputFile + ".matches.parquet"
	if err := parquet.WriteMatchesParquet(parquet.ConvertMatches(matches), matchesFile); err != nil {
		return fmt.Errorf("failed to write matches: %w", err)
	}
	fmt.Printf("Exported %d matches to: %s\n", len(matches), matchesFile)

	reignsFile := outputFile + ".title_reigns.parquet"
	if err := parquet.WriteTitleReignsParquet(parquet.ConvertTitleReigns(reigns), reignsFile); err != nil {
		return fmt.Errorf("failed to write title reigns: %w", err)
	}
	fmt.Printf("Exported %d title reigns to: %s\n", len(reigns), reignsFile)

	return nil
}

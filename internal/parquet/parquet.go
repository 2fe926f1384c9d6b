// Package parquet provides data structures and functions for exporting league
// history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/ringside/schema"
	"github.com/parquet-go/parquet-go"
)

// Match is one recorded bout.
// This struct maps to the matches database table.
type Match struct {
	MatchID   int64  `parquet:"match_id,snappy"`
	GuildID   string `parquet:"guild_id,snappy,dict"`
	MatchType string `parquet:"match_type,snappy,dict"`

	// WinnerIDs and LoserIDs are wrestler ids
	WinnerIDs []int64 `parquet:"winner_ids"`
	LoserIDs  []int64 `parquet:"loser_ids"`

	Finish     string    `parquet:"finish,snappy"`
	Rating     float64   `parquet:"rating,snappy"`
	MainEvent  bool      `parquet:"main_event"`
	TitleMatch bool      `parquet:"title_match"`
	RecordedAt time.Time `parquet:"recorded_at,snappy"`

	// EventID is set for matches booked on an event card (nullable)
	EventID *int64 `parquet:"event_id,optional,snappy"`

	// ChampionshipID is set for title matches (nullable)
	ChampionshipID *int64 `parquet:"championship_id,optional,snappy"`
}

// TitleReign is one championship run.
// This struct maps to the title_reigns database table.
type TitleReign struct {
	ReignID        int64      `parquet:"reign_id,snappy"`
	ChampionshipID int64      `parquet:"championship_id,snappy"`
	WrestlerIDs    []int64    `parquet:"wrestler_ids"`
	ReignNumber    int32      `parquet:"reign_number,snappy"`
	WonDate        time.Time  `parquet:"won_date,snappy"`
	LostDate       *time.Time `parquet:"lost_date,optional,snappy"`
	DaysHeld       int32      `parquet:"days_held,snappy"`
	Defenses       int32      `parquet:"defenses,snappy"`
	IsCurrent      bool       `parquet:"is_current"`
}

// Wrestler is a roster snapshot row.
// This struct maps to the wrestlers database table, without attributes and traits.
type Wrestler struct {
	WrestlerID  int64     `parquet:"wrestler_id,snappy"`
	GuildID     string    `parquet:"guild_id,snappy,dict"`
	UserID      string    `parquet:"user_id,snappy"`
	Name        string    `parquet:"name,snappy"`
	Gender      string    `parquet:"gender,snappy,dict"`
	Archetype   string    `parquet:"archetype,snappy,dict"`
	Alignment   string    `parquet:"alignment,snappy,dict"`
	WeightClass string    `parquet:"weight_class,snappy,dict"`
	Persona     string    `parquet:"persona,snappy,dict"`
	Level       int32     `parquet:"level,snappy"`
	XP          int32     `parquet:"xp,snappy"`
	Wins        int32     `parquet:"wins,snappy"`
	Losses      int32     `parquet:"losses,snappy"`
	Currency    int32     `parquet:"currency,snappy"`
	Retired     bool      `parquet:"retired"`
	Inactive    bool      `parquet:"inactive"`
	CreatedAt   time.Time `parquet:"created_at,snappy"`
}

// writeParquet writes rows to a new Parquet file at outputPath.
// The schema is derived from the struct tags of T.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}

// WriteMatchesParquet writes a slice of Match structs to a Parquet file.
func WriteMatchesParquet(data []Match, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteTitleReignsParquet writes a slice of TitleReign structs to a Parquet file.
func WriteTitleReignsParquet(data []TitleReign, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteWrestlersParquet writes a slice of Wrestler structs to a Parquet file.
func WriteWrestlersParquet(data []Wrestler, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertMatches converts schema.Match to Match for Parquet export.
func ConvertMatches(records []schema.Match) []Match {
	result := make([]Match, len(records))
	for i, m := range records {
		result[i] = Match{
			MatchID:        m.ID,
			GuildID:        m.GuildID,
			MatchType:      m.MatchType,
			WinnerIDs:      m.WinnerIDs,
			LoserIDs:       m.LoserIDs,
			Finish:         m.Finish,
			Rating:         m.Rating,
			MainEvent:      m.MainEvent,
			TitleMatch:     m.TitleMatch,
			RecordedAt:     m.RecordedAt,
			EventID:        m.EventID,
			ChampionshipID: m.ChampionshipID,
		}
	}
	return result
}

// ConvertTitleReigns converts schema.TitleReign to TitleReign for Parquet export.
func ConvertTitleReigns(records []schema.TitleReign) []TitleReign {
	result := make([]TitleReign, len(records))
	for i, r := range records {
		result[i] = TitleReign{
			ReignID:        r.ID,
			ChampionshipID: r.ChampionshipID,
			WrestlerIDs:    r.WrestlerIDs,
			ReignNumber:    int32(r.ReignNumber),
			WonDate:        r.WonDate,
			LostDate:       r.LostDate,
			DaysHeld:       int32(r.DaysHeld),
			Defenses:       int32(r.Defenses),
			IsCurrent:      r.IsCurrent,
		}
	}
	return result
}

// ConvertWrestlers converts schema.Wrestler to Wrestler for Parquet export.
func ConvertWrestlers(records []schema.Wrestler) []Wrestler {
	result := make([]Wrestler, len(records))
	for i, w := range records {
		result[i] = Wrestler{
			WrestlerID:  w.ID,
			GuildID:     w.GuildID,
			UserID:      w.UserID,
			Name:        w.Name,
			Gender:      string(w.Gender),
			Archetype:   string(w.Archetype),
			Alignment:   string(w.Alignment),
			WeightClass: string(w.WeightClass),
			Persona:     w.Persona,
			Level:       int32(w.Level),
			XP:          int32(w.XP),
			Wins:        int32(w.Wins),
			Losses:      int32(w.Losses),
			Currency:    int32(w.Currency),
			Retired:     w.Retired,
			Inactive:    w.Inactive,
			CreatedAt:   w.CreatedAt,
		}
	}
	return result
}

package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/ringside/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll[T any](t *testing.T, path string) []T {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[T](file)
	defer reader.Close()

	rows := make([]T, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	return rows[:n]
}

func TestStructTags(t *testing.T) {
	tests := []struct {
		name    string
		model   any
		columns []string
	}{
		{"match", new(Match), []string{"match_id", "guild_id", "winner_ids", "loser_ids", "rating", "recorded_at", "event_id", "championship_id"}},
		{"title reign", new(TitleReign), []string{"reign_id", "championship_id", "wrestler_ids", "won_date", "lost_date", "defenses"}},
		{"wrestler", new(Wrestler), []string{"wrestler_id", "name", "archetype", "alignment", "level", "retired"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := parquet.SchemaOf(tt.model)
			require.NotNil(t, s)
			for _, col := range tt.columns {
				_, ok := s.Lookup(col)
				assert.True(t, ok, "Column %s should exist in schema", col)
			}
		})
	}
}

func TestWriteMatchesParquet(t *testing.T) {
	eventID := int64(4)
	recorded := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	data := ConvertMatches([]schema.Match{
		{ID: 1, GuildID: "g1", MatchType: "Singles", WinnerIDs: []int64{1}, LoserIDs: []int64{2}, Finish: "Pinfall", Rating: 4.5, RecordedAt: recorded},
		{ID: 2, GuildID: "g1", MatchType: "Tag Team", WinnerIDs: []int64{3, 4}, LoserIDs: []int64{5, 6}, Finish: "Submission", Rating: 3.25, MainEvent: true, EventID: &eventID, RecordedAt: recorded.Add(time.Hour)},
	})

	outputPath := filepath.Join(t.TempDir(), "matches.parquet")
	require.NoError(t, WriteMatchesParquet(data, outputPath))

	got := readAll[Match](t, outputPath)
	require.Len(t, got, 2)
	assert.Equal(t, []int64{3, 4}, got[1].WinnerIDs)
	assert.Equal(t, []int64{5, 6}, got[1].LoserIDs)
	assert.InDelta(t, 3.25, got[1].Rating, 0.001)
	assert.True(t, got[1].MainEvent)
	assert.Nil(t, got[0].EventID)
	require.NotNil(t, got[1].EventID)
	assert.Equal(t, eventID, *got[1].EventID)
	assert.WithinDuration(t, recorded, got[0].RecordedAt, time.Second)
}

func TestWriteTitleReignsParquet(t *testing.T) {
	won := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	lost := won.AddDate(0, 0, 45)
	data := ConvertTitleReigns([]schema.TitleReign{
		{ID: 1, ChampionshipID: 7, WrestlerIDs: []int64{1}, ReignNumber: 1, WonDate: won, LostDate: &lost, DaysHeld: 45, Defenses: 3},
		{ID: 2, ChampionshipID: 7, WrestlerIDs: []int64{2}, ReignNumber: 2, WonDate: lost, IsCurrent: true},
	})

	outputPath := filepath.Join(t.TempDir(), "reigns.parquet")
	require.NoError(t, WriteTitleReignsParquet(data, outputPath))

	got := readAll[TitleReign](t, outputPath)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].LostDate)
	assert.WithinDuration(t, lost, *got[0].LostDate, time.Second)
	assert.Equal(t, int32(3), got[0].Defenses)
	assert.Nil(t, got[1].LostDate)
	assert.True(t, got[1].IsCurrent)
}

func TestWriteWrestlersParquet_EmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty_wrestlers.parquet")
	require.NoError(t, WriteWrestlersParquet([]Wrestler{}, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Even empty Parquet files have metadata")
	assert.Empty(t, readAll[Wrestler](t, outputPath))
}

func TestConvertWrestlers(t *testing.T) {
	got := ConvertWrestlers([]schema.Wrestler{{
		ID: 9, GuildID: "g", Name: "Rex", Archetype: schema.Giant, Alignment: schema.Heel,
		Level: 4, XP: 1200, Wins: 7, Losses: 2, Currency: 350,
	}})
	require.Len(t, got, 1)
	assert.Equal(t, "Giant", got[0].Archetype)
	assert.Equal(t, "Heel", got[0].Alignment)
	assert.Equal(t, int32(1200), got[0].XP)
}

func TestWriteParquet_BadPath(t *testing.T) {
	err := WriteMatchesParquet(nil, filepath.Join(t.TempDir(), "missing", "out.parquet"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

package algo

import (
	"testing"

	"github.com/huangsam/ringside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryMoves(t *testing.T, name string) []string {
	t.Helper()
	mc, ok := schema.DefaultCatalog().Category(name)
	require.True(t, ok, name)
	return mc.Moves
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name      string
		moves     []string
		align     schema.Alignment
		archetype schema.Archetype
		want      []string
	}{
		{
			name:      "face avoids heel moves",
			moves:     []string{"Choke Hold", "Frog Splash", "Suplex"},
			align:     schema.Face,
			archetype: schema.Technical,
			want:      []string{"Frog Splash", "Suplex", "Choke Hold"},
		},
		{
			name:      "heel prefers heel moves then archetype",
			moves:     []string{"Frog Splash", "Armbar", "Sleeper Hold"},
			align:     schema.Heel,
			archetype: schema.Technical,
			want:      []string{"Sleeper Hold", "Armbar", "Frog Splash"},
		},
		{
			name:      "tweener keeps input order on ties",
			moves:     []string{"Superkick", "Snap Kick", "Palm Strike"},
			align:     schema.Tweener,
			archetype: schema.Striker,
			want:      []string{"Superkick", "Snap Kick", "Palm Strike"},
		},
		{
			name:      "duplicates are dropped",
			moves:     []string{"Moonsault", "Moonsault", "Armbar"},
			align:     schema.Face,
			archetype: schema.HighFlyer,
			want:      []string{"Moonsault", "Armbar"},
		},
		{
			name:      "empty input",
			moves:     nil,
			align:     schema.Face,
			archetype: schema.Giant,
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recommend(tt.moves, tt.align, tt.archetype))
		})
	}
}

func TestRecommendCatalog(t *testing.T) {
	t.Run("face technician after heel filter", func(t *testing.T) {
		moves := FilterOut(categoryMoves(t, "Submissions"), schema.HeelMoves)
		got := Recommend(moves, schema.Face, schema.Technical)
		assert.Equal(t, []string{"Armbar", "Kimura Lock", "Ankle Lock", "Boston Crab", "Single-Leg Crab", "Sharpshooter-Style Leg Lock"}, got)
		for _, m := range got {
			assert.False(t, IsHeelMove(m), m)
		}
	})

	t.Run("heel technician", func(t *testing.T) {
		got := Recommend(categoryMoves(t, "Submissions"), schema.Heel, schema.Technical)
		assert.Equal(t, []string{"Sleeper Hold", "Rear Naked Choke", "Triangle Choke", "Guillotine Choke", "Heel Hook", "Dragon Sleeper"}, got)
	})

	t.Run("face powerhouse", func(t *testing.T) {
		got := Recommend(categoryMoves(t, "Grapples & Power Moves"), schema.Face, schema.Powerhouse)
		assert.Equal(t, []string{"Gorilla Press Slam", "Military Press Drop"}, got[:2])
	})

	t.Run("bounded and drawn from input", func(t *testing.T) {
		for _, mc := range schema.DefaultCatalog().Categories {
			for _, a := range schema.AllAlignments {
				for _, arch := range schema.AllArchetypes {
					got := Recommend(mc.Moves, a, arch)
					assert.Len(t, got, MaxRecommendations)
					seen := map[string]bool{}
					for _, m := range got {
						assert.Contains(t, mc.Moves, m)
						assert.False(t, seen[m], "duplicate %s", m)
						seen[m] = true
					}
					assert.Equal(t, got, Recommend(mc.Moves, a, arch))
				}
			}
		}
	})
}

func TestFilterOut(t *testing.T) {
	moves := categoryMoves(t, "Submissions")
	filtered := FilterOut(moves, schema.HeelMoves)
	assert.Len(t, filtered, len(moves)-7)
	assert.NotContains(t, filtered, "Leg Trap Choke")
	assert.Contains(t, filtered, "Armbar")

	assert.True(t, IsHeelMove("Clothesline from Behind"))
	assert.True(t, MatchesClass("SHOOTING STAR PRESS", schema.AerialMoves))
	assert.False(t, MatchesClass("Superkick", schema.PowerMoves))
	assert.Empty(t, FilterOut(nil, schema.HeelMoves))
}

func TestRankWrestlers(t *testing.T) {
	roster := []schema.Wrestler{
		{ID: 1, Name: "Ace", Wins: 5, Losses: 5, Currency: 300, Level: 2, XP: 400},
		{ID: 2, Name: "Blaze", Wins: 2, Losses: 0, Currency: 900, Level: 3, XP: 900},
		{ID: 3, Name: "Cobra", Wins: 5, Losses: 1, Currency: 300, Level: 2, XP: 600},
		{ID: 4, Name: "Dusk", Wins: 0, Losses: 4, Currency: 0, Level: 1},
	}

	t.Run("wins keeps roster order on ties", func(t *testing.T) {
		got := RankWrestlers(roster, schema.StatWins, LeaderboardSize)
		require.Len(t, got, 4)
		assert.Equal(t, []int64{1, 3, 2, 4}, ids(got))
		assert.Equal(t, 1, got[0].Rank)
		assert.Equal(t, "5 wins (5-5)", got[0].Display)
	})

	t.Run("winrate needs three matches", func(t *testing.T) {
		got := RankWrestlers(roster, schema.StatWinRate, LeaderboardSize)
		assert.Equal(t, []int64{3, 1, 4}, ids(got))
		assert.Equal(t, "83.3% (5-1)", got[0].Display)
	})

	t.Run("currency", func(t *testing.T) {
		got := RankWrestlers(roster, schema.StatCurrency, 2)
		assert.Equal(t, []int64{2, 1}, ids(got))
	})

	t.Run("level breaks ties by xp", func(t *testing.T) {
		got := RankWrestlers(roster, schema.StatLevel, LeaderboardSize)
		assert.Equal(t, []int64{2, 3, 1, 4}, ids(got))
	})

	t.Run("unknown stat", func(t *testing.T) {
		assert.Nil(t, RankWrestlers(roster, "charisma", LeaderboardSize))
	})
}

func ids(entries []schema.LeaderboardEntry) []int64 {
	out := make([]int64, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.WrestlerID)
	}
	return out
}

func TestCurrentStreak(t *testing.T) {
	// Newest first.
	matches := []schema.Match{
		{WinnerIDs: []int64{1}, LoserIDs: []int64{2}},
		{WinnerIDs: []int64{3}, LoserIDs: []int64{4}},
		{WinnerIDs: []int64{1}, LoserIDs: []int64{3}},
		{WinnerIDs: []int64{2}, LoserIDs: []int64{1}},
		{WinnerIDs: []int64{1}, LoserIDs: []int64{2}},
	}

	tests := []struct {
		id      int64
		winning bool
		length  int
	}{
		{1, true, 2},
		{2, false, 1},
		{3, true, 1},
		{4, false, 1},
		{5, false, 0},
	}
	for _, tt := range tests {
		winning, length := CurrentStreak(matches, tt.id)
		assert.Equal(t, tt.winning, winning, "wrestler %d", tt.id)
		assert.Equal(t, tt.length, length, "wrestler %d", tt.id)
	}
}

func TestRankStreaks(t *testing.T) {
	streaks := []schema.StreakEntry{
		{WrestlerID: 1, Winning: true, Length: 2},
		{WrestlerID: 2, Winning: false, Length: 4},
		{WrestlerID: 3, Winning: true, Length: 5},
		{WrestlerID: 4, Length: 0},
	}

	overall := RankStreaks(streaks, schema.StreakOverall, LeaderboardSize)
	require.Len(t, overall, 3)
	assert.Equal(t, int64(3), overall[0].WrestlerID)
	assert.Equal(t, int64(2), overall[1].WrestlerID)
	assert.Equal(t, 3, overall[2].Rank)

	hot := RankStreaks(streaks, schema.StreakHot, LeaderboardSize)
	require.Len(t, hot, 2)
	assert.Equal(t, "W5", hot[0].Label())

	cold := RankStreaks(streaks, schema.StreakCold, LeaderboardSize)
	require.Len(t, cold, 1)
	assert.Equal(t, "L4", cold[0].Label())
}

func BenchmarkRecommend(b *testing.B) {
	mc, _ := schema.DefaultCatalog().Category("Submissions")
	for b.Loop() {
		Recommend(mc.Moves, schema.Face, schema.Technical)
	}
}

func BenchmarkClassify(b *testing.B) {
	answers := schema.QuestionnaireAnswers{
		schema.PhysicalBuild:    "towering",
		schema.InRingApproach:   "overpower",
		schema.OpponentBehavior: "respect",
		schema.MatchTempo:       "methodical",
	}
	for b.Loop() {
		Classify(answers)
	}
}

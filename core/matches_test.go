package core

import (
	"context"
	"testing"
	"time"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singles(winner, loser int64) MatchInput {
	return MatchInput{
		GuildID:   testGuild,
		MatchType: "Singles",
		WinnerIDs: []int64{winner},
		LoserIDs:  []int64{loser},
		Finish:    "Pinfall",
	}
}

func TestRecordMatch_RecordsAndXP(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.addWrestler(t, "u1", "Alpha", func(w *schema.Wrestler) { w.XP = 240 })
	b := f.addWrestler(t, "u2", "Bravo")

	in := singles(a.ID, b.ID)
	in.Rating = 4.0
	out, err := f.league.RecordMatch(ctx, in)
	require.NoError(t, err)

	assert.NotZero(t, out.Match.ID)
	assert.False(t, out.RivalryBonus)
	require.Len(t, out.Awards, 2)
	assert.Equal(t, 80, out.Awards[0].XP)
	assert.Equal(t, 2, out.Awards[0].NewLevel)
	assert.Equal(t, 500, out.Awards[0].Bonus)
	assert.Equal(t, 10, out.Awards[1].XP)

	winner := f.reload(t, a.ID)
	assert.Equal(t, 1, winner.Wins)
	assert.Equal(t, 2, winner.Level)
	assert.Equal(t, 320, winner.XP)
	assert.Equal(t, 500, winner.Currency)

	loser := f.reload(t, b.ID)
	assert.Equal(t, 1, loser.Losses)
	assert.Equal(t, 10, loser.XP)
	assert.Equal(t, 1, f.observer.matches)

	history, err := f.league.MatchHistory(ctx, testGuild, b.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Pinfall", history[0].Finish)
}

func TestRecordMatch_Validation(t *testing.T) {
	f := newFixture(t)
	a := f.addWrestler(t, "u1", "Alpha")
	b := f.addWrestler(t, "u2", "Bravo")
	gone := f.addWrestler(t, "u3", "Charlie", func(w *schema.Wrestler) { w.Retired = true })

	tests := []struct {
		name    string
		edit    func(*MatchInput)
		wantErr error
	}{
		{"no winners", func(in *MatchInput) { in.WinnerIDs = nil }, contract.ErrInvalidInput},
		{"no losers", func(in *MatchInput) { in.LoserIDs = nil }, contract.ErrInvalidInput},
		{"overlap", func(in *MatchInput) { in.LoserIDs = []int64{a.ID} }, contract.ErrInvalidInput},
		{"rating too high", func(in *MatchInput) { in.Rating = 5.5 }, contract.ErrInvalidInput},
		{"negative rating", func(in *MatchInput) { in.Rating = -1 }, contract.ErrInvalidInput},
		{"missing type", func(in *MatchInput) { in.MatchType = " " }, contract.ErrInvalidInput},
		{"retired participant", func(in *MatchInput) { in.LoserIDs = []int64{gone.ID} }, contract.ErrInvalidState},
		{"unknown wrestler", func(in *MatchInput) { in.LoserIDs = []int64{999} }, contract.ErrNotFound},
		{"other guild", func(in *MatchInput) { in.GuildID = "elsewhere" }, contract.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := singles(a.ID, b.ID)
			tt.edit(&in)
			_, err := f.league.RecordMatch(context.Background(), in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	matches, err := f.store.ListMatches(context.Background(), testGuild, 0)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRecordMatch_Rivalry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.addWrestler(t, "u1", "Alpha")
	b := f.addWrestler(t, "u2", "Bravo")
	r, err := f.league.CreateRivalry(ctx, testGuild, a.ID, b.ID)
	require.NoError(t, err)

	out, err := f.league.RecordMatch(ctx, singles(b.ID, a.ID))
	require.NoError(t, err)
	assert.True(t, out.RivalryBonus)
	assert.Equal(t, 55, out.Awards[0].XP)
	assert.Equal(t, 11, out.Awards[1].XP)

	stored, err := f.store.GetRivalry(ctx, r.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.Wins1)
	assert.Equal(t, 1, stored.Wins2)
}

func TestRecordMatch_TitleChangesAndDefenses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.addWrestler(t, "u1", "Alpha")
	b := f.addWrestler(t, "u2", "Bravo")
	title, err := f.league.CreateChampionship(ctx, ChampionshipInput{
		GuildID: testGuild, Name: "World Heavyweight", Gender: schema.Male, WeightClass: schema.AllWeights,
	})
	require.NoError(t, err)

	in := singles(a.ID, b.ID)
	in.ChampionshipID = &title.ID
	out, err := f.league.RecordMatch(ctx, in)
	require.NoError(t, err)
	assert.True(t, out.TitleChange)
	assert.True(t, out.Match.TitleMatch)
	require.NotNil(t, out.Reign)
	assert.Equal(t, 1, out.Reign.ReignNumber)
	assert.Equal(t, 150, out.Awards[0].XP)
	assert.Equal(t, 110, out.Awards[1].XP)

	f.clock.advance(10 * 24 * time.Hour)
	out, err = f.league.RecordMatch(ctx, in)
	require.NoError(t, err)
	assert.True(t, out.TitleDefense)
	assert.False(t, out.TitleChange)
	assert.Equal(t, 1, out.Reign.Defenses)

	f.clock.advance(5 * 24 * time.Hour)
	flipped := singles(b.ID, a.ID)
	flipped.ChampionshipID = &title.ID
	out, err = f.league.RecordMatch(ctx, flipped)
	require.NoError(t, err)
	assert.True(t, out.TitleChange)
	assert.Equal(t, 2, out.Reign.ReignNumber)

	history, err := f.league.TitleHistory(ctx, testGuild, title.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, []int64{b.ID}, history[0].WrestlerIDs)
	assert.True(t, history[0].IsCurrent)
	assert.False(t, history[1].IsCurrent)
	assert.Equal(t, 15, history[1].DaysHeld)
	assert.Equal(t, 1, history[1].Defenses)
	require.NotNil(t, history[1].LostDate)
}

func TestRecordMatch_TitleEligibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.addWrestler(t, "u1", "Alpha")
	b := f.addWrestler(t, "u2", "Bravo")
	title, err := f.league.CreateChampionship(ctx, ChampionshipInput{
		GuildID: testGuild, Name: "Women's Title", Gender: schema.Female, WeightClass: schema.AllWeights,
	})
	require.NoError(t, err)

	in := singles(a.ID, b.ID)
	in.ChampionshipID = &title.ID
	_, err = f.league.RecordMatch(ctx, in)
	assert.ErrorIs(t, err, contract.ErrNotEligible)
	assert.EqualError(t, err, "This championship is for Female wrestlers only")
}

func TestRecordMatch_LinksCard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.addWrestler(t, "u1", "Alpha")
	b := f.addWrestler(t, "u2", "Bravo")
	tmpl, err := f.league.CreateEventTemplate(ctx, testGuild, "Monday Night", "Weekly")
	require.NoError(t, err)
	ev, err := f.league.CreateEventInstance(ctx, testGuild, tmpl.ID, nil)
	require.NoError(t, err)
	_, err = f.league.AddCardMatch(ctx, testGuild, ev.ID, CardInput{MatchType: "Tag Team"})
	require.NoError(t, err)
	slot, err := f.league.AddCardMatch(ctx, testGuild, ev.ID, CardInput{MatchType: "Singles", ParticipantIDs: []int64{a.ID, b.ID}, MainEvent: true})
	require.NoError(t, err)

	in := singles(a.ID, b.ID)
	in.EventID = &ev.ID
	out, err := f.league.RecordMatch(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, out.LinkedCardMatchID)
	assert.Equal(t, slot.ID, *out.LinkedCardMatchID)
	assert.True(t, out.Match.MainEvent, "main event slots make main event matches")
	assert.Equal(t, 75, out.Awards[0].XP)

	card, err := f.store.GetCardMatch(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.CardCompleted, card.Status)
	require.NotNil(t, card.MatchID)
	assert.Equal(t, out.Match.ID, *card.MatchID)

	// The slot is used up, so a second singles match links nothing.
	out, err = f.league.RecordMatch(ctx, in)
	require.NoError(t, err)
	assert.Nil(t, out.LinkedCardMatchID)

	require.NoError(t, f.league.CloseEvent(ctx, testGuild, ev.ID))
	_, err = f.league.RecordMatch(ctx, in)
	assert.ErrorIs(t, err, contract.ErrInvalidState)
}

func TestLeaderboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.addWrestler(t, "u1", "Alpha", func(w *schema.Wrestler) { w.Wins, w.Losses, w.Currency = 2, 2, 900 })
	f.addWrestler(t, "u2", "Bravo", func(w *schema.Wrestler) { w.Wins, w.Losses, w.Currency = 5, 0, 100 })
	f.addWrestler(t, "u3", "Charlie", func(w *schema.Wrestler) { w.Wins = 1 })
	f.addWrestler(t, "u4", "Delta", func(w *schema.Wrestler) { w.Wins, w.Retired = 9, true })

	wins, err := f.league.Leaderboard(ctx, testGuild, schema.StatWins)
	require.NoError(t, err)
	require.Len(t, wins, 3)
	assert.Equal(t, "Bravo", wins[0].Name)
	assert.Equal(t, 1, wins[0].Rank)

	rate, err := f.league.Leaderboard(ctx, testGuild, schema.StatWinRate)
	require.NoError(t, err)
	require.Len(t, rate, 2, "Charlie has too few matches")
	assert.Equal(t, "Bravo", rate[0].Name)

	money, err := f.league.Leaderboard(ctx, testGuild, schema.StatCurrency)
	require.NoError(t, err)
	assert.Equal(t, a.ID, money[0].WrestlerID)

	_, err = f.league.Leaderboard(ctx, testGuild, "charisma")
	assert.ErrorIs(t, err, contract.ErrInvalidInput)
}

func TestStreaks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.addWrestler(t, "u1", "Alpha")
	b := f.addWrestler(t, "u2", "Bravo")
	c := f.addWrestler(t, "u3", "Charlie")

	for _, m := range []MatchInput{singles(a.ID, b.ID), singles(a.ID, c.ID), singles(c.ID, b.ID), singles(a.ID, b.ID)} {
		f.clock.advance(time.Minute)
		_, err := f.league.RecordMatch(ctx, m)
		require.NoError(t, err)
	}

	hot, err := f.league.Streaks(ctx, testGuild, schema.StreakHot)
	require.NoError(t, err)
	require.Len(t, hot, 2)
	assert.Equal(t, "Alpha", hot[0].Name)
	assert.Equal(t, "W3", hot[0].Label())
	assert.Equal(t, "W1", hot[1].Label())

	cold, err := f.league.Streaks(ctx, testGuild, schema.StreakCold)
	require.NoError(t, err)
	require.Len(t, cold, 1)
	assert.Equal(t, "L3", cold[0].Label())

	all, err := f.league.Streaks(ctx, testGuild, schema.StreakOverall)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = f.league.Streaks(ctx, testGuild, "lukewarm")
	assert.ErrorIs(t, err, contract.ErrInvalidInput)
}

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

func TestCheckEligibility(t *testing.T) {
	male := schema.Wrestler{Name: "Titan", Gender: schema.Male, WeightClass: schema.Heavy}
	female := schema.Wrestler{Name: "Nova", Gender: schema.Female, WeightClass: schema.Light}

	tests := []struct {
		name      string
		title     schema.Championship
		holders   []schema.Wrestler
		wantError string
	}{
		{"open title", schema.Championship{Gender: schema.Mixed, WeightClass: schema.AllWeights}, []schema.Wrestler{female}, ""},
		{"gender match", schema.Championship{Gender: schema.Male, WeightClass: schema.AllWeights}, []schema.Wrestler{male}, ""},
		{"gender mismatch", schema.Championship{Gender: schema.Male, WeightClass: schema.AllWeights}, []schema.Wrestler{female}, "This championship is for Male wrestlers only"},
		{"weight mismatch", schema.Championship{Gender: schema.Mixed, WeightClass: schema.Cruiser}, []schema.Wrestler{male}, "This championship is for Cruiser weight class only"},
		{"tag team alone", schema.Championship{Gender: schema.Mixed, WeightClass: schema.AllWeights, TagTeam: true}, []schema.Wrestler{male}, "This is a tag team championship"},
		{"tag team pair", schema.Championship{Gender: schema.Mixed, WeightClass: schema.AllWeights, TagTeam: true}, []schema.Wrestler{male, female}, ""},
		{"mixed pair on a male title", schema.Championship{Gender: schema.Male, WeightClass: schema.AllWeights, TagTeam: true}, []schema.Wrestler{male, female}, "This championship is for Male wrestlers only"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckEligibility(tt.title, tt.holders)
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantError)
			assert.ErrorIs(t, err, contract.ErrNotEligible)
		})
	}

	assert.ErrorIs(t, CheckEligibility(schema.Championship{}, nil), contract.ErrInvalidInput)
}

func TestCreateChampionship(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.league.CreateChampionship(ctx, ChampionshipInput{
		GuildID: testGuild, Name: "  Tag Team Titles ", Gender: schema.Mixed, WeightClass: schema.AllWeights, TagTeam: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tag Team Titles", c.Name)
	assert.True(t, c.Vacant())

	got, err := f.league.ResolveChampionship(ctx, testGuild, "tag team titles")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = f.league.CreateChampionship(ctx, ChampionshipInput{GuildID: testGuild, Name: "Tag Team Titles", Gender: schema.Mixed, WeightClass: schema.AllWeights})
	assert.ErrorIs(t, err, contract.ErrDuplicate)

	tests := []struct {
		name string
		in   ChampionshipInput
	}{
		{"short name", ChampionshipInput{GuildID: testGuild, Name: "X", Gender: schema.Male, WeightClass: schema.AllWeights}},
		{"bad gender", ChampionshipInput{GuildID: testGuild, Name: "Crown", Gender: "Other", WeightClass: schema.AllWeights}},
		{"bad weight", ChampionshipInput{GuildID: testGuild, Name: "Crown", Gender: schema.Male, WeightClass: "Feather"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.league.CreateChampionship(ctx, tt.in)
			assert.ErrorIs(t, err, contract.ErrInvalidInput)
		})
	}
}

func TestAssignAndVacateChampionship(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.addWrestler(t, "u1", "Alpha")
	b := f.addWrestler(t, "u2", "Bravo")
	c, err := f.league.CreateChampionship(ctx, ChampionshipInput{
		GuildID: testGuild, Name: "Heavyweight Title", Gender: schema.Male, WeightClass: schema.Heavy,
	})
	require.NoError(t, err)

	views, err := f.league.CurrentChampions(ctx, testGuild)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Vacant", views[0].HolderNames())
	assert.Nil(t, views[0].Reign)

	reign, err := f.league.AssignChampion(ctx, testGuild, c.ID, []int64{a.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, reign.ReignNumber)
	assert.True(t, reign.IsCurrent)

	f.clock.advance(7 * 24 * time.Hour)
	reign, err = f.league.AssignChampion(ctx, testGuild, c.ID, []int64{b.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, reign.ReignNumber)

	views, err = f.league.CurrentChampions(ctx, testGuild)
	require.NoError(t, err)
	assert.Equal(t, "Bravo", views[0].HolderNames())
	require.NotNil(t, views[0].Reign)
	assert.Equal(t, reign.ID, views[0].Reign.ID)

	f.clock.advance(3 * 24 * time.Hour)
	require.NoError(t, f.league.VacateChampionship(ctx, testGuild, c.ID))
	assert.ErrorIs(t, f.league.VacateChampionship(ctx, testGuild, c.ID), contract.ErrInvalidState)

	history, err := f.league.TitleHistory(ctx, testGuild, c.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.False(t, history[0].IsCurrent)
	assert.Equal(t, 3, history[0].DaysHeld)
	assert.Equal(t, 7, history[1].DaysHeld)

	stored, err := f.store.GetChampionship(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, stored.Vacant())
}

func TestAssignChampion_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.addWrestler(t, "u1", "Alpha")
	cruiser := f.addWrestler(t, "u2", "Bravo", func(w *schema.Wrestler) { w.WeightClass = schema.Cruiser })
	c, err := f.league.CreateChampionship(ctx, ChampionshipInput{
		GuildID: testGuild, Name: "Heavyweight Title", Gender: schema.Male, WeightClass: schema.Heavy,
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		guild   string
		ids     []int64
		wantErr error
	}{
		{"wrong weight class", testGuild, []int64{cruiser.ID}, contract.ErrNotEligible},
		{"listed twice", testGuild, []int64{a.ID, a.ID}, contract.ErrInvalidInput},
		{"no holders", testGuild, nil, contract.ErrInvalidInput},
		{"other guild", "elsewhere", []int64{a.ID}, contract.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.league.AssignChampion(ctx, tt.guild, c.ID, tt.ids)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	history, err := f.league.TitleHistory(ctx, testGuild, c.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

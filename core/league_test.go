package core

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/internal/leaguedb"
	"github.com/huangsam/ringside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGuild = "guild-1"

var testStart = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// testClock is a settable wall clock.
type testClock struct{ t time.Time }

func (c *testClock) now() time.Time          { return c.t }
func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// countingObserver tallies league events.
type countingObserver struct {
	currency, matches, purchases, swept int
}

func (o *countingObserver) CurrencyAwarded(_ string, amount int) { o.currency += amount }
func (o *countingObserver) MatchRecorded(string, bool)           { o.matches++ }
func (o *countingObserver) UpgradePurchased(_ string, cost int)  { o.purchases += cost }
func (o *countingObserver) InactivitySwept(_ string, n, _ int)   { o.swept += n }

type fixture struct {
	league   *League
	store    contract.LeagueStore
	clock    *testClock
	observer *countingObserver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := leaguedb.NewLeagueStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	clock := &testClock{t: testStart}
	obs := &countingObserver{}
	l := NewLeague(store,
		WithClock(clock.now),
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithObserver(obs),
	)
	return &fixture{league: l, store: store, clock: clock, observer: obs}
}

// addWrestler inserts a wrestler directly, bypassing the creation workflow.
func (f *fixture) addWrestler(t *testing.T, user, name string, edit ...func(*schema.Wrestler)) schema.Wrestler {
	t.Helper()
	now := f.clock.now()
	w := schema.Wrestler{
		GuildID:     testGuild,
		UserID:      user,
		Name:        name,
		Gender:      schema.Male,
		Archetype:   schema.Powerhouse,
		Alignment:   schema.Heel,
		WeightClass: schema.Heavy,
		Persona:     "Vicious",
		Finisher:    name + " Driver",
		Signature:   name + " Slam",
		Attributes:  map[string]int{"Strength": 60, "Agility": 45},
		Personality: schema.PersonalityTraits{},
		Level:       1,
		LastActive:  &now,
		CreatedAt:   now,
	}
	for _, fn := range edit {
		fn(&w)
	}
	_, err := f.store.CreateWrestler(context.Background(), &w)
	require.NoError(t, err)
	return w
}

func (f *fixture) reload(t *testing.T, id int64) schema.Wrestler {
	t.Helper()
	w, err := f.store.GetWrestler(context.Background(), id)
	require.NoError(t, err)
	return w
}

func (f *fixture) setup(t *testing.T, edit ...func(*schema.ServerSettings)) {
	t.Helper()
	s := schema.DefaultServerSettings(testGuild)
	s.SetupCompleted = true
	for _, fn := range edit {
		fn(&s)
	}
	require.NoError(t, f.league.SaveSettings(context.Background(), s))
}

func TestGetSettings_DefaultsWhenMissing(t *testing.T) {
	f := newFixture(t)
	s, err := f.league.GetSettings(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Equal(t, schema.DefaultServerSettings("unknown"), s)
}

func TestGetSettings_CachesStoreReads(t *testing.T) {
	store := &leaguedb.MockLeagueStore{}
	stored := schema.DefaultServerSettings("g1")
	stored.CurrencyName = "Gold"
	store.On("GetSettings", "g1").Return(stored, nil).Once()
	store.On("SaveSettings", stored).Return(nil).Once()

	l := NewLeague(store)
	ctx := context.Background()
	for range 3 {
		s, err := l.GetSettings(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, "Gold", s.CurrencyName)
	}
	store.AssertNumberOfCalls(t, "GetSettings", 1)

	// Saving evicts the cached copy.
	require.NoError(t, l.SaveSettings(ctx, stored))
	store.On("GetSettings", "g1").Return(stored, nil).Once()
	_, err := l.GetSettings(ctx, "g1")
	require.NoError(t, err)
	store.AssertNumberOfCalls(t, "GetSettings", 2)
	store.AssertExpectations(t)
}

func TestGetSettings_PropagatesStoreErrors(t *testing.T) {
	store := &leaguedb.MockLeagueStore{}
	boom := errors.New("connection refused")
	store.On("GetSettings", "g1").Return(schema.ServerSettings{}, boom)

	_, err := NewLeague(store).GetSettings(context.Background(), "g1")
	assert.ErrorIs(t, err, boom)
}

func TestValidateSettings(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(*schema.ServerSettings)
		wantErr bool
	}{
		{"defaults", func(*schema.ServerSettings) {}, false},
		{"missing guild", func(s *schema.ServerSettings) { s.GuildID = "" }, true},
		{"negative min", func(s *schema.ServerSettings) { s.CurrencyMin = -1 }, true},
		{"min above max", func(s *schema.ServerSettings) { s.CurrencyMin, s.CurrencyMax = 20, 10 }, true},
		{"min equals max", func(s *schema.ServerSettings) { s.CurrencyMin, s.CurrencyMax = 10, 10 }, false},
		{"zero cooldown", func(s *schema.ServerSettings) { s.CooldownSeconds = 0 }, true},
		{"warning equals inactivity", func(s *schema.ServerSettings) { s.WarningDays = s.InactivityDays }, true},
		{"zero turn cooldown", func(s *schema.ServerSettings) { s.TurnCooldownDays = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := schema.DefaultServerSettings("g1")
			tt.edit(&s)
			err := ValidateSettings(s)
			if tt.wantErr {
				assert.ErrorIs(t, err, contract.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.league.GetSettings(ctx, testGuild)
	require.NoError(t, err)

	f.setup(t, func(s *schema.ServerSettings) { s.CurrencyChannels = []string{"c1"} })
	s, err := f.league.GetSettings(ctx, testGuild)
	require.NoError(t, err)
	assert.True(t, s.SetupCompleted)
	assert.Equal(t, []string{"c1"}, s.CurrencyChannels)
}

func TestUserLimit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	limit, err := f.league.UserLimit(ctx, testGuild, "u1")
	require.NoError(t, err)
	assert.Equal(t, schema.DefaultMaxWrestlers, limit)

	require.NoError(t, f.league.SetUserLimit(ctx, testGuild, "u1", 5))
	limit, err = f.league.UserLimit(ctx, testGuild, "u1")
	require.NoError(t, err)
	assert.Equal(t, 5, limit)

	f.setup(t, func(s *schema.ServerSettings) { s.MaxWrestlers = 0 })
	limit, err = f.league.UserLimit(ctx, testGuild, "u2")
	require.NoError(t, err)
	assert.Equal(t, 1, limit)

	assert.ErrorIs(t, f.league.SetUserLimit(ctx, testGuild, "u1", 0), contract.ErrInvalidInput)
}

func TestChoosers(t *testing.T) {
	ctx := context.Background()
	options := []string{"Crossface", "Armbar", "Ankle Lock"}

	pick, err := FirstChooser{}.Choose(ctx, PromptFinisher, options)
	require.NoError(t, err)
	assert.Equal(t, "Crossface", pick)

	fixed := FixedChooser{PromptFinisher: "Armbar", PromptSignature: "Moonsault"}
	pick, err = fixed.Choose(ctx, PromptFinisher, options)
	require.NoError(t, err)
	assert.Equal(t, "Armbar", pick)

	pick, err = fixed.Choose(ctx, PromptPersona, options)
	require.NoError(t, err)
	assert.Equal(t, "Crossface", pick, "prompts without a pick fall back to the first option")

	_, err = fixed.Choose(ctx, PromptSignature, options)
	assert.ErrorIs(t, err, contract.ErrInvalidInput)

	_, err = choose(ctx, nil, PromptFinisher, nil)
	assert.ErrorIs(t, err, contract.ErrNotEligible)

	rogue := ChooserFunc(func(context.Context, string, []string) (string, error) { return "Powerbomb", nil })
	_, err = choose(ctx, rogue, PromptFinisher, options)
	assert.ErrorIs(t, err, contract.ErrInvalidInput)
}

func TestResolveWrestler(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := f.addWrestler(t, "u1", "Titan")

	got, err := f.league.ResolveWrestler(ctx, testGuild, "", "titan")
	require.NoError(t, err)
	assert.Equal(t, w.ID, got.ID)

	got, err = f.league.ResolveWrestler(ctx, testGuild, "", "1")
	require.NoError(t, err)
	assert.Equal(t, w.ID, got.ID)

	got, err = f.league.ResolveWrestler(ctx, testGuild, "u9", "Titan")
	require.NoError(t, err)
	assert.Equal(t, w.ID, got.ID, "falls back to the guild when the user owns no match")

	_, err = f.league.ResolveWrestler(ctx, "other-guild", "", "Titan")
	assert.ErrorIs(t, err, contract.ErrNotFound)
}

func TestResolveWrestler_SameNameDifferentOwners(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.addWrestler(t, "u1", "Goliath")
	second := f.addWrestler(t, "u2", "Goliath", func(w *schema.Wrestler) {
		w.Finisher = "Colossal Driver"
		w.Signature = "Colossal Slam"
	})

	tests := []struct {
		user string
		want int64
	}{
		{"u1", first.ID},
		{"u2", second.ID},
		{"", first.ID},
	}
	for _, tt := range tests {
		t.Run("user="+tt.user, func(t *testing.T) {
			got, err := f.league.ResolveWrestler(ctx, testGuild, tt.user, " goliath ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ID)
		})
	}

	got, err := f.league.ResolveWrestler(ctx, testGuild, "u2", "Goliath")
	require.NoError(t, err)
	_, err = f.league.ClaimDaily(ctx, Actor{UserID: "u2"}, testGuild, got.ID)
	assert.NoError(t, err)
}

func TestLockedRand_Between(t *testing.T) {
	r := &lockedRand{r: rand.New(rand.NewPCG(7, 7))}
	for range 200 {
		v := r.between(5, 15)
		assert.GreaterOrEqual(t, v, 5)
		assert.LessOrEqual(t, v, 15)
	}
	assert.Equal(t, 9, r.between(9, 9))
}

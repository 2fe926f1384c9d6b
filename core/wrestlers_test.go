package core

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/huangsam/ringside/core/algo"
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// heelGiantAnswers classify as a Heel Giant in the Ultraheavy class.
var heelGiantAnswers = schema.QuestionnaireAnswers{
	schema.PhysicalBuild:     "towering",
	schema.InRingApproach:    "overpower",
	schema.OpponentBehavior:  "mock",
	schema.HandlingAdversity: "bend_rules",
	schema.CrowdReaction:     "provoke",
}

func heelGiantRequest(user, name string) CreateRequest {
	return CreateRequest{
		GuildID:           testGuild,
		UserID:            user,
		Name:              name,
		Gender:            schema.Male,
		Answers:           heelGiantAnswers,
		FinisherCategory:  "Submissions",
		SignatureCategory: "Submissions",
	}
}

func TestCreateWrestler(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	w, err := f.league.CreateWrestler(ctx, heelGiantRequest("u1", "  Goliath  "), FirstChooser{})
	require.NoError(t, err)

	assert.NotZero(t, w.ID)
	assert.Equal(t, "Goliath", w.Name)
	assert.Equal(t, schema.Giant, w.Archetype)
	assert.Equal(t, schema.Heel, w.Alignment)
	assert.Equal(t, schema.Ultraheavy, w.WeightClass)
	assert.Equal(t, "Giant", w.Persona)
	assert.Equal(t, "Sleeper Hold", w.Finisher)
	assert.Equal(t, "Rear Naked Choke", w.Signature)
	assert.Equal(t, f.league.Catalog().BaseAttributes(schema.Giant, "Giant"), w.Attributes)
	assert.Len(t, w.Personality, len(schema.AllTraits))
	assert.Equal(t, 1, w.Level)
	assert.Zero(t, w.Currency)

	heights, ok := f.league.Catalog().Height(schema.Giant, schema.Male)
	require.True(t, ok)
	assert.GreaterOrEqual(t, w.HeightCm, heights.CmMin)
	assert.LessOrEqual(t, w.HeightCm, heights.CmMax)
	assert.NotEmpty(t, w.HeightFeet)

	stored := f.reload(t, w.ID)
	assert.Equal(t, w.Finisher, stored.Finisher)
	require.NotNil(t, stored.LastActive)
	assert.True(t, stored.LastActive.Equal(testStart))
}

func TestCreateWrestler_SkipsTakenMoves(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.league.CreateWrestler(ctx, heelGiantRequest("u1", "Goliath"), FirstChooser{})
	require.NoError(t, err)
	second, err := f.league.CreateWrestler(ctx, heelGiantRequest("u2", "Colossus"), FirstChooser{})
	require.NoError(t, err)

	assert.Equal(t, "Triangle Choke", second.Finisher)
	assert.Equal(t, "Guillotine Choke", second.Signature)
}

func TestCreateWrestler_ChooserPicks(t *testing.T) {
	f := newFixture(t)
	var prompts []string
	recorder := ChooserFunc(func(ctx context.Context, prompt string, options []string) (string, error) {
		prompts = append(prompts, prompt)
		return FixedChooser{PromptPersona: "Orthodox", PromptFinisher: "Heel Hook", PromptBodyType: "Heavyweight"}.Choose(ctx, prompt, options)
	})

	w, err := f.league.CreateWrestler(context.Background(), heelGiantRequest("u1", "Goliath"), recorder)
	require.NoError(t, err)
	assert.Equal(t, []string{PromptBodyType, PromptPersona, PromptFinisher, PromptSignature}, prompts)
	assert.Equal(t, "Orthodox", w.Persona)
	assert.Equal(t, "Heel Hook", w.Finisher)
	assert.Equal(t, "Heavyweight", w.BodyType)
	assert.Equal(t, "Sleeper Hold", w.Signature)
}

func TestCreateWrestler_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(*CreateRequest)
		wantErr error
	}{
		{"short name", func(r *CreateRequest) { r.Name = "X" }, contract.ErrInvalidInput},
		{"long name", func(r *CreateRequest) { r.Name = "The Extraordinarily Long Named Giant" }, contract.ErrInvalidInput},
		{"mixed gender", func(r *CreateRequest) { r.Gender = schema.Mixed }, contract.ErrInvalidInput},
		{"unknown finisher category", func(r *CreateRequest) { r.FinisherCategory = "Dances" }, contract.ErrInvalidInput},
		{"unknown signature category", func(r *CreateRequest) { r.SignatureCategory = "" }, contract.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := heelGiantRequest("u1", "Goliath")
			tt.edit(&req)
			_, err := f.league.CreateWrestler(context.Background(), req, FirstChooser{})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateWrestler_LimitAndDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.league.SetUserLimit(ctx, testGuild, "u1", 1))

	first, err := f.league.CreateWrestler(ctx, heelGiantRequest("u1", "Goliath"), FirstChooser{})
	require.NoError(t, err)

	_, err = f.league.CreateWrestler(ctx, heelGiantRequest("u1", "GOLIATH"), FirstChooser{})
	assert.ErrorIs(t, err, contract.ErrDuplicate)

	_, err = f.league.CreateWrestler(ctx, heelGiantRequest("u1", "Behemoth"), FirstChooser{})
	assert.ErrorIs(t, err, contract.ErrLimitReached)

	// Retired wrestlers do not count towards the limit.
	_, err = f.league.Retire(ctx, Actor{UserID: "u1"}, testGuild, first.ID)
	require.NoError(t, err)
	_, err = f.league.CreateWrestler(ctx, heelGiantRequest("u1", "Behemoth"), FirstChooser{})
	assert.NoError(t, err)
}

func TestCreateWrestler_NoFreeMoves(t *testing.T) {
	f := newFixture(t)
	cat := f.league.Catalog()
	subs, ok := cat.Category("Submissions")
	require.True(t, ok)
	for i, move := range subs.Moves {
		f.addWrestler(t, "holder", "Holder "+string(rune('A'+i)), func(w *schema.Wrestler) {
			w.Finisher = move
			w.Signature = move + " II"
		})
	}

	_, err := f.league.CreateWrestler(context.Background(), heelGiantRequest("u1", "Goliath"), FirstChooser{})
	assert.ErrorIs(t, err, contract.ErrNotEligible)
	assert.Contains(t, err.Error(), "no eligible moves")
}

func TestRecommendMoves_ExcludesTaken(t *testing.T) {
	f := newFixture(t)
	f.addWrestler(t, "u1", "Holder", func(w *schema.Wrestler) { w.Finisher = "Frog Splash" })

	moves, err := f.league.RecommendMoves(context.Background(), testGuild, "Aerial/High-Flying", schema.Face, schema.HighFlyer)
	require.NoError(t, err)
	assert.NotContains(t, moves, "Frog Splash")
	assert.LessOrEqual(t, len(moves), algo.MaxRecommendations)

	_, err = f.league.RecommendMoves(context.Background(), "", "Nope", schema.Face, schema.HighFlyer)
	assert.ErrorIs(t, err, contract.ErrInvalidInput)
}

func TestTurn_FaceReplacesHeelMoves(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w, err := f.league.CreateWrestler(ctx, heelGiantRequest("u1", "Goliath"), FirstChooser{})
	require.NoError(t, err)
	_, err = f.store.AdjustCurrency(ctx, w.ID, 1500)
	require.NoError(t, err)

	out, err := f.league.Turn(ctx, Actor{UserID: "u1"}, testGuild, w.ID, schema.Face, FixedChooser{PromptPersona: "Orthodox"})
	require.NoError(t, err)

	assert.Equal(t, schema.Heel, out.FromAlignment)
	assert.Equal(t, schema.Face, out.ToAlignment)
	assert.Equal(t, "Orthodox", out.ToPersona)
	assert.Equal(t, "Crossface", out.NewFinisher)
	assert.Equal(t, "Armbar", out.NewSignature)
	assert.False(t, algo.IsHeelMove(out.Wrestler.Finisher))
	assert.False(t, algo.IsHeelMove(out.Wrestler.Signature))
	assert.Equal(t, algo.AdjustTraits(w.Personality, schema.Face), out.NewTraits)
	assert.Equal(t, algo.PersonaDiff(f.league.Catalog(), "Giant", "Orthodox"), out.PersonaDiff)
	assert.Equal(t, 500, out.Wrestler.Currency)

	stored := f.reload(t, w.ID)
	assert.Equal(t, schema.Face, stored.Alignment)
	assert.Equal(t, "Crossface", stored.Finisher)
	assert.Equal(t, 500, stored.Currency)
	require.NotNil(t, stored.LastTurnDate)

	turns, err := f.store.ListTurns(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "Giant", turns[0].FromPersona)
	assert.Equal(t, "Orthodox", turns[0].ToPersona)
}

func TestTurn_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rich := f.addWrestler(t, "u1", "Rich", func(w *schema.Wrestler) { w.Currency = 5000 })
	poor := f.addWrestler(t, "u1", "Poor")
	recent := f.addWrestler(t, "u1", "Recent", func(w *schema.Wrestler) {
		w.Currency = 5000
		last := testStart.Add(-10 * 24 * time.Hour)
		w.LastTurnDate = &last
	})

	tests := []struct {
		name    string
		actor   Actor
		id      int64
		to      schema.Alignment
		wantErr error
	}{
		{"same alignment", Actor{UserID: "u1"}, rich.ID, schema.Heel, contract.ErrInvalidInput},
		{"unknown alignment", Actor{UserID: "u1"}, rich.ID, "Villain", contract.ErrInvalidInput},
		{"not the owner", Actor{UserID: "u2"}, rich.ID, schema.Face, contract.ErrForbidden},
		{"cannot afford", Actor{UserID: "u1"}, poor.ID, schema.Face, contract.ErrInsufficientFunds},
		{"on cooldown", Actor{UserID: "u1"}, recent.ID, schema.Face, contract.ErrCooldown},
		{"missing wrestler", Actor{UserID: "u1"}, 999, schema.Face, contract.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.league.Turn(ctx, tt.actor, testGuild, tt.id, tt.to, FirstChooser{})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := f.league.Turn(ctx, Actor{UserID: "u1"}, testGuild, recent.ID, schema.Face, FirstChooser{})
	assert.Contains(t, err.Error(), "20 days")
	assert.Equal(t, 5000, f.reload(t, rich.ID).Currency, "failed turns spend nothing")
}

func TestTurn_TweenerKeepsMoves(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := f.addWrestler(t, "u1", "Snake", func(w *schema.Wrestler) {
		w.Currency = 1000
		w.Finisher = "Sleeper Hold"
		w.Personality = schema.PersonalityTraits{schema.LoyalTreacherous: -60}
	})

	out, err := f.league.Turn(ctx, Actor{UserID: "u1"}, testGuild, w.ID, schema.Tweener, FirstChooser{})
	require.NoError(t, err)
	assert.Empty(t, out.NewFinisher)
	assert.Equal(t, "Sleeper Hold", out.Wrestler.Finisher)
	assert.Equal(t, "Giant", out.ToPersona)
	for _, v := range out.NewTraits {
		assert.Zero(t, v)
	}
	assert.Zero(t, f.reload(t, w.ID).Currency)
}

func TestRename(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := f.addWrestler(t, "u1", "Rookie", func(w *schema.Wrestler) { w.Currency = 4500 })
	f.addWrestler(t, "u2", "Legend")

	out, err := f.league.Rename(ctx, Actor{UserID: "u1"}, testGuild, w.ID, "Veteran")
	require.NoError(t, err)
	assert.Equal(t, "Rookie", out.OldName)
	assert.Equal(t, "Veteran", out.NewName)

	stored := f.reload(t, w.ID)
	assert.Equal(t, "Veteran", stored.Name)
	assert.Equal(t, []string{"Rookie"}, stored.FormerNames)
	assert.Equal(t, 2500, stored.Currency)

	_, err = f.league.Rename(ctx, Actor{UserID: "u1"}, testGuild, w.ID, "Champion")
	assert.ErrorIs(t, err, contract.ErrCooldown)

	f.clock.advance(31 * 24 * time.Hour)
	_, err = f.league.Rename(ctx, Actor{UserID: "u1"}, testGuild, w.ID, "legend")
	assert.ErrorIs(t, err, contract.ErrDuplicate)

	_, err = f.league.Rename(ctx, Actor{UserID: "u1"}, testGuild, w.ID, "Champion")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rookie", "Veteran"}, f.reload(t, w.ID).FormerNames)

	f.clock.advance(31 * 24 * time.Hour)
	_, err = f.league.Rename(ctx, Actor{UserID: "u1"}, testGuild, w.ID, "Broke")
	assert.ErrorIs(t, err, contract.ErrInsufficientFunds)
}

func TestRetire(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := f.addWrestler(t, "u1", "Oldtimer")

	_, err := f.league.Retire(ctx, Actor{UserID: "u2"}, testGuild, w.ID)
	assert.ErrorIs(t, err, contract.ErrForbidden)

	got, err := f.league.Retire(ctx, Actor{UserID: "u2", Admin: true}, testGuild, w.ID)
	require.NoError(t, err)
	assert.True(t, got.Retired)

	_, err = f.league.Retire(ctx, Actor{UserID: "u1"}, testGuild, w.ID)
	assert.ErrorIs(t, err, contract.ErrInvalidState)

	taken, err := f.store.TakenMoves(ctx, testGuild, 0)
	require.NoError(t, err)
	assert.NotContains(t, taken, w.Finisher)

	roster, err := f.league.Roster(ctx, testGuild, false)
	require.NoError(t, err)
	assert.False(t, slices.ContainsFunc(roster, func(r schema.Wrestler) bool { return r.ID == w.ID }))
}

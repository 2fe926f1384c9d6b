package core

import (
	"math/rand/v2"
	"testing"

	"github.com/huangsam/ringside/core/algo"
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	c := schema.DefaultCatalog()
	p := Profile(c, heelGiantAnswers, rand.New(rand.NewPCG(1, 2)))

	assert.Equal(t, schema.Giant, p.Archetype)
	assert.Equal(t, schema.Heel, p.Alignment)
	assert.Equal(t, schema.Ultraheavy, p.WeightClass)
	assert.Equal(t, []string{"Giant", "Orthodox", "Power"}, p.Personas)
	assert.Len(t, p.Traits, len(schema.AllTraits))

	require.Len(t, p.Recommendations, len(c.Categories))
	subs := p.Recommendations["Submissions"]
	require.NotEmpty(t, subs)
	assert.Equal(t, "Sleeper Hold", subs[0])
	for name, moves := range p.Recommendations {
		assert.LessOrEqual(t, len(moves), algo.MaxRecommendations, name)
	}
}

func TestValidateAnswers(t *testing.T) {
	tests := []struct {
		name    string
		answers schema.QuestionnaireAnswers
		wantErr bool
	}{
		{"full heel giant", heelGiantAnswers, false},
		{"empty", schema.QuestionnaireAnswers{}, false},
		{"blank answer", schema.QuestionnaireAnswers{schema.MatchTempo: ""}, false},
		{"unknown option", schema.QuestionnaireAnswers{schema.PhysicalBuild: "gigantic"}, true},
		{"unknown question", schema.QuestionnaireAnswers{"favorite_color": "red"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnswers(tt.answers)
			if tt.wantErr {
				assert.ErrorIs(t, err, contract.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

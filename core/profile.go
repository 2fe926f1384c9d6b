package core

import (
	"fmt"
	"slices"

	"github.com/huangsam/ringside/core/algo"
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// Profile runs the Trait Engine on a questionnaire without touching the store.
// Recommendations cover every move category of the catalog.
func Profile(c *schema.Catalog, answers schema.QuestionnaireAnswers, rng algo.RandomSource) schema.WrestlerProfile {
	class := algo.Classify(answers)
	p := schema.WrestlerProfile{
		ArchetypeResult: class,
		Traits:          algo.Synthesize(answers, rng),
		Recommendations: make(map[string][]string, len(c.Categories)),
	}
	for _, persona := range c.AvailablePersonas(class.Archetype, class.WeightClass, class.Alignment) {
		p.Personas = append(p.Personas, persona.Name)
	}
	for _, cat := range c.Categories {
		p.Recommendations[cat.Name] = algo.Recommend(cat.Moves, class.Alignment, class.Archetype)
	}
	return p
}

// ValidateAnswers rejects unknown questions and options. Unanswered questions are allowed.
func ValidateAnswers(answers schema.QuestionnaireAnswers) error {
	for q, v := range answers {
		options, ok := schema.QuestionOptions[q]
		if !ok {
			return fmt.Errorf("%w: unknown question %q", contract.ErrInvalidInput, q)
		}
		if v != "" && !slices.Contains(options, v) {
			return fmt.Errorf("%w: %s must be one of %v", contract.ErrInvalidInput, q, options)
		}
	}
	return nil
}

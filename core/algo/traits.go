package algo

import "github.com/huangsam/ringside/schema"

const (
	// TraitMin is the lowest value a trait can hold.
	TraitMin = -100

	// TraitMax is the highest value a trait can hold.
	TraitMax = 100

	// TraitJitter bounds the random perturbation added to each synthesized trait.
	TraitJitter = 10
)

// RandomSource yields integers in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// traitRules holds the trait deltas per answer.
var traitRules = map[schema.QuestionKey]map[string]schema.PersonalityTraits{
	schema.OpponentBehavior: {
		"respect": {schema.RespectfulDisrespectful: 40},
		"mock":    {schema.RespectfulDisrespectful: -40},
		"ignore":  {schema.RespectfulDisrespectful: -20},
		"study":   {schema.RespectfulDisrespectful: 20},
	},
	schema.HandlingAdversity: {
		"fight_harder": {schema.PerseverantDesperate: 35, schema.BoldCowardly: 30},
		"bend_rules":   {schema.PerseverantDesperate: -40, schema.DisciplinedAggressive: -30},
		"strategic":    {schema.PerseverantDesperate: 25, schema.DisciplinedAggressive: 20},
		"risk_it_all":  {schema.BoldCowardly: 40, schema.DisciplinedAggressive: -20},
	},
	schema.CrowdReaction: {
		"inspire":    {schema.PridefulEgotistical: 30},
		"provoke":    {schema.PridefulEgotistical: -40},
		"entertain":  {schema.PridefulEgotistical: 20},
		"intimidate": {schema.PridefulEgotistical: -30, schema.DisciplinedAggressive: -25},
	},
	schema.VictoryCelebration: {
		"humble":        {schema.PridefulEgotistical: 35, schema.RespectfulDisrespectful: 30},
		"showboat":      {schema.PridefulEgotistical: -35, schema.RespectfulDisrespectful: -20},
		"acknowledge":   {schema.RespectfulDisrespectful: 40, schema.PridefulEgotistical: 20},
		"leave_quickly": {schema.PridefulEgotistical: 10, schema.DisciplinedAggressive: 15},
	},
	schema.Partnership: {
		"trust_completely": {schema.LoyalTreacherous: 50},
		"watch_back":       {schema.LoyalTreacherous: 30},
		"cautious":         {schema.LoyalTreacherous: 10},
		"strike_first":     {schema.LoyalTreacherous: -50},
	},
	schema.MatchTempo: {
		"methodical":    {schema.DisciplinedAggressive: 30},
		"explosive":     {schema.DisciplinedAggressive: -20},
		"unpredictable": {schema.DisciplinedAggressive: -15},
	},
}

// turnAdjustments holds the trait shift applied when turning Face or Heel.
var turnAdjustments = map[schema.Alignment]schema.PersonalityTraits{
	schema.Face: {
		schema.PridefulEgotistical:     50,
		schema.RespectfulDisrespectful: 50,
		schema.PerseverantDesperate:    50,
		schema.LoyalTreacherous:        50,
		schema.BoldCowardly:            30,
		schema.DisciplinedAggressive:   30,
	},
	schema.Heel: {
		schema.PridefulEgotistical:     -50,
		schema.RespectfulDisrespectful: -50,
		schema.PerseverantDesperate:    -50,
		schema.LoyalTreacherous:        -50,
		schema.BoldCowardly:            -30,
		schema.DisciplinedAggressive:   -50,
	},
}

// Synthesize derives the six personality traits from questionnaire answers.
// Each trait receives a jitter in [-TraitJitter, TraitJitter] drawn from rng, then is clamped.
func Synthesize(answers schema.QuestionnaireAnswers, rng RandomSource) schema.PersonalityTraits {
	traits := make(schema.PersonalityTraits, len(schema.AllTraits))
	for _, t := range schema.AllTraits {
		traits[t] = 0
	}
	for question, options := range traitRules {
		for t, v := range options[answers[question]] {
			traits[t] += v
		}
	}
	for _, t := range schema.AllTraits {
		traits[t] = ClampTrait(traits[t] + rng.IntN(2*TraitJitter+1) - TraitJitter)
	}
	return traits
}

// AdjustTraits returns the traits after turning to align. A Tweener turn resets every trait to zero.
func AdjustTraits(current schema.PersonalityTraits, align schema.Alignment) schema.PersonalityTraits {
	out := make(schema.PersonalityTraits, len(schema.AllTraits))
	adj, ok := turnAdjustments[align]
	for _, t := range schema.AllTraits {
		if !ok {
			out[t] = 0
			continue
		}
		out[t] = ClampTrait(current[t] + adj[t])
	}
	return out
}

// ClampTrait bounds v to [TraitMin, TraitMax].
func ClampTrait(v int) int {
	return max(TraitMin, min(TraitMax, v))
}

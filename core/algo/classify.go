// Package algo has the pure classification, trait and progression rules.
package algo

import "github.com/huangsam/ringside/schema"

// answerScore is the contribution of one answer to the archetype accumulators and alignment.
type answerScore struct {
	archetype map[schema.Archetype]int
	alignment int
}

// classifyRules holds the scoring table for classification. Questions not listed contribute nothing.
var classifyRules = map[schema.QuestionKey]map[string]answerScore{
	schema.PhysicalBuild: {
		"towering": {archetype: map[schema.Archetype]int{schema.Giant: 4, schema.Powerhouse: 1}},
		"muscular": {archetype: map[schema.Archetype]int{schema.Powerhouse: 3, schema.Striker: 1}},
		"lean":     {archetype: map[schema.Archetype]int{schema.Technical: 2, schema.HighFlyer: 2}},
		"compact":  {archetype: map[schema.Archetype]int{schema.HighFlyer: 3, schema.Striker: 1}},
		"athletic": {archetype: map[schema.Archetype]int{schema.Technical: 2, schema.Powerhouse: 1, schema.Striker: 1}},
	},
	schema.InRingApproach: {
		"overpower": {archetype: map[schema.Archetype]int{schema.Powerhouse: 3, schema.Giant: 2}},
		"outthink":  {archetype: map[schema.Archetype]int{schema.Technical: 4}, alignment: 2},
		"outpace":   {archetype: map[schema.Archetype]int{schema.Striker: 2, schema.HighFlyer: 2}},
		"high_risk": {archetype: map[schema.Archetype]int{schema.HighFlyer: 4}, alignment: 1},
		"wear_down": {archetype: map[schema.Archetype]int{schema.Technical: 2, schema.Powerhouse: 2}},
	},
	schema.MatchTempo: {
		"fast_paced":    {archetype: map[schema.Archetype]int{schema.HighFlyer: 2, schema.Striker: 2}},
		"methodical":    {archetype: map[schema.Archetype]int{schema.Technical: 3}, alignment: 1},
		"explosive":     {archetype: map[schema.Archetype]int{schema.Powerhouse: 2, schema.Striker: 1}},
		"unpredictable": {archetype: map[schema.Archetype]int{schema.HighFlyer: 1, schema.Technical: 1}, alignment: -1},
	},
	schema.OpponentBehavior: {
		"respect": {alignment: 3},
		"mock":    {alignment: -3},
		"ignore":  {alignment: -1},
		"study":   {archetype: map[schema.Archetype]int{schema.Technical: 2}, alignment: 1},
	},
	schema.HandlingAdversity: {
		"fight_harder": {alignment: 2},
		"bend_rules":   {alignment: -3},
		"strategic":    {archetype: map[schema.Archetype]int{schema.Technical: 1}},
		"risk_it_all":  {archetype: map[schema.Archetype]int{schema.HighFlyer: 2}},
	},
	schema.CrowdReaction: {
		"inspire":    {alignment: 3},
		"provoke":    {alignment: -3},
		"entertain":  {archetype: map[schema.Archetype]int{schema.HighFlyer: 1}, alignment: 1},
		"intimidate": {archetype: map[schema.Archetype]int{schema.Giant: 1, schema.Powerhouse: 1}, alignment: -2},
	},
}

// alignmentThreshold is the score an alignment must exceed to leave Tweener.
const alignmentThreshold = 2

// Classify derives archetype, alignment and weight class from questionnaire answers.
// Missing questions and unknown options contribute nothing. Archetype ties go to the
// earliest entry of schema.AllArchetypes.
func Classify(answers schema.QuestionnaireAnswers) schema.ArchetypeResult {
	scores := make(map[schema.Archetype]int, len(schema.AllArchetypes))
	alignment := 0
	for question, options := range classifyRules {
		s, ok := options[answers[question]]
		if !ok {
			continue
		}
		for a, v := range s.archetype {
			scores[a] += v
		}
		alignment += s.alignment
	}

	archetype := schema.AllArchetypes[0]
	for _, a := range schema.AllArchetypes[1:] {
		if scores[a] > scores[archetype] {
			archetype = a
		}
	}

	return schema.ArchetypeResult{
		Archetype:   archetype,
		Alignment:   alignmentFor(alignment),
		WeightClass: WeightClassFor(archetype, answers[schema.PhysicalBuild]),
	}
}

func alignmentFor(score int) schema.Alignment {
	switch {
	case score > alignmentThreshold:
		return schema.Face
	case score < -alignmentThreshold:
		return schema.Heel
	default:
		return schema.Tweener
	}
}

// WeightClassFor maps an archetype and physical build to a weight class. Every archetype has a rule.
func WeightClassFor(a schema.Archetype, build string) schema.WeightClass {
	switch a {
	case schema.Giant:
		return schema.Ultraheavy
	case schema.Powerhouse:
		if build == "muscular" {
			return schema.Superheavy
		}
		return schema.Heavy
	case schema.Technical:
		if build == "muscular" || build == "athletic" {
			return schema.Heavy
		}
		return schema.Light
	case schema.HighFlyer:
		if build == "compact" {
			return schema.Cruiser
		}
		return schema.Light
	case schema.Striker:
		if build == "lean" || build == "athletic" {
			return schema.Light
		}
		return schema.Heavy
	default:
		return schema.Heavy
	}
}

package cmd

import (
	"math/rand/v2"
	"strings"

	"github.com/huangsam/ringside/core"
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/internal/outwriter"
	"github.com/huangsam/ringside/schema"
	"github.com/spf13/cobra"
)

// questionFlag maps a questionnaire key such as physical_build to its flag name.
func questionFlag(q schema.QuestionKey) string {
	return strings.ReplaceAll(string(q), "_", "-")
}

// classifyCmd runs the trait engine on a questionnaire.
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a questionnaire into archetype, alignment, traits and moves",
	Long: `Run the questionnaire through the trait engine without saving anything.

Prints:
- Archetype, alignment and weight class
- Personality traits
- Personas that fit the classification
- Recommended moves per move category, best first

Unanswered questions are allowed and fall back to neutral defaults.

Examples:
  # A brawling giant
  ringside classify --physical-build towering --in-ring-approach overpower

  # Fix the seed for repeatable traits
  ringside classify --physical-build lean --seed 42 --output json`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return configSetup()
	},
	Run: func(cmd *cobra.Command, _ []string) {
		answers := schema.QuestionnaireAnswers{}
		for _, q := range schema.AllQuestions {
			if v, _ := cmd.Flags().GetString(questionFlag(q)); v != "" {
				answers[q] = strings.ToLower(strings.TrimSpace(v))
			}
		}
		if err := core.ValidateAnswers(answers); err != nil {
			contract.LogFatal("Invalid questionnaire", err)
		}
		catalog, err := loadCatalog()
		if err != nil {
			contract.LogFatal("Cannot load catalog", err)
		}
		seed, _ := cmd.Flags().GetUint64("seed")
		if seed == 0 {
			seed = rand.Uint64()
		}
		p := core.Profile(catalog, answers, rand.New(rand.NewPCG(seed, seed)))
		if err := outwriter.WriteProfile(p, cfg); err != nil {
			contract.LogFatal("Cannot write profile", err)
		}
	},
}

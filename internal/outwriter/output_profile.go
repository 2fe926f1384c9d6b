package outwriter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// WriteProfile outputs a questionnaire classification with traits and move suggestions.
func WriteProfile(p schema.WrestlerProfile, cfg *contract.Config) error {
	r := report{
		kind:    "profile",
		data:    p,
		headers: []string{"Section", "Item", "Value"},
	}
	add := func(section, item, text, plain string) {
		r.rows = append(r.rows, []string{section, item, text})
		r.csvRows = append(r.csvRows, []string{section, item, plain})
	}
	add("Class", "Archetype", string(p.Archetype), string(p.Archetype))
	add("Class", "Alignment", contract.GetAlignmentLabel(p.Alignment), string(p.Alignment))
	add("Class", "Weight Class", string(p.WeightClass), string(p.WeightClass))
	personas := strings.Join(p.Personas, ", ")
	add("Class", "Personas", personas, personas)

	for _, t := range schema.AllTraits {
		v := p.Traits[t]
		add("Trait", schema.TraitDisplayName(t), fmt.Sprintf("%+d %s", v, schema.TraitLean(t, v)), fmt.Sprint(v))
	}

	categories := make([]string, 0, len(p.Recommendations))
	for name := range p.Recommendations {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	width := getMaxNameWidth(cfg, 1, 40)
	for _, name := range categories {
		moves := strings.Join(p.Recommendations[name], ", ")
		add("Moves", name, contract.TruncateText(moves, width*2), moves)
	}
	return writeReport(r, cfg)
}

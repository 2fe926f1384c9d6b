package outwriter

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

var rosterHeaders = []string{"ID", "Name", "Level", "Alignment", "Archetype", "Weight Class", "Record", "Currency", "Status"}

// WriteRoster outputs a guild's wrestlers.
func WriteRoster(wrestlers []schema.Wrestler, cfg *contract.Config) error {
	nameWidth := getMaxNameWidth(cfg, 1, 75)
	r := report{kind: "wrestlers", data: wrestlers, headers: rosterHeaders}
	for i := range wrestlers {
		w := &wrestlers[i]
		r.rows = append(r.rows, []string{
			strconv.FormatInt(w.ID, 10),
			contract.TruncateText(w.Name, nameWidth),
			contract.GetLevelBadge(w.Level),
			contract.GetAlignmentLabel(w.Alignment),
			string(w.Archetype),
			string(w.WeightClass),
			w.Record(),
			schema.FormatThousands(w.Currency),
			wrestlerStatus(w),
		})
		r.csvRows = append(r.csvRows, []string{
			strconv.FormatInt(w.ID, 10),
			w.Name,
			strconv.Itoa(w.Level),
			string(w.Alignment),
			string(w.Archetype),
			string(w.WeightClass),
			w.Record(),
			strconv.Itoa(w.Currency),
			wrestlerStatus(w),
		})
	}
	r.footer = fmt.Sprintf("Showing %d wrestlers", len(wrestlers))
	return writeReport(r, cfg)
}

func wrestlerStatus(w *schema.Wrestler) string {
	switch {
	case w.Retired:
		return "retired"
	case w.Inactive:
		return "inactive"
	default:
		return "active"
	}
}

// wrestlerDetail is the structured payload of a single wrestler.
type wrestlerDetail struct {
	schema.Wrestler
	Progress schema.LevelProgress `json:"progress"`
}

// WriteWrestler outputs one wrestler as a field/value sheet.
func WriteWrestler(w schema.Wrestler, progress schema.LevelProgress, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	r := report{
		kind:    "wrestler",
		data:    wrestlerDetail{Wrestler: w, Progress: progress},
		headers: []string{"Field", "Value"},
	}
	add := func(field, text, plain string) {
		r.rows = append(r.rows, []string{field, text})
		r.csvRows = append(r.csvRows, []string{field, plain})
	}
	add("Name", w.Name, w.Name)
	add("Alignment", contract.GetAlignmentLabel(w.Alignment), string(w.Alignment))
	add("Archetype", string(w.Archetype), string(w.Archetype))
	add("Persona", w.Persona, w.Persona)
	add("Gender", string(w.Gender), string(w.Gender))
	add("Weight Class", string(w.WeightClass), string(w.WeightClass))
	add("Height", fmt.Sprintf("%s (%d cm)", w.HeightFeet, w.HeightCm), strconv.Itoa(w.HeightCm))
	add("Body Type", w.BodyType, w.BodyType)
	add("Finisher", w.Finisher, w.Finisher)
	add("Signature", w.Signature, w.Signature)

	level := fmt.Sprintf("%s, %s XP", contract.GetLevelBadge(w.Level), schema.FormatThousands(w.XP))
	if !progress.MaxLevel {
		level += fmt.Sprintf(" (%s%% to next)", fmtFloat(progress.Percent))
	}
	add("Level", level, strconv.Itoa(w.Level))
	add("Record", fmt.Sprintf("%s (%s%%)", w.Record(), fmtFloat(w.WinRate())), w.Record())
	add("Currency", schema.FormatThousands(w.Currency), strconv.Itoa(w.Currency))
	add("Daily Streak", fmt.Sprintf("%d (best %d)", w.DailyStreak, w.LongestStreak), strconv.Itoa(w.DailyStreak))
	add("Status", wrestlerStatus(&w), wrestlerStatus(&w))

	attrs := make([]string, 0, len(w.Attributes))
	for name := range w.Attributes {
		attrs = append(attrs, name)
	}
	sort.Strings(attrs)
	for _, name := range attrs {
		v := strconv.Itoa(w.Attributes[name])
		add(name, v, v)
	}
	for _, t := range schema.AllTraits {
		v, ok := w.Personality[t]
		if !ok {
			continue
		}
		add(schema.TraitDisplayName(t), fmt.Sprintf("%+d %s", v, schema.TraitLean(t, v)), strconv.Itoa(v))
	}
	for _, former := range w.FormerNames {
		add("Former Name", former, former)
	}
	return writeReport(r, cfg)
}

package outwriter

import (
	"strconv"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// WriteChampions outputs every championship of a guild with its current holders.
func WriteChampions(views []schema.ChampionView, cfg *contract.Config) error {
	width := getMaxNameWidth(cfg, 2, 50)
	r := report{
		kind:    "championships",
		data:    views,
		headers: []string{"ID", "Championship", "Division", "Champion", "Since", "Defenses"},
	}
	for _, v := range views {
		c := v.Championship
		since, defenses := "-", "-"
		var sinceTS string
		if v.Reign != nil {
			since = formatDate(&v.Reign.WonDate)
			sinceTS = formatTimestamp(&v.Reign.WonDate)
			defenses = strconv.Itoa(v.Reign.Defenses)
		}
		holder := v.HolderNames()
		text := contract.ChampColor.Sprint(contract.TruncateText(holder, width))
		if c.Vacant() {
			text = contract.MutedColor.Sprint(holder)
		}
		r.rows = append(r.rows, []string{
			strconv.FormatInt(c.ID, 10),
			contract.TruncateText(c.Name, width),
			division(c),
			text,
			since,
			defenses,
		})
		r.csvRows = append(r.csvRows, []string{
			strconv.FormatInt(c.ID, 10), c.Name, division(c), holder, sinceTS, defenses,
		})
	}
	return writeReport(r, cfg)
}

// division describes who may hold a championship, e.g. "Female Cruiser Tag".
func division(c schema.Championship) string {
	s := string(c.Gender)
	if c.WeightClass != schema.AllWeights {
		s += " " + string(c.WeightClass)
	}
	if c.TagTeam {
		s += " Tag"
	}
	return s
}

// WriteTitleHistory outputs the reigns of one championship, newest first.
func WriteTitleHistory(c schema.Championship, reigns []schema.TitleReign, names map[int64]string, cfg *contract.Config) error {
	r := report{
		kind:    "reigns",
		data:    map[string]any{"championship": c, "reigns": reigns},
		headers: []string{"Reign", "Champion", "Won", "Lost", "Days", "Defenses"},
	}
	for i := range reigns {
		reign := &reigns[i]
		holders := formatNames(reign.WrestlerIDs, names, " & ")
		lost, days := formatDate(reign.LostDate), strconv.Itoa(reign.DaysHeld)
		text := holders
		if reign.IsCurrent {
			lost, days = "current", "-"
			text = contract.ChampColor.Sprint(holders)
		}
		r.rows = append(r.rows, []string{
			strconv.Itoa(reign.ReignNumber), text, formatDate(&reign.WonDate), lost, days, strconv.Itoa(reign.Defenses),
		})
		r.csvRows = append(r.csvRows, []string{
			strconv.Itoa(reign.ReignNumber), holders, formatTimestamp(&reign.WonDate), formatTimestamp(reign.LostDate),
			strconv.Itoa(reign.DaysHeld), strconv.Itoa(reign.Defenses),
		})
	}
	r.footer = c.Name + " lineage"
	return writeReport(r, cfg)
}

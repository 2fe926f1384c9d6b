package outwriter

import (
	"fmt"
	"strconv"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// WriteUpgrades outputs upgrade queue entries.
func WriteUpgrades(entries []schema.UpgradeEntry, cfg *contract.Config) error {
	r := report{
		kind:    "queued upgrades",
		data:    entries,
		headers: []string{"ID", "Wrestler", "Attribute", "Old", "New", "Cost", "Queued", "Processed"},
	}
	total := 0
	for i := range entries {
		e := &entries[i]
		total += e.Cost
		r.rows = append(r.rows, []string{
			strconv.FormatInt(e.ID, 10), e.WrestlerName, e.Attribute, strconv.Itoa(e.OldValue), strconv.Itoa(e.NewValue),
			schema.FormatThousands(e.Cost), formatDate(&e.CreatedAt), formatDate(e.ProcessedAt),
		})
		r.csvRows = append(r.csvRows, []string{
			strconv.FormatInt(e.ID, 10), e.WrestlerName, e.Attribute, strconv.Itoa(e.OldValue), strconv.Itoa(e.NewValue),
			strconv.Itoa(e.Cost), formatTimestamp(&e.CreatedAt), formatTimestamp(e.ProcessedAt),
		})
	}
	r.footer = fmt.Sprintf("%d upgrades, %s spent", len(entries), schema.FormatThousands(total))
	return writeReport(r, cfg)
}

// WriteSweep outputs the wrestlers flagged or warned by inactivity sweeps.
func WriteSweep(reports []schema.InactivityReport, cfg *contract.Config) error {
	r := report{
		kind:    "inactive wrestlers",
		data:    reports,
		headers: []string{"Guild", "Wrestler", "Owner", "Days Idle", "Action", "Champion"},
	}
	for _, rep := range reports {
		for _, n := range rep.Inactive {
			r.rows = append(r.rows, sweepRow(rep.GuildID, n, contract.HeelColor.Sprint("inactive")))
			r.csvRows = append(r.csvRows, sweepRow(rep.GuildID, n, "inactive"))
		}
		for _, n := range rep.Warnings {
			action := fmt.Sprintf("warned (%d days left)", n.DaysRemaining)
			r.rows = append(r.rows, sweepRow(rep.GuildID, n, contract.TweenerColor.Sprint(action)))
			r.csvRows = append(r.csvRows, sweepRow(rep.GuildID, n, action))
		}
	}
	r.footer = fmt.Sprintf("Swept %d guilds", len(reports))
	return writeReport(r, cfg)
}

func sweepRow(guild string, n schema.InactivityNotice, action string) []string {
	return []string{guild, n.Name, n.UserID, strconv.Itoa(n.DaysInactive), action, yesNo(n.IsChampion)}
}

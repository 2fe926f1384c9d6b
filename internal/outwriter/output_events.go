package outwriter

import (
	"fmt"
	"strconv"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// WriteEvents outputs a guild's event instances.
func WriteEvents(events []schema.EventInstance, cfg *contract.Config) error {
	r := report{
		kind:    "events",
		data:    events,
		headers: []string{"ID", "Name", "Status", "Scheduled", "Completed"},
	}
	for i := range events {
		ev := &events[i]
		r.rows = append(r.rows, []string{
			strconv.FormatInt(ev.ID, 10), ev.Name, string(ev.Status), formatDate(ev.ScheduledAt), formatDate(ev.CompletedAt),
		})
		r.csvRows = append(r.csvRows, []string{
			strconv.FormatInt(ev.ID, 10), ev.Name, string(ev.Status), formatTimestamp(ev.ScheduledAt), formatTimestamp(ev.CompletedAt),
		})
	}
	return writeReport(r, cfg)
}

// eventCard is the structured payload of an event and its card.
type eventCard struct {
	Event schema.EventInstance `json:"event"`
	Card  []schema.CardMatch   `json:"card"`
}

// WriteCard outputs an event card in running order.
func WriteCard(ev schema.EventInstance, card []schema.CardMatch, names map[int64]string, cfg *contract.Config) error {
	width := getMaxNameWidth(cfg, 1, 50)
	r := report{
		kind:    "card matches",
		data:    eventCard{Event: ev, Card: card},
		headers: []string{"#", "ID", "Match", "Participants", "Open Spots", "Status"},
	}
	for i := range card {
		c := &card[i]
		kind := c.MatchType
		if c.MainEvent {
			kind = contract.ChampColor.Sprint("⭐ " + kind)
		}
		participants := formatNames(c.ParticipantIDs, names, " vs ")
		if participants == "" {
			participants = "TBD"
		}
		r.rows = append(r.rows, []string{
			strconv.Itoa(c.Position), strconv.FormatInt(c.ID, 10), kind,
			contract.TruncateText(participants, width), strconv.Itoa(c.OpenSpots), string(c.Status),
		})
		r.csvRows = append(r.csvRows, []string{
			strconv.Itoa(c.Position), strconv.FormatInt(c.ID, 10), c.MatchType,
			participants, strconv.Itoa(c.OpenSpots), string(c.Status),
		})
	}
	r.footer = fmt.Sprintf("%s (%s)", ev.Name, ev.Status)
	return writeReport(r, cfg)
}

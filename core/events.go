package core

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// CreateEventTemplate adds a recurring show. Type "Event" numbers its instances with Roman
// numerals, every other type with "#N".
func (l *League) CreateEventTemplate(ctx context.Context, guildID, name, eventType string) (schema.EventTemplate, error) {
	name, err := validateName("event", name)
	if err != nil {
		return schema.EventTemplate{}, err
	}
	eventType = strings.TrimSpace(eventType)
	if eventType == "" {
		eventType = schema.EventTypeNumbered
	}
	t := schema.EventTemplate{GuildID: guildID, Name: name, EventType: eventType, CreatedAt: l.now()}
	if _, err := l.store.CreateEventTemplate(ctx, &t); err != nil {
		return schema.EventTemplate{}, err
	}
	return t, nil
}

// CreateEventInstance books the next occurrence of a template.
func (l *League) CreateEventInstance(ctx context.Context, guildID string, templateID int64, scheduledAt *time.Time) (schema.EventInstance, error) {
	var ev schema.EventInstance
	err := l.store.InTx(ctx, func(tx contract.LeagueStore) error {
		t, err := tx.GetEventTemplate(ctx, templateID)
		if err != nil {
			return err
		}
		if t.GuildID != guildID {
			return fmt.Errorf("event template %d: %w", templateID, contract.ErrNotFound)
		}
		prior, err := tx.CountEventInstances(ctx, t.ID)
		if err != nil {
			return err
		}
		ev = schema.EventInstance{
			TemplateID:  t.ID,
			GuildID:     guildID,
			Name:        schema.EventInstanceName(t.Name, t.EventType, prior+1),
			Number:      prior + 1,
			Status:      schema.EventPlanned,
			ScheduledAt: scheduledAt,
			CreatedAt:   l.now(),
		}
		_, err = tx.CreateEventInstance(ctx, &ev)
		return err
	})
	return ev, err
}

// Events lists a guild's events. An empty status lists all of them.
func (l *League) Events(ctx context.Context, guildID string, status schema.EventStatus) ([]schema.EventInstance, error) {
	return l.store.ListEventInstances(ctx, guildID, status)
}

// StartEvent moves a planned event to ongoing.
func (l *League) StartEvent(ctx context.Context, guildID string, eventID int64) error {
	return l.transition(ctx, guildID, eventID, schema.EventOngoing, nil, schema.EventPlanned)
}

// CloseEvent closes a planned or ongoing event.
func (l *League) CloseEvent(ctx context.Context, guildID string, eventID int64) error {
	now := l.now()
	return l.transition(ctx, guildID, eventID, schema.EventClosed, &now, schema.EventPlanned, schema.EventOngoing)
}

func (l *League) transition(ctx context.Context, guildID string, eventID int64, to schema.EventStatus, completedAt *time.Time, from ...schema.EventStatus) error {
	return l.store.InTx(ctx, func(tx contract.LeagueStore) error {
		ev, err := guildEvent(ctx, tx, guildID, eventID)
		if err != nil {
			return err
		}
		if !slices.Contains(from, ev.Status) {
			return fmt.Errorf("%w: %s is %s and cannot become %s", contract.ErrInvalidState, ev.Name, ev.Status, to)
		}
		return tx.UpdateEventStatus(ctx, ev.ID, to, completedAt)
	})
}

// CardInput carries a new slot on an event card.
type CardInput struct {
	MatchType      string
	ParticipantIDs []int64
	OpenSpots      int
	MainEvent      bool
}

// AddCardMatch appends a match to an event card.
func (l *League) AddCardMatch(ctx context.Context, guildID string, eventID int64, in CardInput) (schema.CardMatch, error) {
	if strings.TrimSpace(in.MatchType) == "" {
		return schema.CardMatch{}, fmt.Errorf("%w: match type is required", contract.ErrInvalidInput)
	}
	if in.OpenSpots < 0 {
		return schema.CardMatch{}, fmt.Errorf("%w: open spots cannot be negative", contract.ErrInvalidInput)
	}
	var c schema.CardMatch
	err := l.store.InTx(ctx, func(tx contract.LeagueStore) error {
		ev, err := guildEvent(ctx, tx, guildID, eventID)
		if err != nil {
			return err
		}
		if ev.Status == schema.EventClosed {
			return fmt.Errorf("%w: %s is closed", contract.ErrInvalidState, ev.Name)
		}
		if _, err := loadWrestlers(ctx, tx, guildID, in.ParticipantIDs); err != nil {
			return err
		}
		card, err := tx.ListCardMatches(ctx, ev.ID)
		if err != nil {
			return err
		}
		c = schema.CardMatch{
			EventID:        ev.ID,
			Position:       len(card) + 1,
			MatchType:      strings.TrimSpace(in.MatchType),
			ParticipantIDs: slices.Clone(in.ParticipantIDs),
			OpenSpots:      in.OpenSpots,
			MainEvent:      in.MainEvent,
			Status:         schema.CardPending,
		}
		_, err = tx.CreateCardMatch(ctx, &c)
		return err
	})
	return c, err
}

// ApplyToCard takes an open spot on a card match for a wrestler, first come first served.
func (l *League) ApplyToCard(ctx context.Context, actor Actor, guildID string, cardMatchID, wrestlerID int64) (schema.CardMatch, error) {
	var c schema.CardMatch
	err := l.store.InTx(ctx, func(tx contract.LeagueStore) error {
		var err error
		if c, err = tx.GetCardMatch(ctx, cardMatchID); err != nil {
			return err
		}
		ev, err := guildEvent(ctx, tx, guildID, c.EventID)
		if err != nil {
			return err
		}
		if ev.Status == schema.EventClosed || c.Status != schema.CardPending {
			return fmt.Errorf("%w: this match is no longer taking applications", contract.ErrInvalidState)
		}
		w, err := ownedWrestler(ctx, tx, actor, guildID, wrestlerID)
		if err != nil {
			return err
		}
		if w.Retired {
			return fmt.Errorf("%w: %s is retired", contract.ErrInvalidState, w.Name)
		}
		if slices.Contains(c.ParticipantIDs, w.ID) {
			return fmt.Errorf("%w: %s is already on this match", contract.ErrDuplicate, w.Name)
		}
		if c.OpenSpots <= 0 {
			return contract.ErrNoSpots
		}
		c.ParticipantIDs = append(c.ParticipantIDs, w.ID)
		c.OpenSpots--
		return tx.UpdateCardMatch(ctx, &c)
	})
	return c, err
}

// EventCard returns an event's card in position order.
func (l *League) EventCard(ctx context.Context, guildID string, eventID int64) (schema.EventInstance, []schema.CardMatch, error) {
	ev, err := guildEvent(ctx, l.store, guildID, eventID)
	if err != nil {
		return ev, nil, err
	}
	card, err := l.store.ListCardMatches(ctx, eventID)
	return ev, card, err
}

func guildEvent(ctx context.Context, store contract.LeagueStore, guildID string, id int64) (schema.EventInstance, error) {
	ev, err := store.GetEventInstance(ctx, id)
	if err != nil {
		return ev, err
	}
	if ev.GuildID != guildID {
		return schema.EventInstance{}, fmt.Errorf("event %d: %w", id, contract.ErrNotFound)
	}
	return ev, nil
}

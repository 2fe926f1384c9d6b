// Package contract provides interfaces and shared utilities for ringside's internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/ringside/schema"
)

// StoreManager defines the interface for reaching the league store.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetLeagueStore() LeagueStore
}

// LeagueStore defines the persistence operations of the league.
// Lookups of missing rows return ErrNotFound. Unique violations return ErrDuplicate.
type LeagueStore interface {
	// --- Transactions ---

	// InTx runs fn against a store bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(tx LeagueStore) error) error

	// --- Settings ---

	GetSettings(ctx context.Context, guildID string) (schema.ServerSettings, error)
	SaveSettings(ctx context.Context, s schema.ServerSettings) error
	ListSettings(ctx context.Context) ([]schema.ServerSettings, error)
	GetUserLimit(ctx context.Context, guildID, userID string) (int, error)
	SetUserLimit(ctx context.Context, guildID, userID string, limit int) error
	GetCurrencyCooldown(ctx context.Context, guildID, userID string) (time.Time, error)
	SetCurrencyCooldown(ctx context.Context, guildID, userID string, at time.Time) error

	// --- Wrestlers ---

	CreateWrestler(ctx context.Context, w *schema.Wrestler) (int64, error)
	GetWrestler(ctx context.Context, id int64) (schema.Wrestler, error)

	// FindWrestler looks a wrestler up by name within a guild, ignoring case.
	FindWrestler(ctx context.Context, guildID, name string) (schema.Wrestler, error)

	// ListWrestlers returns a guild's roster in creation order.
	ListWrestlers(ctx context.Context, guildID string, includeRetired bool) ([]schema.Wrestler, error)

	// ListUserWrestlers returns every wrestler a user owns in a guild, retired ones included.
	ListUserWrestlers(ctx context.Context, guildID, userID string) ([]schema.Wrestler, error)

	// UpdateWrestler persists every mutable field of w except currency.
	UpdateWrestler(ctx context.Context, w *schema.Wrestler) error

	// AdjustCurrency adds delta to a wrestler's balance and returns the new balance.
	// A debit larger than the balance fails with ErrInsufficientFunds and changes nothing.
	AdjustCurrency(ctx context.Context, wrestlerID int64, delta int) (int, error)

	// TakenMoves returns finishers and signatures held by active (non-retired) wrestlers,
	// skipping exceptID.
	TakenMoves(ctx context.Context, guildID string, exceptID int64) (map[string]struct{}, error)

	// TouchUserActivity stamps a user's non-retired wrestlers active at the given time
	// and returns how many of them were inactive before.
	TouchUserActivity(ctx context.Context, guildID, userID string, at time.Time) (int, error)

	SetInactive(ctx context.Context, wrestlerID int64, inactive bool) error

	// --- Upgrade queue ---

	EnqueueUpgrade(ctx context.Context, e *schema.UpgradeEntry) (int64, error)
	ListUpgrades(ctx context.Context, guildID string, pendingOnly bool) ([]schema.UpgradeEntry, error)
	MarkUpgradesProcessed(ctx context.Context, ids []int64, at time.Time) error

	// --- Championships ---

	CreateChampionship(ctx context.Context, c *schema.Championship) (int64, error)
	GetChampionship(ctx context.Context, id int64) (schema.Championship, error)
	FindChampionship(ctx context.Context, guildID, name string) (schema.Championship, error)
	ListChampionships(ctx context.Context, guildID string) ([]schema.Championship, error)
	SetChampions(ctx context.Context, championshipID int64, wrestlerIDs []int64) error

	// CurrentReign returns the open reign of a championship.
	CurrentReign(ctx context.Context, championshipID int64) (schema.TitleReign, error)
	CountReigns(ctx context.Context, championshipID int64) (int, error)
	StartReign(ctx context.Context, r *schema.TitleReign) (int64, error)
	EndReign(ctx context.Context, reignID int64, lostAt time.Time, daysHeld int) error
	AddDefense(ctx context.Context, reignID int64) error

	// ListReigns returns a championship's reigns, newest first.
	ListReigns(ctx context.Context, championshipID int64) ([]schema.TitleReign, error)

	// ListGuildReigns returns every reign of every championship in a guild, newest first.
	ListGuildReigns(ctx context.Context, guildID string) ([]schema.TitleReign, error)

	// --- Matches ---

	CreateMatch(ctx context.Context, m *schema.Match) (int64, error)

	// ListMatches returns a guild's matches newest first. A non-positive limit returns all.
	ListMatches(ctx context.Context, guildID string, limit int) ([]schema.Match, error)

	// ListWrestlerMatches returns the matches a wrestler took part in, newest first.
	ListWrestlerMatches(ctx context.Context, wrestlerID int64, limit int) ([]schema.Match, error)

	// --- Events ---

	CreateEventTemplate(ctx context.Context, t *schema.EventTemplate) (int64, error)
	GetEventTemplate(ctx context.Context, id int64) (schema.EventTemplate, error)
	FindEventTemplate(ctx context.Context, guildID, name string) (schema.EventTemplate, error)
	ListEventTemplates(ctx context.Context, guildID string) ([]schema.EventTemplate, error)
	CountEventInstances(ctx context.Context, templateID int64) (int, error)
	CreateEventInstance(ctx context.Context, e *schema.EventInstance) (int64, error)
	GetEventInstance(ctx context.Context, id int64) (schema.EventInstance, error)

	// ListEventInstances returns a guild's events in creation order. An empty status returns all.
	ListEventInstances(ctx context.Context, guildID string, status schema.EventStatus) ([]schema.EventInstance, error)
	UpdateEventStatus(ctx context.Context, id int64, status schema.EventStatus, completedAt *time.Time) error
	CreateCardMatch(ctx context.Context, c *schema.CardMatch) (int64, error)
	GetCardMatch(ctx context.Context, id int64) (schema.CardMatch, error)

	// ListCardMatches returns an event's card in position order.
	ListCardMatches(ctx context.Context, eventID int64) ([]schema.CardMatch, error)
	UpdateCardMatch(ctx context.Context, c *schema.CardMatch) error

	// --- Rivalries ---

	CreateRivalry(ctx context.Context, r *schema.Rivalry) (int64, error)
	GetRivalry(ctx context.Context, id int64) (schema.Rivalry, error)
	ListRivalries(ctx context.Context, guildID string, activeOnly bool) ([]schema.Rivalry, error)

	// ActiveRivalry returns the open rivalry a wrestler is part of.
	ActiveRivalry(ctx context.Context, wrestlerID int64) (schema.Rivalry, error)
	UpdateRivalry(ctx context.Context, r *schema.Rivalry) error

	// --- Turns ---

	RecordTurn(ctx context.Context, t *schema.TurnRecord) (int64, error)
	ListTurns(ctx context.Context, wrestlerID int64) ([]schema.TurnRecord, error)

	// --- Maintenance ---

	// GetStatus returns status information about the store.
	GetStatus(ctx context.Context) (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

package leaguedb

import (
	"context"
	"time"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetLeagueStore implements the StoreManager interface.
func (m *MockStoreManager) GetLeagueStore() contract.LeagueStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.LeagueStore)
	return store
}

// MockLeagueStore is a mock implementation of LeagueStore for testing.
// InTx runs the callback against the mock itself.
type MockLeagueStore struct {
	mock.Mock
}

var _ contract.LeagueStore = &MockLeagueStore{} // Compile-time check

// InTx implements the LeagueStore interface.
func (m *MockLeagueStore) InTx(_ context.Context, fn func(tx contract.LeagueStore) error) error {
	return fn(m)
}

// GetSettings implements the LeagueStore interface.
func (m *MockLeagueStore) GetSettings(ctx context.Context, guildID string) (schema.ServerSettings, error) {
	args := m.Called(guildID)
	return args.Get(0).(schema.ServerSettings), args.Error(1)
}

// SaveSettings implements the LeagueStore interface.
func (m *MockLeagueStore) SaveSettings(ctx context.Context, s schema.ServerSettings) error {
	args := m.Called(s)
	return args.Error(0)
}

// ListSettings implements the LeagueStore interface.
func (m *MockLeagueStore) ListSettings(ctx context.Context) ([]schema.ServerSettings, error) {
	args := m.Called()
	return args.Get(0).([]schema.ServerSettings), args.Error(1)
}

// GetUserLimit implements the LeagueStore interface.
func (m *MockLeagueStore) GetUserLimit(ctx context.Context, guildID, userID string) (int, error) {
	args := m.Called(guildID, userID)
	return args.Int(0), args.Error(1)
}

// SetUserLimit implements the LeagueStore interface.
func (m *MockLeagueStore) SetUserLimit(ctx context.Context, guildID, userID string, limit int) error {
	args := m.Called(guildID, userID, limit)
	return args.Error(0)
}

// GetCurrencyCooldown implements the LeagueStore interface.
func (m *MockLeagueStore) GetCurrencyCooldown(ctx context.Context, guildID, userID string) (time.Time, error) {
	args := m.Called(guildID, userID)
	return args.Get(0).(time.Time), args.Error(1)
}

// SetCurrencyCooldown implements the LeagueStore interface.
func (m *MockLeagueStore) SetCurrencyCooldown(ctx context.Context, guildID, userID string, at time.Time) error {
	args := m.Called(guildID, userID, at)
	return args.Error(0)
}

// CreateWrestler implements the LeagueStore interface.
func (m *MockLeagueStore) CreateWrestler(ctx context.Context, w *schema.Wrestler) (int64, error) {
	args := m.Called(w)
	return args.Get(0).(int64), args.Error(1)
}

// GetWrestler implements the LeagueStore interface.
func (m *MockLeagueStore) GetWrestler(ctx context.Context, id int64) (schema.Wrestler, error) {
	args := m.Called(id)
	return args.Get(0).(schema.Wrestler), args.Error(1)
}

// FindWrestler implements the LeagueStore interface.
func (m *MockLeagueStore) FindWrestler(ctx context.Context, guildID, name string) (schema.Wrestler, error) {
	args := m.Called(guildID, name)
	return args.Get(0).(schema.Wrestler), args.Error(1)
}

// ListWrestlers implements the LeagueStore interface.
func (m *MockLeagueStore) ListWrestlers(ctx context.Context, guildID string, includeRetired bool) ([]schema.Wrestler, error) {
	args := m.Called(guildID, includeRetired)
	return args.Get(0).([]schema.Wrestler), args.Error(1)
}

// ListUserWrestlers implements the LeagueStore interface.
func (m *MockLeagueStore) ListUserWrestlers(ctx context.Context, guildID, userID string) ([]schema.Wrestler, error) {
	args := m.Called(guildID, userID)
	return args.Get(0).([]schema.Wrestler), args.Error(1)
}

// UpdateWrestler implements the LeagueStore interface.
func (m *MockLeagueStore) UpdateWrestler(ctx context.Context, w *schema.Wrestler) error {
	args := m.Called(w)
	return args.Error(0)
}

// AdjustCurrency implements the LeagueStore interface.
func (m *MockLeagueStore) AdjustCurrency(ctx context.Context, wrestlerID int64, delta int) (int, error) {
	args := m.Called(wrestlerID, delta)
	return args.Int(0), args.Error(1)
}

// TakenMoves implements the LeagueStore interface.
func (m *MockLeagueStore) TakenMoves(ctx context.Context, guildID string, exceptID int64) (map[string]struct{}, error) {
	args := m.Called(guildID, exceptID)
	return args.Get(0).(map[string]struct{}), args.Error(1)
}

// TouchUserActivity implements the LeagueStore interface.
func (m *MockLeagueStore) TouchUserActivity(ctx context.Context, guildID, userID string, at time.Time) (int, error) {
	args := m.Called(guildID, userID, at)
	return args.Int(0), args.Error(1)
}

// SetInactive implements the LeagueStore interface.
func (m *MockLeagueStore) SetInactive(ctx context.Context, wrestlerID int64, inactive bool) error {
	args := m.Called(wrestlerID, inactive)
	return args.Error(0)
}

// EnqueueUpgrade implements the LeagueStore interface.
func (m *MockLeagueStore) EnqueueUpgrade(ctx context.Context, e *schema.UpgradeEntry) (int64, error) {
	args := m.Called(e)
	return args.Get(0).(int64), args.Error(1)
}

// ListUpgrades implements the LeagueStore interface.
func (m *MockLeagueStore) ListUpgrades(ctx context.Context, guildID string, pendingOnly bool) ([]schema.UpgradeEntry, error) {
	args := m.Called(guildID, pendingOnly)
	return args.Get(0).([]schema.UpgradeEntry), args.Error(1)
}

// MarkUpgradesProcessed implements the LeagueStore interface.
func (m *MockLeagueStore) MarkUpgradesProcessed(ctx context.Context, ids []int64, at time.Time) error {
	args := m.Called(ids, at)
	return args.Error(0)
}

// CreateChampionship implements the LeagueStore interface.
func (m *MockLeagueStore) CreateChampionship(ctx context.Context, c *schema.Championship) (int64, error) {
	args := m.Called(c)
	return args.Get(0).(int64), args.Error(1)
}

// GetChampionship implements the LeagueStore interface.
func (m *MockLeagueStore) GetChampionship(ctx context.Context, id int64) (schema.Championship, error) {
	args := m.Called(id)
	return args.Get(0).(schema.Championship), args.Error(1)
}

// FindChampionship implements the LeagueStore interface.
func (m *MockLeagueStore) FindChampionship(ctx context.Context, guildID, name string) (schema.Championship, error) {
	args := m.Called(guildID, name)
	return args.Get(0).(schema.Championship), args.Error(1)
}

// ListChampionships implements the LeagueStore interface.
func (m *MockLeagueStore) ListChampionships(ctx context.Context, guildID string) ([]schema.Championship, error) {
	args := m.Called(guildID)
	return args.Get(0).([]schema.Championship), args.Error(1)
}

// SetChampions implements the LeagueStore interface.
func (m *MockLeagueStore) SetChampions(ctx context.Context, championshipID int64, wrestlerIDs []int64) error {
	args := m.Called(championshipID, wrestlerIDs)
	return args.Error(0)
}

// CurrentReign implements the LeagueStore interface.
func (m *MockLeagueStore) CurrentReign(ctx context.Context, championshipID int64) (schema.TitleReign, error) {
	args := m.Called(championshipID)
	return args.Get(0).(schema.TitleReign), args.Error(1)
}

// CountReigns implements the LeagueStore interface.
func (m *MockLeagueStore) CountReigns(ctx context.Context, championshipID int64) (int, error) {
	args := m.Called(championshipID)
	return args.Int(0), args.Error(1)
}

// StartReign implements the LeagueStore interface.
func (m *MockLeagueStore) StartReign(ctx context.Context, r *schema.TitleReign) (int64, error) {
	args := m.Called(r)
	return args.Get(0).(int64), args.Error(1)
}

// EndReign implements the LeagueStore interface.
func (m *MockLeagueStore) EndReign(ctx context.Context, reignID int64, lostAt time.Time, daysHeld int) error {
	args := m.Called(reignID, lostAt, daysHeld)
	return args.Error(0)
}

// AddDefense implements the LeagueStore interface.
func (m *MockLeagueStore) AddDefense(ctx context.Context, reignID int64) error {
	args := m.Called(reignID)
	return args.Error(0)
}

// ListReigns implements the LeagueStore interface.
func (m *MockLeagueStore) ListReigns(ctx context.Context, championshipID int64) ([]schema.TitleReign, error) {
	args := m.Called(championshipID)
	return args.Get(0).([]schema.TitleReign), args.Error(1)
}

// ListGuildReigns implements the LeagueStore interface.
func (m *MockLeagueStore) ListGuildReigns(ctx context.Context, guildID string) ([]schema.TitleReign, error) {
	args := m.Called(guildID)
	return args.Get(0).([]schema.TitleReign), args.Error(1)
}

// CreateMatch implements the LeagueStore interface.
func (m *MockLeagueStore) CreateMatch(ctx context.Context, match *schema.Match) (int64, error) {
	args := m.Called(match)
	return args.Get(0).(int64), args.Error(1)
}

// ListMatches implements the LeagueStore interface.
func (m *MockLeagueStore) ListMatches(ctx context.Context, guildID string, limit int) ([]schema.Match, error) {
	args := m.Called(guildID, limit)
	return args.Get(0).([]schema.Match), args.Error(1)
}

// ListWrestlerMatches implements the LeagueStore interface.
func (m *MockLeagueStore) ListWrestlerMatches(ctx context.Context, wrestlerID int64, limit int) ([]schema.Match, error) {
	args := m.Called(wrestlerID, limit)
	return args.Get(0).([]schema.Match), args.Error(1)
}

// CreateEventTemplate implements the LeagueStore interface.
func (m *MockLeagueStore) CreateEventTemplate(ctx context.Context, t *schema.EventTemplate) (int64, error) {
	args := m.Called(t)
	return args.Get(0).(int64), args.Error(1)
}

// GetEventTemplate implements the LeagueStore interface.
func (m *MockLeagueStore) GetEventTemplate(ctx context.Context, id int64) (schema.EventTemplate, error) {
	args := m.Called(id)
	return args.Get(0).(schema.EventTemplate), args.Error(1)
}

// FindEventTemplate implements the LeagueStore interface.
func (m *MockLeagueStore) FindEventTemplate(ctx context.Context, guildID, name string) (schema.EventTemplate, error) {
	args := m.Called(guildID, name)
	return args.Get(0).(schema.EventTemplate), args.Error(1)
}

// ListEventTemplates implements the LeagueStore interface.
func (m *MockLeagueStore) ListEventTemplates(ctx context.Context, guildID string) ([]schema.EventTemplate, error) {
	args := m.Called(guildID)
	return args.Get(0).([]schema.EventTemplate), args.Error(1)
}

// CountEventInstances implements the LeagueStore interface.
func (m *MockLeagueStore) CountEventInstances(ctx context.Context, templateID int64) (int, error) {
	args := m.Called(templateID)
	return args.Int(0), args.Error(1)
}

// CreateEventInstance implements the LeagueStore interface.
func (m *MockLeagueStore) CreateEventInstance(ctx context.Context, e *schema.EventInstance) (int64, error) {
	args := m.Called(e)
	return args.Get(0).(int64), args.Error(1)
}

// GetEventInstance implements the LeagueStore interface.
func (m *MockLeagueStore) GetEventInstance(ctx context.Context, id int64) (schema.EventInstance, error) {
	args := m.Called(id)
	return args.Get(0).(schema.EventInstance), args.Error(1)
}

// ListEventInstances implements the LeagueStore interface.
func (m *MockLeagueStore) ListEventInstances(ctx context.Context, guildID string, status schema.EventStatus) ([]schema.EventInstance, error) {
	args := m.Called(guildID, status)
	return args.Get(0).([]schema.EventInstance), args.Error(1)
}

// UpdateEventStatus implements the LeagueStore interface.
func (m *MockLeagueStore) UpdateEventStatus(ctx context.Context, id int64, status schema.EventStatus, completedAt *time.Time) error {
	args := m.Called(id, status, completedAt)
	return args.Error(0)
}

// CreateCardMatch implements the LeagueStore interface.
func (m *MockLeagueStore) CreateCardMatch(ctx context.Context, c *schema.CardMatch) (int64, error) {
	args := m.Called(c)
	return args.Get(0).(int64), args.Error(1)
}

// GetCardMatch implements the LeagueStore interface.
func (m *MockLeagueStore) GetCardMatch(ctx context.Context, id int64) (schema.CardMatch, error) {
	args := m.Called(id)
	return args.Get(0).(schema.CardMatch), args.Error(1)
}

// ListCardMatches implements the LeagueStore interface.
func (m *MockLeagueStore) ListCardMatches(ctx context.Context, eventID int64) ([]schema.CardMatch, error) {
	args := m.Called(eventID)
	return args.Get(0).([]schema.CardMatch), args.Error(1)
}

// UpdateCardMatch implements the LeagueStore interface.
func (m *MockLeagueStore) UpdateCardMatch(ctx context.Context, c *schema.CardMatch) error {
	args := m.Called(c)
	return args.Error(0)
}

// CreateRivalry implements the LeagueStore interface.
func (m *MockLeagueStore) CreateRivalry(ctx context.Context, r *schema.Rivalry) (int64, error) {
	args := m.Called(r)
	return args.Get(0).(int64), args.Error(1)
}

// GetRivalry implements the LeagueStore interface.
func (m *MockLeagueStore) GetRivalry(ctx context.Context, id int64) (schema.Rivalry, error) {
	args := m.Called(id)
	return args.Get(0).(schema.Rivalry), args.Error(1)
}

// ListRivalries implements the LeagueStore interface.
func (m *MockLeagueStore) ListRivalries(ctx context.Context, guildID string, activeOnly bool) ([]schema.Rivalry, error) {
	args := m.Called(guildID, activeOnly)
	return args.Get(0).([]schema.Rivalry), args.Error(1)
}

// ActiveRivalry implements the LeagueStore interface.
func (m *MockLeagueStore) ActiveRivalry(ctx context.Context, wrestlerID int64) (schema.Rivalry, error) {
	args := m.Called(wrestlerID)
	return args.Get(0).(schema.Rivalry), args.Error(1)
}

// UpdateRivalry implements the LeagueStore interface.
func (m *MockLeagueStore) UpdateRivalry(ctx context.Context, r *schema.Rivalry) error {
	args := m.Called(r)
	return args.Error(0)
}

// RecordTurn implements the LeagueStore interface.
func (m *MockLeagueStore) RecordTurn(ctx context.Context, t *schema.TurnRecord) (int64, error) {
	args := m.Called(t)
	return args.Get(0).(int64), args.Error(1)
}

// ListTurns implements the LeagueStore interface.
func (m *MockLeagueStore) ListTurns(ctx context.Context, wrestlerID int64) ([]schema.TurnRecord, error) {
	args := m.Called(wrestlerID)
	return args.Get(0).([]schema.TurnRecord), args.Error(1)
}

// GetStatus implements the LeagueStore interface.
func (m *MockLeagueStore) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the LeagueStore interface.
func (m *MockLeagueStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

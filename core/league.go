// Package core has the league workflows: wrestler creation, economy, matches,
// championships, events, rivalries and inactivity.
package core

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// settingsCacheSize bounds the number of guilds whose settings stay in memory.
const settingsCacheSize = 256

// Name length limits for wrestlers and championships.
const (
	MinNameLength = 2
	MaxNameLength = 32
)

// Observer receives league events worth counting. Implementations must be safe for concurrent use.
type Observer interface {
	CurrencyAwarded(guildID string, amount int)
	MatchRecorded(guildID string, titleChange bool)
	UpgradePurchased(guildID string, cost int)
	InactivitySwept(guildID string, inactive, warnings int)
}

type nopObserver struct{}

func (nopObserver) CurrencyAwarded(string, int)      {}
func (nopObserver) MatchRecorded(string, bool)       {}
func (nopObserver) UpgradePurchased(string, int)     {}
func (nopObserver) InactivitySwept(string, int, int) {}

// Actor is the player issuing a command. Admins bypass ownership checks.
type Actor struct {
	UserID string
	Admin  bool
}

// League is the single owner of league state. It is safe for concurrent use.
type League struct {
	store    contract.LeagueStore
	catalog  *schema.Catalog
	now      func() time.Time
	rng      *lockedRand
	settings *lru.Cache[string, schema.ServerSettings]
	observer Observer
}

// Option configures a League.
type Option func(*League)

// WithCatalog overrides the embedded reference catalog.
func WithCatalog(c *schema.Catalog) Option {
	return func(l *League) { l.catalog = c }
}

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(l *League) { l.now = now }
}

// WithRand overrides the random source used for heights, traits and currency.
func WithRand(r *rand.Rand) Option {
	return func(l *League) { l.rng = &lockedRand{r: r} }
}

// WithObserver registers an observer for league events.
func WithObserver(o Observer) Option {
	return func(l *League) { l.observer = o }
}

// NewLeague returns a League backed by store.
func NewLeague(store contract.LeagueStore, opts ...Option) *League {
	cache, _ := lru.New[string, schema.ServerSettings](settingsCacheSize)
	l := &League{
		store:    store,
		catalog:  schema.DefaultCatalog(),
		now:      func() time.Time { return time.Now().UTC() },
		rng:      &lockedRand{r: rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))},
		settings: cache,
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Catalog returns the reference catalog in use.
func (l *League) Catalog() *schema.Catalog { return l.catalog }

// Store returns the underlying store.
func (l *League) Store() contract.LeagueStore { return l.store }

// lockedRand serializes access to a *rand.Rand, which is not safe for concurrent use.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// IntN returns a uniform integer in [0, n).
func (lr *lockedRand) IntN(n int) int {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.r.IntN(n)
}

// between returns a uniform integer in [lo, hi].
func (lr *lockedRand) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + lr.IntN(hi-lo+1)
}

// validateName trims a name and checks its length.
func validateName(kind, name string) (string, error) {
	name = strings.TrimSpace(name)
	if n := len([]rune(name)); n < MinNameLength || n > MaxNameLength {
		return "", fmt.Errorf("%w: %s name must be %d-%d characters", contract.ErrInvalidInput, kind, MinNameLength, MaxNameLength)
	}
	return name, nil
}

// isNotFound reports whether err means a missing row.
func isNotFound(err error) bool {
	return errors.Is(err, contract.ErrNotFound)
}

// guildWrestler loads a wrestler and checks it belongs to guildID.
func guildWrestler(ctx context.Context, store contract.LeagueStore, guildID string, id int64) (schema.Wrestler, error) {
	w, err := store.GetWrestler(ctx, id)
	if err != nil {
		return w, err
	}
	if w.GuildID != guildID {
		return schema.Wrestler{}, fmt.Errorf("wrestler %d: %w", id, contract.ErrNotFound)
	}
	return w, nil
}

// ownedWrestler loads a wrestler and checks the actor may act on it.
func ownedWrestler(ctx context.Context, store contract.LeagueStore, actor Actor, guildID string, id int64) (schema.Wrestler, error) {
	w, err := guildWrestler(ctx, store, guildID, id)
	if err != nil {
		return w, err
	}
	if !actor.Admin && w.UserID != actor.UserID {
		return schema.Wrestler{}, fmt.Errorf("%w: %s belongs to another player", contract.ErrForbidden, w.Name)
	}
	return w, nil
}

// ResolveWrestler finds a wrestler in a guild by numeric id or by name.
// Names are unique per owner only, so a name owned by userID wins over other players' wrestlers.
// An empty userID searches the whole guild.
func (l *League) ResolveWrestler(ctx context.Context, guildID, userID, ref string) (schema.Wrestler, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if w, err := guildWrestler(ctx, l.store, guildID, id); err == nil {
			return w, nil
		}
	}
	if userID != "" {
		owned, err := l.store.ListUserWrestlers(ctx, guildID, userID)
		if err != nil {
			return schema.Wrestler{}, err
		}
		name := strings.TrimSpace(ref)
		for _, w := range owned {
			if strings.EqualFold(w.Name, name) {
				return w, nil
			}
		}
	}
	w, err := l.store.FindWrestler(ctx, guildID, ref)
	if isNotFound(err) {
		return w, fmt.Errorf("wrestler %q: %w", ref, contract.ErrNotFound)
	}
	return w, err
}

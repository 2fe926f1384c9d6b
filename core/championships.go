package core

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/huangsam/ringside/core/algo"
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// EligibilityError explains why wrestlers cannot hold a championship.
type EligibilityError struct {
	Reason string
}

func (e *EligibilityError) Error() string { return e.Reason }

// Unwrap lets callers match contract.ErrNotEligible.
func (e *EligibilityError) Unwrap() error { return contract.ErrNotEligible }

// ChampionshipInput carries the fields of a new championship.
type ChampionshipInput struct {
	GuildID     string
	Name        string
	Gender      schema.Gender
	WeightClass schema.WeightClass
	TagTeam     bool
}

// CreateChampionship adds a vacant championship to a guild.
func (l *League) CreateChampionship(ctx context.Context, in ChampionshipInput) (schema.Championship, error) {
	name, err := validateName("championship", in.Name)
	if err != nil {
		return schema.Championship{}, err
	}
	if in.Gender != schema.Male && in.Gender != schema.Female && in.Gender != schema.Mixed {
		return schema.Championship{}, fmt.Errorf("%w: gender must be Male, Female or Mixed", contract.ErrInvalidInput)
	}
	if in.WeightClass != schema.AllWeights && !slices.Contains(schema.AllWeightClasses, in.WeightClass) {
		return schema.Championship{}, fmt.Errorf("%w: unknown weight class %q", contract.ErrInvalidInput, in.WeightClass)
	}
	c := schema.Championship{
		GuildID:     in.GuildID,
		Name:        name,
		Gender:      in.Gender,
		WeightClass: in.WeightClass,
		TagTeam:     in.TagTeam,
		CreatedAt:   l.now(),
	}
	if _, err := l.store.CreateChampionship(ctx, &c); err != nil {
		return schema.Championship{}, err
	}
	return c, nil
}

// ResolveChampionship finds a championship in a guild by numeric id or by name.
func (l *League) ResolveChampionship(ctx context.Context, guildID, ref string) (schema.Championship, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if c, err := l.store.GetChampionship(ctx, id); err == nil && c.GuildID == guildID {
			return c, nil
		}
	}
	c, err := l.store.FindChampionship(ctx, guildID, ref)
	if isNotFound(err) {
		return c, fmt.Errorf("championship %q: %w", ref, contract.ErrNotFound)
	}
	return c, err
}

// CheckEligibility reports whether wrestlers may hold c together.
func CheckEligibility(c schema.Championship, wrestlers []schema.Wrestler) error {
	if len(wrestlers) == 0 {
		return fmt.Errorf("%w: a championship needs at least one holder", contract.ErrInvalidInput)
	}
	if c.TagTeam && len(wrestlers) < 2 {
		return &EligibilityError{Reason: "This is a tag team championship"}
	}
	for _, w := range wrestlers {
		if c.Gender != schema.Mixed && w.Gender != c.Gender {
			return &EligibilityError{Reason: fmt.Sprintf("This championship is for %s wrestlers only", c.Gender)}
		}
		if c.WeightClass != schema.AllWeights && w.WeightClass != c.WeightClass {
			return &EligibilityError{Reason: fmt.Sprintf("This championship is for %s weight class only", c.WeightClass)}
		}
	}
	return nil
}

// AssignChampion crowns wrestlers, closing the current reign and opening a new one.
func (l *League) AssignChampion(ctx context.Context, guildID string, championshipID int64, wrestlerIDs []int64) (schema.TitleReign, error) {
	var reign schema.TitleReign
	err := l.store.InTx(ctx, func(tx contract.LeagueStore) error {
		c, err := guildChampionship(ctx, tx, guildID, championshipID)
		if err != nil {
			return err
		}
		holders, err := loadWrestlers(ctx, tx, guildID, wrestlerIDs)
		if err != nil {
			return err
		}
		if err := CheckEligibility(c, holders); err != nil {
			return err
		}
		reign, err = l.crown(ctx, tx, c, wrestlerIDs)
		return err
	})
	return reign, err
}

// crown ends the open reign of c and starts one for wrestlerIDs.
func (l *League) crown(ctx context.Context, tx contract.LeagueStore, c schema.Championship, wrestlerIDs []int64) (schema.TitleReign, error) {
	now := l.now()
	if err := l.endReign(ctx, tx, c.ID); err != nil {
		return schema.TitleReign{}, err
	}
	prior, err := tx.CountReigns(ctx, c.ID)
	if err != nil {
		return schema.TitleReign{}, err
	}
	reign := schema.TitleReign{
		ChampionshipID: c.ID,
		WrestlerIDs:    slices.Clone(wrestlerIDs),
		ReignNumber:    prior + 1,
		WonDate:        now,
		IsCurrent:      true,
	}
	if _, err := tx.StartReign(ctx, &reign); err != nil {
		return schema.TitleReign{}, err
	}
	return reign, tx.SetChampions(ctx, c.ID, wrestlerIDs)
}

// endReign closes the open reign of a championship, if any.
func (l *League) endReign(ctx context.Context, tx contract.LeagueStore, championshipID int64) error {
	cur, err := tx.CurrentReign(ctx, championshipID)
	if isNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	now := l.now()
	return tx.EndReign(ctx, cur.ID, now, algo.DaysBetween(cur.WonDate, now))
}

// VacateChampionship strips the holders of a championship.
func (l *League) VacateChampionship(ctx context.Context, guildID string, championshipID int64) error {
	return l.store.InTx(ctx, func(tx contract.LeagueStore) error {
		c, err := guildChampionship(ctx, tx, guildID, championshipID)
		if err != nil {
			return err
		}
		if c.Vacant() {
			return fmt.Errorf("%w: %s is already vacant", contract.ErrInvalidState, c.Name)
		}
		if err := l.endReign(ctx, tx, c.ID); err != nil {
			return err
		}
		return tx.SetChampions(ctx, c.ID, nil)
	})
}

// TitleHistory returns the reigns of a championship, newest first.
func (l *League) TitleHistory(ctx context.Context, guildID string, championshipID int64) ([]schema.TitleReign, error) {
	if _, err := guildChampionship(ctx, l.store, guildID, championshipID); err != nil {
		return nil, err
	}
	return l.store.ListReigns(ctx, championshipID)
}

// CurrentChampions returns every championship of a guild with its holders.
func (l *League) CurrentChampions(ctx context.Context, guildID string) ([]schema.ChampionView, error) {
	titles, err := l.store.ListChampionships(ctx, guildID)
	if err != nil {
		return nil, err
	}
	views := make([]schema.ChampionView, 0, len(titles))
	for _, c := range titles {
		v := schema.ChampionView{Championship: c}
		if !c.Vacant() {
			if v.Holders, err = loadWrestlers(ctx, l.store, guildID, c.ChampionIDs); err != nil {
				return nil, err
			}
			reign, err := l.store.CurrentReign(ctx, c.ID)
			switch {
			case err == nil:
				v.Reign = &reign
			case !isNotFound(err):
				return nil, err
			}
		}
		views = append(views, v)
	}
	return views, nil
}

// championHolders returns the ids of every wrestler holding a title in a guild.
func championHolders(ctx context.Context, store contract.LeagueStore, guildID string) (map[int64]struct{}, error) {
	titles, err := store.ListChampionships(ctx, guildID)
	if err != nil {
		return nil, err
	}
	holders := map[int64]struct{}{}
	for _, c := range titles {
		for _, id := range c.ChampionIDs {
			holders[id] = struct{}{}
		}
	}
	return holders, nil
}

func guildChampionship(ctx context.Context, store contract.LeagueStore, guildID string, id int64) (schema.Championship, error) {
	c, err := store.GetChampionship(ctx, id)
	if err != nil {
		return c, err
	}
	if c.GuildID != guildID {
		return schema.Championship{}, fmt.Errorf("championship %d: %w", id, contract.ErrNotFound)
	}
	return c, nil
}

// loadWrestlers loads wrestlers of a guild in the order given, rejecting repeats.
func loadWrestlers(ctx context.Context, store contract.LeagueStore, guildID string, ids []int64) ([]schema.Wrestler, error) {
	out := make([]schema.Wrestler, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: wrestler %d listed twice", contract.ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
		w, err := guildWrestler(ctx, store, guildID, id)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

package core

import (
	"context"
	"fmt"
	"slices"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// CreateRivalry starts a feud between two wrestlers who are not already in one.
func (l *League) CreateRivalry(ctx context.Context, guildID string, wrestler1, wrestler2 int64) (schema.Rivalry, error) {
	if wrestler1 == wrestler2 {
		return schema.Rivalry{}, fmt.Errorf("%w: a wrestler cannot feud with themselves", contract.ErrInvalidInput)
	}
	var r schema.Rivalry
	err := l.store.InTx(ctx, func(tx contract.LeagueStore) error {
		pair, err := loadWrestlers(ctx, tx, guildID, []int64{wrestler1, wrestler2})
		if err != nil {
			return err
		}
		for _, w := range pair {
			if w.Retired {
				return fmt.Errorf("%w: %s is retired", contract.ErrInvalidState, w.Name)
			}
			_, err := tx.ActiveRivalry(ctx, w.ID)
			if err == nil {
				return fmt.Errorf("%w: %s already has an active rivalry", contract.ErrDuplicate, w.Name)
			}
			if !isNotFound(err) {
				return err
			}
		}
		r = schema.Rivalry{
			GuildID:     guildID,
			Wrestler1ID: wrestler1,
			Wrestler2ID: wrestler2,
			Active:      true,
			StartedAt:   l.now(),
		}
		_, err = tx.CreateRivalry(ctx, &r)
		return err
	})
	return r, err
}

// EndRivalry closes an active rivalry.
func (l *League) EndRivalry(ctx context.Context, guildID string, rivalryID int64) (schema.Rivalry, error) {
	var r schema.Rivalry
	err := l.store.InTx(ctx, func(tx contract.LeagueStore) error {
		var err error
		if r, err = tx.GetRivalry(ctx, rivalryID); err != nil {
			return err
		}
		if r.GuildID != guildID {
			return fmt.Errorf("rivalry %d: %w", rivalryID, contract.ErrNotFound)
		}
		if !r.Active {
			return fmt.Errorf("%w: rivalry %d has already ended", contract.ErrInvalidState, rivalryID)
		}
		now := l.now()
		r.Active = false
		r.EndedAt = &now
		return tx.UpdateRivalry(ctx, &r)
	})
	return r, err
}

// ListRivalries returns a guild's rivalries.
func (l *League) ListRivalries(ctx context.Context, guildID string, activeOnly bool) ([]schema.Rivalry, error) {
	return l.store.ListRivalries(ctx, guildID, activeOnly)
}

// RivalsAmong returns the active rivalries whose both sides are among ids.
func (l *League) RivalsAmong(ctx context.Context, guildID string, ids []int64) ([]schema.Rivalry, error) {
	return rivalriesAmong(ctx, l.store, guildID, ids)
}

func rivalriesAmong(ctx context.Context, store contract.LeagueStore, guildID string, ids []int64) ([]schema.Rivalry, error) {
	active, err := store.ListRivalries(ctx, guildID, true)
	if err != nil {
		return nil, err
	}
	var out []schema.Rivalry
	for _, r := range active {
		if slices.Contains(ids, r.Wrestler1ID) && slices.Contains(ids, r.Wrestler2ID) {
			out = append(out, r)
		}
	}
	return out, nil
}

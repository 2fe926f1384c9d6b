package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangsam/ringside/core/algo"
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// EarnCurrency pays chat activity to every active wrestler of a user. Messages outside the
// allowed channels, before setup or inside the cooldown earn nothing and are not errors.
func (l *League) EarnCurrency(ctx context.Context, guildID, userID, channelID string) (schema.EarnResult, error) {
	s, err := l.GetSettings(ctx, guildID)
	if err != nil {
		return schema.EarnResult{}, err
	}
	if !s.SetupCompleted || !s.ChannelAllowed(channelID) {
		return schema.EarnResult{}, nil
	}

	var res schema.EarnResult
	err = l.store.InTx(ctx, func(tx contract.LeagueStore) error {
		now := l.now()
		last, err := tx.GetCurrencyCooldown(ctx, guildID, userID)
		switch {
		case err == nil && now.Sub(last) < s.Cooldown():
			return nil
		case err != nil && !isNotFound(err):
			return err
		}
		owned, err := tx.ListUserWrestlers(ctx, guildID, userID)
		if err != nil {
			return err
		}
		amount := l.rng.between(s.CurrencyMin, s.CurrencyMax)
		for _, w := range owned {
			if w.Retired {
				continue
			}
			if _, err := tx.AdjustCurrency(ctx, w.ID, amount); err != nil {
				return err
			}
			res.Wrestlers = append(res.Wrestlers, w.ID)
		}
		if len(res.Wrestlers) == 0 {
			return nil
		}
		res.Amount = amount
		if err := tx.SetCurrencyCooldown(ctx, guildID, userID, now); err != nil {
			return err
		}
		_, err = tx.TouchUserActivity(ctx, guildID, userID, now)
		return err
	})
	if err != nil {
		return schema.EarnResult{}, err
	}
	if res.Amount > 0 {
		l.observer.CurrencyAwarded(guildID, res.Amount*len(res.Wrestlers))
	}
	return res, nil
}

// AdjustCurrency changes a wrestler's balance by delta. The balance never drops below zero.
func (l *League) AdjustCurrency(ctx context.Context, guildID string, wrestlerID int64, delta int) (int, error) {
	if _, err := guildWrestler(ctx, l.store, guildID, wrestlerID); err != nil {
		return 0, err
	}
	return l.store.AdjustCurrency(ctx, wrestlerID, delta)
}

// PurchaseUpgrade buys tier points of an attribute and queues the change for the booker.
func (l *League) PurchaseUpgrade(ctx context.Context, actor Actor, guildID string, wrestlerID int64, attribute string, tier int) (schema.PurchaseResult, error) {
	cost, ok := algo.ShopTiers[tier]
	if !ok {
		return schema.PurchaseResult{}, fmt.Errorf("%w: upgrades come in +1, +5 or +10", contract.ErrInvalidInput)
	}
	var res schema.PurchaseResult
	err := l.store.InTx(ctx, func(tx contract.LeagueStore) error {
		w, err := ownedWrestler(ctx, tx, actor, guildID, wrestlerID)
		if err != nil {
			return err
		}
		if w.Retired {
			return fmt.Errorf("%w: %s is retired", contract.ErrInvalidState, w.Name)
		}
		current, ok := w.Attributes[attribute]
		if !ok {
			return fmt.Errorf("%w: unknown attribute %q", contract.ErrInvalidInput, attribute)
		}
		next, ok := algo.UpgradeValue(current, tier, w.Level)
		if !ok {
			return fmt.Errorf("%w: %s is at the level %d cap of %d", contract.ErrNotEligible, attribute, w.Level, algo.AttributeCap(w.Level))
		}
		balance, err := tx.AdjustCurrency(ctx, w.ID, -cost)
		if err != nil {
			return err
		}
		w.Attributes[attribute] = next
		if err := tx.UpdateWrestler(ctx, &w); err != nil {
			return err
		}
		entry := schema.UpgradeEntry{
			GuildID:      guildID,
			WrestlerID:   w.ID,
			WrestlerName: w.Name,
			Attribute:    attribute,
			OldValue:     current,
			NewValue:     next,
			Cost:         cost,
			CreatedAt:    l.now(),
		}
		if _, err := tx.EnqueueUpgrade(ctx, &entry); err != nil {
			return err
		}
		res = schema.PurchaseResult{Entry: entry, Balance: balance}
		return nil
	})
	if err != nil {
		return schema.PurchaseResult{}, err
	}
	l.observer.UpgradePurchased(guildID, cost)
	return res, nil
}

// PendingUpgrades lists the upgrades the booker has not applied yet, oldest first.
func (l *League) PendingUpgrades(ctx context.Context, guildID string) ([]schema.UpgradeEntry, error) {
	return l.store.ListUpgrades(ctx, guildID, true)
}

// ProcessUpgradeQueue marks every pending upgrade of a guild processed and returns them.
func (l *League) ProcessUpgradeQueue(ctx context.Context, guildID string) ([]schema.UpgradeEntry, error) {
	var pending []schema.UpgradeEntry
	err := l.store.InTx(ctx, func(tx contract.LeagueStore) error {
		var err error
		if pending, err = tx.ListUpgrades(ctx, guildID, true); err != nil || len(pending) == 0 {
			return err
		}
		now := l.now()
		ids := make([]int64, len(pending))
		for i := range pending {
			ids[i] = pending[i].ID
			pending[i].Processed = true
			pending[i].ProcessedAt = &now
		}
		return tx.MarkUpgradesProcessed(ctx, ids, now)
	})
	return pending, err
}

// ProcessAllQueues flushes the upgrade queue of every guild that finished setup and returns
// how many entries were marked processed. A failing guild does not stop the others.
func (l *League) ProcessAllQueues(ctx context.Context) (int, error) {
	all, err := l.store.ListSettings(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	var errs []error
	for _, s := range all {
		if !s.SetupCompleted {
			continue
		}
		if err := ctx.Err(); err != nil {
			return total, err
		}
		done, err := l.ProcessUpgradeQueue(ctx, s.GuildID)
		if err != nil {
			errs = append(errs, fmt.Errorf("guild %s: %w", s.GuildID, err))
			continue
		}
		total += len(done)
	}
	return total, errors.Join(errs...)
}

// ClaimDaily pays the daily reward of a wrestler and advances its streak.
func (l *League) ClaimDaily(ctx context.Context, actor Actor, guildID string, wrestlerID int64) (schema.DailyResult, error) {
	var res schema.DailyResult
	err := l.store.InTx(ctx, func(tx contract.LeagueStore) error {
		w, err := ownedWrestler(ctx, tx, actor, guildID, wrestlerID)
		if err != nil {
			return err
		}
		if w.Retired {
			return fmt.Errorf("%w: %s is retired", contract.ErrInvalidState, w.Name)
		}
		now := l.now()
		c := algo.ClaimDaily(now, w.LastDaily, w.DailyStreak, w.LongestStreak)
		res = schema.DailyResult{
			WrestlerID:     w.ID,
			AlreadyClaimed: c.AlreadyClaimed,
			NextClaimIn:    c.NextClaimIn,
			Streak:         c.Streak,
			LongestStreak:  c.Longest,
			Balance:        w.Currency,
		}
		if c.AlreadyClaimed {
			return nil
		}
		res.Reward = c.Reward
		res.StreakBroken = c.Broken
		res.Milestone = c.Milestone

		w.DailyStreak = c.Streak
		w.LongestStreak = c.Longest
		w.LastDaily = &now
		if err := tx.UpdateWrestler(ctx, &w); err != nil {
			return err
		}
		if res.Balance, err = tx.AdjustCurrency(ctx, w.ID, c.Reward); err != nil {
			return err
		}
		_, err = tx.TouchUserActivity(ctx, guildID, w.UserID, now)
		return err
	})
	if err != nil {
		return schema.DailyResult{}, err
	}
	if res.Reward > 0 {
		l.observer.CurrencyAwarded(guildID, res.Reward)
	}
	return res, nil
}

// LevelProgress reports how far a wrestler is towards the next level.
func (l *League) LevelProgress(ctx context.Context, guildID string, wrestlerID int64) (schema.LevelProgress, error) {
	w, err := guildWrestler(ctx, l.store, guildID, wrestlerID)
	if err != nil {
		return schema.LevelProgress{}, err
	}
	return algo.Progress(w.Level, w.XP), nil
}

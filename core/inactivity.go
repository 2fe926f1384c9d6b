package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangsam/ringside/core/algo"
	"github.com/huangsam/ringside/schema"
)

// TouchActivity marks a user's wrestlers active and returns how many were revived.
func (l *League) TouchActivity(ctx context.Context, guildID, userID string) (int, error) {
	return l.store.TouchUserActivity(ctx, guildID, userID, l.now())
}

// SweepInactivity flags wrestlers idle for the guild's inactivity days and warns those
// reaching the warning day. Wrestlers already flagged are skipped.
func (l *League) SweepInactivity(ctx context.Context, guildID string) (schema.InactivityReport, error) {
	report := schema.InactivityReport{GuildID: guildID}
	s, err := l.GetSettings(ctx, guildID)
	if err != nil {
		return report, err
	}
	wrestlers, err := l.store.ListWrestlers(ctx, guildID, false)
	if err != nil {
		return report, err
	}
	champions, err := championHolders(ctx, l.store, guildID)
	if err != nil {
		return report, err
	}

	now := l.now()
	for _, w := range wrestlers {
		if w.Inactive {
			continue
		}
		days := s.InactivityDays
		if w.LastActive != nil {
			days = algo.DaysBetween(*w.LastActive, now)
		}
		_, champ := champions[w.ID]
		notice := schema.InactivityNotice{
			WrestlerID:   w.ID,
			Name:         w.Name,
			UserID:       w.UserID,
			DaysInactive: days,
			IsChampion:   champ,
		}
		switch {
		case days >= s.InactivityDays:
			if err := l.store.SetInactive(ctx, w.ID, true); err != nil {
				return report, err
			}
			report.Inactive = append(report.Inactive, notice)
		case days == s.WarningDays:
			notice.DaysRemaining = s.InactivityDays - days
			report.Warnings = append(report.Warnings, notice)
		}
	}
	l.observer.InactivitySwept(guildID, len(report.Inactive), len(report.Warnings))
	return report, nil
}

// SweepAll sweeps every guild that finished setup. A failing guild does not stop the others.
func (l *League) SweepAll(ctx context.Context) ([]schema.InactivityReport, error) {
	all, err := l.store.ListSettings(ctx)
	if err != nil {
		return nil, err
	}
	var reports []schema.InactivityReport
	var errs []error
	for _, s := range all {
		if !s.SetupCompleted {
			continue
		}
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		r, err := l.SweepInactivity(ctx, s.GuildID)
		if err != nil {
			errs = append(errs, fmt.Errorf("guild %s: %w", s.GuildID, err))
			continue
		}
		reports = append(reports, r)
	}
	return reports, errors.Join(errs...)
}

// SetInactive flags or clears a wrestler's inactive state.
func (l *League) SetInactive(ctx context.Context, guildID string, wrestlerID int64, inactive bool) error {
	if _, err := guildWrestler(ctx, l.store, guildID, wrestlerID); err != nil {
		return err
	}
	return l.store.SetInactive(ctx, wrestlerID, inactive)
}

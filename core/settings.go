package core

import (
	"context"
	"fmt"

	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// GetSettings returns a guild's settings, or the defaults when none are stored.
func (l *League) GetSettings(ctx context.Context, guildID string) (schema.ServerSettings, error) {
	if s, ok := l.settings.Get(guildID); ok {
		return s, nil
	}
	s, err := l.store.GetSettings(ctx, guildID)
	if isNotFound(err) {
		s, err = schema.DefaultServerSettings(guildID), nil
	}
	if err != nil {
		return s, err
	}
	l.settings.Add(guildID, s)
	return s, nil
}

// SaveSettings validates and stores a guild's settings.
func (l *League) SaveSettings(ctx context.Context, s schema.ServerSettings) error {
	if err := ValidateSettings(s); err != nil {
		return err
	}
	defer l.settings.Remove(s.GuildID)
	return l.store.SaveSettings(ctx, s)
}

// ValidateSettings checks the invariants of server settings.
func ValidateSettings(s schema.ServerSettings) error {
	switch {
	case s.GuildID == "":
		return fmt.Errorf("%w: guild id is required", contract.ErrInvalidInput)
	case s.CurrencyMin < 0:
		return fmt.Errorf("%w: minimum currency cannot be negative", contract.ErrInvalidInput)
	case s.CurrencyMin > s.CurrencyMax:
		return fmt.Errorf("%w: minimum currency %d exceeds maximum %d", contract.ErrInvalidInput, s.CurrencyMin, s.CurrencyMax)
	case s.CooldownSeconds <= 0:
		return fmt.Errorf("%w: currency cooldown must be positive", contract.ErrInvalidInput)
	case s.InactivityDays <= 0 || s.TurnCooldownDays <= 0:
		return fmt.Errorf("%w: inactivity and turn cooldown days must be positive", contract.ErrInvalidInput)
	case s.WarningDays <= 0 || s.WarningDays >= s.InactivityDays:
		return fmt.Errorf("%w: warning days must be positive and below inactivity days (%d)", contract.ErrInvalidInput, s.InactivityDays)
	case s.MaxWrestlers < 0:
		return fmt.Errorf("%w: max wrestlers cannot be negative", contract.ErrInvalidInput)
	}
	return nil
}

// UserLimit returns how many active wrestlers a user may own: the user's override,
// else the guild setting, else 1.
func (l *League) UserLimit(ctx context.Context, guildID, userID string) (int, error) {
	limit, err := l.store.GetUserLimit(ctx, guildID, userID)
	switch {
	case err == nil && limit > 0:
		return limit, nil
	case err != nil && !isNotFound(err):
		return 0, err
	}
	s, err := l.GetSettings(ctx, guildID)
	if err != nil {
		return 0, err
	}
	if s.MaxWrestlers > 0 {
		return s.MaxWrestlers, nil
	}
	return 1, nil
}

// SetUserLimit overrides the wrestler limit of one user.
func (l *League) SetUserLimit(ctx context.Context, guildID, userID string, limit int) error {
	if limit < 1 {
		return fmt.Errorf("%w: limit must be at least 1", contract.ErrInvalidInput)
	}
	return l.store.SetUserLimit(ctx, guildID, userID, limit)
}

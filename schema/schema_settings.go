package schema

import (
	"slices"
	"time"
)

// Default server settings.
const (
	DefaultCurrencyName     = "Dollars"
	DefaultCurrencySymbol   = "$"
	DefaultCurrencyMin      = 5
	DefaultCurrencyMax      = 15
	DefaultCooldownSeconds  = 60
	DefaultMaxWrestlers     = 3
	DefaultInactivityDays   = 30
	DefaultWarningDays      = 25
	DefaultTurnCooldownDays = 30
)

// ServerSettings holds the per-guild league configuration.
type ServerSettings struct {
	GuildID               string   `json:"guild_id"`
	CurrencyName          string   `json:"currency_name"`
	CurrencySymbol        string   `json:"currency_symbol"`
	CurrencyMin           int      `json:"currency_min"`
	CurrencyMax           int      `json:"currency_max"`
	CooldownSeconds       int      `json:"cooldown_seconds"`
	MaxWrestlers          int      `json:"max_wrestlers"`
	BookerRoleID          string   `json:"booker_role_id,omitempty"`
	ShopChannelID         string   `json:"shop_channel_id,omitempty"`
	AnnouncementChannelID string   `json:"announcement_channel_id,omitempty"`
	ChangesChannelID      string   `json:"changes_channel_id,omitempty"`
	CurrencyChannels      []string `json:"currency_channels,omitempty"`
	InactivityDays        int      `json:"inactivity_days"`
	WarningDays           int      `json:"warning_days"`
	TurnCooldownDays      int      `json:"turn_cooldown_days"`
	SetupCompleted        bool     `json:"setup_completed"`
}

// DefaultServerSettings returns the settings used for a guild that has none stored.
func DefaultServerSettings(guildID string) ServerSettings {
	return ServerSettings{
		GuildID:          guildID,
		CurrencyName:     DefaultCurrencyName,
		CurrencySymbol:   DefaultCurrencySymbol,
		CurrencyMin:      DefaultCurrencyMin,
		CurrencyMax:      DefaultCurrencyMax,
		CooldownSeconds:  DefaultCooldownSeconds,
		MaxWrestlers:     DefaultMaxWrestlers,
		InactivityDays:   DefaultInactivityDays,
		WarningDays:      DefaultWarningDays,
		TurnCooldownDays: DefaultTurnCooldownDays,
	}
}

// ChannelAllowed reports whether messages in channelID earn currency.
// An empty allow-list admits every channel.
func (s *ServerSettings) ChannelAllowed(channelID string) bool {
	return len(s.CurrencyChannels) == 0 || slices.Contains(s.CurrencyChannels, channelID)
}

// Cooldown returns the currency cooldown as a duration.
func (s *ServerSettings) Cooldown() time.Duration {
	return time.Duration(s.CooldownSeconds) * time.Second
}

// FormatAmount renders an amount with the guild's currency symbol, e.g. "$1,500".
func (s *ServerSettings) FormatAmount(amount int) string {
	return s.CurrencySymbol + FormatThousands(amount)
}

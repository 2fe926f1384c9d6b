package leaguedb

import (
	"context"
	"database/sql"
	"time"

	"github.com/huangsam/ringside/schema"
)

const settingsColumns = `guild_id, currency_name, currency_symbol, currency_min, currency_max,
	cooldown_seconds, max_wrestlers, booker_role_id, shop_channel_id, announcement_channel_id,
	changes_channel_id, currency_channels, inactivity_days, warning_days, turn_cooldown_days, setup_completed`

func scanSettings(row rowScanner) (schema.ServerSettings, error) {
	var s schema.ServerSettings
	var channels sql.NullString
	var setup int
	err := row.Scan(&s.GuildID, &s.CurrencyName, &s.CurrencySymbol, &s.CurrencyMin, &s.CurrencyMax,
		&s.CooldownSeconds, &s.MaxWrestlers, &s.BookerRoleID, &s.ShopChannelID, &s.AnnouncementChannelID,
		&s.ChangesChannelID, &channels, &s.InactivityDays, &s.WarningDays, &s.TurnCooldownDays, &setup)
	if err != nil {
		return s, err
	}
	s.SetupCompleted = setup != 0
	return s, decodeJSON(channels, &s.CurrencyChannels)
}

// GetSettings implements the LeagueStore interface.
func (s *LeagueStoreImpl) GetSettings(ctx context.Context, guildID string) (schema.ServerSettings, error) {
	row := s.q.QueryRowContext(ctx, s.rebind(`SELECT `+settingsColumns+` FROM server_settings WHERE guild_id = ?`), guildID)
	settings, err := scanSettings(row)
	if err != nil {
		return schema.ServerSettings{}, wrapErr("get", settingsTable, err)
	}
	return settings, nil
}

// SaveSettings implements the LeagueStore interface.
func (s *LeagueStoreImpl) SaveSettings(ctx context.Context, st schema.ServerSettings) error {
	channels, err := encodeJSON(st.CurrencyChannels)
	if err != nil {
		return wrapErr("save", settingsTable, err)
	}
	return s.withTx(ctx, func(ts *LeagueStoreImpl) error {
		res, err := ts.exec(ctx, "update", settingsTable, `UPDATE server_settings SET
			currency_name = ?, currency_symbol = ?, currency_min = ?, currency_max = ?,
			cooldown_seconds = ?, max_wrestlers = ?, booker_role_id = ?, shop_channel_id = ?,
			announcement_channel_id = ?, changes_channel_id = ?, currency_channels = ?,
			inactivity_days = ?, warning_days = ?, turn_cooldown_days = ?, setup_completed = ?
			WHERE guild_id = ?`,
			st.CurrencyName, st.CurrencySymbol, st.CurrencyMin, st.CurrencyMax,
			st.CooldownSeconds, st.MaxWrestlers, st.BookerRoleID, st.ShopChannelID,
			st.AnnouncementChannelID, st.ChangesChannelID, channels,
			st.InactivityDays, st.WarningDays, st.TurnCooldownDays, boolInt(st.SetupCompleted),
			st.GuildID)
		if err != nil {
			return err
		}
		if expectOne(res) == nil {
			return nil
		}
		_, err = ts.exec(ctx, "insert", settingsTable,
			`INSERT INTO server_settings (`+settingsColumns+`) VALUES (`+placeholders(16)+`)`,
			st.GuildID, st.CurrencyName, st.CurrencySymbol, st.CurrencyMin, st.CurrencyMax,
			st.CooldownSeconds, st.MaxWrestlers, st.BookerRoleID, st.ShopChannelID,
			st.AnnouncementChannelID, st.ChangesChannelID, channels,
			st.InactivityDays, st.WarningDays, st.TurnCooldownDays, boolInt(st.SetupCompleted))
		return err
	})
}

// ListSettings implements the LeagueStore interface.
func (s *LeagueStoreImpl) ListSettings(ctx context.Context) ([]schema.ServerSettings, error) {
	return queryList(ctx, s, settingsTable, `SELECT `+settingsColumns+` FROM server_settings ORDER BY guild_id`, scanSettings)
}

// GetUserLimit implements the LeagueStore interface.
func (s *LeagueStoreImpl) GetUserLimit(ctx context.Context, guildID, userID string) (int, error) {
	var limit int
	err := s.q.QueryRowContext(ctx, s.rebind(`SELECT max_wrestlers FROM user_limits WHERE guild_id = ? AND user_id = ?`),
		guildID, userID).Scan(&limit)
	if err != nil {
		return 0, wrapErr("get", userLimitsTable, err)
	}
	return limit, nil
}

// SetUserLimit implements the LeagueStore interface.
func (s *LeagueStoreImpl) SetUserLimit(ctx context.Context, guildID, userID string, limit int) error {
	return s.upsertPair(ctx, userLimitsTable, "max_wrestlers", guildID, userID, limit)
}

// GetCurrencyCooldown implements the LeagueStore interface.
func (s *LeagueStoreImpl) GetCurrencyCooldown(ctx context.Context, guildID, userID string) (time.Time, error) {
	var at int64
	err := s.q.QueryRowContext(ctx, s.rebind(`SELECT last_earned FROM currency_cooldowns WHERE guild_id = ? AND user_id = ?`),
		guildID, userID).Scan(&at)
	if err != nil {
		return time.Time{}, wrapErr("get", cooldownsTable, err)
	}
	return fromUnix(at), nil
}

// SetCurrencyCooldown implements the LeagueStore interface.
func (s *LeagueStoreImpl) SetCurrencyCooldown(ctx context.Context, guildID, userID string, at time.Time) error {
	return s.upsertPair(ctx, cooldownsTable, "last_earned", guildID, userID, unixTime(at))
}

// upsertPair writes one value keyed by (guild_id, user_id).
func (s *LeagueStoreImpl) upsertPair(ctx context.Context, table, column, guildID, userID string, value any) error {
	if err := validateTableName(column); err != nil {
		return err
	}
	return s.withTx(ctx, func(ts *LeagueStoreImpl) error {
		res, err := ts.exec(ctx, "update", table,
			`UPDATE `+table+` SET `+column+` = ? WHERE guild_id = ? AND user_id = ?`, value, guildID, userID)
		if err != nil {
			return err
		}
		if expectOne(res) == nil {
			return nil
		}
		_, err = ts.exec(ctx, "insert", table,
			`INSERT INTO `+table+` (guild_id, user_id, `+column+`) VALUES (?, ?, ?)`, guildID, userID, value)
		return err
	})
}

package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) onMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	ctx, cancel := b.context(commandTimeout)
	defer cancel()
	b.handleMessage(ctx, m.GuildID, m.ChannelID, m.Author.ID)
}

// handleMessage refreshes the author's activity and pays out chat currency.
func (b *Bot) handleMessage(ctx context.Context, guildID, channelID, userID string) {
	if _, err := b.league.TouchActivity(ctx, guildID, userID); err != nil {
		b.logger.Warn("touch activity", "guild", guildID, "user", userID, "error", err)
	}
	res, err := b.league.EarnCurrency(ctx, guildID, userID, channelID)
	if err != nil {
		b.logger.Warn("earn currency", "guild", guildID, "user", userID, "error", err)
		return
	}
	if res.Amount > 0 {
		b.logger.Debug("currency earned", "guild", guildID, "user", userID, "amount", res.Amount, "wrestlers", len(res.Wrestlers))
	}
}

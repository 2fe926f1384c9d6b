package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/huangsam/ringside/core"
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// pickWrestler resolves the wrestler option, or the caller's first active wrestler when it is empty.
func (b *Bot) pickWrestler(ctx context.Context, in *invocation) (schema.Wrestler, error) {
	if ref := in.opts.str("wrestler"); ref != "" {
		return b.league.ResolveWrestler(ctx, in.guildID, in.actor.UserID, ref)
	}
	owned, err := b.league.UserWrestlers(ctx, in.guildID, in.actor.UserID)
	if err != nil {
		return schema.Wrestler{}, err
	}
	for _, w := range owned {
		if !w.Retired {
			return w, nil
		}
	}
	return schema.Wrestler{}, fmt.Errorf("%w: you have no active wrestlers, use /create_wrestler", contract.ErrNotFound)
}

func (b *Bot) cmdCreateWrestler(ctx context.Context, in *invocation) (reply, error) {
	gender, _ := schema.ParseGender(in.opts.str("gender"))
	answers := schema.QuestionnaireAnswers{}
	for _, q := range schema.AllQuestions {
		if v := in.opts.str(string(q)); v != "" {
			answers[q] = v
		}
	}
	w, err := b.league.CreateWrestler(ctx, core.CreateRequest{
		GuildID:           in.guildID,
		UserID:            in.actor.UserID,
		Name:              in.opts.str("name"),
		Gender:            gender,
		Answers:           answers,
		FinisherCategory:  in.opts.str("finisher_category"),
		SignatureCategory: in.opts.str("signature_category"),
	}, in.chooser)
	if err != nil {
		return reply{}, err
	}
	s, err := b.league.GetSettings(ctx, in.guildID)
	if err != nil {
		return reply{}, err
	}
	progress, err := b.league.LevelProgress(ctx, in.guildID, w.ID)
	if err != nil {
		return reply{}, err
	}
	e := wrestlerEmbed(w, progress, s)
	return reply{
		content:  fmt.Sprintf("🎉 **%s** has debuted!", w.Name),
		embeds:   []*discordgo.MessageEmbed{e},
		announce: e,
	}, nil
}

func (b *Bot) cmdProfile(ctx context.Context, in *invocation) (reply, error) {
	w, err := b.pickWrestler(ctx, in)
	if err != nil {
		return reply{}, err
	}
	s, err := b.league.GetSettings(ctx, in.guildID)
	if err != nil {
		return reply{}, err
	}
	progress, err := b.league.LevelProgress(ctx, in.guildID, w.ID)
	if err != nil {
		return reply{}, err
	}
	return reply{embeds: []*discordgo.MessageEmbed{wrestlerEmbed(w, progress, s)}}, nil
}

func (b *Bot) cmdRoster(ctx context.Context, in *invocation) (reply, error) {
	if player := in.opts.user("player"); player != "" {
		owned, err := b.league.UserWrestlers(ctx, in.guildID, player)
		if err != nil {
			return reply{}, err
		}
		return reply{embeds: []*discordgo.MessageEmbed{rosterEmbed("Wrestlers", owned)}}, nil
	}
	roster, err := b.league.Roster(ctx, in.guildID, false)
	if err != nil {
		return reply{}, err
	}
	return reply{embeds: []*discordgo.MessageEmbed{rosterEmbed("Roster", roster)}}, nil
}

func (b *Bot) cmdDaily(ctx context.Context, in *invocation) (reply, error) {
	w, err := b.pickWrestler(ctx, in)
	if err != nil {
		return reply{}, err
	}
	res, err := b.league.ClaimDaily(ctx, in.actor, in.guildID, w.ID)
	if err != nil {
		return reply{}, err
	}
	s, err := b.league.GetSettings(ctx, in.guildID)
	if err != nil {
		return reply{}, err
	}
	return reply{embeds: []*discordgo.MessageEmbed{dailyEmbed(w, res, s)}, ephemeral: res.AlreadyClaimed}, nil
}

func (b *Bot) cmdShop(ctx context.Context, in *invocation) (reply, error) {
	s, err := b.league.GetSettings(ctx, in.guildID)
	if err != nil {
		return reply{}, err
	}
	attribute, tier := in.opts.str("attribute"), int(in.opts.integer("tier"))
	if attribute == "" || tier == 0 {
		return reply{embeds: []*discordgo.MessageEmbed{shopEmbed(s)}, ephemeral: true}, nil
	}
	if s.ShopChannelID != "" && in.channelID != s.ShopChannelID && !in.actor.Admin {
		return reply{}, fmt.Errorf("%w: purchases happen in <#%s>", contract.ErrForbidden, s.ShopChannelID)
	}
	w, err := b.pickWrestler(ctx, in)
	if err != nil {
		return reply{}, err
	}
	res, err := b.league.PurchaseUpgrade(ctx, in.actor, in.guildID, w.ID, attribute, tier)
	if err != nil {
		return reply{}, err
	}
	return reply{embeds: []*discordgo.MessageEmbed{purchaseEmbed(res, s)}}, nil
}

func (b *Bot) cmdLeaderboard(ctx context.Context, in *invocation) (reply, error) {
	stat := schema.LeaderboardStat(in.opts.str("stat"))
	if stat == "" {
		stat = schema.StatWins
	}
	entries, err := b.league.Leaderboard(ctx, in.guildID, stat)
	if err != nil {
		return reply{}, err
	}
	return reply{embeds: []*discordgo.MessageEmbed{leaderboardEmbed(stat, entries)}}, nil
}

func (b *Bot) cmdChampions(ctx context.Context, in *invocation) (reply, error) {
	views, err := b.league.CurrentChampions(ctx, in.guildID)
	if err != nil {
		return reply{}, err
	}
	return reply{embeds: []*discordgo.MessageEmbed{championsEmbed(views)}}, nil
}

func (b *Bot) cmdRivalry(ctx context.Context, in *invocation) (reply, error) {
	sub, opts := in.opts.subcommand()
	switch sub {
	case "start", "end":
		if !in.actor.Admin {
			return reply{}, fmt.Errorf("%w: only bookers can manage rivalries", contract.ErrForbidden)
		}
	}
	switch sub {
	case "start":
		first, err := b.league.ResolveWrestler(ctx, in.guildID, "", opts.str("first"))
		if err != nil {
			return reply{}, err
		}
		second, err := b.league.ResolveWrestler(ctx, in.guildID, "", opts.str("second"))
		if err != nil {
			return reply{}, err
		}
		r, err := b.league.CreateRivalry(ctx, in.guildID, first.ID, second.ID)
		if err != nil {
			return reply{}, err
		}
		return reply{content: fmt.Sprintf("🔥 Rivalry %s: **%s** vs **%s** is on!", rivalryLabel(r.ID), first.Name, second.Name)}, nil
	case "end":
		r, err := b.league.EndRivalry(ctx, in.guildID, opts.integer("id"))
		if err != nil {
			return reply{}, err
		}
		return reply{content: fmt.Sprintf("Rivalry %s is over (%d-%d).", rivalryLabel(r.ID), r.Wins1, r.Wins2)}, nil
	default:
		rivalries, err := b.league.ListRivalries(ctx, in.guildID, true)
		if err != nil {
			return reply{}, err
		}
		roster, err := b.league.Roster(ctx, in.guildID, true)
		if err != nil {
			return reply{}, err
		}
		names := make(map[int64]string, len(roster))
		for _, w := range roster {
			names[w.ID] = w.Name
		}
		return reply{embeds: []*discordgo.MessageEmbed{rivalriesEmbed(rivalries, names)}}, nil
	}
}

func (b *Bot) cmdTurn(ctx context.Context, in *invocation) (reply, error) {
	to, ok := schema.ParseAlignment(in.opts.str("alignment"))
	if !ok {
		return reply{}, fmt.Errorf("%w: alignment must be Face, Heel or Tweener", contract.ErrInvalidInput)
	}
	w, err := b.pickWrestler(ctx, in)
	if err != nil {
		return reply{}, err
	}
	out, err := b.league.Turn(ctx, in.actor, in.guildID, w.ID, to, in.chooser)
	if err != nil {
		return reply{}, err
	}
	s, err := b.league.GetSettings(ctx, in.guildID)
	if err != nil {
		return reply{}, err
	}
	e := turnEmbed(out, s)
	return reply{embeds: []*discordgo.MessageEmbed{e}, announce: e}, nil
}

func (b *Bot) cmdRename(ctx context.Context, in *invocation) (reply, error) {
	w, err := b.pickWrestler(ctx, in)
	if err != nil {
		return reply{}, err
	}
	out, err := b.league.Rename(ctx, in.actor, in.guildID, w.ID, in.opts.str("new_name"))
	if err != nil {
		return reply{}, err
	}
	s, err := b.league.GetSettings(ctx, in.guildID)
	if err != nil {
		return reply{}, err
	}
	e := renameEmbed(out, s)
	return reply{embeds: []*discordgo.MessageEmbed{e}, announce: e}, nil
}

func (b *Bot) cmdRetire(ctx context.Context, in *invocation) (reply, error) {
	w, err := b.league.ResolveWrestler(ctx, in.guildID, in.actor.UserID, in.opts.str("wrestler"))
	if err != nil {
		return reply{}, err
	}
	if _, err := b.league.Retire(ctx, in.actor, in.guildID, w.ID); err != nil {
		return reply{}, err
	}
	return reply{content: fmt.Sprintf("👋 **%s** has retired. Their moves are free for others.", w.Name)}, nil
}

// Package discord runs the league as a Discord bot: slash commands, select-menu
// choices during creation and turns, and currency for chat activity.
package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/huangsam/ringside/core"
	"github.com/huangsam/ringside/internal/contract"
	"github.com/huangsam/ringside/schema"
)

// Command timeouts.
const (
	commandTimeout     = 30 * time.Second
	interactiveTimeout = 10 * time.Minute
)

// Recorder counts handled commands.
type Recorder interface {
	CommandHandled(command, status string)
}

type nopRecorder struct{}

func (nopRecorder) CommandHandled(string, string) {}

// Config holds the bot's Discord credentials.
type Config struct {
	Token string
	AppID string

	// DevGuild registers commands on one guild only, which applies instantly.
	DevGuild string

	PickTimeout time.Duration
}

// Bot connects a League to the Discord gateway.
type Bot struct {
	cfg        Config
	session    *discordgo.Session
	league     *core.League
	logger     *slog.Logger
	recorder   Recorder
	selections *selections
	registry   map[string]command

	mu      sync.Mutex
	baseCtx context.Context
}

// Option configures a Bot.
type Option func(*Bot)

// WithRecorder counts commands on r.
func WithRecorder(r Recorder) Option {
	return func(b *Bot) { b.recorder = r }
}

// New builds a bot. It does not connect until Run.
func New(cfg Config, league *core.League, logger *slog.Logger, opts ...Option) (*Bot, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: discord token is required", contract.ErrInvalidInput)
	}
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages
	b := newBot(cfg, league, logger, opts...)
	b.session = session
	session.AddHandler(b.onInteraction)
	session.AddHandler(b.onMessageCreate)
	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		b.logger.Info("connected to discord", "user", r.User.Username, "guilds", len(r.Guilds))
	})
	return b, nil
}

func newBot(cfg Config, league *core.League, logger *slog.Logger, opts ...Option) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Bot{
		cfg:        cfg,
		league:     league,
		logger:     logger.With("component", "discord"),
		recorder:   nopRecorder{},
		selections: newSelections(),
		baseCtx:    context.Background(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.registry = make(map[string]command)
	for _, c := range b.commands() {
		b.registry[c.def.Name] = c
	}
	return b
}

// Definitions returns the slash command definitions in registration order.
func (b *Bot) Definitions() []*discordgo.ApplicationCommand {
	cmds := b.commands()
	defs := make([]*discordgo.ApplicationCommand, len(cmds))
	for i, c := range cmds {
		defs[i] = c.def
	}
	return defs
}

// Run connects, registers the slash commands and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	b.mu.Lock()
	b.baseCtx = ctx
	b.mu.Unlock()

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	defer func() {
		if err := b.session.Close(); err != nil {
			b.logger.Warn("close discord gateway", "error", err)
		}
	}()

	if _, err := b.session.ApplicationCommandBulkOverwrite(b.cfg.AppID, b.cfg.DevGuild, b.Definitions(), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("register slash commands: %w", err)
	}
	b.logger.Info("slash commands registered", "count", len(b.registry), "guild", b.cfg.DevGuild)

	<-ctx.Done()
	b.logger.Info("discord bot stopping")
	return nil
}

func (b *Bot) context(timeout time.Duration) (context.Context, context.CancelFunc) {
	b.mu.Lock()
	base := b.baseCtx
	b.mu.Unlock()
	return context.WithTimeout(base, timeout)
}

// isBooker reports whether a member may act as league staff.
func isBooker(m *discordgo.Member, s schema.ServerSettings) bool {
	if m == nil {
		return false
	}
	if m.Permissions&discordgo.PermissionAdministrator != 0 || m.Permissions&discordgo.PermissionManageServer != 0 {
		return true
	}
	return s.BookerRoleID != "" && slices.Contains(m.Roles, s.BookerRoleID)
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleCommand(s, i.Interaction)
	case discordgo.InteractionMessageComponent:
		b.handleComponent(s, i.Interaction)
	}
}

func (b *Bot) handleCommand(s *discordgo.Session, i *discordgo.Interaction) {
	data := i.ApplicationCommandData()
	cmd, ok := b.registry[data.Name]
	if !ok {
		return
	}
	if i.GuildID == "" || i.Member == nil {
		b.respond(s, i, reply{content: "Ringside commands only work inside a server.", ephemeral: true})
		return
	}

	timeout := commandTimeout
	if cmd.interactive {
		timeout = interactiveTimeout
	}
	ctx, cancel := b.context(timeout)
	defer cancel()

	settings, err := b.league.GetSettings(ctx, i.GuildID)
	if err != nil {
		b.respond(s, i, b.failure(data.Name, err))
		return
	}
	in := &invocation{
		guildID:   i.GuildID,
		channelID: i.ChannelID,
		actor:     core.Actor{UserID: i.Member.User.ID, Admin: isBooker(i.Member, settings)},
		opts:      parseOptions(data.Options),
		chooser:   core.FirstChooser{},
	}

	if !cmd.interactive {
		out, err := b.execute(ctx, cmd, data.Name, in)
		if err != nil {
			out = b.failure(data.Name, err)
		}
		b.respond(s, i, out)
		b.announce(ctx, s, settings, in.channelID, out)
		return
	}

	// Interactive commands may wait on several menu picks, longer than the 3s response window.
	if err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}); err != nil {
		b.logger.Warn("defer interaction", "command", data.Name, "error", err)
		return
	}
	in.chooser = &menuChooser{
		sender:     interactionMenus{session: s, interaction: i},
		selections: b.selections,
		userID:     in.actor.UserID,
		timeout:    b.cfg.PickTimeout,
	}
	out, err := b.execute(ctx, cmd, data.Name, in)
	if err != nil {
		out = b.failure(data.Name, err)
	}
	content, embeds := out.content, out.embeds
	if _, err := s.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: &content, Embeds: &embeds}); err != nil {
		b.logger.Warn("edit interaction response", "command", data.Name, "error", err)
	}
	b.announce(ctx, s, settings, in.channelID, out)
}

// execute runs one command and records its outcome.
func (b *Bot) execute(ctx context.Context, cmd command, name string, in *invocation) (reply, error) {
	start := time.Now()
	out, err := cmd.run(ctx, in)
	status := "ok"
	switch {
	case err == nil:
	case isUserError(err):
		status = "rejected"
	default:
		status = "error"
		b.logger.Error("command failed", "command", name, "guild", in.guildID, "user", in.actor.UserID, "error", err)
	}
	b.recorder.CommandHandled(name, status)
	b.logger.Debug("command handled", "command", name, "status", status, "took", time.Since(start))
	return out, err
}

// isUserError reports errors caused by the player's input rather than the bot.
func isUserError(err error) bool {
	for _, target := range []error{
		contract.ErrNotFound, contract.ErrDuplicate, contract.ErrInvalidInput, contract.ErrForbidden,
		contract.ErrInsufficientFunds, contract.ErrCooldown, contract.ErrLimitReached, contract.ErrNotEligible,
		contract.ErrInvalidState, contract.ErrNoSpots, errPickTimeout,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (b *Bot) failure(name string, err error) reply {
	msg := contract.UserMessage(err)
	if errors.Is(err, errPickTimeout) {
		msg = errPickTimeout.Error()
	}
	return reply{content: fmt.Sprintf("❌ /%s: %s", name, msg), ephemeral: true}
}

func (b *Bot) respond(s *discordgo.Session, i *discordgo.Interaction, out reply) {
	data := &discordgo.InteractionResponseData{Content: out.content, Embeds: out.embeds}
	if out.ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	if err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}); err != nil {
		b.logger.Warn("respond to interaction", "error", err)
	}
}

// announce posts a reply's public embed to the changes channel, or to the invoking channel when none is set.
func (b *Bot) announce(ctx context.Context, s *discordgo.Session, settings schema.ServerSettings, channelID string, out reply) {
	if out.announce == nil {
		return
	}
	target := settings.ChangesChannelID
	if target == "" {
		if !out.ephemeral && len(out.embeds) > 0 && out.embeds[0] == out.announce {
			return
		}
		target = channelID
	}
	if _, err := s.ChannelMessageSendEmbed(target, out.announce, discordgo.WithContext(ctx)); err != nil {
		b.logger.Warn("post announcement", "channel", target, "error", err)
	}
}

func (b *Bot) handleComponent(s *discordgo.Session, i *discordgo.Interaction) {
	data := i.MessageComponentData()
	if !strings.HasPrefix(data.CustomID, selectPrefix) || len(data.Values) == 0 {
		return
	}
	userID := ""
	switch {
	case i.Member != nil && i.Member.User != nil:
		userID = i.Member.User.ID
	case i.User != nil:
		userID = i.User.ID
	}
	value := data.Values[0]
	if !b.selections.resolve(data.CustomID, userID, value) {
		b.respond(s, i, reply{content: "This menu is not yours or has expired.", ephemeral: true})
		return
	}
	if err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    fmt.Sprintf("✅ Picked **%s**", value),
			Components: []discordgo.MessageComponent{},
		},
	}); err != nil {
		b.logger.Warn("acknowledge selection", "error", err)
	}
}

// AnnounceInactivity posts a sweep report to the guild's announcement channel.
func (b *Bot) AnnounceInactivity(ctx context.Context, report schema.InactivityReport) {
	settings, err := b.league.GetSettings(ctx, report.GuildID)
	if err != nil {
		b.logger.Warn("load settings for inactivity report", "guild", report.GuildID, "error", err)
		return
	}
	if settings.AnnouncementChannelID == "" || b.session == nil {
		return
	}
	if _, err := b.session.ChannelMessageSendEmbed(settings.AnnouncementChannelID, inactivityEmbed(report), discordgo.WithContext(ctx)); err != nil {
		b.logger.Warn("post inactivity report", "guild", report.GuildID, "error", err)
	}
}

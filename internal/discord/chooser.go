package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/huangsam/ringside/core"
)

const (
	selectPrefix = "ringside:choose:"

	// maxMenuOptions is the Discord limit on select menu options.
	maxMenuOptions = 25

	defaultPickTimeout = 2 * time.Minute
)

var errPickTimeout = errors.New("no selection was made in time, please run the command again")

// selections tracks open select menus until their owner picks a value.
type selections struct {
	mu      sync.Mutex
	seq     uint64
	pending map[string]pendingPick
}

type pendingPick struct {
	userID string
	ch     chan string
}

func newSelections() *selections {
	return &selections{pending: make(map[string]pendingPick)}
}

// open registers a menu for userID and returns its custom id and result channel.
func (s *selections) open(userID string) (string, <-chan string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	id := selectPrefix + strconv.FormatUint(s.seq, 10)
	ch := make(chan string, 1)
	s.pending[id] = pendingPick{userID: userID, ch: ch}
	return id, ch
}

// resolve delivers a pick. It reports false for unknown menus and other users' menus.
func (s *selections) resolve(customID, userID, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[customID]
	if !ok || p.userID != userID {
		return false
	}
	delete(s.pending, customID)
	p.ch <- value
	return true
}

func (s *selections) close(customID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, customID)
}

func (s *selections) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// menuSender posts a select menu to the player.
type menuSender interface {
	SendMenu(ctx context.Context, customID, label string, options []string) error
}

// menuChooser implements core.Chooser with Discord select menus.
type menuChooser struct {
	sender     menuSender
	selections *selections
	userID     string
	timeout    time.Duration
}

var _ core.Chooser = (*menuChooser)(nil)

// Choose posts a menu and waits for the player's pick.
func (c *menuChooser) Choose(ctx context.Context, prompt string, opts []string) (string, error) {
	if len(opts) > maxMenuOptions {
		opts = opts[:maxMenuOptions]
	}
	id, ch := c.selections.open(c.userID)
	defer c.selections.close(id)

	if err := c.sender.SendMenu(ctx, id, promptLabel(prompt), opts); err != nil {
		return "", fmt.Errorf("send %s menu: %w", prompt, err)
	}
	timeout := c.timeout
	if timeout <= 0 {
		timeout = defaultPickTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case v := <-ch:
		return v, nil
	case <-timer.C:
		return "", errPickTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func promptLabel(prompt string) string {
	switch prompt {
	case core.PromptBodyType:
		return "Pick a body type"
	case core.PromptPersona:
		return "Pick a persona"
	case core.PromptFinisher:
		return "Pick a finisher"
	case core.PromptSignature:
		return "Pick a signature move"
	default:
		return "Pick one: " + strings.ReplaceAll(prompt, "_", " ")
	}
}

// interactionMenus sends menus as ephemeral followups of an interaction.
type interactionMenus struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
}

func (m interactionMenus) SendMenu(ctx context.Context, customID, label string, opts []string) error {
	menuOptions := make([]discordgo.SelectMenuOption, len(opts))
	for i, o := range opts {
		menuOptions[i] = discordgo.SelectMenuOption{Label: o, Value: o}
	}
	_, err := m.session.FollowupMessageCreate(m.interaction, true, &discordgo.WebhookParams{
		Content: label,
		Flags:   discordgo.MessageFlagsEphemeral,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    customID,
					Placeholder: label,
					Options:     menuOptions,
				},
			}},
		},
	}, discordgo.WithContext(ctx))
	return err
}

package discord

import (
	"context"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/huangsam/ringside/core"
	"github.com/huangsam/ringside/schema"
)

// invocation is one slash command call, detached from the gateway.
type invocation struct {
	guildID   string
	channelID string
	actor     core.Actor
	opts      options
	chooser   core.Chooser
}

// reply is what a command answers with.
type reply struct {
	content   string
	embeds    []*discordgo.MessageEmbed
	ephemeral bool

	// announce is posted to the guild's changes channel when set.
	announce *discordgo.MessageEmbed
}

// command binds a slash command definition to its handler.
type command struct {
	def *discordgo.ApplicationCommand
	run func(ctx context.Context, in *invocation) (reply, error)

	// interactive commands defer their response and may open select menus.
	interactive bool
}

func stringOption(name, desc string, required bool, choices ...string) *discordgo.ApplicationCommandOption {
	opt := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: desc,
		Required:    required,
	}
	for _, c := range choices {
		if len(opt.Choices) == maxMenuOptions {
			break
		}
		opt.Choices = append(opt.Choices, &discordgo.ApplicationCommandOptionChoice{Name: choiceLabel(c), Value: c})
	}
	return opt
}

func wrestlerOption(required bool) *discordgo.ApplicationCommandOption {
	return stringOption("wrestler", "Wrestler name or id. Defaults to your first wrestler.", required)
}

func alignmentNames() []string {
	names := make([]string, len(schema.AllAlignments))
	for i, a := range schema.AllAlignments {
		names[i] = string(a)
	}
	return names
}

// commands lists every slash command of the bot.
func (b *Bot) commands() []command {
	categories := b.league.Catalog().CategoryNames()

	createOpts := []*discordgo.ApplicationCommandOption{
		stringOption("name", "Ring name", true),
		stringOption("gender", "Division", true, string(schema.Male), string(schema.Female)),
		stringOption("finisher_category", "Move category for the finisher", true, categories...),
		stringOption("signature_category", "Move category for the signature", true, categories...),
	}
	for _, q := range schema.AllQuestions {
		createOpts = append(createOpts, stringOption(string(q), choiceLabel(string(q)), false, schema.QuestionOptions[q]...))
	}

	stats := []string{string(schema.StatWins), string(schema.StatWinRate), string(schema.StatCurrency), string(schema.StatLevel)}
	tiers := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "+1", Value: 1}, {Name: "+5", Value: 5}, {Name: "+10", Value: 10},
	}

	return []command{
		{
			def: &discordgo.ApplicationCommand{
				Name:        "create_wrestler",
				Description: "Answer the questionnaire and debut a new wrestler",
				Options:     createOpts,
			},
			run:         b.cmdCreateWrestler,
			interactive: true,
		},
		{
			def: &discordgo.ApplicationCommand{
				Name:        "profile",
				Description: "Show a wrestler's profile",
				Options:     []*discordgo.ApplicationCommandOption{wrestlerOption(false)},
			},
			run: b.cmdProfile,
		},
		{
			def: &discordgo.ApplicationCommand{
				Name:        "roster",
				Description: "List the roster, or one player's wrestlers",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "player",
					Description: "Only show this player's wrestlers",
				}},
			},
			run: b.cmdRoster,
		},
		{
			def: &discordgo.ApplicationCommand{
				Name:        "daily",
				Description: "Claim your daily reward",
				Options:     []*discordgo.ApplicationCommandOption{wrestlerOption(false)},
			},
			run: b.cmdDaily,
		},
		{
			def: &discordgo.ApplicationCommand{
				Name:        "shop",
				Description: "Show the upgrade prices, or buy an attribute upgrade",
				Options: []*discordgo.ApplicationCommandOption{
					stringOption("attribute", "Attribute to upgrade", false),
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "tier",
						Description: "Upgrade size",
						Choices:     tiers,
					},
					wrestlerOption(false),
				},
			},
			run: b.cmdShop,
		},
		{
			def: &discordgo.ApplicationCommand{
				Name:        "leaderboard",
				Description: "Show the top wrestlers",
				Options:     []*discordgo.ApplicationCommandOption{stringOption("stat", "Ranking stat", false, stats...)},
			},
			run: b.cmdLeaderboard,
		},
		{
			def: &discordgo.ApplicationCommand{
				Name:        "champions",
				Description: "Show the current champions",
			},
			run: b.cmdChampions,
		},
		{
			def: &discordgo.ApplicationCommand{
				Name:        "rivalry",
				Description: "Start, end or list feuds",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "start",
						Description: "Start a feud (bookers only)",
						Options: []*discordgo.ApplicationCommandOption{
							stringOption("first", "First wrestler", true),
							stringOption("second", "Second wrestler", true),
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "end",
						Description: "End a feud (bookers only)",
						Options: []*discordgo.ApplicationCommandOption{{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "id",
							Description: "Rivalry id",
							Required:    true,
						}},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "list",
						Description: "List running feuds",
					},
				},
			},
			run: b.cmdRivalry,
		},
		{
			def: &discordgo.ApplicationCommand{
				Name:        "turn",
				Description: "Change your wrestler's alignment",
				Options: []*discordgo.ApplicationCommandOption{
					stringOption("alignment", "New alignment", true, alignmentNames()...),
					wrestlerOption(false),
				},
			},
			run:         b.cmdTurn,
			interactive: true,
		},
		{
			def: &discordgo.ApplicationCommand{
				Name:        "rename",
				Description: "Give your wrestler a new ring name",
				Options: []*discordgo.ApplicationCommandOption{
					stringOption("new_name", "New ring name", true),
					wrestlerOption(false),
				},
			},
			run: b.cmdRename,
		},
		{
			def: &discordgo.ApplicationCommand{
				Name:        "retire",
				Description: "Retire one of your wrestlers",
				Options:     []*discordgo.ApplicationCommandOption{wrestlerOption(true)},
			},
			run: b.cmdRetire,
		},
	}
}

// rivalryLabel names a rivalry by id for confirmations.
func rivalryLabel(id int64) string {
	return "#" + strconv.FormatInt(id, 10)
}

package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func strOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	// Discord delivers numbers as JSON floats.
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(value)}
}

func TestOptions(t *testing.T) {
	opts := parseOptions([]*discordgo.ApplicationCommandInteractionDataOption{
		strOpt("name", "  Titan "),
		intOpt("tier", 5),
		{Name: "player", Type: discordgo.ApplicationCommandOptionUser, Value: "u42"},
	})

	assert.Equal(t, "Titan", opts.str("name"))
	assert.Equal(t, int64(5), opts.integer("tier"))
	assert.Equal(t, "u42", opts.user("player"))

	// Missing or mistyped options read as zero values.
	assert.Empty(t, opts.str("missing"))
	assert.Empty(t, opts.str("tier"))
	assert.Zero(t, opts.integer("name"))
	assert.Empty(t, opts.user("name"))
}

func TestOptionsSubcommand(t *testing.T) {
	opts := parseOptions([]*discordgo.ApplicationCommandInteractionDataOption{{
		Name:    "start",
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{strOpt("first", "Titan"), strOpt("second", "Nova")},
	}})
	name, sub := opts.subcommand()
	assert.Equal(t, "start", name)
	assert.Equal(t, "Nova", sub.str("second"))

	name, sub = parseOptions(nil).subcommand()
	assert.Empty(t, name)
	assert.Empty(t, sub)
}

func TestChoiceLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"high_risk", "High risk"},
		{"Face", "Face"},
		{"x", "X"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, choiceLabel(tt.in), tt.in)
	}
}

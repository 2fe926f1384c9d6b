package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// options indexes the options of one command invocation by name.
type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func parseOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) options {
	out := make(options, len(opts))
	for _, o := range opts {
		out[o.Name] = o
	}
	return out
}

// subcommand returns the invoked subcommand and its options, if any.
func (o options) subcommand() (string, options) {
	for name, opt := range o {
		if opt.Type == discordgo.ApplicationCommandOptionSubCommand {
			return name, parseOptions(opt.Options)
		}
	}
	return "", o
}

func (o options) str(name string) string {
	opt, ok := o[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return strings.TrimSpace(opt.StringValue())
}

func (o options) integer(name string) int64 {
	opt, ok := o[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return 0
	}
	return opt.IntValue()
}

func (o options) user(name string) string {
	opt, ok := o[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionUser {
		return ""
	}
	return opt.UserValue(nil).ID
}

// choiceLabel turns an option value such as "high_risk" into "High risk".
func choiceLabel(value string) string {
	s := strings.ReplaceAll(value, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

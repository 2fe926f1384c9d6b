package discord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/huangsam/ringside/core/algo"
	"github.com/huangsam/ringside/schema"
)

// Embed colors.
const (
	colorFace    = 0x2ecc71
	colorHeel    = 0xe74c3c
	colorTweener = 0xf1c40f
	colorGold    = 0xd4af37
	colorInfo    = 0x3498db
)

// maxEmbedFields is the Discord limit on fields per embed.
const maxEmbedFields = 25

func alignmentColor(a schema.Alignment) int {
	switch a {
	case schema.Face:
		return colorFace
	case schema.Heel:
		return colorHeel
	default:
		return colorTweener
	}
}

func field(name, value string, inline bool) *discordgo.MessageEmbedField {
	if value == "" {
		value = "-"
	}
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: inline}
}

func wrestlerEmbed(w schema.Wrestler, p schema.LevelProgress, s schema.ServerSettings) *discordgo.MessageEmbed {
	level := fmt.Sprintf("%d (%s XP)", w.Level, schema.FormatThousands(w.XP))
	if !p.MaxLevel {
		level += fmt.Sprintf("\n%.0f%% to level %d", p.Percent, w.Level+1)
	}
	e := &discordgo.MessageEmbed{
		Title:       w.Name,
		Description: fmt.Sprintf("%s %s %s · %s", w.Alignment, w.WeightClass, w.Archetype, w.Persona),
		Color:       alignmentColor(w.Alignment),
		Fields: []*discordgo.MessageEmbedField{
			field("Level", level, true),
			field("Record", fmt.Sprintf("%s (%.1f%%)", w.Record(), w.WinRate()), true),
			field(s.CurrencyName, s.FormatAmount(w.Currency), true),
			field("Finisher", w.Finisher, true),
			field("Signature", w.Signature, true),
			field("Body", fmt.Sprintf("%s, %s", w.HeightFeet, w.BodyType), true),
		},
	}
	attrs := make([]string, 0, len(w.Attributes))
	for name := range w.Attributes {
		attrs = append(attrs, name)
	}
	sort.Strings(attrs)
	lines := make([]string, len(attrs))
	for i, name := range attrs {
		lines[i] = fmt.Sprintf("%s: %d", name, w.Attributes[name])
	}
	e.Fields = append(e.Fields, field("Attributes", strings.Join(lines, "\n"), false))

	var traits []string
	for _, t := range schema.AllTraits {
		if v, ok := w.Personality[t]; ok && v != 0 {
			traits = append(traits, fmt.Sprintf("%s %+d", schema.TraitLean(t, v), v))
		}
	}
	if len(traits) > 0 {
		e.Fields = append(e.Fields, field("Personality", strings.Join(traits, ", "), false))
	}
	if w.Retired {
		e.Footer = &discordgo.MessageEmbedFooter{Text: "Retired"}
	} else if w.Inactive {
		e.Footer = &discordgo.MessageEmbedFooter{Text: "Inactive"}
	}
	return e
}

func rosterEmbed(title string, wrestlers []schema.Wrestler) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{Title: title, Color: colorInfo}
	if len(wrestlers) == 0 {
		e.Description = "No wrestlers yet. Use /create_wrestler to debut one."
		return e
	}
	lines := make([]string, 0, len(wrestlers))
	for _, w := range wrestlers {
		line := fmt.Sprintf("**%s** · Lv %d %s %s · %s", w.Name, w.Level, w.Alignment, w.Archetype, w.Record())
		if w.Inactive {
			line += " · inactive"
		}
		lines = append(lines, line)
	}
	e.Description = strings.Join(lines, "\n")
	return e
}

func leaderboardEmbed(stat schema.LeaderboardStat, entries []schema.LeaderboardEntry) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{Title: "Leaderboard: " + string(stat), Color: colorGold}
	if len(entries) == 0 {
		e.Description = "Nobody qualifies yet."
		return e
	}
	lines := make([]string, len(entries))
	for i, en := range entries {
		rank := fmt.Sprintf("%d.", en.Rank)
		if en.Rank == 1 {
			rank = "🏆"
		}
		lines[i] = fmt.Sprintf("%s **%s** %s", rank, en.Name, en.Display)
	}
	e.Description = strings.Join(lines, "\n")
	return e
}

func championsEmbed(views []schema.ChampionView) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{Title: "Champions", Color: colorGold}
	if len(views) == 0 {
		e.Description = "No championships have been created."
		return e
	}
	for _, v := range views {
		value := v.HolderNames()
		if v.Reign != nil {
			value += fmt.Sprintf("\nsince %s · %d defenses", v.Reign.WonDate.Format("Jan 2, 2006"), v.Reign.Defenses)
		}
		if len(e.Fields) == maxEmbedFields {
			break
		}
		e.Fields = append(e.Fields, field(v.Championship.Name, value, false))
	}
	return e
}

func dailyEmbed(w schema.Wrestler, r schema.DailyResult, s schema.ServerSettings) *discordgo.MessageEmbed {
	if r.AlreadyClaimed {
		return &discordgo.MessageEmbed{
			Title:       "Daily already claimed",
			Description: fmt.Sprintf("%s can claim again in %s.", w.Name, algo.FormatDuration(r.NextClaimIn)),
			Color:       colorInfo,
		}
	}
	desc := fmt.Sprintf("%s earned %s.", w.Name, s.FormatAmount(r.Reward))
	if r.StreakBroken {
		desc += " The streak was broken and starts over."
	}
	if r.Milestone > 0 {
		desc += fmt.Sprintf(" 🔥 %d day milestone!", r.Milestone)
	}
	return &discordgo.MessageEmbed{
		Title:       "Daily reward",
		Description: desc,
		Color:       colorGold,
		Fields: []*discordgo.MessageEmbedField{
			field("Streak", fmt.Sprintf("%d (best %d)", r.Streak, r.LongestStreak), true),
			field("Balance", s.FormatAmount(r.Balance), true),
		},
	}
}

func purchaseEmbed(r schema.PurchaseResult, s schema.ServerSettings) *discordgo.MessageEmbed {
	e := r.Entry
	return &discordgo.MessageEmbed{
		Title:       "Upgrade purchased",
		Description: fmt.Sprintf("%s: %s %d → %d. A booker will apply it in-game.", e.WrestlerName, e.Attribute, e.OldValue, e.NewValue),
		Color:       colorGold,
		Fields: []*discordgo.MessageEmbedField{
			field("Cost", s.FormatAmount(e.Cost), true),
			field("Balance", s.FormatAmount(r.Balance), true),
		},
	}
}

func shopEmbed(s schema.ServerSettings) *discordgo.MessageEmbed {
	tiers := make([]int, 0, len(algo.ShopTiers))
	for t := range algo.ShopTiers {
		tiers = append(tiers, t)
	}
	sort.Ints(tiers)
	lines := make([]string, len(tiers))
	for i, t := range tiers {
		lines[i] = fmt.Sprintf("+%d: %s", t, s.FormatAmount(algo.ShopTiers[t]))
	}
	return &discordgo.MessageEmbed{
		Title:       "Attribute shop",
		Description: strings.Join(lines, "\n") + "\n\nBuy with /shop wrestler:<name> attribute:<name> tier:<1|5|10>.",
		Color:       colorInfo,
	}
}

func turnEmbed(o schema.TurnOutcome, s schema.ServerSettings) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s turned %s!", o.Wrestler.Name, o.ToAlignment),
		Description: fmt.Sprintf("%s → %s · persona %s → %s", o.FromAlignment, o.ToAlignment, o.FromPersona, o.ToPersona),
		Color:       alignmentColor(o.ToAlignment),
	}
	if o.NewFinisher != "" {
		e.Fields = append(e.Fields, field("Finisher", o.OldFinisher+" → "+o.NewFinisher, false))
	}
	if o.NewSignature != "" {
		e.Fields = append(e.Fields, field("Signature", o.OldSignature+" → "+o.NewSignature, false))
	}
	if len(o.PersonaDiff) > 0 {
		names := make([]string, 0, len(o.PersonaDiff))
		for name := range o.PersonaDiff {
			names = append(names, name)
		}
		sort.Strings(names)
		lines := make([]string, len(names))
		for i, name := range names {
			lines[i] = fmt.Sprintf("%s %+d", name, o.PersonaDiff[name])
		}
		e.Fields = append(e.Fields, field("Suggested attribute changes", strings.Join(lines, "\n"), false))
	}
	e.Fields = append(e.Fields, field("Cost", s.FormatAmount(o.Cost), true))
	return e
}

func renameEmbed(o schema.RenameOutcome, s schema.ServerSettings) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Name change",
		Description: fmt.Sprintf("%s will now be known as **%s**.", o.OldName, o.NewName),
		Color:       colorInfo,
		Fields:      []*discordgo.MessageEmbedField{field("Cost", s.FormatAmount(o.Cost), true)},
	}
}

func rivalriesEmbed(rivalries []schema.Rivalry, names map[int64]string) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{Title: "Active rivalries", Color: colorHeel}
	if len(rivalries) == 0 {
		e.Description = "No feuds are running."
		return e
	}
	lines := make([]string, len(rivalries))
	for i, r := range rivalries {
		lines[i] = fmt.Sprintf("#%d **%s** vs **%s** (%d-%d)", r.ID, names[r.Wrestler1ID], names[r.Wrestler2ID], r.Wins1, r.Wins2)
	}
	e.Description = strings.Join(lines, "\n")
	return e
}

func inactivityEmbed(r schema.InactivityReport) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{Title: "Inactivity report", Color: colorTweener}
	if len(r.Inactive) > 0 {
		lines := make([]string, len(r.Inactive))
		for i, n := range r.Inactive {
			lines[i] = fmt.Sprintf("<@%s> **%s** (%d days)", n.UserID, n.Name, n.DaysInactive)
			if n.IsChampion {
				lines[i] += " 🏆 title may be vacated"
			}
		}
		e.Fields = append(e.Fields, field("Now inactive", strings.Join(lines, "\n"), false))
	}
	if len(r.Warnings) > 0 {
		lines := make([]string, len(r.Warnings))
		for i, n := range r.Warnings {
			lines[i] = fmt.Sprintf("<@%s> **%s**: %d days left", n.UserID, n.Name, n.DaysRemaining)
		}
		e.Fields = append(e.Fields, field("Warnings", strings.Join(lines, "\n"), false))
	}
	return e
}

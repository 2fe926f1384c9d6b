package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/huangsam/ringside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldValue(e *discordgo.MessageEmbed, name string) string {
	for _, f := range e.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

func TestWrestlerEmbed(t *testing.T) {
	s := schema.DefaultServerSettings("g1")
	w := schema.Wrestler{
		Name:        "Titan",
		Alignment:   schema.Heel,
		Archetype:   schema.Giant,
		WeightClass: schema.Ultraheavy,
		Level:       2,
		XP:          1200,
		Currency:    1500,
		Wins:        3,
		Losses:      1,
		Attributes:  map[string]int{"Strength": 70, "Agility": 40},
		Retired:     true,
	}
	e := wrestlerEmbed(w, schema.LevelProgress{Level: 2, XP: 1200, Percent: 40}, s)

	assert.Equal(t, "Titan", e.Title)
	assert.Equal(t, colorHeel, e.Color)
	assert.Equal(t, "$1,500", fieldValue(e, "Dollars"))
	assert.Equal(t, "Agility: 40\nStrength: 70", fieldValue(e, "Attributes"))
	assert.Contains(t, fieldValue(e, "Level"), "40% to level 3")
	assert.Equal(t, "-", fieldValue(e, "Finisher"))
	require.NotNil(t, e.Footer)
	assert.Equal(t, "Retired", e.Footer.Text)

	maxed := wrestlerEmbed(w, schema.LevelProgress{MaxLevel: true}, s)
	assert.NotContains(t, fieldValue(maxed, "Level"), "to level")
}

func TestChampionsEmbed(t *testing.T) {
	won := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	e := championsEmbed([]schema.ChampionView{
		{
			Championship: schema.Championship{Name: "World Title"},
			Holders:      []schema.Wrestler{{Name: "Titan"}},
			Reign:        &schema.TitleReign{WonDate: won, Defenses: 2},
		},
		{Championship: schema.Championship{Name: "Cruiser Title"}},
	})
	require.Len(t, e.Fields, 2)
	assert.Equal(t, "Titan\nsince Mar 1, 2026 · 2 defenses", e.Fields[0].Value)
	assert.Equal(t, "Vacant", e.Fields[1].Value)

	assert.Equal(t, "No championships have been created.", championsEmbed(nil).Description)
}

func TestShopEmbed(t *testing.T) {
	e := shopEmbed(schema.DefaultServerSettings("g1"))
	assert.Contains(t, e.Description, "+1: $150\n+5: $700\n+10: $1,300")
}

func TestDailyEmbed(t *testing.T) {
	s := schema.DefaultServerSettings("g1")
	w := schema.Wrestler{Name: "Nova"}

	claimed := dailyEmbed(w, schema.DailyResult{AlreadyClaimed: true, NextClaimIn: 5*time.Hour + 12*time.Minute}, s)
	assert.Equal(t, "Nova can claim again in 5h 12m.", claimed.Description)

	paid := dailyEmbed(w, schema.DailyResult{Reward: 250, Streak: 7, LongestStreak: 7, Milestone: 7, Balance: 900}, s)
	assert.Contains(t, paid.Description, "Nova earned $250.")
	assert.Contains(t, paid.Description, "7 day milestone")
	assert.Equal(t, "7 (best 7)", fieldValue(paid, "Streak"))
}

func TestInactivityEmbed(t *testing.T) {
	e := inactivityEmbed(schema.InactivityReport{
		GuildID:  "g1",
		Inactive: []schema.InactivityNotice{{Name: "Titan", UserID: "u1", DaysInactive: 31, IsChampion: true}},
		Warnings: []schema.InactivityNotice{{Name: "Nova", UserID: "u2", DaysRemaining: 5}},
	})
	require.Len(t, e.Fields, 2)
	assert.Equal(t, "<@u1> **Titan** (31 days) 🏆 title may be vacated", e.Fields[0].Value)
	assert.Equal(t, "<@u2> **Nova**: 5 days left", e.Fields[1].Value)
}

func TestRosterEmbed(t *testing.T) {
	assert.Contains(t, rosterEmbed("Roster", nil).Description, "/create_wrestler")

	e := rosterEmbed("Roster", []schema.Wrestler{{Name: "Titan", Level: 3, Alignment: schema.Face, Archetype: schema.Giant, Wins: 2, Inactive: true}})
	assert.Contains(t, e.Description, "**Titan** · Lv 3 Face Giant")
	assert.Contains(t, e.Description, "inactive")
}

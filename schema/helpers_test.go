package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRomanNumeral(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{1994, "MCMXCIV"},
		{2026, "MMXXVI"},
		{0, "0"}, // no zero in Roman numerals
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RomanNumeral(tt.n))
		})
	}
}

func TestEventInstanceName(t *testing.T) {
	assert.Equal(t, "Uprising III", EventInstanceName("Uprising", EventTypeNumbered, 3))
	assert.Equal(t, "Monday Mayhem #12", EventInstanceName("Monday Mayhem", "Weekly", 12))
}

func TestTraitDisplay(t *testing.T) {
	assert.Equal(t, "Prideful ↔ Egotistical", TraitDisplayName(PridefulEgotistical))
	assert.Equal(t, "Loyal", TraitLean(LoyalTreacherous, 20))
	assert.Equal(t, "Aggressive", TraitLean(DisciplinedAggressive, -5))
	assert.Equal(t, "Neutral", TraitLean(BoldCowardly, 0))
	assert.Equal(t, "mystery", TraitDisplayName("mystery"))
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-2500, "-2,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatThousands(tt.n))
	}
}

func TestStreakLabel(t *testing.T) {
	assert.Equal(t, "W5", StreakEntry{Winning: true, Length: 5}.Label())
	assert.Equal(t, "L2", StreakEntry{Length: 2}.Label())
}

func TestParseEnums(t *testing.T) {
	a, ok := ParseArchetype("high flyer")
	assert.True(t, ok)
	assert.Equal(t, HighFlyer, a)
	_, ok = ParseArchetype("Brawler")
	assert.False(t, ok)

	al, ok := ParseAlignment("HEEL")
	assert.True(t, ok)
	assert.Equal(t, Heel, al)

	_, ok = ParseGender("mixed")
	assert.False(t, ok, "mixed is only a championship requirement")

	w, ok := ParseWeightClass("ultraheavy")
	assert.True(t, ok)
	assert.Equal(t, Ultraheavy, w)
}

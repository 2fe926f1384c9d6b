package schema

import (
	"strconv"
	"strings"
)

var romanNumerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// traitPoles holds the positive and negative pole of each trait.
var traitPoles = map[TraitKey][2]string{
	PridefulEgotistical:     {"Prideful", "Egotistical"},
	RespectfulDisrespectful: {"Respectful", "Disrespectful"},
	PerseverantDesperate:    {"Perseverant", "Desperate"},
	LoyalTreacherous:        {"Loyal", "Treacherous"},
	BoldCowardly:            {"Bold", "Cowardly"},
	DisciplinedAggressive:   {"Disciplined", "Aggressive"},
}

// RomanNumeral converts n to Roman numerals. Non-positive values return the decimal form.
func RomanNumeral(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	var b strings.Builder
	for _, r := range romanNumerals {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return b.String()
}

// EventInstanceName names the nth occurrence of a template.
// Numbered events use Roman numerals, every other show type uses "#N".
func EventInstanceName(templateName, eventType string, n int) string {
	if eventType == EventTypeNumbered {
		return templateName + " " + RomanNumeral(n)
	}
	return templateName + " #" + strconv.Itoa(n)
}

// TraitDisplayName renders a trait as "Prideful ↔ Egotistical".
func TraitDisplayName(t TraitKey) string {
	poles, ok := traitPoles[t]
	if !ok {
		return string(t)
	}
	return poles[0] + " ↔ " + poles[1]
}

// TraitLean returns the pole a value leans towards, or "Neutral" at zero.
func TraitLean(t TraitKey, value int) string {
	poles, ok := traitPoles[t]
	switch {
	case !ok || value == 0:
		return "Neutral"
	case value > 0:
		return poles[0]
	default:
		return poles[1]
	}
}

// FormatThousands renders n with comma separators, e.g. 1500 as "1,500".
func FormatThousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func itoa(n int) string { return strconv.Itoa(n) }

// AvailablePersonas returns the personas of the default catalog open to the given combination.
func AvailablePersonas(a Archetype, w WeightClass, align Alignment) []Persona {
	return DefaultCatalog().AvailablePersonas(a, w, align)
}

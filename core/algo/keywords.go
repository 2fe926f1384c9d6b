package algo

import (
	"strings"

	"github.com/huangsam/ringside/schema"
)

// moveKeywords holds the lowercase substrings that tag a move with a keyword class.
var moveKeywords = map[schema.KeywordClass][]string{
	schema.HeelMoves:      {"choke", "sleeper", "guillotine", "rear naked", "trap", "heel", "behind"},
	schema.FaceMoves:      {"splash", "press", "crossbody", "moonsault", "elbow drop"},
	schema.TechnicalMoves: {"lock", "bar", "crab", "stretch", "figure"},
	schema.PowerMoves:     {"slam", "bomb", "press", "gorilla", "military"},
	schema.AerialMoves:    {"diving", "springboard", "moonsault", "splash", "shooting star", "top rope"},
}

// archetypeAffinity maps an archetype to the keyword class it favors.
var archetypeAffinity = map[schema.Archetype]schema.KeywordClass{
	schema.Technical:  schema.TechnicalMoves,
	schema.Powerhouse: schema.PowerMoves,
	schema.HighFlyer:  schema.AerialMoves,
}

// Keywords returns the substrings of a keyword class.
func Keywords(class schema.KeywordClass) []string {
	return moveKeywords[class]
}

// MatchesClass reports whether a move name contains any keyword of class.
func MatchesClass(move string, class schema.KeywordClass) bool {
	lower := strings.ToLower(move)
	for _, kw := range moveKeywords[class] {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsHeelMove reports whether a move carries a heel keyword.
func IsHeelMove(move string) bool {
	return MatchesClass(move, schema.HeelMoves)
}

// FilterOut returns the moves that do not match class, preserving order.
// Callers forcing a replacement must filter before calling Recommend.
func FilterOut(moves []string, class schema.KeywordClass) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		if !MatchesClass(m, class) {
			out = append(out, m)
		}
	}
	return out
}

package schema

import "strings"

// Custom string types for type safety.
type (
	// Archetype is the physical/style category of a wrestler.
	Archetype string

	// Alignment is the narrative role of a wrestler.
	Alignment string

	// WeightClass is the division a wrestler competes in.
	WeightClass string

	// TraitKey names one of the six bidirectional personality traits.
	TraitKey string

	// KeywordClass tags a move name by lexical keyword membership.
	KeywordClass string

	// QuestionKey is one of the questionnaire prompts.
	QuestionKey string

	// Gender is the division gender of a wrestler.
	Gender string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for league storage.
	DatabaseBackend string

	// EventStatus is the lifecycle state of an event instance.
	EventStatus string

	// CardStatus is the state of a match on an event card.
	CardStatus string

	// LeaderboardStat selects the ranking of a leaderboard.
	LeaderboardStat string

	// StreakKind selects which streaks to rank.
	StreakKind string
)

// Archetypes in declaration order. Classification ties resolve to the earliest entry.
const (
	Giant      Archetype = "Giant"
	Powerhouse Archetype = "Powerhouse"
	Technical  Archetype = "Technical"
	HighFlyer  Archetype = "High Flyer"
	Striker    Archetype = "Striker"
)

// All alignments supported.
const (
	Face    Alignment = "Face"
	Heel    Alignment = "Heel"
	Tweener Alignment = "Tweener"
)

// All weight classes, lightest first.
const (
	Cruiser    WeightClass = "Cruiser"
	Light      WeightClass = "Light"
	Heavy      WeightClass = "Heavy"
	Superheavy WeightClass = "Superheavy"
	Ultraheavy WeightClass = "Ultraheavy"
)

// Personality traits. Positive values lean to the first pole.
const (
	PridefulEgotistical     TraitKey = "Prideful_Egotistical"
	RespectfulDisrespectful TraitKey = "Respectful_Disrespectful"
	PerseverantDesperate    TraitKey = "Perseverant_Desperate"
	LoyalTreacherous        TraitKey = "Loyal_Treacherous"
	BoldCowardly            TraitKey = "Bold_Cowardly"
	DisciplinedAggressive   TraitKey = "Disciplined_Aggressive"
)

// Keyword classes used to tag moves.
const (
	HeelMoves      KeywordClass = "heel"
	FaceMoves      KeywordClass = "face"
	TechnicalMoves KeywordClass = "technical"
	PowerMoves     KeywordClass = "power"
	AerialMoves    KeywordClass = "aerial"
)

// Questionnaire keys.
const (
	PhysicalBuild      QuestionKey = "physical_build"
	InRingApproach     QuestionKey = "in_ring_approach"
	OpponentBehavior   QuestionKey = "opponent_behavior"
	HandlingAdversity  QuestionKey = "handling_adversity"
	CrowdReaction      QuestionKey = "crowd_reaction"
	VictoryCelebration QuestionKey = "victory_celebration"
	Partnership        QuestionKey = "partnership"
	MatchTempo         QuestionKey = "match_tempo"
)

// All genders supported. Mixed is only valid as a championship requirement.
const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Mixed  Gender = "Mixed"
)

// AllWeights is the championship weight requirement that accepts every class.
const AllWeights WeightClass = "All"

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
	YAMLOut OutputMode = "yaml"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Event lifecycle states.
const (
	EventPlanned EventStatus = "planned"
	EventOngoing EventStatus = "ongoing"
	EventClosed  EventStatus = "closed"
)

// Card match states.
const (
	CardPending   CardStatus = "pending"
	CardCompleted CardStatus = "completed"
)

// Leaderboard stats.
const (
	StatWins     LeaderboardStat = "wins"
	StatWinRate  LeaderboardStat = "winrate"
	StatCurrency LeaderboardStat = "currency"
	StatLevel    LeaderboardStat = "level"
)

// Streak kinds.
const (
	StreakOverall StreakKind = "overall"
	StreakHot     StreakKind = "hot"
	StreakCold    StreakKind = "cold"
)

// EventTypeNumbered is the template type whose instances are numbered with Roman numerals.
const EventTypeNumbered = "Event"

// AllArchetypes lists archetypes in tie-break order.
var AllArchetypes = []Archetype{Giant, Powerhouse, Technical, HighFlyer, Striker}

// AllAlignments lists all alignments.
var AllAlignments = []Alignment{Face, Heel, Tweener}

// AllWeightClasses lists weight classes, lightest first.
var AllWeightClasses = []WeightClass{Cruiser, Light, Heavy, Superheavy, Ultraheavy}

// AllTraits lists the personality traits in display order.
var AllTraits = []TraitKey{
	PridefulEgotistical,
	RespectfulDisrespectful,
	PerseverantDesperate,
	LoyalTreacherous,
	BoldCowardly,
	DisciplinedAggressive,
}

// AllQuestions lists the questionnaire prompts in the order they are asked.
var AllQuestions = []QuestionKey{
	PhysicalBuild,
	InRingApproach,
	OpponentBehavior,
	HandlingAdversity,
	CrowdReaction,
	VictoryCelebration,
	Partnership,
	MatchTempo,
}

// QuestionOptions lists the recognized option values per question.
var QuestionOptions = map[QuestionKey][]string{
	PhysicalBuild:      {"towering", "muscular", "lean", "compact", "athletic"},
	InRingApproach:     {"overpower", "outthink", "outpace", "high_risk", "wear_down"},
	OpponentBehavior:   {"respect", "mock", "ignore", "study"},
	HandlingAdversity:  {"fight_harder", "bend_rules", "strategic", "risk_it_all"},
	CrowdReaction:      {"inspire", "provoke", "entertain", "intimidate"},
	VictoryCelebration: {"humble", "showboat", "acknowledge", "leave_quickly"},
	Partnership:        {"trust_completely", "watch_back", "cautious", "strike_first"},
	MatchTempo:         {"fast_paced", "methodical", "explosive", "unpredictable"},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
	YAMLOut: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidLeaderboardStats lists all valid leaderboard stats.
var ValidLeaderboardStats = map[LeaderboardStat]struct{}{
	StatWins:     {},
	StatWinRate:  {},
	StatCurrency: {},
	StatLevel:    {},
}

// ValidStreakKinds lists all valid streak kinds.
var ValidStreakKinds = map[StreakKind]struct{}{
	StreakOverall: {},
	StreakHot:     {},
	StreakCold:    {},
}

// ParseAlignment returns the alignment matching s, ignoring case.
func ParseAlignment(s string) (Alignment, bool) {
	for _, a := range AllAlignments {
		if strings.EqualFold(string(a), s) {
			return a, true
		}
	}
	return "", false
}

// ParseGender returns the wrestler gender matching s, ignoring case.
func ParseGender(s string) (Gender, bool) {
	for _, g := range []Gender{Male, Female} {
		if strings.EqualFold(string(g), s) {
			return g, true
		}
	}
	return "", false
}

// ParseWeightClass returns the weight class matching s, ignoring case.
func ParseWeightClass(s string) (WeightClass, bool) {
	for _, w := range AllWeightClasses {
		if strings.EqualFold(string(w), s) {
			return w, true
		}
	}
	return "", false
}

// ParseArchetype returns the archetype matching s, ignoring case.
func ParseArchetype(s string) (Archetype, bool) {
	for _, a := range AllArchetypes {
		if strings.EqualFold(string(a), s) {
			return a, true
		}
	}
	return "", false
}

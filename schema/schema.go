// Package schema has the league models, catalog and shared constants for ringside.
package schema

import (
	"fmt"
	"time"
)

// QuestionnaireAnswers maps a question to the option the player picked.
type QuestionnaireAnswers map[QuestionKey]string

// PersonalityTraits maps each trait to a value in [-100, 100].
type PersonalityTraits map[TraitKey]int

// ArchetypeResult is the classification of a questionnaire.
type ArchetypeResult struct {
	Archetype   Archetype   `json:"archetype"`
	Alignment   Alignment   `json:"alignment"`
	WeightClass WeightClass `json:"weight_class"`
}

// Wrestler is a player-owned character in a guild.
type Wrestler struct {
	ID          int64             `json:"id"`
	GuildID     string            `json:"guild_id"`
	UserID      string            `json:"user_id"`
	Name        string            `json:"name"`
	Gender      Gender            `json:"gender"`
	Archetype   Archetype         `json:"archetype"`
	Alignment   Alignment         `json:"alignment"`
	WeightClass WeightClass       `json:"weight_class"`
	Persona     string            `json:"persona"`
	HeightCm    int               `json:"height_cm"`
	HeightFeet  string            `json:"height_feet"`
	BodyType    string            `json:"body_type"`
	Finisher    string            `json:"finisher"`
	Signature   string            `json:"signature"`
	Attributes  map[string]int    `json:"attributes"`
	Personality PersonalityTraits `json:"personality"`

	Currency int `json:"currency"`
	Level    int `json:"level"`
	XP       int `json:"xp"`
	Wins     int `json:"wins"`
	Losses   int `json:"losses"`

	Retired    bool       `json:"retired"`
	Inactive   bool       `json:"inactive"`
	LastActive *time.Time `json:"last_active,omitempty"`

	DailyStreak   int        `json:"daily_streak"`
	LongestStreak int        `json:"longest_streak"`
	LastDaily     *time.Time `json:"last_daily,omitempty"`

	FormerNames    []string   `json:"former_names,omitempty"`
	LastTurnDate   *time.Time `json:"last_turn_date,omitempty"`
	LastRenameDate *time.Time `json:"last_rename_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// MatchCount returns the number of decided matches.
func (w *Wrestler) MatchCount() int { return w.Wins + w.Losses }

// WinRate returns wins over matches as a percentage, or 0 with no matches.
func (w *Wrestler) WinRate() float64 {
	if w.MatchCount() == 0 {
		return 0
	}
	return float64(w.Wins) / float64(w.MatchCount()) * 100
}

// Record formats the win-loss record as "W-L".
func (w *Wrestler) Record() string {
	return fmt.Sprintf("%d-%d", w.Wins, w.Losses)
}

// UpgradeEntry is a purchased attribute upgrade waiting to be applied in-game.
type UpgradeEntry struct {
	ID           int64      `json:"id"`
	GuildID      string     `json:"guild_id"`
	WrestlerID   int64      `json:"wrestler_id"`
	WrestlerName string     `json:"wrestler_name"`
	Attribute    string     `json:"attribute"`
	OldValue     int        `json:"old_value"`
	NewValue     int        `json:"new_value"`
	Cost         int        `json:"cost"`
	Processed    bool       `json:"processed"`
	CreatedAt    time.Time  `json:"created_at"`
	ProcessedAt  *time.Time `json:"processed_at,omitempty"`
}

// Championship is a title belt defended in a guild.
type Championship struct {
	ID          int64       `json:"id"`
	GuildID     string      `json:"guild_id"`
	Name        string      `json:"name"`
	Gender      Gender      `json:"gender"`
	WeightClass WeightClass `json:"weight_class"`
	TagTeam     bool        `json:"tag_team"`
	ChampionIDs []int64     `json:"champion_ids"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Vacant reports whether nobody holds the title.
func (c *Championship) Vacant() bool { return len(c.ChampionIDs) == 0 }

// TitleReign is one holder's run with a championship.
type TitleReign struct {
	ID             int64      `json:"id"`
	ChampionshipID int64      `json:"championship_id"`
	WrestlerIDs    []int64    `json:"wrestler_ids"`
	ReignNumber    int        `json:"reign_number"`
	WonDate        time.Time  `json:"won_date"`
	LostDate       *time.Time `json:"lost_date,omitempty"`
	DaysHeld       int        `json:"days_held"`
	Defenses       int        `json:"defenses"`
	IsCurrent      bool       `json:"is_current"`
}

// Match is a recorded bout.
type Match struct {
	ID             int64     `json:"id"`
	GuildID        string    `json:"guild_id"`
	EventID        *int64    `json:"event_id,omitempty"`
	CardMatchID    *int64    `json:"card_match_id,omitempty"`
	MatchType      string    `json:"match_type"`
	WinnerIDs      []int64   `json:"winner_ids"`
	LoserIDs       []int64   `json:"loser_ids"`
	Finish         string    `json:"finish"`
	Rating         float64   `json:"rating"`
	MainEvent      bool      `json:"main_event"`
	TitleMatch     bool      `json:"title_match"`
	ChampionshipID *int64    `json:"championship_id,omitempty"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// Participants returns winners followed by losers.
func (m *Match) Participants() []int64 {
	out := make([]int64, 0, len(m.WinnerIDs)+len(m.LoserIDs))
	out = append(out, m.WinnerIDs...)
	return append(out, m.LoserIDs...)
}

// EventTemplate is a recurring show.
type EventTemplate struct {
	ID        int64     `json:"id"`
	GuildID   string    `json:"guild_id"`
	Name      string    `json:"name"`
	EventType string    `json:"event_type"`
	CreatedAt time.Time `json:"created_at"`
}

// EventInstance is one numbered occurrence of a template.
type EventInstance struct {
	ID          int64       `json:"id"`
	TemplateID  int64       `json:"template_id"`
	GuildID     string      `json:"guild_id"`
	Name        string      `json:"name"`
	Number      int         `json:"number"`
	Status      EventStatus `json:"status"`
	ScheduledAt *time.Time  `json:"scheduled_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// CardMatch is a booked slot on an event card.
type CardMatch struct {
	ID             int64      `json:"id"`
	EventID        int64      `json:"event_id"`
	Position       int        `json:"position"`
	MatchType      string     `json:"match_type"`
	ParticipantIDs []int64    `json:"participant_ids"`
	OpenSpots      int        `json:"open_spots"`
	MainEvent      bool       `json:"main_event"`
	Status         CardStatus `json:"status"`
	MatchID        *int64     `json:"match_id,omitempty"`
}

// Rivalry is a feud between two wrestlers.
type Rivalry struct {
	ID          int64      `json:"id"`
	GuildID     string     `json:"guild_id"`
	Wrestler1ID int64      `json:"wrestler1_id"`
	Wrestler2ID int64      `json:"wrestler2_id"`
	Wins1       int        `json:"wins1"`
	Wins2       int        `json:"wins2"`
	Active      bool       `json:"active"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
}

// Involves reports whether the wrestler is one side of the rivalry.
func (r *Rivalry) Involves(id int64) bool {
	return r.Wrestler1ID == id || r.Wrestler2ID == id
}

// TurnRecord is one alignment change.
type TurnRecord struct {
	ID            int64     `json:"id"`
	WrestlerID    int64     `json:"wrestler_id"`
	FromAlignment Alignment `json:"from_alignment"`
	ToAlignment   Alignment `json:"to_alignment"`
	FromPersona   string    `json:"from_persona"`
	ToPersona     string    `json:"to_persona"`
	TurnedAt      time.Time `json:"turned_at"`
}

package schema

import (
	"strings"
	"time"
)

// LevelUp is one level gained by a wrestler.
type LevelUp struct {
	Level  int    `json:"level"`
	Unlock string `json:"unlock"`
	Bonus  int    `json:"bonus"`
}

// XPAward is the experience granted to one wrestler and its consequences.
type XPAward struct {
	WrestlerID int64     `json:"wrestler_id"`
	Name       string    `json:"name"`
	XP         int       `json:"xp"`
	TotalXP    int       `json:"total_xp"`
	OldLevel   int       `json:"old_level"`
	NewLevel   int       `json:"new_level"`
	LevelUps   []LevelUp `json:"level_ups,omitempty"`
	Bonus      int       `json:"bonus"`
}

// LevelProgress reports how far a wrestler is towards the next level.
type LevelProgress struct {
	Level         int     `json:"level"`
	XP            int     `json:"xp"`
	NextThreshold int     `json:"next_threshold"`
	Percent       float64 `json:"percent"`
	MaxLevel      bool    `json:"max_level"`
}

// DailyResult is the outcome of a daily reward claim.
type DailyResult struct {
	WrestlerID     int64         `json:"wrestler_id"`
	AlreadyClaimed bool          `json:"already_claimed"`
	NextClaimIn    time.Duration `json:"next_claim_in"`
	Reward         int           `json:"reward"`
	Streak         int           `json:"streak"`
	LongestStreak  int           `json:"longest_streak"`
	StreakBroken   bool          `json:"streak_broken"`
	Milestone      int           `json:"milestone,omitempty"`
	Balance        int           `json:"balance"`
}

// PurchaseResult is the outcome of a shop purchase.
type PurchaseResult struct {
	Entry   UpgradeEntry `json:"entry"`
	Balance int          `json:"balance"`
}

// MatchOutcome summarizes everything a recorded match changed.
type MatchOutcome struct {
	Match             Match       `json:"match"`
	Awards            []XPAward   `json:"awards"`
	RivalryBonus      bool        `json:"rivalry_bonus"`
	TitleChange       bool        `json:"title_change"`
	TitleDefense      bool        `json:"title_defense"`
	Reign             *TitleReign `json:"reign,omitempty"`
	LinkedCardMatchID *int64      `json:"linked_card_match_id,omitempty"`
}

// InactivityNotice flags one wrestler during an inactivity sweep.
type InactivityNotice struct {
	WrestlerID    int64  `json:"wrestler_id"`
	Name          string `json:"name"`
	UserID        string `json:"user_id"`
	DaysInactive  int    `json:"days_inactive"`
	DaysRemaining int    `json:"days_remaining"`
	IsChampion    bool   `json:"is_champion"`
}

// InactivityReport is the result of sweeping one guild.
type InactivityReport struct {
	GuildID  string             `json:"guild_id"`
	Inactive []InactivityNotice `json:"inactive"`
	Warnings []InactivityNotice `json:"warnings"`
}

// LeaderboardEntry is one row of a leaderboard.
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	WrestlerID int64   `json:"wrestler_id"`
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Display    string  `json:"display"`
}

// StreakEntry is one wrestler's current run of wins or losses.
type StreakEntry struct {
	Rank       int    `json:"rank"`
	WrestlerID int64  `json:"wrestler_id"`
	Name       string `json:"name"`
	Winning    bool   `json:"winning"`
	Length     int    `json:"length"`
}

// Label renders the streak as "W5" or "L2".
func (s StreakEntry) Label() string {
	if s.Winning {
		return "W" + itoa(s.Length)
	}
	return "L" + itoa(s.Length)
}

// TurnOutcome summarizes an alignment turn.
type TurnOutcome struct {
	Wrestler      Wrestler          `json:"wrestler"`
	FromAlignment Alignment         `json:"from_alignment"`
	ToAlignment   Alignment         `json:"to_alignment"`
	FromPersona   string            `json:"from_persona"`
	ToPersona     string            `json:"to_persona"`
	OldTraits     PersonalityTraits `json:"old_traits"`
	NewTraits     PersonalityTraits `json:"new_traits"`
	OldFinisher   string            `json:"old_finisher"`
	NewFinisher   string            `json:"new_finisher,omitempty"`
	OldSignature  string            `json:"old_signature"`
	NewSignature  string            `json:"new_signature,omitempty"`
	PersonaDiff   map[string]int    `json:"persona_diff,omitempty"`
	Cost          int               `json:"cost"`
}

// RenameOutcome summarizes a rename.
type RenameOutcome struct {
	WrestlerID int64  `json:"wrestler_id"`
	OldName    string `json:"old_name"`
	NewName    string `json:"new_name"`
	Cost       int    `json:"cost"`
}

// EarnResult reports a currency award from chat activity.
type EarnResult struct {
	Amount    int     `json:"amount"`
	Wrestlers []int64 `json:"wrestlers"`
}

// ChampionView is a championship with its holders and open reign.
type ChampionView struct {
	Championship Championship `json:"championship"`
	Holders      []Wrestler   `json:"holders"`
	Reign        *TitleReign  `json:"reign,omitempty"`
}

// HolderNames joins the holder names with " & ", or returns "Vacant".
func (v ChampionView) HolderNames() string {
	if len(v.Holders) == 0 {
		return "Vacant"
	}
	names := make([]string, len(v.Holders))
	for i, w := range v.Holders {
		names[i] = w.Name
	}
	return strings.Join(names, " & ")
}

// WrestlerProfile is the Trait Engine result for a questionnaire, with move suggestions per category.
type WrestlerProfile struct {
	ArchetypeResult
	Traits          PersonalityTraits   `json:"traits"`
	Personas        []string            `json:"personas"`
	Recommendations map[string][]string `json:"recommendations"`
}

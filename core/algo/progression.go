package algo

import (
	"fmt"
	"time"

	"github.com/huangsam/ringside/schema"
)

// Progression constants.
const (
	MaxLevel          = 10
	MaxAttributeValue = 100

	TurnCost   = 1000
	RenameCost = 2000

	winnerBaseXP     = 50
	loserBaseXP      = 10
	mainEventXP      = 25
	titleMatchXP     = 100
	rivalryXPPercent = 110

	dailyBaseReward   = 100
	dailyStreakReward = 125
	dailyWeeklyReward = 200
	dailyStreakMin    = 3
)

// XPThresholds holds the total XP needed to leave each level. Index L is the bar for level L.
var XPThresholds = []int{0, 250, 850, 1950, 3750, 6450, 10250, 15450, 22450, 31950}

// levelCaps holds the highest attribute value purchasable per level.
var levelCaps = map[int]int{1: 70, 2: 75, 3: 80, 4: 85, 5: 90, 6: 92, 7: 95, 8: 97, 9: 99, 10: 100}

// levelBonuses holds the currency paid on reaching a level.
var levelBonuses = map[int]int{2: 500, 6: 1000}

// levelUnlocks describes what each level unlocks.
var levelUnlocks = map[int]string{
	1:  "Rookie Status",
	2:  "$500 Bonus",
	3:  "Signature Slot",
	4:  "Sideplates",
	5:  "Finisher Slot",
	6:  "$1,000 Bonus",
	7:  "Superfinisher",
	8:  "Custom Entrance",
	9:  "Hall of Fame",
	10: "Stable Creation",
}

// ratingBonuses are checked in order; the first rating floor met pays its bonus.
var ratingBonuses = []struct {
	floor float64
	bonus int
}{
	{5.0, 50}, {4.5, 40}, {4.0, 30}, {3.5, 20}, {3.0, 10},
}

// ShopTiers maps an attribute increase to its price.
var ShopTiers = map[int]int{1: 150, 5: 700, 10: 1300}

// DailyMilestones are the streak lengths that get called out.
var DailyMilestones = []int{3, 7, 14, 30}

// AttributeCap returns the attribute cap for a level. Unknown levels use the level 1 cap.
func AttributeCap(level int) int {
	if c, ok := levelCaps[level]; ok {
		return c
	}
	return levelCaps[1]
}

// LevelUnlock describes what a level unlocks.
func LevelUnlock(level int) string {
	return levelUnlocks[level]
}

// UpgradeValue returns the attribute value after buying amount points at a level.
// ok is false when the attribute is already at or above the cap or nothing would change.
func UpgradeValue(current, amount, level int) (next int, ok bool) {
	capValue := min(AttributeCap(level), MaxAttributeValue)
	if current >= capValue {
		return current, false
	}
	next = min(capValue, current+amount)
	return next, next > current
}

// ApplyXP adds xp to a wrestler's total and returns the resulting level and each level gained.
// Bonuses are paid for every level crossed.
func ApplyXP(level, totalXP, xp int) (newLevel, newXP int, ups []schema.LevelUp) {
	newXP = totalXP + xp
	newLevel = level
	for newLevel < MaxLevel && newXP >= XPThresholds[newLevel] {
		newLevel++
		ups = append(ups, schema.LevelUp{
			Level:  newLevel,
			Unlock: LevelUnlock(newLevel),
			Bonus:  levelBonuses[newLevel],
		})
	}
	return newLevel, newXP, ups
}

// Progress reports progress towards the next level.
func Progress(level, xp int) schema.LevelProgress {
	p := schema.LevelProgress{Level: level, XP: xp}
	if level >= MaxLevel {
		p.MaxLevel = true
		p.Percent = 100
		return p
	}
	p.NextThreshold = XPThresholds[max(level, 1)]
	p.Percent = min(100, float64(xp)/float64(p.NextThreshold)*100)
	return p
}

// MatchXP returns the XP for one participant of a match.
func MatchXP(winner, mainEvent, titleMatch bool, rating float64, rivalry bool) int {
	xp := loserBaseXP
	if winner {
		xp = winnerBaseXP
	}
	if mainEvent {
		xp += mainEventXP
	}
	if titleMatch {
		xp += titleMatchXP
	}
	if winner {
		for _, rb := range ratingBonuses {
			if rating >= rb.floor {
				xp += rb.bonus
				break
			}
		}
	}
	if rivalry {
		xp = xp * rivalryXPPercent / 100
	}
	return xp
}

// DailyClaim is the streak state after a claim.
type DailyClaim struct {
	AlreadyClaimed bool
	NextClaimIn    time.Duration
	Streak         int
	Longest        int
	Broken         bool
	Reward         int
	Milestone      int
}

// ClaimDaily computes a daily reward claim at now given the previous claim and streaks.
// Days are UTC calendar days.
func ClaimDaily(now time.Time, last *time.Time, streak, longest int) DailyClaim {
	now = now.UTC()
	today := truncateDay(now)
	if last != nil {
		lastDay := truncateDay(last.UTC())
		if lastDay.Equal(today) {
			return DailyClaim{
				AlreadyClaimed: true,
				NextClaimIn:    today.AddDate(0, 0, 1).Sub(now),
				Streak:         streak,
				Longest:        longest,
			}
		}
		if lastDay.Equal(today.AddDate(0, 0, -1)) {
			streak++
		} else {
			streak = 1
		}
	} else {
		streak = 1
	}

	c := DailyClaim{
		Streak:  streak,
		Longest: max(longest, streak),
		Broken:  last != nil && streak == 1,
		Reward:  DailyReward(streak),
	}
	for _, m := range DailyMilestones {
		if streak == m {
			c.Milestone = m
		}
	}
	return c
}

// DailyReward returns the currency paid for a claim at the given streak.
func DailyReward(streak int) int {
	switch {
	case streak%7 == 0:
		return dailyWeeklyReward
	case streak >= dailyStreakMin:
		return dailyStreakReward
	default:
		return dailyBaseReward
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns whole days elapsed from then to now.
func DaysBetween(then, now time.Time) int {
	if now.Before(then) {
		return 0
	}
	return int(now.Sub(then) / (24 * time.Hour))
}

// CooldownRemaining returns the whole days left before an action on a cooldown of days is allowed again.
// It returns 0 when last is nil or the cooldown has passed.
func CooldownRemaining(last *time.Time, now time.Time, days int) int {
	if last == nil {
		return 0
	}
	elapsed := DaysBetween(*last, now)
	if elapsed >= days {
		return 0
	}
	return days - elapsed
}

// PersonaDiff returns the attribute bonus change when switching personas. Zero changes are omitted.
func PersonaDiff(c *schema.Catalog, from, to string) map[string]int {
	diff := map[string]int{}
	if p, ok := c.Persona(from); ok {
		for attr, v := range p.BonusAttrs {
			diff[attr] -= v
		}
	}
	if p, ok := c.Persona(to); ok {
		for attr, v := range p.BonusAttrs {
			diff[attr] += v
		}
	}
	for attr, v := range diff {
		if v == 0 {
			delete(diff, attr)
		}
	}
	return diff
}

// FormatDuration renders a cooldown as "5h 12m".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}

// Package leaderboard ranks a raw snapshot of per-user metrics. Ranking is
// pure: the same snapshot, filter and timeframe always produce the same
// entries, and the snapshot itself is never modified.
package leaderboard

import (
	"fmt"
	"sort"
	"strings"

	"vitaverse/internal/models"
	"vitaverse/internal/wellness"
)

type Filter string

const (
	FilterAll      Filter = "all"
	FilterExercise Filter = "exercise"
	FilterStreak   Filter = "streak"
	FilterBadges   Filter = "badges"
)

type Timeframe string

const (
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
	TimeframeAllTime Timeframe = "allTime"
)

func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.TrimSpace(s)); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterExercise, FilterStreak, FilterBadges:
		return f, nil
	default:
		return "", fmt.Errorf("unknown filter %q", s)
	}
}

func ParseTimeframe(s string) (Timeframe, error) {
	switch t := Timeframe(strings.TrimSpace(s)); t {
	case "":
		return TimeframeAllTime, nil
	case TimeframeWeekly, TimeframeMonthly, TimeframeAllTime:
		return t, nil
	default:
		return "", fmt.Errorf("unknown timeframe %q", s)
	}
}

// Cap is the maximum number of entries kept for the timeframe; 0 means all.
func (t Timeframe) Cap() int {
	switch t {
	case TimeframeWeekly:
		return 10
	case TimeframeMonthly:
		return 15
	default:
		return 0
	}
}

func metric(f Filter, e models.LeaderboardEntry) float64 {
	switch f {
	case FilterExercise:
		return float64(e.ExerciseMinutes)
	case FilterStreak:
		return float64(e.StreakDays)
	case FilterBadges:
		return float64(e.BadgeCount)
	default:
		return e.HealthScore
	}
}

// Rank scores, sorts, caps and numbers the users of a snapshot. The score
// uses the daily exercise value; the exercise filter sorts by the cumulative
// total. Ties keep snapshot order.
func Rank(users []RawUser, f Filter, t Timeframe) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		score := wellness.HealthScore(u.SleepHours, u.WaterIntake, u.Exercise, u.StreakDays)
		if u.Score != nil {
			score = *u.Score
		}
		entries = append(entries, models.LeaderboardEntry{
			Address:         u.Address,
			HealthScore:     score,
			StreakDays:      u.StreakDays,
			ExerciseMinutes: u.ExerciseMinutes,
			WaterIntake:     u.WaterIntake,
			SleepHours:      u.SleepHours,
			BadgeCount:      u.BadgeCount,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return metric(f, entries[i]) > metric(f, entries[j])
	})

	if limit := t.Cap(); limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// FindAccount flags the entry owned by account and returns its rank, or nil
// when the account is not on the board. Addresses must match exactly apart
// from hex letter case, so a checksummed and a lowercase form of the same
// address are the same account.
func FindAccount(entries []models.LeaderboardEntry, account string) *int {
	if account == "" {
		return nil
	}
	var found *int
	for i := range entries {
		if sameAddress(entries[i].Address, account) {
			entries[i].IsCurrentUser = true
			if found == nil {
				rank := entries[i].Rank
				found = &rank
			}
		}
	}
	return found
}

// sameAddress compares hex addresses exactly, ignoring only the checksum
// casing.
func sameAddress(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

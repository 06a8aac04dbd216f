package leaderboard

import (
	"strings"
	"time"

	"vitaverse/internal/models"
)

const (
	SourceActive = "active"
	SourceTop    = "top"
)

const zeroAddress = "0x0000000000000000000000000000000000000000"

// RawUser holds one user's metrics exactly as read from the contract.
// Exercise is the latest daily value and feeds the score; ExerciseMinutes is
// the cumulative total the exercise filter ranks by. Score is set only when
// the data source supplies it.
type RawUser struct {
	Address         string   `json:"address"`
	SleepHours      uint64   `json:"sleep_hours"`
	WaterIntake     uint64   `json:"water_intake"`
	Exercise        uint64   `json:"exercise"`
	ExerciseMinutes uint64   `json:"exercise_minutes"`
	StreakDays      uint64   `json:"streak_days"`
	BadgeCount      uint64   `json:"badge_count"`
	Score           *float64 `json:"score,omitempty"`
}

type Snapshot struct {
	Users     []RawUser `json:"users"`
	FetchedAt time.Time `json:"fetched_at"`
	Source    string    `json:"source"`
}

// NewerThan reports whether s resolved after other.
func (s *Snapshot) NewerThan(other *Snapshot) bool {
	if other == nil {
		return true
	}
	return !s.FetchedAt.Before(other.FetchedAt)
}

// DropEmpty removes zero-address placeholders returned for unused slots.
func DropEmpty(users []RawUser) []RawUser {
	out := users[:0:0]
	for _, u := range users {
		if u.Address == "" || strings.EqualFold(u.Address, zeroAddress) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// Average computes the mean daily values across the snapshot.
func (s *Snapshot) Average() models.PlatformAverages {
	avg := models.PlatformAverages{Users: len(s.Users)}
	if avg.Users == 0 {
		return avg
	}
	var water, sleep, exercise float64
	for _, u := range s.Users {
		water += float64(u.WaterIntake)
		sleep += float64(u.SleepHours) / 10
		exercise += float64(u.Exercise)
	}
	n := float64(avg.Users)
	avg.WaterIntake = water / n
	avg.SleepHours = sleep / n
	avg.ExerciseMinutes = exercise / n
	return avg
}

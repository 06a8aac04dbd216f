package models

import "time"

type LeaderboardEntry struct {
	Rank            int     `json:"rank"`
	Address         string  `json:"address"`
	HealthScore     float64 `json:"health_score"`
	StreakDays      uint64  `json:"streak_days"`
	ExerciseMinutes uint64  `json:"exercise_minutes"`
	WaterIntake     uint64  `json:"water_intake"`
	SleepHours      uint64  `json:"sleep_hours"`
	BadgeCount      uint64  `json:"badge_count"`
	IsCurrentUser   bool    `json:"is_current_user"`
}

type LeaderboardResponse struct {
	Filter     string             `json:"filter"`
	Timeframe  string             `json:"timeframe"`
	Entries    []LeaderboardEntry `json:"entries"`
	TotalUsers int                `json:"total_users"`
	YourRank   *int               `json:"your_rank"`
	SnapshotAt time.Time          `json:"snapshot_at"`
	Source     string             `json:"source"`
}

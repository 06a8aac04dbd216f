package models

import "github.com/shopspring/decimal"

type Dashboard struct {
	Address       string          `json:"address"`
	Health        HealthRecord    `json:"health"`
	Stats         UserStats       `json:"stats"`
	Statistics    Statistics      `json:"statistics"`
	Badges        []Badge         `json:"badges"`
	OwnedBadges   []uint64        `json:"owned_badges"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"string"`
	BalanceTokens decimal.Decimal `json:"balance_tokens" swaggertype:"string"`
}

type PlatformAverages struct {
	Users           int     `json:"users"`
	WaterIntake     float64 `json:"water_intake"`
	SleepHours      float64 `json:"sleep_hours"`
	ExerciseMinutes float64 `json:"exercise_minutes"`
}

type BadgePopularity struct {
	BadgeID   uint64 `json:"badge_id"`
	BadgeName string `json:"badge_name"`
	Purchases int64  `json:"purchases"`
}

type PlatformStats struct {
	TotalTransactions  int64             `json:"total_transactions"`
	RecentTransactions []ContractEvent   `json:"recent_transactions"`
	Popularity         []BadgePopularity `json:"popularity"`
	Averages           *PlatformAverages `json:"averages,omitempty"`
}

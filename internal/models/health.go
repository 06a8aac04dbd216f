package models

import "vitaverse/internal/wellness"

// HealthRecord is a user's latest on-chain metrics. Raw fields keep the
// contract units; the Display fields are derived for presentation.
type HealthRecord struct {
	Address        string  `json:"address"`
	Weight         uint64  `json:"weight" example:"705"`
	SleepHours     uint64  `json:"sleep_hours" example:"75"`
	EnergyLevel    uint64  `json:"energy_level" example:"8"`
	Exercise       uint64  `json:"exercise" example:"30"`
	WaterIntake    uint64  `json:"water_intake" example:"2000"`
	LastUpdated    uint64  `json:"last_updated" example:"1760870400"`
	WeightDisplay  string  `json:"weight_display" example:"70.5"`
	SleepDisplay   string  `json:"sleep_display" example:"7.5"`
	WeightKg       float64 `json:"weight_kg" example:"70.5"`
	SleepHoursReal float64 `json:"sleep_hours_real" example:"7.5"`
}

// NewHealthRecord fills the display fields from the raw contract values.
func NewHealthRecord(address string, weight, sleep, energy, exercise, water, lastUpdated uint64) HealthRecord {
	return HealthRecord{
		Address:        address,
		Weight:         weight,
		SleepHours:     sleep,
		EnergyLevel:    energy,
		Exercise:       exercise,
		WaterIntake:    water,
		LastUpdated:    lastUpdated,
		WeightDisplay:  wellness.FormatTenths(weight),
		SleepDisplay:   wellness.FormatTenths(sleep),
		WeightKg:       wellness.FromTenths(weight),
		SleepHoursReal: wellness.FromTenths(sleep),
	}
}

type UserStats struct {
	Address       string `json:"address"`
	StreakDays    uint64 `json:"streak_days"`
	LastUpdateDay uint64 `json:"last_update_day"`
	TotalExercise uint64 `json:"total_exercise"`
	WaterIntake   uint64 `json:"water_intake"`
	BadgeCount    uint64 `json:"badge_count"`
}

// Statistics is the derived personal statistics panel.
type Statistics struct {
	StreakDays          uint64            `json:"streak_days"`
	DaysSinceLastUpdate int               `json:"days_since_last_update"`
	UpdatedToday        bool              `json:"updated_today"`
	GoalsAchieved       int               `json:"goals_achieved"`
	GoalsTotal          int               `json:"goals_total"`
	GoalsPercent        float64           `json:"goals_percent"`
	HydrationPercent    float64           `json:"hydration_percent"`
	SleepPercent        float64           `json:"sleep_percent"`
	ExercisePercent     float64           `json:"exercise_percent"`
	ConsistencyScore    int               `json:"consistency_score"`
	HealthScore         float64           `json:"health_score"`
	EnergyLabel         string            `json:"energy_label"`
	Tips                []wellness.Tip    `json:"tips"`
	Averages            *PlatformAverages `json:"averages,omitempty"`
}

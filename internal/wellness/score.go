// Package wellness holds the arithmetic behind every derived health value
// shown to a user: the ranking score, badge progress and the statistics
// panel. Nothing here talks to the chain.
package wellness

// HealthScore combines sleep (stored ×10), hydration, exercise and streak
// into the ranking score. The result is intentionally unclamped.
func HealthScore(sleepTenths, waterIntake, exerciseMinutes, streakDays uint64) float64 {
	sleepHours := float64(sleepTenths) / 10
	return sleepHours*20 +
		float64(waterIntake)/100 +
		float64(exerciseMinutes)/10 +
		float64(streakDays)*5
}

// ClampPercent bounds a percentage to [0, 100] for progress bars.
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func percentOf(value, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return ClampPercent(value / target * 100)
}

package wellness

import "time"

type Tip struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// DaysSince counts whole days between lastUpdated (unix seconds) and now.
// A record that was never updated reports zero.
func DaysSince(lastUpdated uint64, now time.Time) int {
	if lastUpdated == 0 {
		return 0
	}
	diff := now.Sub(time.Unix(int64(lastUpdated), 0))
	if diff < 0 {
		return 0
	}
	return int(diff / (24 * time.Hour))
}

// ConsistencyScore is the 0-100 wellness consistency value: ten points per
// streak day up to 100, plus a bonus for each healthy daily value.
func ConsistencyScore(streakDays, waterIntake, sleepTenths, exercise uint64) int {
	base := streakDays * 10
	if base > 100 {
		base = 100
	}
	if waterIntake >= HydrationTipThresholdMl {
		base += 5
	}
	if FromTenths(sleepTenths) >= SleepTipThresholdHours {
		base += 5
	}
	if exercise >= ExerciseTipThresholdMins {
		base += 5
	}
	if base > 100 {
		base = 100
	}
	return int(base)
}

func HydrationPercent(waterIntake uint64) float64 {
	return percentOf(float64(waterIntake), HydrationDailyTargetMl)
}

func SleepPercent(sleepTenths uint64) float64 {
	return percentOf(FromTenths(sleepTenths), RecommendedSleepHours)
}

func ExercisePercent(exercise uint64) float64 {
	return percentOf(float64(exercise), RecommendedExerciseMins)
}

func EnergyLabel(level uint64) string {
	switch {
	case level >= 8:
		return "Excellent energy!"
	case level >= 6:
		return "Good energy level"
	case level >= 4:
		return "Moderate energy"
	default:
		return "Low energy - get some rest"
	}
}

func GoalsPercent(achieved, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(achieved) / float64(total) * 100
}

// Tips lists the personalised suggestions for the current day's values.
func Tips(streakDays, waterIntake, sleepTenths, exercise uint64) []Tip {
	var tips []Tip
	if waterIntake < HydrationTipThresholdMl {
		tips = append(tips, Tip{
			Key:     "hydration",
			Title:   "Increase Your Hydration",
			Message: "Try to drink at least 2000ml of water daily. Set reminders throughout the day.",
		})
	}
	if FromTenths(sleepTenths) < SleepTipThresholdHours {
		tips = append(tips, Tip{
			Key:     "sleep",
			Title:   "Improve Sleep Quality",
			Message: "Aim for 7-8 hours of sleep each night for optimal health benefits.",
		})
	}
	if exercise < ExerciseTipThresholdMins {
		tips = append(tips, Tip{
			Key:     "activity",
			Title:   "Increase Activity Level",
			Message: "Try to get at least 30 minutes of exercise daily for better health.",
		})
	}
	if streakDays < StreakTipThresholdDays {
		tips = append(tips, Tip{
			Key:     "streak",
			Title:   "Build Your Streak",
			Message: "Update your data daily to build your streak and earn more badges!",
		})
	}
	if len(tips) == 0 {
		tips = append(tips, Tip{
			Key:     "great",
			Title:   "Great Job!",
			Message: "You're doing great in all wellness categories. Keep it up!",
		})
	}
	return tips
}

package wellness

// Badge types as stored in the contract's bytes32 type field.
const (
	BadgeEarlyBird      = "EarlyBird"
	BadgeWorkoutWarrior = "WorkoutWarrior"
	BadgeHydrationHero  = "HydrationHero"
)

const (
	EarlyBirdStreakDays      = 7
	WorkoutWarriorMinutes    = 1000
	HydrationDailyTargetMl   = 2500
	HydrationHeroStreakDays  = 14
	RecommendedSleepHours    = 8
	RecommendedExerciseMins  = 60
	HydrationTipThresholdMl  = 2000
	SleepTipThresholdHours   = 7
	ExerciseTipThresholdMins = 30
	StreakTipThresholdDays   = 3
)

type ProgressInput struct {
	StreakDays    uint64
	TotalExercise uint64
	WaterIntake   uint64
}

// BadgeProgress returns the display percentage for a badge type. The second
// return is false for types without a known progress rule.
func BadgeProgress(badgeType string, in ProgressInput) (float64, bool) {
	switch badgeType {
	case BadgeEarlyBird:
		return percentOf(float64(in.StreakDays), EarlyBirdStreakDays), true
	case BadgeWorkoutWarrior:
		return percentOf(float64(in.TotalExercise), WorkoutWarriorMinutes), true
	case BadgeHydrationHero:
		if in.WaterIntake >= HydrationDailyTargetMl {
			return percentOf(float64(in.StreakDays), HydrationHeroStreakDays), true
		}
		return percentOf(float64(in.WaterIntake), HydrationDailyTargetMl), true
	default:
		return 0, false
	}
}

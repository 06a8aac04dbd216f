package wellness

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name     string
		sleep    uint64
		water    uint64
		exercise uint64
		streak   uint64
		expected float64
	}{
		{name: "zero", expected: 0},
		{name: "default record", sleep: 75, water: 2000, exercise: 30, expected: 150 + 20 + 3},
		{name: "with streak", sleep: 80, water: 2500, exercise: 1000, streak: 7, expected: 160 + 25 + 100 + 35},
		{name: "unclamped", sleep: 240, water: 100000, exercise: 100000, streak: 365, expected: 480 + 1000 + 10000 + 1825},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, HealthScore(tt.sleep, tt.water, tt.exercise, tt.streak), 1e-9)
		})
	}
}

func TestHealthScoreMonotonic(t *testing.T) {
	base := [4]uint64{70, 2000, 30, 3}
	score := func(v [4]uint64) float64 { return HealthScore(v[0], v[1], v[2], v[3]) }
	for i := range base {
		for step := uint64(1); step <= 50; step += 7 {
			bumped := base
			bumped[i] += step
			assert.GreaterOrEqual(t, score(bumped), score(base), "input %d step %d", i, step)
		}
	}
}

func TestFixedPointRoundTrip(t *testing.T) {
	for tenths := 0; tenths <= 3000; tenths++ {
		display := fmt.Sprintf("%d.%d", tenths/10, tenths%10)
		var v float64
		_, err := fmt.Sscanf(display, "%g", &v)
		assert.NoError(t, err)

		stored := ToTenths(v)
		assert.Equal(t, uint64(tenths), stored, display)
		assert.Equal(t, display, FormatTenths(stored))
	}

	assert.Equal(t, uint64(705), ToTenths(70.5))
	assert.Equal(t, "70.5", FormatTenths(705))
	assert.Equal(t, "70.0", FormatTenths(700))
	assert.Equal(t, 70.5, FromTenths(705))
	assert.Equal(t, uint64(75), ToTenths(7.54))
	assert.Equal(t, uint64(0), ToTenths(-3))
}

func TestBadgeProgress(t *testing.T) {
	in := ProgressInput{StreakDays: 7, WaterIntake: 2600, TotalExercise: 1000}

	early, ok := BadgeProgress(BadgeEarlyBird, in)
	assert.True(t, ok)
	assert.Equal(t, 100.0, early)

	hydration, ok := BadgeProgress(BadgeHydrationHero, in)
	assert.True(t, ok)
	assert.InDelta(t, 50.0, hydration, 1e-9)

	workout, ok := BadgeProgress(BadgeWorkoutWarrior, in)
	assert.True(t, ok)
	assert.Equal(t, 100.0, workout)

	_, ok = BadgeProgress("Marathoner", in)
	assert.False(t, ok)
}

func TestBadgeProgressBelowHydrationTarget(t *testing.T) {
	p, _ := BadgeProgress(BadgeHydrationHero, ProgressInput{StreakDays: 30, WaterIntake: 1250})
	assert.InDelta(t, 50.0, p, 1e-9)

	p, _ = BadgeProgress(BadgeEarlyBird, ProgressInput{StreakDays: 30})
	assert.Equal(t, 100.0, p)

	p, _ = BadgeProgress(BadgeWorkoutWarrior, ProgressInput{TotalExercise: 250})
	assert.InDelta(t, 25.0, p, 1e-9)
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysSince(0, now))
	assert.Equal(t, 0, DaysSince(uint64(now.Add(-3*time.Hour).Unix()), now))
	assert.Equal(t, 2, DaysSince(uint64(now.Add(-50*time.Hour).Unix()), now))
	assert.Equal(t, 0, DaysSince(uint64(now.Add(time.Hour).Unix()), now))
}

func TestConsistencyScore(t *testing.T) {
	assert.Equal(t, 0, ConsistencyScore(0, 0, 0, 0))
	assert.Equal(t, 45, ConsistencyScore(3, 2000, 70, 30))
	assert.Equal(t, 100, ConsistencyScore(10, 2500, 80, 60))
	assert.Equal(t, 100, ConsistencyScore(9, 2500, 80, 60))
}

func TestEnergyLabel(t *testing.T) {
	assert.Equal(t, "Excellent energy!", EnergyLabel(9))
	assert.Equal(t, "Good energy level", EnergyLabel(6))
	assert.Equal(t, "Moderate energy", EnergyLabel(4))
	assert.Equal(t, "Low energy - get some rest", EnergyLabel(1))
}

func TestTips(t *testing.T) {
	keys := func(tips []Tip) []string {
		out := make([]string, 0, len(tips))
		for _, tip := range tips {
			out = append(out, tip.Key)
		}
		return out
	}

	assert.Equal(t, []string{"hydration", "sleep", "activity", "streak"}, keys(Tips(0, 1500, 60, 10)))
	assert.Equal(t, []string{"great"}, keys(Tips(5, 2500, 80, 45)))
}

func TestPercents(t *testing.T) {
	assert.Equal(t, 100.0, HydrationPercent(4000))
	assert.InDelta(t, 50.0, SleepPercent(40), 1e-9)
	assert.InDelta(t, 50.0, ExercisePercent(30), 1e-9)
	assert.InDelta(t, 66.666, GoalsPercent(2, 3), 1e-3)
	assert.Equal(t, 0.0, GoalsPercent(1, 0))
}

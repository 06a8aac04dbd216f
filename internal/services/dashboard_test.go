package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vitaverse/internal/chain"
	"vitaverse/internal/mocks"
	"vitaverse/internal/models"
	"vitaverse/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubAverages struct {
	avg *models.PlatformAverages
	err error
}

func (s stubAverages) Averages(context.Context) (*models.PlatformAverages, error) {
	return s.avg, s.err
}

func TestOverview(t *testing.T) {
	contract := &mocks.MockContract{Address: contractAddr}
	token := new(mocks.MockToken)
	for _, d := range catalogueFixture() {
		contract.On("GetBadge", mock.Anything, d.ID).Return(d, nil)
		contract.On("HasBadge", mock.Anything, alice, d.ID).Return(d.ID == 0, nil)
	}
	contract.On("GetHealthData", mock.Anything, alice).
		Return(chain.HealthData{Weight: 705, SleepHours: 80, EnergyLevel: 9, Exercise: 60, WaterIntake: 2500}, nil)
	contract.On("GetUserStats", mock.Anything, alice).
		Return(chain.UserStats{StreakDays: 7, TotalExercise: 500, WaterIntake: 2500, BadgeCount: 1}, nil)
	token.On("BalanceOf", mock.Anything, alice).Return(tokens(120), nil)

	badges := services.NewBadgeService(contract, token, nil, nil, 3, 18)
	svc := services.NewDashboardService(contract, token, badges, nil, 18)

	dash, err := svc.Overview(context.Background(), alice)
	require.NoError(t, err)

	assert.Equal(t, alice.Hex(), dash.Address)
	assert.Equal(t, "8.0", dash.Health.SleepDisplay)
	assert.Equal(t, uint64(7), dash.Stats.StreakDays)
	assert.Equal(t, []uint64{0}, dash.OwnedBadges)
	assert.Equal(t, "120", dash.BalanceTokens.String())
	require.Len(t, dash.Badges, 3)
	assert.True(t, dash.Badges[0].Earned)
	require.NotNil(t, dash.Badges[1].Progress)
	assert.Equal(t, 50.0, *dash.Badges[1].Progress)

	assert.Equal(t, 1, dash.Statistics.GoalsAchieved)
	assert.Equal(t, 3, dash.Statistics.GoalsTotal)
	assert.Equal(t, 100.0, dash.Statistics.HydrationPercent)
	assert.Equal(t, 100.0, dash.Statistics.ExercisePercent)
	// 8h*20 + 2500/100 + 60/10 + 7*5
	assert.InDelta(t, 226.0, dash.Statistics.HealthScore, 1e-9)
}

func TestOverviewFailsOnAnyRead(t *testing.T) {
	contract := &mocks.MockContract{Address: contractAddr}
	token := new(mocks.MockToken)
	contract.On("GetHealthData", mock.Anything, alice).Return(chain.HealthData{}, nil)
	contract.On("GetUserStats", mock.Anything, alice).Return(chain.UserStats{}, nil)
	token.On("BalanceOf", mock.Anything, alice).Return(nil, chain.ErrTransient)

	badges := services.NewBadgeService(contract, token, nil, nil, 0, 18)
	svc := services.NewDashboardService(contract, token, badges, nil, 18)

	_, err := svc.Overview(context.Background(), alice)
	assert.ErrorIs(t, err, chain.ErrTransient)
}

func TestStatisticsAttachesAverages(t *testing.T) {
	contract := &mocks.MockContract{Address: contractAddr}
	contract.On("GetHealthData", mock.Anything, alice).
		Return(chain.HealthData{SleepHours: 70, Exercise: 30, WaterIntake: 2000}, nil)
	contract.On("GetUserStats", mock.Anything, alice).Return(chain.UserStats{StreakDays: 2}, nil)
	contract.On("HasBadge", mock.Anything, alice, uint64(0)).Return(true, nil)
	contract.On("HasBadge", mock.Anything, alice, uint64(1)).Return(true, nil)
	contract.On("HasBadge", mock.Anything, alice, uint64(2)).Return(false, nil)

	avg := &models.PlatformAverages{Users: 4, SleepHours: 7.2}
	badges := services.NewBadgeService(contract, nil, nil, nil, 3, 18)
	svc := services.NewDashboardService(contract, nil, badges, stubAverages{avg: avg}, 18)

	stats, err := svc.Statistics(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GoalsAchieved)
	assert.Equal(t, 3, stats.GoalsTotal)
	assert.Equal(t, avg, stats.Averages)
}

func TestStatisticsWithoutAverages(t *testing.T) {
	contract := &mocks.MockContract{Address: contractAddr}
	contract.On("GetHealthData", mock.Anything, alice).Return(chain.HealthData{}, nil)
	contract.On("GetUserStats", mock.Anything, alice).Return(chain.UserStats{}, nil)

	badges := services.NewBadgeService(contract, nil, nil, nil, 0, 18)
	svc := services.NewDashboardService(contract, nil, badges, stubAverages{err: errors.New("no snapshot")}, 18)

	stats, err := svc.Statistics(context.Background(), alice)
	require.NoError(t, err)
	assert.Nil(t, stats.Averages)
	assert.Equal(t, 0.0, stats.GoalsPercent)
}

func TestBuildStatistics(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	t.Run("updated today", func(t *testing.T) {
		h := chain.HealthData{SleepHours: 75, EnergyLevel: 8, Exercise: 30, WaterIntake: 2000, LastUpdated: uint64(now.Add(-2 * time.Hour).Unix())}
		st := chain.UserStats{StreakDays: 3}

		out := services.BuildStatistics(h, st, 1, 4, now)

		assert.True(t, out.UpdatedToday)
		assert.Equal(t, 0, out.DaysSinceLastUpdate)
		assert.Equal(t, 25.0, out.GoalsPercent)
		assert.Equal(t, 45, out.ConsistencyScore)
		assert.Equal(t, 80.0, out.HydrationPercent)
	})

	t.Run("never updated", func(t *testing.T) {
		out := services.BuildStatistics(chain.HealthData{}, chain.UserStats{}, 0, 3, now)

		assert.False(t, out.UpdatedToday)
		assert.Equal(t, 0, out.DaysSinceLastUpdate)
		assert.Equal(t, 0.0, out.HealthScore)
	})

	t.Run("stale", func(t *testing.T) {
		h := chain.HealthData{LastUpdated: uint64(now.Add(-72 * time.Hour).Unix())}

		out := services.BuildStatistics(h, chain.UserStats{}, 0, 0, now)

		assert.False(t, out.UpdatedToday)
		assert.Equal(t, 3, out.DaysSinceLastUpdate)
	})
}

package services

import (
	"context"
	"math/big"
	"time"

	"vitaverse/internal/chain"
	"vitaverse/internal/models"
	"vitaverse/internal/wellness"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	contract chain.Contract
	token    chain.Token
	badges   *BadgeService
	averages AveragesSource
	decimals int32
	now      func() time.Time
}

func NewDashboardService(contract chain.Contract, token chain.Token, badges *BadgeService, averages AveragesSource, decimals int32) *DashboardService {
	return &DashboardService{
		contract: contract,
		token:    token,
		badges:   badges,
		averages: averages,
		decimals: decimals,
		now:      time.Now,
	}
}

func healthRecord(account common.Address, h chain.HealthData) models.HealthRecord {
	return models.NewHealthRecord(account.Hex(), h.Weight, h.SleepHours, h.EnergyLevel, h.Exercise, h.WaterIntake, h.LastUpdated)
}

func userStats(account common.Address, st chain.UserStats) models.UserStats {
	return models.UserStats{
		Address:       account.Hex(),
		StreakDays:    st.StreakDays,
		LastUpdateDay: st.LastUpdateDay,
		TotalExercise: st.TotalExercise,
		WaterIntake:   st.WaterIntake,
		BadgeCount:    st.BadgeCount,
	}
}

// Overview reads everything the dashboard shows. The reads are independent
// of each other and run concurrently; any failure fails the whole view.
func (s *DashboardService) Overview(ctx context.Context, account common.Address) (*models.Dashboard, error) {
	var (
		health  chain.HealthData
		stats   chain.UserStats
		details []chain.BadgeDetails
		owned   []bool
		balance *big.Int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		health, err = s.contract.GetHealthData(gctx, account)
		return err
	})
	g.Go(func() (err error) {
		stats, err = s.contract.GetUserStats(gctx, account)
		return err
	})
	g.Go(func() (err error) {
		details, owned, err = s.badges.load(gctx, &account)
		return err
	})
	g.Go(func() (err error) {
		balance, err = s.token.BalanceOf(gctx, account)
		return err
	})
	if err := g.Wait(); err != nil {
		logFor(account).WithError(err).Error("Failed to load dashboard")
		return nil, err
	}

	var ownedIDs []uint64
	for id, has := range owned {
		if has {
			ownedIDs = append(ownedIDs, uint64(id))
		}
	}

	dash := &models.Dashboard{
		Address:     account.Hex(),
		Health:      healthRecord(account, health),
		Stats:       userStats(account, stats),
		Badges:      s.badges.build(details, owned, &stats),
		OwnedBadges: ownedIDs,
		Statistics:  BuildStatistics(health, stats, len(ownedIDs), int(s.badges.BadgeCount()), s.now()),
	}
	if balance != nil {
		dash.Balance = decimal.NewFromBigInt(balance, 0)
		dash.BalanceTokens = decimal.NewFromBigInt(balance, -s.decimals)
	}
	return dash, nil
}

func (s *DashboardService) Health(ctx context.Context, account common.Address) (*models.HealthRecord, error) {
	h, err := s.contract.GetHealthData(ctx, account)
	if err != nil {
		return nil, err
	}
	rec := healthRecord(account, h)
	return &rec, nil
}

func (s *DashboardService) Stats(ctx context.Context, account common.Address) (*models.UserStats, error) {
	st, err := s.contract.GetUserStats(ctx, account)
	if err != nil {
		return nil, err
	}
	out := userStats(account, st)
	return &out, nil
}

// Statistics builds the personal statistics panel, with platform averages
// attached when they are available.
func (s *DashboardService) Statistics(ctx context.Context, account common.Address) (*models.Statistics, error) {
	var (
		health chain.HealthData
		stats  chain.UserStats
		owned  []bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		health, err = s.contract.GetHealthData(gctx, account)
		return err
	})
	g.Go(func() (err error) {
		stats, err = s.contract.GetUserStats(gctx, account)
		return err
	})
	g.Go(func() error {
		owned = make([]bool, s.badges.BadgeCount())
		inner, ictx := errgroup.WithContext(gctx)
		for id := range owned {
			id := id
			inner.Go(func() (err error) {
				owned[id], err = s.contract.HasBadge(ictx, account, uint64(id))
				return err
			})
		}
		return inner.Wait()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	achieved := 0
	for _, has := range owned {
		if has {
			achieved++
		}
	}

	out := BuildStatistics(health, stats, achieved, len(owned), s.now())
	if s.averages != nil {
		avg, err := s.averages.Averages(ctx)
		if err != nil {
			logFor(account).WithError(err).Warn("Platform averages unavailable")
		} else {
			out.Averages = avg
		}
	}
	return &out, nil
}

// BuildStatistics derives the statistics panel from raw contract reads.
func BuildStatistics(h chain.HealthData, st chain.UserStats, achieved, total int, now time.Time) models.Statistics {
	days := wellness.DaysSince(h.LastUpdated, now)
	return models.Statistics{
		StreakDays:          st.StreakDays,
		DaysSinceLastUpdate: days,
		UpdatedToday:        h.LastUpdated != 0 && days == 0,
		GoalsAchieved:       achieved,
		GoalsTotal:          total,
		GoalsPercent:        wellness.GoalsPercent(achieved, total),
		HydrationPercent:    wellness.HydrationPercent(h.WaterIntake),
		SleepPercent:        wellness.SleepPercent(h.SleepHours),
		ExercisePercent:     wellness.ExercisePercent(h.Exercise),
		ConsistencyScore:    wellness.ConsistencyScore(st.StreakDays, h.WaterIntake, h.SleepHours, h.Exercise),
		HealthScore:         wellness.HealthScore(h.SleepHours, h.WaterIntake, h.Exercise, st.StreakDays),
		EnergyLabel:         wellness.EnergyLabel(h.EnergyLevel),
		Tips:                wellness.Tips(st.StreakDays, h.WaterIntake, h.SleepHours, h.Exercise),
	}
}

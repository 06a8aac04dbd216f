package services

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"vitaverse/internal/chain"
	"vitaverse/internal/leaderboard"
	"vitaverse/internal/models"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type LeaderboardQuery struct {
	Filter    string
	Timeframe string
	Account   string
	Refresh   bool
}

type LeaderboardOptions struct {
	Source      string
	TopLimit    uint64
	TTL         time.Duration
	Concurrency int
}

// LeaderboardService keeps one raw snapshot of per-user metrics and ranks it
// on demand. Changing filter or timeframe never re-fetches; only a refresh,
// an expired snapshot or an invalidation does.
type LeaderboardService struct {
	contract chain.Contract
	store    SnapshotStore
	opts     LeaderboardOptions
	now      func() time.Time

	group singleflight.Group

	mu         sync.RWMutex
	snapshot   *leaderboard.Snapshot
	generation uint64

	fetches atomic.Int64
}

func NewLeaderboardService(contract chain.Contract, store SnapshotStore, opts LeaderboardOptions) *LeaderboardService {
	if opts.Source == "" {
		opts.Source = leaderboard.SourceActive
	}
	if opts.TopLimit == 0 {
		opts.TopLimit = 100
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 8
	}
	return &LeaderboardService{
		contract: contract,
		store:    store,
		opts:     opts,
		now:      time.Now,
	}
}

func (s *LeaderboardService) Leaderboard(ctx context.Context, q LeaderboardQuery) (*models.LeaderboardResponse, error) {
	filter, err := leaderboard.ParseFilter(q.Filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	timeframe, err := leaderboard.ParseTimeframe(q.Timeframe)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	snap, err := s.Snapshot(ctx, q.Refresh)
	if err != nil {
		return nil, err
	}

	entries := leaderboard.Rank(snap.Users, filter, timeframe)
	return &models.LeaderboardResponse{
		Filter:     string(filter),
		Timeframe:  string(timeframe),
		Entries:    entries,
		TotalUsers: len(snap.Users),
		YourRank:   leaderboard.FindAccount(entries, q.Account),
		SnapshotAt: snap.FetchedAt,
		Source:     snap.Source,
	}, nil
}

// Snapshot returns the held snapshot, falling back to the shared store and
// then to the contract. Concurrent fetches share one contract round trip.
func (s *LeaderboardService) Snapshot(ctx context.Context, refresh bool) (*leaderboard.Snapshot, error) {
	if !refresh {
		if snap := s.held(); snap != nil {
			return snap, nil
		}
		if snap := s.fromStore(ctx); snap != nil {
			return snap, nil
		}
	}

	// fetches outlive the request that started them
	v, err, _ := s.group.Do(s.opts.Source, func() (interface{}, error) {
		return s.fetch(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	return v.(*leaderboard.Snapshot), nil
}

func (s *LeaderboardService) held() *leaderboard.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil || s.expired(s.snapshot) {
		return nil
	}
	return s.snapshot
}

func (s *LeaderboardService) expired(snap *leaderboard.Snapshot) bool {
	return s.opts.TTL > 0 && s.now().Sub(snap.FetchedAt) > s.opts.TTL
}

func (s *LeaderboardService) fromStore(ctx context.Context) *leaderboard.Snapshot {
	if s.store == nil {
		return nil
	}
	s.mu.RLock()
	gen := s.generation
	s.mu.RUnlock()

	snap, found, err := s.store.LoadSnapshot(ctx, s.opts.Source)
	if err != nil {
		logrus.WithError(err).Warn("Failed to load leaderboard snapshot from cache")
		return nil
	}
	if !found || s.expired(snap) {
		return nil
	}
	s.keep(snap, gen)
	return snap
}

// keep installs snap unless an invalidation happened since gen was read or a
// newer snapshot is already held.
func (s *LeaderboardService) keep(snap *leaderboard.Snapshot, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	if snap.NewerThan(s.snapshot) {
		s.snapshot = snap
	}
}

func (s *LeaderboardService) fetch(ctx context.Context) (*leaderboard.Snapshot, error) {
	s.mu.RLock()
	gen := s.generation
	s.mu.RUnlock()

	s.fetches.Add(1)
	start := s.now()

	var (
		users []leaderboard.RawUser
		err   error
	)
	switch s.opts.Source {
	case leaderboard.SourceTop:
		users, err = s.fetchTop(ctx)
	default:
		users, err = s.fetchActive(ctx)
	}
	if err != nil {
		logrus.WithError(err).WithField("source", s.opts.Source).Error("Failed to fetch leaderboard snapshot")
		return nil, err
	}

	snap := &leaderboard.Snapshot{
		Users:     leaderboard.DropEmpty(users),
		FetchedAt: s.now(),
		Source:    s.opts.Source,
	}
	s.keep(snap, gen)

	if s.store != nil {
		if err := s.store.SaveSnapshot(ctx, snap, s.opts.TTL); err != nil {
			logrus.WithError(err).Warn("Failed to cache leaderboard snapshot")
		}
	}

	logrus.WithFields(logrus.Fields{
		"source":   snap.Source,
		"users":    len(snap.Users),
		"duration": s.now().Sub(start).String(),
	}).Info("Leaderboard snapshot fetched")
	return snap, nil
}

func (s *LeaderboardService) fetchActive(ctx context.Context) ([]leaderboard.RawUser, error) {
	addrs, err := s.contract.GetAllActiveUsers(ctx)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, nil
	}

	var (
		users  []leaderboard.RawUser
		counts []uint64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = s.contract.GetUserBadgeCounts(gctx, addrs)
		return err
	})
	g.Go(func() (err error) {
		users, err = s.readUsers(gctx, addrs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range users {
		if i < len(counts) {
			users[i].BadgeCount = counts[i]
		}
	}
	return users, nil
}

func (s *LeaderboardService) fetchTop(ctx context.Context) ([]leaderboard.RawUser, error) {
	addrs, scores, err := s.contract.GetTopHealthUsers(ctx, s.opts.TopLimit)
	if err != nil {
		return nil, err
	}

	users, err := s.readUsers(ctx, addrs)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if i < len(scores) && scores[i] != nil {
			score, _ := new(big.Float).SetInt(scores[i]).Float64()
			users[i].Score = &score
		}
	}
	return users, nil
}

// readUsers reads health and stats for every address, at most
// opts.Concurrency users at a time. Order follows addrs.
func (s *LeaderboardService) readUsers(ctx context.Context, addrs []common.Address) ([]leaderboard.RawUser, error) {
	users := make([]leaderboard.RawUser, len(addrs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)
	for i, addr := range addrs {
		i, addr := i, addr
		g.Go(func() error {
			health, err := s.contract.GetHealthData(gctx, addr)
			if err != nil {
				return err
			}
			stats, err := s.contract.GetUserStats(gctx, addr)
			if err != nil {
				return err
			}
			users[i] = leaderboard.RawUser{
				Address:         addr.Hex(),
				SleepHours:      health.SleepHours,
				WaterIntake:     health.WaterIntake,
				Exercise:        health.Exercise,
				ExerciseMinutes: stats.TotalExercise,
				StreakDays:      stats.StreakDays,
				BadgeCount:      stats.BadgeCount,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return users, nil
}

// Invalidate drops the held and cached snapshots. A fetch already in flight
// is not installed once it resolves.
func (s *LeaderboardService) Invalidate(ctx context.Context) {
	s.mu.Lock()
	s.snapshot = nil
	s.generation++
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.InvalidateSnapshots(ctx); err != nil {
			logrus.WithError(err).Warn("Failed to invalidate cached leaderboard snapshots")
		}
	}
}

func (s *LeaderboardService) Averages(ctx context.Context) (*models.PlatformAverages, error) {
	snap, err := s.Snapshot(ctx, false)
	if err != nil {
		return nil, err
	}
	avg := snap.Average()
	return &avg, nil
}

func (s *LeaderboardService) GetStatus() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := map[string]interface{}{
		"source":     s.opts.Source,
		"fetches":    s.fetches.Load(),
		"has_cache":  s.store != nil,
		"ttl":        s.opts.TTL.String(),
		"generation": s.generation,
	}
	if s.snapshot != nil {
		status["snapshot_at"] = s.snapshot.FetchedAt
		status["snapshot_users"] = len(s.snapshot.Users)
	}
	return status
}

package mocks

import (
	"context"

	"vitaverse/internal/models"
	"vitaverse/internal/repository"
	"vitaverse/internal/services"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
)

type MockDashboardProvider struct {
	mock.Mock
}

func (m *MockDashboardProvider) Overview(ctx context.Context, account common.Address) (*models.Dashboard, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dashboard), args.Error(1)
}

func (m *MockDashboardProvider) Health(ctx context.Context, account common.Address) (*models.HealthRecord, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthRecord), args.Error(1)
}

func (m *MockDashboardProvider) Stats(ctx context.Context, account common.Address) (*models.UserStats, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStats), args.Error(1)
}

func (m *MockDashboardProvider) Statistics(ctx context.Context, account common.Address) (*models.Statistics, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Statistics), args.Error(1)
}

type MockHealthSubmitter struct {
	mock.Mock
}

func (m *MockHealthSubmitter) Submit(ctx context.Context, account common.Address, in models.HealthInput) (*services.SubmitResult, error) {
	args := m.Called(ctx, account, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.SubmitResult), args.Error(1)
}

type MockBadgeProvider struct {
	mock.Mock
}

func (m *MockBadgeProvider) Catalogue(ctx context.Context, account *common.Address) ([]models.Badge, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Badge), args.Error(1)
}

func (m *MockBadgeProvider) Purchase(ctx context.Context, account common.Address, badgeID uint64) (*models.PurchaseResult, error) {
	args := m.Called(ctx, account, badgeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PurchaseResult), args.Error(1)
}

type MockLeaderboardProvider struct {
	mock.Mock
}

func (m *MockLeaderboardProvider) Leaderboard(ctx context.Context, q services.LeaderboardQuery) (*models.LeaderboardResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LeaderboardResponse), args.Error(1)
}

type MockPlatformProvider struct {
	mock.Mock
}

func (m *MockPlatformProvider) Stats(ctx context.Context) (*models.PlatformStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlatformStats), args.Error(1)
}

func (m *MockPlatformProvider) Events(filter repository.EventFilter) ([]models.ContractEvent, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContractEvent), args.Error(1)
}

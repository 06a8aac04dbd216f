package mocks

import (
	"context"
	"math/big"

	"vitaverse/internal/chain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
)

type MockContract struct {
	mock.Mock
	Address common.Address
}

func (m *MockContract) GetHealthData(ctx context.Context, user common.Address) (chain.HealthData, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(chain.HealthData), args.Error(1)
}

func (m *MockContract) GetUserStats(ctx context.Context, user common.Address) (chain.UserStats, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(chain.UserStats), args.Error(1)
}

func (m *MockContract) GetTopHealthUsers(ctx context.Context, limit uint64) ([]common.Address, []*big.Int, error) {
	args := m.Called(ctx, limit)
	var users []common.Address
	if v := args.Get(0); v != nil {
		users = v.([]common.Address)
	}
	var scores []*big.Int
	if v := args.Get(1); v != nil {
		scores = v.([]*big.Int)
	}
	return users, scores, args.Error(2)
}

func (m *MockContract) GetAllActiveUsers(ctx context.Context) ([]common.Address, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]common.Address), args.Error(1)
}

func (m *MockContract) GetUserBadgeCounts(ctx context.Context, users []common.Address) ([]uint64, error) {
	args := m.Called(ctx, users)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockContract) HasBadge(ctx context.Context, user common.Address, badgeID uint64) (bool, error) {
	args := m.Called(ctx, user, badgeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContract) GetBadge(ctx context.Context, badgeID uint64) (chain.BadgeDetails, error) {
	args := m.Called(ctx, badgeID)
	return args.Get(0).(chain.BadgeDetails), args.Error(1)
}

func (m *MockContract) UpdateHealthData(ctx context.Context, from common.Address, h chain.FixedHealth) (*chain.Receipt, error) {
	args := m.Called(ctx, from, h)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chain.Receipt), args.Error(1)
}

func (m *MockContract) PurchaseBadge(ctx context.Context, from common.Address, badgeID uint64) (*chain.Receipt, error) {
	args := m.Called(ctx, from, badgeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chain.Receipt), args.Error(1)
}

func (m *MockContract) ContractAddress() common.Address {
	return m.Address
}

type MockToken struct {
	mock.Mock
}

func (m *MockToken) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockToken) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	args := m.Called(ctx, owner, spender)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockToken) Approve(ctx context.Context, from, spender common.Address, amount *big.Int) (*chain.Receipt, error) {
	args := m.Called(ctx, from, spender, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chain.Receipt), args.Error(1)
}

type MockEventSource struct {
	mock.Mock
}

func (m *MockEventSource) LatestBlock(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockEventSource) FetchEvents(ctx context.Context, fromBlock, toBlock uint64) ([]chain.Event, error) {
	args := m.Called(ctx, fromBlock, toBlock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]chain.Event), args.Error(1)
}

type MockWallet struct {
	mock.Mock
}

func (m *MockWallet) Accounts() []common.Address {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]common.Address)
}

func (m *MockWallet) Connect(requested string) (common.Address, error) {
	args := m.Called(requested)
	return args.Get(0).(common.Address), args.Error(1)
}

// Package chain is the boundary to the external VitaVerse contract and the
// YODA token. Everything authoritative (scores, streaks, badge ownership,
// supply) lives on-chain; this package only reads it and submits writes.
package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// HealthData mirrors getHealthData. Weight and SleepHours are fixed point x10.
type HealthData struct {
	Weight      uint64
	SleepHours  uint64
	EnergyLevel uint64
	Exercise    uint64
	WaterIntake uint64
	LastUpdated uint64
}

// UserStats mirrors getUserStats.
type UserStats struct {
	StreakDays    uint64
	LastUpdateDay uint64
	TotalExercise uint64
	WaterIntake   uint64
	BadgeCount    uint64
}

// BadgeDetails mirrors the badges(id) getter.
type BadgeDetails struct {
	ID          uint64
	Name        string
	Description string
	Price       *big.Int
	Supply      uint64
	Remaining   uint64
	Type        string
	Active      bool
}

// FixedHealth is a health update already converted to contract units.
type FixedHealth struct {
	Weight      uint64
	SleepHours  uint64
	EnergyLevel uint64
	Exercise    uint64
	WaterIntake uint64
}

// Receipt is the part of a mined transaction receipt callers care about.
type Receipt struct {
	TxHash      string
	BlockNumber uint64
	GasUsed     uint64
}

type Contract interface {
	GetHealthData(ctx context.Context, user common.Address) (HealthData, error)
	GetUserStats(ctx context.Context, user common.Address) (UserStats, error)
	GetTopHealthUsers(ctx context.Context, limit uint64) ([]common.Address, []*big.Int, error)
	GetAllActiveUsers(ctx context.Context) ([]common.Address, error)
	GetUserBadgeCounts(ctx context.Context, users []common.Address) ([]uint64, error)
	HasBadge(ctx context.Context, user common.Address, badgeID uint64) (bool, error)
	GetBadge(ctx context.Context, badgeID uint64) (BadgeDetails, error)
	UpdateHealthData(ctx context.Context, from common.Address, h FixedHealth) (*Receipt, error)
	PurchaseBadge(ctx context.Context, from common.Address, badgeID uint64) (*Receipt, error)
	ContractAddress() common.Address
}

type Token interface {
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
	Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error)
	Approve(ctx context.Context, from, spender common.Address, amount *big.Int) (*Receipt, error)
}

// Event is one decoded contract log. Only the fields of the matching event
// name are populated.
type Event struct {
	Name        string
	User        common.Address
	BadgeID     *uint64
	BadgeName   string
	Price       *big.Int
	Health      *FixedHealth
	TxHash      string
	LogIndex    uint
	BlockNumber uint64
}

type EventSource interface {
	LatestBlock(ctx context.Context) (uint64, error)
	FetchEvents(ctx context.Context, fromBlock, toBlock uint64) ([]Event, error)
}

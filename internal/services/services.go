package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vitaverse/internal/leaderboard"
	"vitaverse/internal/models"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidInput        = errors.New("invalid input")
	ErrBadgeNotFound       = errors.New("badge not found")
	ErrBadgeAlreadyEarned  = errors.New("badge already earned")
	ErrBadgeSoldOut        = errors.New("badge sold out")
	ErrBadgeInactive       = errors.New("badge is not available for purchase")
	ErrInsufficientBalance = errors.New("insufficient token balance")
)

// SnapshotStore is the shared cache of raw leaderboard snapshots.
type SnapshotStore interface {
	LoadSnapshot(ctx context.Context, source string) (*leaderboard.Snapshot, bool, error)
	SaveSnapshot(ctx context.Context, snap *leaderboard.Snapshot, ttl time.Duration) error
	InvalidateSnapshots(ctx context.Context) error
}

// SnapshotInvalidator is told when on-chain state that feeds the leaderboard
// has changed.
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context)
}

type AveragesSource interface {
	Averages(ctx context.Context) (*models.PlatformAverages, error)
}

// ParseAddress accepts a hex address with or without checksum casing.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

func strPtr(s string) *string {
	return &s
}

func logFor(account common.Address) *logrus.Entry {
	return logrus.WithField("account", account.Hex())
}

package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"vitaverse/internal/chain"
	"vitaverse/internal/models"
	"vitaverse/internal/repository"
	"vitaverse/internal/wellness"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// PurchaseError is returned when a purchase fails after the pre-checks
// passed. AllowanceGranted reports whether the token allowance was left in
// place, since an approval cannot be rolled back.
type PurchaseError struct {
	PurchaseID       string
	AllowanceGranted bool
	ApproveTxHash    string
	Err              error
}

func (e *PurchaseError) Error() string {
	if e.AllowanceGranted {
		return fmt.Sprintf("purchase failed after approval: %v", e.Err)
	}
	return fmt.Sprintf("purchase failed: %v", e.Err)
}

func (e *PurchaseError) Unwrap() error {
	return e.Err
}

type BadgeService struct {
	contract    chain.Contract
	token       chain.Token
	purchases   repository.BadgePurchaseRepository
	invalidator SnapshotInvalidator
	badgeCount  uint64
	decimals    int32
}

func NewBadgeService(
	contract chain.Contract,
	token chain.Token,
	purchases repository.BadgePurchaseRepository,
	invalidator SnapshotInvalidator,
	badgeCount uint64,
	decimals int32,
) *BadgeService {
	return &BadgeService{
		contract:    contract,
		token:       token,
		purchases:   purchases,
		invalidator: invalidator,
		badgeCount:  badgeCount,
		decimals:    decimals,
	}
}

func (s *BadgeService) BadgeCount() uint64 {
	return s.badgeCount
}

// Catalogue lists every badge. With an account, each badge carries the
// earned flag from the contract and the display progress.
func (s *BadgeService) Catalogue(ctx context.Context, account *common.Address) ([]models.Badge, error) {
	var (
		details []chain.BadgeDetails
		owned   []bool
		stats   *chain.UserStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		details, owned, err = s.load(gctx, account)
		return err
	})
	if account != nil {
		g.Go(func() error {
			st, err := s.contract.GetUserStats(gctx, *account)
			if err != nil {
				return err
			}
			stats = &st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.build(details, owned, stats), nil
}

// load reads badge details and, when account is set, ownership for every
// badge id. All reads are independent and run concurrently.
func (s *BadgeService) load(ctx context.Context, account *common.Address) ([]chain.BadgeDetails, []bool, error) {
	details := make([]chain.BadgeDetails, s.badgeCount)
	var owned []bool
	if account != nil {
		owned = make([]bool, s.badgeCount)
	}

	g, gctx := errgroup.WithContext(ctx)
	for id := uint64(0); id < s.badgeCount; id++ {
		id := id
		g.Go(func() error {
			d, err := s.contract.GetBadge(gctx, id)
			if err != nil {
				return err
			}
			details[id] = d
			return nil
		})
		if account != nil {
			g.Go(func() error {
				has, err := s.contract.HasBadge(gctx, *account, id)
				if err != nil {
					return err
				}
				owned[id] = has
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return details, owned, nil
}

func (s *BadgeService) build(details []chain.BadgeDetails, owned []bool, stats *chain.UserStats) []models.Badge {
	badges := make([]models.Badge, 0, len(details))
	for i, d := range details {
		b := models.Badge{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Price:       s.baseUnits(d.Price),
			PriceTokens: s.tokens(d.Price),
			Supply:      d.Supply,
			Remaining:   d.Remaining,
			Type:        d.Type,
			Active:      d.Active,
			SoldOut:     d.Remaining == 0,
		}
		if owned != nil {
			b.Earned = owned[i]
		}
		if stats != nil {
			if p, ok := wellness.BadgeProgress(d.Type, wellness.ProgressInput{
				StreakDays:    stats.StreakDays,
				TotalExercise: stats.TotalExercise,
				WaterIntake:   stats.WaterIntake,
			}); ok {
				b.Progress = &p
			}
		}
		badges = append(badges, b)
	}
	return badges
}

func (s *BadgeService) baseUnits(v *big.Int) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, 0)
}

func (s *BadgeService) tokens(v *big.Int) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, -s.decimals)
}

// precheck rejects purchases the contract would refuse. It never writes.
// d.Price must be non-nil.
func precheck(d chain.BadgeDetails, earned bool, balance *big.Int) error {
	switch {
	case d.Name == "" && d.Supply == 0:
		return ErrBadgeNotFound
	case earned:
		return ErrBadgeAlreadyEarned
	case d.Remaining == 0:
		return ErrBadgeSoldOut
	case !d.Active:
		return ErrBadgeInactive
	case balance == nil || balance.Cmp(d.Price) < 0:
		return ErrInsufficientBalance
	}
	return nil
}

// Purchase buys a badge for account. The allowance is approved first when it
// does not already cover the price; approve and purchase are strictly
// sequential because the purchase spends the approved tokens.
func (s *BadgeService) Purchase(ctx context.Context, account common.Address, badgeID uint64) (*models.PurchaseResult, error) {
	if badgeID >= s.badgeCount {
		return nil, ErrBadgeNotFound
	}
	log := logFor(account).WithField("badge_id", badgeID)

	var (
		details chain.BadgeDetails
		earned  bool
		balance *big.Int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		details, err = s.contract.GetBadge(gctx, badgeID)
		return err
	})
	g.Go(func() (err error) {
		earned, err = s.contract.HasBadge(gctx, account, badgeID)
		return err
	})
	g.Go(func() (err error) {
		balance, err = s.token.BalanceOf(gctx, account)
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to load purchase pre-check data")
		return nil, err
	}
	if details.Price == nil {
		details.Price = new(big.Int)
	}

	record := &models.BadgePurchase{
		ID:          uuid.NewString(),
		UserAddress: account.Hex(),
		BadgeID:     badgeID,
		Price:       s.baseUnits(details.Price),
		Status:      models.PurchaseStatusPending,
	}

	if err := precheck(details, earned, balance); err != nil {
		record.Status = models.PurchaseStatusRejected
		record.ErrorMessage = strPtr(err.Error())
		if saveErr := s.purchases.Save(record); saveErr != nil {
			log.WithError(saveErr).Warn("Failed to record rejected purchase")
		}
		log.WithError(err).Info("Purchase rejected by pre-check")
		return nil, err
	}

	if err := s.purchases.Save(record); err != nil {
		log.WithError(err).Warn("Failed to record purchase attempt")
	}

	var purchaseErr error
	defer func() {
		if purchaseErr != nil {
			record.Status = models.PurchaseStatusFailed
			record.ErrorMessage = strPtr(chain.UserMessage(purchaseErr))
		}
		if err := s.purchases.Update(record); err != nil {
			log.WithError(err).Warn("Failed to update purchase record")
		}
	}()

	fail := func(err error) (*models.PurchaseResult, error) {
		purchaseErr = err
		pe := &PurchaseError{
			PurchaseID:       record.ID,
			AllowanceGranted: record.AllowanceGranted,
			Err:              err,
		}
		if record.ApproveTxHash != nil {
			pe.ApproveTxHash = *record.ApproveTxHash
		}
		log.WithError(err).WithField("allowance_granted", record.AllowanceGranted).Error("Badge purchase failed")
		return nil, pe
	}

	spender := s.contract.ContractAddress()
	allowance, err := s.token.Allowance(ctx, account, spender)
	if err != nil {
		return fail(err)
	}
	if allowance.Cmp(details.Price) < 0 {
		receipt, err := s.token.Approve(ctx, account, spender, details.Price)
		if err != nil {
			return fail(err)
		}
		record.ApproveTxHash = strPtr(receipt.TxHash)
	}
	record.AllowanceGranted = true
	record.Status = models.PurchaseStatusApproved

	receipt, err := s.contract.PurchaseBadge(ctx, account, badgeID)
	if err != nil {
		return fail(err)
	}
	record.PurchaseTxHash = strPtr(receipt.TxHash)
	record.Status = models.PurchaseStatusCompleted
	log.WithField("tx", receipt.TxHash).Info("Badge purchased")

	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}

	result := &models.PurchaseResult{
		PurchaseID:       record.ID,
		BadgeID:          badgeID,
		Status:           record.Status,
		AllowanceGranted: true,
		PurchaseTxHash:   receipt.TxHash,
	}
	if record.ApproveTxHash != nil {
		result.ApproveTxHash = *record.ApproveTxHash
	}

	// ownership comes from a fresh read, never from the local result
	badges, err := s.Catalogue(ctx, &account)
	if err != nil {
		log.WithError(err).Warn("Failed to refresh badge catalogue after purchase")
	} else {
		result.Badges = badges
	}
	return result, nil
}

// IsPrecheckError reports whether err came from purchase pre-validation.
func IsPrecheckError(err error) bool {
	return errors.Is(err, ErrBadgeNotFound) ||
		errors.Is(err, ErrBadgeAlreadyEarned) ||
		errors.Is(err, ErrBadgeSoldOut) ||
		errors.Is(err, ErrBadgeInactive) ||
		errors.Is(err, ErrInsufficientBalance)
}

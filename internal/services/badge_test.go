package services_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"vitaverse/internal/chain"
	"vitaverse/internal/mocks"
	"vitaverse/internal/models"
	"vitaverse/internal/services"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	alice        = common.HexToAddress("0x00000000000000000000000000000000000A11CE")
	contractAddr = common.HexToAddress("0x000000000000000000000000000000000000C0DE")
)

func tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1_000_000_000_000_000_000))
}

func catalogueFixture() []chain.BadgeDetails {
	return []chain.BadgeDetails{
		{ID: 0, Name: "Early Bird", Price: tokens(20), Supply: 100, Remaining: 100, Type: "EarlyBird", Active: true},
		{ID: 1, Name: "Workout Warrior", Price: tokens(50), Supply: 50, Remaining: 50, Type: "WorkoutWarrior", Active: true},
		{ID: 2, Name: "Hydration Hero", Price: tokens(30), Supply: 75, Remaining: 0, Type: "HydrationHero", Active: true},
	}
}

type badgeFixture struct {
	contract    *mocks.MockContract
	token       *mocks.MockToken
	purchases   *mocks.MockBadgePurchaseRepository
	invalidator *mocks.MockInvalidator
	service     *services.BadgeService
}

func newBadgeFixture() *badgeFixture {
	f := &badgeFixture{
		contract:    &mocks.MockContract{Address: contractAddr},
		token:       new(mocks.MockToken),
		purchases:   new(mocks.MockBadgePurchaseRepository),
		invalidator: new(mocks.MockInvalidator),
	}
	f.service = services.NewBadgeService(f.contract, f.token, f.purchases, f.invalidator, 3, 18)
	return f
}

func (f *badgeFixture) expectCatalogue(owned map[uint64]bool) {
	for _, d := range catalogueFixture() {
		f.contract.On("GetBadge", mock.Anything, d.ID).Return(d, nil)
		f.contract.On("HasBadge", mock.Anything, alice, d.ID).Return(owned[d.ID], nil)
	}
}

func TestCatalogueWithAccount(t *testing.T) {
	f := newBadgeFixture()
	f.expectCatalogue(map[uint64]bool{1: true})
	f.contract.On("GetUserStats", mock.Anything, alice).
		Return(chain.UserStats{StreakDays: 7, TotalExercise: 1000, WaterIntake: 2600}, nil)

	badges, err := f.service.Catalogue(context.Background(), &alice)
	require.NoError(t, err)
	require.Len(t, badges, 3)

	assert.False(t, badges[0].Earned)
	assert.True(t, badges[1].Earned)
	assert.True(t, badges[2].SoldOut)
	assert.Equal(t, "20", badges[0].PriceTokens.String())
	assert.Equal(t, "20000000000000000000", badges[0].Price.String())

	require.NotNil(t, badges[0].Progress)
	assert.Equal(t, 100.0, *badges[0].Progress)
	assert.Equal(t, 100.0, *badges[1].Progress)
	assert.Equal(t, 50.0, *badges[2].Progress)
}

func TestCatalogueWithoutAccount(t *testing.T) {
	f := newBadgeFixture()
	for _, d := range catalogueFixture() {
		f.contract.On("GetBadge", mock.Anything, d.ID).Return(d, nil)
	}

	badges, err := f.service.Catalogue(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, badges, 3)
	assert.Nil(t, badges[0].Progress)
	f.contract.AssertNotCalled(t, "HasBadge", mock.Anything, mock.Anything, mock.Anything)
	f.contract.AssertNotCalled(t, "GetUserStats", mock.Anything, mock.Anything)
}

func TestPurchasePrecheckRejectsWithoutWriting(t *testing.T) {
	tests := []struct {
		name    string
		badgeID uint64
		earned  bool
		balance *big.Int
		wantErr error
	}{
		{name: "already earned", badgeID: 0, earned: true, balance: tokens(100), wantErr: services.ErrBadgeAlreadyEarned},
		{name: "sold out", badgeID: 2, balance: tokens(100), wantErr: services.ErrBadgeSoldOut},
		{name: "insufficient balance", badgeID: 1, balance: tokens(49), wantErr: services.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBadgeFixture()
			f.contract.On("GetBadge", mock.Anything, tt.badgeID).Return(catalogueFixture()[tt.badgeID], nil)
			f.contract.On("HasBadge", mock.Anything, alice, tt.badgeID).Return(tt.earned, nil)
			f.token.On("BalanceOf", mock.Anything, alice).Return(tt.balance, nil)
			f.purchases.On("Save", mock.MatchedBy(func(p *models.BadgePurchase) bool {
				return p.Status == models.PurchaseStatusRejected
			})).Return(nil)

			result, err := f.service.Purchase(context.Background(), alice, tt.badgeID)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, services.IsPrecheckError(err))
			f.token.AssertNotCalled(t, "Allowance", mock.Anything, mock.Anything, mock.Anything)
			f.token.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			f.contract.AssertNotCalled(t, "PurchaseBadge", mock.Anything, mock.Anything, mock.Anything)
			f.invalidator.AssertNotCalled(t, "Invalidate", mock.Anything)
			f.purchases.AssertExpectations(t)
		})
	}
}

func TestPurchaseUnknownBadge(t *testing.T) {
	f := newBadgeFixture()

	_, err := f.service.Purchase(context.Background(), alice, 3)

	assert.ErrorIs(t, err, services.ErrBadgeNotFound)
	f.contract.AssertNotCalled(t, "GetBadge", mock.Anything, mock.Anything)
}

func TestPurchaseApprovesBeforePurchasing(t *testing.T) {
	f := newBadgeFixture()
	f.expectCatalogue(map[uint64]bool{})
	f.contract.On("GetUserStats", mock.Anything, alice).Return(chain.UserStats{}, nil)
	f.token.On("BalanceOf", mock.Anything, alice).Return(tokens(100), nil)

	var order []string
	f.token.On("Allowance", mock.Anything, alice, contractAddr).Return(big.NewInt(0), nil)
	f.token.On("Approve", mock.Anything, alice, contractAddr, tokens(50)).
		Run(func(mock.Arguments) { order = append(order, "approve") }).
		Return(&chain.Receipt{TxHash: "0xa1"}, nil)
	f.contract.On("PurchaseBadge", mock.Anything, alice, uint64(1)).
		Run(func(mock.Arguments) { order = append(order, "purchase") }).
		Return(&chain.Receipt{TxHash: "0xb2"}, nil)
	f.invalidator.On("Invalidate", mock.Anything).Return()
	f.purchases.On("Save", mock.Anything).Return(nil)
	f.purchases.On("Update", mock.MatchedBy(func(p *models.BadgePurchase) bool {
		return p.Status == models.PurchaseStatusCompleted && p.AllowanceGranted
	})).Return(nil)

	result, err := f.service.Purchase(context.Background(), alice, 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"approve", "purchase"}, order)
	assert.Equal(t, models.PurchaseStatusCompleted, result.Status)
	assert.Equal(t, "0xa1", result.ApproveTxHash)
	assert.Equal(t, "0xb2", result.PurchaseTxHash)
	assert.True(t, result.AllowanceGranted)
	assert.Len(t, result.Badges, 3)
	f.invalidator.AssertCalled(t, "Invalidate", mock.Anything)
	f.purchases.AssertExpectations(t)
}

func TestPurchaseSkipsApproveWhenAllowanceCovers(t *testing.T) {
	f := newBadgeFixture()
	f.expectCatalogue(map[uint64]bool{})
	f.contract.On("GetUserStats", mock.Anything, alice).Return(chain.UserStats{}, nil)
	f.token.On("BalanceOf", mock.Anything, alice).Return(tokens(100), nil)
	f.token.On("Allowance", mock.Anything, alice, contractAddr).Return(tokens(1000), nil)
	f.contract.On("PurchaseBadge", mock.Anything, alice, uint64(0)).Return(&chain.Receipt{TxHash: "0xb2"}, nil)
	f.invalidator.On("Invalidate", mock.Anything).Return()
	f.purchases.On("Save", mock.Anything).Return(nil)
	f.purchases.On("Update", mock.Anything).Return(nil)

	result, err := f.service.Purchase(context.Background(), alice, 0)

	require.NoError(t, err)
	assert.Empty(t, result.ApproveTxHash)
	f.token.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseFailureAfterApproveKeepsAllowance(t *testing.T) {
	f := newBadgeFixture()
	f.contract.On("GetBadge", mock.Anything, uint64(1)).Return(catalogueFixture()[1], nil)
	f.contract.On("HasBadge", mock.Anything, alice, uint64(1)).Return(false, nil)
	f.token.On("BalanceOf", mock.Anything, alice).Return(tokens(100), nil)
	f.token.On("Allowance", mock.Anything, alice, contractAddr).Return(big.NewInt(0), nil)
	f.token.On("Approve", mock.Anything, alice, contractAddr, tokens(50)).Return(&chain.Receipt{TxHash: "0xa1"}, nil)
	f.contract.On("PurchaseBadge", mock.Anything, alice, uint64(1)).
		Return(nil, chain.Classify(errors.New("execution reverted: Badge sold out")))
	f.purchases.On("Save", mock.Anything).Return(nil)
	f.purchases.On("Update", mock.MatchedBy(func(p *models.BadgePurchase) bool {
		return p.Status == models.PurchaseStatusFailed && p.AllowanceGranted && p.PurchaseTxHash == nil
	})).Return(nil)

	result, err := f.service.Purchase(context.Background(), alice, 1)

	assert.Nil(t, result)
	var pe *services.PurchaseError
	require.ErrorAs(t, err, &pe)
	assert.True(t, pe.AllowanceGranted)
	assert.Equal(t, "0xa1", pe.ApproveTxHash)
	assert.ErrorIs(t, err, chain.ErrContractCall)
	f.invalidator.AssertNotCalled(t, "Invalidate", mock.Anything)
	f.purchases.AssertExpectations(t)
}

func TestPurchaseApproveFailure(t *testing.T) {
	f := newBadgeFixture()
	f.contract.On("GetBadge", mock.Anything, uint64(0)).Return(catalogueFixture()[0], nil)
	f.contract.On("HasBadge", mock.Anything, alice, uint64(0)).Return(false, nil)
	f.token.On("BalanceOf", mock.Anything, alice).Return(tokens(100), nil)
	f.token.On("Allowance", mock.Anything, alice, contractAddr).Return(big.NewInt(0), nil)
	f.token.On("Approve", mock.Anything, alice, contractAddr, tokens(20)).Return(nil, chain.ErrTransient)
	f.purchases.On("Save", mock.Anything).Return(nil)
	f.purchases.On("Update", mock.Anything).Return(nil)

	_, err := f.service.Purchase(context.Background(), alice, 0)

	var pe *services.PurchaseError
	require.ErrorAs(t, err, &pe)
	assert.False(t, pe.AllowanceGranted)
	f.contract.AssertNotCalled(t, "PurchaseBadge", mock.Anything, mock.Anything, mock.Anything)
}

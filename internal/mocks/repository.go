package mocks

import (
	"context"
	"time"

	"vitaverse/internal/leaderboard"
	"vitaverse/internal/models"
	"vitaverse/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockContractEventRepository struct {
	mock.Mock
}

func (m *MockContractEventRepository) StoreBatch(cursor string, block uint64, events []models.ContractEvent) ([]models.ContractEvent, error) {
	args := m.Called(cursor, block, events)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContractEvent), args.Error(1)
}

func (m *MockContractEventRepository) List(filter repository.EventFilter) ([]models.ContractEvent, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContractEvent), args.Error(1)
}

func (m *MockContractEventRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContractEventRepository) PurchasesPerBadge() ([]models.BadgePopularity, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BadgePopularity), args.Error(1)
}

func (m *MockContractEventRepository) GetCursor(name string) (uint64, bool, error) {
	args := m.Called(name)
	return args.Get(0).(uint64), args.Bool(1), args.Error(2)
}

func (m *MockContractEventRepository) SetCursor(name string, block uint64) error {
	args := m.Called(name, block)
	return args.Error(0)
}

type MockHealthSubmissionRepository struct {
	mock.Mock
}

func (m *MockHealthSubmissionRepository) Save(submission *models.HealthSubmission) error {
	args := m.Called(submission)
	return args.Error(0)
}

func (m *MockHealthSubmissionRepository) UpdateStatus(id, status string, txHash, errorMessage *string) error {
	args := m.Called(id, status, txHash, errorMessage)
	return args.Error(0)
}

func (m *MockHealthSubmissionRepository) GetByID(id string) (*models.HealthSubmission, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthSubmission), args.Error(1)
}

func (m *MockHealthSubmissionRepository) GetByUser(address string, limit int) ([]*models.HealthSubmission, error) {
	args := m.Called(address, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.HealthSubmission), args.Error(1)
}

type MockBadgePurchaseRepository struct {
	mock.Mock
}

func (m *MockBadgePurchaseRepository) Save(purchase *models.BadgePurchase) error {
	args := m.Called(purchase)
	return args.Error(0)
}

func (m *MockBadgePurchaseRepository) Update(purchase *models.BadgePurchase) error {
	args := m.Called(purchase)
	return args.Error(0)
}

func (m *MockBadgePurchaseRepository) GetByID(id string) (*models.BadgePurchase, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BadgePurchase), args.Error(1)
}

func (m *MockBadgePurchaseRepository) GetByUser(address string, limit int) ([]*models.BadgePurchase, error) {
	args := m.Called(address, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BadgePurchase), args.Error(1)
}

type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) LoadSnapshot(ctx context.Context, source string) (*leaderboard.Snapshot, bool, error) {
	args := m.Called(ctx, source)
	var snap *leaderboard.Snapshot
	if v := args.Get(0); v != nil {
		snap = v.(*leaderboard.Snapshot)
	}
	return snap, args.Bool(1), args.Error(2)
}

func (m *MockSnapshotStore) SaveSnapshot(ctx context.Context, snap *leaderboard.Snapshot, ttl time.Duration) error {
	args := m.Called(ctx, snap, ttl)
	return args.Error(0)
}

func (m *MockSnapshotStore) InvalidateSnapshots(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ev models.ContractEvent) error {
	args := m.Called(ev)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

package services

import (
	"context"
	"fmt"
	"math"

	"vitaverse/internal/chain"
	"vitaverse/internal/models"
	"vitaverse/internal/repository"
	"vitaverse/internal/wellness"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

type HealthService struct {
	contract    chain.Contract
	submissions repository.HealthSubmissionRepository
	dashboard   *DashboardService
	invalidator SnapshotInvalidator
}

func NewHealthService(
	contract chain.Contract,
	submissions repository.HealthSubmissionRepository,
	dashboard *DashboardService,
	invalidator SnapshotInvalidator,
) *HealthService {
	return &HealthService{
		contract:    contract,
		submissions: submissions,
		dashboard:   dashboard,
		invalidator: invalidator,
	}
}

// SubmitResult is returned once the update is mined. Dashboard is nil when
// the refresh after the write failed; the write itself still succeeded.
type SubmitResult struct {
	SubmissionID string            `json:"submission_id"`
	TxHash       string            `json:"tx_hash"`
	BlockNumber  uint64            `json:"block_number"`
	Submitted    chain.FixedHealth `json:"-"`
	Dashboard    *models.Dashboard `json:"dashboard,omitempty"`
}

func ValidateHealthInput(in models.HealthInput) error {
	switch {
	case math.IsNaN(in.Weight) || in.Weight <= 0:
		return fmt.Errorf("%w: weight must be greater than 0", ErrInvalidInput)
	case math.IsNaN(in.SleepHours) || in.SleepHours < 0 || in.SleepHours > 24:
		return fmt.Errorf("%w: sleep hours must be between 0 and 24", ErrInvalidInput)
	case in.EnergyLevel < 1 || in.EnergyLevel > 10:
		return fmt.Errorf("%w: energy level must be between 1 and 10", ErrInvalidInput)
	}
	return nil
}

// ToFixed converts display units to contract units.
func ToFixed(in models.HealthInput) chain.FixedHealth {
	return chain.FixedHealth{
		Weight:      wellness.ToTenths(in.Weight),
		SleepHours:  wellness.ToTenths(in.SleepHours),
		EnergyLevel: in.EnergyLevel,
		Exercise:    in.Exercise,
		WaterIntake: in.WaterIntake,
	}
}

// Submit writes the day's metrics and, once mined, re-reads the dashboard.
// Nothing local is updated optimistically.
func (s *HealthService) Submit(ctx context.Context, account common.Address, in models.HealthInput) (*SubmitResult, error) {
	if err := ValidateHealthInput(in); err != nil {
		return nil, err
	}
	fixed := ToFixed(in)
	log := logFor(account)

	record := &models.HealthSubmission{
		ID:          uuid.NewString(),
		UserAddress: account.Hex(),
		Weight:      fixed.Weight,
		SleepHours:  fixed.SleepHours,
		EnergyLevel: fixed.EnergyLevel,
		Exercise:    fixed.Exercise,
		WaterIntake: fixed.WaterIntake,
		Status:      models.SubmissionStatusPending,
	}
	if err := s.submissions.Save(record); err != nil {
		log.WithError(err).Warn("Failed to record health submission")
	}

	receipt, err := s.contract.UpdateHealthData(ctx, account, fixed)
	if err != nil {
		msg := chain.UserMessage(err)
		if uerr := s.submissions.UpdateStatus(record.ID, models.SubmissionStatusFailed, nil, &msg); uerr != nil {
			log.WithError(uerr).Warn("Failed to update health submission")
		}
		log.WithError(err).Error("Health data update failed")
		return nil, err
	}

	if uerr := s.submissions.UpdateStatus(record.ID, models.SubmissionStatusConfirmed, &receipt.TxHash, nil); uerr != nil {
		log.WithError(uerr).Warn("Failed to update health submission")
	}
	log.WithField("tx", receipt.TxHash).Info("Health data updated")

	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}

	result := &SubmitResult{
		SubmissionID: record.ID,
		TxHash:       receipt.TxHash,
		BlockNumber:  receipt.BlockNumber,
		Submitted:    fixed,
	}
	dash, err := s.dashboard.Overview(ctx, account)
	if err != nil {
		log.WithError(err).Warn("Failed to refresh dashboard after update")
	} else {
		result.Dashboard = dash
	}
	return result, nil
}

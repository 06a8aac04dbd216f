package repository

import (
	"fmt"
	"strings"
	"time"

	"vitaverse/internal/models"

	"gorm.io/gorm"
)

type HealthSubmissionRepository interface {
	Save(submission *models.HealthSubmission) error
	UpdateStatus(id, status string, txHash, errorMessage *string) error
	GetByID(id string) (*models.HealthSubmission, error)
	GetByUser(address string, limit int) ([]*models.HealthSubmission, error)
}

type healthSubmissionRepository struct {
	db *gorm.DB
}

func NewHealthSubmissionRepository(db *gorm.DB) HealthSubmissionRepository {
	return &healthSubmissionRepository{db: db}
}

func (r *healthSubmissionRepository) Save(submission *models.HealthSubmission) error {
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now()
	}
	submission.UpdatedAt = time.Now()
	submission.UserAddress = strings.ToLower(submission.UserAddress)
	return r.db.Create(submission).Error
}

func (r *healthSubmissionRepository) UpdateStatus(id, status string, txHash, errorMessage *string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if txHash != nil {
		updates["tx_hash"] = *txHash
	}
	if errorMessage != nil {
		updates["error_message"] = *errorMessage
	}
	if status == models.SubmissionStatusConfirmed {
		now := time.Now()
		updates["confirmed_at"] = &now
	}

	result := r.db.Model(&models.HealthSubmission{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("submission with ID %s not found", id)
	}
	return nil
}

func (r *healthSubmissionRepository) GetByID(id string) (*models.HealthSubmission, error) {
	var submission models.HealthSubmission
	if err := r.db.Where("id = ?", id).First(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *healthSubmissionRepository) GetByUser(address string, limit int) ([]*models.HealthSubmission, error) {
	if limit <= 0 {
		limit = 20
	}
	var submissions []*models.HealthSubmission
	err := r.db.Where("user_address = ?", strings.ToLower(address)).
		Order("created_at DESC").
		Limit(limit).
		Find(&submissions).Error
	return submissions, err
}

package repository

import (
	"strings"
	"time"

	"vitaverse/internal/models"

	"gorm.io/gorm"
)

type BadgePurchaseRepository interface {
	Save(purchase *models.BadgePurchase) error
	Update(purchase *models.BadgePurchase) error
	GetByID(id string) (*models.BadgePurchase, error)
	GetByUser(address string, limit int) ([]*models.BadgePurchase, error)
}

type badgePurchaseRepository struct {
	db *gorm.DB
}

func NewBadgePurchaseRepository(db *gorm.DB) BadgePurchaseRepository {
	return &badgePurchaseRepository{db: db}
}

func (r *badgePurchaseRepository) Save(purchase *models.BadgePurchase) error {
	if purchase.CreatedAt.IsZero() {
		purchase.CreatedAt = time.Now()
	}
	purchase.UpdatedAt = time.Now()
	purchase.UserAddress = strings.ToLower(purchase.UserAddress)
	return r.db.Create(purchase).Error
}

func (r *badgePurchaseRepository) Update(purchase *models.BadgePurchase) error {
	purchase.UpdatedAt = time.Now()
	return r.db.Save(purchase).Error
}

func (r *badgePurchaseRepository) GetByID(id string) (*models.BadgePurchase, error) {
	var purchase models.BadgePurchase
	if err := r.db.Where("id = ?", id).First(&purchase).Error; err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *badgePurchaseRepository) GetByUser(address string, limit int) ([]*models.BadgePurchase, error) {
	if limit <= 0 {
		limit = 20
	}
	var purchases []*models.BadgePurchase
	err := r.db.Where("user_address = ?", strings.ToLower(address)).
		Order("created_at DESC").
		Limit(limit).
		Find(&purchases).Error
	return purchases, err
}

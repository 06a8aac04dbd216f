package repository

import (
	"strings"
	"time"

	"vitaverse/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventFilter struct {
	UserAddress string
	Name        string
	Limit       int
}

type ContractEventRepository interface {
	// StoreBatch inserts events, skipping ones already indexed, and moves the
	// named cursor to block in the same transaction. It returns only the rows
	// this call inserted.
	StoreBatch(cursor string, block uint64, events []models.ContractEvent) ([]models.ContractEvent, error)
	List(filter EventFilter) ([]models.ContractEvent, error)
	Count() (int64, error)
	PurchasesPerBadge() ([]models.BadgePopularity, error)

	GetCursor(name string) (uint64, bool, error)
	SetCursor(name string, block uint64) error
}

type contractEventRepository struct {
	db *gorm.DB
}

func NewContractEventRepository(db *gorm.DB) ContractEventRepository {
	return &contractEventRepository{db: db}
}

func (r *contractEventRepository) StoreBatch(cursor string, block uint64, events []models.ContractEvent) ([]models.ContractEvent, error) {
	var inserted []models.ContractEvent
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, ev := range events {
			row := ev
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected > 0 {
				inserted = append(inserted, row)
			}
		}
		return upsertCursor(tx, cursor, block)
	})
	if err != nil {
		return nil, err
	}
	return inserted, nil
}

func (r *contractEventRepository) List(filter EventFilter) ([]models.ContractEvent, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	query := r.db.Model(&models.ContractEvent{})
	if filter.UserAddress != "" {
		query = query.Where("user_address = ?", strings.ToLower(filter.UserAddress))
	}
	if filter.Name != "" {
		query = query.Where("name = ?", filter.Name)
	}

	var events []models.ContractEvent
	err := query.Order("block_number DESC, log_index DESC").Limit(limit).Find(&events).Error
	return events, err
}

func (r *contractEventRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContractEvent{}).Count(&count).Error
	return count, err
}

func (r *contractEventRepository) PurchasesPerBadge() ([]models.BadgePopularity, error) {
	var rows []models.BadgePopularity
	err := r.db.Model(&models.ContractEvent{}).
		Select("badge_id, COUNT(*) AS purchases").
		Where("name = ? AND badge_id IS NOT NULL", models.EventBadgePurchased).
		Group("badge_id").
		Order("purchases DESC, badge_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *contractEventRepository) GetCursor(name string) (uint64, bool, error) {
	var cursor models.IndexerCursor
	err := r.db.Where("name = ?", name).First(&cursor).Error
	if err == gorm.ErrRecordNotFound {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return cursor.Block, true, nil
}

func (r *contractEventRepository) SetCursor(name string, block uint64) error {
	return upsertCursor(r.db, name, block)
}

func upsertCursor(db *gorm.DB, name string, block uint64) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"block", "updated_at"}),
	}).Create(&models.IndexerCursor{Name: name, Block: block, UpdatedAt: time.Now()}).Error
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventHealthDataUpdated = "HealthDataUpdated"
	EventBadgeEarned       = "BadgeEarned"
	EventBadgePurchased    = "BadgePurchased"
)

// ContractEvent is an indexed copy of a VitaVerse contract log.
type ContractEvent struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time           `json:"created_at"`
	Name        string              `gorm:"type:varchar(32);not null;index" json:"name"`
	UserAddress string              `gorm:"type:varchar(42);not null;index" json:"user_address"`
	BadgeID     *uint64             `gorm:"index" json:"badge_id,omitempty"`
	BadgeName   string              `json:"badge_name,omitempty"`
	Price       decimal.NullDecimal `gorm:"type:numeric(78,0)" json:"price,omitempty"`
	Weight      *uint64             `json:"weight,omitempty"`
	SleepHours  *uint64             `json:"sleep_hours,omitempty"`
	EnergyLevel *uint64             `json:"energy_level,omitempty"`
	Exercise    *uint64             `json:"exercise,omitempty"`
	WaterIntake *uint64             `json:"water_intake,omitempty"`
	TxHash      string              `gorm:"type:varchar(66);not null;uniqueIndex:idx_event_tx_log" json:"tx_hash"`
	LogIndex    uint                `gorm:"not null;uniqueIndex:idx_event_tx_log" json:"log_index"`
	BlockNumber uint64              `gorm:"not null;index" json:"block_number"`
}

func (ContractEvent) TableName() string {
	return "contract_events"
}

type IndexerCursor struct {
	Name      string    `gorm:"primaryKey;type:varchar(64)" json:"name"`
	Block     uint64    `json:"block"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (IndexerCursor) TableName() string {
	return "indexer_cursors"
}

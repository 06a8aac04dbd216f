package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BadgePurchase struct {
	ID               string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserAddress      string          `gorm:"type:varchar(42);not null;index" json:"user_address"`
	BadgeID          uint64          `gorm:"not null;index" json:"badge_id"`
	Price            decimal.Decimal `gorm:"type:numeric(78,0)" json:"price"`
	Status           string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	AllowanceGranted bool            `json:"allowance_granted"`
	ApproveTxHash    *string         `gorm:"type:varchar(66)" json:"approve_tx_hash,omitempty"`
	PurchaseTxHash   *string         `gorm:"type:varchar(66)" json:"purchase_tx_hash,omitempty"`
	ErrorMessage     *string         `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusApproved  = "approved"
	PurchaseStatusCompleted = "completed"
	PurchaseStatusFailed    = "failed"
	PurchaseStatusRejected  = "rejected"
)

func (BadgePurchase) TableName() string {
	return "badge_purchases"
}

// PurchaseResult is returned to the caller after a purchase attempt.
type PurchaseResult struct {
	PurchaseID       string  `json:"purchase_id"`
	BadgeID          uint64  `json:"badge_id"`
	Status           string  `json:"status"`
	AllowanceGranted bool    `json:"allowance_granted"`
	ApproveTxHash    string  `json:"approve_tx_hash,omitempty"`
	PurchaseTxHash   string  `json:"purchase_tx_hash,omitempty"`
	Badges           []Badge `json:"badges,omitempty"`
}

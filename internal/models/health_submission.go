package models

import (
	"time"
)

// HealthSubmission is the local audit trail of an updateHealthData write.
// Values are stored in contract units (weight and sleep ×10).
type HealthSubmission struct {
	ID           string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserAddress  string     `gorm:"type:varchar(42);not null;index" json:"user_address"`
	Weight       uint64     `json:"weight"`
	SleepHours   uint64     `json:"sleep_hours"`
	EnergyLevel  uint64     `json:"energy_level"`
	Exercise     uint64     `json:"exercise"`
	WaterIntake  uint64     `json:"water_intake"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	TxHash       *string    `gorm:"type:varchar(66)" json:"tx_hash,omitempty"`
	ErrorMessage *string    `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
}

const (
	SubmissionStatusPending   = "pending"
	SubmissionStatusConfirmed = "confirmed"
	SubmissionStatusFailed    = "failed"
)

func (HealthSubmission) TableName() string {
	return "health_submissions"
}

// HealthInput is the submission payload in display units.
type HealthInput struct {
	Weight      float64 `json:"weight" binding:"required,gt=0,lte=1000" example:"70.5"`
	SleepHours  float64 `json:"sleep_hours" binding:"gte=0,lte=24" example:"7.5"`
	EnergyLevel uint64  `json:"energy_level" binding:"required,min=1,max=10" example:"8"`
	Exercise    uint64  `json:"exercise" binding:"lte=1440" example:"30"`
	WaterIntake uint64  `json:"water_intake" binding:"lte=20000" example:"2000"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PenaltyRate is a named late-payment fee percentage per day,
// e.g. "0,5% päevas".
type PenaltyRate struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string          `gorm:"size:100;not null;uniqueIndex" json:"name"`
	RatePerDay decimal.Decimal `gorm:"type:decimal(5,3);not null" json:"rate_per_day"`
	IsDefault  bool            `gorm:"not null;default:false" json:"is_default"`
	IsActive   bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
}

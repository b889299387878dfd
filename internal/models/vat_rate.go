package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VatRate is a named, reusable VAT percentage. At most one row may be
// flagged as the default; the repository enforces the swap on write.
type VatRate struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Rate        decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"rate"`
	Description string          `gorm:"size:255" json:"description"`
	IsDefault   bool            `gorm:"not null;default:false" json:"is_default"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RateValid reports whether the percentage is within [0,100].
func (v *VatRate) RateValid() bool {
	return !v.Rate.IsNegative() && v.Rate.LessThanOrEqual(decimal.NewFromInt(100))
}

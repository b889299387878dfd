package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentTerms is a named day-count payment condition, e.g. "14 päeva".
type PaymentTerms struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Days      int       `gorm:"not null" json:"days"`
	IsDefault bool      `gorm:"not null;default:false" json:"is_default"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

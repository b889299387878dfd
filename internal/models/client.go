package models

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:200;not null;index" json:"name"`
	RegistryCode string    `gorm:"size:20" json:"registry_code"`
	Email        string    `gorm:"size:120" json:"email"`
	Phone        string    `gorm:"size:20" json:"phone"`
	Address      string    `gorm:"type:text" json:"address"`
	CreatedAt    time.Time `json:"created_at"`

	Invoices []Invoice `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"invoices,omitempty"`
}

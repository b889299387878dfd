package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StatusAuditLog records every invoice status change.
type StatusAuditLog struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID      uuid.UUID      `gorm:"type:uuid;index" json:"invoice_id"`
	PreviousStatus string         `gorm:"size:20" json:"previous_status"`
	NewStatus      string         `gorm:"size:20" json:"new_status"`
	Kind           string         `gorm:"size:40" json:"kind"`
	Details        datatypes.JSON `json:"details"`
	CreatedAt      time.Time      `json:"created_at"`
}

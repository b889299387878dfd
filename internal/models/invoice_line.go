package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceLine is one billable row of an invoice. Lines have no
// lifecycle of their own, they live and die with the invoice.
type InvoiceLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Position    int             `gorm:"not null;default:0" json:"position"`
	Description string          `gorm:"size:500;not null" json:"description"`
	Qty         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:1" json:"qty"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"line_total"`
}

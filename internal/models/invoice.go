package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice statuses. The system uses the simplified 2-status model:
// overdue is a dynamic condition derived from the due date, not a
// persisted status of its own.
const (
	StatusUnpaid = "maksmata"
	StatusPaid   = "makstud"
)

type Invoice struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Number   string    `gorm:"size:20;not null;uniqueIndex" json:"number"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	Client   *Client   `json:"client,omitempty"`

	Date    time.Time `gorm:"type:date;not null" json:"date"`
	DueDate time.Time `gorm:"type:date;not null" json:"due_date"`

	Subtotal decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"subtotal"`
	Total    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total"`

	// VatRateID references a named VatRate; VatRate is the inline
	// percentage fallback kept for invoices without a reference.
	// The VAT amount itself is never stored, it is always derived.
	VatRateID  *uuid.UUID          `gorm:"type:uuid" json:"vat_rate_id"`
	VatRateObj *VatRate            `gorm:"foreignKey:VatRateID" json:"vat_rate_obj,omitempty"`
	VatRate    decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"vat_rate"`

	Status string `gorm:"size:20;not null;default:'maksmata';index" json:"status"`

	PaymentTerms    string `gorm:"size:50" json:"payment_terms"`
	ClientExtraInfo string `gorm:"type:text" json:"client_extra_info"`
	Note            string `gorm:"type:text" json:"note"`
	Announcements   string `gorm:"type:text" json:"announcements"`
	PdfTemplate     string `gorm:"size:20;default:'standard'" json:"pdf_template"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Lines are owned by the invoice and removed with it.
	Lines []InvoiceLine `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"lines"`
}

func (i *Invoice) IsPaid() bool {
	return i.Status == StatusPaid
}

// IsOverdue reports whether the invoice is past due and still unpaid.
// Overdue is evaluated dynamically, never persisted.
func (i *Invoice) IsOverdue(now time.Time) bool {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return i.DueDate.Before(day) && i.Status == StatusUnpaid
}

// CanBeEdited reports whether the normal edit path may mutate the
// invoice. Paid invoices are locked.
func (i *Invoice) CanBeEdited() bool {
	return !i.IsPaid()
}

// StatusDisplay returns the Estonian display name for the current
// status, taking the dynamic overdue condition into account.
func (i *Invoice) StatusDisplay(now time.Time) string {
	switch {
	case i.IsOverdue(now):
		return "Tähtaeg ületatud"
	case i.IsPaid():
		return "Makstud"
	default:
		return "Maksmata"
	}
}

package invoice

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"invoicing-backend/internal/services/status"
)

// Failure is a recoverable business-rule or validation failure. It is
// returned as a value so the caller can decide how to present it; only
// infrastructure problems travel as errors.
type Failure struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

const (
	KindClientRequired      = "client_required"
	KindDescriptionRequired = "description_required"
	KindInvalidQty          = "invalid_qty"
	KindInvalidUnitPrice    = "invalid_unit_price"
	KindInvalidDueDate      = "invalid_due_date"
	KindInvalidVatRate      = "invalid_vat_rate"
	KindVatRateNotFound     = "vat_rate_not_found"
	KindInvalidNumberFormat = "invalid_number_format"
	KindNumberTaken         = "number_taken"
	KindPaidLocked          = "paid_locked"
)

// failureMessages keeps the user-facing Estonian texts apart from the
// machine-readable kinds the control flow keys on.
var failureMessages = map[string]string{
	KindClientRequired:      "Klient on kohustuslik.",
	KindDescriptionRequired: "Rea kirjeldus on kohustuslik.",
	KindInvalidQty:          "Kogus peab olema suurem kui null.",
	KindInvalidUnitPrice:    "Ühikuhind ei tohi olla negatiivne.",
	KindInvalidDueDate:      "Maksetähtaeg ei tohi olla varasem kui arve kuupäev.",
	KindInvalidVatRate:      "Käibemaksumäär peab olema vahemikus 0–100.",
	KindVatRateNotFound:     "Valitud käibemaksumäära ei leitud.",
	KindInvalidNumberFormat: "Vigane arve number, õige formaat on AAAA-NNNN.",
	KindNumberTaken:         "Arve number on juba kasutusel.",
	KindPaidLocked:          status.Message(status.KindPaidLocked),
}

func failure(kind string) *Failure {
	return &Failure{Kind: kind, Message: failureMessages[kind]}
}

var hundred = decimal.NewFromInt(100)

// validate checks the request-level invariants: a client, a due date
// no earlier than the invoice date, positive quantities, non-negative
// unit prices and an inline VAT rate within [0,100].
func validate(in Input) *Failure {
	if in.ClientID == uuid.Nil {
		return failure(KindClientRequired)
	}
	if in.DueDate.Before(in.Date) {
		return failure(KindInvalidDueDate)
	}
	if in.VatRate != nil {
		if in.VatRate.IsNegative() || in.VatRate.GreaterThan(hundred) {
			return failure(KindInvalidVatRate)
		}
	}
	for _, line := range in.Lines {
		if line.Description == "" {
			return failure(KindDescriptionRequired)
		}
		if !line.Qty.IsPositive() {
			return failure(KindInvalidQty)
		}
		if line.UnitPrice.IsNegative() {
			return failure(KindInvalidUnitPrice)
		}
	}
	return nil
}

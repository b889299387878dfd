// Package totals derives an invoice's monetary state from its lines
// and effective VAT rate. All functions are pure except Recalculate,
// which writes the computed subtotal and total back onto the invoice.
// The VAT amount is never stored; it is recomputed through the same
// rounding rule on every read so the written and displayed figures
// cannot drift apart.
package totals

import (
	"github.com/shopspring/decimal"

	"invoicing-backend/internal/models"
	"invoicing-backend/internal/money"
)

// Breakdown is the computed monetary triple for one invoice.
type Breakdown struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	VatAmount decimal.Decimal `json:"vat_amount"`
	Total     decimal.Decimal `json:"total"`
}

// LineTotal returns qty × unitPrice rounded to 2 decimals.
func LineTotal(qty, unitPrice decimal.Decimal) decimal.Decimal {
	return money.Round2(qty.Mul(unitPrice))
}

// Subtotal sums the already-rounded line totals and rounds once at the
// end. Per-line values are not re-rounded here; they were produced by
// LineTotal, and rounding them again would introduce drift.
func Subtotal(lines []models.InvoiceLine) decimal.Decimal {
	sum := decimal.Zero
	for i := range lines {
		sum = sum.Add(lines[i].LineTotal)
	}
	return money.Round2(sum)
}

// VatAmount returns round2(subtotal × ratePercent / 100). The division
// by 100 is an exact decimal shift, not a float operation.
func VatAmount(subtotal, ratePercent decimal.Decimal) decimal.Decimal {
	return money.Round2(subtotal.Mul(ratePercent).Shift(-2))
}

// Total returns round2(subtotal + vatAmount).
func Total(subtotal, vatAmount decimal.Decimal) decimal.Decimal {
	return money.Round2(subtotal.Add(vatAmount))
}

// EffectiveRate resolves the VAT percentage applied to an invoice:
// the referenced VatRate row wins, then the invoice's own inline
// percentage, then the application default, then zero.
func EffectiveRate(inv *models.Invoice, defaultRate decimal.Decimal) decimal.Decimal {
	if inv.VatRateObj != nil {
		return inv.VatRateObj.Rate
	}
	if inv.VatRate.Valid {
		return inv.VatRate.Decimal
	}
	return defaultRate
}

// Recalculate recomputes the invoice's totals from its current line
// collection and effective VAT rate, updates Subtotal and Total on the
// invoice in place, and returns the full breakdown. Callers must apply
// all line mutations before invoking it.
func Recalculate(inv *models.Invoice, defaultRate decimal.Decimal) Breakdown {
	subtotal := Subtotal(inv.Lines)
	vatAmount := VatAmount(subtotal, EffectiveRate(inv, defaultRate))
	total := Total(subtotal, vatAmount)

	inv.Subtotal = subtotal
	inv.Total = total

	return Breakdown{Subtotal: subtotal, VatAmount: vatAmount, Total: total}
}

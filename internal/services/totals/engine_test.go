package totals

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"invoicing-backend/internal/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func line(qty, unitPrice string) models.InvoiceLine {
	q, p := dec(qty), dec(unitPrice)
	return models.InvoiceLine{
		ID:        uuid.New(),
		Qty:       q,
		UnitPrice: p,
		LineTotal: LineTotal(q, p),
	}
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name      string
		qty       string
		unitPrice string
		want      string
	}{
		{"whole numbers", "3", "19.99", "59.97"},
		{"fractional qty", "1.33", "123.45", "164.19"},
		{"half rounds up", "1.5", "0.07", "0.11"},
		{"zero qty", "0", "99.99", "0.00"},
		{"zero price", "4", "0", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineTotal(dec(tt.qty), dec(tt.unitPrice))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("LineTotal(%s, %s) = %s, want %s", tt.qty, tt.unitPrice, got, tt.want)
			}
		})
	}
}

func TestSubtotal(t *testing.T) {
	if got := Subtotal(nil); !got.IsZero() {
		t.Errorf("Subtotal(nil) = %s, want 0", got)
	}

	lines := []models.InvoiceLine{
		line("1.33", "123.45"), // 164.19
		line("2.67", "87.65"),  // 234.03
		line("0.75", "199.99"), // 149.99
	}
	if got := Subtotal(lines); !got.Equal(dec("548.21")) {
		t.Errorf("Subtotal = %s, want 548.21", got)
	}
}

func TestVatAmount(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		rate     string
		want     string
	}{
		{"standard rate", "100.00", "24", "24.00"},
		{"zero rate", "100.00", "0", "0.00"},
		{"rounds half up", "548.21", "24", "131.57"},
		{"tiny base", "0.01", "24", "0.00"},
		{"reduced rate", "200.00", "9", "18.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VatAmount(dec(tt.subtotal), dec(tt.rate))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("VatAmount(%s, %s) = %s, want %s", tt.subtotal, tt.rate, got, tt.want)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	if got := Total(dec("100.00"), dec("24.00")); !got.Equal(dec("124.00")) {
		t.Errorf("Total = %s, want 124.00", got)
	}
}

func TestEffectiveRate(t *testing.T) {
	linked := &models.VatRate{ID: uuid.New(), Rate: dec("9")}
	inline := decimal.NullDecimal{Decimal: dec("20"), Valid: true}

	tests := []struct {
		name        string
		inv         models.Invoice
		defaultRate string
		want        string
	}{
		{"linked rate wins", models.Invoice{VatRateObj: linked, VatRate: inline}, "24", "9"},
		{"inline when no link", models.Invoice{VatRate: inline}, "24", "20"},
		{"default when neither", models.Invoice{}, "24", "24"},
		{"zero without default", models.Invoice{}, "0", "0"},
		{"inline zero is a real rate", models.Invoice{VatRate: decimal.NullDecimal{Valid: true}}, "24", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveRate(&tt.inv, dec(tt.defaultRate))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("EffectiveRate = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRecalculate(t *testing.T) {
	inv := &models.Invoice{
		VatRate: decimal.NullDecimal{Decimal: dec("24"), Valid: true},
		Lines: []models.InvoiceLine{
			line("1.33", "123.45"),
			line("2.67", "87.65"),
			line("0.75", "199.99"),
		},
	}

	got := Recalculate(inv, decimal.Zero)

	if !got.Subtotal.Equal(dec("548.21")) {
		t.Errorf("Subtotal = %s, want 548.21", got.Subtotal)
	}
	if !got.VatAmount.Equal(dec("131.57")) {
		t.Errorf("VatAmount = %s, want 131.57", got.VatAmount)
	}
	if !got.Total.Equal(dec("679.78")) {
		t.Errorf("Total = %s, want 679.78", got.Total)
	}

	// The invoice itself carries the new subtotal and total; the VAT
	// amount stays derived.
	if !inv.Subtotal.Equal(got.Subtotal) || !inv.Total.Equal(got.Total) {
		t.Error("Recalculate should write subtotal and total back onto the invoice")
	}
}

func TestRecalculateIdempotent(t *testing.T) {
	inv := &models.Invoice{
		VatRate: decimal.NullDecimal{Decimal: dec("24"), Valid: true},
		Lines:   []models.InvoiceLine{line("2.5", "19.99"), line("1", "0.05")},
	}

	first := Recalculate(inv, decimal.Zero)
	second := Recalculate(inv, decimal.Zero)

	if !first.Subtotal.Equal(second.Subtotal) || !first.VatAmount.Equal(second.VatAmount) || !first.Total.Equal(second.Total) {
		t.Errorf("Recalculate is not idempotent: first %+v, second %+v", first, second)
	}
}

func TestRecalculateEmptyInvoice(t *testing.T) {
	inv := &models.Invoice{}
	got := Recalculate(inv, dec("24"))
	if !got.Subtotal.IsZero() || !got.VatAmount.IsZero() || !got.Total.IsZero() {
		t.Errorf("empty invoice should total zero, got %+v", got)
	}
}

package main

import (
	"testing"

	"github.com/shopspring/decimal"

	"invoicing-backend/internal/models"
	"invoicing-backend/internal/money"
)

func TestOverdueAtLeast(t *testing.T) {
	invoices := []models.Invoice{
		{Number: "2025-0001", Total: decimal.RequireFromString("50.00")},
		{Number: "2025-0002", Total: decimal.RequireFromString("100.00")},
		{Number: "2025-0003", Total: decimal.RequireFromString("250.40")},
	}

	tests := []struct {
		name string
		min  string
		want []string
	}{
		{"zero threshold keeps everything", "", []string{"2025-0001", "2025-0002", "2025-0003"}},
		{"threshold is inclusive", "100.00", []string{"2025-0002", "2025-0003"}},
		{"above all totals", "1000", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, err := money.Parse(tt.min)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.min, err)
			}
			got := overdueAtLeast(invoices, min)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d invoices, want %d", len(got), len(tt.want))
			}
			for i, inv := range got {
				if inv.Number != tt.want[i] {
					t.Errorf("invoice %d: got %s, want %s", i, inv.Number, tt.want[i])
				}
			}
		})
	}
}

func TestOverdueMinTotalFlagRejectsGarbage(t *testing.T) {
	if _, err := money.Parse("not-a-number"); err == nil {
		t.Fatal("expected parse error for garbage threshold")
	}
}

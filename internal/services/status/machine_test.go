package status

import (
	"testing"
	"time"

	"invoicing-backend/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name        string
		current     string
		next        string
		wantSuccess bool
		wantKind    Kind
	}{
		{"unpaid to paid", models.StatusUnpaid, models.StatusPaid, true, KindMarkedPaid},
		{"paid back to unpaid", models.StatusPaid, models.StatusUnpaid, true, KindMarkedUnpaid},
		{"unpaid to unpaid", models.StatusUnpaid, models.StatusUnpaid, true, KindMarkedUnpaid},
		{"paid to paid", models.StatusPaid, models.StatusPaid, true, KindMarkedPaid},
		{"bogus target", models.StatusUnpaid, "bogus", false, KindInvalidStatus},
		{"empty target", models.StatusPaid, "", false, KindInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CanTransition(tt.current, tt.next)
			if res.Success != tt.wantSuccess {
				t.Errorf("Success = %v, want %v", res.Success, tt.wantSuccess)
			}
			if res.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", res.Kind, tt.wantKind)
			}
			if res.Message == "" {
				t.Error("every result must carry a user-facing message")
			}
		})
	}
}

func TestTransitionAppliesStatus(t *testing.T) {
	inv := &models.Invoice{Status: models.StatusUnpaid}

	res := Transition(inv, models.StatusPaid, time.Now())
	if !res.Success {
		t.Fatalf("transition failed: %s", res.Message)
	}
	if inv.Status != models.StatusPaid {
		t.Errorf("Status = %q, want %q", inv.Status, models.StatusPaid)
	}
	if res.Message != "Arve on märgitud makstud." {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestTransitionInvalidLeavesStatusUnchanged(t *testing.T) {
	inv := &models.Invoice{Status: models.StatusUnpaid}

	res := Transition(inv, "saadetud", time.Now())
	if res.Success {
		t.Fatal("transition to unknown status should fail")
	}
	if res.Kind != KindInvalidStatus {
		t.Errorf("Kind = %q, want %q", res.Kind, KindInvalidStatus)
	}
	if res.Message != "Vigane staatus: saadetud" {
		t.Errorf("Message = %q", res.Message)
	}
	if inv.Status != models.StatusUnpaid {
		t.Errorf("status changed to %q on a failed transition", inv.Status)
	}
}

func TestValidTransitions(t *testing.T) {
	got := ValidTransitions(models.StatusUnpaid)
	if len(got) != 2 {
		t.Fatalf("ValidTransitions = %v, want both statuses", got)
	}
}

func TestIsOverdueDynamic(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	yesterday := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		invoice models.Invoice
		want    bool
	}{
		{"past due and unpaid", models.Invoice{DueDate: yesterday, Status: models.StatusUnpaid}, true},
		{"past due but paid", models.Invoice{DueDate: yesterday, Status: models.StatusPaid}, false},
		{"due today", models.Invoice{DueDate: today, Status: models.StatusUnpaid}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.invoice.IsOverdue(now); got != tt.want {
				t.Errorf("IsOverdue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanBeEdited(t *testing.T) {
	unpaid := models.Invoice{Status: models.StatusUnpaid}
	paid := models.Invoice{Status: models.StatusPaid}

	if !unpaid.CanBeEdited() {
		t.Error("unpaid invoice should be editable")
	}
	if paid.CanBeEdited() {
		t.Error("paid invoice must be locked")
	}
}

func TestStatusDisplay(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	overdue := models.Invoice{DueDate: now.AddDate(0, 0, -3), Status: models.StatusUnpaid}
	if got := overdue.StatusDisplay(now); got != "Tähtaeg ületatud" {
		t.Errorf("StatusDisplay = %q", got)
	}
}

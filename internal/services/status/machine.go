// Package status governs invoice lifecycle transitions. The rule set
// is a declarative transition table over the two valid statuses;
// overdue is a dynamic condition computed from the due date, never a
// persisted status.
package status

import (
	"time"

	"invoicing-backend/internal/models"
)

// transitions maps from-status × to-status to allowed. Both directions
// between unpaid and paid are open: users sometimes need to correct a
// mistaken paid marking, so "un-paying" is not blocked.
var transitions = map[string]map[string]bool{
	models.StatusUnpaid: {
		models.StatusUnpaid: true,
		models.StatusPaid:   true,
	},
	models.StatusPaid: {
		models.StatusUnpaid: true,
		models.StatusPaid:   true,
	},
}

// Valid reports whether s is a recognized invoice status.
func Valid(s string) bool {
	_, ok := transitions[s]
	return ok
}

// Result is the structured outcome of a transition attempt. Kind is
// the machine-readable classification; Message is the localized text
// for the end user. Failures are values, not errors.
type Result struct {
	Success bool   `json:"success"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// CanTransition checks whether current may change to next without
// touching any invoice.
func CanTransition(current, next string) Result {
	if !Valid(next) {
		return Result{Success: false, Kind: KindInvalidStatus, Message: Message(KindInvalidStatus, next)}
	}
	if current == next {
		return Result{Success: true, Kind: kindForStatus(next), Message: Message(kindForStatus(next))}
	}
	if allowed := transitions[current][next]; !allowed {
		return Result{Success: false, Kind: KindTransitionDenied, Message: Message(KindTransitionDenied)}
	}
	return Result{Success: true, Kind: kindForStatus(next), Message: Message(kindForStatus(next))}
}

// Transition applies the status change to the invoice after
// validation. On failure the invoice is left untouched.
func Transition(inv *models.Invoice, next string, now time.Time) Result {
	res := CanTransition(inv.Status, next)
	if !res.Success {
		return res
	}
	inv.Status = next
	inv.UpdatedAt = now
	return res
}

func kindForStatus(s string) Kind {
	if s == models.StatusPaid {
		return KindMarkedPaid
	}
	return KindMarkedUnpaid
}

// ValidTransitions lists the statuses reachable from current. Under
// the 2-status table every valid status is reachable.
func ValidTransitions(current string) []string {
	targets := make([]string, 0, len(transitions[current]))
	for _, s := range []string{models.StatusUnpaid, models.StatusPaid} {
		if transitions[current][s] {
			targets = append(targets, s)
		}
	}
	return targets
}

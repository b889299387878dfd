package status

import "fmt"

// Kind is the machine-readable classification of a transition outcome.
// Control flow keys on kinds; the Estonian texts below are display
// strings only and can be swapped without touching any rule.
type Kind string

const (
	KindMarkedUnpaid     Kind = "marked_unpaid"
	KindMarkedPaid       Kind = "marked_paid"
	KindStatusChanged    Kind = "status_changed"
	KindInvalidStatus    Kind = "invalid_status"
	KindTransitionDenied Kind = "transition_denied"
	KindPaidLocked       Kind = "paid_locked"
)

var catalog = map[Kind]string{
	KindMarkedUnpaid:     "Arve on märgitud maksmata.",
	KindMarkedPaid:       "Arve on märgitud makstud.",
	KindStatusChanged:    "Staatust on muudetud.",
	KindInvalidStatus:    "Vigane staatus: %s",
	KindTransitionDenied: "Seda staatusemuutust ei ole lubatud teha.",
	KindPaidLocked:       "Makstud arvet ei saa muuta.",
}

// Message renders the localized text for a kind. Unknown kinds fall
// back to the generic changed message.
func Message(kind Kind, args ...interface{}) string {
	text, ok := catalog[kind]
	if !ok {
		return catalog[KindStatusChanged]
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

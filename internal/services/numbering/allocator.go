// Package numbering allocates invoice numbers in the fixed format
// YYYY-NNNN. The sequence resets each year but numbers stay unique
// across the whole invoice set.
package numbering

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"invoicing-backend/internal/repository"
)

var numberPattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

// ValidateFormat reports whether number matches YYYY-NNNN exactly:
// 4-digit year, literal hyphen, 4-digit zero-padded sequence.
func ValidateFormat(number string) bool {
	return numberPattern.MatchString(number)
}

// Next computes the next number for a year given the numbers already
// issued. Only entries carrying the year's prefix count; the highest
// numeric suffix among them is incremented. Malformed entries are
// skipped rather than breaking allocation.
func Next(existing []string, year int) string {
	prefix := fmt.Sprintf("%d-", year)
	max := 0
	for _, n := range existing {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		suffix, err := strconv.Atoi(strings.TrimPrefix(n, prefix))
		if err != nil {
			continue
		}
		if suffix > max {
			max = suffix
		}
	}
	return fmt.Sprintf("%d-%04d", year, max+1)
}

// Allocator generates numbers against the persisted invoice set.
type Allocator struct {
	invoices *repository.InvoiceRepository
}

func NewAllocator(invoices *repository.InvoiceRepository) *Allocator {
	return &Allocator{invoices: invoices}
}

// Generate returns the next available number for the given year.
// A zero year means the current calendar year.
//
// Two concurrent calls can observe the same last number and compute
// the same candidate; the unique index on invoices.number catches the
// loser, and the create path retries with a fresh Generate.
func (a *Allocator) Generate(year int) (string, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	existing, err := a.invoices.NumbersWithPrefix(fmt.Sprintf("%d-", year))
	if err != nil {
		return "", err
	}
	return Next(existing, year), nil
}

// IsAvailable reports whether no invoice holds the exact number.
// Uniqueness is global, not per year. The check is advisory only; the
// database constraint is the real guard.
func (a *Allocator) IsAvailable(number string) (bool, error) {
	exists, err := a.invoices.NumberExists(number)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

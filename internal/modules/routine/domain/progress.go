package domain

import (
	"fmt"

	apperrors "brightbuddy/internal/platform/errors"
)

// Progress is one day's completion record. CompletedCount always equals the
// number of true Items once built through this package.
type Progress struct {
	Date           string
	Items          []bool
	CompletedCount int
	Total          int
}

func NewProgress(date string, total int) Progress {
	return Progress{Date: date, Items: make([]bool, total), Total: total}
}

func (p Progress) Clone() Progress {
	items := make([]bool, len(p.Items))
	copy(items, p.Items)
	p.Items = items
	return p
}

// WithStatus returns a copy dated today with one flag set and the count recomputed.
func (p Progress) WithStatus(index int, done bool, today string) (Progress, error) {
	if index < 0 || index >= len(p.Items) {
		return Progress{}, fmt.Errorf("%w: task index %d out of range [0,%d)", apperrors.ErrInvalidInput, index, len(p.Items))
	}
	out := p.Clone()
	out.Items[index] = done
	out.Date = today
	out.Total = len(out.Items)
	out.CompletedCount = countDone(out.Items)
	return out, nil
}

func (p Progress) AllDone() bool {
	return p.Total > 0 && p.CompletedCount == p.Total
}

func countDone(items []bool) int {
	n := 0
	for _, done := range items {
		if done {
			n++
		}
	}
	return n
}

// Outcome says how Reconcile treated the stored record.
type Outcome string

const (
	OutcomeMissing  Outcome = "missing"
	OutcomeStale    Outcome = "stale"
	OutcomeMismatch Outcome = "mismatch"
	OutcomeKept     Outcome = "kept"
)

// Discarded reports whether a stored record existed but was thrown away.
func (o Outcome) Discarded() bool {
	return o == OutcomeStale || o == OutcomeMismatch
}

// Reconcile checks, in order, that a record exists, that it is dated today and
// that it has one flag per task. Any failure yields a fresh all-false record.
func Reconcile(stored Progress, found bool, total int, today string) (Progress, Outcome) {
	switch {
	case !found:
		return NewProgress(today, total), OutcomeMissing
	case stored.Date != today:
		return NewProgress(today, total), OutcomeStale
	case len(stored.Items) != total:
		return NewProgress(today, total), OutcomeMismatch
	}
	out := stored.Clone()
	out.Total = total
	out.CompletedCount = countDone(out.Items)
	return out, OutcomeKept
}

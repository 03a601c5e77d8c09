// Package filter keeps the shifts whose span overlaps the requested
// optimization window.
package filter

import (
	"time"

	"github.com/Kamul-droid/Scheduler/internal/domain"
)

// ShiftsInWindow returns the subset of shifts with
// shift.start < w1 && shift.end > w0 — inclusive-overlap semantics. A
// shift that merely touches an endpoint (shift.end == w0 or
// shift.start == w1) is excluded.
func ShiftsInWindow(shifts []domain.Shift, w0, w1 time.Time) []domain.Shift {
	kept := make([]domain.Shift, 0, len(shifts))
	for _, s := range shifts {
		if s.Start().Before(w1) && s.End().After(w0) {
			kept = append(kept, s)
		}
	}
	return kept
}

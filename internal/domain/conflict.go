package domain

import (
	"fmt"

	"github.com/premium-barber/booking-service/pkg/types"
)

// SlotRequest is a candidate (start time, service) pair to test for conflicts.
type SlotRequest struct {
	StartTime types.TimeString
	Service   string
}

// ConflictDetector decides whether two service windows collide. A window is
// [start, start+duration) extended by the calendar buffer; two windows
// conflict when the buffered intervals intersect, so back-to-back bookings
// must leave at least BufferMinutes of gap.
type ConflictDetector struct {
	catalog       *ServiceCatalog
	bufferMinutes int
}

// NewConflictDetector builds a detector over the catalog and buffer policy.
func NewConflictDetector(catalog *ServiceCatalog, bufferMinutes int) *ConflictDetector {
	return &ConflictDetector{catalog: catalog, bufferMinutes: bufferMinutes}
}

// Conflicts reports whether two candidate slots collide. Both durations are
// resolved through the catalog. Unknown services and non-positive durations
// are errors, never a silent "no conflict".
func (d *ConflictDetector) Conflicts(a, b SlotRequest) (bool, error) {
	durA, err := d.serviceDuration(a.Service)
	if err != nil {
		return false, err
	}
	durB, err := d.serviceDuration(b.Service)
	if err != nil {
		return false, err
	}

	startB, err := b.StartTime.Minutes()
	if err != nil {
		return false, fmt.Errorf("conflict: invalid start time %q: %w", b.StartTime, err)
	}

	return d.overlaps(a.StartTime, durA, startB, durB)
}

// ConflictsWithInterval reports whether the candidate slot collides with an
// occupied interval of the given start and duration (typically an existing
// booking's stored snapshot).
func (d *ConflictDetector) ConflictsWithInterval(candidate SlotRequest, start types.TimeString, durationMinutes int) (bool, error) {
	durA, err := d.serviceDuration(candidate.Service)
	if err != nil {
		return false, err
	}
	if durationMinutes <= 0 {
		return false, fmt.Errorf("conflict: non-positive interval duration %d", durationMinutes)
	}

	startB, err := start.Minutes()
	if err != nil {
		return false, fmt.Errorf("conflict: invalid start time %q: %w", start, err)
	}

	return d.overlaps(candidate.StartTime, durA, startB, durationMinutes)
}

// overlaps tests the buffered intervals in minutes since midnight.
// startA < endB+buffer && endA+buffer > startB is symmetric in A and B.
func (d *ConflictDetector) overlaps(aStart types.TimeString, durA, startB, durB int) (bool, error) {
	startA, err := aStart.Minutes()
	if err != nil {
		return false, fmt.Errorf("conflict: invalid start time %q: %w", aStart, err)
	}

	endA := startA + durA
	endB := startB + durB

	return startA < endB+d.bufferMinutes && endA+d.bufferMinutes > startB, nil
}

func (d *ConflictDetector) serviceDuration(name string) (int, error) {
	def, ok := d.catalog.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("conflict: unknown service %q", name)
	}
	if def.DurationMinutes <= 0 {
		return 0, fmt.Errorf("conflict: service %q has non-positive duration", name)
	}
	return def.DurationMinutes, nil
}

package shift

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrAlreadyBooked = errors.New("shift is already booked")
	ErrNotBooked     = errors.New("shift is not booked")
	ErrShiftStarted  = errors.New("shift has already started")
	ErrOverlap       = errors.New("shift overlaps with another booked shift")
)

// CanBook decides whether candidate may move from unbooked to booked at now.
// bookedInArea is the current set of booked shifts; entries in other areas, unbooked
// entries and the candidate itself are ignored. A nil error means the booking is admissible.
//
// The time gate is evaluated first so that any request after startTime reports
// ErrShiftStarted whatever the booking state.
func CanBook(candidate *Shift, now time.Time, bookedInArea []*Shift) error {
	if candidate.HasStarted(now) {
		return ErrShiftStarted
	}
	if candidate.IsBooked() {
		return ErrAlreadyBooked
	}
	if other := FindOverlap(candidate, bookedInArea); other != nil {
		return fmt.Errorf("%w: %s", ErrOverlap, other.ID())
	}
	return nil
}

// CanCancel decides whether candidate may move from booked to unbooked at now.
func CanCancel(candidate *Shift, now time.Time) error {
	if candidate.HasStarted(now) {
		return ErrShiftStarted
	}
	if !candidate.IsBooked() {
		return ErrNotBooked
	}
	return nil
}

// FindOverlap returns the first booked shift in candidate's area, other than candidate,
// whose slot intersects candidate's slot.
func FindOverlap(candidate *Shift, shifts []*Shift) *Shift {
	for _, other := range shifts {
		if other == nil || !other.IsBooked() {
			continue
		}
		if other.ID() == candidate.ID() || other.Area() != candidate.Area() {
			continue
		}
		if candidate.TimeSlot().Overlaps(other.TimeSlot()) {
			return other
		}
	}
	return nil
}

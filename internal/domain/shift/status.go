package shift

import "time"

// ClassifyStatus derives the display status of s at now. The first matching rule wins:
// completed, in-progress, booked, overlapping, available. areaShifts is the context used
// for the overlap rule and may contain s itself and shifts from other areas.
func ClassifyStatus(s *Shift, now time.Time, areaShifts []*Shift) Status {
	switch {
	case s.HasEnded(now):
		return StatusCompleted
	case s.IsBooked() && s.IsInProgress(now):
		return StatusInProgress
	case s.IsBooked():
		return StatusBooked
	case FindOverlap(s, areaShifts) != nil:
		return StatusOverlapping
	default:
		return StatusAvailable
	}
}

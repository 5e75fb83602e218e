package shift

import "time"

// TimeSlot is the half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{
		start: start,
		end:   end,
	}, nil
}

func NewTimeSlotFromMillis(startMs, endMs int64) (TimeSlot, error) {
	return NewTimeSlot(time.UnixMilli(startMs), time.UnixMilli(endMs))
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) StartMillis() int64 {
	return ts.start.UnixMilli()
}

func (ts TimeSlot) EndMillis() int64 {
	return ts.end.UnixMilli()
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps reports whether the two half-open intervals intersect.
// Slots that only touch at a boundary do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

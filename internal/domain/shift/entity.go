package shift

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidArea     = errors.New("invalid area")
	ErrInvalidTimeSlot = errors.New("start time must be before end time")
	ErrInvalidID       = errors.New("invalid shift id")
)

type Shift struct {
	id     uuid.UUID
	area   Area
	slot   TimeSlot
	booked bool
}

// NewShift creates an unbooked shift. Shifts are only created by import; booking state
// changes only through the store's conditional write.
func NewShift(id uuid.UUID, area Area, slot TimeSlot) (*Shift, error) {
	if !area.IsValid() {
		return nil, ErrInvalidArea
	}
	if slot.start.IsZero() || slot.end.IsZero() {
		return nil, ErrInvalidTimeSlot
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Shift{
		id:   id,
		area: area,
		slot: slot,
	}, nil
}

func ReconstructShift(id uuid.UUID, area Area, slot TimeSlot, booked bool) *Shift {
	return &Shift{
		id:     id,
		area:   area,
		slot:   slot,
		booked: booked,
	}
}

func (s *Shift) ID() uuid.UUID      { return s.id }
func (s *Shift) Area() Area         { return s.area }
func (s *Shift) TimeSlot() TimeSlot { return s.slot }
func (s *Shift) IsBooked() bool     { return s.booked }
func (s *Shift) StartTime() time.Time {
	return s.slot.start
}
func (s *Shift) EndTime() time.Time {
	return s.slot.end
}

// HasStarted is true from startTime onwards; book and cancel are closed from that instant.
func (s *Shift) HasStarted(now time.Time) bool {
	return !now.Before(s.slot.start)
}

// HasEnded is true strictly after endTime.
func (s *Shift) HasEnded(now time.Time) bool {
	return s.slot.end.Before(now)
}

func (s *Shift) IsInProgress(now time.Time) bool {
	return s.HasStarted(now) && now.Before(s.slot.end)
}

func (s *Shift) DurationHours() float64 {
	return s.slot.Duration().Hours()
}

//go:build unit || e2e

package builder

import (
	"time"

	"shift-booking/internal/domain/shift"
	"shift-booking/internal/infra/pgquery"
	"shift-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BaseTime is the fixed "now" used across unit tests (11:00 in Helsinki).
var BaseTime = time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)

type ShiftBuilder struct {
	ID     uuid.UUID
	Area   shift.Area
	Start  time.Time
	End    time.Time
	Booked bool
}

// NewShiftBuilder returns a four-hour unbooked Helsinki shift starting a day after BaseTime.
func NewShiftBuilder() *ShiftBuilder {
	start := BaseTime.Add(24 * time.Hour)
	return &ShiftBuilder{
		ID:    uuid.New(),
		Area:  shift.AreaHelsinki,
		Start: start,
		End:   start.Add(4 * time.Hour),
	}
}

func (b *ShiftBuilder) With(mutate func(*ShiftBuilder)) *ShiftBuilder {
	mutate(b)
	return b
}

func (b *ShiftBuilder) InArea(area shift.Area) *ShiftBuilder {
	b.Area = area
	return b
}

// Between sets the slot as offsets from BaseTime.
func (b *ShiftBuilder) Between(from, to time.Duration) *ShiftBuilder {
	b.Start = BaseTime.Add(from)
	b.End = BaseTime.Add(to)
	return b
}

func (b *ShiftBuilder) AsBooked() *ShiftBuilder {
	b.Booked = true
	return b
}

// Build methods
func (b *ShiftBuilder) BuildDomain() *shift.Shift {
	slot, err := shift.NewTimeSlot(b.Start, b.End)
	if err != nil {
		panic(err)
	}
	return shift.ReconstructShift(b.ID, b.Area, slot, b.Booked)
}

func (b *ShiftBuilder) BuildInfra() pgquery.Shift {
	return pgquery.Shift{
		ID:        b.ID,
		Area:      b.Area.String(),
		Booked:    b.Booked,
		StartTime: b.Start.UnixMilli(),
		EndTime:   b.End.UnixMilli(),
		CreatedAt: pgtype.Timestamptz{Time: BaseTime, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: BaseTime, Valid: true},
	}
}

func (b *ShiftBuilder) BuildView() *queries.ShiftView {
	status := shift.StatusAvailable
	if b.Booked {
		status = shift.StatusBooked
	}
	return &queries.ShiftView{
		ID:            b.ID,
		Area:          b.Area.String(),
		Booked:        b.Booked,
		StartTime:     b.Start.UnixMilli(),
		EndTime:       b.End.UnixMilli(),
		DurationHours: b.End.Sub(b.Start).Hours(),
		Status:        status.String(),
	}
}

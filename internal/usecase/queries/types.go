package queries

import (
	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ShiftView struct {
	ID            uuid.UUID `json:"id"`
	Area          string    `json:"area"`
	Booked        bool      `json:"booked"`
	StartTime     int64     `json:"start_time"`
	EndTime       int64     `json:"end_time"`
	DurationHours float64   `json:"duration_hours"`
	Status        string    `json:"status"`
}

type DayScheduleView struct {
	Date   string       `json:"date"`
	Shifts []*ShiftView `json:"shifts"`
}

type AreaScheduleView struct {
	Area string            `json:"area"`
	Days []DayScheduleView `json:"days"`
}

type BookedDayView struct {
	Key        string       `json:"key"`
	Shifts     []*ShiftView `json:"shifts"`
	TotalHours float64      `json:"total_hours"`
}

type BookedScheduleView struct {
	Days []BookedDayView `json:"days"`
	// HasExpired is set when a booked shift has already ended.
	HasExpired bool `json:"has_expired"`
}

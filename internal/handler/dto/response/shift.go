package response

import (
	"shift-booking/internal/domain/shift"
	"shift-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ShiftResponse struct {
	ID            uuid.UUID `json:"id"`
	Area          string    `json:"area"`
	Booked        bool      `json:"booked"`
	StartTime     int64     `json:"startTime"`
	EndTime       int64     `json:"endTime"`
	DurationHours float64   `json:"durationHours"`
	Status        string    `json:"status"`
}

type DayScheduleResponse struct {
	Date   string           `json:"date"`
	Shifts []*ShiftResponse `json:"shifts"`
}

type AreaScheduleResponse struct {
	Area string                `json:"area"`
	Days []DayScheduleResponse `json:"days"`
}

type BookedDayResponse struct {
	Key        string           `json:"key"`
	Shifts     []*ShiftResponse `json:"shifts"`
	TotalHours float64          `json:"totalHours"`
}

type BookedScheduleResponse struct {
	Days       []BookedDayResponse `json:"days"`
	HasExpired bool                `json:"hasExpired"`
}

type ShiftMutationResponse struct {
	Message string         `json:"message"`
	Shift   *ShiftResponse `json:"shift"`
}

func FromShiftView(v *queries.ShiftView) *ShiftResponse {
	var resp ShiftResponse
	// same field names and types; copier cannot fail here
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromShiftViews(views []*queries.ShiftView) []*ShiftResponse {
	result := make([]*ShiftResponse, len(views))
	for i, v := range views {
		result[i] = FromShiftView(v)
	}
	return result
}

// FromMutatedShift renders a freshly written shift. Its status follows from the write:
// a booking leaves it booked, a cancellation leaves it open.
func FromMutatedShift(s *shift.Shift, message string) *ShiftMutationResponse {
	status := shift.StatusAvailable
	if s.IsBooked() {
		status = shift.StatusBooked
	}
	return &ShiftMutationResponse{
		Message: message,
		Shift: &ShiftResponse{
			ID:            s.ID(),
			Area:          s.Area().String(),
			Booked:        s.IsBooked(),
			StartTime:     s.TimeSlot().StartMillis(),
			EndTime:       s.TimeSlot().EndMillis(),
			DurationHours: s.DurationHours(),
			Status:        status.String(),
		},
	}
}

func FromAreaSchedules(views []queries.AreaScheduleView) []AreaScheduleResponse {
	result := make([]AreaScheduleResponse, len(views))
	for i, a := range views {
		days := make([]DayScheduleResponse, len(a.Days))
		for j, d := range a.Days {
			days[j] = DayScheduleResponse{Date: d.Date, Shifts: FromShiftViews(d.Shifts)}
		}
		result[i] = AreaScheduleResponse{Area: a.Area, Days: days}
	}
	return result
}

func FromBookedSchedule(v *queries.BookedScheduleView) *BookedScheduleResponse {
	days := make([]BookedDayResponse, len(v.Days))
	for i, d := range v.Days {
		days[i] = BookedDayResponse{
			Key:        d.Key,
			Shifts:     FromShiftViews(d.Shifts),
			TotalHours: d.TotalHours,
		}
	}
	return &BookedScheduleResponse{Days: days, HasExpired: v.HasExpired}
}

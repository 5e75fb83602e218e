package request

import (
	"shift-booking/internal/domain/shift"

	"github.com/google/uuid"
)

type ShiftURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

func (r ShiftURI) ShiftID() uuid.UUID {
	// binding has already validated the format
	return uuid.MustParse(r.ID)
}

type ListShiftsQuery struct {
	Area   *string `form:"area" binding:"omitempty,oneof=Helsinki Tampere Turku"`
	Booked *bool   `form:"booked"`
}

func (q ListShiftsQuery) ToFilter() shift.Filter {
	var filter shift.Filter
	if q.Area != nil {
		area := shift.Area(*q.Area)
		filter.Area = &area
	}
	filter.Booked = q.Booked
	return filter
}

type OverviewQuery struct {
	Area *string `form:"area" binding:"omitempty,oneof=Helsinki Tampere Turku"`
}

func (q OverviewQuery) AreaFilter() *shift.Area {
	if q.Area == nil {
		return nil
	}
	area := shift.Area(*q.Area)
	return &area
}

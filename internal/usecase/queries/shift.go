package queries

import (
	"context"
	"time"

	"shift-booking/internal/domain/shift"
	"shift-booking/internal/infra"
	"shift-booking/internal/pkg/clock"
	"shift-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=shift.go -destination=../../../tests/mock/queries/shift.go -package=queriesmock

var (
	ErrShiftNotFound           = errs.New("shift not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ShiftReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shift.Shift, error)
	List(ctx context.Context, filter shift.Filter) ([]*shift.Shift, error)
}

type ShiftQueries interface {
	List(ctx context.Context, filter shift.Filter) ([]*ShiftView, error)
	Get(ctx context.Context, id uuid.UUID) (*ShiftView, error)
	Overview(ctx context.Context, area *shift.Area) ([]AreaScheduleView, error)
	Booked(ctx context.Context) (*BookedScheduleView, error)
}

type shiftQueriesImpl struct {
	store ShiftReadStore
	clock clock.Clock
	loc   *time.Location
}

func NewShiftQueries(store ShiftReadStore, clock clock.Clock, loc *time.Location) ShiftQueries {
	return &shiftQueriesImpl{
		store: store,
		clock: clock,
		loc:   loc,
	}
}

func (q *shiftQueriesImpl) List(ctx context.Context, filter shift.Filter) ([]*ShiftView, error) {
	shifts, err := q.find(ctx, filter)
	if err != nil {
		return nil, err
	}
	bookedCtx, err := q.bookedContext(ctx, filter.Area)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	views := make([]*ShiftView, len(shifts))
	for i, s := range shifts {
		views[i] = toShiftView(s, now, bookedCtx)
	}
	return views, nil
}

func (q *shiftQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ShiftView, error) {
	s, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	area := s.Area()
	bookedCtx, err := q.bookedContext(ctx, &area)
	if err != nil {
		return nil, err
	}
	return toShiftView(s, q.clock.Now(), bookedCtx), nil
}

func (q *shiftQueriesImpl) Overview(ctx context.Context, area *shift.Area) ([]AreaScheduleView, error) {
	shifts, err := q.find(ctx, shift.Filter{Area: area})
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	grouped := GroupByAreaThenDay(shifts, q.loc)
	result := make([]AreaScheduleView, len(grouped))
	for i, a := range grouped {
		days := make([]DayScheduleView, len(a.Days))
		for j, d := range a.Days {
			days[j] = DayScheduleView{
				Date:   d.Date,
				Shifts: toShiftViews(d.Shifts, now, shifts),
			}
		}
		result[i] = AreaScheduleView{Area: a.Area.String(), Days: days}
	}
	return result, nil
}

func (q *shiftQueriesImpl) Booked(ctx context.Context) (*BookedScheduleView, error) {
	booked := true
	shifts, err := q.find(ctx, shift.Filter{Booked: &booked})
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	view := &BookedScheduleView{Days: []BookedDayView{}}
	for _, d := range GroupBookedByDateWithHours(shifts, now, q.loc) {
		view.Days = append(view.Days, BookedDayView{
			Key:        d.Key,
			Shifts:     toShiftViews(d.Shifts, now, shifts),
			TotalHours: d.TotalHours,
		})
	}
	for _, s := range shifts {
		if s.HasEnded(now) {
			view.HasExpired = true
			break
		}
	}
	return view, nil
}

func (q *shiftQueriesImpl) find(ctx context.Context, filter shift.Filter) ([]*shift.Shift, error) {
	shifts, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return shifts, nil
}

// bookedContext loads the booked shifts the overlap status is judged against.
func (q *shiftQueriesImpl) bookedContext(ctx context.Context, area *shift.Area) ([]*shift.Shift, error) {
	booked := true
	return q.find(ctx, shift.Filter{Area: area, Booked: &booked})
}

func toShiftViews(shifts []*shift.Shift, now time.Time, areaShifts []*shift.Shift) []*ShiftView {
	views := make([]*ShiftView, len(shifts))
	for i, s := range shifts {
		views[i] = toShiftView(s, now, areaShifts)
	}
	return views
}

func toShiftView(s *shift.Shift, now time.Time, areaShifts []*shift.Shift) *ShiftView {
	return &ShiftView{
		ID:            s.ID(),
		Area:          s.Area().String(),
		Booked:        s.IsBooked(),
		StartTime:     s.TimeSlot().StartMillis(),
		EndTime:       s.TimeSlot().EndMillis(),
		DurationHours: s.DurationHours(),
		Status:        shift.ClassifyStatus(s, now, areaShifts).String(),
	}
}

package repository

import (
	"context"
	"log/slog"

	"shift-booking/internal/domain/shift"
	"shift-booking/internal/infra"
	"shift-booking/internal/infra/pgquery"
	"shift-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=shift.go -destination=../../../tests/mock/repository/shift.go -package=repositorymock

type ShiftQueries interface {
	GetShiftByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Shift, error)
	ListShifts(ctx context.Context, db pgquery.DBTX, arg pgquery.ListShiftsParams) ([]pgquery.Shift, error)
	SetShiftBookedIf(ctx context.Context, db pgquery.DBTX, arg pgquery.SetShiftBookedIfParams) (pgquery.Shift, error)
	InsertShift(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertShiftParams) (int64, error)
}

// ShiftRepository is the Postgres shift store. It serves both the booking commands and
// the read side.
type ShiftRepository struct {
	queries ShiftQueries
	db      pgquery.DBTX
	logger  *slog.Logger
}

func NewShiftRepository(queries ShiftQueries, db pgquery.DBTX, logger *slog.Logger) *ShiftRepository {
	return &ShiftRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *ShiftRepository) FindByID(ctx context.Context, id uuid.UUID) (*shift.Shift, error) {
	row, err := r.queries.GetShiftByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "shift not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find shift by ID", err)
	}
	return r.toDomain(row)
}

func (r *ShiftRepository) FindByAreaAndBooked(ctx context.Context, area shift.Area, booked bool) ([]*shift.Shift, error) {
	return r.List(ctx, shift.Filter{Area: &area, Booked: &booked})
}

func (r *ShiftRepository) List(ctx context.Context, filter shift.Filter) ([]*shift.Shift, error) {
	var area *string
	if filter.Area != nil {
		a := filter.Area.String()
		area = &a
	}
	params := pgquery.ListShiftsParams{
		Area:   pgconv.StringPtrToPgtype(area),
		Booked: pgconv.BoolPtrToPgtype(filter.Booked),
	}

	rows, err := r.queries.ListShifts(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list shifts", err)
	}

	result := make([]*shift.Shift, 0, len(rows))
	for _, row := range rows {
		s, err := r.toDomain(row)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

func (r *ShiftRepository) ConditionalSetBooked(ctx context.Context, id uuid.UUID, expected, next bool) (*shift.Shift, error) {
	row, err := r.queries.SetShiftBookedIf(ctx, r.db, pgquery.SetShiftBookedIfParams{
		ID:       id,
		Expected: expected,
		Booked:   next,
	})
	if err != nil {
		// Zero rows: the flag moved (or the row vanished) since it was read.
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindPreconditionFailed, "booked flag changed concurrently", err)
		}
		kind := infra.KindFromPgError(err)
		return nil, infra.WrapRepoErr(r.logger, kind, "failed to set booked flag", err)
	}
	return r.toDomain(row)
}

// Insert stores a new unbooked shift. It reports false when the id already exists.
func (r *ShiftRepository) Insert(ctx context.Context, s *shift.Shift) (bool, error) {
	affected, err := r.queries.InsertShift(ctx, r.db, pgquery.InsertShiftParams{
		ID:        s.ID(),
		Area:      s.Area().String(),
		StartTime: s.TimeSlot().StartMillis(),
		EndTime:   s.TimeSlot().EndMillis(),
	})
	if err != nil {
		kind := infra.KindFromPgError(err)
		return false, infra.WrapRepoErr(r.logger, kind, "failed to insert shift", err)
	}
	return affected > 0, nil
}

func (r *ShiftRepository) toDomain(row pgquery.Shift) (*shift.Shift, error) {
	area, err := shift.NewArea(row.Area)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindInvalidRecord, "stored shift has unknown area", err)
	}
	slot, err := shift.NewTimeSlotFromMillis(row.StartTime, row.EndTime)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindInvalidRecord, "stored shift has invalid time slot", err)
	}
	return shift.ReconstructShift(row.ID, area, slot, row.Booked), nil
}

package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Shift struct {
	ID        uuid.UUID
	Area      string
	Booked    bool
	StartTime int64
	EndTime   int64
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

const shiftColumns = `id, area, booked, start_time, end_time, created_at, updated_at`

func scanShift(row pgx.Row) (Shift, error) {
	var s Shift
	err := row.Scan(&s.ID, &s.Area, &s.Booked, &s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

const getShiftByID = `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

func (q *Queries) GetShiftByID(ctx context.Context, db DBTX, id uuid.UUID) (Shift, error) {
	return scanShift(db.QueryRow(ctx, getShiftByID, id))
}

type ListShiftsParams struct {
	Area   pgtype.Text
	Booked pgtype.Bool
}

const listShifts = `SELECT ` + shiftColumns + ` FROM shifts
WHERE ($1::text IS NULL OR area = $1::text)
  AND ($2::boolean IS NULL OR booked = $2::boolean)
ORDER BY start_time, id`

func (q *Queries) ListShifts(ctx context.Context, db DBTX, arg ListShiftsParams) ([]Shift, error) {
	rows, err := db.Query(ctx, listShifts, arg.Area, arg.Booked)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

type SetShiftBookedIfParams struct {
	ID       uuid.UUID
	Expected bool
	Booked   bool
}

// setShiftBookedIf is the compare-and-swap on the booked flag. The shifts exclusion
// constraint rejects a true write that would overlap another booked shift in the area.
const setShiftBookedIf = `UPDATE shifts
SET booked = $3, updated_at = now()
WHERE id = $1 AND booked = $2
RETURNING ` + shiftColumns

func (q *Queries) SetShiftBookedIf(ctx context.Context, db DBTX, arg SetShiftBookedIfParams) (Shift, error) {
	return scanShift(db.QueryRow(ctx, setShiftBookedIf, arg.ID, arg.Expected, arg.Booked))
}

type InsertShiftParams struct {
	ID        uuid.UUID
	Area      string
	StartTime int64
	EndTime   int64
}

const insertShift = `INSERT INTO shifts (id, area, booked, start_time, end_time)
VALUES ($1, $2, false, $3, $4)
ON CONFLICT (id) DO NOTHING`

func (q *Queries) InsertShift(ctx context.Context, db DBTX, arg InsertShiftParams) (int64, error) {
	tag, err := db.Exec(ctx, insertShift, arg.ID, arg.Area, arg.StartTime, arg.EndTime)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

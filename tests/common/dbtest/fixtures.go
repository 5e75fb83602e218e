//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"shift-booking/internal/domain/shift"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestShift inserts a shift row directly, bypassing the booking rules.
func CreateTestShift(t *testing.T, db DBLike, area shift.Area, start, end time.Time, booked bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO shifts (id, area, booked, start_time, end_time) VALUES ($1, $2, $3, $4, $5)",
		id, area.String(), booked, start.UnixMilli(), end.UnixMilli())
	require.NoError(t, err)

	return id
}

// IsBooked reads the stored booked flag.
func IsBooked(t *testing.T, db DBLike, id uuid.UUID) bool {
	t.Helper()

	var booked bool
	err := db.QueryRow(context.Background(), "SELECT booked FROM shifts WHERE id = $1", id).Scan(&booked)
	require.NoError(t, err)
	return booked
}

// truncates all shift data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE shifts")
	return err
}

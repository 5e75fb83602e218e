//go:build unit

package repository_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"shift-booking/internal/domain/shift"
	"shift-booking/internal/infra"
	"shift-booking/internal/infra/pgquery"
	"shift-booking/internal/infra/repository"
	"shift-booking/tests/common/builder"
	repositorymock "shift-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newRepo(t *testing.T) (*repository.ShiftRepository, *repositorymock.MockShiftQueries, pgquery.DBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockShiftQueries(ctrl)
	db := &mockDBTX{}
	return repository.NewShiftRepository(mockQueries, db, discard), mockQueries, db
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestShiftRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	row := builder.NewShiftBuilder().AsBooked().BuildInfra()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockShiftQueries, pgquery.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: row mapped to domain",
			setupMock: func(m *repositorymock.MockShiftQueries, db pgquery.DBTX) {
				m.EXPECT().GetShiftByID(ctx, db, row.ID).Return(row, nil)
			},
		},
		{
			name: "error: no rows is not found",
			setupMock: func(m *repositorymock.MockShiftQueries, db pgquery.DBTX) {
				m.EXPECT().GetShiftByID(ctx, db, row.ID).Return(pgquery.Shift{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: connection failure",
			setupMock: func(m *repositorymock.MockShiftQueries, db pgquery.DBTX) {
				m.EXPECT().GetShiftByID(ctx, db, row.ID).Return(pgquery.Shift{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: stored area outside the closed set",
			setupMock: func(m *repositorymock.MockShiftQueries, db pgquery.DBTX) {
				bad := row
				bad.Area = "Oulu"
				m.EXPECT().GetShiftByID(ctx, db, row.ID).Return(bad, nil)
			},
			expectKind: infra.KindInvalidRecord,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, db := newRepo(t)
			tc.setupMock(mockQueries, db)

			got, err := repo.FindByID(ctx, row.ID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, got.ID())
			assert.True(t, got.IsBooked())
			assert.Equal(t, row.StartTime, got.TimeSlot().StartMillis())
			assert.Equal(t, row.EndTime, got.TimeSlot().EndMillis())
		})
	}
}

// =============================================================================
// List Tests
// =============================================================================

func TestShiftRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success: filter becomes nullable params", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		area := shift.AreaTampere
		booked := true
		rows := []pgquery.Shift{
			builder.NewShiftBuilder().InArea(shift.AreaTampere).AsBooked().BuildInfra(),
		}
		mockQueries.EXPECT().ListShifts(ctx, db, pgquery.ListShiftsParams{
			Area:   pgtype.Text{String: "Tampere", Valid: true},
			Booked: pgtype.Bool{Bool: true, Valid: true},
		}).Return(rows, nil)

		got, err := repo.List(ctx, shift.Filter{Area: &area, Booked: &booked})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, shift.AreaTampere, got[0].Area())
	})

	t.Run("success: empty filter leaves params null", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		mockQueries.EXPECT().ListShifts(ctx, db, pgquery.ListShiftsParams{}).Return(nil, nil)

		got, err := repo.List(ctx, shift.Filter{})

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("success: FindByAreaAndBooked passes both params", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		mockQueries.EXPECT().ListShifts(ctx, db, pgquery.ListShiftsParams{
			Area:   pgtype.Text{String: "Turku", Valid: true},
			Booked: pgtype.Bool{Bool: false, Valid: true},
		}).Return(nil, nil)

		_, err := repo.FindByAreaAndBooked(ctx, shift.AreaTurku, false)
		require.NoError(t, err)
	})

	t.Run("error: query failure", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		mockQueries.EXPECT().ListShifts(ctx, db, gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := repo.List(ctx, shift.Filter{})

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// ConditionalSetBooked Tests
// =============================================================================

func TestShiftRepository_ConditionalSetBooked(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	row := builder.NewShiftBuilder().With(func(b *builder.ShiftBuilder) { b.ID = id }).AsBooked().BuildInfra()
	params := pgquery.SetShiftBookedIfParams{ID: id, Expected: false, Booked: true}

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: flag written"},
		{name: "error: zero rows is a lost race", returnErr: pgx.ErrNoRows, expectKind: infra.KindPreconditionFailed},
		{name: "error: exclusion violation is a lost race", returnErr: &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"}, expectKind: infra.KindPreconditionFailed},
		{name: "error: serialization failure is a lost race", returnErr: &pgconn.PgError{Code: "40001"}, expectKind: infra.KindPreconditionFailed},
		{name: "error: other database error", returnErr: &pgconn.PgError{Code: "53300"}, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, db := newRepo(t)
			if tc.returnErr != nil {
				mockQueries.EXPECT().SetShiftBookedIf(ctx, db, params).Return(pgquery.Shift{}, tc.returnErr)
			} else {
				mockQueries.EXPECT().SetShiftBookedIf(ctx, db, params).Return(row, nil)
			}

			got, err := repo.ConditionalSetBooked(ctx, id, false, true)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.IsBooked())
		})
	}
}

// =============================================================================
// Insert Tests
// =============================================================================

func TestShiftRepository_Insert(t *testing.T) {
	ctx := context.Background()
	s := builder.NewShiftBuilder().BuildDomain()
	params := pgquery.InsertShiftParams{
		ID:        s.ID(),
		Area:      "Helsinki",
		StartTime: s.TimeSlot().StartMillis(),
		EndTime:   s.TimeSlot().EndMillis(),
	}

	t.Run("success: inserted", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		mockQueries.EXPECT().InsertShift(ctx, db, params).Return(int64(1), nil)

		ok, err := repo.Insert(ctx, s)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("success: existing id skipped", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		mockQueries.EXPECT().InsertShift(ctx, db, params).Return(int64(0), nil)

		ok, err := repo.Insert(ctx, s)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("error: check violation", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		mockQueries.EXPECT().InsertShift(ctx, db, params).Return(int64(0), &pgconn.PgError{Code: "23514"})

		_, err := repo.Insert(ctx, s)
		assert.True(t, infra.IsKind(err, infra.KindInvalidRecord))
	})
}

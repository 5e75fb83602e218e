//go:build unit

package shift_test

import (
	"testing"
	"time"

	"shift-booking/internal/domain/shift"
	"shift-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const h = time.Hour

func TestCanBook(t *testing.T) {
	now := builder.BaseTime

	testCases := []struct {
		name      string
		candidate *shift.Shift
		booked    []*shift.Shift
		wantErr   error
	}{
		{
			name:      "success: free future shift",
			candidate: builder.NewShiftBuilder().Between(2*h, 6*h).BuildDomain(),
		},
		{
			name:      "error: already booked",
			candidate: builder.NewShiftBuilder().Between(2*h, 6*h).AsBooked().BuildDomain(),
			wantErr:   shift.ErrAlreadyBooked,
		},
		{
			name:      "error: started at exactly now",
			candidate: builder.NewShiftBuilder().Between(0, 4*h).BuildDomain(),
			wantErr:   shift.ErrShiftStarted,
		},
		{
			name:      "error: started wins over already booked",
			candidate: builder.NewShiftBuilder().Between(-h, 4*h).AsBooked().BuildDomain(),
			wantErr:   shift.ErrShiftStarted,
		},
		{
			name:      "error: overlaps a booked shift in the same area",
			candidate: builder.NewShiftBuilder().Between(2*h, 6*h).BuildDomain(),
			booked:    []*shift.Shift{builder.NewShiftBuilder().Between(5*h, 9*h).AsBooked().BuildDomain()},
			wantErr:   shift.ErrOverlap,
		},
		{
			name:      "success: overlapping booked shift in another area is ignored",
			candidate: builder.NewShiftBuilder().Between(2*h, 6*h).BuildDomain(),
			booked:    []*shift.Shift{builder.NewShiftBuilder().InArea(shift.AreaTurku).Between(2*h, 6*h).AsBooked().BuildDomain()},
		},
		{
			name:      "success: unbooked overlapping shift is ignored",
			candidate: builder.NewShiftBuilder().Between(2*h, 6*h).BuildDomain(),
			booked:    []*shift.Shift{builder.NewShiftBuilder().Between(2*h, 6*h).BuildDomain()},
		},
		{
			name:      "success: nil entries are skipped",
			candidate: builder.NewShiftBuilder().Between(2*h, 6*h).BuildDomain(),
			booked:    []*shift.Shift{nil},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := shift.CanBook(tc.candidate, now, tc.booked)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCanBook_OverlapNamesTheOtherShift(t *testing.T) {
	other := builder.NewShiftBuilder().Between(5*h, 9*h).AsBooked().BuildDomain()
	candidate := builder.NewShiftBuilder().Between(2*h, 6*h).BuildDomain()

	err := shift.CanBook(candidate, builder.BaseTime, []*shift.Shift{other})

	require.ErrorIs(t, err, shift.ErrOverlap)
	assert.Contains(t, err.Error(), other.ID().String())
}

func TestCanBook_IgnoresItself(t *testing.T) {
	id := uuid.New()
	candidate := builder.NewShiftBuilder().With(func(b *builder.ShiftBuilder) { b.ID = id }).Between(2*h, 6*h).BuildDomain()
	sameRowBooked := builder.NewShiftBuilder().With(func(b *builder.ShiftBuilder) { b.ID = id }).Between(2*h, 6*h).AsBooked().BuildDomain()

	assert.NoError(t, shift.CanBook(candidate, builder.BaseTime, []*shift.Shift{sameRowBooked}))
}

func TestCanBook_BoundaryGrid(t *testing.T) {
	// booked shift occupies [10h, 14h)
	booked := builder.NewShiftBuilder().Between(10*h, 14*h).AsBooked().BuildDomain()

	testCases := []struct {
		name     string
		from, to time.Duration
		overlaps bool
	}{
		{"ends exactly at booked start", 6 * h, 10 * h, false},
		{"starts exactly at booked end", 14 * h, 18 * h, false},
		{"ends one millisecond into booked", 6 * h, 10*h + time.Millisecond, true},
		{"starts one millisecond before booked end", 14*h - time.Millisecond, 18 * h, true},
		{"contained", 11 * h, 12 * h, true},
		{"contains", 9 * h, 15 * h, true},
		{"identical", 10 * h, 14 * h, true},
		{"fully before", 2 * h, 4 * h, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			candidate := builder.NewShiftBuilder().Between(tc.from, tc.to).BuildDomain()

			err := shift.CanBook(candidate, builder.BaseTime, []*shift.Shift{booked})
			if tc.overlaps {
				assert.ErrorIs(t, err, shift.ErrOverlap)
			} else {
				assert.NoError(t, err)
			}
			// overlap is symmetric
			assert.Equal(t, tc.overlaps, booked.TimeSlot().Overlaps(candidate.TimeSlot()))
		})
	}
}

func TestCanCancel(t *testing.T) {
	now := builder.BaseTime

	testCases := []struct {
		name      string
		candidate *shift.Shift
		wantErr   error
	}{
		{"success: booked future shift", builder.NewShiftBuilder().Between(h, 3*h).AsBooked().BuildDomain(), nil},
		{"error: not booked", builder.NewShiftBuilder().Between(h, 3*h).BuildDomain(), shift.ErrNotBooked},
		{"error: booked and started", builder.NewShiftBuilder().Between(-h, 3*h).AsBooked().BuildDomain(), shift.ErrShiftStarted},
		{"error: unbooked and started reports started", builder.NewShiftBuilder().Between(-h, 3*h).BuildDomain(), shift.ErrShiftStarted},
		{"error: already ended", builder.NewShiftBuilder().Between(-5*h, -h).AsBooked().BuildDomain(), shift.ErrShiftStarted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := shift.CanCancel(tc.candidate, now)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

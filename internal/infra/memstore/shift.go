// Package memstore is an in-process shift store with the same conditional-write and
// per-area exclusion semantics as the Postgres schema.
package memstore

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"

	"shift-booking/internal/domain/shift"
	"shift-booking/internal/infra"

	"github.com/google/uuid"
)

type ShiftStore struct {
	mu     sync.RWMutex
	shifts map[uuid.UUID]*shift.Shift
	logger *slog.Logger
}

func NewShiftStore(logger *slog.Logger) *ShiftStore {
	return &ShiftStore{
		shifts: make(map[uuid.UUID]*shift.Shift),
		logger: logger,
	}
}

func (s *ShiftStore) FindByID(_ context.Context, id uuid.UUID) (*shift.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found, ok := s.shifts[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "shift not found", nil)
	}
	return found, nil
}

func (s *ShiftStore) FindByAreaAndBooked(ctx context.Context, area shift.Area, booked bool) ([]*shift.Shift, error) {
	return s.List(ctx, shift.Filter{Area: &area, Booked: &booked})
}

// List returns matching shifts ordered by start time, then id.
func (s *ShiftStore) List(_ context.Context, filter shift.Filter) ([]*shift.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*shift.Shift, 0, len(s.shifts))
	for _, sh := range s.shifts {
		if filter.Matches(sh) {
			result = append(result, sh)
		}
	}
	slices.SortFunc(result, func(a, b *shift.Shift) int {
		if c := a.StartTime().Compare(b.StartTime()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})
	return result, nil
}

func (s *ShiftStore) ConditionalSetBooked(_ context.Context, id uuid.UUID, expected, next bool) (*shift.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.shifts[id]
	if !ok || current.IsBooked() != expected {
		return nil, infra.WrapRepoErr(s.logger, infra.KindPreconditionFailed, "booked flag changed concurrently", nil)
	}

	updated := shift.ReconstructShift(current.ID(), current.Area(), current.TimeSlot(), next)
	if next {
		others := make([]*shift.Shift, 0, len(s.shifts))
		for _, other := range s.shifts {
			others = append(others, other)
		}
		if shift.FindOverlap(updated, others) != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindPreconditionFailed, "booking would overlap a booked shift", nil)
		}
	}

	s.shifts[id] = updated
	return updated, nil
}

// Insert stores a new unbooked shift. It reports false when the id already exists.
func (s *ShiftStore) Insert(_ context.Context, sh *shift.Shift) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.shifts[sh.ID()]; exists {
		return false, nil
	}
	s.shifts[sh.ID()] = shift.ReconstructShift(sh.ID(), sh.Area(), sh.TimeSlot(), false)
	return true, nil
}

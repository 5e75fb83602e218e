package commands

import (
	"context"

	"shift-booking/internal/domain/shift"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// ShiftStore is the write-side contract with the shift store.
// ConditionalSetBooked must fail with an infra.KindPreconditionFailed error when the stored
// booked flag differs from expected, or when setting it would leave two overlapping booked
// shifts in one area.
type ShiftStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shift.Shift, error)
	FindByAreaAndBooked(ctx context.Context, area shift.Area, booked bool) ([]*shift.Shift, error)
	ConditionalSetBooked(ctx context.Context, id uuid.UUID, expected, next bool) (*shift.Shift, error)
}

type ShiftCommands interface {
	Book(ctx context.Context, id uuid.UUID) (*shift.Shift, error)
	Cancel(ctx context.Context, id uuid.UUID) (*shift.Shift, error)
}

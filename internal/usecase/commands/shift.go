package commands

import (
	"context"
	"log/slog"

	"shift-booking/internal/domain/shift"
	"shift-booking/internal/infra"
	"shift-booking/internal/pkg/clock"
	"shift-booking/internal/pkg/errs"
	"shift-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrShiftNotFound           = errs.New("shift not found")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// maxWriteAttempts allows exactly one retry after a lost conditional write.
const maxWriteAttempts = 2

type shiftCommandsImpl struct {
	store  ShiftStore
	clock  clock.Clock
	logger *slog.Logger
}

func NewShiftCommands(store ShiftStore, clock clock.Clock, logger *slog.Logger) ShiftCommands {
	return &shiftCommandsImpl{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

func (c *shiftCommandsImpl) Book(ctx context.Context, id uuid.UUID) (*shift.Shift, error) {
	updated, err := shared.RunWithRetry(ctx, c.logger, maxWriteAttempts, isLostRace,
		func(ctx context.Context) (*shift.Shift, error) {
			return c.tryBook(ctx, id)
		})
	if err != nil {
		return nil, c.translateError(err, "book", id)
	}

	c.logger.Info("shift booked", "shift_id", id, "area", updated.Area())
	return updated, nil
}

func (c *shiftCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) (*shift.Shift, error) {
	updated, err := shared.RunWithRetry(ctx, c.logger, maxWriteAttempts, isLostRace,
		func(ctx context.Context) (*shift.Shift, error) {
			return c.tryCancel(ctx, id)
		})
	if err != nil {
		return nil, c.translateError(err, "cancel", id)
	}

	c.logger.Info("shift cancelled", "shift_id", id, "area", updated.Area())
	return updated, nil
}

func (c *shiftCommandsImpl) tryBook(ctx context.Context, id uuid.UUID) (*shift.Shift, error) {
	current, err := c.load(ctx, id)
	if err != nil {
		return nil, err
	}

	booked, err := c.store.FindByAreaAndBooked(ctx, current.Area(), true)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := shift.CanBook(current, c.clock.Now(), booked); err != nil {
		return nil, err
	}

	return c.write(ctx, id, false, true)
}

func (c *shiftCommandsImpl) tryCancel(ctx context.Context, id uuid.UUID) (*shift.Shift, error) {
	current, err := c.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := shift.CanCancel(current, c.clock.Now()); err != nil {
		return nil, err
	}

	return c.write(ctx, id, true, false)
}

func (c *shiftCommandsImpl) load(ctx context.Context, id uuid.UUID) (*shift.Shift, error) {
	current, err := c.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return current, nil
}

// write is the only place the booked flag changes.
func (c *shiftCommandsImpl) write(ctx context.Context, id uuid.UUID, expected, next bool) (*shift.Shift, error) {
	updated, err := c.store.ConditionalSetBooked(ctx, id, expected, next)
	if err != nil {
		if isLostRace(err) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return updated, nil
}

func (c *shiftCommandsImpl) translateError(err error, op string, id uuid.UUID) error {
	if errs.Is(err, shared.ErrMaxRetriesExceeded) {
		c.logger.Error("shift write lost the race twice", "op", op, "shift_id", id)
		return errs.Wrapf(ErrBookingConflict, "%s shift %s", op, id)
	}
	return err
}

func isLostRace(err error) bool {
	return infra.IsKind(err, infra.KindPreconditionFailed)
}

// Package seed imports shifts from a JSON file. Imported shifts always start unbooked.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"shift-booking/internal/domain/shift"
	"shift-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type Importer interface {
	Insert(ctx context.Context, s *shift.Shift) (bool, error)
}

// Record is one entry of the seed file. startTime and endTime are epoch milliseconds.
type Record struct {
	ID        string `json:"id,omitempty"`
	Area      string `json:"area"`
	StartTime int64  `json:"startTime"`
	EndTime   int64  `json:"endTime"`
}

func LoadFile(path string) ([]*shift.Shift, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "read seed file %s", path)
	}
	return Parse(data)
}

func Parse(data []byte) ([]*shift.Shift, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errs.Wrap(err, "decode seed records")
	}

	shifts := make([]*shift.Shift, 0, len(records))
	for i, rec := range records {
		s, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("seed record %d: %w", i, err)
		}
		shifts = append(shifts, s)
	}
	return shifts, nil
}

func (r Record) toDomain() (*shift.Shift, error) {
	id := uuid.Nil
	if r.ID != "" {
		parsed, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, shift.ErrInvalidID
		}
		id = parsed
	}
	area, err := shift.NewArea(r.Area)
	if err != nil {
		return nil, err
	}
	slot, err := shift.NewTimeSlotFromMillis(r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}
	return shift.NewShift(id, area, slot)
}

// Import inserts shifts, skipping ids that already exist, and returns how many were added.
func Import(ctx context.Context, importer Importer, shifts []*shift.Shift, logger *slog.Logger) (int, error) {
	inserted := 0
	for _, s := range shifts {
		ok, err := importer.Insert(ctx, s)
		if err != nil {
			return inserted, errs.Wrapf(err, "import shift %s", s.ID())
		}
		if ok {
			inserted++
		}
	}
	logger.Info("shifts imported", "inserted", inserted, "skipped", len(shifts)-inserted)
	return inserted, nil
}

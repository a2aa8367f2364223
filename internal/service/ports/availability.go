package ports

import (
	"context"
	"time"
)

type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, roomID int64, start, end time.Time, excludeID *int64) (bool, error)
}

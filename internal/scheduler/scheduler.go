package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type staleCanceller interface {
	ExpireStale(ctx context.Context, asOf time.Time) ([]*domain.Reservation, error)
}

// Scheduler периодически отменяет брони, которые так и не подтвердили
// до даты заезда.
type Scheduler struct {
	reservationService staleCanceller
	interval           time.Duration
	clock              func() time.Time
	logger             logger.Logger
}

func New(
	reservationService staleCanceller,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		clock:              time.Now,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.reservationService.ExpireStale(ctx, s.clock().UTC())
	if err != nil {
		s.logger.Error("failed to expire stale reservations",
			logger.String("error", err.Error()),
		)
	}

	for _, r := range cancelled {
		s.logger.Info("reservation expired",
			logger.Int64("reservation_id", r.ID),
			logger.Int64("user_id", r.UserID),
			logger.Int64("room_id", r.RoomID),
			logger.String("start_date", r.StartDate.Format(domain.DateLayout)),
		)
	}
}

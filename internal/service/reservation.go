package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/stpnv0/RoomBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// lockAttempts ограничивает повторы, если бронь переехала в другую комнату,
// пока мы ждали блокировку.
const lockAttempts = 3

type ReservationService struct {
	repo         ports.ReservationRepo
	availability ports.AvailabilityChecker
	locker       ports.RoomLocker
	metrics      ports.LifecycleMetrics
	logger       logger.Logger
}

func NewReservationService(
	repo ports.ReservationRepo,
	availability ports.AvailabilityChecker,
	locker ports.RoomLocker,
	metrics ports.LifecycleMetrics,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		repo:         repo,
		availability: availability,
		locker:       locker,
		metrics:      metrics,
		logger:       logger,
	}
}

func (s *ReservationService) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation %d: %w", id, err)
	}
	return r, nil
}

func (s *ReservationService) ListAll(ctx context.Context) ([]*domain.Reservation, error) {
	return s.repo.List(ctx)
}

func (s *ReservationService) Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.Reservation, error) {
	page, err := filter.Normalize()
	if err != nil {
		return nil, err
	}

	res, err := s.repo.Search(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("search reservations: %w", err)
	}
	return res, nil
}

func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	if input.Status != "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidArgument, domain.ErrStatusNotEmpty)
	}
	if err := domain.ValidateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, &domain.Reservation{
		UserID:    input.UserID,
		RoomID:    input.RoomID,
		StartDate: domain.Date(input.StartDate),
		EndDate:   domain.Date(input.EndDate),
		Status:    domain.ReservationStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.metrics.ObserveTransition("", domain.ReservationStatusPending)
	s.logger.Info("reservation created",
		logger.Int64("reservation_id", saved.ID),
		logger.Int64("room_id", saved.RoomID),
		logger.Int64("user_id", saved.UserID),
	)

	return saved, nil
}

// Update перезаписывает все поля PENDING-брони. Статус всегда остаётся PENDING,
// поэтому конфликты здесь не проверяются.
func (s *ReservationService) Update(
	ctx context.Context,
	id int64,
	input domain.UpdateReservationInput,
) (*domain.Reservation, error) {
	current, unlock, err := s.lockReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if current.Status != domain.ReservationStatusPending {
		return nil, fmt.Errorf("%w: cannot modify reservation in status %s", domain.ErrInvalidArgument, current.Status)
	}
	if err = domain.ValidateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, &domain.Reservation{
		ID:        current.ID,
		UserID:    input.UserID,
		RoomID:    input.RoomID,
		StartDate: domain.Date(input.StartDate),
		EndDate:   domain.Date(input.EndDate),
		Status:    domain.ReservationStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	s.logger.Info("reservation updated",
		logger.Int64("reservation_id", saved.ID),
		logger.Int64("room_id", saved.RoomID),
	)

	return saved, nil
}

func (s *ReservationService) Cancel(ctx context.Context, id int64) error {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	switch current.Status {
	case domain.ReservationStatusApproved:
		return fmt.Errorf("%w: cannot cancel approved reservation, contact a manager", domain.ErrInvalidState)
	case domain.ReservationStatusCancelled:
		return fmt.Errorf("%w: already cancelled", domain.ErrInvalidState)
	}

	if err = s.setStatus(ctx, current, domain.ReservationStatusCancelled); err != nil {
		return err
	}

	s.logger.Info("reservation cancelled", logger.Int64("reservation_id", id))
	return nil
}

// Approve проверяет доступность комнаты и подтверждает бронь. Проверка и запись
// статуса выполняются под блокировкой комнаты, так что два пересекающихся
// подтверждения не проходят одновременно.
func (s *ReservationService) Approve(ctx context.Context, id int64) (*domain.Reservation, error) {
	current, unlock, err := s.lockReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if current.Status != domain.ReservationStatusPending {
		return nil, fmt.Errorf("%w: cannot approve reservation in status %s", domain.ErrInvalidArgument, current.Status)
	}

	available, err := s.availability.IsAvailable(ctx, current.RoomID, current.StartDate, current.EndDate, &current.ID)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if !available {
		s.metrics.ObserveConflict()
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidArgument, domain.ErrConflict)
	}

	if err = s.setStatus(ctx, current, domain.ReservationStatusApproved); err != nil {
		return nil, err
	}

	s.logger.Info("reservation approved",
		logger.Int64("reservation_id", id),
		logger.Int64("room_id", current.RoomID),
	)

	approved := current.WithStatus(domain.ReservationStatusApproved)
	return &approved, nil
}

// ExpireStale отменяет PENDING-брони, начало которых уже прошло к asOf.
func (s *ReservationService) ExpireStale(ctx context.Context, asOf time.Time) ([]*domain.Reservation, error) {
	stale, err := s.repo.ListStalePending(ctx, domain.Date(asOf))
	if err != nil {
		return nil, fmt.Errorf("list stale reservations: %w", err)
	}

	var cancelled []*domain.Reservation
	for _, r := range stale {
		if err = s.setStatus(ctx, r, domain.ReservationStatusCancelled); err != nil {
			if domain.KindOf(err) == domain.KindInvalidState {
				continue
			}
			return cancelled, err
		}
		c := r.WithStatus(domain.ReservationStatusCancelled)
		cancelled = append(cancelled, &c)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale reservations cancelled", logger.Int("count", len(cancelled)))
	}

	return cancelled, nil
}

// setStatus пишет только статус и только если он не изменился с момента чтения.
func (s *ReservationService) setStatus(ctx context.Context, current *domain.Reservation, next domain.ReservationStatus) error {
	if !current.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: transition %s -> %s is not allowed", domain.ErrInvalidState, current.Status, next)
	}

	n, err := s.repo.SetStatus(ctx, current.ID, current.Status, next)
	if err != nil {
		return fmt.Errorf("set status %s: %w", next, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidState, domain.ErrStatusChanged)
	}

	s.metrics.ObserveTransition(current.Status, next)
	return nil
}

// lockReservation блокирует комнату брони и перечитывает её под блокировкой.
// Если за время ожидания бронь перенесли в другую комнату, блокировка берётся заново.
func (s *ReservationService) lockReservation(ctx context.Context, id int64) (*domain.Reservation, func(), error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	for range lockAttempts {
		unlock, err := s.locker.Lock(ctx, current.RoomID)
		if err != nil {
			return nil, nil, fmt.Errorf("lock room %d: %w", current.RoomID, err)
		}

		fresh, err := s.GetByID(ctx, id)
		if err != nil {
			unlock()
			return nil, nil, err
		}
		if fresh.RoomID == current.RoomID {
			return fresh, unlock, nil
		}

		unlock()
		current = fresh
	}

	return nil, nil, fmt.Errorf("%w: %w", domain.ErrInvalidState, domain.ErrStatusChanged)
}

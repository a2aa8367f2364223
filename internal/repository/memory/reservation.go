package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stpnv0/RoomBooker/internal/domain"
)

// ReservationRepository хранит брони в памяти процесса. Порядок вставки
// сохраняется, идентификаторы выдаются последовательно.
type ReservationRepository struct {
	mu    sync.RWMutex
	seq   int64
	order []int64
	items map[int64]domain.Reservation
}

func NewReservationRepo() *ReservationRepository {
	return &ReservationRepository{
		items: make(map[int64]domain.Reservation),
	}
}

func (r *ReservationRepository) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &res, nil
}

func (r *ReservationRepository) List(_ context.Context) ([]*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Reservation, 0, len(r.order))
	for _, id := range r.order {
		item := r.items[id]
		res = append(res, &item)
	}
	return res, nil
}

func (r *ReservationRepository) Search(_ context.Context, page domain.Page) ([]*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Reservation, 0, page.Limit)
	skipped := 0
	for _, id := range r.order {
		item := r.items[id]
		if !page.Matches(&item) {
			continue
		}
		if skipped < page.Offset {
			skipped++
			continue
		}
		res = append(res, &item)
		if len(res) == page.Limit {
			break
		}
	}
	return res, nil
}

func (r *ReservationRepository) FindConflictingApprovedIDs(
	_ context.Context,
	roomID int64,
	start, end time.Time,
	excludeID *int64,
) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []int64
	for _, id := range r.order {
		item := r.items[id]
		if excludeID != nil && id == *excludeID {
			continue
		}
		if item.RoomID != roomID || item.Status != domain.ReservationStatusApproved {
			continue
		}
		if domain.Overlaps(start, end, item.StartDate, item.EndDate) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *ReservationRepository) Save(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *res
	if saved.IsNew() {
		r.seq++
		saved.ID = r.seq
		r.order = append(r.order, saved.ID)
	} else {
		current, ok := r.items[saved.ID]
		if !ok {
			return nil, domain.ErrNotFound
		}
		if current.Status != domain.ReservationStatusPending {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidState, domain.ErrStatusChanged)
		}
	}

	r.items[saved.ID] = saved
	return &saved, nil
}

func (r *ReservationRepository) SetStatus(
	_ context.Context,
	id int64,
	expected, status domain.ReservationStatus,
) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.Status != expected {
		return 0, nil
	}

	r.items[id] = item.WithStatus(status)
	return 1, nil
}

func (r *ReservationRepository) ListStalePending(_ context.Context, asOf time.Time) ([]*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var res []*domain.Reservation
	for _, id := range r.order {
		item := r.items[id]
		if item.Status == domain.ReservationStatusPending && item.StartDate.Before(asOf) {
			res = append(res, &item)
		}
	}
	return res, nil
}

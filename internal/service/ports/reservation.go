package ports

import (
	"context"
	"time"

	"github.com/stpnv0/RoomBooker/internal/domain"
)

type ReservationRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
	Search(ctx context.Context, page domain.Page) ([]*domain.Reservation, error)
	FindConflictingApprovedIDs(ctx context.Context, roomID int64, start, end time.Time, excludeID *int64) ([]int64, error)
	// Save вставляет бронь без ID или перезаписывает PENDING-бронь; если статус
	// уже не PENDING, возвращает ErrInvalidState с ErrStatusChanged.
	Save(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	SetStatus(ctx context.Context, id int64, expected, status domain.ReservationStatus) (int64, error)
	ListStalePending(ctx context.Context, asOf time.Time) ([]*domain.Reservation, error)
}

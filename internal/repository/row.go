package repository

import (
	"fmt"
	"time"

	"github.com/stpnv0/RoomBooker/internal/domain"
)

type scanner interface {
	Scan(dest ...any) error
}

// reservationRow соответствует строке таблицы reservations.
// Доменная логика с ним не работает, только с domain.Reservation.
type reservationRow struct {
	ID        int64
	UserID    int64
	RoomID    int64
	StartDate time.Time
	EndDate   time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (rr *reservationRow) scan(s scanner) error {
	return s.Scan(
		&rr.ID, &rr.UserID, &rr.RoomID,
		&rr.StartDate, &rr.EndDate, &rr.Status,
		&rr.CreatedAt, &rr.UpdatedAt,
	)
}

func (rr reservationRow) toDomain() (*domain.Reservation, error) {
	status, err := domain.ParseReservationStatus(rr.Status)
	if err != nil {
		return nil, fmt.Errorf("reservation %d: %w", rr.ID, err)
	}

	return &domain.Reservation{
		ID:        rr.ID,
		UserID:    rr.UserID,
		RoomID:    rr.RoomID,
		StartDate: domain.Date(rr.StartDate),
		EndDate:   domain.Date(rr.EndDate),
		Status:    status,
	}, nil
}

func rowFromDomain(r *domain.Reservation) reservationRow {
	return reservationRow{
		ID:        r.ID,
		UserID:    r.UserID,
		RoomID:    r.RoomID,
		StartDate: domain.Date(r.StartDate),
		EndDate:   domain.Date(r.EndDate),
		Status:    string(r.Status),
	}
}

package domain

import (
	"fmt"
	"time"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusApproved  ReservationStatus = "APPROVED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// transitions описывает допустимые переходы статуса. CANCELLED терминален,
// из APPROVED обычным путём выйти нельзя.
var transitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusPending, ReservationStatusApproved, ReservationStatusCancelled},
	ReservationStatusApproved:  {},
	ReservationStatusCancelled: {},
}

func (s ReservationStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCancelled
}

func (s ReservationStatus) String() string {
	return string(s)
}

func ParseReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: unknown reservation status %q", ErrInvalidArgument, s)
	}
	return status, nil
}

// Reservation неизменяема; у ещё не сохранённой брони ID == 0.
type Reservation struct {
	ID        int64
	UserID    int64
	RoomID    int64
	StartDate time.Time
	EndDate   time.Time
	Status    ReservationStatus
}

// WithStatus возвращает копию брони с новым статусом.
func (r Reservation) WithStatus(status ReservationStatus) Reservation {
	r.Status = status
	return r
}

func (r Reservation) IsNew() bool {
	return r.ID == 0
}

type CreateReservationInput struct {
	UserID    int64
	RoomID    int64
	StartDate time.Time
	EndDate   time.Time
	Status    ReservationStatus
}

type UpdateReservationInput struct {
	UserID    int64
	RoomID    int64
	StartDate time.Time
	EndDate   time.Time
	Status    ReservationStatus
}

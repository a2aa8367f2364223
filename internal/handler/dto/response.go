package dto

import (
	"time"

	"github.com/stpnv0/RoomBooker/internal/domain"
)

const (
	AvailabilityAvailable = "AVAILABLE"
	AvailabilityReserved  = "RESERVED"
)

type ReservationResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	RoomID    int64  `json:"roomId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

type CheckAvailabilityResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type ErrorResponse struct {
	Message         string    `json:"message"`
	DetailedMessage string    `json:"detailedMessage"`
	ErrorTime       time.Time `json:"errorTime"`
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		RoomID:    r.RoomID,
		StartDate: r.StartDate.Format(domain.DateLayout),
		EndDate:   r.EndDate.Format(domain.DateLayout),
		Status:    string(r.Status),
	}
}

func ToReservationResponses(rs []*domain.Reservation) []ReservationResponse {
	resp := make([]ReservationResponse, 0, len(rs))
	for _, r := range rs {
		resp = append(resp, ToReservationResponse(r))
	}
	return resp
}

func ToCheckAvailabilityResponse(available bool) CheckAvailabilityResponse {
	if available {
		return CheckAvailabilityResponse{
			Message: "Room available to reservation",
			Status:  AvailabilityAvailable,
		}
	}
	return CheckAvailabilityResponse{
		Message: "Room not available to reservation",
		Status:  AvailabilityReserved,
	}
}

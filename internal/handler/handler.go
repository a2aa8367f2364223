package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jinzhu/now"
	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/stpnv0/RoomBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const (
	categoryNotFound   = "Entity Not Found"
	categoryBadRequest = "Bad Request"
	categoryInternal   = "Internal Server Error"
)

type ReservationSvc interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.Reservation, error)
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	Update(ctx context.Context, id int64, input domain.UpdateReservationInput) (*domain.Reservation, error)
	Cancel(ctx context.Context, id int64) error
	Approve(ctx context.Context, id int64) (*domain.Reservation, error)
}

type AvailabilitySvc interface {
	IsAvailable(ctx context.Context, roomID int64, start, end time.Time, excludeID *int64) (bool, error)
}

type Handler struct {
	reservationService  ReservationSvc
	availabilityService AvailabilitySvc
	clock               func() time.Time
}

func NewHandler(reservationService ReservationSvc, availabilityService AvailabilitySvc) *Handler {
	return &Handler{
		reservationService:  reservationService,
		availabilityService: availabilityService,
		clock:               time.Now,
	}
}

// Reservations

func (h *Handler) GetReservation(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	r, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	res, err := h.reservationService.Search(c.Request.Context(), domain.SearchFilter{
		RoomID:     req.RoomID,
		UserID:     req.UserID,
		PageSize:   req.PageSize,
		PageNumber: req.PageNumber,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponses(res))
}

func (h *Handler) CreateReservation(c *ginext.Context) {
	req, start, end, ok := h.bindReservation(c)
	if !ok {
		return
	}

	r, err := h.reservationService.Create(c.Request.Context(), domain.CreateReservationInput{
		UserID:    *req.UserID,
		RoomID:    *req.RoomID,
		StartDate: start,
		EndDate:   end,
		Status:    domain.ReservationStatus(req.Status),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(r))
}

func (h *Handler) UpdateReservation(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	req, start, end, ok := h.bindReservation(c)
	if !ok {
		return
	}

	r, err := h.reservationService.Update(c.Request.Context(), id, domain.UpdateReservationInput{
		UserID:    *req.UserID,
		RoomID:    *req.RoomID,
		StartDate: start,
		EndDate:   end,
		Status:    domain.ReservationStatus(req.Status),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handler) ApproveReservation(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	r, err := h.reservationService.Approve(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

// Availability

func (h *Handler) CheckAvailability(c *ginext.Context) {
	var req dto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	available, err := h.availabilityService.IsAvailable(c.Request.Context(), *req.RoomID, start, end, nil)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckAvailabilityResponse(available))
}

func (h *Handler) bindReservation(c *ginext.Context) (dto.ReservationRequest, time.Time, time.Time, bool) {
	var req dto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return req, time.Time{}, time.Time{}, false
	}

	if req.ID != nil {
		h.badRequest(c, "id must be empty")
		return req, time.Time{}, time.Time{}, false
	}

	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		h.handleError(c, err)
		return req, time.Time{}, time.Time{}, false
	}

	today := now.New(h.clock().UTC()).BeginningOfDay()
	if start.Before(today) || end.Before(today) {
		h.badRequest(c, "start and end dates must be today or in the future")
		return req, time.Time{}, time.Time{}, false
	}

	return req, start, end, true
}

func (h *Handler) parseID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.badRequest(c, fmt.Sprintf("invalid reservation id %q", c.Param("id")))
		return 0, false
	}
	return id, true
}

func parseRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := domain.ParseDate(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := domain.ParseDate(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func (h *Handler) badRequest(c *ginext.Context, detail string) {
	c.Set("error", detail)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Message:         categoryBadRequest,
		DetailedMessage: detail,
		ErrorTime:       h.clock(),
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch domain.KindOf(err) {
	case domain.KindNotFound:
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Message:         categoryNotFound,
			DetailedMessage: err.Error(),
			ErrorTime:       h.clock(),
		})

	case domain.KindInvalidArgument, domain.KindInvalidState:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message:         categoryBadRequest,
			DetailedMessage: err.Error(),
			ErrorTime:       h.clock(),
		})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Message:         categoryInternal,
			DetailedMessage: "internal server error",
			ErrorTime:       h.clock(),
		})
	}
}

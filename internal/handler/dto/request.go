package dto

type ReservationRequest struct {
	ID        *int64 `json:"id"`
	UserID    *int64 `json:"userId"    binding:"required"`
	RoomID    *int64 `json:"roomId"    binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate"   binding:"required"`
	Status    string `json:"status"`
}

type SearchRequest struct {
	RoomID     *int64 `form:"roomId"`
	UserID     *int64 `form:"userId"`
	PageSize   *int   `form:"pageSize"`
	PageNumber *int   `form:"pageNumber"`
}

type CheckAvailabilityRequest struct {
	RoomID    *int64 `json:"roomId"    binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate"   binding:"required"`
}

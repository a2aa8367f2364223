package domain

import "fmt"

const (
	DefaultPageSize   = 10
	DefaultPageNumber = 0
)

type SearchFilter struct {
	RoomID     *int64
	UserID     *int64
	PageSize   *int
	PageNumber *int
}

// Page содержит нормализованные параметры выборки.
type Page struct {
	RoomID *int64
	UserID *int64
	Limit  int
	Offset int
}

func (f SearchFilter) Normalize() (Page, error) {
	size := DefaultPageSize
	if f.PageSize != nil {
		size = *f.PageSize
	}
	number := DefaultPageNumber
	if f.PageNumber != nil {
		number = *f.PageNumber
	}

	if size <= 0 {
		return Page{}, fmt.Errorf("%w: page size must be positive", ErrInvalidArgument)
	}
	if number < 0 {
		return Page{}, fmt.Errorf("%w: page number must not be negative", ErrInvalidArgument)
	}

	return Page{
		RoomID: f.RoomID,
		UserID: f.UserID,
		Limit:  size,
		Offset: size * number,
	}, nil
}

// Matches применяется хранилищами, фильтрующими в памяти.
func (p Page) Matches(r *Reservation) bool {
	if p.RoomID != nil && r.RoomID != *p.RoomID {
		return false
	}
	if p.UserID != nil && r.UserID != *p.UserID {
		return false
	}
	return true
}

package domain

import "errors"

var (
	ErrNotFound        = errors.New("reservation not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
)

var (
	ErrStatusNotEmpty = errors.New("status should be empty")
	ErrInvalidRange   = errors.New("end date must be at least one day after start date")
	ErrConflict       = errors.New("cannot approve: conflict")
	ErrStatusChanged  = errors.New("reservation status changed concurrently")
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindInvalidArgument
	KindInvalidState
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindInvalidState:
		return "invalid_state"
	default:
		return "internal"
	}
}

// KindOf относит ошибку к одной из четырёх категорий. Всё, что не помечено
// явно, считается внутренней ошибкой.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	default:
		return KindInternal
	}
}

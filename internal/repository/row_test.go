package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScanner []any

func (f fakeScanner) Scan(dest ...any) error {
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = f[i].(int64)
		case *string:
			*p = f[i].(string)
		case *time.Time:
			*p = f[i].(time.Time)
		}
	}
	return nil
}

func TestReservationRow_RoundTrip(t *testing.T) {
	in := &domain.Reservation{
		ID:        7,
		UserID:    3,
		RoomID:    9,
		StartDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		Status:    domain.ReservationStatusApproved,
	}

	out, err := rowFromDomain(in).toDomain()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReservationRow_TruncatesToDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	rr := reservationRow{
		ID:        1,
		StartDate: time.Date(2025, 2, 1, 0, 0, 0, 0, loc),
		EndDate:   time.Date(2025, 2, 3, 15, 30, 0, 0, time.UTC),
		Status:    "PENDING",
	}

	d, err := rr.toDomain()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), d.StartDate)
	assert.Equal(t, time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), d.EndDate)
}

func TestReservationRow_UnknownStatus(t *testing.T) {
	_, err := reservationRow{ID: 1, Status: "DRAFT"}.toDomain()
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestReservationRow_Scan(t *testing.T) {
	now := time.Now()
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)

	var rr reservationRow
	require.NoError(t, rr.scan(fakeScanner{int64(5), int64(1), int64(2), start, end, "CANCELLED", now, now}))

	d, err := rr.toDomain()
	require.NoError(t, err)
	assert.Equal(t, int64(5), d.ID)
	assert.Equal(t, domain.ReservationStatusCancelled, d.Status)
}

func TestMapPgError(t *testing.T) {
	err := mapPgError(&pq.Error{Code: pgExclusionViolation})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	err = mapPgError(&pq.Error{Code: pgCheckViolation, Message: "reservations_range_check"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	plain := errors.New("connection reset")
	assert.Equal(t, plain, mapPgError(plain))
}

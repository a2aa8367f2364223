package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateLayout, s)
	return t
}

func seed(t *testing.T, repo *ReservationRepository, roomID int64, start, end string, status domain.ReservationStatus) *domain.Reservation {
	t.Helper()
	r, err := repo.Save(context.Background(), &domain.Reservation{
		UserID:    1,
		RoomID:    roomID,
		StartDate: day(start),
		EndDate:   day(end),
		Status:    status,
	})
	require.NoError(t, err)
	return r
}

func TestReservationRepository_SaveAssignsSequentialIDs(t *testing.T) {
	repo := NewReservationRepo()

	a := seed(t, repo, 1, "2025-01-01", "2025-01-02", domain.ReservationStatusPending)
	b := seed(t, repo, 1, "2025-01-03", "2025-01-04", domain.ReservationStatusPending)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)

	got, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, *b, *got)
}

func TestReservationRepository_SaveUnknownID(t *testing.T) {
	repo := NewReservationRepo()

	_, err := repo.Save(context.Background(), &domain.Reservation{ID: 42, RoomID: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReservationRepository_SaveRejectsNonPending(t *testing.T) {
	repo := NewReservationRepo()
	ctx := context.Background()
	r := seed(t, repo, 1, "2025-02-01", "2025-02-10", domain.ReservationStatusPending)

	n, err := repo.SetStatus(ctx, r.ID, domain.ReservationStatusPending, domain.ReservationStatusCancelled)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	edited := *r
	edited.EndDate = day("2025-02-12")
	_, err = repo.Save(ctx, &edited)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.ErrorIs(t, err, domain.ErrStatusChanged)

	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, got.Status)
	assert.Equal(t, r.EndDate, got.EndDate)
}

func TestReservationRepository_GetByID_NotFound(t *testing.T) {
	repo := NewReservationRepo()

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReservationRepository_Search(t *testing.T) {
	repo := NewReservationRepo()
	for i := 0; i < 5; i++ {
		seed(t, repo, 1, "2025-01-01", "2025-01-02", domain.ReservationStatusPending)
		seed(t, repo, 2, "2025-01-01", "2025-01-02", domain.ReservationStatusPending)
	}

	room := int64(1)
	page, err := domain.SearchFilter{RoomID: &room}.Normalize()
	require.NoError(t, err)

	res, err := repo.Search(context.Background(), page)
	require.NoError(t, err)
	require.Len(t, res, 5)
	for _, r := range res {
		assert.Equal(t, int64(1), r.RoomID)
	}

	size, number := 3, 1
	page, err = domain.SearchFilter{PageSize: &size, PageNumber: &number}.Normalize()
	require.NoError(t, err)

	res, err = repo.Search(context.Background(), page)
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, int64(4), res[0].ID)
	assert.Equal(t, int64(6), res[2].ID)
}

func TestReservationRepository_FindConflictingApprovedIDs(t *testing.T) {
	repo := NewReservationRepo()
	approved := seed(t, repo, 1, "2025-02-01", "2025-02-10", domain.ReservationStatusApproved)
	seed(t, repo, 1, "2025-02-01", "2025-02-10", domain.ReservationStatusPending)
	seed(t, repo, 2, "2025-02-01", "2025-02-10", domain.ReservationStatusApproved)

	ids, err := repo.FindConflictingApprovedIDs(context.Background(), 1, day("2025-02-05"), day("2025-02-12"), nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{approved.ID}, ids)

	ids, err = repo.FindConflictingApprovedIDs(context.Background(), 1, day("2025-02-10"), day("2025-02-15"), nil)
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = repo.FindConflictingApprovedIDs(context.Background(), 1, day("2025-02-05"), day("2025-02-12"), &approved.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestReservationRepository_SetStatus(t *testing.T) {
	repo := NewReservationRepo()
	r := seed(t, repo, 1, "2025-02-01", "2025-02-10", domain.ReservationStatusPending)

	n, err := repo.SetStatus(context.Background(), r.ID, domain.ReservationStatusApproved, domain.ReservationStatusCancelled)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.SetStatus(context.Background(), r.ID, domain.ReservationStatusPending, domain.ReservationStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.GetByID(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, got.Status)
	assert.Equal(t, r.StartDate, got.StartDate)
}

func TestReservationRepository_ListStalePending(t *testing.T) {
	repo := NewReservationRepo()
	stale := seed(t, repo, 1, "2025-01-01", "2025-01-05", domain.ReservationStatusPending)
	seed(t, repo, 1, "2025-01-01", "2025-01-05", domain.ReservationStatusApproved)
	seed(t, repo, 1, "2025-03-01", "2025-03-05", domain.ReservationStatusPending)

	res, err := repo.ListStalePending(context.Background(), day("2025-02-01"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, stale.ID, res[0].ID)
}

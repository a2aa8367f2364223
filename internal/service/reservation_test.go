package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/stpnv0/RoomBooker/internal/lock"
	"github.com/stpnv0/RoomBooker/internal/metrics"
	"github.com/stpnv0/RoomBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newReservationService(t *testing.T) (*ReservationService, *mocks.MockReservationRepo, *mocks.MockAvailabilityChecker) {
	t.Helper()
	repo := mocks.NewMockReservationRepo(t)
	availability := mocks.NewMockAvailabilityChecker(t)

	svc := NewReservationService(
		repo,
		availability,
		lock.NewKeyedMutex(),
		metrics.New(prometheus.NewRegistry()),
		newTestLogger(t),
	)
	return svc, repo, availability
}

func pending(id, roomID int64, start, end string) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		UserID:    100,
		RoomID:    roomID,
		StartDate: day(start),
		EndDate:   day(end),
		Status:    domain.ReservationStatusPending,
	}
}

func TestReservationService_Create_Success(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	repo.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
			return r.ID == 0 && r.Status == domain.ReservationStatusPending && r.RoomID == 5
		})).
		RunAndReturn(func(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
			saved := *r
			saved.ID = 1
			return &saved, nil
		})

	res, err := svc.Create(context.Background(), domain.CreateReservationInput{
		UserID:    100,
		RoomID:    5,
		StartDate: day("2025-01-10"),
		EndDate:   day("2025-01-11"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, domain.ReservationStatusPending, res.Status)
	assert.Equal(t, day("2025-01-10"), res.StartDate)
}

func TestReservationService_Create_StatusNotEmpty(t *testing.T) {
	svc, _, _ := newReservationService(t)

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		UserID:    100,
		RoomID:    5,
		StartDate: day("2025-01-10"),
		EndDate:   day("2025-01-11"),
		Status:    domain.ReservationStatusApproved,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.ErrorIs(t, err, domain.ErrStatusNotEmpty)
}

func TestReservationService_Create_InvalidRange(t *testing.T) {
	svc, _, _ := newReservationService(t)

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		UserID:    100,
		RoomID:    5,
		StartDate: day("2025-01-10"),
		EndDate:   day("2025-01-10"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestReservationService_Create_RepoError(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		RoomID:    5,
		StartDate: day("2025-01-10"),
		EndDate:   day("2025-01-12"),
	})

	require.Error(t, err)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}

func TestReservationService_GetByID_NotFound(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	repo.EXPECT().GetByID(mock.Anything, int64(42)).Return(nil, domain.ErrNotFound)

	_, err := svc.GetByID(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReservationService_Search_Defaults(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	room := int64(5)
	expected := []*domain.Reservation{pending(1, 5, "2025-01-10", "2025-01-11")}
	repo.EXPECT().
		Search(mock.Anything, domain.Page{RoomID: &room, Limit: domain.DefaultPageSize, Offset: 0}).
		Return(expected, nil)

	res, err := svc.Search(context.Background(), domain.SearchFilter{RoomID: &room})

	require.NoError(t, err)
	assert.Equal(t, expected, res)
}

func TestReservationService_Search_InvalidPage(t *testing.T) {
	svc, _, _ := newReservationService(t)

	size := -5
	_, err := svc.Search(context.Background(), domain.SearchFilter{PageSize: &size})

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestReservationService_ListAll(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	repo.EXPECT().List(mock.Anything).Return([]*domain.Reservation{pending(1, 5, "2025-01-10", "2025-01-11")}, nil)

	res, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestReservationService_Update_Success(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(pending(1, 5, "2025-01-10", "2025-01-11"), nil)
	repo.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
			return r.ID == 1 && r.RoomID == 6 && r.Status == domain.ReservationStatusPending
		})).
		RunAndReturn(func(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
			saved := *r
			return &saved, nil
		})

	res, err := svc.Update(context.Background(), 1, domain.UpdateReservationInput{
		UserID:    100,
		RoomID:    6,
		StartDate: day("2025-03-01"),
		EndDate:   day("2025-03-04"),
		Status:    domain.ReservationStatusApproved,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, int64(6), res.RoomID)
	assert.Equal(t, domain.ReservationStatusPending, res.Status)
}

func TestReservationService_Update_NotPending(t *testing.T) {
	for _, status := range []domain.ReservationStatus{domain.ReservationStatusApproved, domain.ReservationStatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			svc, repo, _ := newReservationService(t)

			current := pending(1, 5, "2025-01-10", "2025-01-11")
			current.Status = status
			repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(current, nil)

			_, err := svc.Update(context.Background(), 1, domain.UpdateReservationInput{
				RoomID:    5,
				StartDate: day("2025-01-10"),
				EndDate:   day("2025-01-12"),
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.Contains(t, err.Error(), "cannot modify reservation in status "+string(status))
		})
	}
}

func TestReservationService_Update_InvalidRange(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(pending(1, 5, "2025-01-10", "2025-01-11"), nil)

	_, err := svc.Update(context.Background(), 1, domain.UpdateReservationInput{
		RoomID:    5,
		StartDate: day("2025-01-12"),
		EndDate:   day("2025-01-10"),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestReservationService_Update_NotFound(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(nil, domain.ErrNotFound)

	_, err := svc.Update(context.Background(), 1, domain.UpdateReservationInput{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(pending(1, 5, "2025-01-10", "2025-01-11"), nil)
	repo.EXPECT().
		SetStatus(mock.Anything, int64(1), domain.ReservationStatusPending, domain.ReservationStatusCancelled).
		Return(1, nil)

	err := svc.Cancel(context.Background(), 1)

	require.NoError(t, err)
}

func TestReservationService_Cancel_Approved(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	current := pending(1, 5, "2025-01-10", "2025-01-11")
	current.Status = domain.ReservationStatusApproved
	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(current, nil)

	err := svc.Cancel(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Contains(t, err.Error(), "contact a manager")
}

func TestReservationService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	current := pending(1, 5, "2025-01-10", "2025-01-11")
	current.Status = domain.ReservationStatusCancelled
	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(current, nil)

	err := svc.Cancel(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Contains(t, err.Error(), "already cancelled")
}

func TestReservationService_Cancel_StatusChangedConcurrently(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(pending(1, 5, "2025-01-10", "2025-01-11"), nil)
	repo.EXPECT().
		SetStatus(mock.Anything, int64(1), domain.ReservationStatusPending, domain.ReservationStatusCancelled).
		Return(0, nil)

	err := svc.Cancel(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.ErrorIs(t, err, domain.ErrStatusChanged)
}

func TestReservationService_Update_CancelledConcurrently(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(pending(1, 5, "2025-01-10", "2025-01-11"), nil)
	repo.EXPECT().Save(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: %w", domain.ErrInvalidState, domain.ErrStatusChanged))

	_, err := svc.Update(context.Background(), 1, domain.UpdateReservationInput{
		RoomID:    5,
		StartDate: day("2025-01-10"),
		EndDate:   day("2025-01-12"),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.ErrorIs(t, err, domain.ErrStatusChanged)
}

func TestReservationService_Cancel_NotFound(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(nil, domain.ErrNotFound)

	err := svc.Cancel(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReservationService_Approve_Success(t *testing.T) {
	svc, repo, availability := newReservationService(t)

	current := pending(1, 5, "2025-02-10", "2025-02-15")
	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(current, nil)
	availability.EXPECT().
		IsAvailable(mock.Anything, int64(5), day("2025-02-10"), day("2025-02-15"),
			mock.MatchedBy(func(id *int64) bool { return id != nil && *id == 1 })).
		Return(true, nil)
	repo.EXPECT().
		SetStatus(mock.Anything, int64(1), domain.ReservationStatusPending, domain.ReservationStatusApproved).
		Return(1, nil)

	res, err := svc.Approve(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusApproved, res.Status)
	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, domain.ReservationStatusPending, current.Status)
}

func TestReservationService_Approve_Conflict(t *testing.T) {
	svc, repo, availability := newReservationService(t)

	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(pending(1, 5, "2025-02-05", "2025-02-12"), nil)
	availability.EXPECT().
		IsAvailable(mock.Anything, int64(5), day("2025-02-05"), day("2025-02-12"), mock.Anything).
		Return(false, nil)

	_, err := svc.Approve(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReservationService_Approve_NotPending(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	current := pending(1, 5, "2025-02-05", "2025-02-12")
	current.Status = domain.ReservationStatusCancelled
	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(current, nil)

	_, err := svc.Approve(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestReservationService_Approve_AvailabilityError(t *testing.T) {
	svc, repo, availability := newReservationService(t)

	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(pending(1, 5, "2025-02-05", "2025-02-12"), nil)
	availability.EXPECT().
		IsAvailable(mock.Anything, int64(5), mock.Anything, mock.Anything, mock.Anything).
		Return(false, errors.New("db error"))

	_, err := svc.Approve(context.Background(), 1)

	require.Error(t, err)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}

func TestReservationService_Approve_NotFound(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(nil, domain.ErrNotFound)

	_, err := svc.Approve(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReservationService_Approve_RoomChangedWhileWaiting(t *testing.T) {
	svc, repo, availability := newReservationService(t)

	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(pending(1, 5, "2025-02-05", "2025-02-12"), nil).Once()
	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(pending(1, 6, "2025-02-05", "2025-02-12"), nil)
	availability.EXPECT().
		IsAvailable(mock.Anything, int64(6), mock.Anything, mock.Anything, mock.Anything).
		Return(true, nil)
	repo.EXPECT().
		SetStatus(mock.Anything, int64(1), domain.ReservationStatusPending, domain.ReservationStatusApproved).
		Return(1, nil)

	res, err := svc.Approve(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(6), res.RoomID)
}

func TestReservationService_ExpireStale(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	stale := []*domain.Reservation{
		pending(1, 5, "2025-01-01", "2025-01-03"),
		pending(2, 5, "2025-01-02", "2025-01-04"),
	}
	repo.EXPECT().ListStalePending(mock.Anything, day("2025-01-05")).Return(stale, nil)
	repo.EXPECT().
		SetStatus(mock.Anything, int64(1), domain.ReservationStatusPending, domain.ReservationStatusCancelled).
		Return(1, nil)
	repo.EXPECT().
		SetStatus(mock.Anything, int64(2), domain.ReservationStatusPending, domain.ReservationStatusCancelled).
		Return(0, nil)

	res, err := svc.ExpireStale(context.Background(), day("2025-01-05").Add(15*time.Hour))

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, int64(1), res[0].ID)
	assert.Equal(t, domain.ReservationStatusCancelled, res[0].Status)
}

func TestReservationService_ExpireStale_RepoError(t *testing.T) {
	svc, repo, _ := newReservationService(t)

	repo.EXPECT().ListStalePending(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.ExpireStale(context.Background(), time.Now())

	require.Error(t, err)
}

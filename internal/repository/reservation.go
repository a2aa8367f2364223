package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	pgCheckViolation     = "23514"
	pgExclusionViolation = "23P01"
)

const reservationColumns = `id, user_id, room_id, start_date, end_date, status, created_at, updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	var rr reservationRow
	if err = rr.scan(row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return rr.toDomain()
}

func (r *ReservationRepository) List(ctx context.Context) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *ReservationRepository) Search(ctx context.Context, page domain.Page) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE ($1::bigint IS NULL OR room_id = $1)
			    AND ($2::bigint IS NULL OR user_id = $2)
			  ORDER BY id
			  LIMIT $3 OFFSET $4`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, page.RoomID, page.UserID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("search reservations: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// FindConflictingApprovedIDs возвращает подтверждённые брони комнаты,
// пересекающиеся с [start, end).
func (r *ReservationRepository) FindConflictingApprovedIDs(
	ctx context.Context,
	roomID int64,
	start, end time.Time,
	excludeID *int64,
) ([]int64, error) {
	query := `SELECT id
			  FROM reservations
			  WHERE room_id = $1
			    AND status = $2
			    AND start_date < $4
			    AND end_date > $3
			    AND ($5::bigint IS NULL OR id <> $5)
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		roomID, domain.ReservationStatusApproved, start, end, excludeID,
	)
	if err != nil {
		return nil, fmt.Errorf("find conflicts: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan conflict id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Save вставляет новую бронь (id выдаёт БД) или полностью перезаписывает существующую.
// Перезаписать можно только PENDING-бронь: если статус успел смениться,
// возвращается ErrStatusChanged.
func (r *ReservationRepository) Save(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	rr := rowFromDomain(res)
	if res.IsNew() {
		return r.insert(ctx, rr)
	}
	return r.update(ctx, rr)
}

func (r *ReservationRepository) insert(ctx context.Context, rr reservationRow) (*domain.Reservation, error) {
	query := `INSERT INTO reservations (user_id, room_id, start_date, end_date, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, now(), now())
			  RETURNING ` + reservationColumns

	// без retry: повтор INSERT мог бы создать дубликат
	row := r.db.Master.QueryRowContext(ctx, query, rr.UserID, rr.RoomID, rr.StartDate, rr.EndDate, rr.Status)

	var saved reservationRow
	if err := saved.scan(row); err != nil {
		return nil, fmt.Errorf("insert reservation: %w", mapPgError(err))
	}

	return saved.toDomain()
}

func (r *ReservationRepository) update(ctx context.Context, rr reservationRow) (*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET user_id = $2, room_id = $3, start_date = $4, end_date = $5,
			      status = $6, updated_at = now()
			  WHERE id = $1 AND status = $7
			  RETURNING ` + reservationColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		rr.ID, rr.UserID, rr.RoomID, rr.StartDate, rr.EndDate, rr.Status,
		domain.ReservationStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("update reservation: %w", mapPgError(err))
	}

	var saved reservationRow
	if err = saved.scan(row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.missedUpdate(ctx, rr.ID)
		}
		return nil, fmt.Errorf("update reservation: %w", mapPgError(err))
	}

	return saved.toDomain()
}

// missedUpdate объясняет, почему UPDATE не затронул ни одной строки.
func (r *ReservationRepository) missedUpdate(ctx context.Context, id int64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrInvalidState, domain.ErrStatusChanged)
}

// SetStatus меняет только статус и только если текущий статус равен expected.
func (r *ReservationRepository) SetStatus(
	ctx context.Context,
	id int64,
	expected, status domain.ReservationStatus,
) (int64, error) {
	query := `UPDATE reservations
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, expected, status)
	if err != nil {
		return 0, fmt.Errorf("set status: %w", mapPgError(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("status rows affected: %w", err)
	}

	return n, nil
}

func (r *ReservationRepository) ListStalePending(ctx context.Context, asOf time.Time) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE status = $1 AND start_date < $2
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.ReservationStatusPending, asOf)
	if err != nil {
		return nil, fmt.Errorf("list stale reservations: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	for rows.Next() {
		var rr reservationRow
		if err := rr.scan(rows); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		d, err := rr.toDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}

	return res, rows.Err()
}

// mapPgError переводит нарушения ограничений схемы в доменные ошибки.
func mapPgError(err error) error {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgExclusionViolation:
		return fmt.Errorf("%w: %w", domain.ErrInvalidArgument, domain.ErrConflict)
	case pgCheckViolation:
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, pgErr.Message)
	default:
		return err
	}
}

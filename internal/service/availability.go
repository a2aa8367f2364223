package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/RoomBooker/internal/domain"
	"github.com/stpnv0/RoomBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type Strategy string

const (
	// StrategyQuery отдаёт фильтрацию по комнате, статусу и датам в хранилище.
	StrategyQuery Strategy = "query"
	// StrategyScan читает все брони и фильтрует их в памяти.
	StrategyScan Strategy = "scan"
)

type AvailabilityService struct {
	repo     ports.ReservationRepo
	strategy Strategy
	logger   logger.Logger
}

func NewAvailabilityService(repo ports.ReservationRepo, strategy Strategy, logger logger.Logger) *AvailabilityService {
	if strategy == "" {
		strategy = StrategyQuery
	}
	return &AvailabilityService{
		repo:     repo,
		strategy: strategy,
		logger:   logger,
	}
}

// IsAvailable сообщает, свободна ли комната на [start, end) с учётом только
// подтверждённых броней. excludeID исключает саму проверяемую бронь.
func (s *AvailabilityService) IsAvailable(
	ctx context.Context,
	roomID int64,
	start, end time.Time,
	excludeID *int64,
) (bool, error) {
	if err := domain.ValidateRange(start, end); err != nil {
		return false, err
	}
	start, end = domain.Date(start), domain.Date(end)

	var (
		ids []int64
		err error
	)
	switch s.strategy {
	case StrategyScan:
		ids, err = s.scanConflicts(ctx, roomID, start, end, excludeID)
	default:
		ids, err = s.repo.FindConflictingApprovedIDs(ctx, roomID, start, end, excludeID)
	}
	if err != nil {
		return false, fmt.Errorf("find conflicts: %w", err)
	}

	if len(ids) == 0 {
		return true, nil
	}

	s.logger.Info("reservation conflict",
		logger.Int64("room_id", roomID),
		logger.Any("conflicting_ids", ids),
	)
	return false, nil
}

func (s *AvailabilityService) scanConflicts(
	ctx context.Context,
	roomID int64,
	start, end time.Time,
	excludeID *int64,
) ([]int64, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var ids []int64
	for _, r := range all {
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		if r.RoomID != roomID || r.Status != domain.ReservationStatusApproved {
			continue
		}
		if domain.Overlaps(start, end, r.StartDate, r.EndDate) {
			ids = append(ids, r.ID)
		}
	}

	return ids, nil
}

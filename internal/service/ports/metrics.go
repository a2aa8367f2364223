package ports

import "github.com/stpnv0/RoomBooker/internal/domain"

type LifecycleMetrics interface {
	ObserveTransition(from, to domain.ReservationStatus)
	ObserveConflict()
}

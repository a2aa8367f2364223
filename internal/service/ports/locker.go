package ports

import "context"

// RoomLocker сериализует проверку доступности и смену статуса в пределах комнаты.
type RoomLocker interface {
	Lock(ctx context.Context, roomID int64) (unlock func(), err error)
}

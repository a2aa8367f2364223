package lock

import (
	"context"
	"sync"
)

// KeyedMutex блокирует комнату в пределах одного процесса.
type KeyedMutex struct {
	mu    sync.Mutex
	slots map[int64]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{slots: make(map[int64]*slot)}
}

func (k *KeyedMutex) Lock(ctx context.Context, roomID int64) (func(), error) {
	k.mu.Lock()
	s, ok := k.slots[roomID]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		k.slots[roomID] = s
	}
	s.refs++
	k.mu.Unlock()

	select {
	case s.ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-s.ch
				k.release(roomID, s)
			})
		}, nil
	case <-ctx.Done():
		k.release(roomID, s)
		return nil, ctx.Err()
	}
}

func (k *KeyedMutex) release(roomID int64, s *slot) {
	k.mu.Lock()
	defer k.mu.Unlock()

	s.refs--
	if s.refs == 0 {
		delete(k.slots, roomID)
	}
}

package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const keyPrefix = "roombooker:room-lock"

// снимаем блокировку, только если она всё ещё наша
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// продлеваем блокировку, только если она всё ещё наша
var extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`)

// RedisLocker блокирует комнату сразу для всех экземпляров сервиса.
type RedisLocker struct {
	client     *redis.Client
	ttl        time.Duration
	retryDelay time.Duration
	logger     logger.Logger
}

func NewRedisLocker(client *redis.Client, ttl, retryDelay time.Duration, logger logger.Logger) *RedisLocker {
	return &RedisLocker{
		client:     client,
		ttl:        ttl,
		retryDelay: retryDelay,
		logger:     logger,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, roomID int64) (func(), error) {
	key := roomKey(roomID)
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire room lock: %w", err)
		}
		if ok {
			return l.hold(ctx, key, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retryDelay):
		}
	}
}

// hold продлевает TTL, пока блокировка не снята, и возвращает функцию снятия.
func (l *RedisLocker) hold(ctx context.Context, key, token string) func() {
	bg := context.WithoutCancel(ctx)
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		keepAlive(bg, stop, l.ttl/3, func(ctx context.Context) (bool, error) {
			return l.extend(ctx, key, token)
		}, func(err error) {
			l.logger.Warn("failed to extend room lock",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		})
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-done
			l.release(bg, key, token)
		})
	}
}

func (l *RedisLocker) extend(ctx context.Context, key, token string) (bool, error) {
	n, err := extendScript.Run(ctx, l.client, []string{key}, token, l.ttl.Milliseconds()).Int64()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// keepAlive вызывает extend каждые interval до закрытия stop. Цикл завершается,
// если блокировка уже не наша. Ошибки сети не прерывают продление.
func keepAlive(
	ctx context.Context,
	stop <-chan struct{},
	interval time.Duration,
	extend func(context.Context) (bool, error),
	onError func(error),
) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			owned, err := extend(ctx)
			if err != nil {
				onError(err)
				continue
			}
			if !owned {
				onError(errors.New("lock lost"))
				return
			}
		}
	}
}

func (l *RedisLocker) release(ctx context.Context, key, token string) {
	if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
		l.logger.Warn("failed to release room lock",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

func roomKey(roomID int64) string {
	return fmt.Sprintf("%s:%d", keyPrefix, roomID)
}

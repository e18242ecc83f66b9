package services

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Limiter выдает разрешения на запись: не больше N постов на автора в окне
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type keyWindow struct {
	mu    sync.Mutex
	count int
	start time.Time
}

// FixedWindowLimiter - лимитер с фиксированным окном в памяти процесса.
// У каждого ключа свое окно со своим мьютексом, поэтому авторы не блокируют
// друг друга. Часы подменяются в тестах.
type FixedWindowLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*keyWindow
}

func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		windows: make(map[string]*keyWindow),
	}
}

// WithClock подменяет источник времени (для детерминированных тестов)
func (l *FixedWindowLimiter) WithClock(now func() time.Time) *FixedWindowLimiter {
	l.now = now
	return l
}

func (l *FixedWindowLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	w, ok := l.windows[key]
	if !ok {
		w = &keyWindow{}
		l.windows[key] = w
	}
	l.mu.Unlock()

	w.mu.Lock()
	defer w.mu.Unlock()

	now := l.now()
	if w.count == 0 || now.Sub(w.start) >= l.window {
		// Новое окно или старое истекло
		w.start = now
		w.count = 1
		return true, nil
	}
	if w.count >= l.limit {
		return false, nil
	}
	w.count++
	return true, nil
}

// RedisLimiter - фиксированное окно поверх Redis, общее для всех инстансов.
// INCR на ключ автора, EXPIRE ставится при первом инкременте в окне.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: "ratelimit:",
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.prefix + key
	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(l.limit), nil
}

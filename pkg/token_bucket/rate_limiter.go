package token_bucket

import (
	"sync"
	"time"
)

/*
Классический token bucket: ведро ёмкостью capacity пополняется со скоростью
refillRate токенов в секунду, каждый запрос забирает один токен.
Токены дробные, поэтому медленное пополнение не теряется между вызовами.
*/

type Clock func() time.Time

type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        Clock
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return newTokenBucket(capacity, refillRate, time.Now)
}

func newTokenBucket(capacity int, refillRate float64, now Clock) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}

func (t *TokenBucket) idleSince(now time.Time) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return now.Sub(t.lastRefill)
}

// KeyedLimiter держит отдельное ведро на каждый ключ (например, на актора).
// Ведра, простаивающие дольше idleTTL, удаляются при очередном обращении.
type KeyedLimiter struct {
	capacity   int
	refillRate float64
	idleTTL    time.Duration
	now        Clock

	mu        sync.Mutex
	buckets   map[string]*TokenBucket
	lastSweep time.Time
}

func NewKeyedLimiter(capacity int, refillRate float64, idleTTL time.Duration) *KeyedLimiter {
	return NewKeyedLimiterWithClock(capacity, refillRate, idleTTL, time.Now)
}

func NewKeyedLimiterWithClock(capacity int, refillRate float64, idleTTL time.Duration, now Clock) *KeyedLimiter {
	return &KeyedLimiter{
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		now:        now,
		buckets:    make(map[string]*TokenBucket),
		lastSweep:  now(),
	}
}

func (l *KeyedLimiter) Allow(key string) bool {
	return l.bucket(key).Allow()
}

// Len возвращает количество активных ведер.
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *KeyedLimiter) bucket(key string) *TokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if l.idleTTL > 0 && now.Sub(l.lastSweep) >= l.idleTTL {
		for k, b := range l.buckets {
			if b.idleSince(now) >= l.idleTTL {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[key]
	if !ok {
		b = newTokenBucket(l.capacity, l.refillRate, l.now)
		l.buckets[key] = b
	}
	return b
}

package grpc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type FetchFunc[T any] func(ctx context.Context) (T, error)

const (
	defaultFetchTimeout = 15 * time.Second
	defaultSetTimeout   = 5 * time.Second
)

// readThrough bundles what every cached read needs. A nil cache disables caching.
//
// Every key carries a generation that invalidate bumps. A fetch records the
// generation before it reads and its result is only stored if the generation is
// unchanged, so a read that raced a write cannot repopulate the cache.
type readThrough struct {
	cache  Cacher
	sf     singleflight.Group
	ttl    time.Duration
	logger *zap.Logger

	mu   sync.Mutex
	gens map[string]uint64
}

func (rt *readThrough) generation(key string) uint64 {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.gens[key]
}

// addTTLJitter adds up to ±15s random jitter to TTL to avoid mass expiration.
func addTTLJitter(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return ttl
	}
	jitter := time.Duration(rand.Intn(30)-15) * time.Second
	if ttl+jitter <= 0 {
		return ttl
	}
	return ttl + jitter
}

// store writes value unless key was invalidated after gen was read. The lock is
// held across Set so an invalidation either precedes the check or deletes the
// entry afterwards.
func (rt *readThrough) store(ctx context.Context, key string, gen uint64, value any) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.gens[key] != gen {
		rt.logger.Debug("cache store skipped, key invalidated during fetch", zap.String("key", key))
		return
	}

	ttl := addTTLJitter(rt.ttl)
	if err := rt.cache.Set(ctx, key, value, ttl); err != nil {
		rt.logger.Warn("failed to set cache", zap.String("key", key), zap.Error(err))
		return
	}
	rt.logger.Debug("cache populated", zap.String("key", key), zap.Duration("ttl", ttl))
}

func triggerBackgroundRefresh[T any](rt *readThrough, key string, fn FetchFunc[T]) {
	go func() {
		time.Sleep(time.Duration(rand.Intn(1000)) * time.Millisecond)

		_, _, _ = rt.sf.Do(key+":refresh", func() (any, error) {
			ctx, cancel := context.WithTimeout(context.Background(), defaultFetchTimeout)
			defer cancel()

			gen := rt.generation(key)
			value, err := fn(ctx)
			if err != nil {
				rt.logger.Warn("background refresh failed", zap.String("key", key), zap.Error(err))
				return nil, err
			}

			setCtx, cancelSet := context.WithTimeout(context.Background(), defaultSetTimeout)
			defer cancelSet()
			rt.store(setCtx, key, gen, value)

			return value, nil
		})
	}()
}

func fetchAndCacheInBackground[T any](ctx context.Context, rt *readThrough, key string, fn FetchFunc[T]) (T, error) {
	var zero T

	gen := rt.generation(key)
	value, err := fn(ctx)
	if err != nil {
		return zero, err
	}

	go func(v T) {
		setCtx, cancel := context.WithTimeout(context.Background(), defaultSetTimeout)
		defer cancel()
		rt.store(setCtx, key, gen, v)
	}(value)

	return value, nil
}

// FindAndCache implements read-through caching with singleflight and refresh-ahead logic.
// Concurrent misses for one key share a single fetch.
func FindAndCache[T any](ctx context.Context, rt *readThrough, key string, fn FetchFunc[T]) (T, error) {
	var zero T
	if rt.cache == nil {
		return fn(ctx)
	}

	var cached T
	err := rt.cache.Get(ctx, key, &cached)
	switch {
	case err == nil:
		rt.logger.Debug("cache hit", zap.String("key", key))
		triggerBackgroundRefresh(rt, key, fn)
		return cached, nil

	case errors.Is(err, redis.Nil):
		rt.logger.Debug("cache miss", zap.String("key", key))

	default:
		rt.logger.Warn("cache get error (treating as miss)", zap.String("key", key), zap.Error(err))
	}

	v, err, shared := rt.sf.Do(key, func() (any, error) {
		return fetchAndCacheInBackground(ctx, rt, key, fn)
	})
	if err != nil {
		return zero, err
	}

	value, ok := v.(T)
	if !ok {
		rt.logger.Error("singleflight type mismatch", zap.String("key", key))
		return zero, fmt.Errorf("type mismatch for key %q", key)
	}

	if shared {
		rt.logger.Debug("singleflight shared result", zap.String("key", key))
	}

	return value, nil
}

// invalidate drops keys after a write. Failures are only logged; stale entries
// still expire with their TTL.
func (rt *readThrough) invalidate(ctx context.Context, keys ...string) {
	if rt.cache == nil || len(keys) == 0 {
		return
	}
	rt.mu.Lock()
	if rt.gens == nil {
		rt.gens = make(map[string]uint64)
	}
	for _, k := range keys {
		rt.gens[k]++
		rt.sf.Forget(k)
		rt.sf.Forget(k + ":refresh")
	}
	rt.mu.Unlock()

	if err := rt.cache.Delete(ctx, keys...); err != nil {
		rt.logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
		return
	}
	rt.logger.Debug("cache invalidated", zap.Strings("keys", keys))
}

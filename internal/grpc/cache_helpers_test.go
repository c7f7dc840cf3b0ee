package grpc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/godilite/catalyst360/internal/grpc/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// blockingFetch returns a fetch that signals started on its first call and then
// waits for release before returning value.
func blockingFetch(value int) (fetch FetchFunc[int], started, release chan struct{}) {
	started = make(chan struct{})
	release = make(chan struct{})
	var once sync.Once
	fetch = func(ctx context.Context) (int, error) {
		once.Do(func() { close(started) })
		<-release
		return value, nil
	}
	return fetch, started, release
}

func waitFor(t *testing.T, ch chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatalf("%s did not happen", what)
	}
}

func TestFindAndCache_RefreshDroppedAfterInvalidate(t *testing.T) {
	ctx := context.Background()
	cache := mocks.NewTrackingCache()
	rt := &readThrough{cache: cache, ttl: time.Minute, logger: zap.NewNop()}
	const key = "grpc:leader_feedback:1"
	require.NoError(t, cache.Set(ctx, key, 1, time.Minute))

	// the refresh reads the pre-write value
	fetch, started, release := blockingFetch(1)

	v, err := FindAndCache(ctx, rt, key, fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	waitFor(t, started, "background refresh")
	rt.invalidate(ctx, key)
	assert.False(t, cache.Has(key))
	close(release)

	assert.Never(t, func() bool { return cache.Has(key) }, 300*time.Millisecond, 10*time.Millisecond)
}

func TestFindAndCache_MissDroppedAfterInvalidate(t *testing.T) {
	ctx := context.Background()
	cache := mocks.NewTrackingCache()
	rt := &readThrough{cache: cache, ttl: time.Minute, logger: zap.NewNop()}
	const key = "grpc:development_categories:1"

	fetch, started, release := blockingFetch(1)

	done := make(chan int, 1)
	go func() {
		v, _ := FindAndCache(ctx, rt, key, fetch)
		done <- v
	}()

	waitFor(t, started, "fetch")
	rt.invalidate(ctx, key)
	close(release)
	assert.Equal(t, 1, <-done)

	assert.Never(t, func() bool { return cache.Has(key) }, 300*time.Millisecond, 10*time.Millisecond)

	// reads that start after the invalidation are cached again
	v, err := FindAndCache(ctx, rt, key, func(ctx context.Context) (int, error) { return 2, nil })
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Eventually(t, func() bool { return cache.Has(key) }, time.Second, 10*time.Millisecond)

	var cached int
	require.NoError(t, cache.Get(ctx, key, &cached))
	assert.Equal(t, 2, cached)
}

func TestFindAndCache_NilCacheBypasses(t *testing.T) {
	rt := &readThrough{logger: zap.NewNop()}
	calls := 0
	for i := 0; i < 2; i++ {
		v, err := FindAndCache(context.Background(), rt, "k", func(ctx context.Context) (int, error) {
			calls++
			return 7, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	}
	assert.Equal(t, 2, calls)
	rt.invalidate(context.Background(), "k")
}

func TestFindAndCache_FetchErrorIsNotCached(t *testing.T) {
	cache := mocks.NewTrackingCache()
	rt := &readThrough{cache: cache, ttl: time.Minute, logger: zap.NewNop()}

	_, err := FindAndCache(context.Background(), rt, "k", func(ctx context.Context) (int, error) {
		return 0, errors.New("boom")
	})
	assert.EqualError(t, err, "boom")
	assert.Never(t, func() bool { return cache.Has("k") }, 100*time.Millisecond, 10*time.Millisecond)
}

func TestAddTTLJitter(t *testing.T) {
	for i := 0; i < 50; i++ {
		ttl := addTTLJitter(time.Minute)
		assert.GreaterOrEqual(t, ttl, 45*time.Second)
		assert.LessOrEqual(t, ttl, 75*time.Second)
	}
	for i := 0; i < 50; i++ {
		assert.Greater(t, addTTLJitter(5*time.Second), time.Duration(0))
	}
	assert.Equal(t, time.Duration(0), addTTLJitter(0))
}

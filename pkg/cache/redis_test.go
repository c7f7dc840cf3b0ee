package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNop(t *testing.T) {
	ctx := context.Background()
	var c Nop

	var dest map[string]int
	assert.ErrorIs(t, c.Get(ctx, "k", &dest), redis.Nil)
	assert.NoError(t, c.Set(ctx, "k", 1, time.Minute))
	assert.NoError(t, c.Delete(ctx, "k", "j"))
	assert.NoError(t, c.Close())
}

func TestKeyPrefix(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	assert.Equal(t, "catalyst360:grpc:report:1", NewWithClient(client, "catalyst360:").key("grpc:report:1"))
	assert.Equal(t, "grpc:report:1", NewWithClient(client, "").key("grpc:report:1"))
}

func TestDeleteNoKeys(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	assert.NoError(t, NewWithClient(client, "").Delete(context.Background()))
}

func TestNewUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := New(ctx, WithAddress("127.0.0.1:1"))
	assert.Error(t, err)
}

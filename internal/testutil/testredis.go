package testutil

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type TestRedis struct {
	Container testcontainers.Container
	Client    *redis.Client
}

func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	ctx := context.Background()

	redisContainer, err := tcredis.Run(ctx, "redis:7")
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}

	uri, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	opts, err := redis.ParseURL(uri)
	if err != nil {
		t.Fatalf("failed to parse redis URL: %v", err)
	}

	return &TestRedis{
		Container: redisContainer,
		Client:    redis.NewClient(opts),
	}
}

func (tr *TestRedis) TeardownTestRedis(t *testing.T) {
	t.Helper()

	if err := tr.Client.Close(); err != nil {
		t.Logf("failed to close redis client: %v", err)
	}

	if err := tr.Container.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

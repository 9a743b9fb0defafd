package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

const (
	DefaultEndpointTTL = 5 * time.Minute
	keyPrefix          = "calendar-notify:endpoints:"
)

// CachedEndpointDirectory serves user endpoints from redis and falls back to
// the wrapped directory on a miss or a redis error. Calendar membership is
// never cached.
type CachedEndpointDirectory struct {
	next   domain.EndpointDirectory
	client redis.UniversalClient
	ttl    time.Duration
}

func NewCachedEndpointDirectory(next domain.EndpointDirectory, client redis.UniversalClient, ttl time.Duration) *CachedEndpointDirectory {
	if ttl <= 0 {
		ttl = DefaultEndpointTTL
	}

	return &CachedEndpointDirectory{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

func endpointKey(userID domain.UserID) string {
	return keyPrefix + userID.String()
}

func (c *CachedEndpointDirectory) CalendarMembers(ctx context.Context, calendarID domain.CalendarID) ([]domain.UserID, error) {
	return c.next.CalendarMembers(ctx, calendarID)
}

func (c *CachedEndpointDirectory) UserEndpoints(ctx context.Context, userID domain.UserID) ([]domain.Endpoint, error) {
	key := endpointKey(userID)

	raw, err := c.client.Get(ctx, key).Bytes()

	switch {
	case err == nil:
		endpoints, decodeErr := decodeEndpoints(raw)
		if decodeErr == nil {
			slog.DebugContext(ctx, "user endpoints served from cache",
				"user_id", userID.String(),
				"count", len(endpoints),
			)

			return endpoints, nil
		}

		slog.WarnContext(ctx, "discarding undecodable cache entry",
			"user_id", userID.String(),
			"error", decodeErr,
		)
	case errors.Is(err, redis.Nil):
	default:
		slog.WarnContext(ctx, "endpoint cache unavailable",
			"user_id", userID.String(),
			"error", err,
		)
	}

	endpoints, err := c.next.UserEndpoints(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := c.store(ctx, key, endpoints); err != nil {
		slog.WarnContext(ctx, "failed to cache user endpoints",
			"user_id", userID.String(),
			"error", err,
		)
	}

	return endpoints, nil
}

func (c *CachedEndpointDirectory) ReportInvalidEndpoints(ctx context.Context, endpoints []domain.Endpoint) error {
	return c.next.ReportInvalidEndpoints(ctx, endpoints)
}

func (c *CachedEndpointDirectory) store(ctx context.Context, key string, endpoints []domain.Endpoint) error {
	tokens := make([]string, len(endpoints))
	for i, e := range endpoints {
		tokens[i] = e.String()
	}

	raw, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("failed to encode endpoints: %w", err)
	}

	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

func decodeEndpoints(raw []byte) ([]domain.Endpoint, error) {
	var tokens []string
	if err := json.Unmarshal(raw, &tokens); err != nil {
		return nil, err
	}

	endpoints := make([]domain.Endpoint, 0, len(tokens))
	for _, token := range tokens {
		e, err := domain.NewEndpoint(token)
		if err != nil {
			return nil, err
		}

		endpoints = append(endpoints, e)
	}

	return endpoints, nil
}

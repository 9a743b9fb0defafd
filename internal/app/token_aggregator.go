package app

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

const DefaultAggregatorConcurrency = 8

// LookupError records a recipient whose endpoints could not be read.
type LookupError struct {
	UserID domain.UserID
	Err    error
}

type AggregateReport struct {
	Failures []LookupError
}

func (r AggregateReport) FailedCount() int {
	return len(r.Failures)
}

type TokenAggregator struct {
	directory   domain.EndpointDirectory
	concurrency int
}

func NewTokenAggregator(directory domain.EndpointDirectory, concurrency int) *TokenAggregator {
	if concurrency <= 0 {
		concurrency = DefaultAggregatorConcurrency
	}

	return &TokenAggregator{
		directory:   directory,
		concurrency: concurrency,
	}
}

// Aggregate unions the endpoints of every recipient. A failed lookup skips
// that recipient only.
func (a *TokenAggregator) Aggregate(ctx context.Context, recipients domain.UserSet) (domain.EndpointSet, AggregateReport) {
	endpoints := domain.NewEndpointSet()

	var (
		mu     sync.Mutex
		report AggregateReport
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for _, userID := range recipients.Slice() {
		g.Go(func() error {
			userEndpoints, err := a.directory.UserEndpoints(gctx, userID)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				slog.WarnContext(ctx, "skipping recipient after endpoint lookup failure",
					"user_id", userID.String(),
					"error", err,
				)

				report.Failures = append(report.Failures, LookupError{UserID: userID, Err: err})

				return nil
			}

			endpoints.AddAll(userEndpoints)

			return nil
		})
	}

	_ = g.Wait()

	slog.DebugContext(ctx, "endpoints aggregated",
		"recipient_count", recipients.Count(),
		"endpoint_count", endpoints.Count(),
		"failed_count", report.FailedCount(),
	)

	return endpoints, report
}

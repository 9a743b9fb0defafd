//go:build !gcloud

package metrics

import "context"

func NewProvider(_ context.Context, cfg Config) (*Provider, error) {
	return newRecordOnlyProvider(cfg), nil
}

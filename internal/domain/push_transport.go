package domain

import "context"

//go:generate mockgen -source=push_transport.go -destination=push_transport_mock.go -package=domain

type PushTransport interface {
	// SendMulticast makes one transport request for all endpoints. An error is
	// returned only when the request itself failed; per-endpoint failures are
	// reported in the results.
	SendMulticast(ctx context.Context, msg MulticastMessage) ([]EndpointResult, error)
}

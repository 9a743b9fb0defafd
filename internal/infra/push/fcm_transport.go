package push

import (
	"context"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

// MaxMulticastTokens is the FCM limit on tokens per multicast request.
const MaxMulticastTokens = 500

// MulticastClient is the subset of the FCM client the transport uses.
type MulticastClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
	SendEachForMulticastDryRun(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type FCMConfig struct {
	ProjectID       string
	CredentialsFile string
	DryRun          bool
}

type FCMTransport struct {
	client MulticastClient
	dryRun bool
}

func NewFCMTransport(ctx context.Context, cfg FCMConfig) (*FCMTransport, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	fbApp, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := fbApp.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging client: %w", err)
	}

	return NewFCMTransportWithClient(client, cfg.DryRun), nil
}

func NewFCMTransportWithClient(client MulticastClient, dryRun bool) *FCMTransport {
	return &FCMTransport{
		client: client,
		dryRun: dryRun,
	}
}

func (t *FCMTransport) SendMulticast(ctx context.Context, msg domain.MulticastMessage) ([]domain.EndpointResult, error) {
	if len(msg.Endpoints) == 0 {
		return nil, nil
	}

	if len(msg.Endpoints) > MaxMulticastTokens {
		return nil, fmt.Errorf("multicast of %d endpoints exceeds limit of %d", len(msg.Endpoints), MaxMulticastTokens)
	}

	tokens := make([]string, len(msg.Endpoints))
	for i, e := range msg.Endpoints {
		tokens[i] = e.String()
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	send := t.client.SendEachForMulticast
	if t.dryRun {
		send = t.client.SendEachForMulticastDryRun
	}

	resp, err := send(ctx, message)
	if err != nil {
		slog.ErrorContext(ctx, "fcm multicast request failed",
			"endpoint_count", len(tokens),
			"error", err,
		)

		return nil, fmt.Errorf("failed to send multicast: %w", err)
	}

	results := toResults(msg.Endpoints, resp)

	slog.DebugContext(ctx, "fcm multicast sent",
		"endpoint_count", len(tokens),
		"success_count", resp.SuccessCount,
		"failure_count", resp.FailureCount,
		"dry_run", t.dryRun,
	)

	return results, nil
}

// toResults pairs responses with endpoints by position, as FCM returns them in
// request order.
func toResults(endpoints []domain.Endpoint, resp *messaging.BatchResponse) []domain.EndpointResult {
	results := make([]domain.EndpointResult, len(endpoints))

	for i, e := range endpoints {
		results[i] = domain.EndpointResult{Endpoint: e, Status: domain.SendRejected}

		if resp == nil || i >= len(resp.Responses) || resp.Responses[i] == nil {
			results[i].Err = fmt.Errorf("no response for endpoint")

			continue
		}

		r := resp.Responses[i]
		switch {
		case r.Success:
			results[i].Status = domain.SendAccepted
			results[i].MessageID = r.MessageID
		case isInvalidToken(r.Error):
			results[i].Status = domain.SendEndpointInvalid
			results[i].Err = r.Error
		default:
			results[i].Err = r.Error
		}
	}

	return results
}

// isInvalidToken reports errors that belong to the token itself. INVALID_ARGUMENT
// is left out since FCM also returns it for message-level faults such as an
// oversized payload, which would mark every endpoint of the dispatch.
func isInvalidToken(err error) bool {
	if err == nil {
		return false
	}

	return messaging.IsUnregistered(err) || messaging.IsSenderIDMismatch(err)
}

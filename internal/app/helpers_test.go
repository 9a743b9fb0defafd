package app_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

func userID(t *testing.T, s string) domain.UserID {
	t.Helper()

	id, err := domain.UserIDFromString(s)
	require.NoError(t, err)

	return id
}

func userIDs(t *testing.T, ss ...string) []domain.UserID {
	t.Helper()

	ids := make([]domain.UserID, len(ss))
	for i, s := range ss {
		ids[i] = userID(t, s)
	}

	return ids
}

func calendarID(t *testing.T, s string) domain.CalendarID {
	t.Helper()

	id, err := domain.CalendarIDFromString(s)
	require.NoError(t, err)

	return id
}

func eventID(t *testing.T, s string) domain.EventID {
	t.Helper()

	id, err := domain.EventIDFromString(s)
	require.NoError(t, err)

	return id
}

func endpoints(t *testing.T, tokens ...string) []domain.Endpoint {
	t.Helper()

	out := make([]domain.Endpoint, len(tokens))
	for i, token := range tokens {
		e, err := domain.NewEndpoint(token)
		require.NoError(t, err)

		out[i] = e
	}

	return out
}

func acceptAll(msg domain.MulticastMessage) []domain.EndpointResult {
	results := make([]domain.EndpointResult, len(msg.Endpoints))
	for i, e := range msg.Endpoints {
		results[i] = domain.EndpointResult{Endpoint: e, Status: domain.SendAccepted, MessageID: "msg-" + e.String()}
	}

	return results
}

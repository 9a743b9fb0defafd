package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

func TestDispatchReportCounts(t *testing.T) {
	tA := mustEndpoint(t, "tA")
	tB := mustEndpoint(t, "tB")
	tC := mustEndpoint(t, "tC")

	report := domain.NewDispatchReport([]domain.EndpointResult{
		{Endpoint: tA, Status: domain.SendAccepted, MessageID: "m1"},
		{Endpoint: tB, Status: domain.SendEndpointInvalid, Err: errors.New("unregistered")},
		{Endpoint: tC, Status: domain.SendRejected, Err: errors.New("quota")},
	})

	assert.False(t, report.IsEmpty())
	assert.Equal(t, 1, report.AcceptedCount())
	assert.Equal(t, 1, report.RejectedCount())
	assert.Equal(t, []domain.Endpoint{tB}, report.InvalidEndpoints())
}

func TestDispatchReportEmpty(t *testing.T) {
	report := domain.DispatchReport{}

	assert.True(t, report.IsEmpty())
	assert.Zero(t, report.AcceptedCount())
	assert.Nil(t, report.InvalidEndpoints())
}

package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-calendar-notify/internal/app"
	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
	"github.com/KasumiMercury/primind-calendar-notify/internal/infra/handler"
	"github.com/KasumiMercury/primind-calendar-notify/internal/infra/repository"
	"github.com/KasumiMercury/primind-calendar-notify/internal/testutil"
)

func setupChangeRouter(t *testing.T, useCase app.ChangeNotificationUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := handler.NewChangeHandler(useCase)

	router := gin.New()
	api := router.Group("/api/v1")
	h.RegisterRoutes(api)

	return router
}

func TestNotifyChangeHandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	useCase := app.NewMockChangeNotificationUseCase(ctrl)

	useCase.EXPECT().
		HandleChange(gomock.Any(), app.ChangeInput{
			Kind:       "updated",
			CalendarID: "cal-1",
			EventID:    "ev-7",
			Before:     &app.EventSnapshotInput{Title: "Old", OwnerID: "u1"},
			After:      &app.EventSnapshotInput{Title: "New", OwnerID: "u1"},
		}).
		Return(app.ChangeOutput{
			Outcome:        app.OutcomeDispatched,
			Action:         "updated",
			RecipientCount: 2,
			EndpointCount:  3,
			AcceptedCount:  3,
		}, nil)

	router := setupChangeRouter(t, useCase)

	rec := postJSON(router, http.MethodPost, "/api/v1/calendars/cal-1/events/ev-7/changes", map[string]any{
		"kind":   "updated",
		"before": map[string]string{"title": "Old", "owner_id": "u1"},
		"after":  map[string]string{"title": "New", "owner_id": "u1"},
	})

	require.Equal(t, http.StatusAccepted, rec.Code)

	var response handler.ChangeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.Equal(t, "dispatched", response.Outcome)
	assert.Equal(t, "updated", response.Action)
	assert.Equal(t, 2, response.RecipientCount)
	assert.Equal(t, 3, response.EndpointCount)
	assert.Equal(t, 3, response.AcceptedCount)
}

func TestNotifyChangeHandlerSnapshotWithoutOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	useCase := app.NewMockChangeNotificationUseCase(ctrl)

	useCase.EXPECT().
		HandleChange(gomock.Any(), app.ChangeInput{
			Kind:       "created",
			CalendarID: "cal-1",
			EventID:    "ev-1",
			After:      &app.EventSnapshotInput{Title: "Legacy"},
		}).
		Return(app.ChangeOutput{
			Outcome:        app.OutcomeDispatched,
			Action:         "created",
			RecipientCount: 2,
		}, nil)

	router := setupChangeRouter(t, useCase)

	rec := postJSON(router, http.MethodPost, "/api/v1/calendars/cal-1/events/ev-1/changes", map[string]any{
		"kind":  "created",
		"after": map[string]string{"title": "Legacy"},
	})

	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestNotifyChangeHandlerError(t *testing.T) {
	tests := []struct {
		name          string
		body          any
		setup         func(m *app.MockChangeNotificationUseCase)
		expectedField string
	}{
		{
			name:  "malformed json",
			body:  "not json",
			setup: func(m *app.MockChangeNotificationUseCase) {},
		},
		{
			name:  "unknown kind",
			body:  map[string]any{"kind": "archived"},
			setup: func(m *app.MockChangeNotificationUseCase) {},
		},
		{
			name: "missing after image reported by use case",
			body: map[string]any{"kind": "created"},
			setup: func(m *app.MockChangeNotificationUseCase) {
				m.EXPECT().
					HandleChange(gomock.Any(), gomock.Any()).
					Return(app.ChangeOutput{}, app.NewValidationError("snapshot", domain.ErrMissingSnapshot.Error()))
			},
			expectedField: "snapshot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			useCase := app.NewMockChangeNotificationUseCase(ctrl)
			tt.setup(useCase)

			router := setupChangeRouter(t, useCase)

			rec := postJSON(router, http.MethodPost, "/api/v1/calendars/cal-1/events/ev-1/changes", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var response handler.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "validation_error", response.Error)
			assert.Equal(t, tt.expectedField, response.Field)
		})
	}
}

func TestNotifyChangeHandlerIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	testDB.SeedCalendar(t, "cal-team", "alice", "bob", "carol")
	testDB.SeedUser(t, "alice", "tok-a")
	testDB.SeedUser(t, "bob", "tok-b1", "tok-b2")
	testDB.SeedUser(t, "carol", "tok-b2", "tok-c")

	ctrl := gomock.NewController(t)
	transport := domain.NewMockPushTransport(ctrl)

	transport.EXPECT().
		SendMulticast(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg domain.MulticastMessage) ([]domain.EndpointResult, error) {
			assert.Equal(t, domain.TitleEventCreated, msg.Title)
			assert.Equal(t, "Kickoff", msg.Body)
			assert.Equal(t, "cal-team", msg.Data[domain.DataKeyCalendarID])
			assert.Equal(t, "created", msg.Data[domain.DataKeyAction])

			results := make([]domain.EndpointResult, 0, len(msg.Endpoints))
			for _, ep := range msg.Endpoints {
				results = append(results, domain.EndpointResult{Endpoint: ep, Status: domain.SendAccepted})
			}

			return results, nil
		})

	directory := repository.NewEndpointDirectory(testDB.DB)
	useCase := app.NewChangeNotificationUseCase(
		app.NewRecipientResolver(directory),
		app.NewTokenAggregator(directory, app.DefaultAggregatorConcurrency),
		app.NewFanOutDispatcher(transport, directory, nil),
	)

	router := setupChangeRouter(t, useCase)

	rec := postJSON(router, http.MethodPost, "/api/v1/calendars/cal-team/events/ev-1/changes", map[string]any{
		"kind":  "created",
		"after": map[string]string{"title": "Kickoff", "owner_id": "alice"},
	})

	require.Equal(t, http.StatusAccepted, rec.Code)

	var response handler.ChangeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.Equal(t, "dispatched", response.Outcome)
	assert.Equal(t, 2, response.RecipientCount)
	assert.Equal(t, 3, response.EndpointCount)
	assert.Equal(t, 3, response.AcceptedCount)
}

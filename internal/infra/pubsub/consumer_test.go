package pubsub_test

import (
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-calendar-notify/internal/app"
	"github.com/KasumiMercury/primind-calendar-notify/internal/infra/pubsub"
)

func TestChangeConsumerHandleSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	useCase := app.NewMockChangeNotificationUseCase(ctrl)

	useCase.EXPECT().
		HandleChange(gomock.Any(), app.ChangeInput{
			Kind:       "created",
			CalendarID: "cal-1",
			EventID:    "ev-1",
			After:      &app.EventSnapshotInput{Title: "Standup", OwnerID: "u1"},
		}).
		Return(app.ChangeOutput{Outcome: app.OutcomeDispatched, EndpointCount: 2}, nil)

	consumer := pubsub.NewChangeConsumer(useCase)

	msg := message.NewMessage(watermill.NewUUID(), []byte(
		`{"kind":"created","calendar_id":"cal-1","event_id":"ev-1","after":{"title":"Standup","owner_id":"u1"}}`,
	))

	assert.NoError(t, consumer.Handle(msg))
}

func TestChangeConsumerHandleDropsUnprocessable(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		setup   func(m *app.MockChangeNotificationUseCase)
	}{
		{
			name:    "malformed payload never reaches use case",
			payload: "{",
			setup:   func(m *app.MockChangeNotificationUseCase) {},
		},
		{
			name:    "validation error is acknowledged",
			payload: `{"kind":"archived","calendar_id":"cal-1","event_id":"ev-1"}`,
			setup: func(m *app.MockChangeNotificationUseCase) {
				m.EXPECT().
					HandleChange(gomock.Any(), gomock.Any()).
					Return(app.ChangeOutput{}, app.NewValidationError("kind", "invalid mutation kind: archived"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			useCase := app.NewMockChangeNotificationUseCase(ctrl)
			tt.setup(useCase)

			consumer := pubsub.NewChangeConsumer(useCase)

			err := consumer.Handle(message.NewMessage(watermill.NewUUID(), []byte(tt.payload)))

			assert.NoError(t, err)
		})
	}
}

func TestChangeConsumerHandleError(t *testing.T) {
	ctrl := gomock.NewController(t)
	useCase := app.NewMockChangeNotificationUseCase(ctrl)

	useCase.EXPECT().
		HandleChange(gomock.Any(), gomock.Any()).
		Return(app.ChangeOutput{}, app.ErrInternalError)

	consumer := pubsub.NewChangeConsumer(useCase)

	err := consumer.Handle(message.NewMessage(watermill.NewUUID(), []byte(
		`{"kind":"deleted","calendar_id":"cal-1","event_id":"ev-1","before":{"title":"x","owner_id":"u1"}}`,
	)))

	require.Error(t, err)
	assert.True(t, errors.Is(err, app.ErrInternalError))
}

func TestRegisterChangeConsumerError(t *testing.T) {
	consumer := pubsub.NewChangeConsumer(nil)

	err := pubsub.RegisterChangeConsumer(nil, nil, consumer)

	assert.Error(t, err)
}

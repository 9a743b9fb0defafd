package pubsub_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-calendar-notify/internal/app"
	"github.com/KasumiMercury/primind-calendar-notify/internal/infra/pubsub"
)

func TestRouterDeliversChangeEventsToConsumer(t *testing.T) {
	ctrl := gomock.NewController(t)
	useCase := app.NewMockChangeNotificationUseCase(ctrl)

	handled := make(chan app.ChangeInput, 1)

	useCase.EXPECT().
		HandleChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input app.ChangeInput) (app.ChangeOutput, error) {
			handled <- input

			return app.ChangeOutput{Outcome: app.OutcomeSkippedNoRecipients}, nil
		})

	channel := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(slog.Default()))

	router, err := pubsub.NewRouter()
	require.NoError(t, err)

	require.NoError(t, pubsub.RegisterChangeConsumer(router, channel, pubsub.NewChangeConsumer(useCase)))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		_ = router.Run(ctx)
	}()

	defer router.Close()

	<-router.Running()

	msg := message.NewMessage(watermill.NewUUID(), []byte(
		`{"kind":"created","calendar_id":"cal-9","event_id":"ev-9","after":{"title":"Solo","owner_id":"u1"}}`,
	))
	require.NoError(t, channel.Publish(pubsub.TopicCalendarEventChanged, msg))

	select {
	case input := <-handled:
		require.Equal(t, "cal-9", input.CalendarID)
		require.Equal(t, "created", input.Kind)
	case <-ctx.Done():
		t.Fatal("change event was not consumed")
	}
}

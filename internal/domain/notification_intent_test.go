package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

func TestNewNotificationIntent(t *testing.T) {
	image := snapshot(t, "Birthday", "u1")

	tests := []struct {
		name          string
		mutation      domain.Mutation
		expectedTitle string
		expectedKind  string
	}{
		{
			name:          "created",
			mutation:      domain.Created{After: *image},
			expectedTitle: "Nuevo evento",
			expectedKind:  "created",
		},
		{
			name:          "updated",
			mutation:      domain.Updated{Before: *image, After: *image},
			expectedTitle: "Evento actualizado",
			expectedKind:  "updated",
		},
		{
			name:          "deleted",
			mutation:      domain.Deleted{Before: *image},
			expectedTitle: "Evento eliminado",
			expectedKind:  "deleted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calendarID, err := domain.CalendarIDFromString("cal1")
			require.NoError(t, err)
			eventID, err := domain.EventIDFromString("ev1")
			require.NoError(t, err)

			intent := domain.NewNotificationIntent(tt.mutation, calendarID, eventID)

			assert.Equal(t, tt.expectedTitle, intent.Title)
			assert.Equal(t, "Birthday", intent.Body)
			assert.Equal(t, map[string]string{
				"calendarId": "cal1",
				"eventId":    "ev1",
				"action":     tt.expectedKind,
			}, intent.Data())
		})
	}
}

func TestTitleForUnknownKind(t *testing.T) {
	assert.Empty(t, domain.TitleFor(domain.MutationKind("other")))
}

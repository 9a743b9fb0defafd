package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

func TestCalendarIDFromStringSuccess(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "document style id",
			input: "cal1",
		},
		{
			name:  "generated id",
			input: "Qx3b9LkZ0pW7aT1sVn2m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := domain.CalendarIDFromString(tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.input, id.String())
			assert.False(t, id.IsZero())
		})
	}
}

func TestIDFromStringError(t *testing.T) {
	_, err := domain.CalendarIDFromString("")
	assert.ErrorIs(t, err, domain.ErrInvalidCalendarID)

	_, err = domain.EventIDFromString("")
	assert.ErrorIs(t, err, domain.ErrInvalidEventID)

	_, err = domain.UserIDFromString("")
	assert.ErrorIs(t, err, domain.ErrInvalidUserID)
}

func TestUserIDEquals(t *testing.T) {
	a, _ := domain.UserIDFromString("u1")
	b, _ := domain.UserIDFromString("u1")
	c, _ := domain.UserIDFromString("u2")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.True(t, domain.UserID{}.IsZero())
}

func TestUserSet(t *testing.T) {
	u1, _ := domain.UserIDFromString("u1")
	u2, _ := domain.UserIDFromString("u2")

	set := domain.NewUserSet(u2, u1, u2, domain.UserID{})

	assert.Equal(t, 2, set.Count())
	assert.Equal(t, []domain.UserID{u1, u2}, set.Slice())

	set.Remove(u1)
	assert.False(t, set.Contains(u1))
	assert.True(t, set.Contains(u2))
}

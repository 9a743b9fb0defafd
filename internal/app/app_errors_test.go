package app_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KasumiMercury/primind-calendar-notify/internal/app"
)

func TestNewValidationErrorSuccess(t *testing.T) {
	tests := []struct {
		name          string
		field         string
		message       string
		expectedError string
	}{
		{
			name:          "kind validation error",
			field:         "kind",
			message:       "invalid mutation kind: archived",
			expectedError: "validation error: kind - invalid mutation kind: archived",
		},
		{
			name:          "nested snapshot field",
			field:         "after.owner_id",
			message:       "invalid user ID: must not be empty",
			expectedError: "validation error: after.owner_id - invalid user ID: must not be empty",
		},
		{
			name:          "fire time validation error",
			field:         "fire_time",
			message:       "fire time must be set",
			expectedError: "validation error: fire_time - fire time must be set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := app.NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.field, err.Field)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.expectedError, err.Error())
			assert.ErrorIs(t, err, app.ErrValidation)
		})
	}
}

func TestIsValidationErrorSuccess(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "is ValidationError",
			err:      app.NewValidationError("field", "message"),
			expected: true,
		},
		{
			name:     "wrapped ValidationError",
			err:      fmt.Errorf("wrapped: %w", app.NewValidationError("field", "message")),
			expected: true,
		},
		{
			name:     "not ValidationError - generic error",
			err:      errors.New("generic error"),
			expected: false,
		},
		{
			name:     "not ValidationError - nil",
			err:      nil,
			expected: false,
		},
		{
			name:     "not ValidationError - scheduling failure",
			err:      fmt.Errorf("%w: %v", app.ErrSchedulingFailure, errors.New("boom")),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, app.IsValidationError(tt.err))
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		app.ErrValidation,
		app.ErrInternalError,
		app.ErrLookupFailure,
		app.ErrTransportFailure,
		app.ErrSchedulingFailure,
		app.ErrPresentationFailure,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}

			assert.NotErrorIs(t, a, b)
		}
	}
}

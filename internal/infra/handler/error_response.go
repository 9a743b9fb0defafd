package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-calendar-notify/internal/app"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func bindError(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "request validation failed",
		"error", err,
		"path", c.Request.URL.Path,
	)

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
		Field:   "",
	})
}

func handleError(c *gin.Context, err error) {
	var validationErr *app.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})

		return
	}

	if errors.Is(err, app.ErrSchedulingFailure) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "scheduling_failed",
			Message: "Error programando alarma: " + err.Error(),
			Field:   "",
		})

		return
	}

	slog.ErrorContext(c.Request.Context(), "unhandled error",
		"error", err,
		"path", c.Request.URL.Path,
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "an internal error occurred",
		Field:   "",
	})
}

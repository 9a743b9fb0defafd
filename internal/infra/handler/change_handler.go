package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-calendar-notify/internal/app"
)

type ChangeHandler struct {
	useCase app.ChangeNotificationUseCase
}

func NewChangeHandler(useCase app.ChangeNotificationUseCase) *ChangeHandler {
	return &ChangeHandler{
		useCase: useCase,
	}
}

func (h *ChangeHandler) NotifyChange(c *gin.Context) {
	var req ChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	input := app.ChangeInput{
		Kind:       req.Kind,
		CalendarID: c.Param("calendarId"),
		EventID:    c.Param("eventId"),
		Before:     toSnapshotInput(req.Before),
		After:      toSnapshotInput(req.After),
	}

	output, err := h.useCase.HandleChange(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusAccepted, FromChangeOutput(output))
}

func toSnapshotInput(req *EventSnapshotRequest) *app.EventSnapshotInput {
	if req == nil {
		return nil
	}

	return &app.EventSnapshotInput{
		Title:   req.Title,
		OwnerID: req.OwnerID,
	}
}

func (h *ChangeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/calendars/:calendarId/events/:eventId/changes", h.NotifyChange)
}

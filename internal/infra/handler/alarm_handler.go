package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-calendar-notify/internal/app"
)

// IdleController toggles the low-power state of the timer facility.
type IdleController interface {
	SetIdle(idle bool)
	IsIdle() bool
}

type AlarmHandler struct {
	useCase app.AlarmUseCase
	idle    IdleController
}

// NewAlarmHandler builds the handler. idle may be nil, in which case the idle
// routes are not registered.
func NewAlarmHandler(useCase app.AlarmUseCase, idle IdleController) *AlarmHandler {
	return &AlarmHandler{
		useCase: useCase,
		idle:    idle,
	}
}

func (h *AlarmHandler) ScheduleAlarm(c *gin.Context) {
	var req ScheduleAlarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.ScheduleAlarm(c.Request.Context(), app.ScheduleAlarmInput{
		FireTimeMillis: *req.FireTime,
		EventText:      req.EventText,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusCreated, FromScheduleAlarmOutput(output))
}

func (h *AlarmHandler) GetIdle(c *gin.Context) {
	c.JSON(http.StatusOK, IdleResponse{Idle: h.idle.IsIdle()})
}

func (h *AlarmHandler) SetIdle(c *gin.Context) {
	var req SetIdleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	h.idle.SetIdle(*req.Idle)

	slog.InfoContext(c.Request.Context(), "alarm idle state set",
		"idle", *req.Idle,
	)

	c.JSON(http.StatusOK, IdleResponse{Idle: h.idle.IsIdle()})
}

func (h *AlarmHandler) RegisterRoutes(router *gin.RouterGroup) {
	alarms := router.Group("/alarms")
	{
		alarms.POST("", h.ScheduleAlarm)

		if h.idle != nil {
			alarms.GET("/idle", h.GetIdle)
			alarms.PUT("/idle", h.SetIdle)
		}
	}
}

package handler

import (
	"time"

	"github.com/KasumiMercury/primind-calendar-notify/internal/app"
)

type ScheduleAlarmResponse struct {
	Message  string    `json:"message"`
	Key      int64     `json:"key"`
	FireTime time.Time `json:"fire_time"`
	Tier     string    `json:"tier"`
}

type IdleResponse struct {
	Idle bool `json:"idle"`
}

func FromScheduleAlarmOutput(output app.ScheduleAlarmOutput) ScheduleAlarmResponse {
	return ScheduleAlarmResponse{
		Message:  output.Message,
		Key:      output.Key,
		FireTime: output.FireTime,
		Tier:     output.Tier,
	}
}

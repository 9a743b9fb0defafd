package app

import (
	"time"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

const AlarmScheduledMessage = "Alarma programada exitosamente"

type ScheduleAlarmOutput struct {
	Message  string
	Key      int64
	FireTime time.Time
	Tier     string
}

func FromHandle(handle domain.RegistrationHandle) ScheduleAlarmOutput {
	return ScheduleAlarmOutput{
		Message:  AlarmScheduledMessage,
		Key:      int64(handle.Key),
		FireTime: handle.FireTime,
		Tier:     string(handle.Tier),
	}
}

package app

import "context"

//go:generate mockgen -source=alarm_usecase.go -destination=alarm_usecase_mock.go -package=app

type AlarmUseCase interface {
	// ScheduleAlarm registers an exact wake for the fire time. Scheduling the
	// same fire time again replaces the earlier registration.
	ScheduleAlarm(ctx context.Context, input ScheduleAlarmInput) (ScheduleAlarmOutput, error)
	// HandleAlarmFired is invoked by the timer facility when a wake is due.
	HandleAlarmFired(ctx context.Context, payload string)
}

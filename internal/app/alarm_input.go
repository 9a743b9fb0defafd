package app

type ScheduleAlarmInput struct {
	FireTimeMillis int64
	EventText      string
}

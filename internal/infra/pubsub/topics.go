package pubsub

const (
	TopicCalendarEventChanged = "calendar.event.changed"
	TopicAlarmAlert           = "alarm.alert"

	StreamName = "CALENDAR_NOTIFY_EVENTS"
)

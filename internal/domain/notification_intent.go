package domain

const (
	TitleEventCreated = "Nuevo evento"
	TitleEventUpdated = "Evento actualizado"
	TitleEventDeleted = "Evento eliminado"
)

const (
	DataKeyCalendarID = "calendarId"
	DataKeyEventID    = "eventId"
	DataKeyAction     = "action"
)

// NotificationIntent is built once per mutation and consumed by a single dispatch.
type NotificationIntent struct {
	Title      string
	Body       string
	Kind       MutationKind
	CalendarID CalendarID
	EventID    EventID
}

func NewNotificationIntent(m Mutation, calendarID CalendarID, eventID EventID) NotificationIntent {
	return NotificationIntent{
		Title:      TitleFor(m.Kind()),
		Body:       m.Subject().Title,
		Kind:       m.Kind(),
		CalendarID: calendarID,
		EventID:    eventID,
	}
}

func TitleFor(kind MutationKind) string {
	switch kind {
	case MutationCreated:
		return TitleEventCreated
	case MutationUpdated:
		return TitleEventUpdated
	case MutationDeleted:
		return TitleEventDeleted
	default:
		return ""
	}
}

// Data is the deep-link payload attached to every push.
func (i NotificationIntent) Data() map[string]string {
	return map[string]string{
		DataKeyCalendarID: i.CalendarID.String(),
		DataKeyEventID:    i.EventID.String(),
		DataKeyAction:     string(i.Kind),
	}
}

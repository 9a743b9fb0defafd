package app

type EventSnapshotInput struct {
	Title   string
	OwnerID string
}

// ChangeInput is one document mutation on calendars/{CalendarID}/events/{EventID}.
type ChangeInput struct {
	Kind       string
	CalendarID string
	EventID    string
	Before     *EventSnapshotInput
	After      *EventSnapshotInput
}

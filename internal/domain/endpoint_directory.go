package domain

import "context"

//go:generate mockgen -source=endpoint_directory.go -destination=endpoint_directory_mock.go -package=domain

// EndpointDirectory reads the membership and device-token mappings kept by the
// external store.
type EndpointDirectory interface {
	// CalendarMembers returns ErrCalendarNotFound when the calendar snapshot
	// does not exist.
	CalendarMembers(ctx context.Context, calendarID CalendarID) ([]UserID, error)
	// UserEndpoints returns ErrUserNotFound when the user document does not exist.
	UserEndpoints(ctx context.Context, userID UserID) ([]Endpoint, error)
	// ReportInvalidEndpoints flags endpoints the transport rejected as invalid
	// so they can be pruned later.
	ReportInvalidEndpoints(ctx context.Context, endpoints []Endpoint) error
}

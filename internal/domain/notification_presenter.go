package domain

import "context"

//go:generate mockgen -source=notification_presenter.go -destination=notification_presenter_mock.go -package=domain

type NotificationPresenter interface {
	// EnsureChannel creates the channel if it does not exist yet. Safe for
	// concurrent callers.
	EnsureChannel(ctx context.Context, channel NotificationChannel) error
	// Present shows the alert under slot, replacing whatever the slot held.
	Present(ctx context.Context, slot int, alert Alert) error
}

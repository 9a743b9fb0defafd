package app

import "context"

//go:generate mockgen -source=change_usecase.go -destination=change_usecase_mock.go -package=app

type ChangeNotificationUseCase interface {
	// HandleChange runs the fan-out pipeline for one mutation. Only validation
	// errors are returned; delivery failures are logged and reflected in the
	// output.
	HandleChange(ctx context.Context, input ChangeInput) (ChangeOutput, error)
}

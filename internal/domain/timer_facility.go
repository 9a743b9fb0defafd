package domain

import "context"

//go:generate mockgen -source=timer_facility.go -destination=timer_facility_mock.go -package=domain

// TimerFacility registers exact wake-ups with the host scheduler.
type TimerFacility interface {
	// SupportsIdleBypass reports whether wakes may be delivered while the
	// host is idle.
	SupportsIdleBypass() bool
	// RegisterExactWake replaces any live registration with the same key.
	RegisterExactWake(ctx context.Context, reg AlarmRegistration, allowWhileIdle bool) error
}

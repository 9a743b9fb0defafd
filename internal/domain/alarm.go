package domain

import (
	"errors"
	"time"
)

var ErrInvalidFireTime = errors.New("fire time must be set")

const DefaultAlarmPayload = "Evento"

// RegistrationKey identifies a live alarm. It is derived from the fire time so
// that scheduling the same instant twice replaces the earlier registration.
type RegistrationKey int64

func RegistrationKeyFor(fireTime time.Time) RegistrationKey {
	return RegistrationKey(fireTime.UnixMilli())
}

type AlarmRegistration struct {
	key      RegistrationKey
	fireTime time.Time
	payload  string
}

func NewAlarmRegistration(fireTime time.Time, payload string) (AlarmRegistration, error) {
	if fireTime.IsZero() {
		return AlarmRegistration{}, ErrInvalidFireTime
	}

	if payload == "" {
		payload = DefaultAlarmPayload
	}

	fireTime = time.UnixMilli(fireTime.UnixMilli())

	return AlarmRegistration{
		key:      RegistrationKeyFor(fireTime),
		fireTime: fireTime,
		payload:  payload,
	}, nil
}

// AlarmRegistrationFromMillis accepts any epoch value. Instants at or before
// the epoch are past fire times and fire as soon as they are registered.
func AlarmRegistrationFromMillis(epochMillis int64, payload string) (AlarmRegistration, error) {
	return NewAlarmRegistration(time.UnixMilli(epochMillis), payload)
}

func (a AlarmRegistration) Key() RegistrationKey {
	return a.key
}

func (a AlarmRegistration) FireTime() time.Time {
	return a.fireTime
}

func (a AlarmRegistration) Payload() string {
	return a.payload
}

// TimerTier is the capability tier a wake was registered with.
type TimerTier string

const (
	TierExactAllowWhileIdle TimerTier = "exact_allow_while_idle"
	TierExact               TimerTier = "exact"
)

func TierFor(allowWhileIdle bool) TimerTier {
	if allowWhileIdle {
		return TierExactAllowWhileIdle
	}

	return TierExact
}

type RegistrationHandle struct {
	Key      RegistrationKey
	FireTime time.Time
	Tier     TimerTier
}

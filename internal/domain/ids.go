package domain

import "errors"

var (
	ErrInvalidCalendarID = errors.New("invalid calendar ID: must not be empty")
	ErrInvalidEventID    = errors.New("invalid event ID: must not be empty")
	ErrInvalidUserID     = errors.New("invalid user ID: must not be empty")
)

// CalendarID identifies a shared calendar document in the external store.
type CalendarID struct {
	value string
}

func CalendarIDFromString(s string) (CalendarID, error) {
	if s == "" {
		return CalendarID{}, ErrInvalidCalendarID
	}

	return CalendarID{value: s}, nil
}

func (c CalendarID) String() string {
	return c.value
}

func (c CalendarID) IsZero() bool {
	return c.value == ""
}

func (c CalendarID) Equals(other CalendarID) bool {
	return c.value == other.value
}

type EventID struct {
	value string
}

func EventIDFromString(s string) (EventID, error) {
	if s == "" {
		return EventID{}, ErrInvalidEventID
	}

	return EventID{value: s}, nil
}

func (e EventID) String() string {
	return e.value
}

func (e EventID) IsZero() bool {
	return e.value == ""
}

func (e EventID) Equals(other EventID) bool {
	return e.value == other.value
}

type UserID struct {
	value string
}

func UserIDFromString(s string) (UserID, error) {
	if s == "" {
		return UserID{}, ErrInvalidUserID
	}

	return UserID{value: s}, nil
}

func (u UserID) String() string {
	return u.value
}

func (u UserID) IsZero() bool {
	return u.value == ""
}

func (u UserID) Equals(other UserID) bool {
	return u.value == other.value
}

package domain

import "errors"

var (
	ErrCalendarNotFound = errors.New("calendar not found")
	ErrUserNotFound     = errors.New("user not found")
)

package handler

type ScheduleAlarmRequest struct {
	// FireTime is the epoch time in milliseconds. Zero and negative values are
	// past instants, not missing ones.
	FireTime  *int64 `json:"fire_time" binding:"required"`
	EventText string `json:"event_text"`
}

type SetIdleRequest struct {
	Idle *bool `json:"idle" binding:"required"`
}

package handler

type EventSnapshotRequest struct {
	Title   string `json:"title"`
	OwnerID string `json:"owner_id"`
}

type ChangeRequest struct {
	Kind   string                `json:"kind" binding:"required,oneof=created updated deleted"`
	Before *EventSnapshotRequest `json:"before"`
	After  *EventSnapshotRequest `json:"after"`
}

package pubsub

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-calendar-notify/internal/app"
	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

var ErrMalformedEvent = errors.New("malformed event payload")

type EventSnapshotPayload struct {
	Title   string `json:"title"`
	OwnerID string `json:"owner_id"`
}

// ChangeEvent is the wire form of one calendar event mutation.
type ChangeEvent struct {
	Kind       string                `json:"kind"`
	CalendarID string                `json:"calendar_id"`
	EventID    string                `json:"event_id"`
	Before     *EventSnapshotPayload `json:"before,omitempty"`
	After      *EventSnapshotPayload `json:"after,omitempty"`
}

func DecodeChangeEvent(payload []byte) (app.ChangeInput, error) {
	var ev ChangeEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return app.ChangeInput{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	return ev.ToInput(), nil
}

func (e ChangeEvent) ToInput() app.ChangeInput {
	return app.ChangeInput{
		Kind:       e.Kind,
		CalendarID: e.CalendarID,
		EventID:    e.EventID,
		Before:     toSnapshotInput(e.Before),
		After:      toSnapshotInput(e.After),
	}
}

func toSnapshotInput(p *EventSnapshotPayload) *app.EventSnapshotInput {
	if p == nil {
		return nil
	}

	return &app.EventSnapshotInput{
		Title:   p.Title,
		OwnerID: p.OwnerID,
	}
}

type DeepLinkPayload struct {
	Action string            `json:"action"`
	Extras map[string]string `json:"extras,omitempty"`
}

// AlarmAlertEvent is the wire form of an alert shown by the notification center.
type AlarmAlertEvent struct {
	Slot        int             `json:"slot"`
	ChannelID   string          `json:"channel_id"`
	Title       string          `json:"title"`
	Body        string          `json:"body"`
	Category    string          `json:"category"`
	Importance  string          `json:"importance"`
	FullScreen  bool            `json:"full_screen"`
	AutoCancel  bool            `json:"auto_cancel"`
	Sound       bool            `json:"sound"`
	VibrationMs []int64         `json:"vibration_ms"`
	DeepLink    DeepLinkPayload `json:"deep_link"`
	PostedAt    time.Time       `json:"posted_at"`
}

func NewAlarmAlertEvent(slot int, alert domain.Alert, postedAt time.Time) AlarmAlertEvent {
	vibration := make([]int64, 0, len(alert.VibrationPattern))
	for _, d := range alert.VibrationPattern {
		vibration = append(vibration, d.Milliseconds())
	}

	return AlarmAlertEvent{
		Slot:        slot,
		ChannelID:   alert.ChannelID,
		Title:       alert.Title,
		Body:        alert.Body,
		Category:    string(alert.Category),
		Importance:  string(alert.Importance),
		FullScreen:  alert.FullScreen,
		AutoCancel:  alert.AutoCancel,
		Sound:       alert.Sound,
		VibrationMs: vibration,
		DeepLink: DeepLinkPayload{
			Action: alert.DeepLink.Action,
			Extras: alert.DeepLink.Extras,
		},
		PostedAt: postedAt,
	}
}

package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

var (
	ErrEmptyChannelID  = errors.New("channel ID must not be empty")
	ErrChannelNotFound = errors.New("notification channel not found")
	ErrForwardFailed   = errors.New("failed to forward alert")
)

// AlertPublisher receives every alert shown by the center so that subscribed
// devices can render it.
type AlertPublisher interface {
	PublishAlarmAlert(ctx context.Context, slot int, alert domain.Alert) error
}

type PostedAlert struct {
	Slot     int
	Alert    domain.Alert
	PostedAt time.Time
}

// NotificationCenter keeps the registered channels and the alert currently
// shown in each slot.
type NotificationCenter struct {
	publisher AlertPublisher
	now       func() time.Time

	mu       sync.Mutex
	channels map[string]domain.NotificationChannel
	slots    map[int]PostedAlert
}

// NewNotificationCenter builds a center. publisher may be nil, in which case
// alerts are only kept locally.
func NewNotificationCenter(publisher AlertPublisher) *NotificationCenter {
	return &NotificationCenter{
		publisher: publisher,
		now:       time.Now,
		channels:  make(map[string]domain.NotificationChannel),
		slots:     make(map[int]PostedAlert),
	}
}

func (n *NotificationCenter) EnsureChannel(ctx context.Context, channel domain.NotificationChannel) error {
	if channel.ID == "" {
		return ErrEmptyChannelID
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.channels[channel.ID]; ok {
		return nil
	}

	n.channels[channel.ID] = channel

	slog.InfoContext(ctx, "notification channel created",
		"channel_id", channel.ID,
		"importance", string(channel.Importance),
	)

	return nil
}

func (n *NotificationCenter) Present(ctx context.Context, slot int, alert domain.Alert) error {
	n.mu.Lock()

	if _, ok := n.channels[alert.ChannelID]; !ok {
		n.mu.Unlock()

		return fmt.Errorf("%w: %s", ErrChannelNotFound, alert.ChannelID)
	}

	_, replaced := n.slots[slot]
	n.slots[slot] = PostedAlert{
		Slot:     slot,
		Alert:    alert,
		PostedAt: n.now(),
	}

	n.mu.Unlock()

	slog.DebugContext(ctx, "alert posted",
		"slot", slot,
		"channel_id", alert.ChannelID,
		"replaced", replaced,
	)

	if n.publisher == nil {
		return nil
	}

	if err := n.publisher.PublishAlarmAlert(ctx, slot, alert); err != nil {
		return fmt.Errorf("%w: %v", ErrForwardFailed, err)
	}

	return nil
}

// Active returns the alert currently shown in slot.
func (n *NotificationCenter) Active(slot int) (PostedAlert, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	posted, ok := n.slots[slot]

	return posted, ok
}

func (n *NotificationCenter) Channels() []domain.NotificationChannel {
	n.mu.Lock()
	defer n.mu.Unlock()

	channels := make([]domain.NotificationChannel, 0, len(n.channels))
	for _, ch := range n.channels {
		channels = append(channels, ch)
	}

	sort.Slice(channels, func(i, j int) bool {
		return channels[i].ID < channels[j].ID
	})

	return channels
}

package domain

import "time"

const (
	AlarmChannelID          = "alarm_channel"
	AlarmChannelName        = "Alarmas de eventos"
	AlarmChannelDescription = "Notificaciones de alarmas de eventos del calendario"

	// AlarmNotificationSlot is the single identity every alarm alert is shown
	// under; a later firing replaces an undismissed earlier one.
	AlarmNotificationSlot = 1001

	AlarmAlertTitle        = "🔔 Recordatorio de evento"
	OpenNotificationScreen = "OPEN_NOTIFICATION_SCREEN"
	DeepLinkKeyEventText   = "eventText"
)

type Importance string

const ImportanceHigh Importance = "high"

type AlertCategory string

const CategoryAlarm AlertCategory = "alarm"

type NotificationChannel struct {
	ID          string
	Name        string
	Description string
	Importance  Importance
	Vibration   bool
	Lights      bool
	ShowBadge   bool
}

func AlarmChannel() NotificationChannel {
	return NotificationChannel{
		ID:          AlarmChannelID,
		Name:        AlarmChannelName,
		Description: AlarmChannelDescription,
		Importance:  ImportanceHigh,
		Vibration:   true,
		Lights:      true,
		ShowBadge:   true,
	}
}

// DeepLink opens the application into the context named by Extras.
type DeepLink struct {
	Action string
	Extras map[string]string
}

type Alert struct {
	ChannelID        string
	Title            string
	Body             string
	Category         AlertCategory
	Importance       Importance
	FullScreen       bool
	AutoCancel       bool
	Sound            bool
	VibrationPattern []time.Duration
	DeepLink         DeepLink
}

var alarmVibrationPattern = []time.Duration{
	0,
	1000 * time.Millisecond,
	500 * time.Millisecond,
	1000 * time.Millisecond,
	500 * time.Millisecond,
	1000 * time.Millisecond,
}

func NewAlarmAlert(payload string) Alert {
	if payload == "" {
		payload = DefaultAlarmPayload
	}

	pattern := make([]time.Duration, len(alarmVibrationPattern))
	copy(pattern, alarmVibrationPattern)

	return Alert{
		ChannelID:        AlarmChannelID,
		Title:            AlarmAlertTitle,
		Body:             "Evento: " + payload,
		Category:         CategoryAlarm,
		Importance:       ImportanceHigh,
		FullScreen:       true,
		AutoCancel:       true,
		Sound:            true,
		VibrationPattern: pattern,
		DeepLink: DeepLink{
			Action: OpenNotificationScreen,
			Extras: map[string]string{DeepLinkKeyEventText: payload},
		},
	}
}

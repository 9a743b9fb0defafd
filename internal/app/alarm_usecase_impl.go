package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

type alarmUseCaseImpl struct {
	timer     domain.TimerFacility
	presenter domain.NotificationPresenter
}

func NewAlarmUseCase(timer domain.TimerFacility, presenter domain.NotificationPresenter) AlarmUseCase {
	return &alarmUseCaseImpl{
		timer:     timer,
		presenter: presenter,
	}
}

func (uc *alarmUseCaseImpl) ScheduleAlarm(ctx context.Context, input ScheduleAlarmInput) (ScheduleAlarmOutput, error) {
	slog.DebugContext(ctx, "scheduling alarm",
		"fire_time_ms", input.FireTimeMillis,
	)

	reg, err := domain.AlarmRegistrationFromMillis(input.FireTimeMillis, input.EventText)
	if err != nil {
		return ScheduleAlarmOutput{}, NewValidationError("fire_time", err.Error())
	}

	allowWhileIdle := uc.timer.SupportsIdleBypass()

	if err := uc.timer.RegisterExactWake(ctx, reg, allowWhileIdle); err != nil {
		slog.ErrorContext(ctx, "failed to register exact wake",
			"key", int64(reg.Key()),
			"fire_time", reg.FireTime(),
			"error", err,
		)

		return ScheduleAlarmOutput{}, fmt.Errorf("%w: %v", ErrSchedulingFailure, err)
	}

	handle := domain.RegistrationHandle{
		Key:      reg.Key(),
		FireTime: reg.FireTime(),
		Tier:     domain.TierFor(allowWhileIdle),
	}

	slog.InfoContext(ctx, "alarm scheduled",
		"key", int64(handle.Key),
		"fire_time", handle.FireTime,
		"tier", string(handle.Tier),
	)

	return FromHandle(handle), nil
}

func (uc *alarmUseCaseImpl) HandleAlarmFired(ctx context.Context, payload string) {
	if err := uc.presenter.EnsureChannel(ctx, domain.AlarmChannel()); err != nil {
		slog.ErrorContext(ctx, "failed to ensure alarm channel",
			"channel_id", domain.AlarmChannelID,
			"error", fmt.Errorf("%w: %v", ErrPresentationFailure, err),
		)

		return
	}

	alert := domain.NewAlarmAlert(payload)

	if err := uc.presenter.Present(ctx, domain.AlarmNotificationSlot, alert); err != nil {
		slog.ErrorContext(ctx, "failed to present alarm alert",
			"slot", domain.AlarmNotificationSlot,
			"error", fmt.Errorf("%w: %v", ErrPresentationFailure, err),
		)

		return
	}

	slog.InfoContext(ctx, "alarm alert presented",
		"slot", domain.AlarmNotificationSlot,
		"event_text", alert.DeepLink.Extras[domain.DeepLinkKeyEventText],
	)
}

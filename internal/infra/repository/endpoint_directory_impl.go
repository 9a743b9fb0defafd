package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

type endpointDirectoryImpl struct {
	db *gorm.DB
}

func NewEndpointDirectory(db *gorm.DB) domain.EndpointDirectory {
	return &endpointDirectoryImpl{
		db: db,
	}
}

func (r *endpointDirectoryImpl) CalendarMembers(ctx context.Context, calendarID domain.CalendarID) ([]domain.UserID, error) {
	slog.DebugContext(ctx, "finding calendar members",
		"calendar_id", calendarID.String(),
	)

	var m CalendarModel

	result := r.db.WithContext(ctx).Select("id", "members").Where("id = ?", calendarID.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.DebugContext(ctx, "calendar not found",
				"calendar_id", calendarID.String(),
			)

			return nil, domain.ErrCalendarNotFound
		}

		slog.ErrorContext(ctx, "failed to find calendar members",
			"calendar_id", calendarID.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	members := m.MemberIDs()

	slog.DebugContext(ctx, "calendar members found",
		"calendar_id", calendarID.String(),
		"count", len(members),
	)

	return members, nil
}

func (r *endpointDirectoryImpl) UserEndpoints(ctx context.Context, userID domain.UserID) ([]domain.Endpoint, error) {
	slog.DebugContext(ctx, "finding user endpoints",
		"user_id", userID.String(),
	)

	var m UserModel

	result := r.db.WithContext(ctx).Select("id", "device_tokens").Where("id = ?", userID.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.DebugContext(ctx, "user not found",
				"user_id", userID.String(),
			)

			return nil, domain.ErrUserNotFound
		}

		slog.ErrorContext(ctx, "failed to find user endpoints",
			"user_id", userID.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	endpoints := m.Endpoints()

	slog.DebugContext(ctx, "user endpoints found",
		"user_id", userID.String(),
		"count", len(endpoints),
	)

	return endpoints, nil
}

func (r *endpointDirectoryImpl) ReportInvalidEndpoints(ctx context.Context, endpoints []domain.Endpoint) error {
	if len(endpoints) == 0 {
		return nil
	}

	now := time.Now()

	models := make([]InvalidEndpointModel, 0, len(endpoints))
	for _, e := range endpoints {
		models = append(models, InvalidEndpointModel{
			Token:           e.String(),
			ReportCount:     1,
			FirstReportedAt: now,
			LastReportedAt:  now,
		})
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "token"}},
		DoUpdates: clause.Assignments(map[string]any{
			"report_count":     gorm.Expr("invalid_endpoints.report_count + 1"),
			"last_reported_at": now,
		}),
	}).Create(&models)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to report invalid endpoints",
			"count", len(endpoints),
			"error", result.Error,
		)

		return result.Error
	}

	slog.InfoContext(ctx, "invalid endpoints reported",
		"count", len(endpoints),
	)

	return nil
}

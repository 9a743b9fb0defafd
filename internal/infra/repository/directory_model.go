package repository

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

// StringsJSONB stores a list of opaque identifiers in a jsonb column.
type StringsJSONB []string

func (s *StringsJSONB) Scan(value interface{}) error {
	if value == nil {
		*s = nil

		return nil
	}

	var bytes []byte

	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan StringsJSONB: expected []byte")
	}

	return json.Unmarshal(bytes, s)
}

func (s StringsJSONB) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(s)
}

type CalendarModel struct {
	ID        string       `gorm:"column:id;type:varchar(255);primaryKey"`
	Name      string       `gorm:"column:name;type:varchar(255)"`
	Members   StringsJSONB `gorm:"column:members;type:jsonb;not null"`
	CreatedAt time.Time    `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt time.Time    `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (CalendarModel) TableName() string {
	return "calendars"
}

// MemberIDs skips blank entries left behind by the store.
func (m *CalendarModel) MemberIDs() []domain.UserID {
	ids := make([]domain.UserID, 0, len(m.Members))
	for _, member := range m.Members {
		id, err := domain.UserIDFromString(member)
		if err != nil {
			continue
		}

		ids = append(ids, id)
	}

	return ids
}

type UserModel struct {
	ID           string       `gorm:"column:id;type:varchar(255);primaryKey"`
	DeviceTokens StringsJSONB `gorm:"column:device_tokens;type:jsonb;not null"`
	CreatedAt    time.Time    `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt    time.Time    `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// Endpoints skips blank tokens left behind by the store.
func (m *UserModel) Endpoints() []domain.Endpoint {
	endpoints := make([]domain.Endpoint, 0, len(m.DeviceTokens))
	for _, token := range m.DeviceTokens {
		e, err := domain.NewEndpoint(token)
		if err != nil {
			continue
		}

		endpoints = append(endpoints, e)
	}

	return endpoints
}

// InvalidEndpointModel flags a token the push transport reported as no longer
// valid. Rows are consumed by the pruning job that owns the users table.
type InvalidEndpointModel struct {
	Token           string    `gorm:"column:token;type:text;primaryKey"`
	ReportCount     int64     `gorm:"column:report_count;type:bigint;not null;default:1"`
	FirstReportedAt time.Time `gorm:"column:first_reported_at;type:timestamptz;not null"`
	LastReportedAt  time.Time `gorm:"column:last_reported_at;type:timestamptz;not null;index:idx_invalid_endpoints_last_reported_at"`
}

func (InvalidEndpointModel) TableName() string {
	return "invalid_endpoints"
}

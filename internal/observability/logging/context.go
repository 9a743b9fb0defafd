package logging

import (
	"context"

	"github.com/google/uuid"
)

type Module string

const (
	ModuleChange    Module = "change"
	ModuleAlarm     Module = "alarm"
	ModuleDirectory Module = "directory"
)

type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type ctxKey int

const (
	requestIDKey ctxKey = iota
	moduleKey
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}

	return ""
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) Module {
	if v, ok := ctx.Value(moduleKey).(Module); ok {
		return v
	}

	return ""
}

// ValidateAndExtractRequestID returns raw when it is a UUID and a fresh
// UUIDv7 otherwise.
func ValidateAndExtractRequestID(raw string) string {
	if raw != "" {
		if _, err := uuid.Parse(raw); err == nil {
			return raw
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type HandlerConfig struct {
	Level         slog.Leveler
	Service       ServiceInfo
	Environment   Environment
	GCPProjectID  string
	DefaultModule Module
}

// contextHandler adds request scoped attributes carried by the context.
type contextHandler struct {
	next          slog.Handler
	projectID     string
	defaultModule Module
}

func NewHandler(w io.Writer, cfg HandlerConfig) slog.Handler {
	base := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.Level})

	attrs := make([]slog.Attr, 0, 4)
	if cfg.Service.Name != "" {
		attrs = append(attrs, slog.String("service.name", cfg.Service.Name))
	}

	if cfg.Service.Version != "" {
		attrs = append(attrs, slog.String("service.version", cfg.Service.Version))
	}

	if cfg.Service.Revision != "" {
		attrs = append(attrs, slog.String("service.revision", cfg.Service.Revision))
	}

	if cfg.Environment != "" {
		attrs = append(attrs, slog.String("env", string(cfg.Environment)))
	}

	return &contextHandler{
		next:          base.WithAttrs(attrs),
		projectID:     cfg.GCPProjectID,
		defaultModule: cfg.DefaultModule,
	}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		r.AddAttrs(slog.String("request_id", requestID))
	}

	module := ModuleFromContext(ctx)
	if module == "" {
		module = h.defaultModule
	}

	if module != "" {
		r.AddAttrs(slog.String("module", string(module)))
	}

	r.AddAttrs(gcpTraceAttrs(ctx, h.projectID)...)

	return h.next.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{
		next:          h.next.WithAttrs(attrs),
		projectID:     h.projectID,
		defaultModule: h.defaultModule,
	}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{
		next:          h.next.WithGroup(name),
		projectID:     h.projectID,
		defaultModule: h.defaultModule,
	}
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

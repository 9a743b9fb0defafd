package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/KasumiMercury/primind-calendar-notify/internal/observability/logging"
	"github.com/KasumiMercury/primind-calendar-notify/internal/observability/metrics"
	"github.com/KasumiMercury/primind-calendar-notify/internal/observability/tracing"
)

type GinConfig struct {
	// SkipPaths are paths that skip observability
	SkipPaths []string
	Module    logging.Module
	// ModuleResolver returns a module for the request when module depends on path
	ModuleResolver func(*gin.Context) logging.Module
	TracerName     string
	HTTPMetrics    *metrics.HTTPMetrics
}

func Gin(cfg GinConfig) gin.HandlerFunc {
	skipSet := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skipSet[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, skip := skipSet[c.Request.URL.Path]; skip {
			c.Next()

			return
		}

		start := time.Now()

		requestID := logging.ValidateAndExtractRequestID(c.Request.Header.Get("x-request-id"))
		ctx := logging.WithRequestID(c.Request.Context(), requestID)

		module := cfg.Module
		if cfg.ModuleResolver != nil {
			if m := cfg.ModuleResolver(c); m != "" {
				module = m
			}
		}

		if module != "" {
			ctx = logging.WithModule(ctx, module)
		}

		ctx = tracing.ExtractFromHTTPRequest(ctx, c.Request)

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx, span := otel.Tracer(cfg.TracerName).Start(ctx, fmt.Sprintf("%s %s", c.Request.Method, route))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)

		c.Header("x-request-id", requestID)
		c.Request.Header.Set("x-request-id", requestID)

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		span.SetAttributes(
			attribute.String("http.route", route),
			attribute.Int("http.response.status_code", status),
		)

		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}

		if cfg.HTTPMetrics != nil {
			cfg.HTTPMetrics.Record(ctx, c.Request.Method, route, status, duration)
		}

		slog.LogAttrs(ctx, slog.LevelInfo, "request completed",
			slog.String("event", "http.request.finish"),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("remote_addr", c.ClientIP()),
			slog.Int("status", status),
			slog.Duration("duration", duration),
		)
	}
}

package tools

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/wordpress-mcp-server/internal/service"
)

// loggingMiddleware tags each invocation with an id and logs its outcome
func (d *Dispatcher) loggingMiddleware(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		log := d.log.With().
			Str("invocation_id", uuid.New().String()).
			Str("tool", req.Params.Name).
			Logger()
		ctx = log.WithContext(ctx)

		res, err := next(ctx, req)

		event := log.Info()
		if err != nil || (res != nil && res.IsError) {
			event = log.Warn()
		}
		event.
			Err(err).
			Bool("is_error", res != nil && res.IsError).
			Dur("duration", time.Since(start)).
			Msg("Tool call completed")

		return res, err
	}
}

// recoveryMiddleware turns a handler panic into a failure envelope
func (d *Dispatcher) recoveryMiddleware(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				d.logger(ctx).Error().Interface("error", r).Str("tool", req.Params.Name).Msg("Panic recovered")
				captureError(ctx, req.Params.Name, fmt.Errorf("panic: %v", r))
				res, err = mcp.NewToolResultError("Internal server error"), nil
			}
		}()
		return next(ctx, req)
	}
}

// logger returns the invocation logger stored by loggingMiddleware, if any
func (d *Dispatcher) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &d.log
}

// captureError reports a failed tool call. It is a no-op until sentry.Init
// has been called with a DSN.
func captureError(ctx context.Context, tool string, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("tool", tool)
		scope.SetLevel(sentryLevel(err))

		var gwErr *service.GatewayError
		if errors.As(err, &gwErr) {
			scope.SetTag("gateway_op", gwErr.Op)
			scope.SetContext("upstream", sentry.Context{
				"status": gwErr.Status,
				"code":   gwErr.Code,
			})
		}

		hub.CaptureException(err)
	})
}

// Expected upstream rejections are reported as info
func sentryLevel(err error) sentry.Level {
	var gwErr *service.GatewayError
	if !errors.As(err, &gwErr) {
		return sentry.LevelError
	}

	switch gwErr.Status {
	case http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusTooManyRequests:
		return sentry.LevelInfo
	default:
		return sentry.LevelError
	}
}

package logger

import (
	"context"
	"log/slog"

	"bytestudio_backend/pkg/contextkeys"
)

// fromContext attaches the request id when the context carries one. Works
// with both plain contexts and gin's, which resolves string keys.
func fromContext(ctx context.Context) *slog.Logger {
	l := GetLogger()
	if ctx == nil {
		return l
	}
	if id, ok := ctx.Value(contextkeys.RequestID).(string); ok && id != "" {
		l = l.With("request_id", id)
	}
	return l
}

func CtxDebug(ctx context.Context, msg string, args ...any) { fromContext(ctx).Debug(msg, args...) }
func CtxInfo(ctx context.Context, msg string, args ...any)  { fromContext(ctx).Info(msg, args...) }
func CtxWarn(ctx context.Context, msg string, args ...any)  { fromContext(ctx).Warn(msg, args...) }
func CtxError(ctx context.Context, msg string, args ...any) { fromContext(ctx).Error(msg, args...) }

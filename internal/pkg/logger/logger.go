package logger

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Field names shared by request and use case logs
const (
	ActionKey    = "action"
	OwnerKey     = "user_email"
	SessionIDKey = "session_id"
)

// AddFields adds fields to the logger in context and returns new context
func AddFields(ctx context.Context, fields ...zap.Field) context.Context {
	logger := ctxzap.Extract(ctx)
	return ctxzap.ToContext(ctx, logger.With(fields...))
}

// WithAction adds "action" field to context logger to describe the flow
func WithAction(ctx context.Context, action string) context.Context {
	return AddFields(ctx, zap.String(ActionKey, action))
}

// WithOwner tags the context logger with the account the call acts for
func WithOwner(ctx context.Context, email string) context.Context {
	return AddFields(ctx, zap.String(OwnerKey, email))
}

// WithSession tags the context logger with a counselling session id
func WithSession(ctx context.Context, sessionID string) context.Context {
	return AddFields(ctx, zap.String(SessionIDKey, sessionID))
}

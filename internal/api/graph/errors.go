package graph

import (
	"carlot/pkg/logger"
	"carlot/pkg/serrors"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Error is a resolver error exposing its semantic kind as the "code"
// extension of the GraphQL error.
type Error struct {
	kind serrors.Kind
	msg  string
	err  error
}

// NewError converts err into a GraphQL error. Internal errors are logged and
// replaced by a generic message.
func NewError(ctx context.Context, err error) *Error {
	kind := serrors.KindOf(err)
	if kind == serrors.ErrInternal {
		logger.Error(ctx, "graphql resolver failed", zap.Error(err))

		return &Error{kind: kind, msg: "internal error", err: err}
	}

	return &Error{kind: kind, msg: serrors.MessageOf(err, err.Error()), err: err}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.err }

// Extensions is read by graphql-go and merged into the error payload.
func (e *Error) Extensions() map[string]any {
	return map[string]any{"code": e.kind.Error()}
}

// panicLogger reports resolver panics through the context logger.
type panicLogger struct{}

func (panicLogger) LogPanic(ctx context.Context, value any) {
	logger.Error(ctx, "graphql resolver panicked", zap.String("panic", fmt.Sprint(value)), zap.StackSkip("stack", 1))
}

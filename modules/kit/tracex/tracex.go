package tracex

import (
	"context"
	"encoding/hex"

	"github.com/google/uuid"
)

type traceIDKey struct{}
type spanIDKey struct{}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

func TraceIDFrom(ctx context.Context) (string, bool) {
	return stringValue(ctx, traceIDKey{})
}

func WithSpanID(ctx context.Context, spanID string) context.Context {
	return context.WithValue(ctx, spanIDKey{}, spanID)
}

func SpanIDFrom(ctx context.Context) (string, bool) {
	return stringValue(ctx, spanIDKey{})
}

// Ensure 在 ctx 没有 trace_id 时生成一个，返回新 ctx 和最终的 trace_id。
func Ensure(ctx context.Context) (context.Context, string) {
	if ctx == nil {
		ctx = context.Background()
	}
	if tid, ok := TraceIDFrom(ctx); ok {
		return ctx, tid
	}
	tid := NewTraceID()
	return WithTraceID(ctx, tid), tid
}

// NewTraceID 用随机 UUID 生成 32 位 hex trace_id，不带连字符。
func NewTraceID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

func stringValue(ctx context.Context, key any) (string, bool) {
	if ctx == nil {
		return "", false
	}
	s, ok := ctx.Value(key).(string)
	return s, ok && s != ""
}

package tracex

import (
	"context"
	"testing"
)

func TestTraceID_RoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "t-1")
	if got, ok := TraceIDFrom(ctx); !ok || got != "t-1" {
		t.Fatalf("期望 TraceIDFrom 取回 t-1, got=%q ok=%v", got, ok)
	}
	if _, ok := SpanIDFrom(ctx); ok {
		t.Fatalf("期望未设置 span_id 时返回 false")
	}
}

func TestEnsure_已有trace不覆盖(t *testing.T) {
	ctx, tid := Ensure(WithTraceID(context.Background(), "keep"))
	if got, _ := TraceIDFrom(ctx); tid != "keep" || got != "keep" {
		t.Fatalf("期望保留已有 trace_id, got=%q", tid)
	}
	_, fresh := Ensure(context.Background())
	if len(fresh) != 32 {
		t.Fatalf("期望生成 32 位 hex trace_id, got=%q", fresh)
	}
}

// Package transport 保存请求级的访问日志上下文。
package transport

import (
	"context"
	"time"

	"RpgTools/modules/kit/logx"
	"RpgTools/modules/kit/tracex"

	"go.uber.org/zap"
)

// AccessLog 是一次请求的日志上下文。
type AccessLog struct {
	Status      int
	ErrorReason string
	startTime   time.Time
	action      string
}

type accessLogKey struct{}

// NewContextWithParent 创建带 AccessLog 的 context，保留父 context 的取消信号；父 context 已有 trace_id 时沿用。
func NewContextWithParent(parent context.Context, action string) context.Context {
	ctx := parent
	if ctx == nil {
		ctx = context.Background()
	}
	if action == "" {
		action = "unknown"
	}
	ctx, _ = tracex.Ensure(ctx)
	ctx = tracex.WithSpanID(ctx, "http")

	al := &AccessLog{
		startTime: time.Now(),
		action:    action,
	}
	return context.WithValue(ctx, accessLogKey{}, al)
}

func FromContext(ctx context.Context) *AccessLog {
	if ctx == nil {
		return nil
	}
	al, _ := ctx.Value(accessLogKey{}).(*AccessLog)
	return al
}

func SetStatus(ctx context.Context, status int) {
	if al := FromContext(ctx); al != nil {
		al.Status = status
	}
}

// SetErrorReason 设置失败原因，空串忽略。
func SetErrorReason(ctx context.Context, reason string) {
	if reason == "" {
		return
	}
	if al := FromContext(ctx); al != nil {
		al.ErrorReason = reason
	}
}

// WriteAccessLog 输出访问日志，在中间件里请求结束后调用。
func WriteAccessLog(ctx context.Context, log logx.Logger) {
	al := FromContext(ctx)
	if al == nil || log == nil {
		return
	}

	fields := []zap.Field{
		zap.Duration("latency", time.Since(al.startTime)),
	}
	if al.ErrorReason != "" {
		fields = append(fields, zap.String("error_reason", al.ErrorReason))
	}
	logx.ReportAccessWithLoggerContext(ctx, log, al.action, al.Status, fields...)
}

package logx

import (
	"context"

	"go.uber.org/zap"
)

// Logger 是各组件依赖的最小日志端口：结构化字段加 ctx 透传。
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	WithContext(ctx context.Context) Logger
	With(fields ...zap.Field) Logger
}

// Nop 返回丢弃所有输出的 Logger，测试和未配置日志时使用。
func Nop() Logger {
	return NewZapLogger(nil)
}

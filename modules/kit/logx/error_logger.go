package logx

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// BizLog 描述一次业务拒绝。
type BizLog struct {
	Action  string
	Reason  string
	Message string
}

// SysLog 描述一次技术故障。
type SysLog struct {
	Action string
	Err    error
}

func NewBizLog(action, reason, message string) BizLog {
	return BizLog{Action: action, Reason: reason, Message: message}
}

func NewSysLog(action string, err error) SysLog {
	return SysLog{Action: action, Err: err}
}

// ReportCommandWithLoggerContext 记录一条编辑命令的处理结果。
// code 为空时记 DEBUG，业务拒绝记 INFO，其余记 ERROR。
func ReportCommandWithLoggerContext(ctx context.Context, l Logger, action string, code string, biz bool, fields ...zap.Field) {
	if l == nil {
		return
	}
	base := make([]zap.Field, 0, len(fields)+3)
	base = append(base,
		zap.String("log_type", "command"),
		zap.String("action", action),
		zap.String("result_code", code),
	)
	base = append(base, fields...)
	withCtx := l.WithContext(ctx)
	switch {
	case code == "":
		withCtx.Debug("command", base...)
	case biz:
		withCtx.Info("command", base...)
	default:
		withCtx.Error("command", base...)
	}
}

// ReportAccessWithLoggerContext 记录一次 HTTP 访问：2xx/3xx 记 INFO，5xx 记 ERROR，其余记 WARN。
func ReportAccessWithLoggerContext(ctx context.Context, l Logger, action string, status int, fields ...zap.Field) {
	if l == nil {
		return
	}
	base := []zap.Field{
		zap.String("log_type", "access"),
		zap.String("action", action),
		zap.Int("status", status),
	}
	base = append(base, fields...)
	withCtx := l.WithContext(ctx)
	switch {
	case status < 400:
		withCtx.Info("access", base...)
	case status >= 500:
		withCtx.Error("access", base...)
	default:
		withCtx.Warn("access", base...)
	}
}

// ReportBizWithLoggerContext 记录业务拒绝：INFO、err_type=biz、不带栈。
func ReportBizWithLoggerContext(ctx context.Context, l Logger, biz BizLog, fields ...zap.Field) {
	if l == nil {
		return
	}
	action := biz.Action
	if action == "" {
		action = "biz_reject"
	}
	base := []zap.Field{
		zap.String("err_type", "biz"),
		zap.String("action", action),
	}
	msg := action
	if biz.Reason != "" {
		base = append(base, zap.String("reason", biz.Reason))
		msg += ", reason:" + biz.Reason
	}
	if biz.Message != "" {
		base = append(base, zap.String("biz_message", biz.Message))
		msg += ", msg:" + biz.Message
	}
	base = append(base, fields...)
	l.WithContext(ctx).Info(msg, base...)
}

// ReportSysErrorWithLoggerContext 记录技术故障：ERROR、err_type=sys，附带 cause 链和首次捕获的栈。
func ReportSysErrorWithLoggerContext(ctx context.Context, l Logger, sys SysLog, fields ...zap.Field) {
	if sys.Err == nil || l == nil {
		return
	}
	action := sys.Action
	if action == "" {
		action = "sys_error"
	}
	meta := BuildErrorLog(sys.Err)
	base := []zap.Field{
		zap.String("err_type", "sys"),
		zap.String("action", action),
	}
	if meta.Code != "" {
		base = append(base, zap.String("error_code", meta.Code))
	}
	if len(meta.CauseChain) != 0 {
		base = append(base, zap.Strings("cause_chain", meta.CauseChain))
	}
	if len(meta.Data) != 0 {
		base = append(base, zap.Any("error_data", meta.Data))
	}
	if meta.Origin != "" {
		base = append(base, zap.String("origin_caller", meta.Origin))
	}
	if meta.Stack != "" {
		base = append(base, zap.String("stack_origin", meta.Stack))
	}
	base = append(base, fields...)

	msg := fmt.Sprintf("%s, error:%s", action, meta.Error)
	if meta.Reason != "" {
		msg = fmt.Sprintf("%s, reason:%s, error:%s", action, meta.Reason, meta.Error)
	}
	l.WithContext(ctx).Error(msg, base...)
}

// ReportErrorWithLoggerContext 按错误种类分派到业务或技术日志，保证每个错误只打一次。
func ReportErrorWithLoggerContext(ctx context.Context, l Logger, action string, err error, fields ...zap.Field) {
	if err == nil {
		return
	}
	var bp bizProvider
	if errors.As(err, &bp) && bp.IsBiz() {
		meta := BuildErrorLog(err)
		fields = append(fields, zap.String("error_code", meta.Code))
		if len(meta.Data) != 0 {
			fields = append(fields, zap.Any("error_data", meta.Data))
		}
		ReportBizWithLoggerContext(ctx, l, NewBizLog(action, meta.Reason, meta.Msg), fields...)
		return
	}
	ReportSysErrorWithLoggerContext(ctx, l, NewSysLog(action, err), fields...)
}

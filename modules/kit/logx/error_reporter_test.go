package logx

import (
	"context"
	"errors"
	"testing"

	"RpgTools/modules/kit/errx"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildErrorLog_提取语义与栈(t *testing.T) {
	e := errx.NewSys("STORE_DOWN", "存储不可用").
		WithData("setting", "demo").
		WithCause(errors.New("dial tcp: refused"))

	meta := BuildErrorLog(e)
	if meta.Code != "STORE_DOWN" || meta.Msg == "" {
		t.Fatalf("期望提取 code/msg, got=%+v", meta)
	}
	if meta.Data["setting"] != "demo" {
		t.Fatalf("期望 data 含 setting=demo, got=%v", meta.Data)
	}
	if len(meta.CauseChain) != 1 {
		t.Fatalf("期望 cause 链长度 1, got=%v", meta.CauseChain)
	}
	if meta.Origin == "" || meta.Stack == "" {
		t.Fatalf("期望 origin/stack 非空 origin=%q stack=%q", meta.Origin, meta.Stack)
	}
}

func TestReportError_按错误种类分级(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core))
	ctx := context.Background()

	ReportErrorWithLoggerContext(ctx, l, "create_building", errx.NewBiz("LOT_OCCUPIED", "地块被占用"))
	ReportErrorWithLoggerContext(ctx, l, "flush", errx.NewSys("STORE_DOWN", "存储不可用").WithCause(errors.New("eof")))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("期望 2 条日志, got=%d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[0].ContextMap()["err_type"] != "biz" {
		t.Fatalf("期望业务拒绝记 INFO/biz, got=%v %v", entries[0].Level, entries[0].ContextMap())
	}
	if entries[1].Level != zapcore.ErrorLevel || entries[1].ContextMap()["err_type"] != "sys" {
		t.Fatalf("期望技术故障记 ERROR/sys, got=%v %v", entries[1].Level, entries[1].ContextMap())
	}
}

func TestReportCommand_成功只记Debug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core))
	ReportCommandWithLoggerContext(context.Background(), l, "create_town", "", false)
	if logs.Len() != 1 || logs.All()[0].Level != zapcore.DebugLevel {
		t.Fatalf("期望成功命令记 1 条 DEBUG, got=%v", logs.All())
	}
}

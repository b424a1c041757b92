package http

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"RpgTools/modules/kit/logx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func serve(s *Server, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, path, nil)
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthz_返回200并写访问日志(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.DebugLevel)
	s := NewHttpServer(":0", logx.NewZapLogger(zap.New(core)), nil)

	if w := serve(s, "/healthz"); w.Code != nethttp.StatusOK {
		t.Fatalf("期望 200, got=%d", w.Code)
	}
	entries := logs.FilterMessage("access").All()
	if len(entries) != 1 {
		t.Fatalf("期望 1 条访问日志, got=%d", len(entries))
	}
	fields := entries[0].ContextMap()
	tid, _ := fields["trace_id"].(string)
	if fields["action"] != "GET /healthz" || tid == "" {
		t.Fatalf("期望 action 和 trace_id, got=%v", fields)
	}
}

func TestReadyz_未就绪返回503(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.DebugLevel)
	s := NewHttpServer(":0", logx.NewZapLogger(zap.New(core)), func(context.Context) error {
		return errors.New("repo down")
	})

	if w := serve(s, "/readyz"); w.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("期望 503, got=%d", w.Code)
	}
	entries := logs.FilterMessage("access").All()
	if len(entries) != 1 || entries[0].Level != zap.ErrorLevel {
		t.Fatalf("期望 1 条 ERROR 访问日志, got=%v", entries)
	}
	if entries[0].ContextMap()["error_reason"] != "repo down" {
		t.Fatalf("期望记录失败原因, got=%v", entries[0].ContextMap())
	}
}

// Package http 提供编辑器进程的健康检查服务。
package http

import (
	"context"
	nethttp "net/http"
	"time"

	"RpgTools/internal/shared/transport/http/middleware"
	"RpgTools/modules/kit/logx"

	"github.com/gin-gonic/gin"
)

// ReadyFunc 返回 nil 表示可以接收命令。
type ReadyFunc func(ctx context.Context) error

type Server struct {
	engine *gin.Engine
	srv    *nethttp.Server
}

func NewHttpServer(addr string, logger logx.Logger, ready ReadyFunc) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.AccessLog(logger))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(nethttp.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/readyz", func(c *gin.Context) {
		if ready != nil {
			if err := ready(c.Request.Context()); err != nil {
				_ = c.Error(err)
				c.JSON(nethttp.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(nethttp.StatusOK, gin.H{"status": "ready"})
	})

	return &Server{
		engine: engine,
		srv: &nethttp.Server{
			Addr:              addr,
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Start 阻塞运行，关闭时返回 net/http.ErrServerClosed。
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) Handler() nethttp.Handler {
	return s.engine
}

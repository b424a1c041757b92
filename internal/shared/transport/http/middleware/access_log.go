package middleware

import (
	"RpgTools/internal/shared/transport"
	"RpgTools/modules/kit/logx"

	"github.com/gin-gonic/gin"
)

// AccessLog 为每个请求建立带 trace_id 的上下文，请求结束后写一条访问日志。
func AccessLog(log logx.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		action := c.Request.Method + " " + route

		ctx := transport.NewContextWithParent(c.Request.Context(), action)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		transport.SetStatus(ctx, c.Writer.Status())
		if len(c.Errors) > 0 {
			transport.SetErrorReason(ctx, c.Errors.Last().Error())
		}
		transport.WriteAccessLog(ctx, log)
	}
}

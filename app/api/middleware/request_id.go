package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	ctx2 "go-hangar/app/api/ctx"
	"go.uber.org/zap"
)

const RequestIdHeader = "X-Request-Id"

// RequestLog 透传或生成请求id，并为每个请求记录一条访问日志
func RequestLog(log *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		id := strings.TrimSpace(ctx.GetHeader(RequestIdHeader))
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Header(RequestIdHeader, id)
		ctx2.SetRequestId(ctx, id, log)

		ctx.Next()

		ctx2.Logger(ctx).Info("http_request",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.String("query", ctx.Request.URL.RawQuery),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", ctx.ClientIP()),
		)
	}
}

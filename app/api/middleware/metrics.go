package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go-hangar/app/pkg/metrics"
)

// Metrics 按路由模板统计，避免id进入label
func Metrics(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()
	route := ctx.FullPath()
	if route == "" {
		route = "unmatched"
	}
	method := ctx.Request.Method
	metrics.RequestTotal.WithLabelValues(method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
	metrics.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go-hangar/app/internal/constants"
)

// Cors origin为空时不设置跨域头
func Cors(origin string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if origin == "" {
			ctx.Next()
			return
		}
		ctx.Header("Access-Control-Allow-Origin", origin)
		ctx.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		ctx.Header("Access-Control-Allow-Headers", "Content-Type, "+constants.AdminTokenHeader+", "+RequestIdHeader)
		ctx.Header("Access-Control-Expose-Headers", RequestIdHeader)
		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}

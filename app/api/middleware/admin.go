package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	ctx2 "go-hangar/app/api/ctx"
	"go-hangar/app/internal/constants"
	"go-hangar/app/internal/response"
)

// AdminToken 管理接口需要请求头携带正确的token
func AdminToken(token string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		got := ctx.GetHeader(constants.AdminTokenHeader)
		if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			ctx2.Logger(ctx).Warn("管理token校验失败")
			response.Message(ctx, http.StatusUnauthorized, "invalid admin token")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

package ctx

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go-hangar/app/service/common"
	"go.uber.org/zap"
)

const (
	keyRequestId = "ctx_request_id"
	keyLogger    = "ctx_logger"
)

// ParamId 解析路径中的id，非数字时ok为false
func ParamId(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ParentWithId 嵌套路由的飞船id和宇航员id
func ParentWithId(ctx *gin.Context) (*common.ParentWithId, bool) {
	sid, ok := ParamId(ctx, "id")
	if !ok {
		return nil, false
	}
	aid, ok := ParamId(ctx, "astroId")
	if !ok {
		return nil, false
	}
	return &common.ParentWithId{SpacecraftId: sid, ID: aid}, true
}

func SetRequestId(ctx *gin.Context, id string, log *zap.Logger) {
	ctx.Set(keyRequestId, id)
	ctx.Set(keyLogger, log.With(zap.String("request_id", id)))
}

func RequestId(ctx *gin.Context) string {
	return ctx.GetString(keyRequestId)
}

// Logger 带request_id的日志，未经过中间件时返回Nop
func Logger(ctx *gin.Context) *zap.Logger {
	if v, ok := ctx.Get(keyLogger); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.NewNop()
}

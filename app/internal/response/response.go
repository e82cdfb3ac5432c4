package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zeebo/errs"
	ctx2 "go-hangar/app/api/ctx"
	"go-hangar/app/internal/errcode"
	"go.uber.org/zap"
)

const (
	MsgCreated  = "created"
	MsgUpdated  = "updated"
	MsgDeleted  = "deleted"
	MsgNotFound = "not found"
	MsgInternal = "internal server error"
)

type Msg struct {
	Message string `json:"message"`
}

func Message(ctx *gin.Context, status int, msg string) {
	ctx.JSON(status, Msg{Message: msg})
}

// Response err为空时返回200和data
func Response(ctx *gin.Context, err error, data any) {
	if err != nil {
		Fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, data)
}

// Done err为空时返回status和msg
func Done(ctx *gin.Context, err error, status int, msg string) {
	if err != nil {
		Fail(ctx, err)
		return
	}
	Message(ctx, status, msg)
}

// Fail 不存在404，校验和请求错误400，其余500并记录日志
func Fail(ctx *gin.Context, err error) {
	if msg, ok := errcode.Message(err); ok {
		Message(ctx, http.StatusNotFound, msg)
		return
	}
	if errcode.IsNotFound(err) {
		Message(ctx, http.StatusNotFound, MsgNotFound)
		return
	}
	if errcode.ErrValidation.Has(err) || errcode.ErrRequest.Has(err) {
		Message(ctx, http.StatusBadRequest, errs.Unwrap(err).Error())
		return
	}
	ctx2.Logger(ctx).Error("请求处理失败",
		zap.Error(err),
		zap.String("method", ctx.Request.Method),
		zap.String("path", ctx.Request.URL.Path),
	)
	_ = ctx.Error(err)
	Message(ctx, http.StatusInternalServerError, MsgInternal)
}

func NotFound(ctx *gin.Context) {
	Message(ctx, http.StatusNotFound, MsgNotFound)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ctx2 "go-hangar/app/api/ctx"
	"go-hangar/app/internal/errcode"
	"go-hangar/app/internal/response"
	"go-hangar/app/service/common"
	"go-hangar/app/service/spacecraft"
)

type SpacecraftCtl struct {
	service *spacecraft.Service
}

func (ctl *SpacecraftCtl) List(ctx *gin.Context) {
	params := common.ParseListReq(ctx.Request.URL.Query())
	res, err := ctl.service.List(ctx.Request.Context(), params)
	response.Response(ctx, err, res)
}

func (ctl *SpacecraftCtl) Detail(ctx *gin.Context) {
	id, ok := ctx2.ParamId(ctx, "id")
	if !ok {
		response.NotFound(ctx)
		return
	}
	res, err := ctl.service.Detail(ctx.Request.Context(), id)
	response.Response(ctx, err, res)
}

func (ctl *SpacecraftCtl) Create(ctx *gin.Context) {
	params := spacecraft.SaveReq{}
	if err := ctx.ShouldBindJSON(&params); err != nil {
		response.Fail(ctx, errcode.ErrRequest.Wrap(err))
		return
	}
	_, err := ctl.service.Create(ctx.Request.Context(), &params)
	response.Done(ctx, err, http.StatusCreated, response.MsgCreated)
}

func (ctl *SpacecraftCtl) Update(ctx *gin.Context) {
	id, ok := ctx2.ParamId(ctx, "id")
	if !ok {
		response.NotFound(ctx)
		return
	}
	params := spacecraft.SaveReq{}
	if err := ctx.ShouldBindJSON(&params); err != nil {
		response.Fail(ctx, errcode.ErrRequest.Wrap(err))
		return
	}
	err := ctl.service.Update(ctx.Request.Context(), id, &params)
	response.Done(ctx, err, http.StatusAccepted, response.MsgUpdated)
}

func (ctl *SpacecraftCtl) Delete(ctx *gin.Context) {
	id, ok := ctx2.ParamId(ctx, "id")
	if !ok {
		response.NotFound(ctx)
		return
	}
	err := ctl.service.Delete(ctx.Request.Context(), id)
	response.Done(ctx, err, http.StatusAccepted, response.MsgDeleted)
}

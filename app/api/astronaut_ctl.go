package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	ctx2 "go-hangar/app/api/ctx"
	"go-hangar/app/internal/errcode"
	"go-hangar/app/internal/response"
	"go-hangar/app/service/astronaut"
	"go-hangar/app/service/common"
)

type AstronautCtl struct {
	service *astronaut.Service
}

func spacecraftId(ctx *gin.Context) (int64, bool) {
	id, ok := ctx2.ParamId(ctx, "id")
	if !ok {
		response.Message(ctx, http.StatusNotFound, fmt.Sprintf("spacecraft with id=%s not found", ctx.Param("id")))
	}
	return id, ok
}

func parentWithId(ctx *gin.Context) (*common.ParentWithId, bool) {
	if _, ok := spacecraftId(ctx); !ok {
		return nil, false
	}
	params, ok := ctx2.ParentWithId(ctx)
	if !ok {
		response.Message(ctx, http.StatusNotFound, fmt.Sprintf("astro with id=%s not found", ctx.Param("astroId")))
	}
	return params, ok
}

func (ctl *AstronautCtl) List(ctx *gin.Context) {
	sid, ok := spacecraftId(ctx)
	if !ok {
		return
	}
	res, err := ctl.service.List(ctx.Request.Context(), sid)
	response.Response(ctx, err, res)
}

func (ctl *AstronautCtl) Detail(ctx *gin.Context) {
	params, ok := parentWithId(ctx)
	if !ok {
		return
	}
	res, err := ctl.service.Detail(ctx.Request.Context(), params)
	response.Response(ctx, err, res)
}

func (ctl *AstronautCtl) Create(ctx *gin.Context) {
	sid, ok := spacecraftId(ctx)
	if !ok {
		return
	}
	params := astronaut.SaveReq{}
	if err := ctx.ShouldBindJSON(&params); err != nil {
		response.Fail(ctx, errcode.ErrRequest.Wrap(err))
		return
	}
	_, err := ctl.service.Create(ctx.Request.Context(), sid, &params)
	response.Done(ctx, err, http.StatusCreated, response.MsgCreated)
}

func (ctl *AstronautCtl) Update(ctx *gin.Context) {
	id, ok := parentWithId(ctx)
	if !ok {
		return
	}
	params := astronaut.SaveReq{}
	if err := ctx.ShouldBindJSON(&params); err != nil {
		response.Fail(ctx, errcode.ErrRequest.Wrap(err))
		return
	}
	err := ctl.service.Update(ctx.Request.Context(), id, &params)
	response.Done(ctx, err, http.StatusAccepted, response.MsgUpdated)
}

func (ctl *AstronautCtl) Delete(ctx *gin.Context) {
	id, ok := parentWithId(ctx)
	if !ok {
		return
	}
	err := ctl.service.Delete(ctx.Request.Context(), id)
	response.Done(ctx, err, http.StatusAccepted, response.MsgDeleted)
}

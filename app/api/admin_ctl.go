package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go-hangar/app/internal/response"
	"go-hangar/app/migration"
	"go-hangar/app/pkg/notify"
)

type AdminCtl struct {
	migration *migration.Migration
	pub       notify.Publisher
}

// SyncDB 删除并重建全部表
func (ctl *AdminCtl) SyncDB(ctx *gin.Context) {
	err := ctl.migration.Reset()
	if err == nil {
		ctl.pub.Publish(ctx.Request.Context(), notify.NewEvent(notify.DBSynced, 0, 0))
	}
	response.Done(ctx, err, http.StatusCreated, response.MsgCreated)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	ctx2 "go-hangar/app/api/ctx"
	"go-hangar/app/pkg/notify"
	"go.uber.org/zap"
)

type EventsCtl struct {
	hub      *notify.Hub
	upgrader websocket.Upgrader
}

func newEventsCtl(hub *notify.Hub, corsOrigin string) *EventsCtl {
	ctl := &EventsCtl{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	if corsOrigin == "*" {
		ctl.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	} else if corsOrigin != "" {
		ctl.upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || origin == corsOrigin || origin == "http://"+r.Host || origin == "https://"+r.Host
		}
	}
	return ctl
}

// Serve 升级为websocket并推送数据变更事件
func (ctl *EventsCtl) Serve(ctx *gin.Context) {
	conn, err := ctl.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		ctx2.Logger(ctx).Debug("websocket升级失败", zap.Error(err))
		return
	}
	ctl.hub.ServeWS(ctx.Request.Context(), conn)
}

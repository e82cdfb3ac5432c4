package api

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go-hangar/app/api/middleware"
	"go-hangar/app/migration"
	"go-hangar/app/service/astronaut"
	"go-hangar/app/service/spacecraft"
	"go.uber.org/zap"
)

func ApiRoutes(engine *gin.Engine, s *Server) {
	engine.Use(
		middleware.RequestLog(s.log),
		middleware.Metrics,
		middleware.Cors(s.config.Api.CorsOrigin),
	)

	engine.GET("/healthz", func(ctx *gin.Context) {
		sqlDB, err := s.db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx.Request.Context())
		}
		if err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/events", newEventsCtl(s.hub, s.config.Api.CorsOrigin).Serve)

	spacecraftCtl := SpacecraftCtl{service: spacecraft.NewService(s.log, s.db, s.pub)}
	astronautCtl := AstronautCtl{service: astronaut.NewService(s.log, s.db, s.pub)}

	spacecrafts := engine.Group("/spacecrafts")
	{
		spacecrafts.GET("", spacecraftCtl.List)
		spacecrafts.POST("", spacecraftCtl.Create)
		spacecrafts.GET("/:id", spacecraftCtl.Detail)
		spacecrafts.PUT("/:id", spacecraftCtl.Update)
		spacecrafts.DELETE("/:id", spacecraftCtl.Delete)
	}
	// gin要求同一位置的通配名一致，飞船id统一用:id
	astronauts := spacecrafts.Group("/:id/astronauts")
	{
		astronauts.GET("", astronautCtl.List)
		astronauts.POST("", astronautCtl.Create)
		astronauts.GET("/:astroId", astronautCtl.Detail)
		astronauts.PUT("/:astroId", astronautCtl.Update)
		astronauts.DELETE("/:astroId", astronautCtl.Delete)
	}

	if s.config.Admin.Enable {
		adminCtl := AdminCtl{migration: migration.NewMigration(s.log, s.db), pub: s.pub}
		admin := engine.Group("", middleware.AdminToken(s.config.Admin.Token))
		admin.PUT("/syncDB", adminCtl.SyncDB)
		admin.PUT("/syncClcDB", adminCtl.SyncDB)
	}

	webRoutes(engine, s)
}

func webRoutes(engine *gin.Engine, s *Server) {
	if s.webFs == nil {
		return
	}
	index, err := fs.ReadFile(s.webFs, "index.html")
	if err != nil {
		s.log.Warn("页面文件缺失，不提供页面", zap.Error(err))
		return
	}
	engine.GET("/", func(ctx *gin.Context) {
		ctx.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	if assets, err := fs.Sub(s.webFs, "assets"); err == nil {
		engine.StaticFS("/assets", http.FS(assets))
	}
}

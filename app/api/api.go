package api

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wuzfei/cfgstruct/cfgstruct"
	"go-hangar/app/global"
	"go-hangar/app/internal/validate"
	"go-hangar/app/pkg/notify"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Server struct {
	config *global.Config
	log    *zap.Logger
	db     *gorm.DB
	hub    *notify.Hub
	pub    notify.Publisher
	webFs  fs.FS
	server http.Server
}

// NewServer pub为空时只推送到hub，webFs为空时不提供页面
func NewServer(conf *global.Config, log *zap.Logger, db *gorm.DB, hub *notify.Hub, pub notify.Publisher, webFs fs.FS) *Server {
	if hub == nil {
		hub = notify.NewHub(log)
	}
	if pub == nil {
		pub = hub
	}
	return &Server{
		config: conf,
		log:    log,
		db:     db,
		hub:    hub,
		pub:    pub,
		webFs:  webFs,
	}
}

// Handler 组装gin引擎
func (s *Server) Handler() (http.Handler, error) {
	if cfgstruct.DefaultsType() == cfgstruct.DefaultsRelease {
		gin.SetMode(gin.ReleaseMode)
	}
	// 注册自定义验证标签
	if err := validate.RegisterValidation(); err != nil {
		return nil, err
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	ApiRoutes(engine, s)
	return engine, nil
}

func (s *Server) Run(ctx context.Context) error {
	handler, err := s.Handler()
	if err != nil {
		return err
	}
	s.server.Handler = handler

	listener, err := net.Listen("tcp", s.config.Api.Address)
	if err != nil {
		return err
	}
	s.log.Info("服务已启动", zap.String("address", listener.Addr().String()))
	ctx, cancel := context.WithCancel(ctx)
	var group errgroup.Group
	group.Go(func() error {
		<-ctx.Done()
		return s.server.Shutdown(context.Background())
	})
	group.Go(func() error {
		defer cancel()
		_err := s.server.Serve(listener)
		if errors.Is(_err, http.ErrServerClosed) {
			_err = nil
		}
		return _err
	})
	return group.Wait()
}

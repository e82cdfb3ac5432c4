package global

import (
	errs2 "github.com/zeebo/errs"
	"go-hangar/app/pkg/db"
	"go-hangar/app/pkg/log"
	"go-hangar/app/pkg/notify"
)

var Cfg *Config

type Config struct {
	Api struct {
		Address    string `help:"监听地址" devDefault:"0.0.0.0:8989" default:"0.0.0.0:8080"`
		CorsOrigin string `help:"允许跨域的来源，为空不开启跨域" devDefault:"*" default:""`
	}
	Db     db.Config
	Log    log.Config
	Admin  AdminConfig
	Events notify.Config
}

type AdminConfig struct {
	Enable bool   `help:"是否开放 /syncDB 和 /syncClcDB" default:"true"`
	Token  string `help:"管理接口的token，为空时启动自动生成" default:""`
}

func (c *Config) Init() {
	Cfg = c
	errs := errs2.Group{}
	errs.Add(initLog(&c.Log))
	errs.Add(
		initDB(&c.Db),
		initEvents(&c.Events),
		initAdmin(&c.Admin),
	)
	if errs.Err() != nil {
		panic(errs.Err())
	}
}

// Close 释放数据库和消息队列连接
func (c *Config) Close() {
	if Amqp != nil {
		_ = Amqp.Close()
	}
	if DB != nil {
		if sqlDB, err := DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if Log != nil {
		_ = Log.Sync()
	}
}

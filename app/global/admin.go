package global

import (
	"github.com/wuzfei/go-helper/rand"
	"go.uber.org/zap"
)

const adminTokenLen = 32

func initAdmin(conf *AdminConfig) error {
	if !conf.Enable {
		return nil
	}
	if conf.Token == "" {
		conf.Token = rand.StringN(adminTokenLen)
		Log.Warn("未配置管理token，已自动生成", zap.String("token", conf.Token))
	}
	return nil
}

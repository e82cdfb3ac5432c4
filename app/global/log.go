package global

import (
	"go-hangar/app/pkg/log"
	"go.uber.org/zap"
)

var Log *zap.Logger

func initLog(conf *log.Config) (err error) {
	Log = log.NewLog(conf)
	return
}

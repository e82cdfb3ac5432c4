package log

import (
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level      string `help:"日志级别,可选[debug|info|warn|error]" devDefault:"debug" default:"info"`
	Format     string `help:"日志格式,可选[console|json]" devDefault:"console" default:"json"`
	File       string `help:"日志文件,为空时只输出到标准输出" default:""`
	MaxSize    int    `help:"单个日志文件大小(MB)" default:"100"`
	MaxBackups int    `help:"保留的旧日志文件数量" default:"7"`
	MaxAge     int    `help:"旧日志文件保留天数" default:"30"`
	Compress   bool   `help:"是否压缩旧日志" default:"false"`
}

func (c *Config) level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func (c *Config) encoder() zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if c.Format == "console" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(encCfg)
	}
	return zapcore.NewJSONEncoder(encCfg)
}

// NewLog 根据配置创建日志，配置了文件时同时写入滚动文件
func NewLog(conf *Config) *zap.Logger {
	lvl := zap.NewAtomicLevelAt(conf.level())
	cores := []zapcore.Core{
		zapcore.NewCore(conf.encoder(), zapcore.Lock(os.Stdout), lvl),
	}
	if conf.File != "" {
		fileCfg := *conf
		fileCfg.Format = "json"
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   conf.File,
			MaxSize:    conf.MaxSize,
			MaxBackups: conf.MaxBackups,
			MaxAge:     conf.MaxAge,
			Compress:   conf.Compress,
		})
		cores = append(cores, zapcore.NewCore(fileCfg.encoder(), w, lvl))
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}

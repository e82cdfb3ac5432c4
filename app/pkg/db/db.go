package db

import (
	"fmt"
	"time"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const Mysql = "mysql"
const Postgresql = "postgres"
const Sqlite = "sqlite"

var ErrDB = errs.Class("DB")

type Config struct {
	Driver       string `help:"数据库驱动,可选[mysql|postgres|sqlite]" devDefault:"sqlite" default:"mysql"`
	Host         string `help:"数据库地址" default:"localhost"`
	Port         int    `help:"数据库端口" default:"3306"`
	Username     string `help:"数据库帐号" default:"root"`
	Password     string `help:"数据库密码" default:"root"`
	Database     string `help:"数据库名称" default:"hangar"`
	Charset      string `help:"数据库编码" default:"utf8mb4"`
	SslMode      string `help:"pg用" default:"disable"`
	TimeZone     string `help:"时区" default:"UTC"`
	File         string `help:"数据库，sqlite用" default:"./hangar.db"`
	LogLevel     string `help:"数据库日志打印级别,默认为空,可选[error|warn|info]" devDefault:"info" default:"warn"`
	MaxIdleConns int    `help:"最大空闲连接数" default:"5"`
	MaxOpenConns int    `help:"最大连接数" default:"10"`
}

func (c *Config) GetDsn() (dsn string, err error) {
	switch c.Driver {
	case Mysql:
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t",
			c.Username, c.Password, c.Host, c.Port, c.Database, c.Charset, true)
	case Postgresql:
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
			c.Host, c.Username, c.Password, c.Database, c.Port, c.SslMode, c.TimeZone)
	case Sqlite:
		dsn = c.File
	default:
		err = ErrDB.New("数据库驱动错误：%s", c.Driver)
	}
	return
}

func (c *Config) Dialector() (dial gorm.Dialector, err error) {
	var dsn string
	dsn, err = c.GetDsn()
	if err != nil {
		return
	}
	switch c.Driver {
	case Mysql:
		dial = mysql.New(mysql.Config{
			DSN:                       dsn,
			DisableDatetimePrecision:  true,  // 禁用 datetime 精度，MySQL 5.6 之前的数据库不支持
			DontSupportRenameIndex:    true,  // 重命名索引时采用删除并新建的方式，MySQL 5.7 之前的数据库和 MariaDB 不支持重命名索引
			DontSupportRenameColumn:   true,  // 用 `change` 重命名列，MySQL 8 之前的数据库和 MariaDB 不支持重命名列
			SkipInitializeWithVersion: false, // 根据当前 MySQL 版本自动配置
		})
		return
	case Postgresql:
		dial = postgres.New(postgres.Config{
			DSN: dsn,
		})
		return
	case Sqlite:
		dial = sqlite.Open(dsn)
		return
	}
	return nil, ErrDB.New("数据库驱动错误：%s", c.Driver)
}

func NewGormDB(cfg *Config, zapLog *zap.Logger) (*gorm.DB, error) {
	dail, err := cfg.Dialector()
	if err != nil {
		return nil, ErrDB.Wrap(err)
	}
	db, err := gorm.Open(dail, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 getLogInterface(zapLog, cfg.LogLevel),
	})
	if err != nil {
		return nil, ErrDB.Wrap(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, ErrDB.Wrap(err)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db, nil
}

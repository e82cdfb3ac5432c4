package db

import (
	"strings"
	"testing"
)

func TestGetDsn(t *testing.T) {
	cfg := &Config{
		Driver:   Mysql,
		Host:     "localhost",
		Port:     3306,
		Username: "root",
		Password: "secret",
		Database: "hangar",
		Charset:  "utf8mb4",
	}
	dsn, err := cfg.GetDsn()
	if err != nil {
		t.Fatal("mysql dsn", err)
	}
	if dsn != "root:secret@tcp(localhost:3306)/hangar?charset=utf8mb4&parseTime=true" {
		t.Error("unexpected mysql dsn", dsn)
	}

	cfg.Driver = Postgresql
	cfg.Port = 5432
	cfg.SslMode = "disable"
	cfg.TimeZone = "UTC"
	dsn, err = cfg.GetDsn()
	if err != nil {
		t.Fatal("postgres dsn", err)
	}
	if !strings.Contains(dsn, "port=5432") || !strings.Contains(dsn, "dbname=hangar") {
		t.Error("unexpected postgres dsn", dsn)
	}

	cfg.Driver = Sqlite
	cfg.File = "./test.db"
	dsn, _ = cfg.GetDsn()
	if dsn != "./test.db" {
		t.Error("unexpected sqlite dsn", dsn)
	}
}

func TestUnknownDriver(t *testing.T) {
	cfg := &Config{Driver: "oracle"}
	if _, err := cfg.GetDsn(); !ErrDB.Has(err) {
		t.Error("expected DB class error, got", err)
	}
	if _, err := NewGormDB(cfg, nil); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestNewGormDBSqlite(t *testing.T) {
	gdb, err := NewGormDB(&Config{
		Driver:       Sqlite,
		File:         "file:db_test?mode=memory&cache=shared",
		MaxOpenConns: 1,
	}, nil)
	if err != nil {
		t.Fatal("open sqlite", err)
	}
	var one int
	if err = gdb.Raw("SELECT 1").Scan(&one).Error; err != nil || one != 1 {
		t.Error("select 1", one, err)
	}
}

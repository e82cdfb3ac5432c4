// Package testdb opens an isolated in-memory sqlite database with the schema
// already migrated, through the same code path the server uses.
package testdb

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"go-hangar/app/migration"
	"go-hangar/app/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func New(t testing.TB) *gorm.DB {
	t.Helper()
	gdb, err := db.NewGormDB(&db.Config{
		Driver:       db.Sqlite,
		File:         fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	}, zap.NewNop())
	if err != nil {
		t.Fatal("open sqlite", err)
	}
	if err = migration.NewMigration(zap.NewNop(), gdb).Setup(); err != nil {
		t.Fatal("migrate", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

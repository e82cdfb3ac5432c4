package migration

import (
	"go-hangar/app/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Migration struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewMigration(log *zap.Logger, db *gorm.DB) *Migration {
	return &Migration{
		db:  db,
		log: log,
	}
}

func tables() []any {
	return []any{
		&model.Spacecraft{},
		&model.Astronaut{},
	}
}

// Setup 创建缺失的表，不删除数据
func (m *Migration) Setup() error {
	err := m.db.AutoMigrate(tables()...)
	if err != nil {
		m.log.Error("创建表失败", zap.Error(err))
		return err
	}
	m.log.Info("数据表已同步")
	return nil
}

// Reset 删除并重建全部表，数据全部丢失
func (m *Migration) Reset() error {
	t := tables()
	// 先删子表
	for i := len(t) - 1; i >= 0; i-- {
		if err := m.db.Migrator().DropTable(t[i]); err != nil {
			m.log.Error("删除表失败", zap.Error(err))
			return err
		}
	}
	err := m.db.AutoMigrate(t...)
	if err != nil {
		m.log.Error("重建表失败", zap.Error(err))
		return err
	}
	m.log.Warn("数据表已重建，原有数据已清空")
	return nil
}

package spacecraft

import (
	"context"
	"errors"

	"go-hangar/app/internal/errcode"
	"go-hangar/app/model"
	"go-hangar/app/pkg/metrics"
	"go-hangar/app/pkg/notify"
	"go-hangar/app/service/common"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entity = "spacecraft"

var ErrNotFound = errcode.NotFound("not found")

var listFields = common.Fields{
	Filterable: map[string]string{
		"maxSpeed": "max_speed",
		"weight":   "weight",
	},
	Sortable: map[string]string{
		"id":        "id",
		"name":      "name",
		"maxSpeed":  "max_speed",
		"weight":    "weight",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	},
	Preload: []string{"Astronauts"},
}

type Service struct {
	log *zap.Logger
	db  *gorm.DB
	pub notify.Publisher
}

func NewService(log *zap.Logger, db *gorm.DB, pub notify.Publisher) *Service {
	if pub == nil {
		pub = notify.Nop{}
	}
	return &Service{
		log: log,
		db:  db,
		pub: pub,
	}
}

// List 获取列表，total为满足过滤条件的总数
func (srv *Service) List(ctx context.Context, params *common.ListReq) (res *ListRes, err error) {
	q := params.Query(listFields)
	res = &ListRes{Records: make([]*model.Spacecraft, 0)}
	_db := srv.db.WithContext(ctx)
	err = _db.Model(&model.Spacecraft{}).Scopes(q.CountQuery()...).Count(&res.Count).Error
	if err != nil {
		return nil, err
	}
	err = _db.Scopes(q.FindQuery()...).Find(&res.Records).Error
	if err != nil {
		return nil, err
	}
	return
}

// Detail 详情，包含宇航员
func (srv *Service) Detail(ctx context.Context, id int64) (m *model.Spacecraft, err error) {
	m = &model.Spacecraft{}
	err = srv.db.WithContext(ctx).Preload("Astronauts", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}).First(m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return
}

// Create 创建
func (srv *Service) Create(ctx context.Context, params *SaveReq) (m *model.Spacecraft, err error) {
	defer func() { metrics.Mutation(entity, "create", err) }()
	m = &model.Spacecraft{}
	params.apply(m)
	if err = srv.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return nil, err
	}
	srv.pub.Publish(ctx, notify.NewEvent(notify.SpacecraftCreated, m.ID, 0))
	return m, nil
}

// Update 更新，只修改传入的字段，写库前整体校验
func (srv *Service) Update(ctx context.Context, id int64, params *SaveReq) (err error) {
	defer func() { metrics.Mutation(entity, "update", err) }()
	m := model.Spacecraft{}
	_db := srv.db.WithContext(ctx)
	err = _db.First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return
	}
	params.apply(&m)
	if err = _db.Omit(clause.Associations).Save(&m).Error; err != nil {
		return
	}
	srv.pub.Publish(ctx, notify.NewEvent(notify.SpacecraftUpdated, m.ID, 0))
	return nil
}

// Delete 删除飞船及其宇航员
func (srv *Service) Delete(ctx context.Context, id int64) (err error) {
	defer func() { metrics.Mutation(entity, "delete", err) }()
	err = srv.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := model.Spacecraft{}
		if err := tx.Select("id").First(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("spacecraft_id = ?", id).Delete(&model.Astronaut{}).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		return
	}
	srv.pub.Publish(ctx, notify.NewEvent(notify.SpacecraftDeleted, id, 0))
	return nil
}

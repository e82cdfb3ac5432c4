package astronaut

import (
	"context"
	"errors"
	"fmt"

	"go-hangar/app/internal/errcode"
	"go-hangar/app/model"
	"go-hangar/app/pkg/metrics"
	"go-hangar/app/pkg/notify"
	"go-hangar/app/service/common"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const entity = "astronaut"

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

func spacecraftNotFound(id int64) error {
	return errcode.NotFound(fmt.Sprintf("spacecraft with id=%d not found", id))
}

func astronautNotFound(id int64) error {
	return errcode.NotFound(fmt.Sprintf("astro with id=%d not found", id))
}

// parent 确认所属飞船存在
func (srv *Service) parent(db *gorm.DB, spacecraftId int64) error {
	var n int64
	err := db.Model(&model.Spacecraft{}).Where("id = ?", spacecraftId).Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return spacecraftNotFound(spacecraftId)
	}
	return nil
}

// find 在飞船范围内查找宇航员
func (srv *Service) find(db *gorm.DB, params *common.ParentWithId) (*model.Astronaut, error) {
	if err := srv.parent(db, params.SpacecraftId); err != nil {
		return nil, err
	}
	m := &model.Astronaut{}
	err := db.Where("spacecraft_id = ? and id = ?", params.SpacecraftId, params.ID).First(m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, astronautNotFound(params.ID)
		}
		return nil, err
	}
	return m, nil
}

// List 飞船的全部宇航员
func (srv *Service) List(ctx context.Context, spacecraftId int64) (list []*model.Astronaut, err error) {
	_db := srv.db.WithContext(ctx)
	if err = srv.parent(_db, spacecraftId); err != nil {
		return nil, err
	}
	list = make([]*model.Astronaut, 0)
	err = _db.Where("spacecraft_id = ?", spacecraftId).Order("id").Find(&list).Error
	return
}

func (srv *Service) Detail(ctx context.Context, params *common.ParentWithId) (*model.Astronaut, error) {
	return srv.find(srv.db.WithContext(ctx), params)
}

// Create 所属飞船取自路径
func (srv *Service) Create(ctx context.Context, spacecraftId int64, params *SaveReq) (m *model.Astronaut, err error) {
	defer func() { metrics.Mutation(entity, "create", err) }()
	_db := srv.db.WithContext(ctx)
	if err = srv.parent(_db, spacecraftId); err != nil {
		return nil, err
	}
	m = &model.Astronaut{}
	params.apply(m)
	m.SpacecraftId = spacecraftId
	if err = _db.Create(m).Error; err != nil {
		return nil, err
	}
	srv.pub.Publish(ctx, notify.NewEvent(notify.AstronautCreated, spacecraftId, m.ID))
	return m, nil
}

// Update 只修改传入的字段，不允许更换所属飞船
func (srv *Service) Update(ctx context.Context, params *common.ParentWithId, req *SaveReq) (err error) {
	defer func() { metrics.Mutation(entity, "update", err) }()
	_db := srv.db.WithContext(ctx)
	m, err := srv.find(_db, params)
	if err != nil {
		return
	}
	req.apply(m)
	if err = _db.Save(m).Error; err != nil {
		return
	}
	srv.pub.Publish(ctx, notify.NewEvent(notify.AstronautUpdated, params.SpacecraftId, m.ID))
	return nil
}

func (srv *Service) Delete(ctx context.Context, params *common.ParentWithId) (err error) {
	defer func() { metrics.Mutation(entity, "delete", err) }()
	_db := srv.db.WithContext(ctx)
	m, err := srv.find(_db, params)
	if err != nil {
		return
	}
	if err = _db.Delete(m).Error; err != nil {
		return
	}
	srv.pub.Publish(ctx, notify.NewEvent(notify.AstronautDeleted, params.SpacecraftId, m.ID))
	return nil
}

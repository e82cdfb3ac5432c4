package model

import (
	"time"

	"go-hangar/app/internal/validate"
	"go-hangar/app/model/field"
	"gorm.io/gorm"
)

type Astronaut struct {
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement;" json:"id"`
	Name         string     `gorm:"column:name;size:200;not null;comment:姓名" json:"name" validate:"required,min=5,max=200"`
	Role         field.Role `gorm:"column:role;size:20;not null;comment:职位" json:"role" validate:"required,astronaut_role"`
	SpacecraftId int64      `gorm:"column:spacecraft_id;index;not null;comment:所属飞船" json:"spacecraftId" validate:"required"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Astronaut) TableName() string {
	return "astronaut"
}

func (m *Astronaut) BeforeSave(_ *gorm.DB) error {
	return validate.Struct(m)
}

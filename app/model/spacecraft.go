package model

import (
	"time"

	"go-hangar/app/internal/validate"
	"gorm.io/gorm"
)

type Spacecraft struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement;" json:"id"`
	Name     string `gorm:"column:name;size:200;not null;comment:名称" json:"name" validate:"required,min=3,max=200"`
	MaxSpeed int    `gorm:"column:max_speed;not null;comment:最大速度" json:"maxSpeed" validate:"required,min=1000"`
	Weight   int    `gorm:"column:weight;not null;comment:重量" json:"weight" validate:"required,min=200"`

	Astronauts []*Astronaut `gorm:"foreignKey:SpacecraftId;constraint:OnDelete:CASCADE" json:"astronauts"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Spacecraft) TableName() string {
	return "spacecraft"
}

func (m *Spacecraft) BeforeSave(_ *gorm.DB) error {
	return validate.Struct(m)
}

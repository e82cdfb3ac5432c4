package spacecraft

import (
	"go-hangar/app/model"
)

// SaveReq 创建和更新共用，更新时只修改传入的字段
type SaveReq struct {
	Name     *string `json:"name"`
	MaxSpeed *int    `json:"maxSpeed"`
	Weight   *int    `json:"weight"`
}

func (r *SaveReq) apply(m *model.Spacecraft) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.MaxSpeed != nil {
		m.MaxSpeed = *r.MaxSpeed
	}
	if r.Weight != nil {
		m.Weight = *r.Weight
	}
}

type ListRes struct {
	Records []*model.Spacecraft `json:"records"`
	Count   int64               `json:"count"`
}

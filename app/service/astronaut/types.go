package astronaut

import (
	"go-hangar/app/model"
	"go-hangar/app/model/field"
)

// SaveReq 请求中的spacecraftId会被忽略，所属飞船以路径为准
type SaveReq struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

func (r *SaveReq) apply(m *model.Astronaut) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Role != nil {
		m.Role = field.Role(*r.Role)
	}
}

package field

import (
	"go-hangar/app/internal/constants"
)

// Role 宇航员职位
type Role string

func (r Role) Valid() bool {
	return constants.Role(r).Valid()
}

func (r Role) String() string {
	return string(r)
}

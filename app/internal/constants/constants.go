package constants

// DefaultPageSize 列表默认每页条数
const DefaultPageSize = 3

// SortDesc 排序参数为该值时倒序
const SortDesc = "-1"

const AdminTokenHeader = "X-Admin-Token"

type Role string

const RoleCommander Role = "COMMANDER"
const RolePilot Role = "PILOT"
const RoleEngineer Role = "ENGINEER"

var roles = map[Role]struct{}{
	RoleCommander: {},
	RolePilot:     {},
	RoleEngineer:  {},
}

func (r Role) Valid() bool {
	_, ok := roles[r]
	return ok
}

func Roles() []Role {
	return []Role{RoleCommander, RolePilot, RoleEngineer}
}

package common

// ParentWithId 嵌套资源的定位参数
type ParentWithId struct {
	SpacecraftId int64
	ID           int64
}

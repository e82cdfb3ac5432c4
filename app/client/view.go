package client

import (
	"net/url"
	"strconv"

	"go-hangar/app/internal/constants"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ViewState 列表的筛选、排序和分页状态，可序列化保存
type ViewState struct {
	Filters   map[string]string `json:"filters,omitempty"`
	SortField string            `json:"sortField,omitempty"`
	SortOrder int               `json:"sortOrder,omitempty"`
	Page      *int              `json:"page,omitempty"`
	PageSize  int               `json:"pageSize,omitempty"`
}

// NewViewState 第一页，每页3条
func NewViewState() ViewState {
	page := 0
	return ViewState{
		Filters:   map[string]string{},
		SortOrder: 1,
		Page:      &page,
		PageSize:  constants.DefaultPageSize,
	}
}

// SortBy 同一字段再次排序时反转顺序
func (v ViewState) SortBy(field string) ViewState {
	if v.SortField == field {
		v.SortOrder = -v.SortOrder
		if v.SortOrder == 0 {
			v.SortOrder = -1
		}
	} else {
		v.SortField = field
		v.SortOrder = 1
	}
	return v
}

// Filter 修改筛选条件后回到第一页
func (v ViewState) Filter(field, value string) ViewState {
	filters := make(map[string]string, len(v.Filters)+1)
	for k, val := range v.Filters {
		filters[k] = val
	}
	filters[field] = value
	v.Filters = filters
	if v.Page != nil {
		page := 0
		v.Page = &page
	}
	return v
}

func (v ViewState) Values() url.Values {
	q := url.Values{}
	keys := maps.Keys(v.Filters)
	slices.Sort(keys)
	for _, k := range keys {
		if v.Filters[k] != "" {
			q.Set(k, v.Filters[k])
		}
	}
	if v.SortField != "" {
		q.Set("sortField", v.SortField)
		if v.SortOrder < 0 {
			q.Set("sortOrder", constants.SortDesc)
		} else {
			q.Set("sortOrder", "1")
		}
	}
	if v.Page != nil {
		q.Set("page", strconv.Itoa(*v.Page))
	}
	if v.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(v.PageSize))
	}
	return q
}

package common

import (
	"net/url"
	"strconv"
	"strings"

	"go-hangar/app/internal/constants"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Fields 列表接口允许使用的字段，key为接口字段名，value为数据库列名
type Fields struct {
	Filterable map[string]string
	Sortable   map[string]string
	Preload    []string
}

// ListReq 列表查询参数，保留原始字符串，解析在 Query 中完成
type ListReq struct {
	Filters   map[string]string `json:"filters"`
	SortField string            `json:"sortField"`
	SortOrder string            `json:"sortOrder"`
	Page      string            `json:"page"`
	PageSize  string            `json:"pageSize"`
}

// ParseListReq 从query string读取参数，每个key只取第一个值
func ParseListReq(values url.Values) *ListReq {
	req := &ListReq{
		Filters:   make(map[string]string),
		SortField: strings.TrimSpace(values.Get("sortField")),
		SortOrder: strings.TrimSpace(values.Get("sortOrder")),
		Page:      strings.TrimSpace(values.Get("page")),
		PageSize:  strings.TrimSpace(values.Get("pageSize")),
	}
	for k := range values {
		req.Filters[k] = values.Get(k)
	}
	return req
}

type Condition struct {
	Field  string
	Column string
	Value  string
}

type Order struct {
	Field  string
	Column string
	Desc   bool
}

// Query 列表查询描述，相同的ListReq总是得到相同的Query
type Query struct {
	Where   []Condition
	Order   *Order
	Paged   bool
	Limit   int
	Offset  int
	Preload []string
}

// Query 构造查询；不在白名单中的过滤字段和排序字段被忽略，
// page解析失败时不分页，pageSize非法时使用默认值
func (r *ListReq) Query(fields Fields) Query {
	q := Query{}

	keys := maps.Keys(r.Filters)
	slices.Sort(keys)
	for _, k := range keys {
		col, ok := fields.Filterable[k]
		if !ok || r.Filters[k] == "" {
			continue
		}
		q.Where = append(q.Where, Condition{Field: k, Column: col, Value: r.Filters[k]})
	}

	if col, ok := fields.Sortable[r.SortField]; ok {
		q.Order = &Order{Field: r.SortField, Column: col, Desc: r.SortOrder == constants.SortDesc}
	}

	pageSize, err := strconv.Atoi(r.PageSize)
	if err != nil || pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}
	if page, err := strconv.Atoi(r.Page); err == nil && page >= 0 {
		q.Paged = true
		q.Limit = pageSize
		q.Offset = pageSize * page
	}

	q.Preload = append(q.Preload, fields.Preload...)
	return q
}

func (q Query) WhereQuery() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, c := range q.Where {
			db = db.Where(clause.Gte{Column: clause.Column{Name: c.Column}, Value: c.Value})
		}
		return db
	}
}

func (q Query) OrderQuery() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.Order == nil {
			return db
		}
		return db.Order(clause.OrderByColumn{Column: clause.Column{Name: q.Order.Column}, Desc: q.Order.Desc})
	}
}

func (q Query) PageQuery() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !q.Paged {
			return db
		}
		return db.Limit(q.Limit).Offset(q.Offset)
	}
}

func (q Query) PreloadQuery() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, p := range q.Preload {
			db = db.Preload(p)
		}
		return db
	}
}

// FindQuery 列表查询使用的全部scope
func (q Query) FindQuery() []func(db *gorm.DB) *gorm.DB {
	return []func(db *gorm.DB) *gorm.DB{q.WhereQuery(), q.OrderQuery(), q.PageQuery(), q.PreloadQuery()}
}

// CountQuery 统计总数只使用过滤条件
func (q Query) CountQuery() []func(db *gorm.DB) *gorm.DB {
	return []func(db *gorm.DB) *gorm.DB{q.WhereQuery()}
}

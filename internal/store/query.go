package store

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Orderings used by the site. Ties fall back to the identity so pages render
// in a stable order.
const (
	OrderDisplay   = "display_order asc, id asc"
	OrderPublished = "published_date desc, id desc"
	OrderNewest    = "created_at desc, id desc"
)

// Cond is a column comparison against a literal value.
type Cond struct {
	Column string      `json:"column"`
	Value  interface{} `json:"value"`
}

// Eq builds an equality condition.
func Eq(column string, value interface{}) Cond {
	return Cond{Column: column, Value: value}
}

// Query describes a table read. The zero value selects every row in the
// store's default order.
type Query struct {
	// ActiveOnly keeps rows whose is_active flag is set.
	ActiveOnly bool   `json:"active_only,omitempty"`
	Where      []Cond `json:"where,omitempty"`
	Not        []Cond `json:"not,omitempty"`
	Order      string `json:"order,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
	// Cacheable marks public reads that may be served from the read cache.
	Cacheable bool `json:"-"`
}

// ByID selects the row with the given identity.
func ByID(id uint) Query {
	return Query{Where: []Cond{Eq("id", id)}}
}

func (q Query) filters(db *gorm.DB) *gorm.DB {
	if q.ActiveOnly {
		db = db.Where(clause.Eq{Column: clause.Column{Name: "is_active"}, Value: true})
	}
	for _, c := range q.Where {
		db = db.Where(clause.Eq{Column: clause.Column{Name: c.Column}, Value: c.Value})
	}
	for _, c := range q.Not {
		db = db.Where(clause.Neq{Column: clause.Column{Name: c.Column}, Value: c.Value})
	}
	return db
}

func (q Query) page(db *gorm.DB) *gorm.DB {
	if q.Order != "" {
		db = db.Order(q.Order)
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	if q.Offset > 0 {
		db = db.Offset(q.Offset)
	}
	return db
}

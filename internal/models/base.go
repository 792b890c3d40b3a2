package models

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// BaseModel provides the integer identity and timestamps shared by content tables.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id" form:"-"`
	CreatedAt time.Time `json:"created_at" form:"-"`
	UpdatedAt time.Time `json:"updated_at" form:"-"`
}

// GetID returns the row identity.
func (b *BaseModel) GetID() uint {
	return b.ID
}

// SetID replaces the row identity; zero lets the store assign one.
func (b *BaseModel) SetID(id uint) {
	b.ID = id
}

// SettingsID is the fixed identity of every settings singleton row.
const SettingsID uint = 1

// StringList is an ordered list of strings stored as text[] on PostgreSQL and
// as the array literal text on other dialects.
type StringList []string

// Value encodes the list with the PostgreSQL array codec.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return pq.StringArray{}.Value()
	}
	return pq.StringArray(l).Value()
}

// Scan decodes an array literal produced by Value.
func (l *StringList) Scan(src interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*l = StringList(arr)
	return nil
}

// GormDBDataType picks the column type per dialect.
func (StringList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// Lines renders the list one item per line for textarea editing.
func (l StringList) Lines() string {
	return strings.Join(l, "\n")
}

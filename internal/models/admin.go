package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminUser is a staff account allowed into the admin panel.
type AdminUser struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex;size:200"`
	PasswordHash string `json:"-"`
}

// AdminSession is a server-side login session referenced by the session cookie.
type AdminSession struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AdminUserID uint      `gorm:"index" json:"admin_user_id"`
	AdminUser   AdminUser `json:"-"`
	ExpiresAt   time.Time `gorm:"index" json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate ensures UUIDs are generated for new sessions.
func (s *AdminSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Expired reports whether the session is past its expiry at now.
func (s *AdminSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

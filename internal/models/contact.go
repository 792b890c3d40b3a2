package models

import "gorm.io/gorm"

// Contact submission statuses.
const (
	ContactPending   = "pending"
	ContactContacted = "contacted"
	ContactCompleted = "completed"
	ContactCancelled = "cancelled"
)

// ContactStatuses lists the statuses an operator can assign, in workflow order.
var ContactStatuses = []string{ContactPending, ContactContacted, ContactCompleted, ContactCancelled}

// ContactSubmission is an appointment request left through the contact form.
type ContactSubmission struct {
	BaseModel
	Name          string  `json:"name" form:"name" validate:"required,max=120"`
	Email         string  `json:"email" form:"email" validate:"required,email,max=200"`
	Phone         string  `json:"phone" form:"phone" validate:"required,max=40"`
	Service       string  `json:"service" form:"service" validate:"max=120"`
	PreferredDate *string `json:"preferred_date" gorm:"size:10" form:"-"`
	Message       string  `json:"message" form:"message" validate:"max=5000"`
	Status        string  `json:"status" gorm:"size:20;index;default:pending" form:"-"`
}

// BeforeCreate starts every submission in the pending state.
func (s *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	s.Status = ContactPending
	return nil
}

// ValidContactStatus reports whether status is one of ContactStatuses.
func ValidContactStatus(status string) bool {
	for _, s := range ContactStatuses {
		if s == status {
			return true
		}
	}
	return false
}

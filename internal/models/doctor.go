package models

// Doctor is a physician profile shown on the doctors page.
type Doctor struct {
	BaseModel
	Name           string `json:"name" form:"name" validate:"required,max=120"`
	Specialty      string `json:"specialty" form:"specialty" validate:"required,max=120"`
	Qualifications string `json:"qualifications" form:"qualifications"`
	Experience     string `json:"experience" form:"experience"`
	Description    string `json:"description" form:"description"`
	ImageURL       string `json:"image_url" form:"image_url" validate:"omitempty,url"`
	Email          string `json:"email" form:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" form:"phone" validate:"max=40"`
	IsActive       bool   `json:"is_active" form:"is_active"`
	DisplayOrder   int    `json:"display_order" form:"display_order"`
}

package models

// Service is a clinical department listed on the services page.
type Service struct {
	BaseModel
	IconName     string     `json:"icon_name" form:"icon_name"`
	Title        string     `json:"title" form:"title" validate:"required,max=120"`
	Description  string     `json:"description" form:"description"`
	Features     StringList `json:"features" form:"-"`
	IsActive     bool       `json:"is_active" form:"is_active"`
	DisplayOrder int        `json:"display_order" form:"display_order"`
}

package models

// HomeFeature is a highlight card in the home page "why choose us" grid.
type HomeFeature struct {
	BaseModel
	IconName     string `json:"icon_name" form:"icon_name"`
	Title        string `json:"title" form:"title" validate:"required,max=120"`
	Description  string `json:"description" form:"description"`
	IsActive     bool   `json:"is_active" form:"is_active"`
	DisplayOrder int    `json:"display_order" form:"display_order"`
}

// HomeSpecialization is a tile in the home page specializations strip.
type HomeSpecialization struct {
	BaseModel
	IconName     string `json:"icon_name" form:"icon_name"`
	Name         string `json:"name" form:"name" validate:"required,max=120"`
	Count        string `json:"count" form:"count"`
	Color        string `json:"color" form:"color"`
	IsActive     bool   `json:"is_active" form:"is_active"`
	DisplayOrder int    `json:"display_order" form:"display_order"`
}

// PharmacyFeature is a highlight card at the top of the medicine page.
type PharmacyFeature struct {
	BaseModel
	IconName     string `json:"icon_name" form:"icon_name"`
	Title        string `json:"title" form:"title" validate:"required,max=120"`
	Description  string `json:"description" form:"description"`
	IsActive     bool   `json:"is_active" form:"is_active"`
	DisplayOrder int    `json:"display_order" form:"display_order"`
}

// PharmacyService describes a pharmaceutical care offering.
type PharmacyService struct {
	BaseModel
	IconName     string `json:"icon_name" form:"icon_name"`
	Title        string `json:"title" form:"title" validate:"required,max=120"`
	Description  string `json:"description" form:"description"`
	IsActive     bool   `json:"is_active" form:"is_active"`
	DisplayOrder int    `json:"display_order" form:"display_order"`
}

// MedicineCategory is a browsable group of medications.
type MedicineCategory struct {
	BaseModel
	IconName     string `json:"icon_name" form:"icon_name"`
	Name         string `json:"name" form:"name" validate:"required,max=120"`
	Description  string `json:"description" form:"description"`
	IsActive     bool   `json:"is_active" form:"is_active"`
	DisplayOrder int    `json:"display_order" form:"display_order"`
}

// PopularMedicine lists commonly requested items under a category heading.
type PopularMedicine struct {
	BaseModel
	CategoryName string     `json:"category_name" form:"category_name" validate:"required,max=120"`
	Items        StringList `json:"items" form:"-"`
	IsActive     bool       `json:"is_active" form:"is_active"`
	DisplayOrder int        `json:"display_order" form:"display_order"`
}

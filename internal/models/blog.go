package models

// BlogPost is an article; Slug is the public lookup key and is not unique at
// the database level.
type BlogPost struct {
	BaseModel
	Title         string `json:"title" form:"title" validate:"required,max=200"`
	Slug          string `json:"slug" gorm:"index" form:"slug" validate:"required,slug,max=200"`
	Excerpt       string `json:"excerpt" form:"excerpt"`
	Content       string `json:"content" form:"content"`
	Author        string `json:"author" form:"author" validate:"max=120"`
	PublishedDate string `json:"published_date" gorm:"size:10;index" form:"published_date" validate:"omitempty,datetime=2006-01-02"`
	Category      string `json:"category" form:"category" validate:"max=80"`
	ReadTime      string `json:"read_time" form:"read_time" validate:"max=40"`
	ImageURL      string `json:"image_url" form:"image_url" validate:"omitempty,url"`
	IsFeatured    bool   `json:"is_featured" form:"is_featured"`
	IsPublished   bool   `json:"is_published" form:"is_published"`
}

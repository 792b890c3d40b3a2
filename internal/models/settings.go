package models

// ClinicSettings holds site-wide identity and contact details shown in the
// header, footer and contact page. One row with id 1.
type ClinicSettings struct {
	BaseModel
	Name            string `json:"name" form:"name" validate:"max=120"`
	LogoInitials    string `json:"logo_initials" form:"logo_initials" validate:"max=4"`
	Description     string `json:"description" form:"description"`
	Phone           string `json:"phone" form:"phone" validate:"max=40"`
	PhoneSecondary  string `json:"phone_secondary" form:"phone_secondary" validate:"max=40"`
	Email           string `json:"email" form:"email" validate:"omitempty,email"`
	EmailSecondary  string `json:"email_secondary" form:"email_secondary" validate:"omitempty,email"`
	Address         string `json:"address" form:"address"`
	AddressLine2    string `json:"address_line2" form:"address_line2"`
	WeekdayHours    string `json:"weekday_hours" form:"weekday_hours"`
	SaturdayHours   string `json:"saturday_hours" form:"saturday_hours"`
	SundayHours     string `json:"sunday_hours" form:"sunday_hours"`
	WeekendHours    string `json:"weekend_hours" form:"weekend_hours"`
	EmergencyNumber string `json:"emergency_number" form:"emergency_number"`
	EmergencyText   string `json:"emergency_text" form:"emergency_text"`
	FacebookURL     string `json:"facebook_url" form:"facebook_url" validate:"omitempty,url"`
	TwitterURL      string `json:"twitter_url" form:"twitter_url" validate:"omitempty,url"`
	InstagramURL    string `json:"instagram_url" form:"instagram_url" validate:"omitempty,url"`
	LinkedinURL     string `json:"linkedin_url" form:"linkedin_url" validate:"omitempty,url"`
	CopyrightText   string `json:"copyright_text" form:"copyright_text"`
	MapsURL         string `json:"maps_url" form:"maps_url" validate:"omitempty,url"`
}

// HomePageSettings holds the home page copy and headline statistics.
type HomePageSettings struct {
	BaseModel
	HeroTitle           string `json:"hero_title" form:"hero_title" validate:"max=200"`
	HeroSubtitle        string `json:"hero_subtitle" form:"hero_subtitle" validate:"max=200"`
	HeroDescription     string `json:"hero_description" form:"hero_description"`
	HeroImageURL        string `json:"hero_image_url" form:"hero_image_url" validate:"omitempty,url"`
	AboutTitle          string `json:"about_title" form:"about_title"`
	AboutDescription1   string `json:"about_description1" form:"about_description1"`
	AboutDescription2   string `json:"about_description2" form:"about_description2"`
	CTATitle            string `json:"cta_title" form:"cta_title"`
	CTADescription      string `json:"cta_description" form:"cta_description"`
	StatDoctors         string `json:"stat_doctors" form:"stat_doctors" validate:"max=20"`
	StatSpecializations string `json:"stat_specializations" form:"stat_specializations" validate:"max=20"`
	StatPatients        string `json:"stat_patients" form:"stat_patients" validate:"max=20"`
	StatEmergency       string `json:"stat_emergency" form:"stat_emergency" validate:"max=20"`
	Phone               string `json:"phone" form:"phone" validate:"max=40"`
}

// PharmacySettings holds the medicine page hero and pharmacy contacts.
type PharmacySettings struct {
	BaseModel
	HeroTitle        string `json:"hero_title" form:"hero_title" validate:"max=200"`
	HeroDescription  string `json:"hero_description" form:"hero_description"`
	ServicesImageURL string `json:"services_image_url" form:"services_image_url" validate:"omitempty,url"`
	Phone            string `json:"phone" form:"phone" validate:"max=40"`
	Email            string `json:"email" form:"email" validate:"omitempty,email"`
}

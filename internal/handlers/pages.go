package handlers

import (
	"strings"
	"time"

	"github.com/example/alhayat/internal/content"
	"github.com/example/alhayat/internal/models"
	"github.com/example/alhayat/internal/store"
	"github.com/example/alhayat/internal/utils"
)

// adminPage is one entry of the admin navigation: an optional settings form
// followed by the collections edited on that page.
type adminPage struct {
	title    string
	path     string
	settings settingsEditor
	sections []editorSection
}

var (
	displayColumns = []column{
		{Name: "display_order", Label: "Order"},
		{Name: "is_active", Label: "Active", Kind: "bool"},
	}
	pharmacyServiceIcons = []content.Icon{
		content.Pill, content.Users, content.Truck, content.Activity,
		content.Clock, content.Shield, content.CheckCircle, content.ShoppingCart,
	}
)

func withDisplay(cols ...column) []column {
	return append(cols, displayColumns...)
}

func nextOrder(n int) int {
	return n + 1
}

func adminPages(t *Tables) []*adminPage {
	return []*adminPage{
		{
			title:    "Home Page",
			path:     "/admin/home",
			settings: homeSettings(t),
			sections: []editorSection{homeFeatures(t), homeSpecializations(t)},
		},
		{
			title:    "Doctors",
			path:     "/admin/doctors",
			sections: []editorSection{doctors(t)},
		},
		{
			title:    "Services",
			path:     "/admin/services",
			sections: []editorSection{clinicServices(t)},
		},
		{
			title:    "Pharmacy",
			path:     "/admin/pharmacy",
			settings: pharmacySettings(t),
			sections: []editorSection{pharmacyFeatures(t), medicineCategories(t), popularMedicines(t), pharmacyServices(t)},
		},
		{
			title:    "Blog",
			path:     "/admin/blog",
			sections: []editorSection{blogPosts(t)},
		},
		{
			title:    "Settings",
			path:     "/admin/settings",
			settings: clinicSettings(t),
		},
	}
}

func clinicSettings(t *Tables) settingsEditor {
	return &settingsForm[models.ClinicSettings]{
		heading:  "Clinic Information",
		action:   "/admin/settings",
		table:    t.Clinic,
		defaults: models.DefaultClinicSettings,
		fields: []formField{
			field("name", "Clinic name", "text"),
			field("logo_initials", "Logo initials", "text"),
			field("description", "Description", "textarea"),
			field("phone", "Phone", "text"),
			field("phone_secondary", "Secondary phone", "text"),
			field("email", "Email", "email"),
			field("email_secondary", "Secondary email", "email"),
			field("address", "Address", "text"),
			field("address_line2", "Address line 2", "text"),
			field("weekday_hours", "Weekday hours", "text"),
			field("saturday_hours", "Saturday hours", "text"),
			field("sunday_hours", "Sunday hours", "text"),
			field("weekend_hours", "Weekend hours", "text"),
			field("emergency_number", "Emergency number", "text"),
			field("emergency_text", "Emergency text", "text"),
			field("facebook_url", "Facebook URL", "url"),
			field("twitter_url", "Twitter URL", "url"),
			field("instagram_url", "Instagram URL", "url"),
			field("linkedin_url", "LinkedIn URL", "url"),
			field("copyright_text", "Copyright text", "text"),
			field("maps_url", "Google Maps embed URL", "url"),
		},
	}
}

func homeSettings(t *Tables) settingsEditor {
	return &settingsForm[models.HomePageSettings]{
		heading:  "Home Page Content",
		action:   "/admin/home/settings",
		table:    t.HomePage,
		defaults: models.DefaultHomePageSettings,
		fields: []formField{
			field("hero_title", "Hero title", "text"),
			field("hero_subtitle", "Hero subtitle", "text"),
			field("hero_description", "Hero description", "textarea"),
			field("hero_image_url", "Hero image URL", "url"),
			field("about_title", "About title", "text"),
			field("about_description1", "About paragraph 1", "textarea"),
			field("about_description2", "About paragraph 2", "textarea"),
			field("cta_title", "Call to action title", "text"),
			field("cta_description", "Call to action text", "textarea"),
			field("stat_doctors", "Doctors statistic", "text"),
			field("stat_specializations", "Specializations statistic", "text"),
			field("stat_patients", "Patients statistic", "text"),
			field("stat_emergency", "Emergency statistic", "text"),
			field("phone", "Appointment phone", "text"),
		},
	}
}

func pharmacySettings(t *Tables) settingsEditor {
	return &settingsForm[models.PharmacySettings]{
		heading:  "Pharmacy Page Content",
		action:   "/admin/pharmacy/settings",
		table:    t.Pharmacy,
		defaults: models.DefaultPharmacySettings,
		fields: []formField{
			field("hero_title", "Hero title", "text"),
			field("hero_description", "Hero description", "textarea"),
			field("services_image_url", "Services image URL", "url"),
			field("phone", "Pharmacy phone", "text"),
			field("email", "Pharmacy email", "email"),
		},
	}
}

func homeFeatures(t *Tables) editorSection {
	return &collection[models.HomeFeature]{
		title:    "Features",
		singular: "Feature",
		page:     "/admin/home",
		base:     "/admin/home/features",
		table:    t.HomeFeatures,
		order:    store.OrderDisplay,
		fields: []formField{
			iconField(content.HomeFeatureIcons),
			required("title", "Title"),
			field("description", "Description", "textarea"),
			orderField(),
			activeField(),
		},
		columns: withDisplay(column{Name: "icon_name", Label: "Icon", Kind: "icon"}, column{Name: "title", Label: "Title"}),
		blank: func(items []models.HomeFeature) models.HomeFeature {
			return models.HomeFeature{IconName: content.Award.String(), IsActive: true, DisplayOrder: nextOrder(len(items))}
		},
		label: func(f models.HomeFeature) string { return f.Title },
	}
}

func homeSpecializations(t *Tables) editorSection {
	return &collection[models.HomeSpecialization]{
		title:    "Specializations",
		singular: "Specialization",
		page:     "/admin/home",
		base:     "/admin/home/specializations",
		table:    t.HomeSpecializations,
		order:    store.OrderDisplay,
		fields: []formField{
			iconField(content.SpecializationIcons),
			required("name", "Name"),
			field("count", "Count label", "text"),
			field("color", "Color classes", "text"),
			orderField(),
			activeField(),
		},
		columns: withDisplay(column{Name: "icon_name", Label: "Icon", Kind: "icon"}, column{Name: "name", Label: "Name"}, column{Name: "count", Label: "Count"}),
		blank: func(items []models.HomeSpecialization) models.HomeSpecialization {
			return models.HomeSpecialization{
				IconName:     content.Stethoscope.String(),
				Color:        models.DefaultSpecializationColor,
				IsActive:     true,
				DisplayOrder: nextOrder(len(items)),
			}
		},
		label: func(s models.HomeSpecialization) string { return s.Name },
	}
}

func doctors(t *Tables) editorSection {
	return &collection[models.Doctor]{
		title:    "Doctors",
		singular: "Doctor",
		page:     "/admin/doctors",
		base:     "/admin/doctors",
		table:    t.Doctors,
		order:    store.OrderDisplay,
		fields: []formField{
			required("name", "Name"),
			required("specialty", "Specialty"),
			field("qualifications", "Qualifications", "text"),
			field("experience", "Experience", "text"),
			field("description", "Description", "textarea"),
			field("image_url", "Photo URL", "url"),
			field("email", "Email", "email"),
			field("phone", "Phone", "text"),
			orderField(),
			activeField(),
		},
		columns: withDisplay(column{Name: "name", Label: "Name"}, column{Name: "specialty", Label: "Specialty"}),
		blank: func(items []models.Doctor) models.Doctor {
			return models.Doctor{IsActive: true, DisplayOrder: nextOrder(len(items))}
		},
		label: func(d models.Doctor) string { return d.Name },
	}
}

func clinicServices(t *Tables) editorSection {
	return &collection[models.Service]{
		title:    "Services",
		singular: "Service",
		page:     "/admin/services",
		base:     "/admin/services",
		table:    t.Services,
		order:    store.OrderDisplay,
		fields: []formField{
			iconField(content.ServiceIcons),
			required("title", "Title"),
			field("description", "Description", "textarea"),
			linesField("features", "Features"),
			orderField(),
			activeField(),
		},
		columns: withDisplay(column{Name: "icon_name", Label: "Icon", Kind: "icon"}, column{Name: "title", Label: "Title"}),
		blank: func(items []models.Service) models.Service {
			return models.Service{IconName: content.Stethoscope.String(), IsActive: true, DisplayOrder: nextOrder(len(items))}
		},
		label: func(s models.Service) string { return s.Title },
	}
}

func pharmacyFeatures(t *Tables) editorSection {
	return &collection[models.PharmacyFeature]{
		title:    "Pharmacy Features",
		singular: "Feature",
		page:     "/admin/pharmacy",
		base:     "/admin/pharmacy/features",
		table:    t.PharmacyFeatures,
		order:    store.OrderDisplay,
		fields: []formField{
			iconField(content.PharmacyIcons),
			required("title", "Title"),
			field("description", "Description", "textarea"),
			orderField(),
			activeField(),
		},
		columns: withDisplay(column{Name: "icon_name", Label: "Icon", Kind: "icon"}, column{Name: "title", Label: "Title"}),
		blank: func(items []models.PharmacyFeature) models.PharmacyFeature {
			return models.PharmacyFeature{IconName: content.Clock.String(), IsActive: true, DisplayOrder: nextOrder(len(items))}
		},
		label: func(f models.PharmacyFeature) string { return f.Title },
	}
}

func medicineCategories(t *Tables) editorSection {
	return &collection[models.MedicineCategory]{
		title:    "Medicine Categories",
		singular: "Category",
		page:     "/admin/pharmacy",
		base:     "/admin/pharmacy/categories",
		table:    t.MedicineCategories,
		order:    store.OrderDisplay,
		fields: []formField{
			iconField(content.PharmacyIcons),
			required("name", "Name"),
			field("description", "Description", "textarea"),
			orderField(),
			activeField(),
		},
		columns: withDisplay(column{Name: "icon_name", Label: "Icon", Kind: "icon"}, column{Name: "name", Label: "Name"}),
		blank: func(items []models.MedicineCategory) models.MedicineCategory {
			return models.MedicineCategory{IconName: content.Pill.String(), IsActive: true, DisplayOrder: nextOrder(len(items))}
		},
		label: func(m models.MedicineCategory) string { return m.Name },
	}
}

func popularMedicines(t *Tables) editorSection {
	return &collection[models.PopularMedicine]{
		title:    "Popular Medicines",
		singular: "Medicine Group",
		page:     "/admin/pharmacy",
		base:     "/admin/pharmacy/popular",
		table:    t.PopularMedicines,
		order:    store.OrderDisplay,
		fields: []formField{
			required("category_name", "Category"),
			linesField("items", "Medicines"),
			orderField(),
			activeField(),
		},
		columns: withDisplay(column{Name: "category_name", Label: "Category"}, column{Name: "items", Label: "Medicines"}),
		blank: func(items []models.PopularMedicine) models.PopularMedicine {
			return models.PopularMedicine{IsActive: true, DisplayOrder: nextOrder(len(items))}
		},
		label: func(p models.PopularMedicine) string { return p.CategoryName },
	}
}

func pharmacyServices(t *Tables) editorSection {
	return &collection[models.PharmacyService]{
		title:    "Pharmacy Services",
		singular: "Service",
		page:     "/admin/pharmacy",
		base:     "/admin/pharmacy/services",
		table:    t.PharmacyServices,
		order:    store.OrderDisplay,
		fields: []formField{
			iconField(pharmacyServiceIcons),
			required("title", "Title"),
			field("description", "Description", "textarea"),
			orderField(),
			activeField(),
		},
		columns: withDisplay(column{Name: "icon_name", Label: "Icon", Kind: "icon"}, column{Name: "title", Label: "Title"}),
		blank: func(items []models.PharmacyService) models.PharmacyService {
			return models.PharmacyService{IconName: content.Pill.String(), IsActive: true, DisplayOrder: nextOrder(len(items))}
		},
		label: func(s models.PharmacyService) string { return s.Title },
	}
}

func blogPosts(t *Tables) editorSection {
	slug := field("slug", "Slug", "text")
	slug.Hint = "Leave empty to generate it from the title."

	return &collection[models.BlogPost]{
		title:    "Blog Posts",
		singular: "Post",
		page:     "/admin/blog",
		base:     "/admin/blog",
		table:    t.Blog,
		order:    store.OrderPublished,
		fields: []formField{
			required("title", "Title"),
			slug,
			field("excerpt", "Excerpt", "textarea"),
			field("content", "Content (HTML)", "html"),
			field("author", "Author", "text"),
			field("published_date", "Published date", "date"),
			field("category", "Category", "text"),
			field("read_time", "Read time", "text"),
			field("image_url", "Image URL", "url"),
			field("is_featured", "Featured", "checkbox"),
			field("is_published", "Published", "checkbox"),
		},
		columns: []column{
			{Name: "title", Label: "Title"},
			{Name: "category", Label: "Category"},
			{Name: "published_date", Label: "Date"},
			{Name: "is_featured", Label: "Featured", Kind: "bool"},
			{Name: "is_published", Label: "Published", Kind: "bool"},
		},
		blank: func([]models.BlogPost) models.BlogPost {
			return models.BlogPost{
				Category:      models.DefaultBlogCategory,
				ReadTime:      models.DefaultBlogReadTime,
				PublishedDate: time.Now().Format("2006-01-02"),
				IsPublished:   true,
			}
		},
		prepare: func(p *models.BlogPost) {
			p.Slug = strings.TrimSpace(p.Slug)
			if p.Slug == "" {
				p.Slug = utils.Slugify(p.Title)
			}
		},
		label:    func(p models.BlogPost) string { return p.Title },
		slugFrom: true,
	}
}

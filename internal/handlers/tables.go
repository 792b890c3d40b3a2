package handlers

import (
	"gorm.io/gorm"

	"github.com/example/alhayat/internal/models"
	"github.com/example/alhayat/internal/store"
)

// Tables is the set of content tables the site reads and the admin edits.
type Tables struct {
	Clinic              *store.Table[models.ClinicSettings]
	HomePage            *store.Table[models.HomePageSettings]
	HomeFeatures        *store.Table[models.HomeFeature]
	HomeSpecializations *store.Table[models.HomeSpecialization]
	Pharmacy            *store.Table[models.PharmacySettings]
	PharmacyFeatures    *store.Table[models.PharmacyFeature]
	MedicineCategories  *store.Table[models.MedicineCategory]
	PopularMedicines    *store.Table[models.PopularMedicine]
	PharmacyServices    *store.Table[models.PharmacyService]
	Doctors             *store.Table[models.Doctor]
	Services            *store.Table[models.Service]
	Blog                *store.Table[models.BlogPost]
	Contacts            *store.Table[models.ContactSubmission]
}

// NewTables binds every content table to db.
func NewTables(db *gorm.DB, opts ...store.Option) *Tables {
	return &Tables{
		Clinic:              store.NewTable[models.ClinicSettings](db, opts...),
		HomePage:            store.NewTable[models.HomePageSettings](db, opts...),
		HomeFeatures:        store.NewTable[models.HomeFeature](db, opts...),
		HomeSpecializations: store.NewTable[models.HomeSpecialization](db, opts...),
		Pharmacy:            store.NewTable[models.PharmacySettings](db, opts...),
		PharmacyFeatures:    store.NewTable[models.PharmacyFeature](db, opts...),
		MedicineCategories:  store.NewTable[models.MedicineCategory](db, opts...),
		PopularMedicines:    store.NewTable[models.PopularMedicine](db, opts...),
		PharmacyServices:    store.NewTable[models.PharmacyService](db, opts...),
		Doctors:             store.NewTable[models.Doctor](db, opts...),
		Services:            store.NewTable[models.Service](db, opts...),
		Blog:                store.NewTable[models.BlogPost](db, opts...),
		Contacts:            store.NewTable[models.ContactSubmission](db, opts...),
	}
}

// Public reads go through the cache when one is configured.
var (
	activeQuery    = store.Query{ActiveOnly: true, Order: store.OrderDisplay, Cacheable: true}
	publishedQuery = store.Query{Where: []store.Cond{store.Eq("is_published", true)}, Order: store.OrderPublished, Cacheable: true}
)

func settingsQuery() store.Query {
	q := store.ByID(models.SettingsID)
	q.Cacheable = true
	return q
}

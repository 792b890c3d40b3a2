package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/alhayat/internal/database"
	"github.com/example/alhayat/internal/models"
	"github.com/example/alhayat/internal/store"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedDoctors(t *testing.T, doctors *store.Table[models.Doctor], rows ...models.Doctor) []models.Doctor {
	t.Helper()
	ctx := context.Background()
	for i := range rows {
		require.NoError(t, doctors.Insert(ctx, &rows[i]))
	}
	return rows
}

func TestTableName(t *testing.T) {
	db := newTestDB(t)
	assert.Equal(t, "doctors", store.NewTable[models.Doctor](db).Name())
	assert.Equal(t, "home_page_settings", store.NewTable[models.HomePageSettings](db).Name())
}

func TestSelectActiveOnlyAndOrder(t *testing.T) {
	db := newTestDB(t)
	doctors := store.NewTable[models.Doctor](db)
	seedDoctors(t, doctors,
		models.Doctor{Name: "Dr. C", Specialty: "Neurology", IsActive: true, DisplayOrder: 3},
		models.Doctor{Name: "Dr. Hidden", Specialty: "Cardiology", IsActive: false, DisplayOrder: 1},
		models.Doctor{Name: "Dr. A", Specialty: "Cardiology", IsActive: true, DisplayOrder: 1},
	)
	ctx := context.Background()

	public, err := doctors.Select(ctx, store.Query{ActiveOnly: true, Order: store.OrderDisplay})
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, "Dr. A", public[0].Name)
	assert.Equal(t, "Dr. C", public[1].Name)

	all, err := doctors.Select(ctx, store.Query{Order: store.OrderDisplay})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	n, err := doctors.Count(ctx, store.Query{Where: []store.Cond{store.Eq("specialty", "Cardiology")}})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestInsertAssignsFreshIdentity(t *testing.T) {
	db := newTestDB(t)
	doctors := store.NewTable[models.Doctor](db)
	rows := seedDoctors(t, doctors, models.Doctor{Name: "Dr. A", Specialty: "Cardiology"})

	dup := rows[0]
	require.NoError(t, doctors.Insert(context.Background(), &dup))
	assert.NotZero(t, dup.ID)
	assert.NotEqual(t, rows[0].ID, dup.ID)
}

func TestFirstReturnsErrNoRows(t *testing.T) {
	db := newTestDB(t)
	posts := store.NewTable[models.BlogPost](db)

	_, err := posts.First(context.Background(), store.Query{Where: []store.Cond{store.Eq("slug", "missing")}})
	assert.ErrorIs(t, err, store.ErrNoRows)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = posts.Get(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrNoRows)
}

func TestUpdateOverwritesZeroValues(t *testing.T) {
	db := newTestDB(t)
	services := store.NewTable[models.Service](db)
	ctx := context.Background()

	svc := models.Service{Title: "Cardiology", Description: "Heart care", Features: models.StringList{"ECG", "Surgery"}, IsActive: true}
	require.NoError(t, services.Insert(ctx, &svc))

	draft := models.Service{Title: "Cardiology", Features: models.StringList{"ECG"}}
	require.NoError(t, services.Update(ctx, svc.ID, &draft))

	got, err := services.Get(ctx, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Description)
	assert.False(t, got.IsActive)
	assert.Equal(t, models.StringList{"ECG"}, got.Features)
	assert.Equal(t, svc.CreatedAt.Unix(), got.CreatedAt.Unix())

	assert.ErrorIs(t, services.Update(ctx, svc.ID+100, &draft), store.ErrNoRows)
}

func TestUpdateColumnsAndDelete(t *testing.T) {
	db := newTestDB(t)
	contacts := store.NewTable[models.ContactSubmission](db)
	ctx := context.Background()

	sub := models.ContactSubmission{Name: "Amina", Email: "amina@example.com", Phone: "+1"}
	require.NoError(t, contacts.Insert(ctx, &sub))

	require.NoError(t, contacts.UpdateColumns(ctx, sub.ID, map[string]interface{}{"status": models.ContactContacted}))
	got, err := contacts.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContactContacted, got.Status)

	require.NoError(t, contacts.Delete(ctx, sub.ID))
	assert.ErrorIs(t, contacts.Delete(ctx, sub.ID), store.ErrNoRows)
}

func TestNotCondition(t *testing.T) {
	db := newTestDB(t)
	posts := store.NewTable[models.BlogPost](db)
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three"} {
		p := models.BlogPost{Title: title, Slug: title, Category: "Cardiology", IsPublished: true}
		require.NoError(t, posts.Insert(ctx, &p))
	}

	related, err := posts.Select(ctx, store.Query{
		Where: []store.Cond{store.Eq("category", "Cardiology"), store.Eq("is_published", true)},
		Not:   []store.Cond{store.Eq("slug", "One")},
		Limit: 3,
	})
	require.NoError(t, err)
	assert.Len(t, related, 2)
	for _, p := range related {
		assert.NotEqual(t, "One", p.Slug)
	}
}

func TestPutCreatesThenOverwritesSingleton(t *testing.T) {
	db := newTestDB(t)
	settings := store.NewTable[models.PharmacySettings](db)
	ctx := context.Background()

	require.NoError(t, settings.Put(ctx, models.SettingsID, &models.PharmacySettings{HeroTitle: "Pharmacy", Phone: "+1"}))

	row, err := settings.Get(ctx, models.SettingsID)
	require.NoError(t, err)
	assert.Equal(t, "Pharmacy", row.HeroTitle)

	require.NoError(t, settings.Put(ctx, models.SettingsID, &models.PharmacySettings{HeroTitle: "Medicine"}))

	row, err = settings.Get(ctx, models.SettingsID)
	require.NoError(t, err)
	assert.Equal(t, "Medicine", row.HeroTitle)
	assert.Empty(t, row.Phone)

	n, err := settings.Count(ctx, store.Query{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

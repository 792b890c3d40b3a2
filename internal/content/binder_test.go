package content_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/alhayat/internal/content"
	"github.com/example/alhayat/internal/database"
	"github.com/example/alhayat/internal/models"
	"github.com/example/alhayat/internal/store"
)

func openDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	if migrate {
		require.NoError(t, database.Migrate(db))
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestBindMergesSingletonOverDefaults(t *testing.T) {
	db := openDB(t, true)
	ctx := context.Background()
	settings := store.NewTable[models.HomePageSettings](db)

	stored := models.HomePageSettings{HeroTitle: "Care that comes first"}
	require.NoError(t, settings.Insert(ctx, &stored))

	home := models.DefaultHomePageSettings()
	content.Bind(ctx, content.Singleton(settings, store.ByID(stored.ID), &home))

	assert.Equal(t, "Care that comes first", home.HeroTitle)
	assert.Equal(t, models.DefaultHomePageSettings().HeroSubtitle, home.HeroSubtitle)
	assert.Equal(t, "50+", home.StatDoctors)
}

func TestBindKeepsDefaultsWithoutRow(t *testing.T) {
	db := openDB(t, true)

	clinic := models.DefaultClinicSettings()
	content.Bind(context.Background(),
		content.Singleton(store.NewTable[models.ClinicSettings](db), store.ByID(models.SettingsID), &clinic))

	assert.Equal(t, models.DefaultClinicSettings(), clinic)
}

func TestBindKeepsDefaultsOnError(t *testing.T) {
	db := openDB(t, false)

	features := models.DefaultHomeFeatures()
	clinic := models.DefaultClinicSettings()
	content.Bind(context.Background(),
		content.Collection(store.NewTable[models.HomeFeature](db), store.Query{ActiveOnly: true}, &features),
		content.Singleton(store.NewTable[models.ClinicSettings](db), store.ByID(models.SettingsID), &clinic),
	)

	assert.Equal(t, models.DefaultHomeFeatures(), features)
	assert.Equal(t, models.DefaultClinicSettings(), clinic)
}

func TestBindCollectionReplacesDefaults(t *testing.T) {
	db := openDB(t, true)
	ctx := context.Background()
	table := store.NewTable[models.HomeFeature](db)

	for _, f := range []models.HomeFeature{
		{Title: "Second", IsActive: true, DisplayOrder: 2},
		{Title: "Hidden", IsActive: false, DisplayOrder: 0},
		{Title: "First", IsActive: true, DisplayOrder: 1},
	} {
		f := f
		require.NoError(t, table.Insert(ctx, &f))
	}

	features := models.DefaultHomeFeatures()
	content.Bind(ctx, content.Collection(table, store.Query{ActiveOnly: true, Order: store.OrderDisplay}, &features))

	require.Len(t, features, 2)
	assert.Equal(t, "First", features[0].Title)
	assert.Equal(t, "Second", features[1].Title)
}

func TestBindEmptyCollectionIsNotAnError(t *testing.T) {
	db := openDB(t, true)

	specs := models.DefaultHomeSpecializations()
	content.Bind(context.Background(),
		content.Collection(store.NewTable[models.HomeSpecialization](db), store.Query{ActiveOnly: true}, &specs))

	assert.Empty(t, specs)
}

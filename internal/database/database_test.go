package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/alhayat/internal/models"
	"github.com/example/alhayat/internal/utils"
)

func TestSeedIsIdempotent(t *testing.T) {
	conn, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(conn))

	require.NoError(t, Seed(conn, " Admin@Example.com ", "s3cret-pass"))
	require.NoError(t, Seed(conn, "other@example.com", "another"))

	var clinic models.ClinicSettings
	require.NoError(t, conn.First(&clinic, models.SettingsID).Error)
	assert.Equal(t, models.DefaultClinicSettings().Name, clinic.Name)

	var pharmacy int64
	require.NoError(t, conn.Model(&models.PharmacySettings{}).Count(&pharmacy).Error)
	assert.EqualValues(t, 1, pharmacy)

	var admins []models.AdminUser
	require.NoError(t, conn.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin@example.com", admins[0].Email)
	assert.True(t, utils.CheckPassword(admins[0].PasswordHash, "s3cret-pass"))
}

func TestSeedFillsDefaultCollectionsOnce(t *testing.T) {
	conn, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(conn))
	require.NoError(t, Seed(conn, "", ""))

	var features []models.HomeFeature
	require.NoError(t, conn.Order("display_order").Find(&features).Error)
	require.Len(t, features, len(models.DefaultHomeFeatures()))
	assert.Equal(t, "Accredited Excellence", features[0].Title)

	var services []models.Service
	require.NoError(t, conn.Order("display_order").Find(&services).Error)
	require.Len(t, services, len(models.DefaultServices()))
	assert.Equal(t, models.DefaultServices()[0].Features, services[0].Features)

	var doctors int64
	require.NoError(t, conn.Model(&models.Doctor{}).Count(&doctors).Error)
	assert.Zero(t, doctors)

	// Rows the admin removed stay removed on the next start.
	require.NoError(t, conn.Where("1 = 1").Delete(&models.HomeFeature{}).Error)
	require.NoError(t, Seed(conn, "", ""))

	var remaining int64
	require.NoError(t, conn.Model(&models.HomeFeature{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestSeedWithoutCredentialsSkipsAdmin(t *testing.T) {
	conn, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(conn))
	require.NoError(t, Seed(conn, "", ""))

	var admins int64
	require.NoError(t, conn.Model(&models.AdminUser{}).Count(&admins).Error)
	assert.Zero(t, admins)
}

func TestConnectReturnsMigratedHandle(t *testing.T) {
	first := Connect(":memory:")
	second := Connect(":memory:")
	assert.NotSame(t, first, second)

	for _, conn := range []*gorm.DB{first, second} {
		assert.True(t, conn.Migrator().HasTable(&models.Doctor{}))
		assert.True(t, conn.Migrator().HasTable(&models.ContactSubmission{}))
	}
}

func TestIsPostgres(t *testing.T) {
	assert.True(t, isPostgres("postgres://u:p@localhost:5432/alhayat"))
	assert.True(t, isPostgres("postgresql://localhost/alhayat"))
	assert.False(t, isPostgres("alhayat.db"))
	assert.False(t, isPostgres(":memory:"))
}

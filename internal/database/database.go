package database

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/example/alhayat/internal/logger"
	"github.com/example/alhayat/internal/models"
	"github.com/example/alhayat/internal/utils"
)

// Connect opens the database, creating it first on PostgreSQL, and runs
// migrations. Any failure is fatal.
func Connect(dsn string) *gorm.DB {
	if err := ensureDatabase(dsn); err != nil {
		logger.Fatal("failed to ensure database", map[string]interface{}{"error": err.Error()})
	}

	conn, err := Open(dsn)
	if err != nil {
		logger.Fatal("failed to connect to database", map[string]interface{}{"error": err.Error()})
	}

	if err := Migrate(conn); err != nil {
		logger.Fatal("database migration failed", map[string]interface{}{"error": err.Error()})
	}

	return conn
}

// Open picks the PostgreSQL driver for postgres URLs and SQLite for anything
// else (a file path or ":memory:").
func Open(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.NewGormLogger()}

	if isPostgres(dsn) {
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	conn, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	// SQLite serializes writers; an in-memory database only lives on its own connection.
	sqlDB.SetMaxOpenConns(1)

	if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}
	return conn, nil
}

// Migrate creates or updates every table the site reads and the admin edits.
func Migrate(conn *gorm.DB) error {
	migrations := []interface{}{
		&models.ClinicSettings{},
		&models.HomePageSettings{},
		&models.HomeFeature{},
		&models.HomeSpecialization{},
		&models.PharmacySettings{},
		&models.PharmacyFeature{},
		&models.MedicineCategory{},
		&models.PopularMedicine{},
		&models.PharmacyService{},
		&models.Doctor{},
		&models.Service{},
		&models.BlogPost{},
		&models.ContactSubmission{},
		&models.AdminUser{},
		&models.AdminSession{},
	}

	for _, migration := range migrations {
		if err := conn.AutoMigrate(migration); err != nil {
			return err
		}
	}

	return nil
}

// Seed inserts the settings singletons with their fallback content and, when
// credentials are given and no admin exists yet, the first admin account. On
// the run that creates the clinic settings row the content collections are
// filled with their default rows as well.
func Seed(conn *gorm.DB, adminEmail, adminPassword string) error {
	clinic := models.DefaultClinicSettings()
	home := models.DefaultHomePageSettings()
	pharmacy := models.DefaultPharmacySettings()

	singletons := []interface {
		SetID(uint)
	}{&clinic, &home, &pharmacy}

	fresh := false
	for i, row := range singletons {
		row.SetID(models.SettingsID)
		result := conn.Where("id = ?", models.SettingsID).FirstOrCreate(row)
		if result.Error != nil {
			return fmt.Errorf("seed settings: %w", result.Error)
		}
		if i == 0 {
			fresh = result.RowsAffected > 0
		}
	}

	if fresh {
		if err := seedCollections(conn); err != nil {
			return err
		}
	}

	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var count int64
	if err := conn.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := models.AdminUser{Email: strings.ToLower(strings.TrimSpace(adminEmail)), PasswordHash: hash}
	if err := conn.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	logger.Info("Created initial admin user", map[string]interface{}{"email": admin.Email})
	return nil
}

// seedCollections stores the default rows of every collection that has them.
// Doctors and blog posts start empty.
func seedCollections(conn *gorm.DB) error {
	seeds := []func(*gorm.DB) error{
		func(tx *gorm.DB) error { return seedRows(tx, models.DefaultHomeFeatures()) },
		func(tx *gorm.DB) error { return seedRows(tx, models.DefaultHomeSpecializations()) },
		func(tx *gorm.DB) error { return seedRows(tx, models.DefaultServices()) },
		func(tx *gorm.DB) error { return seedRows(tx, models.DefaultPharmacyFeatures()) },
		func(tx *gorm.DB) error { return seedRows(tx, models.DefaultMedicineCategories()) },
		func(tx *gorm.DB) error { return seedRows(tx, models.DefaultPopularMedicines()) },
		func(tx *gorm.DB) error { return seedRows(tx, models.DefaultPharmacyServices()) },
	}

	return conn.Transaction(func(tx *gorm.DB) error {
		for _, seed := range seeds {
			if err := seed(tx); err != nil {
				return fmt.Errorf("seed collections: %w", err)
			}
		}
		return nil
	})
}

// seedRows inserts rows only into an empty table.
func seedRows[T any](tx *gorm.DB, rows []T) error {
	var count int64
	if err := tx.Model(new(T)).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 || len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func ensureDatabase(dsn string) error {
	if !isPostgres(dsn) {
		return nil
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		return err
	}

	dbName := strings.TrimPrefix(parsed.Path, "/")
	if dbName == "" {
		return nil
	}

	parsed.Path = "/postgres"
	masterDSN := parsed.String()

	sqlDB, err := sql.Open("postgres", masterDSN)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return err
	}

	var exists bool
	if err := sqlDB.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}

	if exists {
		return nil
	}

	_, err = sqlDB.Exec("CREATE DATABASE " + pq.QuoteIdentifier(dbName))
	return err
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/alhayat/internal/config"
	"github.com/example/alhayat/internal/database"
	"github.com/example/alhayat/internal/middleware"
	"github.com/example/alhayat/internal/models"
	"github.com/example/alhayat/internal/utils"
)

func setup(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{JWTSecret: "test-secret", SessionTTL: time.Hour}

	app := fiber.New()
	app.Use("/admin", middleware.SessionGate(db, cfg))
	app.Get("/admin/login", func(c *fiber.Ctx) error { return c.SendString("login") })
	app.Get("/admin/dashboard", func(c *fiber.Ctx) error {
		admin, ok := middleware.CurrentAdmin(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(admin.Email)
	})
	return app, db, cfg
}

func sessionFor(t *testing.T, db *gorm.DB, cfg *config.Config, expiresAt time.Time) string {
	t.Helper()
	admin := models.AdminUser{Email: "staff@alhayatmedical.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&admin).Error)
	session := models.AdminSession{AdminUserID: admin.ID, ExpiresAt: expiresAt}
	require.NoError(t, db.Create(&session).Error)

	token, err := utils.GenerateSessionToken(cfg.JWTSecret, session.ID, admin.ID, time.Now().Add(time.Hour))
	require.NoError(t, err)
	return token
}

func get(t *testing.T, app *fiber.App, path, token, accept string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	}
	if accept != "" {
		req.Header.Set(fiber.HeaderAccept, accept)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestGateRedirectsWithoutSession(t *testing.T) {
	app, _, _ := setup(t)

	resp := get(t, app, "/admin/dashboard", "", "text/html")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, middleware.LoginPath, resp.Header.Get(fiber.HeaderLocation))
}

func TestGateRejectsJSONClientsWith401(t *testing.T) {
	app, _, _ := setup(t)

	resp := get(t, app, "/admin/dashboard", "", fiber.MIMEApplicationJSON)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGateLetsLoginThrough(t *testing.T) {
	app, _, _ := setup(t)

	resp := get(t, app, "/admin/login", "", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGateAdmitsLiveSession(t *testing.T) {
	app, db, cfg := setup(t)
	token := sessionFor(t, db, cfg, time.Now().Add(time.Hour))

	resp := get(t, app, "/admin/dashboard", token, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGateRejectsExpiredSession(t *testing.T) {
	app, db, cfg := setup(t)
	token := sessionFor(t, db, cfg, time.Now().Add(-time.Minute))

	resp := get(t, app, "/admin/dashboard", token, "")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
}

func TestGateRejectsDeletedSession(t *testing.T) {
	app, db, cfg := setup(t)
	token := sessionFor(t, db, cfg, time.Now().Add(time.Hour))
	require.NoError(t, db.Where("1 = 1").Delete(&models.AdminSession{}).Error)

	resp := get(t, app, "/admin/dashboard", token, "")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
}

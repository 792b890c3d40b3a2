package routes_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/alhayat/internal/config"
	"github.com/example/alhayat/internal/database"
	"github.com/example/alhayat/internal/routes"
)

func newApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db, "", ""))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg.JWTSecret = "test-secret"
	cfg.SessionTTL = time.Hour
	cfg.ContactRateLimit = 1
	cfg.ContactRateWindow = time.Hour
	cfg.LoginRateLimit = 1
	cfg.LoginRateWindow = time.Hour
	return routes.NewApp(db, cfg, nil)
}

func postContact(t *testing.T, app *fiber.App, forwardedFor string) int {
	t.Helper()
	body := url.Values{"name": {"Jane"}}.Encode()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	req.Header.Set(fiber.HeaderXForwardedFor, forwardedFor)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestRateLimitKeysOnForwardedClient(t *testing.T) {
	app := newApp(t, &config.Config{ProxyHeader: fiber.HeaderXForwardedFor})

	assert.Equal(t, fiber.StatusUnprocessableEntity, postContact(t, app, "203.0.113.5"))
	assert.Equal(t, fiber.StatusTooManyRequests, postContact(t, app, "203.0.113.5, 10.0.0.1"))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postContact(t, app, "198.51.100.7"))
}

func TestForwardedHeaderIgnoredFromUntrustedPeer(t *testing.T) {
	app := newApp(t, &config.Config{
		ProxyHeader:    fiber.HeaderXForwardedFor,
		TrustedProxies: []string{"10.0.0.1"},
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, postContact(t, app, "203.0.113.5"))
	assert.Equal(t, fiber.StatusTooManyRequests, postContact(t, app, "198.51.100.7"))
}

func TestWithoutProxyHeaderAllClientsShareThePeerAddress(t *testing.T) {
	app := newApp(t, &config.Config{})

	assert.Equal(t, fiber.StatusUnprocessableEntity, postContact(t, app, "203.0.113.5"))
	assert.Equal(t, fiber.StatusTooManyRequests, postContact(t, app, "198.51.100.7"))
}

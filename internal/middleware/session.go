package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/alhayat/internal/config"
	"github.com/example/alhayat/internal/logger"
	"github.com/example/alhayat/internal/models"
	"github.com/example/alhayat/internal/utils"
)

const (
	// SessionCookie carries the signed admin session token.
	SessionCookie = "alhayat_session"
	// LoginPath is the only admin route reachable without a session.
	LoginPath = "/admin/login"

	adminContextKey = "currentAdmin"
)

// SessionGate admits requests carrying a live admin session. Browsers without
// one are redirected to the login page; JSON clients get 401.
func SessionGate(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.TrimSuffix(c.Path(), "/") == LoginPath {
			return c.Next()
		}

		session, err := lookupSession(db, cfg, c.Cookies(SessionCookie))
		if err != nil {
			logger.Debug("Admin session rejected", map[string]interface{}{"path": c.Path(), "reason": err.Error()})
			ClearSessionCookie(c, cfg)
			if WantsJSON(c) {
				return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
			}
			return c.Redirect(LoginPath, fiber.StatusSeeOther)
		}

		c.Locals(adminContextKey, &session.AdminUser)
		return c.Next()
	}
}

func lookupSession(db *gorm.DB, cfg *config.Config, token string) (*models.AdminSession, error) {
	if token == "" {
		return nil, errors.New("missing session cookie")
	}

	sessionID, err := utils.ParseSessionToken(cfg.JWTSecret, token)
	if err != nil {
		return nil, err
	}

	var session models.AdminSession
	if err := db.Preload("AdminUser").First(&session, "id = ?", sessionID).Error; err != nil {
		return nil, err
	}
	if session.Expired(time.Now()) {
		return nil, errors.New("session expired")
	}
	return &session, nil
}

// SetSessionCookie stores token for the admin area until expiresAt.
func SetSessionCookie(c *fiber.Ctx, cfg *config.Config, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/admin",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// ClearSessionCookie expires the session cookie in the browser.
func ClearSessionCookie(c *fiber.Ctx, cfg *config.Config) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/admin",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// CurrentAdmin returns the admin resolved by SessionGate.
func CurrentAdmin(c *fiber.Ctx) (*models.AdminUser, bool) {
	admin, ok := c.Locals(adminContextKey).(*models.AdminUser)
	return admin, ok && admin != nil
}

// WantsJSON reports whether the client prefers JSON over HTML.
func WantsJSON(c *fiber.Ctx) bool {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) && c.Get(fiber.HeaderAccept) == "" {
		return true
	}
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

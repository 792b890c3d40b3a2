package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/alhayat/internal/config"
	"github.com/example/alhayat/internal/logger"
	"github.com/example/alhayat/internal/middleware"
	"github.com/example/alhayat/internal/models"
	"github.com/example/alhayat/internal/utils"
	"github.com/example/alhayat/internal/validator"
)

// AuthHandler bundles dependencies for admin sign-in.
type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

const invalidCredentials = "Invalid email or password."

func (h *AuthHandler) renderLogin(c *fiber.Ctx, status int, email, message string) error {
	if middleware.WantsJSON(c) && status >= fiber.StatusBadRequest {
		return c.Status(status).JSON(fiber.Map{"success": false, "error": message})
	}
	return c.Status(status).Render("admin/login", fiber.Map{
		"Title": "Login",
		"Path":  c.Path(),
		"Email": email,
		"Error": message,
	}, "layouts/admin")
}

// LoginPage renders the sign-in form.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return h.renderLogin(c, fiber.StatusOK, "", "")
}

// Login checks the credentials, opens a server-side session and sets the
// session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validator.Validate(&req); err != nil {
		return h.renderLogin(c, fiber.StatusUnprocessableEntity, req.Email, "Please enter your email and password.")
	}

	var admin models.AdminUser
	if err := h.db.WithContext(c.UserContext()).Where("email = ?", req.Email).First(&admin).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		logger.Warn("Admin login with unknown email", map[string]interface{}{"email": req.Email, "ip": c.IP()})
		return h.renderLogin(c, fiber.StatusUnauthorized, req.Email, invalidCredentials)
	}

	if !utils.CheckPassword(admin.PasswordHash, req.Password) {
		logger.Warn("Admin login with wrong password", map[string]interface{}{"email": req.Email, "ip": c.IP()})
		return h.renderLogin(c, fiber.StatusUnauthorized, req.Email, invalidCredentials)
	}

	session := models.AdminSession{
		AdminUserID: admin.ID,
		ExpiresAt:   time.Now().Add(h.cfg.SessionTTL),
	}
	if err := h.db.WithContext(c.UserContext()).Create(&session).Error; err != nil {
		return err
	}

	token, err := utils.GenerateSessionToken(h.cfg.JWTSecret, session.ID, admin.ID, session.ExpiresAt)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}
	middleware.SetSessionCookie(c, h.cfg, token, session.ExpiresAt)

	logger.Info("Admin signed in", map[string]interface{}{"admin_id": admin.ID})

	if middleware.WantsJSON(c) {
		return c.JSON(fiber.Map{
			"success": true,
			"data":    fiber.Map{"email": admin.Email, "expires_at": session.ExpiresAt},
		})
	}
	return c.Redirect("/admin/dashboard", fiber.StatusSeeOther)
}

// Logout ends the current session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sessionID, err := utils.ParseSessionToken(h.cfg.JWTSecret, c.Cookies(middleware.SessionCookie)); err == nil {
		if err := h.db.WithContext(c.UserContext()).Delete(&models.AdminSession{}, "id = ?", sessionID).Error; err != nil {
			logger.Error(err, "Failed to delete admin session", map[string]interface{}{"session_id": sessionID.String()})
		}
	}
	middleware.ClearSessionCookie(c, h.cfg)

	if middleware.WantsJSON(c) {
		return c.JSON(fiber.Map{"success": true})
	}
	return c.Redirect(middleware.LoginPath, fiber.StatusSeeOther)
}

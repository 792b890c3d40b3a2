package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/example/alhayat/internal/logger"
	"github.com/example/alhayat/internal/middleware"
)

// ErrorHandler renders failed requests as an error page, or as
// {"success":false,"error":...} for JSON clients. Server errors are logged.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "something went wrong, please try again later"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	if code >= fiber.StatusInternalServerError {
		logger.Error(err, "Request failed", map[string]interface{}{
			"method": c.Method(),
			"path":   c.Path(),
		})
	}

	if middleware.WantsJSON(c) {
		return c.Status(code).JSON(fiber.Map{"success": false, "error": message})
	}

	c.Status(code)
	if renderErr := c.Render("error", fiber.Map{"Code": code, "Message": message}); renderErr != nil {
		return c.SendString(message)
	}
	return nil
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

var notices = map[string]string{
	"saved":   "Changes saved.",
	"deleted": "Record deleted.",
	"status":  "Status updated.",
}

// renderAdmin renders an admin page inside the admin layout.
func renderAdmin(c *fiber.Ctx, status int, name, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	data["Path"] = c.Path()
	data["Notice"] = notices[c.Query("notice")]
	if admin, ok := middleware.CurrentAdmin(c); ok {
		data["Admin"] = admin
	}
	return c.Status(status).Render(name, data, "layouts/admin")
}

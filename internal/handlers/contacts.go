package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/example/alhayat/internal/logger"
	"github.com/example/alhayat/internal/metrics"
	"github.com/example/alhayat/internal/middleware"
	"github.com/example/alhayat/internal/models"
	"github.com/example/alhayat/internal/store"
	"github.com/example/alhayat/internal/utils"
	"github.com/example/alhayat/internal/validator"
)

const allStatuses = "all"

var contactFilters = append([]string{allStatuses}, models.ContactStatuses...)

type pageView struct {
	Page  int   `json:"current_page"`
	Pages int   `json:"total_pages"`
	Total int64 `json:"total_items"`
	Prev  int   `json:"-"`
	Next  int   `json:"-"`
}

// Contacts lists submissions newest first, filtered by ?status=.
func (h *AdminHandler) Contacts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	status := c.Query("status", allStatuses)
	if status != allStatuses && !models.ValidContactStatus(status) {
		status = allStatuses
	}

	q := store.Query{Order: store.OrderNewest}
	if status != allStatuses {
		q.Where = []store.Cond{store.Eq("status", status)}
	}

	pg := utils.ParsePagination(c)
	total, err := h.tables.Contacts.Count(ctx, q)
	if err != nil {
		return err
	}

	q.Limit = pg.Limit
	q.Offset = pg.Offset
	rows, err := h.tables.Contacts.Select(ctx, q)
	if err != nil {
		return err
	}

	pagination := pageView{Page: pg.Page, Pages: pg.TotalPages(total), Total: total}
	if pg.Page > 1 {
		pagination.Prev = pg.Page - 1
	}
	if pg.HasNext(total) {
		pagination.Next = pg.Page + 1
	}

	if middleware.WantsJSON(c) {
		return c.JSON(fiber.Map{"success": true, "data": rows, "pagination": pagination})
	}
	return renderAdmin(c, fiber.StatusOK, "admin/contacts", "Contacts", fiber.Map{
		"Status":      status,
		"Filters":     contactFilters,
		"Statuses":    models.ContactStatuses,
		"Submissions": rows,
		"Pagination":  pagination,
	})
}

type statusRequest struct {
	Status string `json:"status" form:"status" validate:"required,oneof=pending contacted completed cancelled"`
}

// UpdateContactStatus moves a submission through the follow-up workflow.
func (h *AdminHandler) UpdateContactStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validator.Validate(&req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, validator.Summary(err))
	}

	err = h.tables.Contacts.UpdateColumns(c.UserContext(), id, map[string]interface{}{"status": req.Status})
	metrics.AdminMutations.WithLabelValues(h.tables.Contacts.Name(), "status", metrics.Result(err)).Inc()
	if err != nil {
		if errors.Is(err, store.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "submission not found")
		}
		return err
	}
	logger.Info("Contact status updated", map[string]interface{}{"id": id, "status": req.Status})

	if middleware.WantsJSON(c) {
		return c.JSON(fiber.Map{"success": true})
	}
	return c.Redirect("/admin/contacts?notice=status", fiber.StatusSeeOther)
}

// ConfirmDeleteContact asks before removing a submission.
func (h *AdminHandler) ConfirmDeleteContact(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	sub, err := h.tables.Contacts.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, store.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "submission not found")
		}
		return err
	}

	return renderAdmin(c, fiber.StatusOK, "admin/confirm", "Delete Submission", fiber.Map{
		"Heading": "Delete Submission",
		"Message": fmt.Sprintf("Are you sure you want to delete the request from %s (%s)?", sub.Name, sub.Email),
		"Action":  fmt.Sprintf("/admin/contacts/%d/delete", id),
		"Cancel":  "/admin/contacts",
	})
}

// DeleteContact removes a submission permanently.
func (h *AdminHandler) DeleteContact(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	err = h.tables.Contacts.Delete(c.UserContext(), id)
	metrics.AdminMutations.WithLabelValues(h.tables.Contacts.Name(), "delete", metrics.Result(err)).Inc()
	if err != nil {
		if errors.Is(err, store.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "submission not found")
		}
		return err
	}
	logger.Info("Contact submission deleted", map[string]interface{}{"id": id})

	if middleware.WantsJSON(c) {
		return c.JSON(fiber.Map{"success": true})
	}
	return c.Redirect("/admin/contacts?notice=deleted", fiber.StatusSeeOther)
}

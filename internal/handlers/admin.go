package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/example/alhayat/internal/logger"
	"github.com/example/alhayat/internal/middleware"
	"github.com/example/alhayat/internal/models"
	"github.com/example/alhayat/internal/store"
	"github.com/example/alhayat/internal/utils"
)

// AdminHandler serves the content management panel.
type AdminHandler struct {
	tables *Tables
	pages  []*adminPage
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(tables *Tables) *AdminHandler {
	return &AdminHandler{tables: tables, pages: adminPages(tables)}
}

// RegisterRoutes mounts every admin page, form and action. The session gate
// must already cover /admin.
func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/admin", func(c *fiber.Ctx) error {
		return c.Redirect("/admin/dashboard", fiber.StatusFound)
	})
	r.Get("/admin/dashboard", h.Dashboard)
	r.Get("/admin/blog/slug", h.GenerateSlug)

	for _, p := range h.pages {
		r.Get(p.path, h.page(p))
		if p.settings != nil {
			r.Post(p.settings.actionPath(), h.saveSettings(p))
		}
		for _, s := range p.sections {
			s.RegisterRoutes(r)
		}
	}

	r.Get("/admin/contacts", h.Contacts)
	r.Post("/admin/contacts/:id/status", h.UpdateContactStatus)
	r.Get("/admin/contacts/:id/delete", h.ConfirmDeleteContact)
	r.Post("/admin/contacts/:id/delete", h.DeleteContact)
}

type stat struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
	Link  string `json:"link"`
}

// Dashboard shows row counts and the latest contact requests. Counts that
// cannot be read show as zero.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	ctx := c.UserContext()

	stats := []stat{
		{Label: "Doctors", Link: "/admin/doctors"},
		{Label: "Services", Link: "/admin/services"},
		{Label: "Popular Medicines", Link: "/admin/pharmacy"},
		{Label: "Blog Posts", Link: "/admin/blog"},
		{Label: "Contact Requests", Link: "/admin/contacts"},
	}
	counters := []func(context.Context) (int64, error){
		func(ctx context.Context) (int64, error) { return h.tables.Doctors.Count(ctx, store.Query{}) },
		func(ctx context.Context) (int64, error) { return h.tables.Services.Count(ctx, store.Query{}) },
		func(ctx context.Context) (int64, error) { return h.tables.PopularMedicines.Count(ctx, store.Query{}) },
		func(ctx context.Context) (int64, error) { return h.tables.Blog.Count(ctx, store.Query{}) },
		func(ctx context.Context) (int64, error) { return h.tables.Contacts.Count(ctx, store.Query{}) },
	}

	var g errgroup.Group
	for i := range stats {
		i := i
		g.Go(func() error {
			n, err := counters[i](ctx)
			if err != nil {
				logger.Error(err, "Dashboard count failed", map[string]interface{}{"stat": stats[i].Label})
				return nil
			}
			stats[i].Count = n
			return nil
		})
	}

	recent := []models.ContactSubmission{}
	g.Go(func() error {
		rows, err := h.tables.Contacts.Select(ctx, store.Query{Order: store.OrderNewest, Limit: 5})
		if err != nil {
			logger.Error(err, "Dashboard contacts failed", nil)
			return nil
		}
		recent = rows
		return nil
	})
	_ = g.Wait()

	if middleware.WantsJSON(c) {
		return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"stats": stats, "recent": recent}})
	}
	return renderAdmin(c, fiber.StatusOK, "admin/dashboard", "Dashboard", fiber.Map{
		"Stats":  stats,
		"Recent": recent,
	})
}

func (h *AdminHandler) page(p *adminPage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return h.renderPage(c, fiber.StatusOK, p, nil)
	}
}

// renderPage lists the settings form and every collection of p. A non-nil
// settings form replaces the stored values, e.g. after a failed save.
func (h *AdminHandler) renderPage(c *fiber.Ctx, status int, p *adminPage, settings *formView) error {
	ctx := c.UserContext()

	if p.settings != nil && settings == nil {
		form := p.settings.view(ctx)
		settings = &form
	}

	sections := make([]sectionView, len(p.sections))
	var g errgroup.Group
	for i, s := range p.sections {
		i, s := i, s
		g.Go(func() error {
			sections[i] = s.view(ctx)
			return nil
		})
	}
	_ = g.Wait()

	if middleware.WantsJSON(c) {
		return c.Status(status).JSON(fiber.Map{
			"success": status < fiber.StatusBadRequest,
			"data":    fiber.Map{"settings": settings, "sections": sections},
		})
	}

	data := fiber.Map{"Sections": sections}
	if settings != nil {
		data["Settings"] = settings
	}
	return renderAdmin(c, status, "admin/page", p.title, data)
}

func (h *AdminHandler) saveSettings(p *adminPage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, form := p.settings.save(c)
		if status < fiber.StatusBadRequest {
			if middleware.WantsJSON(c) {
				return c.JSON(fiber.Map{"success": true, "data": form.Values})
			}
			return c.Redirect(p.path+"?notice=saved", fiber.StatusSeeOther)
		}

		if middleware.WantsJSON(c) {
			return c.Status(status).JSON(fiber.Map{"success": false, "error": form.Error, "errors": form.Errors})
		}
		return h.renderPage(c, status, p, &form)
	}
}

// GenerateSlug returns the slug derived from ?title=.
func (h *AdminHandler) GenerateSlug(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"slug": utils.Slugify(c.Query("title"))},
	})
}

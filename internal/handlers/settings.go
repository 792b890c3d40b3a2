package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/example/alhayat/internal/content"
	"github.com/example/alhayat/internal/logger"
	"github.com/example/alhayat/internal/metrics"
	"github.com/example/alhayat/internal/models"
	"github.com/example/alhayat/internal/store"
	"github.com/example/alhayat/internal/validator"
)

// settingsEditor edits the singleton settings row shown above a page's
// collections.
type settingsEditor interface {
	view(ctx context.Context) formView
	save(c *fiber.Ctx) (int, formView)
	actionPath() string
}

type settingsForm[T any] struct {
	heading  string
	action   string
	table    *store.Table[T]
	defaults func() T
	fields   []formField
}

func (s *settingsForm[T]) actionPath() string {
	return s.action
}

func (s *settingsForm[T]) form(values map[string]string) formView {
	return formView{
		Heading: s.heading,
		Action:  s.action,
		Fields:  s.fields,
		Values:  values,
	}
}

// view shows the stored row over the defaults, the same values the site
// renders.
func (s *settingsForm[T]) view(ctx context.Context) formView {
	row := s.defaults()
	content.Bind(ctx, content.Singleton(s.table, store.ByID(models.SettingsID), &row))
	return s.form(formValues(row))
}

// save validates the submitted settings and writes them to row 1. It returns
// the response status and the form to re-render on failure.
func (s *settingsForm[T]) save(c *fiber.Ctx) (int, formView) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		form := s.view(c.UserContext())
		form.Error = "Invalid request body."
		return fiber.StatusBadRequest, form
	}

	form := s.form(formValues(input))
	if err := validator.Validate(&input); err != nil {
		form.Errors = validator.FieldErrors(err)
		form.Error = validator.Summary(err)
		return fiber.StatusUnprocessableEntity, form
	}

	err := s.table.Put(c.UserContext(), models.SettingsID, &input)
	metrics.AdminMutations.WithLabelValues(s.table.Name(), "update", metrics.Result(err)).Inc()
	if err != nil {
		logger.Error(err, "Failed to save settings", map[string]interface{}{"table": s.table.Name()})
		form.Error = "Could not save the settings. Please try again."
		return fiber.StatusInternalServerError, form
	}

	logger.Info("Settings saved", map[string]interface{}{"table": s.table.Name()})
	return fiber.StatusOK, form
}

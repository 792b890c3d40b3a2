package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/alhayat/internal/content"
	"github.com/example/alhayat/internal/logger"
	"github.com/example/alhayat/internal/middleware"
	"github.com/example/alhayat/internal/store"
	"github.com/example/alhayat/internal/validator"
)

type column struct {
	Name  string
	Label string
	// Kind is text, bool or icon.
	Kind string
}

type rowView struct {
	ID     uint
	Values map[string]string
}

type sectionView struct {
	Title    string      `json:"title"`
	Base     string      `json:"-"`
	NewLabel string      `json:"-"`
	Columns  []column    `json:"-"`
	Rows     []rowView   `json:"-"`
	Items    interface{} `json:"items"`
	Error    string      `json:"error,omitempty"`
}

// editorSection is a collection listed on an admin page with its own
// create, edit and delete routes.
type editorSection interface {
	view(ctx context.Context) sectionView
	RegisterRoutes(r fiber.Router)
}

// collection edits the rows of one table through a content.Editor. Each
// request builds its own editor.
type collection[T any] struct {
	title    string
	singular string
	page     string
	base     string
	table    *store.Table[T]
	order    string
	fields   []formField
	columns  []column
	blank    func(items []T) T
	prepare  func(*T)
	label    func(T) string
	slugFrom bool
}

func (col *collection[T]) editor() *content.Editor[T] {
	return content.NewEditor(col.table, store.Query{Order: col.order})
}

func (col *collection[T]) noun() string {
	return strings.ToLower(col.singular)
}

// RegisterRoutes mounts the editor routes below the collection base path.
func (col *collection[T]) RegisterRoutes(r fiber.Router) {
	r.Get(col.base+"/new", col.New)
	r.Post(col.base, col.Create)
	r.Get(col.base+"/:id/edit", col.Edit)
	r.Post(col.base+"/:id", col.Update)
	r.Get(col.base+"/:id/delete", col.ConfirmDelete)
	r.Post(col.base+"/:id/delete", col.Delete)
}

func (col *collection[T]) view(ctx context.Context) sectionView {
	view := sectionView{
		Title:    col.title,
		Base:     col.base,
		NewLabel: "Add " + col.singular,
		Columns:  col.columns,
	}

	ed := col.editor()
	if err := ed.Load(ctx); err != nil {
		logger.Error(err, "Failed to load admin list", map[string]interface{}{"table": col.table.Name()})
		view.Error = fmt.Sprintf("Could not load %s. Please refresh the page.", strings.ToLower(col.title))
		view.Items = []T{}
		return view
	}

	items := ed.Items()
	view.Items = items
	view.Rows = make([]rowView, 0, len(items))
	for i := range items {
		view.Rows = append(view.Rows, rowView{ID: idOf(&items[i]), Values: formValues(items[i])})
	}
	return view
}

func idOf(row interface{}) uint {
	if k, ok := row.(interface{ GetID() uint }); ok {
		return k.GetID()
	}
	return 0
}

func draftOf[T any](state content.EditorState[T]) (T, bool) {
	switch s := state.(type) {
	case content.Creating[T]:
		return s.Draft, true
	case content.Editing[T]:
		return s.Draft, true
	}
	var zero T
	return zero, false
}

// New opens a blank draft.
func (col *collection[T]) New(c *fiber.Ctx) error {
	ed := col.editor()
	if err := ed.Load(c.UserContext()); err != nil {
		logger.Warn("Admin list unavailable for new draft", map[string]interface{}{"table": col.table.Name(), "error": err.Error()})
	}

	var draft T
	if col.blank != nil {
		draft = col.blank(ed.Items())
	}
	ed.Open(content.Creating[T]{Draft: draft})
	return col.renderForm(c, fiber.StatusOK, ed, nil, "")
}

// Edit opens a draft holding the stored row.
func (col *collection[T]) Edit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	row, err := col.table.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, store.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, col.noun()+" not found")
		}
		return err
	}

	ed := col.editor()
	ed.Open(content.Editing[T]{ID: id, Draft: *row})
	return col.renderForm(c, fiber.StatusOK, ed, nil, "")
}

// Create inserts the submitted draft.
func (col *collection[T]) Create(c *fiber.Ctx) error {
	draft, err := col.decode(c)
	if err != nil {
		return err
	}

	ed := col.editor()
	ed.Open(content.Creating[T]{Draft: draft})
	return col.save(c, ed, fiber.StatusCreated)
}

// Update overwrites row :id with the submitted draft.
func (col *collection[T]) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	draft, err := col.decode(c)
	if err != nil {
		return err
	}

	ed := col.editor()
	ed.Open(content.Editing[T]{ID: id, Draft: draft})
	return col.save(c, ed, fiber.StatusOK)
}

func (col *collection[T]) decode(c *fiber.Ctx) (T, error) {
	var draft T
	if err := c.BodyParser(&draft); err != nil {
		return draft, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := applyLines(c, &draft, col.fields); err != nil {
		return draft, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if col.prepare != nil {
		col.prepare(&draft)
	}
	return draft, nil
}

func (col *collection[T]) save(c *fiber.Ctx, ed *content.Editor[T], successStatus int) error {
	draft, _ := draftOf[T](ed.State())
	if err := validator.Validate(&draft); err != nil {
		return col.renderForm(c, fiber.StatusUnprocessableEntity, ed, validator.FieldErrors(err), validator.Summary(err))
	}

	id, err := ed.Save(c.UserContext())
	switch {
	case errors.Is(err, content.ErrStaleList):
		logger.Warn("Saved but could not reload list", map[string]interface{}{"table": col.table.Name(), "error": err.Error()})
	case errors.Is(err, store.ErrNoRows):
		return col.renderForm(c, fiber.StatusNotFound, ed, nil, fmt.Sprintf("This %s no longer exists.", col.noun()))
	case err != nil:
		return col.renderForm(c, fiber.StatusInternalServerError, ed, nil, fmt.Sprintf("Could not save the %s. Please try again.", col.noun()))
	}

	if middleware.WantsJSON(c) {
		return c.Status(successStatus).JSON(fiber.Map{"success": true, "id": id, "data": ed.Items()})
	}
	return c.Redirect(col.page+"?notice=saved", fiber.StatusSeeOther)
}

func (col *collection[T]) renderForm(c *fiber.Ctx, status int, ed *content.Editor[T], errs map[string]string, alert string) error {
	draft, open := draftOf[T](ed.State())
	if !open {
		return c.Redirect(col.page, fiber.StatusSeeOther)
	}

	if middleware.WantsJSON(c) {
		if status >= fiber.StatusBadRequest {
			return c.Status(status).JSON(fiber.Map{"success": false, "error": alert, "errors": errs})
		}
		return c.Status(status).JSON(fiber.Map{"success": true, "data": draft})
	}

	form := formView{
		Heading:  "Add " + col.singular,
		Action:   col.base,
		Cancel:   col.page,
		Fields:   col.fields,
		Values:   formValues(draft),
		Errors:   errs,
		Error:    alert,
		SlugFrom: col.slugFrom,
	}
	if s, ok := ed.State().(content.Editing[T]); ok {
		form.Heading = "Edit " + col.singular
		form.Action = fmt.Sprintf("%s/%d", col.base, s.ID)
	}
	return renderAdmin(c, status, "admin/form", form.Heading, fiber.Map{"Form": form})
}

// ConfirmDelete asks before removing row :id.
func (col *collection[T]) ConfirmDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	row, err := col.table.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, store.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, col.noun()+" not found")
		}
		return err
	}
	return col.renderConfirm(c, fiber.StatusOK, id, col.label(*row), "")
}

// Delete removes row :id permanently.
func (col *collection[T]) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	ed := col.editor()
	err = ed.Delete(c.UserContext(), id)
	switch {
	case errors.Is(err, content.ErrStaleList):
		logger.Warn("Deleted but could not reload list", map[string]interface{}{"table": col.table.Name(), "error": err.Error()})
	case errors.Is(err, store.ErrNoRows):
		return fiber.NewError(fiber.StatusNotFound, col.noun()+" not found")
	case err != nil:
		if middleware.WantsJSON(c) {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete the "+col.noun())
		}
		label := fmt.Sprintf("#%d", id)
		if row, getErr := col.table.Get(c.UserContext(), id); getErr == nil {
			label = col.label(*row)
		}
		return col.renderConfirm(c, fiber.StatusInternalServerError, id, label, fmt.Sprintf("Could not delete the %s. Please try again.", col.noun()))
	}

	if middleware.WantsJSON(c) {
		return c.JSON(fiber.Map{"success": true, "data": ed.Items()})
	}
	return c.Redirect(col.page+"?notice=deleted", fiber.StatusSeeOther)
}

func (col *collection[T]) renderConfirm(c *fiber.Ctx, status int, id uint, label, alert string) error {
	return renderAdmin(c, status, "admin/confirm", "Delete "+col.singular, fiber.Map{
		"Heading": "Delete " + col.singular,
		"Message": fmt.Sprintf("Are you sure you want to delete the %s %q?", col.noun(), label),
		"Action":  fmt.Sprintf("%s/%d/delete", col.base, id),
		"Cancel":  col.page,
		"Error":   alert,
	})
}

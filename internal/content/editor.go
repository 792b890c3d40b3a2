package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/alhayat/internal/logger"
	"github.com/example/alhayat/internal/metrics"
	"github.com/example/alhayat/internal/store"
)

// EditorState is the editing mode of an admin collection. It is exactly one
// of Closed, Creating or Editing.
type EditorState[T any] interface {
	editorState()
}

// Closed means no form is open.
type Closed[T any] struct{}

// Creating holds the draft of a row that does not exist yet.
type Creating[T any] struct {
	Draft T
}

// Editing holds the draft replacing every field of row ID.
type Editing[T any] struct {
	ID    uint
	Draft T
}

func (Closed[T]) editorState()   {}
func (Creating[T]) editorState() {}
func (Editing[T]) editorState()  {}

var (
	// ErrEditorClosed is returned by Save when no form is open.
	ErrEditorClosed = errors.New("editor: no record is being edited")
	// ErrStaleList is returned when a write succeeded but the list could not
	// be read back.
	ErrStaleList = errors.New("editor: list reload failed")
)

// Editor manages one admin collection: the full row list and the row being
// edited. Every successful write is followed by a fresh read of the list.
type Editor[T any] struct {
	table *store.Table[T]
	list  store.Query
	items []T
	state EditorState[T]
}

// NewEditor creates a closed editor listing table rows with q. Admin lists
// should not set ActiveOnly.
func NewEditor[T any](table *store.Table[T], q store.Query) *Editor[T] {
	return &Editor[T]{table: table, list: q, state: Closed[T]{}}
}

// Load replaces the list with the rows currently stored.
func (e *Editor[T]) Load(ctx context.Context) error {
	items, err := e.table.Select(ctx, e.list)
	if err != nil {
		return err
	}
	e.items = items
	return nil
}

// Items returns the list as of the last successful Load.
func (e *Editor[T]) Items() []T {
	return e.items
}

// State returns the current editing mode.
func (e *Editor[T]) State() EditorState[T] {
	return e.state
}

// Open switches the editing mode. A nil state closes the editor.
func (e *Editor[T]) Open(state EditorState[T]) {
	if state == nil {
		state = Closed[T]{}
	}
	e.state = state
}

// Close discards any open draft.
func (e *Editor[T]) Close() {
	e.state = Closed[T]{}
}

// Save writes the open draft: Creating inserts a new row, Editing overwrites
// row ID. It returns the identity of the written row. When the write fails
// the state and list are left untouched.
func (e *Editor[T]) Save(ctx context.Context) (uint, error) {
	var (
		op  string
		id  uint
		err error
	)

	switch s := e.state.(type) {
	case Creating[T]:
		op = "create"
		row := s.Draft
		err = e.table.Insert(ctx, &row)
		if k, ok := any(&row).(interface{ GetID() uint }); ok {
			id = k.GetID()
		}
	case Editing[T]:
		op = "update"
		row := s.Draft
		id = s.ID
		err = e.table.Update(ctx, s.ID, &row)
	default:
		return 0, ErrEditorClosed
	}

	e.record(op, id, err)
	if err != nil {
		return 0, err
	}

	e.state = Closed[T]{}
	return id, e.refresh(ctx)
}

// Delete removes row id immediately and reloads the list.
func (e *Editor[T]) Delete(ctx context.Context, id uint) error {
	err := e.table.Delete(ctx, id)
	e.record("delete", id, err)
	if err != nil {
		return err
	}

	e.state = Closed[T]{}
	return e.refresh(ctx)
}

func (e *Editor[T]) refresh(ctx context.Context) error {
	if err := e.Load(ctx); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStaleList, e.table.Name(), err)
	}
	return nil
}

func (e *Editor[T]) record(op string, id uint, err error) {
	metrics.AdminMutations.WithLabelValues(e.table.Name(), op, metrics.Result(err)).Inc()

	fields := map[string]interface{}{"table": e.table.Name(), "op": op, "id": id}
	if err != nil {
		logger.Error(err, "Admin write failed", fields)
		return
	}
	logger.Info("Admin write", fields)
}

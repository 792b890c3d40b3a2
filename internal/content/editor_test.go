package content_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/alhayat/internal/content"
	"github.com/example/alhayat/internal/models"
	"github.com/example/alhayat/internal/store"
)

func newDoctorEditor(t *testing.T) (*content.Editor[models.Doctor], *store.Table[models.Doctor]) {
	t.Helper()
	table := store.NewTable[models.Doctor](openDB(t, true))
	editor := content.NewEditor(table, store.Query{Order: store.OrderDisplay})
	require.NoError(t, editor.Load(context.Background()))
	return editor, table
}

func TestEditorStartsClosed(t *testing.T) {
	editor, _ := newDoctorEditor(t)

	assert.IsType(t, content.Closed[models.Doctor]{}, editor.State())
	_, err := editor.Save(context.Background())
	assert.ErrorIs(t, err, content.ErrEditorClosed)
}

func TestCreateThenRefetch(t *testing.T) {
	editor, _ := newDoctorEditor(t)
	ctx := context.Background()

	editor.Open(content.Creating[models.Doctor]{Draft: models.Doctor{Name: "Dr. Ahmed Al-Hassan", Specialty: "Cardiologist", IsActive: true}})
	first, err := editor.Save(ctx)
	require.NoError(t, err)

	draft := models.Doctor{Name: "Dr. Sarah Johnson", Specialty: "Pediatrician"}
	draft.ID = first
	editor.Open(content.Creating[models.Doctor]{Draft: draft})
	second, err := editor.Save(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "caller-provided identity must be ignored")
	assert.IsType(t, content.Closed[models.Doctor]{}, editor.State())

	matches := 0
	for _, d := range editor.Items() {
		if d.ID == second {
			matches++
			assert.Equal(t, "Dr. Sarah Johnson", d.Name)
		}
	}
	assert.Equal(t, 1, matches)
	assert.Len(t, editor.Items(), 2)
}

func TestEditOverwritesRow(t *testing.T) {
	editor, table := newDoctorEditor(t)
	ctx := context.Background()

	editor.Open(content.Creating[models.Doctor]{Draft: models.Doctor{Name: "Dr. Omar Khalid", Specialty: "General Surgeon", Phone: "+123", IsActive: true}})
	id, err := editor.Save(ctx)
	require.NoError(t, err)

	editor.Open(content.Editing[models.Doctor]{ID: id, Draft: models.Doctor{Name: "Dr. Omar Khalid", Specialty: "Surgeon"}})
	_, err = editor.Save(ctx)
	require.NoError(t, err)

	got, err := table.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Surgeon", got.Specialty)
	assert.Empty(t, got.Phone)
	assert.False(t, got.IsActive)
}

func TestFailedSaveKeepsState(t *testing.T) {
	editor, _ := newDoctorEditor(t)

	state := content.Editing[models.Doctor]{ID: 404, Draft: models.Doctor{Name: "Dr. Nobody"}}
	editor.Open(state)

	_, err := editor.Save(context.Background())
	require.ErrorIs(t, err, store.ErrNoRows)
	assert.Equal(t, state, editor.State())
	assert.Empty(t, editor.Items())
}

func TestDeleteThenRefetch(t *testing.T) {
	editor, table := newDoctorEditor(t)
	ctx := context.Background()

	editor.Open(content.Creating[models.Doctor]{Draft: models.Doctor{Name: "Dr. Emily Chen", Specialty: "Neurologist", IsActive: true}})
	id, err := editor.Save(ctx)
	require.NoError(t, err)
	editor.Open(content.Creating[models.Doctor]{Draft: models.Doctor{Name: "Dr. Lisa Martinez", Specialty: "Ophthalmologist", IsActive: true}})
	_, err = editor.Save(ctx)
	require.NoError(t, err)

	require.NoError(t, editor.Delete(ctx, id))

	for _, d := range editor.Items() {
		assert.NotEqual(t, id, d.ID)
	}
	public, err := table.Select(ctx, store.Query{ActiveOnly: true})
	require.NoError(t, err)
	for _, d := range public {
		assert.NotEqual(t, id, d.ID)
	}
	assert.Len(t, editor.Items(), 1)
}

func TestInactiveRowsVisibleToAdminOnly(t *testing.T) {
	editor, table := newDoctorEditor(t)
	ctx := context.Background()

	editor.Open(content.Creating[models.Doctor]{Draft: models.Doctor{Name: "Dr. David Kumar", Specialty: "ENT Specialist", IsActive: false}})
	id, err := editor.Save(ctx)
	require.NoError(t, err)

	require.Len(t, editor.Items(), 1)
	assert.Equal(t, id, editor.Items()[0].ID)

	public, err := table.Select(ctx, store.Query{ActiveOnly: true})
	require.NoError(t, err)
	assert.Empty(t, public)
}

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/alhayat/internal/models"
)

func TestSlugRule(t *testing.T) {
	post := models.BlogPost{Title: "Heart Health", Slug: "heart-health"}
	assert.NoError(t, Validate(&post))

	post.Slug = "Heart Health"
	err := Validate(&post)
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "slug")
}

func TestFieldErrorsUseJSONNames(t *testing.T) {
	err := Validate(&models.ContactSubmission{Email: "not-an-email"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "is required", fields["name"])
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Contains(t, Summary(err), "name is required")
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Hello", SanitizeString(" <b>Hello</b><script>alert(1)</script> "))
}

func TestSanitizeStringKeepsPlainText(t *testing.T) {
	assert.Equal(t, "Sean O'Brien", SanitizeString("Sean O'Brien"))
	assert.Equal(t, `Fever & cough, temp > 39 "high"`, SanitizeString(`Fever & cough, temp > 39 "high"`))
	assert.Equal(t, "Checkup please", SanitizeString("<i>Checkup</i> please"))
}

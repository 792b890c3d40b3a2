package content

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/alhayat/internal/models"
)

func postCategory(p models.BlogPost) string { return p.Category }

func samplePosts() []models.BlogPost {
	categories := []string{"Nutrition", "Cardiology", "Pediatrics", "Nutrition", "Wellness",
		"Cardiology", "Mental Health", "Pediatrics", "Wellness"}
	posts := make([]models.BlogPost, len(categories))
	for i, c := range categories {
		posts[i] = models.BlogPost{Title: fmt.Sprintf("Post %d", i), Category: c}
	}
	return posts
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	got := Categories(samplePosts(), postCategory)
	assert.Equal(t, []string{"All", "Nutrition", "Cardiology", "Pediatrics", "Wellness", "Mental Health"}, got)

	assert.Equal(t, []string{"All"}, Categories([]models.BlogPost{}, postCategory))
}

func TestFilterByCategory(t *testing.T) {
	posts := samplePosts()

	got := FilterBy(posts, "Cardiology", postCategory)
	require.Len(t, got, 2)
	assert.Equal(t, "Post 1", got[0].Title)
	assert.Equal(t, "Post 5", got[1].Title)
}

func TestFilterAllReturnsEverything(t *testing.T) {
	posts := samplePosts()
	assert.Equal(t, posts, FilterBy(posts, AllCategories, postCategory))
	assert.Equal(t, posts, FilterBy(posts, "", postCategory))
}

func TestFilterIsCaseSensitive(t *testing.T) {
	assert.Empty(t, FilterBy(samplePosts(), "cardiology", postCategory))
	assert.Empty(t, FilterBy(samplePosts(), "Dermatology", postCategory))
}

func TestNewFiltered(t *testing.T) {
	f := NewFiltered(samplePosts(), "", postCategory)
	assert.Equal(t, AllCategories, f.Selected)
	assert.Len(t, f.Items, 9)

	f = NewFiltered(samplePosts(), "Wellness", postCategory)
	assert.Len(t, f.Items, 2)
	assert.Len(t, f.Categories, 6)
}

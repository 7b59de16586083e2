package handlers

import (
	"strings"
	"testing"

	"blogfolio/models"

	"github.com/stretchr/testify/assert"
)

func TestSlugifyTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain words", "My First Post", "My-First-Post"},
		{"punctuation becomes separator", "Hello, World!", "Hello-World"},
		{"whitespace runs collapse", "a   b\tc", "a-b-c"},
		{"leading and trailing noise trimmed", "  ...Go!  ", "Go"},
		{"numbers kept", "Top 10 Tips", "Top-10-Tips"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugifyTitle(tt.title))
		})
	}
}

func publishableBlog() CreateBlogRequest {
	return CreateBlogRequest{
		Title:  "My First Post",
		Des:    "A short description",
		Banner: "https://bucket.example.com/banner.jpeg",
		Tags:   []string{"go", "web"},
		Content: models.BlogContent{
			Blocks: []map[string]any{{"type": "paragraph", "data": map[string]any{"text": "hi"}}},
		},
	}
}

func TestValidateBlogInput(t *testing.T) {
	t.Run("publishable blog passes", func(t *testing.T) {
		req := publishableBlog()
		assert.Empty(t, validateBlogInput(&req))
	})

	t.Run("title always required", func(t *testing.T) {
		req := publishableBlog()
		req.Title = ""
		assert.Equal(t, "You must provide a title", validateBlogInput(&req))

		req.Draft = true
		assert.Equal(t, "You must provide a title", validateBlogInput(&req))
	})

	t.Run("draft skips everything but the title", func(t *testing.T) {
		req := CreateBlogRequest{Title: "Untitled draft", Draft: true}
		assert.Empty(t, validateBlogInput(&req))
	})

	t.Run("published requires description", func(t *testing.T) {
		req := publishableBlog()
		req.Des = ""
		assert.Equal(t, "You must provide project description and should be under 200 words", validateBlogInput(&req))
	})

	t.Run("description capped at 200", func(t *testing.T) {
		req := publishableBlog()
		req.Des = strings.Repeat("a", 200)
		assert.Empty(t, validateBlogInput(&req))

		req.Des = strings.Repeat("a", 201)
		assert.NotEmpty(t, validateBlogInput(&req))
	})

	t.Run("description cap counts characters not bytes", func(t *testing.T) {
		req := publishableBlog()
		req.Des = strings.Repeat("日", 200)
		assert.Empty(t, validateBlogInput(&req))

		req.Des = strings.Repeat("日", 201)
		assert.NotEmpty(t, validateBlogInput(&req))
	})

	t.Run("published requires banner", func(t *testing.T) {
		req := publishableBlog()
		req.Banner = ""
		assert.Equal(t, "You must provide project banner", validateBlogInput(&req))
	})

	t.Run("published requires content blocks", func(t *testing.T) {
		req := publishableBlog()
		req.Content.Blocks = nil
		assert.Equal(t, "There must be some project content", validateBlogInput(&req))
	})

	t.Run("published requires tags within cap", func(t *testing.T) {
		req := publishableBlog()
		req.Tags = nil
		assert.Equal(t, "Provide tags in order to publish the blog, maximum 10", validateBlogInput(&req))

		req.Tags = make([]string, 10)
		assert.Empty(t, validateBlogInput(&req))

		req.Tags = make([]string, 11)
		assert.Equal(t, "Provide tags in order to publish the blog, maximum 10", validateBlogInput(&req))
	})
}

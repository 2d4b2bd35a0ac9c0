package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMeta() map[string]any {
	return map[string]any{
		"title":       "Benefits of Sleep",
		"excerpt":     "Why rest matters.",
		"publishedOn": "2025-04-01",
	}
}

func TestNewPost(t *testing.T) {
	t.Parallel()

	t.Run("creates valid post", func(t *testing.T) {
		t.Parallel()

		post, err := domain.NewPost(
			"Benefits of Sleep",
			"benefits-of-sleep",
			"Why rest matters.",
			"# Sleep\n\nSleep is good.",
			validMeta(),
		)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, post.ID)
		assert.Equal(t, "Benefits of Sleep", post.Title)
		assert.Equal(t, "benefits-of-sleep", post.Slug)
		assert.False(t, post.CreatedAt.IsZero())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			title   string
			slug    string
			excerpt string
			content string
			wantErr error
		}{
			{"empty title", "", "slug", "excerpt", "content", domain.ErrEmptyPostTitle},
			{"empty slug", "title", "", "excerpt", "content", domain.ErrEmptyPostSlug},
			{"empty excerpt", "title", "slug", "", "content", domain.ErrEmptyPostExcerpt},
			{"empty content", "title", "slug", "excerpt", "", domain.ErrEmptyPostContent},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := domain.NewPost(tc.title, tc.slug, tc.excerpt, tc.content, validMeta())
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})
}

func TestPostValidate_EmptyID(t *testing.T) {
	t.Parallel()

	post := &domain.Post{
		Title:   "title",
		Slug:    "slug",
		Excerpt: "excerpt",
		Content: "content",
	}
	assert.ErrorIs(t, post.Validate(), domain.ErrEmptyPostID)
}

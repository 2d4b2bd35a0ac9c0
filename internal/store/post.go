package store

import (
	"context"

	"github.com/inkpost/inkpost-api/internal/domain"
)

// PostStore defines persistence operations for generated blog posts.
type PostStore interface {
	// Create saves a new post. Returns ErrSlugExists if a post with the
	// same slug already exists (unique-constraint violation), or an error
	// wrapping ErrStorageFailed for any other insert failure.
	Create(ctx context.Context, post *domain.Post) error

	// GetBySlug retrieves a post by its unique slug.
	// Returns ErrPostNotFound if no post with the slug exists.
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)

	// List returns stored posts ordered by creation time, newest first.
	List(ctx context.Context, limit, offset int) ([]*domain.Post, error)
}

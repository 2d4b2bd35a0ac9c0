package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Post
var (
	ErrEmptyPostID      = errors.New("post ID cannot be empty")
	ErrEmptyPostTitle   = errors.New("post title cannot be empty")
	ErrEmptyPostSlug    = errors.New("post slug cannot be empty")
	ErrEmptyPostExcerpt = errors.New("post excerpt cannot be empty")
	ErrEmptyPostContent = errors.New("post content cannot be empty")
)

// Post represents a generated blog post persisted for later rendering.
// The slug is the unique key; a Post is created once by the generation
// pipeline and never mutated by it afterwards.
type Post struct {
	ID        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Excerpt   string         `json:"excerpt"`
	Content   string         `json:"content"`
	Meta      map[string]any `json:"meta"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewPost creates a new Post with the given fields.
// It generates a new UUID for the post ID and sets the creation timestamp.
// Returns an error if validation fails.
func NewPost(title, slug, excerpt, content string, meta map[string]any) (*Post, error) {
	post := &Post{
		ID:        uuid.New(),
		Title:     title,
		Slug:      slug,
		Excerpt:   excerpt,
		Content:   content,
		Meta:      meta,
		CreatedAt: time.Now().UTC(),
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
// Returns an error if any field fails validation.
func (p *Post) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPostID
	}

	if p.Title == "" {
		return ErrEmptyPostTitle
	}

	if p.Slug == "" {
		return ErrEmptyPostSlug
	}

	if p.Excerpt == "" {
		return ErrEmptyPostExcerpt
	}

	if p.Content == "" {
		return ErrEmptyPostContent
	}

	return nil
}

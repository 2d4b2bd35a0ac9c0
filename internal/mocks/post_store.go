package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/store"
)

// PostStore is an in-memory implementation of store.PostStore for testing.
// It enforces slug uniqueness the way the real unique constraint does, so
// duplicate-title scenarios behave like production. Function fields allow
// individual tests to inject failures.
type PostStore struct {
	CreateFn    func(ctx context.Context, post *domain.Post) error
	GetBySlugFn func(ctx context.Context, slug string) (*domain.Post, error)
	ListFn      func(ctx context.Context, limit, offset int) ([]*domain.Post, error)

	mu    sync.Mutex
	posts map[string]*domain.Post
}

// NewPostStore creates an empty in-memory post store.
func NewPostStore() *PostStore {
	return &PostStore{posts: make(map[string]*domain.Post)}
}

// Ensure PostStore implements store.PostStore
var _ store.PostStore = (*PostStore)(nil)

// Create implements store.PostStore
func (m *PostStore) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.posts[post.Slug]; exists {
		return fmt.Errorf("%w: %s", store.ErrSlugExists, post.Slug)
	}

	clone := *post
	m.posts[post.Slug] = &clone
	return nil
}

// GetBySlug implements store.PostStore
func (m *PostStore) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	post, exists := m.posts[slug]
	if !exists {
		return nil, store.ErrPostNotFound
	}

	clone := *post
	return &clone, nil
}

// List implements store.PostStore
func (m *PostStore) List(ctx context.Context, limit, offset int) ([]*domain.Post, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]*domain.Post, 0, len(m.posts))
	for _, post := range m.posts {
		clone := *post
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []*domain.Post{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// Len reports how many posts are stored.
func (m *PostStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.posts)
}

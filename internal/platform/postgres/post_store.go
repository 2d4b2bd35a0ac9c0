package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/platform/logger"
	"github.com/inkpost/inkpost-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// Create implements store.PostStore.Create
// It saves a new post to the database, handling domain validation.
// Returns store.ErrSlugExists when the slug uniqueness constraint fires,
// which is the authoritative backstop for the check-then-insert sequence.
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	metaJSON, err := json.Marshal(post.Meta)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal post meta: %v", store.ErrStorageFailed, err)
	}

	query := `
		INSERT INTO posts (id, title, slug, excerpt, content, meta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		post.ID,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		metaJSON,
		post.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("slug already exists",
				slog.String("post_id", post.ID.String()),
				slog.String("slug", post.Slug))
			return fmt.Errorf("%w: %s", store.ErrSlugExists, post.Slug)
		}

		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()),
			slog.String("slug", post.Slug))
		return fmt.Errorf("%w: %v", store.ErrStorageFailed, err)
	}

	log.Info("post created successfully",
		slog.String("post_id", post.ID.String()),
		slog.String("slug", post.Slug))
	return nil
}

// GetBySlug implements store.PostStore.GetBySlug
// It retrieves a post by its unique slug.
// Returns store.ErrPostNotFound if the post does not exist; absence is a
// normal outcome for the pre-insert existence check, not a failure.
func (s *PostgresPostStore) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving post by slug", slog.String("slug", slug))

	query := `
		SELECT id, title, slug, excerpt, content, meta, created_at
		FROM posts
		WHERE slug = $1
	`

	var post domain.Post
	var metaJSON []byte

	err := s.db.QueryRowContext(ctx, query, slug).Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&metaJSON,
		&post.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.String("slug", slug))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post by slug",
			slog.String("error", err.Error()),
			slog.String("slug", slug))
		return nil, fmt.Errorf("%w: %v", store.ErrStorageFailed, err)
	}

	if len(metaJSON) > 0 {
		if err := json.Unmarshal(metaJSON, &post.Meta); err != nil {
			return nil, fmt.Errorf("%w: failed to unmarshal post meta: %v", store.ErrStorageFailed, err)
		}
	}

	return &post, nil
}

// List implements store.PostStore.List
// It retrieves stored posts ordered by creation time, newest first.
// Returns an empty slice when no posts exist.
func (s *PostgresPostStore) List(ctx context.Context, limit, offset int) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, title, slug, excerpt, content, meta, created_at
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		log.Error("failed to query posts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", store.ErrStorageFailed, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var posts []*domain.Post
	for rows.Next() {
		var post domain.Post
		var metaJSON []byte

		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Slug,
			&post.Excerpt,
			&post.Content,
			&metaJSON,
			&post.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: %v", store.ErrStorageFailed, err)
		}

		if len(metaJSON) > 0 {
			if err := json.Unmarshal(metaJSON, &post.Meta); err != nil {
				return nil, fmt.Errorf("%w: failed to unmarshal post meta: %v", store.ErrStorageFailed, err)
			}
		}

		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", store.ErrStorageFailed, err)
	}

	if posts == nil {
		posts = []*domain.Post{}
	}

	log.Debug("listed posts", slog.Int("count", len(posts)))
	return posts, nil
}

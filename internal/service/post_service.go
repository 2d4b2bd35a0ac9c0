package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inkpost/inkpost-api/internal/config"
	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/frontmatter"
	"github.com/inkpost/inkpost-api/internal/generation"
	"github.com/inkpost/inkpost-api/internal/platform/logger"
	"github.com/inkpost/inkpost-api/internal/sanitize"
	"github.com/inkpost/inkpost-api/internal/store"
)

// ContentSanitizer strips unsafe markup from a post body. It never fails;
// on internal error the implementation substitutes a placeholder.
type ContentSanitizer interface {
	Sanitize(body string) string
}

// PostService runs the generation pipeline and exposes read access to
// stored posts.
type PostService struct {
	generator generation.Generator
	posts     store.PostStore
	sanitizer ContentSanitizer
	pipeline  config.PipelineConfig
	logger    *slog.Logger
}

// NewPostService creates a PostService with the given collaborators.
func NewPostService(
	generator generation.Generator,
	posts store.PostStore,
	sanitizer ContentSanitizer,
	pipeline config.PipelineConfig,
	log *slog.Logger,
) (*PostService, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if posts == nil {
		return nil, errors.New("post store cannot be nil")
	}
	if pipeline.Sanitize && sanitizer == nil {
		return nil, errors.New("sanitizer cannot be nil when sanitization is enabled")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostService{
		generator: generator,
		posts:     posts,
		sanitizer: sanitizer,
		pipeline:  pipeline,
		logger:    log.With(slog.String("component", "post_service")),
	}, nil
}

// GeneratePost runs the full pipeline for a topic prompt and returns the
// stored post. The pre-insert existence check is an optimization producing
// a friendly duplicate error quickly; the slug uniqueness constraint in the
// store remains the source of truth on conflict.
func (s *PostService) GeneratePost(ctx context.Context, prompt string) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, domain.ErrEmptyPrompt
	}

	if s.pipeline.ProfanityFilter && matchesDenylist(prompt, s.pipeline.ProfanityDenylist) {
		return nil, domain.ErrProhibitedPrompt
	}

	raw, err := s.generator.GenerateDraft(ctx, prompt)
	if err != nil {
		return nil, err
	}

	doc, err := frontmatter.Extract(raw)
	if err != nil {
		return nil, err
	}

	content := doc.Body
	if s.pipeline.Sanitize {
		content = s.sanitizer.Sanitize(content)
	}
	if strings.TrimSpace(content) == "" {
		// Sanitization may strip everything; the pipeline still completes.
		content = sanitize.Placeholder
	}

	slug := domain.Slugify(doc.Title)

	_, err = s.posts.GetBySlug(ctx, slug)
	switch {
	case err == nil:
		log.Info("slug already exists, rejecting duplicate title", slog.String("slug", slug))
		return nil, fmt.Errorf("%w: %s", store.ErrSlugExists, slug)
	case store.IsNotFoundError(err):
		// Normal outcome: the slug is free.
	default:
		return nil, err
	}

	post, err := domain.NewPost(doc.Title, slug, doc.Excerpt, content, doc.Meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", frontmatter.ErrMalformedOutput, err)
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	log.Info("post generated and stored",
		slog.String("post_id", post.ID.String()),
		slog.String("slug", post.Slug))
	return post, nil
}

// GetPost returns the stored post with the given slug.
func (s *PostService) GetPost(ctx context.Context, slug string) (*domain.Post, error) {
	return s.posts.GetBySlug(ctx, slug)
}

// ListPosts returns stored posts, newest first.
func (s *PostService) ListPosts(ctx context.Context, limit, offset int) ([]*domain.Post, error) {
	return s.posts.List(ctx, limit, offset)
}

// matchesDenylist reports whether the prompt contains any denylisted term,
// case-insensitively.
func matchesDenylist(prompt string, denylist []string) bool {
	lowered := strings.ToLower(prompt)
	for _, term := range denylist {
		term = strings.TrimSpace(strings.ToLower(term))
		if term != "" && strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/inkpost/inkpost-api/internal/config"
	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/frontmatter"
	"github.com/inkpost/inkpost-api/internal/generation"
	"github.com/inkpost/inkpost-api/internal/mocks"
	"github.com/inkpost/inkpost-api/internal/sanitize"
	"github.com/inkpost/inkpost-api/internal/service"
	"github.com/inkpost/inkpost-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDraft = `---
title: "Benefits of Sleep"
excerpt: "Why a full night of rest matters."
publishedOn: "2025-04-01"
---

# Benefits of Sleep

Sleep is the foundation of good health.
`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(
	t *testing.T,
	gen *mocks.Generator,
	posts *mocks.PostStore,
	pipeline config.PipelineConfig,
) *service.PostService {
	t.Helper()

	svc, err := service.NewPostService(gen, posts, sanitize.New(discardLogger()), pipeline, discardLogger())
	require.NoError(t, err)
	return svc
}

func defaultPipeline() config.PipelineConfig {
	return config.PipelineConfig{Sanitize: true}
}

func TestGeneratePost_HappyPath(t *testing.T) {
	t.Parallel()

	gen := &mocks.Generator{Draft: validDraft}
	posts := mocks.NewPostStore()
	svc := newService(t, gen, posts, defaultPipeline())

	post, err := svc.GeneratePost(context.Background(), "benefits of sleep")
	require.NoError(t, err)

	assert.Equal(t, "Benefits of Sleep", post.Title)
	assert.Equal(t, "benefits-of-sleep", post.Slug)
	assert.Equal(t, "Why a full night of rest matters.", post.Excerpt)
	assert.Contains(t, post.Content, "Sleep is the foundation")
	assert.Equal(t, "2025-04-01", post.Meta["publishedOn"])
	assert.Equal(t, 1, posts.Len())
}

func TestGeneratePost_EmptyPrompt(t *testing.T) {
	t.Parallel()

	gen := &mocks.Generator{Draft: validDraft}
	svc := newService(t, gen, mocks.NewPostStore(), defaultPipeline())

	tests := []string{"", "   ", "\t\n"}
	for _, prompt := range tests {
		_, err := svc.GeneratePost(context.Background(), prompt)
		assert.ErrorIs(t, err, domain.ErrEmptyPrompt)
	}

	assert.Equal(t, 0, gen.CallCount(), "no backend should be invoked for invalid prompts")
}

func TestGeneratePost_DuplicateTitle(t *testing.T) {
	t.Parallel()

	gen := &mocks.Generator{Draft: validDraft}
	posts := mocks.NewPostStore()
	svc := newService(t, gen, posts, defaultPipeline())

	_, err := svc.GeneratePost(context.Background(), "benefits of sleep")
	require.NoError(t, err)

	_, err = svc.GeneratePost(context.Background(), "benefits of sleep, again")
	assert.ErrorIs(t, err, store.ErrSlugExists)
	assert.Equal(t, 1, posts.Len(), "duplicate must never produce a second record")
}

func TestGeneratePost_DuplicateAtInsertTime(t *testing.T) {
	t.Parallel()

	// The optimistic check misses but the constraint fires at insert,
	// as happens with concurrent identical requests.
	gen := &mocks.Generator{Draft: validDraft}
	posts := mocks.NewPostStore()
	posts.GetBySlugFn = func(ctx context.Context, slug string) (*domain.Post, error) {
		return nil, store.ErrPostNotFound
	}
	posts.CreateFn = func(ctx context.Context, post *domain.Post) error {
		return store.ErrSlugExists
	}
	svc := newService(t, gen, posts, defaultPipeline())

	_, err := svc.GeneratePost(context.Background(), "benefits of sleep")
	assert.ErrorIs(t, err, store.ErrSlugExists)
}

func TestGeneratePost_GenerationFailure(t *testing.T) {
	t.Parallel()

	gen := &mocks.Generator{Err: generation.ErrGenerationFailed}
	svc := newService(t, gen, mocks.NewPostStore(), defaultPipeline())

	_, err := svc.GeneratePost(context.Background(), "benefits of sleep")
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
}

func TestGeneratePost_MalformedDraft(t *testing.T) {
	t.Parallel()

	gen := &mocks.Generator{Draft: "Free text that ignores the requested format."}
	svc := newService(t, gen, mocks.NewPostStore(), defaultPipeline())

	_, err := svc.GeneratePost(context.Background(), "benefits of sleep")
	assert.ErrorIs(t, err, frontmatter.ErrMalformedOutput)
}

func TestGeneratePost_StorageFailurePropagates(t *testing.T) {
	t.Parallel()

	gen := &mocks.Generator{Draft: validDraft}
	posts := mocks.NewPostStore()
	posts.GetBySlugFn = func(ctx context.Context, slug string) (*domain.Post, error) {
		return nil, errors.New("connection refused")
	}
	svc := newService(t, gen, posts, defaultPipeline())

	_, err := svc.GeneratePost(context.Background(), "benefits of sleep")
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrSlugExists)
}

func TestGeneratePost_SanitizesBody(t *testing.T) {
	t.Parallel()

	draft := `---
title: "Injection Attempt"
excerpt: "e"
publishedOn: "2025-04-01"
---

<p>legit</p><script>alert("xss")</script>
`
	gen := &mocks.Generator{Draft: draft}
	posts := mocks.NewPostStore()
	svc := newService(t, gen, posts, defaultPipeline())

	post, err := svc.GeneratePost(context.Background(), "xss")
	require.NoError(t, err)

	assert.Contains(t, post.Content, "<p>legit</p>")
	assert.NotContains(t, post.Content, "<script")
	assert.NotContains(t, post.Content, "alert")
}

func TestGeneratePost_SanitizeDisabled(t *testing.T) {
	t.Parallel()

	draft := `---
title: "Raw Mode"
excerpt: "e"
publishedOn: "2025-04-01"
---

<custom-tag>kept as-is</custom-tag>
`
	gen := &mocks.Generator{Draft: draft}
	svc := newService(t, gen, mocks.NewPostStore(), config.PipelineConfig{Sanitize: false})

	post, err := svc.GeneratePost(context.Background(), "raw")
	require.NoError(t, err)
	assert.Contains(t, post.Content, "<custom-tag>")
}

func TestGeneratePost_FullySanitizedBodyFallsBackToPlaceholder(t *testing.T) {
	t.Parallel()

	draft := `---
title: "Nothing Survives"
excerpt: "e"
publishedOn: "2025-04-01"
---

<script>only a script</script>
`
	gen := &mocks.Generator{Draft: draft}
	svc := newService(t, gen, mocks.NewPostStore(), defaultPipeline())

	post, err := svc.GeneratePost(context.Background(), "empty after sanitize")
	require.NoError(t, err)
	assert.Equal(t, sanitize.Placeholder, post.Content)
}

func TestGeneratePost_ProfanityFilterToggle(t *testing.T) {
	t.Parallel()

	pipeline := config.PipelineConfig{
		Sanitize:          true,
		ProfanityFilter:   true,
		ProfanityDenylist: []string{"badword"},
	}

	gen := &mocks.Generator{Draft: validDraft}
	svc := newService(t, gen, mocks.NewPostStore(), pipeline)

	_, err := svc.GeneratePost(context.Background(), "a BADWORD prompt")
	assert.ErrorIs(t, err, domain.ErrProhibitedPrompt)
	assert.Equal(t, 0, gen.CallCount())

	// Disabled by default: the same prompt goes through.
	svcOff := newService(t, gen, mocks.NewPostStore(), defaultPipeline())
	_, err = svcOff.GeneratePost(context.Background(), "a BADWORD prompt")
	assert.NoError(t, err)
}

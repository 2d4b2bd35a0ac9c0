package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/inkpost/inkpost-api/internal/config"
	"github.com/inkpost/inkpost-api/internal/generation"
	"google.golang.org/genai"
)

// draftPromptFormat is the instruction template sent to every backend. It
// embeds the user topic and the current date and requests a fenced YAML
// metadata block followed by the body, matching what the frontmatter
// extractor expects downstream.
const draftPromptFormat = `You are a helpful blog post writer. Generate a complete blog post in Markdown format based on the following topic: %q.
Include YAML frontmatter with:
- title: A compelling title
- excerpt: 1-2 sentence summary
- publishedOn: %q
Format the response exactly like:

---
title: "Your Blog Post Title"
excerpt: "Brief description"
publishedOn: %q
---

# Blog Content Here
`

// modelBackend abstracts a single model invocation so the fallback policy
// can be unit-tested without network access.
type modelBackend interface {
	generate(ctx context.Context, model, prompt string) (string, error)
}

// Generator implements the generation.Generator interface using Google's
// Gemini API with a priority-ordered list of models. Backends are tried
// strictly in order, never concurrently, to control cost and keep behavior
// deterministic for a given failure pattern.
type Generator struct {
	logger  *slog.Logger
	models  []string
	backend modelBackend

	// now is swappable for tests.
	now func() time.Time
}

// Ensure Generator implements generation.Generator
var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Generator from LLM configuration.
// Returns an error wrapping generation.ErrInvalidConfig when the API key or
// model list is missing, so misconfiguration surfaces at startup.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if len(cfg.Models) == 0 {
		return nil, fmt.Errorf("%w: at least one model must be configured", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger:  logger,
		models:  cfg.Models,
		backend: &genaiBackend{client: client, temperature: cfg.Temperature},
		now:     time.Now,
	}, nil
}

// GenerateDraft produces raw post text for the topic by trying each
// configured model in priority order. Any invocation error is captured and
// iteration continues; only when all models fail does the operation fail,
// surfacing the last captured error for diagnostics.
func (g *Generator) GenerateDraft(ctx context.Context, topic string) (string, error) {
	today := g.now().UTC().Format("2006-01-02")
	prompt := fmt.Sprintf(draftPromptFormat, topic, today, today)

	var lastErr error
	for _, model := range g.models {
		g.logger.DebugContext(ctx, "invoking generation backend",
			slog.String("model", model),
			slog.Int("prompt_length", len(prompt)))

		text, err := g.backend.generate(ctx, model, prompt)
		if err != nil {
			lastErr = err
			g.logger.WarnContext(ctx, "generation backend failed, trying next",
				slog.String("model", model),
				slog.String("error", err.Error()))
			continue
		}

		g.logger.InfoContext(ctx, "generation succeeded",
			slog.String("model", model),
			slog.Int("response_length", len(text)))
		return text, nil
	}

	if lastErr == nil {
		lastErr = generation.ErrEmptyResponse
	}
	return "", fmt.Errorf("%w: all models exhausted: %v", generation.ErrGenerationFailed, lastErr)
}

// genaiBackend performs real Gemini API calls at a fixed sampling
// temperature.
type genaiBackend struct {
	client      *genai.Client
	temperature float32
}

func (b *genaiBackend) generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := b.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(b.temperature),
	})
	if err != nil {
		return "", err
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", generation.ErrEmptyResponse
	}

	// The backend may return the draft as one part or as several text
	// fragments; fragments are concatenated in order with newline
	// separators.
	var fragments []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Text == "" {
			continue
		}
		fragments = append(fragments, part.Text)
	}

	text := strings.Join(fragments, "\n")
	if strings.TrimSpace(text) == "" {
		return "", generation.ErrEmptyResponse
	}

	return text, nil
}

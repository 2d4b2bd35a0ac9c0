package generation

import "context"

// Generator defines the interface for drafting blog posts from a topic
// prompt. It serves as a boundary between the application core and external
// AI/LLM services: the orchestration above it is provider-agnostic, and
// implementations own the provider-specific fallback policy.
type Generator interface {
	// GenerateDraft produces raw post text (frontmatter block plus body)
	// for the given topic prompt. Returns an error wrapping
	// ErrGenerationFailed when all configured backends fail.
	GenerateDraft(ctx context.Context, topic string) (string, error)
}

package sanitize

import (
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
)

// Placeholder replaces the body when sanitization itself fails. Persisting
// a post must never be blocked by a sanitizer crash, but unsafe content
// must never pass through unsanitized either.
const Placeholder = "*This content was removed because it could not be safely processed.*"

// Sanitizer strips markup elements outside the allow-list from post
// bodies. Markdown syntax passes through untouched; embedded raw HTML is
// filtered.
type Sanitizer struct {
	policy *bluemonday.Policy
	logger *slog.Logger
}

// New creates a Sanitizer with the standard allow-list: headings,
// paragraphs, lists, inline emphasis, code, blockquotes, links, line
// breaks, generic span/div, and horizontal rules. Everything else,
// including script, iframe, and inline event handlers, is excluded by
// default.
func New(logger *slog.Logger) *Sanitizer {
	if logger == nil {
		logger = slog.Default()
	}

	policy := bluemonday.NewPolicy()
	policy.AllowElements(
		"h1", "h2", "h3", "h4", "h5", "h6",
		"p", "ul", "ol", "li",
		"em", "strong", "i", "b",
		"code", "pre", "blockquote",
		"br", "span", "div", "hr",
	)
	policy.AllowStandardURLs()
	policy.AllowAttrs("href").OnElements("a")

	return &Sanitizer{
		policy: policy,
		logger: logger.With(slog.String("component", "sanitizer")),
	}
}

// Sanitize returns the body with disallowed markup removed. It never fails
// the overall request: if the underlying transform panics, the recovered
// failure degrades to a fixed placeholder instead of propagating.
func (s *Sanitizer) Sanitize(body string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("sanitizer failed, substituting placeholder",
				slog.Any("panic", r),
				slog.Int("body_length", len(body)))
			out = Placeholder
		}
	}()

	return s.policy.Sanitize(body)
}

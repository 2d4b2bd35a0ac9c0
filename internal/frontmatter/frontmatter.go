package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	adrg "github.com/adrg/frontmatter"
)

// maxTitleLength bounds normalized titles to keep derived slugs and
// display output stable.
const maxTitleLength = 120

// Common errors returned by the frontmatter package
var (
	// ErrMalformedOutput is returned when raw text lacks a parseable
	// frontmatter block or required metadata fields.
	ErrMalformedOutput = errors.New("generated content is missing required frontmatter")

	// ErrMissingField wraps ErrMalformedOutput for a specific absent field.
	ErrMissingField = fmt.Errorf("%w: required field missing", ErrMalformedOutput)
)

// Document is the parsed form of raw generated text: the extracted
// metadata fields, the full metadata map, and the remaining body.
type Document struct {
	Title       string
	Excerpt     string
	PublishedOn string
	Meta        map[string]any
	Body        string
}

// Extract splits the leading delimited YAML metadata block from the body
// and validates the three required fields (title, excerpt, publishedOn).
// The returned title is normalized; Meta retains the raw values for
// persistence alongside the post.
func Extract(raw string) (*Document, error) {
	meta := map[string]any{}

	// Models occasionally emit leading blank lines before the delimiter;
	// the parser requires the block to open the input.
	trimmed := strings.TrimLeft(raw, " \t\r\n")

	body, err := adrg.Parse(strings.NewReader(trimmed), &meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	doc := &Document{
		Title:       NormalizeTitle(stringField(meta, "title")),
		Excerpt:     stringField(meta, "excerpt"),
		PublishedOn: stringField(meta, "publishedOn"),
		Meta:        meta,
		Body:        strings.TrimSpace(string(body)),
	}

	for _, field := range []struct {
		name  string
		value string
	}{
		{"title", doc.Title},
		{"excerpt", doc.Excerpt},
		{"publishedOn", doc.PublishedOn},
	} {
		if field.value == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}

	return doc, nil
}

// NormalizeTitle collapses internal whitespace, trims, and truncates the
// title to a bounded maximum length.
func NormalizeTitle(title string) string {
	normalized := strings.Join(strings.Fields(title), " ")

	runes := []rune(normalized)
	if len(runes) > maxTitleLength {
		normalized = strings.TrimSpace(string(runes[:maxTitleLength]))
	}

	return normalized
}

// stringField reads a metadata value as a string, stringifying scalar
// values the YAML parser may have typed (dates, numbers).
func stringField(meta map[string]any, key string) string {
	value, ok := meta[key]
	if !ok || value == nil {
		return ""
	}

	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}

	return strings.TrimSpace(fmt.Sprintf("%v", value))
}

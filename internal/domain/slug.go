package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// maxSlugLength caps derived slugs so identifiers stay stable for URLs
// and index keys.
const maxSlugLength = 64

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a post title: lowercase,
// runs of non-alphanumeric characters collapsed to a single hyphen,
// leading/trailing hyphens trimmed, length capped at 64 characters.
//
// A title with no alphanumeric characters would otherwise produce an
// empty slug, so a timestamp-based fallback is substituted to guarantee
// the result is never empty.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}

	if slug == "" {
		return fmt.Sprintf("post-%d", time.Now().UTC().Unix())
	}

	return slug
}

// Package frontmatter parses the structured metadata block out of raw
// LLM-generated post text. It is the primary defense against a backend
// returning free text that ignores the requested format: a draft without
// the required fields is rejected as malformed rather than persisted.
package frontmatter

// Package service orchestrates the generation request pipeline: draft the
// post via the configured LLM backends, extract and validate its metadata,
// sanitize the body, derive a unique slug, and persist the result. Each
// stage fails fast with a distinct error; only the sanitizer degrades
// instead of failing.
package service

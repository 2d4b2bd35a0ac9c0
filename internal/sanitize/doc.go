// Package sanitize neutralizes unsafe markup in AI-generated post bodies.
// The body is treated as untrusted content: its substance is
// model-generated and unreviewed, so anything outside an explicit element
// allow-list is stripped rather than requiring enumeration of every
// dangerous tag.
package sanitize

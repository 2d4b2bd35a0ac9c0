// Package api contains the HTTP transport layer: request decoding and
// validation, handlers for the generation pipeline and post reads, and the
// mapping from internal errors to status codes and safe client messages.
package api

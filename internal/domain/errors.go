package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyPrompt is returned when a generation prompt is missing or
	// trims to the empty string.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrProhibitedPrompt is returned when a prompt matches the configured
	// denylist. Only reachable when the profanity filter is enabled.
	ErrProhibitedPrompt = errors.New("prompt contains prohibited terms")
)

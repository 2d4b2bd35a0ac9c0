package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when every configured backend model
	// has been tried and none produced usable text. It wraps the last
	// backend error for diagnostics.
	ErrGenerationFailed = errors.New("failed to generate content from prompt")

	// ErrEmptyResponse is returned when a backend call succeeds but yields
	// no text content.
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

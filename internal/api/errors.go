package api

import (
	"errors"
	"net/http"

	"github.com/inkpost/inkpost-api/internal/api/shared"
	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/frontmatter"
	"github.com/inkpost/inkpost-api/internal/generation"
	"github.com/inkpost/inkpost-api/internal/platform/postgres"
	"github.com/inkpost/inkpost-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad input: the user must change it, resubmitting won't help.
	case errors.Is(err, domain.ErrEmptyPrompt),
		errors.Is(err, domain.ErrProhibitedPrompt),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, shared.ErrInvalidJSON),
		errors.Is(err, store.ErrSlugExists):
		return http.StatusBadRequest

	// Not found errors (read endpoints only)
	case errors.Is(err, store.ErrPostNotFound):
		return http.StatusNotFound

	// Backend and pipeline failures: transient, retryable by resubmission.
	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidConfig),
		errors.Is(err, frontmatter.ErrMalformedOutput),
		errors.Is(err, store.ErrStorageFailed):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal
// details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrEmptyPrompt):
		return "Prompt is required"

	case errors.Is(err, domain.ErrProhibitedPrompt):
		return "Prompt contains prohibited terms"

	case errors.Is(err, shared.ErrInvalidJSON):
		return "Invalid request format"

	case errors.Is(err, store.ErrSlugExists):
		return "A post with this title already exists. Try a different prompt."

	case errors.Is(err, store.ErrPostNotFound):
		return "Post not found"

	case errors.Is(err, generation.ErrInvalidConfig):
		return "Generation backend is not configured. Check server credentials."

	case errors.Is(err, generation.ErrGenerationFailed):
		return "AI generation failed. Please try again later."

	case errors.Is(err, frontmatter.ErrMalformedOutput):
		return "Generated content was missing required metadata. Please try again."

	case errors.Is(err, store.ErrStorageFailed):
		return "Failed to save blog post."

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the standard error response for err: the mapped
// status code, the safe message, and, for storage failures, a best-effort
// operator hint that distinguishes credential misconfiguration from
// generic faults without echoing secrets.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	var hint string
	if errors.Is(err, store.ErrStorageFailed) {
		hint = postgres.DiagnosticHint(err)
	}

	shared.RespondWithErrorAndLog(w, r, status, message, hint, err)
}

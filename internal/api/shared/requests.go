package shared

import (
	"encoding/json"
	"errors"
	"net/http"
)

// maxRequestBodyBytes bounds request bodies; generation prompts are short.
const maxRequestBodyBytes = 1 << 20

// ErrInvalidJSON is returned when a request body cannot be decoded.
var ErrInvalidJSON = errors.New("invalid JSON request body")

// DecodeJSON decodes the request body into v, rejecting oversized bodies.
func DecodeJSON(r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return ErrInvalidJSON
	}
	return nil
}

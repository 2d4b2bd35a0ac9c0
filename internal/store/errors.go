package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. A "not found" result from an existence check is a normal
	// outcome, not a failure.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrStorageFailed is returned for query or insert errors not
	// attributable to duplication or absence. Check the wrapped error for
	// details; callers must not surface those details to end users.
	ErrStorageFailed = errors.New("storage operation failed")

	// ErrPostNotFound indicates that no post exists with the requested slug.
	ErrPostNotFound = fmt.Errorf("%w: post", ErrNotFound)

	// ErrSlugExists indicates that a post with the derived slug already
	// exists. The slug uniqueness constraint is the source of truth: this
	// error is returned both from the optimistic existence check and from
	// a unique-constraint violation at insert time.
	ErrSlugExists = fmt.Errorf("%w: slug", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// Package apperrors defines the error kinds surfaced by repository
// operations. Handlers translate these into HTTP statuses; everything else is
// reported as an internal error with a fixed message.
package apperrors

import "errors"

var (
	// ErrUnauthenticated covers missing, invalid, or expired credentials,
	// including tokens whose subject no longer resolves to a user.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrConflict marks a uniqueness violation within the caller's visible
	// scope, such as a duplicate category name.
	ErrConflict = errors.New("conflict")

	// ErrForbidden marks an operation on a row owned by someone else.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound marks the absence of a row within the caller's scope.
	ErrNotFound = errors.New("not found")
)

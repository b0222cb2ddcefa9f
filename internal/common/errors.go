// Package common defines shared sentinel errors used across the application
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorForeignKey    = errors.New("referenced row does not exist")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("invalid iin or password")

	// Validation errors (blank required field, out-of-range value).
	ErrorValidation = errors.New("validation error")
)

package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrDuplicateEntry is returned when an insert collides with an existing
	// entry under the store's uniqueness policy.
	ErrDuplicateEntry = errors.New("duplicate entry")
	// ErrUnknownPolicy is returned when parsing an unsupported uniqueness policy name.
	ErrUnknownPolicy = errors.New("unknown uniqueness policy")
)

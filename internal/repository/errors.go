package repository

import "errors"

// ErrNotFound is returned when a requested record is not found in the
// repository. This abstracts away the underlying storage implementation
// from the service layer.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
// The unique indexes on submissions are the authority for the at-most-one
// attempt rules, so concurrent check-then-insert races always surface here.
var ErrDuplicate = errors.New("record already exists")

package repository

import "errors"

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when an insert hits the unique index on
// email. The index is the only guard against two concurrent first-time
// subscribes for the same address.
var ErrDuplicateEmail = errors.New("duplicate email")

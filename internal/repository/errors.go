// Package repository defines sentinel errors reused across the data
// access layer.  Handlers translate them into HTTP statuses: not
// found into 404, forbidden into 403, conflicts into 409.  Mutations
// on absent ids surface ErrNotFound rather than silently succeeding,
// so callers must handle absence explicitly.
package repository

import "errors"

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrForbidden is returned when the caller attempts an operation
// its role does not permit, such as a non-student filing a
// complaint.
var ErrForbidden = errors.New("forbidden")

// ErrEmailExists is returned on registration with a taken email.
var ErrEmailExists = errors.New("email already exists")

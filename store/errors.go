package store

import "errors"

var (
	// ErrNotFound indicates the contract was never initialised.
	ErrNotFound = errors.New("store: state not found")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("store: required parameter is nil")

	// ErrInvalidState indicates a record violates the budget invariant.
	ErrInvalidState = errors.New("store: invalid state")
)

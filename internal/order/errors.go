package order

import "errors"

// Domain-specific errors for the order package.
var (
	ErrEmptySessionID = errors.New("session id is required")
	ErrEmptyCatalog   = errors.New("store catalog has no orderable items")
)

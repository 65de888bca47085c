package ticket

import "errors"

// Domain-specific errors for the ticket package.
var (
	ErrSessionNotCompleted = errors.New("session is not completed")
	ErrNoItems             = errors.New("session has no line items")
)

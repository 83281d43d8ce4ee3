package usecase

import (
	"context"
	"errors"
	"fmt"
)

// Sentinels callers branch on with errors.Is. Transports map them to status
// codes; anything else is an internal error.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

const internalMessage = "internal error"

// storeError wraps a repository failure with the operation name. Timeouts are
// marked ErrDependencyUnavailable so callers can retry.
func storeError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// PublicMessage returns the text safe to show a client: the full message for
// caller errors, a generic one for everything else.
func PublicMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNotFound), errors.Is(err, ErrUnauthorized):
		return err.Error()
	case errors.Is(err, ErrDependencyUnavailable):
		return ErrDependencyUnavailable.Error()
	default:
		return internalMessage
	}
}

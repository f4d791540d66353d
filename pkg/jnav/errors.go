package jnav

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrClosed is returned by Subscription.Receive after Close.
	ErrClosed = errors.New("jnav: subscription closed")

	// ErrAlreadyCollecting indicates a Lifecycle already has an active Collect.
	ErrAlreadyCollecting = errors.New("jnav: lifecycle already collecting intents")

	// ErrUnknownRoute indicates a route that matches no registered destination.
	ErrUnknownRoute = errors.New("jnav: unknown route")

	// ErrEmptyStack indicates an operation that needs a current entry.
	ErrEmptyStack = errors.New("jnav: backstack is empty")
)

// CodecError describes a params or result payload that could not be
// encoded or decoded. Codec errors are logged and never returned to
// navigation callers.
type CodecError struct {
	Op   string // "encode" or "decode"
	Type string // Go type involved
	Err  error  // Underlying error
}

func (e *CodecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("jnav: %s %s: %v", e.Op, e.Type, e.Err)
	}
	return fmt.Sprintf("jnav: %s %s", e.Op, e.Type)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// NewCodecError creates a new codec error.
func NewCodecError(op string, typeName string, err error) *CodecError {
	return &CodecError{Op: op, Type: typeName, Err: err}
}

// IsCodecError checks if an error is a codec error.
func IsCodecError(err error) bool {
	var codecErr *CodecError
	return errors.As(err, &codecErr)
}

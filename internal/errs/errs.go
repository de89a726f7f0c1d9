// Package errs defines the error kinds shared by the stores and the scoring
// service. Callers classify with errors.Is against the sentinels.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks an entity that was absent where presence was required.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument marks caller-supplied data violating a precondition.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInfrastructure marks an underlying store or (de)serialization failure.
	ErrInfrastructure = errors.New("infrastructure error")
)

// NotFoundf builds an ErrNotFound with a formatted detail message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// InvalidArgumentf builds an ErrInvalidArgument with a formatted detail message.
func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Infrastructure wraps a store-layer failure, keeping the cause inspectable.
// A nil cause returns nil so store code can wrap unconditionally.
func Infrastructure(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrInfrastructure, op, err)
}

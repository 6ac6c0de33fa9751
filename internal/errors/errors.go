package errors

import (
	"errors"
	"fmt"
)

// Common error types for the FuniqAI client
var (
	// Client construction errors
	ErrBaseURLRequired = errors.New("base URL is required")
	ErrStoreRequired   = errors.New("session store is required")

	// Request building errors
	ErrMissingPathParam = errors.New("missing path parameter")
	ErrUnknownPathParam = errors.New("unknown path parameter")
	ErrInvalidBody      = errors.New("invalid request body")

	// Response errors
	ErrMalformedResponse = errors.New("malformed response body")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

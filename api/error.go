package api

import (
	"errors"
	"fmt"
	"net/http"
)

// HttpError is the uniform failure raised for every business error and
// HTTP-level failure. Code is the business error code from the body, or
// the HTTP status rendered as a string when the body carried none.
type HttpError struct {
	Code     string
	Status   int
	Message  string
	Body     *Envelope // decoded body, nil when the response had none
	Response *http.Response
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("api error %s (http %d): %s", e.Code, e.Status, e.Message)
}

// IsCode reports whether the error carries the given business code.
// Calling UI code uses this to special-case flows, e.g. redirecting to
// account activation on CodeAccountNotActive.
func (e *HttpError) IsCode(code string) bool {
	return e.Code == code
}

// AsHttpError unwraps err to an *HttpError if one is in its chain.
func AsHttpError(err error) (*HttpError, bool) {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

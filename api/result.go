package api

import (
	"encoding/json"
	"net/http"
)

// Envelope is the wire wrapper present on every FuniqAI response body.
// Success bodies carry the message under "msg", error bodies produced by
// the backend's exception handler carry it under "message"; both are
// kept so neither shape is lost.
type Envelope struct {
	Code    string          `json:"code"`
	Msg     string          `json:"msg,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ErrorMessage returns the server-provided message regardless of which
// field it arrived in.
func (e *Envelope) ErrorMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Msg
}

// Result is the normalized outcome of a successful API call: the
// envelope's data field decoded into the endpoint's response type, plus
// the raw response for callers that need headers or status. Data is nil
// when the envelope carried no data field (a defined fallback rather
// than a decode failure).
//
// The error half of the call outcome is the function's error return; a
// Result is only produced when the call succeeded.
type Result[T any] struct {
	Data     *T
	Response *http.Response
}

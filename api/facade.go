package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/yellinzero/funiqai-go/i18n"
	"github.com/yellinzero/funiqai-go/internal/errors"
	"github.com/yellinzero/funiqai-go/routes"
)

// The verb functions are the typed facade over the transport: each
// accepts only routes declared for its verb, dispatches the request
// through the middleware chain and pipes the outcome through the
// response normalizer. The facade performs no retries and no caching.

func Get[T any](ctx context.Context, c *Client, path routes.GetPath, options ...RequestOption) (*Result[T], error) {
	return dispatch[T](ctx, c, http.MethodGet, string(path), options)
}

func Post[T any](ctx context.Context, c *Client, path routes.PostPath, options ...RequestOption) (*Result[T], error) {
	return dispatch[T](ctx, c, http.MethodPost, string(path), options)
}

func Put[T any](ctx context.Context, c *Client, path routes.PutPath, options ...RequestOption) (*Result[T], error) {
	return dispatch[T](ctx, c, http.MethodPut, string(path), options)
}

func Delete[T any](ctx context.Context, c *Client, path routes.DeletePath, options ...RequestOption) (*Result[T], error) {
	return dispatch[T](ctx, c, http.MethodDelete, string(path), options)
}

func Patch[T any](ctx context.Context, c *Client, path routes.PatchPath, options ...RequestOption) (*Result[T], error) {
	return dispatch[T](ctx, c, http.MethodPatch, string(path), options)
}

func Head[T any](ctx context.Context, c *Client, path routes.HeadPath, options ...RequestOption) (*Result[T], error) {
	return dispatch[T](ctx, c, http.MethodHead, string(path), options)
}

func Options[T any](ctx context.Context, c *Client, path routes.OptionsPath, options ...RequestOption) (*Result[T], error) {
	return dispatch[T](ctx, c, http.MethodOptions, string(path), options)
}

func Trace[T any](ctx context.Context, c *Client, path routes.TracePath, options ...RequestOption) (*Result[T], error) {
	return dispatch[T](ctx, c, http.MethodTrace, string(path), options)
}

func dispatch[T any](ctx context.Context, c *Client, method, path string, options []RequestOption) (*Result[T], error) {
	raw, err := c.do(ctx, method, path, newRequestConfig(options))
	if err != nil {
		return nil, err
	}
	return normalize[T](c, raw)
}

// normalize converts a transport outcome into a Result, enforcing the
// uniform error-surfacing policy: a non-zero business code always wins
// over the HTTP status, HTTP failures without a business code are keyed
// by status, and success unwraps one level of envelope.
func normalize[T any](c *Client, raw *rawResult) (*Result[T], error) {
	locale := c.store.Context().Locale

	if raw.envelope != nil && raw.envelope.Code != CodeOK {
		code := raw.envelope.Code
		userMsg := c.translator.Translate(locale, code)
		if userMsg == "" {
			userMsg = c.translator.Translate(locale, i18n.UndefinedErrorKey)
		}
		c.notifier.Error(userMsg)

		message := raw.envelope.ErrorMessage()
		if message == "" {
			message = userMsg
		}
		return nil, &HttpError{
			Code:     code,
			Status:   raw.response.StatusCode,
			Message:  message,
			Body:     raw.envelope,
			Response: raw.response,
		}
	}

	if status := raw.response.StatusCode; status >= 400 && status < 600 {
		userMsg := c.translator.Translate(locale, i18n.HTTPStatusKey(status))
		if userMsg == "" {
			userMsg = c.translator.Translate(locale, i18n.UndefinedErrorKey)
		}
		c.notifier.Error(userMsg)

		return nil, &HttpError{
			Code:     strconv.Itoa(status),
			Status:   status,
			Message:  userMsg,
			Body:     raw.envelope,
			Response: raw.response,
		}
	}

	result := &Result[T]{Response: raw.response}
	if raw.envelope != nil && len(raw.envelope.Data) > 0 && !bytes.Equal(raw.envelope.Data, []byte("null")) {
		var data T
		if err := json.Unmarshal(raw.envelope.Data, &data); err != nil {
			return nil, errors.Wrapf(errors.ErrMalformedResponse, "decode data field: %v", err)
		}
		result.Data = &data
	}
	return result, nil
}

package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/yellinzero/funiqai-go/internal/errors"
)

// requestConfig carries the verb-appropriate combination of body, path
// parameters, query parameters and extra headers for one call.
type requestConfig struct {
	body       any
	pathParams map[string]string
	query      url.Values
	headers    http.Header
}

// RequestOption configures a single API call.
type RequestOption func(*requestConfig)

// WithBody sets the JSON request body.
func WithBody(body any) RequestOption {
	return func(rc *requestConfig) {
		rc.body = body
	}
}

// WithPathParam substitutes a {name} placeholder in the path template.
// Values are path-escaped; templates are never built by concatenation.
func WithPathParam(name, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.pathParams == nil {
			rc.pathParams = map[string]string{}
		}
		rc.pathParams[name] = value
	}
}

// WithQuery adds a query parameter.
func WithQuery(name, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.query == nil {
			rc.query = url.Values{}
		}
		rc.query.Add(name, value)
	}
}

// WithHeader sets an extra request header for this call only.
func WithHeader(name, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.headers == nil {
			rc.headers = http.Header{}
		}
		rc.headers.Set(name, value)
	}
}

func newRequestConfig(options []RequestOption) requestConfig {
	var rc requestConfig
	for _, opt := range options {
		opt(&rc)
	}
	return rc
}

// expandPath substitutes every {param} placeholder in the template from
// the configured path parameters. A placeholder without a value and a
// value without a placeholder are both errors, mirroring what the wire
// schema would reject.
func expandPath(template string, params map[string]string) (string, error) {
	used := make(map[string]bool, len(params))
	var b strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			b.WriteString(rest)
			break
		}
		name := rest[open+1 : open+closing]
		value, ok := params[name]
		if !ok {
			return "", errors.Wrapf(errors.ErrMissingPathParam, "%q in %q", name, template)
		}
		used[name] = true
		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(value))
		rest = rest[open+closing+1:]
	}
	for name := range params {
		if !used[name] {
			return "", errors.Wrapf(errors.ErrUnknownPathParam, "%q not in %q", name, template)
		}
	}
	return b.String(), nil
}

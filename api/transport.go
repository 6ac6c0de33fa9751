package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/yellinzero/funiqai-go/internal/errors"
)

// rawResult is the transport outcome before normalization: the response,
// its fully-read body, and the decoded envelope when the body carried
// one.
type rawResult struct {
	response *http.Response
	body     []byte
	envelope *Envelope
}

// do builds and sends one request. Outbound interceptors always complete
// before the network call; inbound interceptors always complete before
// the caller sees the result. Interceptor failures are logged and
// swallowed so a single malformed cookie cannot break all requests.
func (c *Client) do(ctx context.Context, method, pathTemplate string, rc requestConfig) (*rawResult, error) {
	path, err := expandPath(pathTemplate, rc.pathParams)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if rc.body != nil {
		payload, err := json.Marshal(rc.body)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidBody, "marshal %s %s: %v", method, path, err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	reqURL := c.baseURL + path
	if len(rc.query) > 0 {
		reqURL += "?" + rc.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, errors.Wrapf(err, "create request %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if rc.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, values := range rc.headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	for _, interceptor := range c.requestInterceptors {
		if err := interceptor(req); err != nil {
			c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("request interceptor failed")
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("transport failure")
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("read response body")
		return nil, errors.Wrapf(err, "read response %s %s", method, path)
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	for _, interceptor := range c.responseInterceptors {
		if err := interceptor(resp); err != nil {
			c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("response interceptor failed")
		}
		// interceptors may consume the body; restore it for the next stage
		resp.Body = io.NopCloser(bytes.NewReader(body))
	}

	raw := &rawResult{response: resp, body: body}
	if len(body) > 0 {
		var env Envelope
		if err := json.Unmarshal(body, &env); err == nil && env.Code != "" {
			raw.envelope = &env
		}
	}
	return raw, nil
}

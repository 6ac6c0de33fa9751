// Package api is the typed dispatch core of the FuniqAI client: a
// generic HTTP transport with ordered request/response interceptors, a
// response normalizer enforcing the uniform error policy, and one
// verb-typed facade function per HTTP method.
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yellinzero/funiqai-go/i18n"
	"github.com/yellinzero/funiqai-go/internal/errors"
	"github.com/yellinzero/funiqai-go/notify"
	"github.com/yellinzero/funiqai-go/session"
)

// Request headers set by the client and response headers it consumes.
const (
	HeaderLanguage       = "X-LANGUAGE"
	HeaderTenantID       = "X-Tenant-ID"
	HeaderRefreshToken   = "X-Refresh-Token"
	HeaderNewAccessToken = "X-New-Access-Token"
	HeaderRequestID      = "X-Request-ID"
)

const (
	defaultTimeout       = 30 * time.Second
	defaultRefreshLeeway = 30 * time.Second
)

// RequestInterceptor runs before a request leaves. A returned error is
// logged and swallowed: a failing interceptor never breaks the request.
type RequestInterceptor func(req *http.Request) error

// ResponseInterceptor runs on every response before normalization, under
// the same never-throw guarantee as RequestInterceptor.
type ResponseInterceptor func(resp *http.Response) error

// Client dispatches typed requests to the FuniqAI backend. Use the
// package-level verb functions (Get, Post, ...) to make calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      session.Store
	translator i18n.Translator
	notifier   notify.Notifier
	navigator  notify.Navigator
	logger     zerolog.Logger

	nowTime       func() time.Time
	refreshLeeway time.Duration
	public        bool

	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// Option modifies the Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTranslator substitutes the error-message translator.
func WithTranslator(t i18n.Translator) Option {
	return func(c *Client) {
		c.translator = t
	}
}

// WithNotifier sets the toast surface invoked on business and HTTP
// failures. Browser-equivalent contexts pass a real one; the default
// discards messages as server rendering contexts have no UI surface.
func WithNotifier(n notify.Notifier) Option {
	return func(c *Client) {
		c.notifier = n
	}
}

// WithNavigator sets the navigation surface used for forced redirects
// (session invalidation on 401).
func WithNavigator(n notify.Navigator) Option {
	return func(c *Client) {
		c.navigator = n
	}
}

// WithLogger substitutes the client's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithNowTime sets the now time function (primarily for testing).
func WithNowTime(nowFunc func() time.Time) Option {
	return func(c *Client) {
		c.nowTime = nowFunc
	}
}

// WithRefreshLeeway sets how close to its expiry the access token must be
// before the refresh token is forwarded with requests.
func WithRefreshLeeway(leeway time.Duration) Option {
	return func(c *Client) {
		c.refreshLeeway = leeway
	}
}

// Public builds a client that skips session header injection on outbound
// requests. Responses are still inspected for session signals, matching
// the unauthenticated client the web frontend uses for auth endpoints.
func Public() Option {
	return func(c *Client) {
		c.public = true
	}
}

// New creates a Client for the given base URL. The session store is an
// explicit dependency so execution contexts (browser-equivalent, server
// rendering, tests) decide where session state lives.
func New(baseURL string, store session.Store, options ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.Wrapf(errors.ErrBaseURLRequired, "[api.New]")
	}
	if store == nil {
		return nil, errors.Wrapf(errors.ErrStoreRequired, "[api.New]")
	}

	c := &Client{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		httpClient:    &http.Client{Timeout: defaultTimeout},
		store:         store,
		translator:    i18n.MustBundle(),
		notifier:      notify.NopNotifier{},
		navigator:     notify.NopNavigator{},
		logger:        log.Logger,
		nowTime:       time.Now,
		refreshLeeway: defaultRefreshLeeway,
	}
	for _, opt := range options {
		opt(c)
	}

	if !c.public {
		c.requestInterceptors = append(c.requestInterceptors, c.injectRequestContext)
	}
	c.responseInterceptors = append(c.responseInterceptors, c.handleSessionSignals)

	return c, nil
}

// Use appends a request interceptor after the built-in outbound stage.
func (c *Client) Use(ri RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, ri)
}

// UseResponse appends a response interceptor after the built-in inbound
// stage.
func (c *Client) UseResponse(ri ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, ri)
}

// Store returns the session store the client was built with.
func (c *Client) Store() session.Store {
	return c.store
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

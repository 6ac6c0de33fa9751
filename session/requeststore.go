package session

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yellinzero/funiqai-go/i18n"
)

// RequestStore is the server-rendering Store: it reads session and locale
// state from an incoming request's cookies and never mutates anything.
// Mutation of a server-rendered visitor's session is deferred to the
// client, so the write methods succeed without doing work.
type RequestStore struct {
	req    *http.Request
	logger zerolog.Logger
}

// NewRequestStore wraps the incoming request of a server rendering
// context.
func NewRequestStore(req *http.Request) *RequestStore {
	return &RequestStore{req: req, logger: log.Logger}
}

// Context reads the named cookies from the request. Missing or malformed
// cookies fail soft: an empty session and the fallback locale.
func (rs *RequestStore) Context() Context {
	ctx := Context{Locale: i18n.FallbackLocale}
	if rs.req == nil {
		return ctx
	}

	if c, err := rs.req.Cookie(CookieName); err == nil {
		s, err := DecodeCookieValue(c.Value)
		if err != nil {
			rs.logger.Warn().Err(err).Msg("malformed session cookie on incoming request")
		} else {
			ctx.AccessToken = s.AccessToken
			ctx.RefreshToken = s.RefreshToken
			ctx.TenantID = s.TenantID
		}
	}
	if c, err := rs.req.Cookie(i18n.CookieName); err == nil {
		ctx.Locale = i18n.Normalize(c.Value)
	}
	return ctx
}

// SetAuth is deferred to the client in server rendering contexts.
func (rs *RequestStore) SetAuth(Session) error {
	rs.logger.Debug().Msg("session write skipped in server rendering context")
	return nil
}

// SetAccessToken is deferred to the client in server rendering contexts.
// Whether server-rendered requests ever need to observe a token refresh
// is an open question inherited from the web frontend.
func (rs *RequestStore) SetAccessToken(string) error {
	rs.logger.Debug().Msg("access token refresh skipped in server rendering context")
	return nil
}

// Clear is deferred to the client in server rendering contexts.
func (rs *RequestStore) Clear() error {
	rs.logger.Debug().Msg("session clear skipped in server rendering context")
	return nil
}

// RawCookies returns the verbatim Cookie header of the incoming request
// so the transport can forward it on outbound calls.
func (rs *RequestStore) RawCookies() string {
	if rs.req == nil {
		return ""
	}
	return rs.req.Header.Get("Cookie")
}

var (
	_ Store             = (*RequestStore)(nil)
	_ RawCookieProvider = (*RequestStore)(nil)
)

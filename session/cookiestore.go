package session

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yellinzero/funiqai-go/i18n"
)

// CookieStore is the browser-equivalent Store: a read-write cookie jar
// scoped to the API origin. It is the only writer of session state on
// the client side.
type CookieStore struct {
	origin  *url.URL
	jar     http.CookieJar
	nowTime func() time.Time
	logger  zerolog.Logger
}

// CookieStoreOption modifies a CookieStore.
type CookieStoreOption func(*CookieStore)

// WithNowTime sets the now time function (primarily for testing).
func WithNowTime(nowFunc func() time.Time) CookieStoreOption {
	return func(cs *CookieStore) {
		cs.nowTime = nowFunc
	}
}

// WithJar substitutes the backing cookie jar, e.g. to share one with an
// http.Client.
func WithJar(jar http.CookieJar) CookieStoreOption {
	return func(cs *CookieStore) {
		cs.jar = jar
	}
}

// NewCookieStore creates a CookieStore scoped to the given origin
// (scheme + host of the API base URL).
func NewCookieStore(origin string, options ...CookieStoreOption) (*CookieStore, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("[NewCookieStore] parse origin: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("[NewCookieStore] origin %q must be an absolute URL", origin)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("[NewCookieStore] create jar: %w", err)
	}

	cs := &CookieStore{
		origin:  &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"},
		jar:     jar,
		nowTime: time.Now,
		logger:  log.Logger,
	}
	for _, opt := range options {
		opt(cs)
	}
	return cs, nil
}

// Context reads the session and locale cookies. A malformed session
// cookie degrades to an empty session so one bad cookie cannot break all
// requests.
func (cs *CookieStore) Context() Context {
	ctx := Context{Locale: i18n.FallbackLocale}
	for _, c := range cs.jar.Cookies(cs.origin) {
		switch c.Name {
		case CookieName:
			s, err := DecodeCookieValue(c.Value)
			if err != nil {
				cs.logger.Warn().Err(err).Msg("malformed session cookie, treating as anonymous")
				continue
			}
			ctx.AccessToken = s.AccessToken
			ctx.RefreshToken = s.RefreshToken
			ctx.TenantID = s.TenantID
		case i18n.CookieName:
			ctx.Locale = i18n.Normalize(c.Value)
		}
	}
	return ctx
}

// SetAuth persists a whole new session, replacing any previous one.
func (cs *CookieStore) SetAuth(s Session) error {
	value, err := s.EncodeCookieValue()
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}
	cs.jar.SetCookies(cs.origin, []*http.Cookie{cs.sessionCookie(value)})
	return nil
}

// SetAccessToken swaps the access token in place, keeping the refresh
// token and tenant untouched.
func (cs *CookieStore) SetAccessToken(token string) error {
	s := cs.Context().Session()
	s.AccessToken = token
	return cs.SetAuth(s)
}

// Clear removes the session cookie. The locale cookie is left alone.
func (cs *CookieStore) Clear() error {
	expired := cs.sessionCookie("")
	expired.MaxAge = -1
	expired.Expires = cs.nowTime().Add(-time.Hour)
	cs.jar.SetCookies(cs.origin, []*http.Cookie{expired})
	return nil
}

// SetLocale persists the locale cookie. Unknown locales are normalized
// to the fallback.
func (cs *CookieStore) SetLocale(locale string) error {
	cs.jar.SetCookies(cs.origin, []*http.Cookie{{
		Name:    i18n.CookieName,
		Value:   i18n.Normalize(locale),
		Path:    "/",
		Expires: cs.nowTime().Add(TTL),
	}})
	return nil
}

func (cs *CookieStore) sessionCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:  CookieName,
		Value: value,
		Path:  "/",
		// the jar refuses to replay Secure cookies over plain http, so
		// only mark them for https origins
		Secure:   cs.origin.Scheme == "https",
		SameSite: http.SameSiteStrictMode,
		Expires:  cs.nowTime().Add(TTL),
	}
}

var _ Store = (*CookieStore)(nil)

package session

// Context is the complete request-time view of the stored session and
// locale. It is always fully populated: unset fields are empty strings
// and an unset locale resolves to the fallback locale. Reading it twice
// without an intervening write yields identical values.
type Context struct {
	AccessToken  string
	RefreshToken string
	TenantID     string
	Locale       string
}

// Session returns the session half of the context.
func (c Context) Session() Session {
	return Session{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		TenantID:     c.TenantID,
	}
}

// Store resolves and mutates the ambient session regardless of where the
// code runs. The browser-equivalent CookieStore reads and writes a cookie
// jar; the server-rendering RequestStore reads the incoming request and
// defers writes to the client. Stores are injected into the API client
// rather than imported globally so tests can substitute fixed values.
type Store interface {
	// Context never fails: storage errors degrade to an empty session
	// with the fallback locale.
	Context() Context
	// SetAuth replaces the whole session (login, signup verification).
	SetAuth(s Session) error
	// SetAccessToken swaps the access token in place, preserving the
	// refresh token and tenant (token refresh signal).
	SetAccessToken(token string) error
	// Clear destroys the session (logout, 401 invalidation).
	Clear() error
}

// RawCookieProvider is implemented by server-rendering stores that can
// hand over the incoming request's Cookie header verbatim. Outbound
// requests made during server rendering do not inherit the browser's
// cookies, so the transport forwards this value when present.
type RawCookieProvider interface {
	RawCookies() string
}

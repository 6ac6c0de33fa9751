// Package session owns the client-side session state for the FuniqAI
// backend: the access/refresh token pair and the selected tenant, stored
// as a JSON value in a single cookie shared with the web frontend.
package session

import (
	"encoding/json"
	"net/url"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie the session is persisted under, shared with
// the web frontend.
const CookieName = "session"

// TTL is how long a persisted session cookie lives.
const TTL = 7 * 24 * time.Hour

// Session identifies the current authenticated actor.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	TenantID     string `json:"tenantId,omitempty"`
}

// IsZero reports whether no session data is present.
func (s Session) IsZero() bool {
	return s == Session{}
}

// ExpiresAt peeks at the access token's exp claim without verifying the
// signature — the client has no signing key and only needs the deadline.
// Returns the zero time when the token is absent, unparsable, or carries
// no exp claim.
func (s Session) ExpiresAt() time.Time {
	if s.AccessToken == "" {
		return time.Time{}
	}
	token, _, err := jwtlib.NewParser().ParseUnverified(s.AccessToken, jwtlib.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// ExpiresWithin reports whether the access token expires before now+leeway.
// Tokens without a readable exp claim are treated as not expiring, so a
// malformed token never forces a refresh on its own.
func (s Session) ExpiresWithin(now time.Time, leeway time.Duration) bool {
	exp := s.ExpiresAt()
	if exp.IsZero() {
		return false
	}
	return exp.Before(now.Add(leeway))
}

// EncodeCookieValue serialises the session the way the web frontend's
// cookie library does: JSON, URL-escaped so braces and quotes survive the
// cookie value grammar.
func (s Session) EncodeCookieValue() (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return url.QueryEscape(string(raw)), nil
}

// DecodeCookieValue parses a session cookie value. Malformed values yield
// an empty session and the parse error; callers decide whether to fail
// soft.
func DecodeCookieValue(value string) (Session, error) {
	raw, err := url.QueryUnescape(value)
	if err != nil {
		raw = value
	}
	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Session{}, err
	}
	return s, nil
}

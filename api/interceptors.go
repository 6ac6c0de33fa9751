package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/yellinzero/funiqai-go/internal/errors"
	"github.com/yellinzero/funiqai-go/routes"
	"github.com/yellinzero/funiqai-go/session"
)

// injectRequestContext is the outbound middleware stage: it resolves the
// session context at call time and stamps the auth, language, tenant and
// request-id headers. In server rendering contexts it additionally
// forwards the incoming Cookie header verbatim, since outbound requests
// made during rendering do not inherit the browser's cookies.
func (c *Client) injectRequestContext(req *http.Request) error {
	sctx := c.store.Context()

	req.Header.Set(HeaderLanguage, sctx.Locale)
	if sctx.TenantID != "" {
		req.Header.Set(HeaderTenantID, sctx.TenantID)
	}
	if sctx.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+sctx.AccessToken)
	}
	// Forward the refresh token only when the access token is about to
	// lapse; the backend's refresh middleware ignores it otherwise.
	if sctx.RefreshToken != "" && sctx.Session().ExpiresWithin(c.nowTime(), c.refreshLeeway) {
		req.Header.Set(HeaderRefreshToken, sctx.RefreshToken)
	}
	req.Header.Set(HeaderRequestID, uuid.NewString())

	if provider, ok := c.store.(session.RawCookieProvider); ok {
		if raw := provider.RawCookies(); raw != "" {
			req.Header.Set("Cookie", raw)
		}
	}
	return nil
}

// handleSessionSignals is the inbound middleware stage: it persists a
// refreshed access token announced by the backend and invalidates the
// session on 401, forcing a navigation to the sign-in page. Runs before
// the normalizer so a refresh is stored before any subsequent call reads
// the session.
func (c *Client) handleSessionSignals(resp *http.Response) error {
	if token := resp.Header.Get(HeaderNewAccessToken); token != "" {
		if err := c.store.SetAccessToken(token); err != nil {
			return errors.Wrapf(err, "persist refreshed access token")
		}
		c.logger.Debug().Msg("refreshed access token persisted")
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if err := c.store.Clear(); err != nil {
			return errors.Wrapf(err, "clear session after 401")
		}
		c.navigator.NavigateTo(routes.SignInPage)
	}
	return nil
}

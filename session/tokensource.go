package session

import (
	"golang.org/x/oauth2"
)

// TokenSource adapts a Store to the oauth2.TokenSource interface so the
// stored session can feed any oauth2-aware client. The returned source
// does not refresh tokens itself; refreshed tokens arrive through the
// transport's response handling and are picked up on the next read.
func TokenSource(store Store) oauth2.TokenSource {
	return storeTokenSource{store: store}
}

type storeTokenSource struct {
	store Store
}

func (ts storeTokenSource) Token() (*oauth2.Token, error) {
	s := ts.store.Context().Session()
	return &oauth2.Token{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       s.ExpiresAt(),
	}, nil
}

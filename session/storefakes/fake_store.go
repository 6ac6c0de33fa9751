package storefakes

import (
	"sync"

	"github.com/yellinzero/funiqai-go/i18n"
	"github.com/yellinzero/funiqai-go/session"
)

var (
	_ session.Store             = (*FakeStore)(nil)
	_ session.RawCookieProvider = (*FakeStore)(nil)
)

// FakeStore is an in-memory session.Store for tests. It records every
// write so tests can assert on refresh persistence and 401 invalidation.
type FakeStore struct {
	lock sync.RWMutex

	Session session.Session
	Locale  string
	Raw     string // returned by RawCookies; empty means "not a server context"

	SetAuthCalls        []session.Session
	SetAccessTokenCalls []string
	ClearCalls          int
}

// NewFakeStore returns a FakeStore holding the given session.
func NewFakeStore(s session.Session) *FakeStore {
	return &FakeStore{Session: s}
}

func (fs *FakeStore) Context() session.Context {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	locale := fs.Locale
	if locale == "" {
		locale = i18n.FallbackLocale
	}
	return session.Context{
		AccessToken:  fs.Session.AccessToken,
		RefreshToken: fs.Session.RefreshToken,
		TenantID:     fs.Session.TenantID,
		Locale:       locale,
	}
}

func (fs *FakeStore) SetAuth(s session.Session) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.Session = s
	fs.SetAuthCalls = append(fs.SetAuthCalls, s)
	return nil
}

func (fs *FakeStore) SetAccessToken(token string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.Session.AccessToken = token
	fs.SetAccessTokenCalls = append(fs.SetAccessTokenCalls, token)
	return nil
}

func (fs *FakeStore) Clear() error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.Session = session.Session{}
	fs.ClearCalls++
	return nil
}

func (fs *FakeStore) RawCookies() string {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	return fs.Raw
}

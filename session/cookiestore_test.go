package session_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yellinzero/funiqai-go/i18n"
	"github.com/yellinzero/funiqai-go/session"
)

const testOrigin = "http://app.example.com"

func newTestStore(t *testing.T) *session.CookieStore {
	t.Helper()
	store, err := session.NewCookieStore(testOrigin)
	require.NoError(t, err)
	return store
}

func TestNewCookieStoreRequiresAbsoluteOrigin(t *testing.T) {
	_, err := session.NewCookieStore("")
	require.Error(t, err)

	_, err = session.NewCookieStore("not a url")
	require.Error(t, err)

	_, err = session.NewCookieStore("/relative/path")
	require.Error(t, err)
}

func TestCookieStoreAuthRoundTrip(t *testing.T) {
	store := newTestStore(t)

	s := session.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		TenantID:     "tenant-1",
	}
	require.NoError(t, store.SetAuth(s))

	ctx := store.Context()
	require.Equal(t, "access-1", ctx.AccessToken)
	require.Equal(t, "refresh-1", ctx.RefreshToken)
	require.Equal(t, "tenant-1", ctx.TenantID)
	require.Equal(t, s, ctx.Session())
}

func TestCookieStoreContextIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetAuth(session.Session{AccessToken: "access-1"}))

	first := store.Context()
	second := store.Context()
	require.Equal(t, first, second)
}

func TestCookieStoreEmptyContext(t *testing.T) {
	ctx := newTestStore(t).Context()
	require.Empty(t, ctx.AccessToken)
	require.Empty(t, ctx.RefreshToken)
	require.Empty(t, ctx.TenantID)
	require.Equal(t, i18n.FallbackLocale, ctx.Locale)
}

func TestCookieStoreSetAccessTokenPreservesOtherFields(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetAuth(session.Session{
		AccessToken:  "old-token",
		RefreshToken: "refresh-1",
		TenantID:     "tenant-1",
	}))

	require.NoError(t, store.SetAccessToken("new-token"))

	ctx := store.Context()
	require.Equal(t, "new-token", ctx.AccessToken)
	require.Equal(t, "refresh-1", ctx.RefreshToken)
	require.Equal(t, "tenant-1", ctx.TenantID)
}

func TestCookieStoreClear(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetAuth(session.Session{AccessToken: "access-1"}))
	require.NoError(t, store.Clear())

	require.True(t, store.Context().Session().IsZero())
}

func TestCookieStoreLocale(t *testing.T) {
	store := newTestStore(t)
	require.Equal(t, i18n.FallbackLocale, store.Context().Locale)

	require.NoError(t, store.SetLocale("zh-CN"))
	require.Equal(t, "zh-CN", store.Context().Locale)
}

package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yellinzero/funiqai-go/api"
	"github.com/yellinzero/funiqai-go/auth"
	"github.com/yellinzero/funiqai-go/notify"
	"github.com/yellinzero/funiqai-go/routes"
	"github.com/yellinzero/funiqai-go/session"
	"github.com/yellinzero/funiqai-go/session/storefakes"
)

const (
	testEmail    = "user@example.com"
	testPassword = "correct-horse-battery"
)

type fixture struct {
	store   *storefakes.FakeStore
	service *auth.Service
	toasts  []string
	navs    []string
	bodies  []map[string]any
	paths   []string
}

func setupFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()

	f := &fixture{store: storefakes.NewFakeStore(session.Session{})}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.paths = append(f.paths, r.URL.Path)
		body := map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.bodies = append(f.bodies, body)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := api.New(server.URL, f.store,
		api.Public(),
		api.WithNotifier(notify.NotifierFunc(func(m string) { f.toasts = append(f.toasts, m) })),
		api.WithNavigator(notify.NavigatorFunc(func(p string) { f.navs = append(f.navs, p) })),
	)
	require.NoError(t, err)
	f.service = auth.NewService(client)
	return f
}

func respondJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestLoginSuccess(t *testing.T) {
	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK,
			`{"code":"0","msg":"success","data":{"access_token":"tok-123","token_type":"bearer"}}`)
	})

	res, err := f.service.Login(context.Background(), auth.LoginRequest{
		Email:    testEmail,
		Password: testPassword,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Data)
	require.Equal(t, "tok-123", res.Data.AccessToken)
	require.Equal(t, "bearer", res.Data.TokenType)

	require.Equal(t, []string{string(routes.Login)}, f.paths)
	require.Equal(t, testEmail, f.bodies[0]["email"])
	require.Empty(t, f.toasts)
	require.Empty(t, f.navs)
}

func TestLoginInactiveAccount(t *testing.T) {
	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, `{"code":"B0004","message":"Account is not active"}`)
	})

	_, err := f.service.Login(context.Background(), auth.LoginRequest{
		Email:    testEmail,
		Password: testPassword,
	})
	require.Error(t, err)

	httpErr, ok := api.AsHttpError(err)
	require.True(t, ok)
	require.True(t, httpErr.IsCode(api.CodeAccountNotActive))
	require.Equal(t, []string{"Account is not active"}, f.toasts)
}

func TestLoginValidationRejectsBeforeDispatch(t *testing.T) {
	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the backend")
	})

	_, err := f.service.Login(context.Background(), auth.LoginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)

	_, err = f.service.Login(context.Background(), auth.LoginRequest{Email: testEmail})
	require.Error(t, err)

	require.Empty(t, f.paths)
}

func TestSignupValidation(t *testing.T) {
	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, `{"code":"0","msg":"success","data":{"token":"verify-1"}}`)
	})

	// short password
	_, err := f.service.Signup(context.Background(), auth.SignupRequest{
		Name:     "User",
		Email:    testEmail,
		Password: "short",
	})
	require.Error(t, err)
	require.Empty(t, f.paths)

	res, err := f.service.Signup(context.Background(), auth.SignupRequest{
		Name:     "User",
		Email:    testEmail,
		Password: testPassword,
		Language: "zh-CN",
	})
	require.NoError(t, err)
	require.Equal(t, "verify-1", res.Data.Token)
	require.Equal(t, "zh-CN", f.bodies[0]["language"])
}

func TestSignupVerifyFlow(t *testing.T) {
	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK,
			`{"code":"0","msg":"success","data":{"access_token":"tok-456","token_type":"bearer"}}`)
	})

	res, err := f.service.SignupVerify(context.Background(), auth.SignupVerifyRequest{
		Token: "verify-1",
		Code:  "123456",
	})
	require.NoError(t, err)
	require.Equal(t, "tok-456", res.Data.AccessToken)
	require.Equal(t, []string{string(routes.SignupVerify)}, f.paths)
}

func TestActivateAccountFlow(t *testing.T) {
	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, `{"code":"0","msg":"success","data":{"token":"activate-1"}}`)
	})

	res, err := f.service.ActivateAccount(context.Background(), auth.ActivateAccountRequest{Email: testEmail})
	require.NoError(t, err)
	require.Equal(t, "activate-1", res.Data.Token)

	_, err = f.service.ActivateAccountVerify(context.Background(), auth.ActivateAccountVerifyRequest{
		Token: "activate-1",
		Code:  "123456",
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		string(routes.ActivateAccount),
		string(routes.ActivateAccountVerify),
	}, f.paths)
}

func TestPasswordRecoveryFlow(t *testing.T) {
	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, `{"code":"0","msg":"success","data":{"token":"reset-1"}}`)
	})

	res, err := f.service.ForgotPassword(context.Background(), auth.ForgotPasswordRequest{Email: testEmail})
	require.NoError(t, err)
	require.Equal(t, "reset-1", res.Data.Token)

	_, err = f.service.ResetPassword(context.Background(), auth.ResetPasswordRequest{
		Token:       "reset-1",
		Code:        "123456",
		NewPassword: "short",
	})
	require.Error(t, err) // password too short, never dispatched
	require.Len(t, f.paths, 1)

	_, err = f.service.ResetPassword(context.Background(), auth.ResetPasswordRequest{
		Token:       "reset-1",
		Code:        "123456",
		NewPassword: "a-longer-password",
	})
	require.NoError(t, err)
	require.Equal(t, string(routes.ResetPassword), f.paths[1])
}

func TestResendVerificationCodeValidatesCodeType(t *testing.T) {
	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, `{"code":"0","msg":"success","data":{"token":"resend-1"}}`)
	})

	_, err := f.service.ResendVerificationCode(context.Background(), auth.ResendVerificationCodeRequest{
		Email:    testEmail,
		CodeType: "unknown_type",
	})
	require.Error(t, err)
	require.Empty(t, f.paths)

	res, err := f.service.ResendVerificationCode(context.Background(), auth.ResendVerificationCodeRequest{
		Email:    testEmail,
		CodeType: auth.TokenSignupEmail,
	})
	require.NoError(t, err)
	require.Equal(t, "resend-1", res.Data.Token)
	require.Equal(t, string(auth.TokenSignupEmail), f.bodies[0]["code_type"])
}

func TestLogout(t *testing.T) {
	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, `{"code":"0","msg":"success"}`)
	})

	res, err := f.service.Logout(context.Background())
	require.NoError(t, err)
	require.Nil(t, res.Data)
	require.Equal(t, []string{string(routes.Logout)}, f.paths)
}

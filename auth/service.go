package auth

import (
	"context"

	"github.com/yellinzero/funiqai-go/api"
	"github.com/yellinzero/funiqai-go/routes"
)

// Service exposes one thin function per authentication operation. It is
// a pass-through over the typed facade; persisting the session after a
// successful login or verification is the caller's responsibility, as it
// is in the web frontend.
type Service struct {
	client *api.Client
}

// NewService wraps an API client. Auth endpoints are public, so the
// client is typically built with the api.Public option.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*api.Result[LoginResponse], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return api.Post[LoginResponse](ctx, s.client, routes.Login, api.WithBody(req))
}

func (s *Service) Signup(ctx context.Context, req SignupRequest) (*api.Result[SignupResponse], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return api.Post[SignupResponse](ctx, s.client, routes.Signup, api.WithBody(req))
}

func (s *Service) SignupVerify(ctx context.Context, req SignupVerifyRequest) (*api.Result[SignupVerifyResponse], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return api.Post[SignupVerifyResponse](ctx, s.client, routes.SignupVerify, api.WithBody(req))
}

func (s *Service) ActivateAccount(ctx context.Context, req ActivateAccountRequest) (*api.Result[ActivateAccountResponse], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return api.Post[ActivateAccountResponse](ctx, s.client, routes.ActivateAccount, api.WithBody(req))
}

func (s *Service) ActivateAccountVerify(ctx context.Context, req ActivateAccountVerifyRequest) (*api.Result[ActivateAccountVerifyResponse], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return api.Post[ActivateAccountVerifyResponse](ctx, s.client, routes.ActivateAccountVerify, api.WithBody(req))
}

func (s *Service) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (*api.Result[ForgotPasswordResponse], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return api.Post[ForgotPasswordResponse](ctx, s.client, routes.ForgotPassword, api.WithBody(req))
}

func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*api.Result[ResetPasswordResponse], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return api.Post[ResetPasswordResponse](ctx, s.client, routes.ResetPassword, api.WithBody(req))
}

func (s *Service) ResendVerificationCode(ctx context.Context, req ResendVerificationCodeRequest) (*api.Result[ResendVerificationCodeResponse], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return api.Post[ResendVerificationCodeResponse](ctx, s.client, routes.ResendVerificationCode, api.WithBody(req))
}

// Logout invalidates the session server-side. Clearing the local session
// store is left to the caller, which may also want to navigate away.
func (s *Service) Logout(ctx context.Context) (*api.Result[struct{}], error) {
	return api.Post[struct{}](ctx, s.client, routes.Logout)
}

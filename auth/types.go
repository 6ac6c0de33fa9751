// Package auth covers the authentication operations of the FuniqAI
// backend: login, signup with email verification, account activation,
// and password recovery. Request shapes are validated at the boundary
// before dispatch.
package auth

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// AccountTokenType distinguishes the verification flows a code can
// belong to.
type AccountTokenType string

const (
	TokenSignupEmail          AccountTokenType = "signup_email"
	TokenActivateAccountEmail AccountTokenType = "activate_account_email"
	TokenResetPasswordEmail   AccountTokenType = "reset_password_email"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Language string `json:"language,omitempty"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type SignupRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Language   string `json:"language,omitempty"`
	InviteCode string `json:"invite_code,omitempty"`
}

func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 0)),
	)
}

// SignupResponse carries the verification token the signup code must be
// submitted with.
type SignupResponse struct {
	Token string `json:"token"`
}

type SignupVerifyRequest struct {
	Token string `json:"token"`
	Code  string `json:"code"`
}

func (r SignupVerifyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required),
		validation.Field(&r.Code, validation.Required),
	)
}

type SignupVerifyResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ActivateAccountRequest struct {
	Email    string `json:"email"`
	Language string `json:"language,omitempty"`
}

func (r ActivateAccountRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

type ActivateAccountResponse struct {
	Token string `json:"token"`
}

type ActivateAccountVerifyRequest struct {
	Token string `json:"token"`
	Code  string `json:"code"`
}

func (r ActivateAccountVerifyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required),
		validation.Field(&r.Code, validation.Required),
	)
}

type ActivateAccountVerifyResponse struct {
	AccessToken string `json:"access_token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r ForgotPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

type ForgotPasswordResponse struct {
	Token string `json:"token"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

func (r ResetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required),
		validation.Field(&r.Code, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(8, 0)),
	)
}

type ResetPasswordResponse struct {
	AccessToken string `json:"access_token"`
}

type ResendVerificationCodeRequest struct {
	Email    string           `json:"email"`
	CodeType AccountTokenType `json:"code_type"`
}

func (r ResendVerificationCodeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.CodeType, validation.Required, validation.In(
			TokenSignupEmail, TokenActivateAccountEmail, TokenResetPasswordEmail,
		)),
	)
}

type ResendVerificationCodeResponse struct {
	Token string `json:"token"`
}

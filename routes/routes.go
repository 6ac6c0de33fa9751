// Package routes defines the endpoint paths of the FuniqAI backend.
// All paths are defined here to ensure consistency and prevent typos.
//
// Each constant is typed by the HTTP verb the backend accepts for it, so
// passing a path to the wrong api verb function fails at compile time.
// Path templates contain {param} placeholders that are substituted via
// request options, never by string concatenation.
package routes

// Verb-typed path templates.
type (
	GetPath     string
	PostPath    string
	PutPath     string
	DeletePath  string
	PatchPath   string
	HeadPath    string
	OptionsPath string
	TracePath   string
)

const (
	// Auth routes
	Login                  PostPath = "/auth/login"
	Signup                 PostPath = "/auth/signup"
	SignupVerify           PostPath = "/auth/signup_verify"
	ActivateAccount        PostPath = "/auth/activate_account"
	ActivateAccountVerify  PostPath = "/auth/activate_account_verify"
	ForgotPassword         PostPath = "/auth/forgot_password"
	ResetPassword          PostPath = "/auth/reset_password"
	ResendVerificationCode PostPath = "/auth/resend_verification_code"
	Logout                 PostPath = "/auth/logout"

	// Account routes
	AccountInfo    GetPath = "/account/me"
	AccountTenants GetPath = "/account/tenants"

	// Tenant routes
	CreateTenant PostPath   = "/account/tenants"
	UpdateTenant PutPath    = "/account/tenants/{tenant_id}"
	DeleteTenant DeletePath = "/account/tenants/{tenant_id}"

	// Tenant user management routes
	AddTenantUser    PostPath   = "/account/tenants/{tenant_id}/users"
	UpdateUserRole   PutPath    = "/account/tenants/{tenant_id}/users/{user_id}"
	RemoveTenantUser DeletePath = "/account/tenants/{tenant_id}/users/{user_id}"

	// Service routes
	Health GetPath = "/api/health"
)

// Frontend page routes the client navigates to as a side effect.
const (
	SignInPage   = "/sign-in"
	ActivatePage = "/activate"
)

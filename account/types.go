// Package account covers the authenticated account surface of the
// FuniqAI backend: the current account's profile, its tenants, and
// tenant user management.
package account

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Role is a user's role within a tenant.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleGuest  Role = "guest"
)

// Status is an account's lifecycle state.
type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDisabled Status = "disabled"
)

// Account is the current account's profile as reported by /account/me.
// Nullable fields are pointers so "not set" survives the round trip.
type Account struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Language    string  `json:"language"`
	Status      Status  `json:"status"`
	LastLoginAt *string `json:"last_login_at,omitempty"`
	LastLoginIP *string `json:"last_login_ip,omitempty"`
	Role        *Role   `json:"role,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
}

// Tenant is an organization the account belongs to.
type Tenant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TenantUser is an account's membership within a tenant.
type TenantUser struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	TenantID  string `json:"tenant_id"`
	Role      Role   `json:"role"`
}

// StatusResponse is returned by delete operations.
type StatusResponse struct {
	Status string `json:"status"`
}

type TenantCreateRequest struct {
	Name string `json:"name"`
}

func (r TenantCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}

type TenantUpdateRequest struct {
	Name string `json:"name"`
}

func (r TenantUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}

type UserAddRequest struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (r UserAddRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Role, validation.Required, validation.In(RoleOwner, RoleAdmin, RoleMember, RoleGuest)),
	)
}

type UserRoleUpdateRequest struct {
	Role Role `json:"role"`
}

func (r UserRoleUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role, validation.Required, validation.In(RoleOwner, RoleAdmin, RoleMember, RoleGuest)),
	)
}

package account

import (
	"context"

	"github.com/yellinzero/funiqai-go/api"
	"github.com/yellinzero/funiqai-go/routes"
)

// Service exposes one thin function per account operation, dispatching
// through the session-aware API client.
type Service struct {
	client *api.Client
}

// NewService wraps a session-aware API client.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Info fetches the current account's profile. The backend scopes the
// role field to the tenant announced in the tenant header.
func (s *Service) Info(ctx context.Context) (*api.Result[Account], error) {
	return api.Get[Account](ctx, s.client, routes.AccountInfo)
}

// Tenants lists the tenants the account belongs to.
func (s *Service) Tenants(ctx context.Context) (*api.Result[[]Tenant], error) {
	return api.Get[[]Tenant](ctx, s.client, routes.AccountTenants)
}

func (s *Service) CreateTenant(ctx context.Context, req TenantCreateRequest) (*api.Result[Tenant], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return api.Post[Tenant](ctx, s.client, routes.CreateTenant, api.WithBody(req))
}

func (s *Service) UpdateTenant(ctx context.Context, tenantID string, req TenantUpdateRequest) (*api.Result[Tenant], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return api.Put[Tenant](ctx, s.client, routes.UpdateTenant,
		api.WithPathParam("tenant_id", tenantID),
		api.WithBody(req),
	)
}

func (s *Service) DeleteTenant(ctx context.Context, tenantID string) (*api.Result[StatusResponse], error) {
	return api.Delete[StatusResponse](ctx, s.client, routes.DeleteTenant,
		api.WithPathParam("tenant_id", tenantID),
	)
}

func (s *Service) AddUser(ctx context.Context, tenantID string, req UserAddRequest) (*api.Result[TenantUser], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return api.Post[TenantUser](ctx, s.client, routes.AddTenantUser,
		api.WithPathParam("tenant_id", tenantID),
		api.WithBody(req),
	)
}

func (s *Service) UpdateUserRole(ctx context.Context, tenantID, userID string, req UserRoleUpdateRequest) (*api.Result[TenantUser], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return api.Put[TenantUser](ctx, s.client, routes.UpdateUserRole,
		api.WithPathParam("tenant_id", tenantID),
		api.WithPathParam("user_id", userID),
		api.WithBody(req),
	)
}

func (s *Service) RemoveUser(ctx context.Context, tenantID, userID string) (*api.Result[StatusResponse], error) {
	return api.Delete[StatusResponse](ctx, s.client, routes.RemoveTenantUser,
		api.WithPathParam("tenant_id", tenantID),
		api.WithPathParam("user_id", userID),
	)
}

// Health pings the backend's health endpoint.
func (s *Service) Health(ctx context.Context) (*api.Result[struct{}], error) {
	return api.Get[struct{}](ctx, s.client, routes.Health)
}

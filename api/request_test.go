package api

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yellinzero/funiqai-go/internal/errors"
)

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   map[string]string
		expected string
		wantErr  error
	}{
		{
			name:     "no placeholders",
			template: "/account/me",
			expected: "/account/me",
		},
		{
			name:     "single placeholder",
			template: "/account/tenants/{tenant_id}",
			params:   map[string]string{"tenant_id": "t1"},
			expected: "/account/tenants/t1",
		},
		{
			name:     "multiple placeholders",
			template: "/account/tenants/{tenant_id}/users/{user_id}",
			params:   map[string]string{"tenant_id": "t1", "user_id": "u1"},
			expected: "/account/tenants/t1/users/u1",
		},
		{
			name:     "values are path escaped",
			template: "/account/tenants/{tenant_id}",
			params:   map[string]string{"tenant_id": "a/b c"},
			expected: "/account/tenants/a%2Fb%20c",
		},
		{
			name:     "missing value",
			template: "/account/tenants/{tenant_id}",
			wantErr:  errors.ErrMissingPathParam,
		},
		{
			name:     "unused value",
			template: "/account/me",
			params:   map[string]string{"tenant_id": "t1"},
			wantErr:  errors.ErrUnknownPathParam,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path, err := expandPath(tc.template, tc.params)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, path)
		})
	}
}

func TestRequestOptions(t *testing.T) {
	rc := newRequestConfig([]RequestOption{
		WithBody(map[string]string{"name": "x"}),
		WithPathParam("tenant_id", "t1"),
		WithQuery("page", "2"),
		WithQuery("page", "3"),
		WithHeader("X-Debug", "1"),
	})

	require.NotNil(t, rc.body)
	require.Equal(t, "t1", rc.pathParams["tenant_id"])
	require.Equal(t, []string{"2", "3"}, rc.query["page"])
	require.Equal(t, "1", rc.headers.Get("X-Debug"))
}

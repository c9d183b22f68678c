package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		want    Role
		wantErr bool
	}{
		{name: "ADMIN", label: "ADMIN", want: RoleAdmin},
		{name: "Administrador synonym", label: "Administrador", want: RoleAdmin},
		{name: "Nexus Growth viewer", label: "Nexus Growth", want: RoleViewer},
		{name: "CLIENTE", label: "CLIENTE", want: RoleTenant},
		{name: "Cliente alternate spelling", label: "Cliente", want: RoleTenant},
		{name: "unknown label", label: "root", wantErr: true},
		{name: "empty label", label: "", wantErr: true},
		{name: "case sensitive", label: "admin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.label)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownRole)
				assert.Equal(t, RoleUnknown, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleCapabilities(t *testing.T) {
	tests := []struct {
		role          Role
		viewAdmin     bool
		mutateAdmin   bool
		editMap       bool
		writeReports  bool
		requireTenant bool
	}{
		{role: RoleAdmin, viewAdmin: true, mutateAdmin: true, editMap: true, writeReports: true},
		{role: RoleViewer, viewAdmin: true, mutateAdmin: false, editMap: true, writeReports: true},
		{role: RoleTenant, requireTenant: true},
		{role: RoleUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.role.Label(), func(t *testing.T) {
			assert.Equal(t, tt.viewAdmin, tt.role.CanViewAdminArea())
			assert.Equal(t, tt.mutateAdmin, tt.role.CanMutateAdminResource())
			assert.Equal(t, tt.editMap, tt.role.CanEditOperationMap())
			assert.Equal(t, tt.writeReports, tt.role.CanWriteWeeklyReports())
			assert.Equal(t, tt.requireTenant, tt.role.RequiresTenant())
		})
	}
}

func TestCanViewTenant(t *testing.T) {
	acme := &TenantSnapshot{ID: "client-1", Slug: "acme"}

	tests := []struct {
		name     string
		p        *Principal
		clientID string
		want     bool
	}{
		{name: "nil principal denied", p: nil, clientID: "client-1", want: false},
		{name: "admin sees any tenant", p: &Principal{Role: RoleAdmin}, clientID: "client-1", want: true},
		{name: "viewer sees any tenant", p: &Principal{Role: RoleViewer}, clientID: "client-2", want: true},
		{name: "tenant sees own client", p: &Principal{Role: RoleTenant, Tenant: acme}, clientID: "client-1", want: true},
		{name: "tenant denied for foreign client", p: &Principal{Role: RoleTenant, Tenant: acme}, clientID: "client-2", want: false},
		{name: "tenant without binding denied", p: &Principal{Role: RoleTenant}, clientID: "client-1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.CanViewTenant(tt.clientID))
		})
	}
}

func TestOwnSlug(t *testing.T) {
	assert.Equal(t, "", (*Principal)(nil).OwnSlug())
	assert.Equal(t, "", (&Principal{Role: RoleAdmin}).OwnSlug())
	assert.Equal(t, "acme", (&Principal{Role: RoleTenant, Tenant: &TenantSnapshot{Slug: "acme"}}).OwnSlug())
}

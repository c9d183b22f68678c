package middlewarectx

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/nexusgrowth/client-portal/internal/authz"
	"github.com/nexusgrowth/client-portal/internal/models"
	"github.com/nexusgrowth/client-portal/internal/storage"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) Resolve(ctx context.Context, token string) (string, bool, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Bool(1), args.Error(2)
}

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolvePrincipal(ctx context.Context, userID string) (*authz.Principal, error) {
	args := m.Called(ctx, userID)
	if res := args.Get(0); res != nil {
		return res.(*authz.Principal), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockClients struct {
	mock.Mock
}

func (m *MockClients) GetBySlug(ctx context.Context, slug string) (*models.Client, error) {
	args := m.Called(ctx, slug)
	if res := args.Get(0); res != nil {
		return res.(*models.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

func okHandler(t *testing.T, reached *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionMiddleware_NoCookie(t *testing.T) {
	var reached bool
	h := SessionMiddleware(new(MockSessions), new(MockResolver), "portal_session", discardLogger)(okHandler(t, &reached))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/clients", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, reached)
}

func TestSessionMiddleware_UnknownToken(t *testing.T) {
	sessions := new(MockSessions)
	sessions.On("Resolve", mock.Anything, "deadbeef").Return("", false, nil)

	var reached bool
	h := SessionMiddleware(sessions, new(MockResolver), "portal_session", discardLogger)(okHandler(t, &reached))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/clients", nil)
	req.AddCookie(&http.Cookie{Name: "portal_session", Value: "deadbeef"})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, reached)
}

func TestSessionMiddleware_InjectsPrincipal(t *testing.T) {
	sessions := new(MockSessions)
	sessions.On("Resolve", mock.Anything, "token-1").Return("user-1", true, nil)
	resolver := new(MockResolver)
	resolver.On("ResolvePrincipal", mock.Anything, "user-1").Return(&authz.Principal{
		UserID: "user-1", Role: authz.RoleAdmin,
	}, nil)

	var got *authz.Principal
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = Principal(r.Context())
	})
	h := SessionMiddleware(sessions, resolver, "portal_session", discardLogger)(inner)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/clients", nil)
	req.AddCookie(&http.Cookie{Name: "portal_session", Value: "token-1"})
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, authz.RoleAdmin, got.Role)
}

func withPrincipal(req *http.Request, p *authz.Principal) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), PrincipalKey, p))
}

func TestRequireAdminView_TenantUserGets401(t *testing.T) {
	var reached bool
	h := RequireAdminView(discardLogger)(okHandler(t, &reached))

	req := withPrincipal(httptest.NewRequest(http.MethodGet, "/api/v1/admin/clients", nil),
		&authz.Principal{UserID: "u", Role: authz.RoleTenant})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, reached)
}

func TestRequireAdminView_ViewerAllowed(t *testing.T) {
	var reached bool
	h := RequireAdminView(discardLogger)(okHandler(t, &reached))

	req := withPrincipal(httptest.NewRequest(http.MethodGet, "/api/v1/admin/clients", nil),
		&authz.Principal{UserID: "u", Role: authz.RoleViewer})
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, reached)
}

func TestRequireAdminMutate_ViewerDenied(t *testing.T) {
	var reached bool
	h := RequireAdminMutate(discardLogger)(okHandler(t, &reached))

	req := withPrincipal(httptest.NewRequest(http.MethodPost, "/api/v1/admin/clients", nil),
		&authz.Principal{UserID: "u", Role: authz.RoleViewer})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, reached)
}

func TestRequireOperationMapEdit_ViewerAllowed(t *testing.T) {
	var reached bool
	h := RequireOperationMapEdit(discardLogger)(okHandler(t, &reached))

	req := withPrincipal(httptest.NewRequest(http.MethodPost, "/api/v1/admin/operation-map", nil),
		&authz.Principal{UserID: "u", Role: authz.RoleViewer})
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, reached)
}

func tenantRequest(t *testing.T, slug string, p *authz.Principal) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboards/"+slug+"/info", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("slug", slug)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	return withPrincipal(req, p)
}

func TestTenantMiddleware_UnknownSlug404(t *testing.T) {
	clients := new(MockClients)
	clients.On("GetBySlug", mock.Anything, "ghost").Return(nil, storage.ErrNotFound)

	var reached bool
	h := TenantMiddleware(clients, discardLogger)(okHandler(t, &reached))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, tenantRequest(t, "ghost", &authz.Principal{UserID: "u", Role: authz.RoleAdmin}))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.False(t, reached)
}

func TestTenantMiddleware_CrossTenant403NamesOwnSlug(t *testing.T) {
	clients := new(MockClients)
	clients.On("GetBySlug", mock.Anything, "other-corp").Return(&models.Client{
		ID: "client-2", Slug: "other-corp",
	}, nil)

	var reached bool
	h := TenantMiddleware(clients, discardLogger)(okHandler(t, &reached))

	principal := &authz.Principal{
		UserID: "u",
		Role:   authz.RoleTenant,
		Tenant: &authz.TenantSnapshot{ID: "client-1", Slug: "acme"},
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, tenantRequest(t, "other-corp", principal))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.False(t, reached)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "/dashboards/acme")
}

func TestTenantMiddleware_OwnTenantAllowed(t *testing.T) {
	clients := new(MockClients)
	clients.On("GetBySlug", mock.Anything, "acme").Return(&models.Client{
		ID: "client-1", Slug: "acme", Plan: models.PlanPro,
	}, nil)

	var tenant *models.Client
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenant, _ = Tenant(r.Context())
	})
	h := TenantMiddleware(clients, discardLogger)(inner)

	principal := &authz.Principal{
		UserID: "u",
		Role:   authz.RoleTenant,
		Tenant: &authz.TenantSnapshot{ID: "client-1", Slug: "acme"},
	}
	h.ServeHTTP(httptest.NewRecorder(), tenantRequest(t, "acme", principal))

	require.NotNil(t, tenant)
	assert.Equal(t, "client-1", tenant.ID)
}

func TestTenantMiddleware_AdminSeesAnyTenant(t *testing.T) {
	clients := new(MockClients)
	clients.On("GetBySlug", mock.Anything, "acme").Return(&models.Client{ID: "client-1", Slug: "acme"}, nil)

	var reached bool
	h := TenantMiddleware(clients, discardLogger)(okHandler(t, &reached))

	h.ServeHTTP(httptest.NewRecorder(), tenantRequest(t, "acme", &authz.Principal{UserID: "u", Role: authz.RoleAdmin}))

	assert.True(t, reached)
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(0), 1)
	limiter.Allow() // исчерпать единственный токен

	var reached bool
	h := RateLimitMiddleware(limiter, discardLogger)(okHandler(t, &reached))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/clients", nil))

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.False(t, reached)
}

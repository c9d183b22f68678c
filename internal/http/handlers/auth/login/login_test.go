package login

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nexusgrowth/client-portal/internal/models"
	"github.com/nexusgrowth/client-portal/internal/services/auth"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) Create(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

type MockClients struct {
	mock.Mock
}

func (m *MockClients) Get(ctx context.Context, id string) (*models.Client, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func cookieOpts() CookieOptions {
	return CookieOptions{Name: "portal_session", TTL: 168 * time.Hour}
}

func TestLogin_Success(t *testing.T) {
	service := new(MockService)
	sessions := new(MockSessions)
	service.On("Authenticate", mock.Anything, "admin@example.com", "secret123").Return(&models.User{
		ID: "user-1", Name: "Admin", Email: "admin@example.com", Role: "ADMIN",
	}, nil)
	sessions.On("Create", mock.Anything, "user-1").Return("token-1", nil)

	handler := New(discardLogger, service, sessions, new(MockClients), cookieOpts())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login",
		strings.NewReader(`{"email":"admin@example.com","password":"secret123"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "portal_session", cookies[0].Name)
	assert.Equal(t, "token-1", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Contains(t, rr.Body.String(), `"role":"ADMIN"`)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestLogin_TenantGetsOwnSlug(t *testing.T) {
	clientID := "client-1"
	service := new(MockService)
	sessions := new(MockSessions)
	clients := new(MockClients)
	service.On("Authenticate", mock.Anything, "contato@acme.com", "secret123").Return(&models.User{
		ID: "user-2", Name: "Acme", Email: "contato@acme.com", Role: "CLIENTE", ClientID: &clientID,
	}, nil)
	sessions.On("Create", mock.Anything, "user-2").Return("token-2", nil)
	clients.On("Get", mock.Anything, clientID).Return(&models.Client{ID: clientID, Slug: "acme"}, nil)

	handler := New(discardLogger, service, sessions, clients, cookieOpts())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login",
		strings.NewReader(`{"email":"contato@acme.com","password":"secret123"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"client_slug":"acme"`)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	service := new(MockService)
	service.On("Authenticate", mock.Anything, "admin@example.com", "wrong").
		Return(nil, auth.ErrInvalidCredentials)

	handler := New(discardLogger, service, new(MockSessions), new(MockClients), cookieOpts())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login",
		strings.NewReader(`{"email":"admin@example.com","password":"wrong"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, rr.Result().Cookies())
}

func TestLogin_InvalidJSON(t *testing.T) {
	handler := New(discardLogger, new(MockService), new(MockSessions), new(MockClients), cookieOpts())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(`{bad`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_ValidationError(t *testing.T) {
	handler := New(discardLogger, new(MockService), new(MockSessions), new(MockClients), cookieOpts())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login",
		strings.NewReader(`{"email":"not-an-email","password":""}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

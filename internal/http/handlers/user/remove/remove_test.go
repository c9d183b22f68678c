package remove

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nexusgrowth/client-portal/internal/authz"
	"github.com/nexusgrowth/client-portal/internal/http/middlewarectx"
	userservice "github.com/nexusgrowth/client-portal/internal/services/user"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Delete(ctx context.Context, callerID, id string) (int, error) {
	args := m.Called(ctx, callerID, id)
	return args.Int(0), args.Error(1)
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func request(t *testing.T, userID string, caller *authz.Principal) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/users/"+userID, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", userID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middlewarectx.PrincipalKey, caller)
	return req.WithContext(ctx)
}

func TestRemove_SelfDeleteDenied(t *testing.T) {
	service := new(MockService)
	service.On("Delete", mock.Anything, "user-1", "user-1").Return(0, userservice.ErrSelfDelete)

	handler := New(discardLogger, service)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, request(t, "user-1", &authz.Principal{UserID: "user-1", Role: authz.RoleAdmin}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "cannot delete own account")
}

func TestRemove_OtherUser(t *testing.T) {
	service := new(MockService)
	service.On("Delete", mock.Anything, "user-1", "user-2").Return(1, nil)

	handler := New(discardLogger, service)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, request(t, "user-2", &authz.Principal{UserID: "user-1", Role: authz.RoleAdmin}))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRemove_NotFound(t *testing.T) {
	service := new(MockService)
	service.On("Delete", mock.Anything, "user-1", "ghost").Return(0, nil)

	handler := New(discardLogger, service)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, request(t, "ghost", &authz.Principal{UserID: "user-1", Role: authz.RoleAdmin}))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

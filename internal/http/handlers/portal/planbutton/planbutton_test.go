package planbutton

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nexusgrowth/client-portal/internal/http/middlewarectx"
	"github.com/nexusgrowth/client-portal/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ButtonForPlan(ctx context.Context, plan string) (*models.PlanButton, error) {
	args := m.Called(ctx, plan)
	if res := args.Get(0); res != nil {
		return res.(*models.PlanButton), args.Error(1)
	}
	return nil, args.Error(1)
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func tenantRequest(client *models.Client) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboards/acme/plan-button", nil)
	ctx := context.WithValue(req.Context(), middlewarectx.TenantKey, client)
	return req.WithContext(ctx)
}

func TestPlanButton_UsesClientPlan(t *testing.T) {
	service := new(MockService)
	service.On("ButtonForPlan", mock.Anything, models.PlanPro).
		Return(&models.PlanButton{LinkURL: "https://example.com/upgrade", Label: "Falar com um atendente"}, nil)

	handler := New(discardLogger, service)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, tenantRequest(&models.Client{ID: "c1", Slug: "acme", Plan: models.PlanPro}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "https://example.com/upgrade")
	service.AssertExpectations(t)
}

func TestPlanButton_MissingTenant(t *testing.T) {
	handler := New(discardLogger, new(MockService))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboards/acme/plan-button", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

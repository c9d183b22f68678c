package steplinks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nexusgrowth/client-portal/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) StepLinks(ctx context.Context) ([]models.StepLink, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.StepLink), args.Error(1)
	}
	return nil, args.Error(1)
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestStepLinks_Success(t *testing.T) {
	service := new(MockService)
	service.On("StepLinks", mock.Anything).Return([]models.StepLink{
		{StepID: "step_2", LinkType: "video", LinkURL: "https://example.com/v1", LinkLabel: "Como configurar"},
	}, nil)

	handler := New(discardLogger, service)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboards/acme/step-links", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "step_2")
	assert.Contains(t, rr.Body.String(), "Como configurar")
}

func TestStepLinks_RepoError(t *testing.T) {
	service := new(MockService)
	service.On("StepLinks", mock.Anything).Return(nil, errors.New("db down"))

	handler := New(discardLogger, service)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboards/acme/step-links", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

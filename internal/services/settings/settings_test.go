package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nexusgrowth/client-portal/internal/models"
	"github.com/nexusgrowth/client-portal/internal/storage"
)

type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) CreatePlanUpgradeLink(ctx context.Context, link models.PlanUpgradeLink) (string, error) {
	args := m.Called(ctx, link)
	return args.String(0), args.Error(1)
}

func (m *MockRepo) ListPlanUpgradeLinks(ctx context.Context) ([]models.PlanUpgradeLink, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.PlanUpgradeLink), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) GetPlanUpgradeLinkByKey(ctx context.Context, linkKey string) (*models.PlanUpgradeLink, error) {
	args := m.Called(ctx, linkKey)
	if res := args.Get(0); res != nil {
		return res.(*models.PlanUpgradeLink), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) UpdatePlanUpgradeLink(ctx context.Context, id string, link models.PlanUpgradeLink) (int, error) {
	args := m.Called(ctx, id, link)
	return args.Int(0), args.Error(1)
}

func (m *MockRepo) DeletePlanUpgradeLink(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func TestButtonForPlan_UsesConfiguredLink(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetPlanUpgradeLinkByKey", mock.Anything, "atendente_start").Return(&models.PlanUpgradeLink{
		LinkKey: "atendente_start",
		LinkURL: "https://checkout.example.com/pro",
		Label:   "Fazer upgrade para PRO",
	}, nil)

	svc := New(repo)
	btn, err := svc.ButtonForPlan(context.Background(), models.PlanStart)

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example.com/pro", btn.LinkURL)
	assert.Equal(t, "Fazer upgrade para PRO", btn.Label)
}

func TestButtonForPlan_FallsBackWhenMissing(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetPlanUpgradeLinkByKey", mock.Anything, "atendente_scale").Return(nil, storage.ErrNotFound)

	svc := New(repo)
	btn, err := svc.ButtonForPlan(context.Background(), models.PlanScale)

	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/5511999999999", btn.LinkURL)
	assert.Equal(t, "Falar com um atendente", btn.Label)
}

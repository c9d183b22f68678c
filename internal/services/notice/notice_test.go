package notice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nexusgrowth/client-portal/internal/models"
)

type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) CreateNotice(ctx context.Context, notice models.Notice) (string, error) {
	args := m.Called(ctx, notice)
	return args.String(0), args.Error(1)
}

func (m *MockRepo) ListNotices(ctx context.Context) ([]models.Notice, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.Notice), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) ListNoticesForClient(ctx context.Context, clientID string) ([]models.Notice, error) {
	args := m.Called(ctx, clientID)
	if res := args.Get(0); res != nil {
		return res.([]models.Notice), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) UpdateNotice(ctx context.Context, id string, notice models.Notice) (int, error) {
	args := m.Called(ctx, id, notice)
	return args.Int(0), args.Error(1)
}

func (m *MockRepo) DeleteNotice(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func TestCreate_RecurringComputesNextSendAt(t *testing.T) {
	fixed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	repo := new(MockRepo)
	repo.On("CreateNotice", mock.Anything, mock.MatchedBy(func(n models.Notice) bool {
		return n.IsRecurring && n.NextSendAt != nil &&
			n.NextSendAt.Equal(fixed.AddDate(0, 0, 7)) &&
			n.RecurrenceDays != nil && *n.RecurrenceDays == 7
	})).Return("notice-1", nil)

	svc := New(repo)
	svc.now = func() time.Time { return fixed }

	_, err := svc.Create(context.Background(), models.DummyNotice{
		Title:          "Relatório semanal disponível",
		Message:        "Confira o novo relatório.",
		IsRecurring:    true,
		RecurrenceDays: 7,
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreate_OneShotLeavesNextSendAtEmpty(t *testing.T) {
	repo := new(MockRepo)
	repo.On("CreateNotice", mock.Anything, mock.MatchedBy(func(n models.Notice) bool {
		return !n.IsRecurring && n.NextSendAt == nil && n.RecurrenceDays == nil
	})).Return("notice-2", nil)

	svc := New(repo)
	_, err := svc.Create(context.Background(), models.DummyNotice{
		Title:   "Aviso",
		Message: "Mensagem",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreate_BroadcastHasNilClient(t *testing.T) {
	repo := new(MockRepo)
	repo.On("CreateNotice", mock.Anything, mock.MatchedBy(func(n models.Notice) bool {
		return n.ClientID == nil && n.Priority == "normal" && n.IsActive
	})).Return("notice-3", nil)

	svc := New(repo)
	_, err := svc.Create(context.Background(), models.DummyNotice{
		Title:   "Para todos",
		Message: "Mensagem",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdate_CanDeactivate(t *testing.T) {
	repo := new(MockRepo)
	repo.On("UpdateNotice", mock.Anything, "notice-1", mock.MatchedBy(func(n models.Notice) bool {
		return !n.IsActive
	})).Return(1, nil)

	inactive := false
	svc := New(repo)
	n, err := svc.Update(context.Background(), "notice-1", models.DummyNotice{
		Title:    "Aviso antigo",
		Message:  "Mensagem",
		IsActive: &inactive,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	repo.AssertExpectations(t)
}

func TestUpdate_RecomputesNextSendAt(t *testing.T) {
	fixed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	repo := new(MockRepo)
	repo.On("UpdateNotice", mock.Anything, "notice-1", mock.MatchedBy(func(n models.Notice) bool {
		return n.NextSendAt != nil && n.NextSendAt.Equal(fixed.AddDate(0, 0, 14))
	})).Return(1, nil)

	svc := New(repo)
	svc.now = func() time.Time { return fixed }

	n, err := svc.Update(context.Background(), "notice-1", models.DummyNotice{
		Title:          "Aviso",
		Message:        "Mensagem",
		IsRecurring:    true,
		RecurrenceDays: 14,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	repo.AssertExpectations(t)
}

package report

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

func (m *MockRepo) CreateWeeklyReport(ctx context.Context, report models.WeeklyReport) (string, error) {
	args := m.Called(ctx, report)
	return args.String(0), args.Error(1)
}

func (m *MockRepo) ListWeeklyReports(ctx context.Context) ([]models.WeeklyReportWithClient, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.WeeklyReportWithClient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) ListWeeklyReportsByClient(ctx context.Context, clientID string) ([]models.WeeklyReport, error) {
	args := m.Called(ctx, clientID)
	if res := args.Get(0); res != nil {
		return res.([]models.WeeklyReport), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) UpdateWeeklyReport(ctx context.Context, id string, report models.WeeklyReport) (int, error) {
	args := m.Called(ctx, id, report)
	return args.Int(0), args.Error(1)
}

func (m *MockRepo) DeleteWeeklyReport(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func TestCreate_ParsesReportDate(t *testing.T) {
	tests := []struct {
		name       string
		reportDate string
		wantDate   time.Time
		wantErr    bool
	}{
		{
			name:       "valid date",
			reportDate: "2025-03-10",
			wantDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "wrong layout",
			reportDate: "10/03/2025",
			wantErr:    true,
		},
		{
			name:       "not a date",
			reportDate: "semana passada",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepo)
			if !tt.wantErr {
				repo.On("CreateWeeklyReport", mock.Anything, mock.MatchedBy(func(r models.WeeklyReport) bool {
					return r.ReportDate.Equal(tt.wantDate)
				})).Return("report-1", nil)
			}

			svc := New(repo)
			_, err := svc.Create(context.Background(), models.DummyWeeklyReport{
				ClientID:   "3e6a1d3c-9a41-4a5e-8b87-0a9c1a3f7d10",
				ReportDate: tt.reportDate,
				Status:     "green",
				Summary:    "Semana estável",
			})

			if tt.wantErr {
				require.Error(t, err)
				repo.AssertNotCalled(t, "CreateWeeklyReport", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestCreate_OptionalFieldsNilWhenEmpty(t *testing.T) {
	repo := new(MockRepo)
	repo.On("CreateWeeklyReport", mock.Anything, mock.MatchedBy(func(r models.WeeklyReport) bool {
		return r.ActionsTaken == nil && r.DataAnalysis == nil &&
			r.DecisionsMade == nil && r.NextWeekGuidance != nil &&
			*r.NextWeekGuidance == "Escalar campanha"
	})).Return("report-2", nil)

	svc := New(repo)
	_, err := svc.Create(context.Background(), models.DummyWeeklyReport{
		ClientID:         "3e6a1d3c-9a41-4a5e-8b87-0a9c1a3f7d10",
		ReportDate:       "2025-03-17",
		Status:           "yellow",
		Summary:          "Semana com ajustes",
		NextWeekGuidance: "Escalar campanha",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdate_InvalidDateSkipsRepo(t *testing.T) {
	repo := new(MockRepo)
	svc := New(repo)

	n, err := svc.Update(context.Background(), "report-1", models.DummyWeeklyReport{
		ClientID:   "3e6a1d3c-9a41-4a5e-8b87-0a9c1a3f7d10",
		ReportDate: "2025-13-40",
		Status:     "green",
		Summary:    "Semana estável",
	})

	require.Error(t, err)
	assert.Zero(t, n)
	repo.AssertNotCalled(t, "UpdateWeeklyReport", mock.Anything, mock.Anything, mock.Anything)
}

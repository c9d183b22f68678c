// Package report содержит бизнес-логику еженедельных операционных отчётов.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/nexusgrowth/client-portal/internal/models"
)

// Дата отчёта приходит строкой в этом формате.
const dateLayout = "2006-01-02"

// Repository описывает контракт хранилища отчётов.
type Repository interface {
	CreateWeeklyReport(ctx context.Context, report models.WeeklyReport) (string, error)
	ListWeeklyReports(ctx context.Context) ([]models.WeeklyReportWithClient, error)
	ListWeeklyReportsByClient(ctx context.Context, clientID string) ([]models.WeeklyReport, error)
	UpdateWeeklyReport(ctx context.Context, id string, report models.WeeklyReport) (int, error)
	DeleteWeeklyReport(ctx context.Context, id string) (int, error)
}

// Service отвечает за операции над отчётами.
type Service struct {
	repo Repository
}

// New создает новый Service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create сохраняет новый отчёт.
func (s *Service) Create(ctx context.Context, req models.DummyWeeklyReport) (string, error) {
	const op = "report.Create"
	report, err := build(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	id, err := s.repo.CreateWeeklyReport(ctx, *report)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// List возвращает все отчёты с данными клиентов для админки.
func (s *Service) List(ctx context.Context) ([]models.WeeklyReportWithClient, error) {
	return s.repo.ListWeeklyReports(ctx)
}

// ListForClient возвращает отчёты одного клиента для его портала.
func (s *Service) ListForClient(ctx context.Context, clientID string) ([]models.WeeklyReport, error) {
	return s.repo.ListWeeklyReportsByClient(ctx, clientID)
}

// Update перезаписывает отчёт.
func (s *Service) Update(ctx context.Context, id string, req models.DummyWeeklyReport) (int, error) {
	const op = "report.Update"
	report, err := build(req)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	n, err := s.repo.UpdateWeeklyReport(ctx, id, *report)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// Delete удаляет отчёт.
func (s *Service) Delete(ctx context.Context, id string) (int, error) {
	return s.repo.DeleteWeeklyReport(ctx, id)
}

func build(req models.DummyWeeklyReport) (*models.WeeklyReport, error) {
	reportDate, err := time.Parse(dateLayout, req.ReportDate)
	if err != nil {
		return nil, err
	}
	return &models.WeeklyReport{
		ClientID:         req.ClientID,
		ReportDate:       reportDate,
		Status:           req.Status,
		Summary:          req.Summary,
		ActionsTaken:     nilIfEmpty(req.ActionsTaken),
		DataAnalysis:     nilIfEmpty(req.DataAnalysis),
		DecisionsMade:    nilIfEmpty(req.DecisionsMade),
		NextWeekGuidance: nilIfEmpty(req.NextWeekGuidance),
	}, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

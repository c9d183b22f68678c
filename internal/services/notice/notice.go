// Package notice содержит бизнес-логику уведомлений: адресные и
// широковещательные записи с метаданными повторения. NextSendAt вычисляется
// в момент записи; никакого процесса повторной отправки в системе нет.
package notice

import (
	"context"
	"fmt"
	"time"

	"github.com/nexusgrowth/client-portal/internal/models"
)

// Repository описывает контракт хранилища уведомлений.
type Repository interface {
	CreateNotice(ctx context.Context, notice models.Notice) (string, error)
	ListNotices(ctx context.Context) ([]models.Notice, error)
	ListNoticesForClient(ctx context.Context, clientID string) ([]models.Notice, error)
	UpdateNotice(ctx context.Context, id string, notice models.Notice) (int, error)
	DeleteNotice(ctx context.Context, id string) (int, error)
}

// Service отвечает за операции над уведомлениями.
type Service struct {
	repo Repository
	now  func() time.Time
}

// New создает новый Service.
func New(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create сохраняет уведомление. Пустой client_id означает широковещательное.
func (s *Service) Create(ctx context.Context, req models.DummyNotice) (string, error) {
	const op = "notice.Create"
	id, err := s.repo.CreateNotice(ctx, s.build(req))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// List возвращает все уведомления для админки.
func (s *Service) List(ctx context.Context) ([]models.Notice, error) {
	return s.repo.ListNotices(ctx)
}

// ListForClient возвращает активные уведомления клиента вместе
// с широковещательными.
func (s *Service) ListForClient(ctx context.Context, clientID string) ([]models.Notice, error) {
	return s.repo.ListNoticesForClient(ctx, clientID)
}

// Update перезаписывает уведомление; NextSendAt пересчитывается заново.
func (s *Service) Update(ctx context.Context, id string, req models.DummyNotice) (int, error) {
	const op = "notice.Update"
	n, err := s.repo.UpdateNotice(ctx, id, s.build(req))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// Delete удаляет уведомление.
func (s *Service) Delete(ctx context.Context, id string) (int, error) {
	return s.repo.DeleteNotice(ctx, id)
}

func (s *Service) build(req models.DummyNotice) models.Notice {
	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	notice := models.Notice{
		Title:       req.Title,
		Message:     req.Message,
		Priority:    priority,
		IsRecurring: req.IsRecurring,
		IsActive:    active,
	}
	if req.ClientID != "" {
		notice.ClientID = &req.ClientID
	}
	if req.IsRecurring && req.RecurrenceDays > 0 {
		days := req.RecurrenceDays
		notice.RecurrenceDays = &days
		next := s.now().AddDate(0, 0, days)
		notice.NextSendAt = &next
	}
	return notice
}

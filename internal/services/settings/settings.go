// Package settings содержит бизнес-логику настраиваемых кнопок повышения
// тарифа. Портал запрашивает кнопку по ключу atendente_<план>; при отсутствии
// записи возвращается запасной вариант со ссылкой на WhatsApp.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nexusgrowth/client-portal/internal/models"
	"github.com/nexusgrowth/client-portal/internal/storage"
)

// Запасная кнопка, когда для тарифа ничего не настроено.
const (
	fallbackURL   = "https://wa.me/5511999999999"
	fallbackLabel = "Falar com um atendente"
)

// Repository описывает контракт хранилища кнопок.
type Repository interface {
	CreatePlanUpgradeLink(ctx context.Context, link models.PlanUpgradeLink) (string, error)
	ListPlanUpgradeLinks(ctx context.Context) ([]models.PlanUpgradeLink, error)
	GetPlanUpgradeLinkByKey(ctx context.Context, linkKey string) (*models.PlanUpgradeLink, error)
	UpdatePlanUpgradeLink(ctx context.Context, id string, link models.PlanUpgradeLink) (int, error)
	DeletePlanUpgradeLink(ctx context.Context, id string) (int, error)
}

// Service отвечает за операции над кнопками повышения тарифа.
type Service struct {
	repo Repository
}

// New создает новый Service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create сохраняет новую кнопку.
func (s *Service) Create(ctx context.Context, req models.DummyPlanUpgradeLink) (string, error) {
	const op = "settings.Create"
	id, err := s.repo.CreatePlanUpgradeLink(ctx, build(req))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// List возвращает все кнопки.
func (s *Service) List(ctx context.Context) ([]models.PlanUpgradeLink, error) {
	return s.repo.ListPlanUpgradeLinks(ctx)
}

// Update обновляет кнопку.
func (s *Service) Update(ctx context.Context, id string, req models.DummyPlanUpgradeLink) (int, error) {
	const op = "settings.Update"
	n, err := s.repo.UpdatePlanUpgradeLink(ctx, id, build(req))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// Delete удаляет кнопку.
func (s *Service) Delete(ctx context.Context, id string) (int, error) {
	return s.repo.DeletePlanUpgradeLink(ctx, id)
}

// ButtonForPlan возвращает кнопку для тарифа клиента по ключу
// atendente_<план в нижнем регистре> или запасной вариант, если кнопка
// не настроена.
func (s *Service) ButtonForPlan(ctx context.Context, plan string) (*models.PlanButton, error) {
	const op = "settings.ButtonForPlan"

	key := "atendente_" + strings.ToLower(plan)
	link, err := s.repo.GetPlanUpgradeLinkByKey(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return &models.PlanButton{LinkURL: fallbackURL, Label: fallbackLabel}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.PlanButton{LinkURL: link.LinkURL, Label: link.Label}, nil
}

func build(req models.DummyPlanUpgradeLink) models.PlanUpgradeLink {
	link := models.PlanUpgradeLink{
		LinkKey: req.LinkKey,
		LinkURL: req.LinkURL,
		Label:   req.Label,
	}
	if req.Description != "" {
		link.Description = &req.Description
	}
	return link
}

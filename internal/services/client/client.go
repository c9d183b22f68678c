// Package client содержит бизнес-логику управления клиентами (тенантами):
// создание клиента вместе со стартовым пользователем, нормализация slug,
// редактирование и каскадное удаление.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/nexusgrowth/client-portal/internal/lib/password"
	"github.com/nexusgrowth/client-portal/internal/lib/slug"
	"github.com/nexusgrowth/client-portal/internal/models"
)

// ErrEmptySlug возвращается, когда ни переданный slug, ни имя клиента
// не дают непустого slug после нормализации.
var ErrEmptySlug = errors.New("slug is empty after normalization")

// Repository описывает контракт хранилища клиентов.
type Repository interface {
	CreateClientWithUser(ctx context.Context, client models.Client, user models.User) (string, error)
	ListClients(ctx context.Context) ([]models.ClientWithCounts, error)
	GetClientByID(ctx context.Context, id string) (*models.Client, error)
	GetClientBySlug(ctx context.Context, slug string) (*models.Client, error)
	UpdateClient(ctx context.Context, id string, upd models.DummyClientUpdate) (int, error)
	DeleteClient(ctx context.Context, id string) (int, error)
}

// Service отвечает за операции над клиентами.
type Service struct {
	repo Repository
}

// New создает новый Service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create создаёт клиента и его стартового пользователя с ролью CLIENTE.
// Slug при отсутствии детерминированно выводится из имени; переданный slug
// также проходит нормализацию. Обе записи создаются в одной транзакции.
func (s *Service) Create(ctx context.Context, req models.DummyClient) (string, error) {
	const op = "client.Create"

	source := req.Slug
	if source == "" {
		source = req.Name
	}
	normalized := slug.Make(source)
	if normalized == "" {
		return "", ErrEmptySlug
	}

	plan := req.Plan
	if plan == "" {
		plan = models.PlanStart
	}
	status := req.Status
	if status == "" {
		status = models.StatusOnboarding
	}

	hash, err := password.GetHash(req.UserPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	userName := req.UserName
	if userName == "" {
		userName = req.Name
	}

	id, err := s.repo.CreateClientWithUser(ctx,
		models.Client{
			Name:         req.Name,
			Slug:         normalized,
			Plan:         plan,
			Status:       status,
			DriveLink:    nilIfEmpty(req.DriveLink),
			WhatsappLink: nilIfEmpty(req.WhatsappLink),
			Notes:        nilIfEmpty(req.Notes),
		},
		models.User{
			Name:         userName,
			Email:        req.UserEmail,
			PasswordHash: hash,
			Role:         models.RoleLabelClient,
		})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// List возвращает всех клиентов со счётчиками дочерних сущностей.
func (s *Service) List(ctx context.Context) ([]models.ClientWithCounts, error) {
	return s.repo.ListClients(ctx)
}

// Get возвращает клиента по id.
func (s *Service) Get(ctx context.Context, id string) (*models.Client, error) {
	return s.repo.GetClientByID(ctx, id)
}

// GetBySlug возвращает клиента по slug.
func (s *Service) GetBySlug(ctx context.Context, raw string) (*models.Client, error) {
	return s.repo.GetClientBySlug(ctx, raw)
}

// Update обновляет данные клиента. Slug нормализуется перед записью.
func (s *Service) Update(ctx context.Context, id string, upd models.DummyClientUpdate) (int, error) {
	const op = "client.Update"

	normalized := slug.Make(upd.Slug)
	if normalized == "" {
		return 0, ErrEmptySlug
	}
	upd.Slug = normalized

	n, err := s.repo.UpdateClient(ctx, id, upd)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// Delete удаляет клиента; дочерние записи удаляются каскадом на уровне схемы.
func (s *Service) Delete(ctx context.Context, id string) (int, error) {
	return s.repo.DeleteClient(ctx, id)
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Package access содержит бизнес-логику доступов клиентов к внешним сервисам:
// CRUD, массовое создание стандартного набора и замену иконки сервиса.
// Секреты проходят через secrets.Encoder в обе стороны.
package access

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/nexusgrowth/client-portal/internal/blob"
	"github.com/nexusgrowth/client-portal/internal/models"
	"github.com/nexusgrowth/client-portal/internal/secrets"
)

// Templates — стандартный набор доступов, создаваемый одним запросом
// при онбординге клиента.
var Templates = []models.AccessTemplate{
	{ServiceName: "Google Ads", ServiceURL: "https://ads.google.com"},
	{ServiceName: "Meta Ads", ServiceURL: "https://business.facebook.com"},
	{ServiceName: "Google Analytics", ServiceURL: "https://analytics.google.com"},
	{ServiceName: "Google Tag Manager", ServiceURL: "https://tagmanager.google.com"},
	{ServiceName: "Search Console", ServiceURL: "https://search.google.com/search-console"},
}

// Repository описывает контракт хранилища доступов.
type Repository interface {
	CreateAccess(ctx context.Context, access models.Access) (string, error)
	ListAccesses(ctx context.Context, clientID *string) ([]models.AccessWithClient, error)
	ListAccessesByClient(ctx context.Context, clientID string) ([]models.Access, error)
	GetAccessByID(ctx context.Context, id string) (*models.Access, error)
	UpdateAccess(ctx context.Context, id string, access models.Access) (int, error)
	DeleteAccess(ctx context.Context, id string) (int, error)
	GetAccessIconURL(ctx context.Context, id string) (*string, error)
	UpdateAccessIconURL(ctx context.Context, id string, url *string) (int, error)
}

// Service отвечает за операции над доступами.
type Service struct {
	repo    Repository
	encoder secrets.Encoder
	blobs   blob.Store
}

// New создает новый Service.
func New(repo Repository, encoder secrets.Encoder, blobs blob.Store) *Service {
	return &Service{repo: repo, encoder: encoder, blobs: blobs}
}

// Create сохраняет новый доступ, кодируя секрет перед записью.
func (s *Service) Create(ctx context.Context, req models.DummyAccess) (string, error) {
	const op = "access.Create"
	encoded, err := s.encoder.Encode(req.Password)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	id, err := s.repo.CreateAccess(ctx, models.Access{
		ClientID:    req.ClientID,
		ServiceName: req.ServiceName,
		ServiceURL:  nilIfEmpty(req.ServiceURL),
		Login:       req.Login,
		Password:    encoded,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// CreateBulk создаёт стандартный набор доступов для клиента с общей парой
// логин/пароль. Возвращает id созданных записей.
func (s *Service) CreateBulk(ctx context.Context, req models.DummyBulkAccesses) ([]string, error) {
	const op = "access.CreateBulk"
	encoded, err := s.encoder.Encode(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ids := make([]string, 0, len(Templates))
	for _, tpl := range Templates {
		id, err := s.repo.CreateAccess(ctx, models.Access{
			ClientID:    req.ClientID,
			ServiceName: tpl.ServiceName,
			ServiceURL:  nilIfEmpty(tpl.ServiceURL),
			Login:       req.Login,
			Password:    encoded,
			IconURL:     nilIfEmpty(tpl.IconURL),
		})
		if err != nil {
			return ids, fmt.Errorf("%s: %s: %w", op, tpl.ServiceName, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// List возвращает доступы с данными клиента, декодируя секреты;
// clientID == nil — по всем клиентам.
func (s *Service) List(ctx context.Context, clientID *string) ([]models.AccessWithClient, error) {
	const op = "access.List"
	items, err := s.repo.ListAccesses(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range items {
		decoded, err := s.encoder.Decode(items[i].Password)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items[i].Password = decoded
	}
	return items, nil
}

// ListForClient возвращает доступы одного клиента для его портала.
func (s *Service) ListForClient(ctx context.Context, clientID string) ([]models.Access, error) {
	const op = "access.ListForClient"
	items, err := s.repo.ListAccessesByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range items {
		decoded, err := s.encoder.Decode(items[i].Password)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items[i].Password = decoded
	}
	return items, nil
}

// Update обновляет доступ, кодируя секрет перед записью.
func (s *Service) Update(ctx context.Context, id string, req models.DummyAccess) (int, error) {
	const op = "access.Update"
	encoded, err := s.encoder.Encode(req.Password)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	n, err := s.repo.UpdateAccess(ctx, id, models.Access{
		ClientID:    req.ClientID,
		ServiceName: req.ServiceName,
		ServiceURL:  nilIfEmpty(req.ServiceURL),
		Login:       req.Login,
		Password:    encoded,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// Delete удаляет доступ.
func (s *Service) Delete(ctx context.Context, id string) (int, error) {
	return s.repo.DeleteAccess(ctx, id)
}

// ReplaceIcon заменяет иконку сервиса: сначала сохраняется новый блоб, затем
// обновляется строка, и только после этого старый блоб удаляется по мере сил.
// Сбой удаления не откатывает замену.
func (s *Service) ReplaceIcon(ctx context.Context, id, filename string, r io.Reader) (string, error) {
	const op = "access.ReplaceIcon"

	oldURL, err := s.repo.GetAccessIconURL(ctx, id)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	path := "access-icons/" + id + "/" + uuid.NewString() + "-" + filename
	newURL, err := s.blobs.Put(ctx, path, r)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.repo.UpdateAccessIconURL(ctx, id, &newURL); err != nil {
		_ = s.blobs.Delete(ctx, newURL)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if oldURL != nil {
		_ = s.blobs.Delete(ctx, *oldURL)
	}
	return newURL, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Package user содержит бизнес-логику управления пользователями портала:
// создание и редактирование с поддержанием инварианта привязки к клиенту
// и запрет удаления собственной учётной записи.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/nexusgrowth/client-portal/internal/authz"
	"github.com/nexusgrowth/client-portal/internal/lib/password"
	"github.com/nexusgrowth/client-portal/internal/models"
)

var (
	// ErrSelfDelete возвращается при попытке удалить собственную учётную запись.
	ErrSelfDelete = errors.New("cannot delete own account")
	// ErrTenantWithoutClient возвращается, когда пользователю с ролью CLIENTE
	// не передан client_id.
	ErrTenantWithoutClient = errors.New("client user requires client_id")
)

// Repository описывает контракт хранилища пользователей.
type Repository interface {
	CreateUser(ctx context.Context, user models.User) (string, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, user models.User) (int, error)
	DeleteUser(ctx context.Context, id string) (int, error)
	GetRoleIDByName(ctx context.Context, name string) (*string, error)
	ListRoles(ctx context.Context) ([]models.Role, error)
}

// Service отвечает за операции над пользователями.
type Service struct {
	repo Repository
}

// New создает новый Service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create создаёт пользователя. Привязка к клиенту взаимоисключающа с
// административными ролями: для ADMIN и Nexus Growth client_id отбрасывается,
// для CLIENTE он обязателен.
func (s *Service) Create(ctx context.Context, req models.DummyUser) (string, error) {
	const op = "user.Create"

	user, err := s.build(ctx, req.Role, req.ClientID, req.Name, req.Email, req.Password)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.CreateUser(ctx, *user)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// List возвращает всех пользователей.
func (s *Service) List(ctx context.Context) ([]models.User, error) {
	return s.repo.ListUsers(ctx)
}

// Update обновляет пользователя. Пустой пароль в запросе оставляет хэш
// нетронутым; правила привязки к клиенту те же, что и при создании.
func (s *Service) Update(ctx context.Context, id string, req models.DummyUserUpdate) (int, error) {
	const op = "user.Update"

	user, err := s.build(ctx, req.Role, req.ClientID, req.Name, req.Email, req.Password)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	n, err := s.repo.UpdateUser(ctx, id, *user)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// Delete удаляет пользователя. Вызывающий не может удалить сам себя —
// это защищает от потери последней административной учётной записи.
func (s *Service) Delete(ctx context.Context, callerID, id string) (int, error) {
	if callerID == id {
		return 0, ErrSelfDelete
	}
	return s.repo.DeleteUser(ctx, id)
}

// Roles возвращает справочник ролей с правами.
func (s *Service) Roles(ctx context.Context) ([]models.Role, error) {
	return s.repo.ListRoles(ctx)
}

func (s *Service) build(ctx context.Context, roleLabel, clientID, name, email, rawPassword string) (*models.User, error) {
	role, err := authz.ParseRole(roleLabel)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:  name,
		Email: email,
		Role:  roleLabel,
	}
	if role.RequiresTenant() {
		if clientID == "" {
			return nil, ErrTenantWithoutClient
		}
		user.ClientID = &clientID
	}

	if rawPassword != "" {
		hash, err := password.GetHash(rawPassword)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	roleID, err := s.repo.GetRoleIDByName(ctx, role.Label())
	if err != nil {
		return nil, err
	}
	user.RoleID = roleID

	return &user, nil
}

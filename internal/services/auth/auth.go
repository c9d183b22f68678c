// Package auth содержит бизнес-логику входа, смены пароля и разрешения
// личности вызывающего (Principal) по id пользователя из сессии.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/nexusgrowth/client-portal/internal/authz"
	"github.com/nexusgrowth/client-portal/internal/lib/password"
	"github.com/nexusgrowth/client-portal/internal/models"
	"github.com/nexusgrowth/client-portal/internal/storage"
)

// ErrInvalidCredentials возвращается при неверной паре email/пароль
// и при неверном текущем пароле в операции смены пароля.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт работы с пользователями.
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUserPassword(ctx context.Context, id, passwordHash string) (int, error)
}

// ClientRepository описывает контракт загрузки клиента для среза тенанта.
type ClientRepository interface {
	GetClientByID(ctx context.Context, id string) (*models.Client, error)
}

// Service отвечает за аутентификацию и разрешение Principal.
type Service struct {
	users   UserRepository
	clients ClientRepository
}

// New создает новый Service.
func New(users UserRepository, clients ClientRepository) *Service {
	return &Service{users: users, clients: clients}
}

// Authenticate проверяет email и пароль и возвращает пользователя.
// Несуществующий email и неверный пароль неразличимы для вызывающего.
func (s *Service) Authenticate(ctx context.Context, email, rawPassword string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ChangePassword меняет пароль пользователя после проверки текущего.
// При неверном текущем пароле сохранённый хэш остаётся нетронутым.
func (s *Service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	const op = "auth.ChangePassword"
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, currentPassword); err != nil {
		return ErrInvalidCredentials
	}
	newHash, err := password.GetHash(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err := s.users.UpdateUserPassword(ctx, userID, newHash); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ResolvePrincipal строит Principal по id пользователя. Срез тенанта
// загружается заново на каждый вызов: правки клиента видны со следующего
// запроса без инвалидации. Нераспознанная роль или битая привязка к клиенту
// разрешаются в ошибку — такой пользователь эквивалентен анонимному.
func (s *Service) ResolvePrincipal(ctx context.Context, userID string) (*authz.Principal, error) {
	const op = "auth.ResolvePrincipal"
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	role, err := authz.ParseRole(user.Role)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p := &authz.Principal{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   role,
	}
	if role.RequiresTenant() {
		if user.ClientID == nil {
			return nil, fmt.Errorf("%s: tenant user %s has no client binding", op, user.ID)
		}
		client, err := s.clients.GetClientByID(ctx, *user.ClientID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		p.Tenant = authz.NewTenantSnapshot(client)
	}
	return p, nil
}

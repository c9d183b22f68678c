// Package upload содержит логику замены изображений (аватаров пользователей
// и логотипов клиентов). Порядок фиксированный: сначала сохраняется новый
// блоб, затем обновляется строка, и только после этого старый блоб удаляется
// по мере сил — сбой удаления не откатывает замену.
package upload

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/nexusgrowth/client-portal/internal/blob"
)

// UserRepository описывает контракт работы с аватарами пользователей.
type UserRepository interface {
	GetUserAvatarURL(ctx context.Context, id string) (*string, error)
	UpdateUserAvatarURL(ctx context.Context, id string, url *string) (int, error)
}

// ClientRepository описывает контракт работы с логотипами клиентов.
type ClientRepository interface {
	GetClientLogoURL(ctx context.Context, id string) (*string, error)
	UpdateClientLogoURL(ctx context.Context, id string, url *string) (int, error)
}

// Service отвечает за замену изображений.
type Service struct {
	users   UserRepository
	clients ClientRepository
	blobs   blob.Store
}

// New создает новый Service.
func New(users UserRepository, clients ClientRepository, blobs blob.Store) *Service {
	return &Service{users: users, clients: clients, blobs: blobs}
}

// ReplaceAvatar заменяет аватар пользователя и возвращает новый URL.
func (s *Service) ReplaceAvatar(ctx context.Context, userID, filename string, r io.Reader) (string, error) {
	const op = "upload.ReplaceAvatar"
	url, err := s.replace(ctx, "avatars/"+userID, filename, r,
		func(ctx context.Context) (*string, error) { return s.users.GetUserAvatarURL(ctx, userID) },
		func(ctx context.Context, url *string) error {
			_, err := s.users.UpdateUserAvatarURL(ctx, userID, url)
			return err
		})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return url, nil
}

// ReplaceLogo заменяет логотип клиента и возвращает новый URL.
func (s *Service) ReplaceLogo(ctx context.Context, clientID, filename string, r io.Reader) (string, error) {
	const op = "upload.ReplaceLogo"
	url, err := s.replace(ctx, "logos/"+clientID, filename, r,
		func(ctx context.Context) (*string, error) { return s.clients.GetClientLogoURL(ctx, clientID) },
		func(ctx context.Context, url *string) error {
			_, err := s.clients.UpdateClientLogoURL(ctx, clientID, url)
			return err
		})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return url, nil
}

func (s *Service) replace(
	ctx context.Context,
	dir, filename string,
	r io.Reader,
	getOld func(context.Context) (*string, error),
	setNew func(context.Context, *string) error,
) (string, error) {
	oldURL, err := getOld(ctx)
	if err != nil {
		return "", err
	}

	newURL, err := s.blobs.Put(ctx, dir+"/"+uuid.NewString()+"-"+filename, r)
	if err != nil {
		return "", err
	}

	if err := setNew(ctx, &newURL); err != nil {
		_ = s.blobs.Delete(ctx, newURL)
		return "", err
	}

	if oldURL != nil {
		_ = s.blobs.Delete(ctx, *oldURL)
	}
	return newURL, nil
}

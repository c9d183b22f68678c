package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nexusgrowth/client-portal/internal/models"
)

const accessColumns = `id, client_id, service_name, service_url, login, password, icon_url, created_at, updated_at`

func scanAccess(row interface{ Scan(...any) error }) (*models.Access, error) {
	var a models.Access
	err := row.Scan(&a.ID, &a.ClientID, &a.ServiceName, &a.ServiceURL,
		&a.Login, &a.Password, &a.IconURL, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAccess сохраняет новый доступ и возвращает его id.
func (s *Storage) CreateAccess(ctx context.Context, access models.Access) (string, error) {
	const op = "storage.CreateAccess"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	id := uuid.NewString()
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO accesses (id, client_id, service_name, service_url, login, password, icon_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, access.ClientID, access.ServiceName, access.ServiceURL,
		access.Login, access.Password, access.IconURL)
	if err != nil {
		return "", wrapErr(op, err)
	}
	return id, nil
}

// ListAccesses возвращает доступы с данными клиента; clientID == nil — все.
func (s *Storage) ListAccesses(ctx context.Context, clientID *string) ([]models.AccessWithClient, error) {
	const op = "storage.ListAccesses"
	query := `
		SELECT a.id, a.client_id, a.service_name, a.service_url, a.login, a.password,
		       a.icon_url, a.created_at, a.updated_at,
		       c.name, c.slug, c.logo_url
		FROM accesses a
		JOIN clients c ON a.client_id = c.id`
	var args []any
	if clientID != nil {
		query += ` WHERE a.client_id = $1`
		args = append(args, *clientID)
	}
	query += ` ORDER BY a.created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.AccessWithClient
	for rows.Next() {
		var a models.AccessWithClient
		if err := rows.Scan(&a.ID, &a.ClientID, &a.ServiceName, &a.ServiceURL, &a.Login,
			&a.Password, &a.IconURL, &a.CreatedAt, &a.UpdatedAt,
			&a.ClientName, &a.ClientSlug, &a.ClientLogoURL); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListAccessesByClient возвращает доступы одного клиента для его портала.
func (s *Storage) ListAccessesByClient(ctx context.Context, clientID string) ([]models.Access, error) {
	const op = "storage.ListAccessesByClient"
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+accessColumns+` FROM accesses WHERE client_id = $1 ORDER BY service_name ASC`,
		clientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.Access
	for rows.Next() {
		a, err := scanAccess(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetAccessByID возвращает доступ по id.
func (s *Storage) GetAccessByID(ctx context.Context, id string) (*models.Access, error) {
	const op = "storage.GetAccessByID"
	row := s.DB.QueryRowContext(ctx, `SELECT `+accessColumns+` FROM accesses WHERE id = $1`, id)
	a, err := scanAccess(row)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return a, nil
}

// UpdateAccess обновляет доступ и возвращает число изменённых строк.
func (s *Storage) UpdateAccess(ctx context.Context, id string, access models.Access) (int, error) {
	const op = "storage.UpdateAccess"
	result, err := s.DB.ExecContext(ctx, `
		UPDATE accesses
		SET client_id = $1, service_name = $2, service_url = $3, login = $4,
		    password = $5, updated_at = NOW()
		WHERE id = $6`,
		access.ClientID, access.ServiceName, access.ServiceURL, access.Login, access.Password, id)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteAccess удаляет доступ и возвращает число удалённых строк.
func (s *Storage) DeleteAccess(ctx context.Context, id string) (int, error) {
	const op = "storage.DeleteAccess"
	result, err := s.DB.ExecContext(ctx, `DELETE FROM accesses WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// GetAccessIconURL возвращает текущий URL иконки доступа.
func (s *Storage) GetAccessIconURL(ctx context.Context, id string) (*string, error) {
	const op = "storage.GetAccessIconURL"
	var iconURL *string
	err := s.DB.QueryRowContext(ctx, `SELECT icon_url FROM accesses WHERE id = $1`, id).Scan(&iconURL)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return iconURL, nil
}

// UpdateAccessIconURL записывает новый URL иконки доступа (nil — очистить).
func (s *Storage) UpdateAccessIconURL(ctx context.Context, id string, url *string) (int, error) {
	const op = "storage.UpdateAccessIconURL"
	result, err := s.DB.ExecContext(ctx,
		`UPDATE accesses SET icon_url = $1, updated_at = NOW() WHERE id = $2`, url, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nexusgrowth/client-portal/internal/models"
)

const clientColumns = `id, name, slug, plan, status, logo_url, drive_link, whatsapp_link, notes, created_at, updated_at`

func scanClient(row interface{ Scan(...any) error }) (*models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Plan, &c.Status, &c.LogoURL,
		&c.DriveLink, &c.WhatsappLink, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateClientWithUser создаёт клиента и его стартового пользователя с ролью
// CLIENTE в одной транзакции: сбой на любом шаге не оставляет клиента без
// учётной записи для входа.
func (s *Storage) CreateClientWithUser(ctx context.Context, client models.Client, user models.User) (string, error) {
	const op = "storage.CreateClientWithUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op после успешного Commit

	clientID := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO clients (id, name, slug, plan, status, drive_link, whatsapp_link, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		clientID, client.Name, client.Slug, client.Plan, client.Status,
		client.DriveLink, client.WhatsappLink, client.Notes)
	if err != nil {
		return "", wrapErr(op, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (id, client_id, name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.NewString(), clientID, user.Name, user.Email, user.PasswordHash, user.Role)
	if err != nil {
		return "", wrapErr(op, err)
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return clientID, nil
}

// ListClients возвращает всех клиентов со счётчиками пользователей и доступов.
func (s *Storage) ListClients(ctx context.Context) ([]models.ClientWithCounts, error) {
	const op = "storage.ListClients"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT c.id, c.name, c.slug, c.plan, c.status, c.logo_url, c.drive_link,
		       c.whatsapp_link, c.notes, c.created_at, c.updated_at,
		       (SELECT COUNT(*) FROM users u WHERE u.client_id = c.id) AS user_count,
		       (SELECT COUNT(*) FROM accesses a WHERE a.client_id = c.id) AS access_count
		FROM clients c
		ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.ClientWithCounts
	for rows.Next() {
		var c models.ClientWithCounts
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Plan, &c.Status, &c.LogoURL,
			&c.DriveLink, &c.WhatsappLink, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
			&c.UserCount, &c.AccessCount); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetClientByID возвращает клиента по id.
func (s *Storage) GetClientByID(ctx context.Context, id string) (*models.Client, error) {
	const op = "storage.GetClientByID"
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	c, err := scanClient(row)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return c, nil
}

// GetClientBySlug возвращает клиента по slug. Slug изменяем, поэтому права
// дальше проверяются по id найденной записи, а не по строке из URL.
func (s *Storage) GetClientBySlug(ctx context.Context, slug string) (*models.Client, error) {
	const op = "storage.GetClientBySlug"
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE slug = $1`, slug)
	c, err := scanClient(row)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return c, nil
}

// UpdateClient обновляет данные клиента и возвращает число изменённых строк.
func (s *Storage) UpdateClient(ctx context.Context, id string, upd models.DummyClientUpdate) (int, error) {
	const op = "storage.UpdateClient"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `
		UPDATE clients
		SET name = $1, slug = $2, plan = $3, status = $4,
		    drive_link = $5, whatsapp_link = $6, notes = $7, updated_at = NOW()
		WHERE id = $8`,
		upd.Name, upd.Slug, upd.Plan, upd.Status,
		nilIfEmpty(upd.DriveLink), nilIfEmpty(upd.WhatsappLink), nilIfEmpty(upd.Notes), id)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteClient удаляет клиента; каскад схемы удаляет всех его пользователей,
// доступы, уведомления, отчёты и прогресс по шагам.
func (s *Storage) DeleteClient(ctx context.Context, id string) (int, error) {
	const op = "storage.DeleteClient"
	result, err := s.DB.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// GetClientLogoURL возвращает текущий URL логотипа клиента.
func (s *Storage) GetClientLogoURL(ctx context.Context, id string) (*string, error) {
	const op = "storage.GetClientLogoURL"
	var logoURL *string
	err := s.DB.QueryRowContext(ctx, `SELECT logo_url FROM clients WHERE id = $1`, id).Scan(&logoURL)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return logoURL, nil
}

// UpdateClientLogoURL записывает новый URL логотипа клиента.
func (s *Storage) UpdateClientLogoURL(ctx context.Context, id string, url *string) (int, error) {
	const op = "storage.UpdateClientLogoURL"
	result, err := s.DB.ExecContext(ctx,
		`UPDATE clients SET logo_url = $1, updated_at = NOW() WHERE id = $2`, url, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

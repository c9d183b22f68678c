package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nexusgrowth/client-portal/internal/models"
)

const userColumns = `id, client_id, name, email, password_hash, role, role_id, avatar_url, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.ClientID, &u.Name, &u.Email, &u.PasswordHash,
		&u.Role, &u.RoleID, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser сохраняет нового пользователя и возвращает его id.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	id := uuid.NewString()
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO users (id, client_id, name, email, password_hash, role, role_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, user.ClientID, user.Name, user.Email, user.PasswordHash, user.Role, user.RoleID)
	if err != nil {
		return "", wrapErr(op, err)
	}
	return id, nil
}

// ListUsers возвращает всех пользователей, без хэшей паролей в ответе API
// (поле сериализуется как "-").
func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "storage.ListUsers"
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetUserByID возвращает пользователя по id.
func (s *Storage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.GetUserByID"
	row := s.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return u, nil
}

// GetUserByEmail возвращает пользователя по email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	row := s.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return u, nil
}

// UpdateUser обновляет данные пользователя. Пустой PasswordHash означает
// "пароль не менять". Возвращает число изменённых строк.
func (s *Storage) UpdateUser(ctx context.Context, id string, user models.User) (int, error) {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var (
		result sql.Result
		err    error
	)
	if user.PasswordHash != "" {
		result, err = s.DB.ExecContext(ctx, `
			UPDATE users
			SET name = $1, email = $2, password_hash = $3, role = $4, role_id = $5,
			    client_id = $6, updated_at = NOW()
			WHERE id = $7`,
			user.Name, user.Email, user.PasswordHash, user.Role, user.RoleID, user.ClientID, id)
	} else {
		result, err = s.DB.ExecContext(ctx, `
			UPDATE users
			SET name = $1, email = $2, role = $3, role_id = $4,
			    client_id = $5, updated_at = NOW()
			WHERE id = $6`,
			user.Name, user.Email, user.Role, user.RoleID, user.ClientID, id)
	}
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// UpdateUserPassword записывает новый хэш пароля пользователя.
func (s *Storage) UpdateUserPassword(ctx context.Context, id, passwordHash string) (int, error) {
	const op = "storage.UpdateUserPassword"
	result, err := s.DB.ExecContext(ctx,
		`UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		passwordHash, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteUser удаляет пользователя и возвращает число удалённых строк.
func (s *Storage) DeleteUser(ctx context.Context, id string) (int, error) {
	const op = "storage.DeleteUser"
	result, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// GetUserAvatarURL возвращает текущий URL аватара пользователя.
func (s *Storage) GetUserAvatarURL(ctx context.Context, id string) (*string, error) {
	const op = "storage.GetUserAvatarURL"
	var avatarURL *string
	err := s.DB.QueryRowContext(ctx, `SELECT avatar_url FROM users WHERE id = $1`, id).Scan(&avatarURL)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return avatarURL, nil
}

// UpdateUserAvatarURL записывает новый URL аватара пользователя.
func (s *Storage) UpdateUserAvatarURL(ctx context.Context, id string, url *string) (int, error) {
	const op = "storage.UpdateUserAvatarURL"
	result, err := s.DB.ExecContext(ctx,
		`UPDATE users SET avatar_url = $1, updated_at = NOW() WHERE id = $2`, url, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// GetRoleIDByName возвращает id роли из справочника или nil, если такой нет.
// Отсутствие записи в справочнике не является ошибкой: role_id остаётся NULL.
func (s *Storage) GetRoleIDByName(ctx context.Context, name string) (*string, error) {
	const op = "storage.GetRoleIDByName"
	var id string
	err := s.DB.QueryRowContext(ctx, `SELECT id FROM roles WHERE name = $1`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &id, nil
}

// ListRoles возвращает справочник ролей вместе с их правами.
func (s *Storage) ListRoles(ctx context.Context) ([]models.Role, error) {
	const op = "storage.ListRoles"
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, description FROM roles ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var r models.Role
		if err := rows.Scan(&r.ID, &r.Name, &r.Description); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		roles = append(roles, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	permRows, err := s.DB.QueryContext(ctx,
		`SELECT id, role_id, resource, can_view, can_edit FROM permissions ORDER BY resource ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer permRows.Close()

	byRole := make(map[string][]models.Permission)
	for permRows.Next() {
		var p models.Permission
		if err := permRows.Scan(&p.ID, &p.RoleID, &p.Resource, &p.CanView, &p.CanEdit); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		byRole[p.RoleID] = append(byRole[p.RoleID], p)
	}
	if err := permRows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range roles {
		roles[i].Permissions = byRole[roles[i].ID]
	}
	return roles, nil
}

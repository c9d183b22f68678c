package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nexusgrowth/client-portal/internal/models"
)

const noticeColumns = `id, client_id, title, message, priority, is_recurring,
	recurrence_days, is_active, next_send_at, last_sent_at, created_at`

func scanNotice(row interface{ Scan(...any) error }) (*models.Notice, error) {
	var n models.Notice
	err := row.Scan(&n.ID, &n.ClientID, &n.Title, &n.Message, &n.Priority, &n.IsRecurring,
		&n.RecurrenceDays, &n.IsActive, &n.NextSendAt, &n.LastSentAt, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// CreateNotice сохраняет уведомление и возвращает его id. Поля повторения
// записываются как есть: их никто не обрабатывает в фоне.
func (s *Storage) CreateNotice(ctx context.Context, notice models.Notice) (string, error) {
	const op = "storage.CreateNotice"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	id := uuid.NewString()
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO notices (id, client_id, title, message, priority, is_recurring,
		                      recurrence_days, is_active, next_send_at, last_sent_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, notice.ClientID, notice.Title, notice.Message, notice.Priority, notice.IsRecurring,
		notice.RecurrenceDays, notice.IsActive, notice.NextSendAt, notice.LastSentAt)
	if err != nil {
		return "", wrapErr(op, err)
	}
	return id, nil
}

// ListNotices возвращает все уведомления для админки.
func (s *Storage) ListNotices(ctx context.Context) ([]models.Notice, error) {
	const op = "storage.ListNotices"
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+noticeColumns+` FROM notices ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.Notice
	for rows.Next() {
		n, err := scanNotice(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListNoticesForClient возвращает активные уведомления клиента вместе с
// широковещательными (client_id IS NULL).
func (s *Storage) ListNoticesForClient(ctx context.Context, clientID string) ([]models.Notice, error) {
	const op = "storage.ListNoticesForClient"
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+noticeColumns+` FROM notices
		 WHERE (client_id = $1 OR client_id IS NULL) AND is_active = TRUE
		 ORDER BY created_at DESC`, clientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.Notice
	for rows.Next() {
		n, err := scanNotice(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateNotice обновляет уведомление и возвращает число изменённых строк.
func (s *Storage) UpdateNotice(ctx context.Context, id string, notice models.Notice) (int, error) {
	const op = "storage.UpdateNotice"
	result, err := s.DB.ExecContext(ctx, `
		UPDATE notices
		SET client_id = $1, title = $2, message = $3, priority = $4,
		    is_recurring = $5, recurrence_days = $6, is_active = $7, next_send_at = $8
		WHERE id = $9`,
		notice.ClientID, notice.Title, notice.Message, notice.Priority,
		notice.IsRecurring, notice.RecurrenceDays, notice.IsActive, notice.NextSendAt, id)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteNotice удаляет уведомление и возвращает число удалённых строк.
func (s *Storage) DeleteNotice(ctx context.Context, id string) (int, error) {
	const op = "storage.DeleteNotice"
	result, err := s.DB.ExecContext(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

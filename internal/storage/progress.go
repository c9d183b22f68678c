package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nexusgrowth/client-portal/internal/models"
)

// UpsertStepProgress вставляет или обновляет прогресс по паре (client_id, step_id).
// Составной уникальный ключ схемы делает операцию корректно определённой;
// при гонке двух записей побеждает последняя. Возвращает итоговую строку.
func (s *Storage) UpsertStepProgress(ctx context.Context, progress models.StepProgress) (*models.StepProgress, error) {
	const op = "storage.UpsertStepProgress"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	row := s.DB.QueryRowContext(ctx, `
		INSERT INTO client_step_progress (id, client_id, step_id, status, completed_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (client_id, step_id)
		DO UPDATE SET status = $4, completed_at = $5, updated_at = NOW()
		RETURNING id, client_id, step_id, status, completed_at, updated_at`,
		uuid.NewString(), progress.ClientID, progress.StepID, progress.Status, progress.CompletedAt)

	var result models.StepProgress
	if err := row.Scan(&result.ID, &result.ClientID, &result.StepID, &result.Status,
		&result.CompletedAt, &result.UpdatedAt); err != nil {
		return nil, wrapErr(op, err)
	}
	return &result, nil
}

// ListStepProgress возвращает прогресс клиента по всем шагам.
func (s *Storage) ListStepProgress(ctx context.Context, clientID string) ([]models.StepProgress, error) {
	const op = "storage.ListStepProgress"
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, client_id, step_id, status, completed_at, updated_at
		FROM client_step_progress
		WHERE client_id = $1
		ORDER BY step_id ASC`, clientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.StepProgress
	for rows.Next() {
		var p models.StepProgress
		if err := rows.Scan(&p.ID, &p.ClientID, &p.StepID, &p.Status,
			&p.CompletedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetStepProgress возвращает текущий статус пары (client_id, step_id)
// или ErrNotFound, если прогресс ещё не записывался.
func (s *Storage) GetStepProgress(ctx context.Context, clientID, stepID string) (*models.StepProgress, error) {
	const op = "storage.GetStepProgress"
	row := s.DB.QueryRowContext(ctx, `
		SELECT id, client_id, step_id, status, completed_at, updated_at
		FROM client_step_progress
		WHERE client_id = $1 AND step_id = $2`, clientID, stepID)

	var p models.StepProgress
	if err := row.Scan(&p.ID, &p.ClientID, &p.StepID, &p.Status,
		&p.CompletedAt, &p.UpdatedAt); err != nil {
		return nil, wrapErr(op, err)
	}
	return &p, nil
}

// ListStepLinks возвращает материалы (ссылки), привязанные к шагам карты.
func (s *Storage) ListStepLinks(ctx context.Context) ([]models.StepLink, error) {
	const op = "storage.ListStepLinks"
	rows, err := s.DB.QueryContext(ctx, `
		SELECT step_id, link_type, link_url, link_label
		FROM plan_step_links
		ORDER BY step_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.StepLink
	for rows.Next() {
		var l models.StepLink
		if err := rows.Scan(&l.StepID, &l.LinkType, &l.LinkURL, &l.LinkLabel); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

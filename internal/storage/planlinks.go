package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nexusgrowth/client-portal/internal/models"
)

const planLinkColumns = `id, link_key, link_url, label, description, created_at, updated_at`

func scanPlanLink(row interface{ Scan(...any) error }) (*models.PlanUpgradeLink, error) {
	var l models.PlanUpgradeLink
	err := row.Scan(&l.ID, &l.LinkKey, &l.LinkURL, &l.Label, &l.Description,
		&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// CreatePlanUpgradeLink сохраняет кнопку повышения тарифа и возвращает её id.
func (s *Storage) CreatePlanUpgradeLink(ctx context.Context, link models.PlanUpgradeLink) (string, error) {
	const op = "storage.CreatePlanUpgradeLink"
	id := uuid.NewString()
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO plan_upgrade_links (id, link_key, link_url, label, description)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, link.LinkKey, link.LinkURL, link.Label, link.Description)
	if err != nil {
		return "", wrapErr(op, err)
	}
	return id, nil
}

// ListPlanUpgradeLinks возвращает все кнопки повышения тарифа.
func (s *Storage) ListPlanUpgradeLinks(ctx context.Context) ([]models.PlanUpgradeLink, error) {
	const op = "storage.ListPlanUpgradeLinks"
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+planLinkColumns+` FROM plan_upgrade_links ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.PlanUpgradeLink
	for rows.Next() {
		l, err := scanPlanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetPlanUpgradeLinkByKey возвращает кнопку по её уникальному ключу.
func (s *Storage) GetPlanUpgradeLinkByKey(ctx context.Context, linkKey string) (*models.PlanUpgradeLink, error) {
	const op = "storage.GetPlanUpgradeLinkByKey"
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+planLinkColumns+` FROM plan_upgrade_links WHERE link_key = $1`, linkKey)
	l, err := scanPlanLink(row)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return l, nil
}

// UpdatePlanUpgradeLink обновляет кнопку и возвращает число изменённых строк.
func (s *Storage) UpdatePlanUpgradeLink(ctx context.Context, id string, link models.PlanUpgradeLink) (int, error) {
	const op = "storage.UpdatePlanUpgradeLink"
	result, err := s.DB.ExecContext(ctx, `
		UPDATE plan_upgrade_links
		SET link_key = $1, link_url = $2, label = $3, description = $4, updated_at = NOW()
		WHERE id = $5`,
		link.LinkKey, link.LinkURL, link.Label, link.Description, id)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeletePlanUpgradeLink удаляет кнопку и возвращает число удалённых строк.
func (s *Storage) DeletePlanUpgradeLink(ctx context.Context, id string) (int, error) {
	const op = "storage.DeletePlanUpgradeLink"
	result, err := s.DB.ExecContext(ctx, `DELETE FROM plan_upgrade_links WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

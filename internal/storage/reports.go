package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nexusgrowth/client-portal/internal/models"
)

const reportColumns = `id, client_id, report_date, status, summary, actions_taken,
	data_analysis, decisions_made, next_week_guidance, created_at`

func scanReport(row interface{ Scan(...any) error }) (*models.WeeklyReport, error) {
	var r models.WeeklyReport
	err := row.Scan(&r.ID, &r.ClientID, &r.ReportDate, &r.Status, &r.Summary,
		&r.ActionsTaken, &r.DataAnalysis, &r.DecisionsMade, &r.NextWeekGuidance, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateWeeklyReport сохраняет отчёт и возвращает его id.
func (s *Storage) CreateWeeklyReport(ctx context.Context, report models.WeeklyReport) (string, error) {
	const op = "storage.CreateWeeklyReport"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	id := uuid.NewString()
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO weekly_reports (id, client_id, report_date, status, summary,
		                             actions_taken, data_analysis, decisions_made, next_week_guidance)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, report.ClientID, report.ReportDate, report.Status, report.Summary,
		report.ActionsTaken, report.DataAnalysis, report.DecisionsMade, report.NextWeekGuidance)
	if err != nil {
		return "", wrapErr(op, err)
	}
	return id, nil
}

// ListWeeklyReports возвращает все отчёты с данными клиентов для админки.
func (s *Storage) ListWeeklyReports(ctx context.Context) ([]models.WeeklyReportWithClient, error) {
	const op = "storage.ListWeeklyReports"
	rows, err := s.DB.QueryContext(ctx, `
		SELECT wr.id, wr.client_id, wr.report_date, wr.status, wr.summary, wr.actions_taken,
		       wr.data_analysis, wr.decisions_made, wr.next_week_guidance, wr.created_at,
		       c.name, c.slug
		FROM weekly_reports wr
		JOIN clients c ON wr.client_id = c.id
		ORDER BY wr.report_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.WeeklyReportWithClient
	for rows.Next() {
		var r models.WeeklyReportWithClient
		if err := rows.Scan(&r.ID, &r.ClientID, &r.ReportDate, &r.Status, &r.Summary,
			&r.ActionsTaken, &r.DataAnalysis, &r.DecisionsMade, &r.NextWeekGuidance,
			&r.CreatedAt, &r.ClientName, &r.ClientSlug); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListWeeklyReportsByClient возвращает отчёты одного клиента для его портала.
func (s *Storage) ListWeeklyReportsByClient(ctx context.Context, clientID string) ([]models.WeeklyReport, error) {
	const op = "storage.ListWeeklyReportsByClient"
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+reportColumns+` FROM weekly_reports WHERE client_id = $1 ORDER BY report_date DESC`,
		clientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.WeeklyReport
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateWeeklyReport обновляет отчёт и возвращает число изменённых строк.
func (s *Storage) UpdateWeeklyReport(ctx context.Context, id string, report models.WeeklyReport) (int, error) {
	const op = "storage.UpdateWeeklyReport"
	result, err := s.DB.ExecContext(ctx, `
		UPDATE weekly_reports
		SET client_id = $1, report_date = $2, status = $3, summary = $4, actions_taken = $5,
		    data_analysis = $6, decisions_made = $7, next_week_guidance = $8
		WHERE id = $9`,
		report.ClientID, report.ReportDate, report.Status, report.Summary, report.ActionsTaken,
		report.DataAnalysis, report.DecisionsMade, report.NextWeekGuidance, id)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteWeeklyReport удаляет отчёт и возвращает число удалённых строк.
func (s *Storage) DeleteWeeklyReport(ctx context.Context, id string) (int, error) {
	const op = "storage.DeleteWeeklyReport"
	result, err := s.DB.ExecContext(ctx, `DELETE FROM weekly_reports WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

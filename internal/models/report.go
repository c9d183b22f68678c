package models

import "time"

// WeeklyReport представляет еженедельный операционный отчёт по клиенту.
type WeeklyReport struct {
	ID               string    `json:"id"`
	ClientID         string    `json:"client_id"`
	ReportDate       time.Time `json:"report_date"`
	Status           string    `json:"status"`
	Summary          string    `json:"summary"`
	ActionsTaken     *string   `json:"actions_taken"`
	DataAnalysis     *string   `json:"data_analysis"`
	DecisionsMade    *string   `json:"decisions_made"`
	NextWeekGuidance *string   `json:"next_week_guidance"`
	CreatedAt        time.Time `json:"created_at"`
}

// WeeklyReportWithClient расширяет отчёт данными клиента для админского списка.
type WeeklyReportWithClient struct {
	WeeklyReport
	ClientName string `json:"client_name"`
	ClientSlug string `json:"client_slug"`
}

// DummyWeeklyReport используется для приёма данных создания или редактирования отчёта.
// Дата отчёта приходит строкой в формате 2006-01-02.
type DummyWeeklyReport struct {
	ClientID         string `json:"client_id" validate:"required,uuid"`
	ReportDate       string `json:"report_date" validate:"required,datetime=2006-01-02"`
	Status           string `json:"status" validate:"required"`
	Summary          string `json:"summary" validate:"required"`
	ActionsTaken     string `json:"actions_taken" validate:"omitempty"`
	DataAnalysis     string `json:"data_analysis" validate:"omitempty"`
	DecisionsMade    string `json:"decisions_made" validate:"omitempty"`
	NextWeekGuidance string `json:"next_week_guidance" validate:"omitempty"`
}

package models

import "time"

// Допустимые статусы прохождения шага карты операций.
const (
	StepPending    = "pending"
	StepInProgress = "in_progress"
	StepCompleted  = "completed"
)

// StepProgress представляет прогресс клиента по одному шагу карты операций.
// Пара (ClientID, StepID) уникальна на уровне схемы БД — это то, что делает
// upsert корректно определённым. CompletedAt заполняется при переходе
// в completed и очищается при выходе из него.
type StepProgress struct {
	ID          string     `json:"id,omitempty"`
	ClientID    string     `json:"client_id"`
	StepID      string     `json:"step_id"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// DummyStepProgress используется для приёма данных upsert прогресса по шагу.
type DummyStepProgress struct {
	ClientID string `json:"client_id" validate:"required,uuid"`
	StepID   string `json:"step_id" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=pending in_progress completed"`
}

// StepLink описывает материал (ссылку), привязанный к шагу карты операций.
type StepLink struct {
	StepID    string `json:"step_id"`
	LinkType  string `json:"link_type"`
	LinkURL   string `json:"link_url"`
	LinkLabel string `json:"link_label"`
}

// Package models содержит доменные структуры портала: клиенты (тенанты),
// пользователи, доступы, уведомления, еженедельные отчёты и прогресс по шагам
// карты операций. Помимо доменных моделей здесь определены Dummy*-структуры
// для приёма данных из JSON-запросов до их валидации.
package models

import "time"

// Допустимые тарифные планы клиента.
const (
	PlanStart = "START"
	PlanPro   = "PRO"
	PlanScale = "SCALE"
)

// Допустимые статусы жизненного цикла клиента.
const (
	StatusOnboarding = "ONBOARDING"
	StatusActive     = "ACTIVE"
	StatusPaused     = "PAUSED"
)

// Client представляет клиента агентства (тенанта). Каждый клиент имеет
// глобально уникальный slug, по которому строится адрес его дашборда.
type Client struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Plan         string     `json:"plan"`
	Status       string     `json:"status"`
	LogoURL      *string    `json:"logo_url"`
	DriveLink    *string    `json:"drive_link"`
	WhatsappLink *string    `json:"whatsapp_link"`
	Notes        *string    `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ClientWithCounts расширяет Client счётчиками дочерних сущностей
// для списка клиентов в админке.
type ClientWithCounts struct {
	Client
	UserCount   int `json:"user_count"`
	AccessCount int `json:"access_count"`
}

// DummyClient используется для приёма данных создания клиента из JSON-запроса.
// Slug опционален: при отсутствии он детерминированно выводится из имени.
// Вместе с клиентом создаётся ровно один стартовый пользователь с ролью CLIENTE.
type DummyClient struct {
	Name         string `json:"name" validate:"required"`
	Slug         string `json:"slug" validate:"omitempty"`
	Plan         string `json:"plan" validate:"omitempty,oneof=START PRO SCALE"`
	Status       string `json:"status" validate:"omitempty,oneof=ONBOARDING ACTIVE PAUSED"`
	DriveLink    string `json:"drive_link" validate:"omitempty"`
	WhatsappLink string `json:"whatsapp_link" validate:"omitempty"`
	Notes        string `json:"notes" validate:"omitempty"`
	UserName     string `json:"user_name" validate:"omitempty"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=6"`
}

// DummyClientUpdate используется для приёма данных редактирования клиента.
type DummyClientUpdate struct {
	Name         string `json:"name" validate:"required"`
	Slug         string `json:"slug" validate:"required"`
	Plan         string `json:"plan" validate:"required,oneof=START PRO SCALE"`
	Status       string `json:"status" validate:"required,oneof=ONBOARDING ACTIVE PAUSED"`
	DriveLink    string `json:"drive_link" validate:"omitempty"`
	WhatsappLink string `json:"whatsapp_link" validate:"omitempty"`
	Notes        string `json:"notes" validate:"omitempty"`
}

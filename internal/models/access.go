package models

import "time"

// Access представляет сохранённый доступ к внешнему сервису клиента.
// Секрет хранится в открытом виде за интерфейсом secrets.Encoder —
// это осознанное ограничение системы, а не упущение.
type Access struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	ServiceName string    `json:"service_name"`
	ServiceURL  *string   `json:"service_url"`
	Login       string    `json:"login"`
	Password    string    `json:"password"`
	IconURL     *string   `json:"icon_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AccessWithClient расширяет Access данными клиента для админских списков.
type AccessWithClient struct {
	Access
	ClientName    string  `json:"client_name"`
	ClientSlug    string  `json:"client_slug"`
	ClientLogoURL *string `json:"client_logo_url"`
}

// DummyAccess используется для приёма данных создания или редактирования доступа.
type DummyAccess struct {
	ClientID    string `json:"client_id" validate:"required,uuid"`
	ServiceName string `json:"service_name" validate:"required"`
	ServiceURL  string `json:"service_url" validate:"omitempty"`
	Login       string `json:"login" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// DummyBulkAccesses используется для приёма запроса массового создания
// стандартного набора доступов (шаблоны ADB) для клиента.
type DummyBulkAccesses struct {
	ClientID string `json:"client_id" validate:"required,uuid"`
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AccessTemplate описывает один шаблон стандартного доступа.
type AccessTemplate struct {
	ServiceName string `json:"service_name"`
	ServiceURL  string `json:"service_url"`
	IconURL     string `json:"icon_url"`
}

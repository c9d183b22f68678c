package models

import "time"

// PlanUpgradeLink описывает настраиваемую кнопку повышения тарифа.
// LinkKey глобально уникален, портал ищет кнопку по ключу atendente_<план>.
type PlanUpgradeLink struct {
	ID          string    `json:"id"`
	LinkKey     string    `json:"link_key"`
	LinkURL     string    `json:"link_url"`
	Label       string    `json:"label"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DummyPlanUpgradeLink используется для приёма данных создания или
// редактирования кнопки повышения тарифа.
type DummyPlanUpgradeLink struct {
	LinkKey     string `json:"link_key" validate:"required"`
	LinkURL     string `json:"link_url" validate:"required,url"`
	Label       string `json:"label" validate:"required"`
	Description string `json:"description" validate:"omitempty"`
}

// PlanButton — ответ портала на запрос кнопки тарифа: URL и подпись.
type PlanButton struct {
	LinkURL string `json:"link_url"`
	Label   string `json:"label"`
}

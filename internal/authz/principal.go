package authz

import "github.com/nexusgrowth/client-portal/internal/models"

// TenantSnapshot — срез данных клиента, к которому привязан вызывающий.
// Загружается заново на каждый запрос (без кэширования), поэтому правки
// клиента видны со следующего запроса без какой-либо инвалидации.
type TenantSnapshot struct {
	ID        string  `json:"id"`
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	Plan      string  `json:"plan"`
	Status    string  `json:"status"`
	DriveLink *string `json:"drive_link"`
}

// Principal — разрешённая личность вызывающего для одного запроса.
type Principal struct {
	UserID string
	Name   string
	Email  string
	Role   Role
	// Tenant заполнен только для роли CLIENTE.
	Tenant *TenantSnapshot
}

// NewTenantSnapshot строит срез тенанта из доменной модели клиента.
func NewTenantSnapshot(c *models.Client) *TenantSnapshot {
	if c == nil {
		return nil
	}
	return &TenantSnapshot{
		ID:        c.ID,
		Slug:      c.Slug,
		Name:      c.Name,
		Plan:      c.Plan,
		Status:    c.Status,
		DriveLink: c.DriveLink,
	}
}

// CanViewTenant решает, может ли вызывающий видеть дашборд клиента с данным id.
// Сравнение идёт по id разрешённой записи клиента, а не по slug из URL:
// slug изменяем, и проверка по сырой строке разошлась бы с правами после
// переименования.
func (p *Principal) CanViewTenant(clientID string) bool {
	if p == nil {
		return false
	}
	if p.Role.CanViewAdminArea() {
		return true
	}
	return p.Role == RoleTenant && p.Tenant != nil && p.Tenant.ID == clientID
}

// OwnSlug возвращает slug собственного тенанта вызывающего (пустая строка,
// если привязки нет). Используется страницей 403, которая называет
// пользователю его корректный адрес.
func (p *Principal) OwnSlug() string {
	if p == nil || p.Tenant == nil {
		return ""
	}
	return p.Tenant.Slug
}

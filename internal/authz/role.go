// Package authz реализует модель доступа портала: закрытый набор ролей,
// набор независимых возможностей (capabilities) и проверку принадлежности
// к тенанту. Исторические строковые метки ролей (включая два синонима
// административной роли) переводятся в канонический тип только на границе
// ввода-вывода; внутри системы сравнение строк не используется.
package authz

import (
	"errors"

	"github.com/nexusgrowth/client-portal/internal/models"
)

// Role — каноническая роль пользователя.
type Role int

const (
	// RoleUnknown — нераспознанная метка роли.
	RoleUnknown Role = iota
	// RoleAdmin — платформенный администратор (полный доступ).
	RoleAdmin
	// RoleViewer — платформенный наблюдатель: чтение админки и редактор
	// карты операций, без мутаций пользователей и клиентов.
	RoleViewer
	// RoleTenant — пользователь клиента, видит только свой дашборд.
	RoleTenant
)

// ErrUnknownRole возвращается при нераспознанной метке роли.
var ErrUnknownRole = errors.New("unknown role label")

// ParseRole переводит внешнюю метку роли в каноническую.
// Метки "ADMIN" и "Administrador" — синонимы администратора.
func ParseRole(label string) (Role, error) {
	switch label {
	case models.RoleLabelAdmin, models.RoleLabelAdminAlias:
		return RoleAdmin, nil
	case models.RoleLabelViewer:
		return RoleViewer, nil
	case models.RoleLabelClient, "Cliente":
		return RoleTenant, nil
	}
	return RoleUnknown, ErrUnknownRole
}

// Label возвращает каноническую внешнюю метку роли.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return models.RoleLabelAdmin
	case RoleViewer:
		return models.RoleLabelViewer
	case RoleTenant:
		return models.RoleLabelClient
	default:
		return ""
	}
}

// RequiresTenant сообщает, обязана ли роль иметь привязку к клиенту.
// Инвариант системы: административные роли без привязки, CLIENTE — ровно с одной.
func (r Role) RequiresTenant() bool {
	return r == RoleTenant
}

// CanViewAdminArea — право видеть админские ресурсы (чтение).
func (r Role) CanViewAdminArea() bool {
	return r == RoleAdmin || r == RoleViewer
}

// CanMutateAdminResource — право изменять админские ресурсы
// (пользователи, клиенты, доступы, кнопки тарифов). Только администратор:
// наблюдатель получает строго более узкий набор прав, и это две независимые
// проверки, а не иерархия ролей.
func (r Role) CanMutateAdminResource() bool {
	return r == RoleAdmin
}

// CanEditOperationMap — право редактировать карту операций.
// У наблюдателя оно есть, несмотря на отсутствие общего права мутаций.
func (r Role) CanEditOperationMap() bool {
	return r == RoleAdmin || r == RoleViewer
}

// CanWriteWeeklyReports — право создавать и редактировать еженедельные отчёты.
func (r Role) CanWriteWeeklyReports() bool {
	return r == RoleAdmin || r == RoleViewer
}

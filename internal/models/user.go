package models

import "time"

// Внешние метки ролей, принимаемые на границе API. Две формы записи
// администратора являются синонимами и сводятся к одной канонической роли
// в пакете authz.
const (
	RoleLabelAdmin      = "ADMIN"
	RoleLabelAdminAlias = "Administrador"
	RoleLabelViewer     = "Nexus Growth"
	RoleLabelClient     = "CLIENTE"
)

// User представляет учётную запись портала. Инвариант: пользователь с
// административной ролью не имеет привязки к клиенту (ClientID == nil),
// пользователь с ролью CLIENTE привязан ровно к одному клиенту.
type User struct {
	ID           string    `json:"id"`
	ClientID     *string   `json:"client_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	RoleID       *string   `json:"role_id"`
	AvatarURL    *string   `json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DummyUser используется для приёма данных создания пользователя.
type DummyUser struct {
	ClientID string `json:"client_id" validate:"omitempty,uuid"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required"`
}

// DummyUserUpdate используется для приёма данных редактирования пользователя.
// Пустой Password означает "пароль не менять".
type DummyUserUpdate struct {
	ClientID string `json:"client_id" validate:"omitempty,uuid"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Role     string `json:"role" validate:"required"`
}

// DummyLogin используется для приёма данных входа.
type DummyLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// DummyChangePassword используется для приёма данных смены пароля.
// Смена выполняется только после проверки текущего пароля.
type DummyChangePassword struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// Role описывает запись справочника ролей.
type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// Permission описывает право роли на ресурс.
type Permission struct {
	ID       string `json:"id"`
	RoleID   string `json:"role_id"`
	Resource string `json:"resource"`
	CanView  bool   `json:"can_view"`
	CanEdit  bool   `json:"can_edit"`
}

package models

import "time"

// Notice представляет уведомление для клиента. ClientID == nil означает
// широковещательное уведомление для всех клиентов. Поля повторения —
// только метаданные: ни один процесс в системе не выполняет повторную
// отправку, NextSendAt вычисляется в момент записи.
type Notice struct {
	ID             string     `json:"id"`
	ClientID       *string    `json:"client_id"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Priority       string     `json:"priority"`
	IsRecurring    bool       `json:"is_recurring"`
	RecurrenceDays *int       `json:"recurrence_days"`
	IsActive       bool       `json:"is_active"`
	NextSendAt     *time.Time `json:"next_send_at"`
	LastSentAt     *time.Time `json:"last_sent_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

// DummyNotice используется для приёма данных создания или редактирования уведомления.
// IsActive == nil означает "активно": поле нужно, чтобы отключать уведомление,
// не удаляя его.
type DummyNotice struct {
	ClientID       string `json:"client_id" validate:"omitempty,uuid"`
	Title          string `json:"title" validate:"required"`
	Message        string `json:"message" validate:"required"`
	Priority       string `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	IsRecurring    bool   `json:"is_recurring"`
	RecurrenceDays int    `json:"recurrence_days" validate:"omitempty,gt=0"`
	IsActive       *bool  `json:"is_active"`
}

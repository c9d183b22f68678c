// Package info реализует HTTP-обработчик карточки клиента на его дашборде.
// Внутренние заметки агентства в ответ не попадают.
package info

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nexusgrowth/client-portal/internal/http/middlewarectx"
	"github.com/nexusgrowth/client-portal/internal/http/response"
)

// Handler управляет HTTP-запросами на карточку клиента.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// clientInfo — публичный срез данных клиента без внутренних полей.
type clientInfo struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Plan         string    `json:"plan"`
	Status       string    `json:"status"`
	LogoURL      *string   `json:"logo_url"`
	DriveLink    *string   `json:"drive_link"`
	WhatsappLink *string   `json:"whatsapp_link"`
	CreatedAt    time.Time `json:"created_at"`
}

// ServeHTTP godoc
// @Summary Карточка клиента
// @Description Возвращает публичные данные клиента для его дашборда.
// @Tags Portal
// @Produce json
// @Param slug path string true "Slug дашборда"
// @Success 200 {object} response.Response "Данные клиента"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 403 {object} response.ErrorResponse "Чужой дашборд"
// @Failure 404 {object} response.ErrorResponse "Дашборд не найден"
// @Router /dashboards/{slug} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.portal.info"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	client, ok := middlewarectx.Tenant(r.Context())
	if !ok {
		log.Error("tenant missing from context")
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	render.JSON(w, r, response.OKWithData(clientInfo{
		ID:           client.ID,
		Name:         client.Name,
		Slug:         client.Slug,
		Plan:         client.Plan,
		Status:       client.Status,
		LogoURL:      client.LogoURL,
		DriveLink:    client.DriveLink,
		WhatsappLink: client.WhatsappLink,
		CreatedAt:    client.CreatedAt,
	}))
}

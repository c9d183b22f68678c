// Package notices реализует HTTP-обработчик уведомлений клиента на его
// дашборде. Клиент видит свои уведомления и широковещательные.
package notices

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nexusgrowth/client-portal/internal/http/middlewarectx"
	"github.com/nexusgrowth/client-portal/internal/http/response"
	"github.com/nexusgrowth/client-portal/internal/lib/sl"
	"github.com/nexusgrowth/client-portal/internal/models"
)

// Handler управляет HTTP-запросами на уведомления клиента.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики уведомлений клиента.
type Service interface {
	ListForClient(ctx context.Context, clientID string) ([]models.Notice, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Уведомления клиента
// @Description Возвращает активные уведомления клиента, включая широковещательные.
// @Tags Portal
// @Produce json
// @Param slug path string true "Slug дашборда"
// @Success 200 {object} response.Response "Список уведомлений"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 403 {object} response.ErrorResponse "Чужой дашборд"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /dashboards/{slug}/notices [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.portal.notices"
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

	notices, err := h.service.ListForClient(r.Context(), client.ID)
	if err != nil {
		log.Error("failed to list client notices", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list notices"))
		return
	}

	render.JSON(w, r, response.OKWithData(notices))
}

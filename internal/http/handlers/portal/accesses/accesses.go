// Package accesses реализует HTTP-обработчик списка доступов клиента на его
// дашборде. Секреты отдаются в расшифрованном виде.
package accesses

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

// Handler управляет HTTP-запросами на доступы клиента.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики доступов клиента.
type Service interface {
	ListForClient(ctx context.Context, clientID string) ([]models.Access, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Доступы клиента
// @Description Возвращает доступы к внешним сервисам, принадлежащие клиенту.
// @Tags Portal
// @Produce json
// @Param slug path string true "Slug дашборда"
// @Success 200 {object} response.Response "Список доступов"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 403 {object} response.ErrorResponse "Чужой дашборд"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /dashboards/{slug}/accesses [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.portal.accesses"
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

	accesses, err := h.service.ListForClient(r.Context(), client.ID)
	if err != nil {
		log.Error("failed to list client accesses", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list accesses"))
		return
	}

	render.JSON(w, r, response.OKWithData(accesses))
}

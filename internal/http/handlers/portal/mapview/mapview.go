// Package mapview реализует HTTP-обработчик карты операций клиента на его
// дашборде. Показываются только шаги, доступные на тарифе клиента.
package mapview

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nexusgrowth/client-portal/internal/http/middlewarectx"
	"github.com/nexusgrowth/client-portal/internal/http/response"
	"github.com/nexusgrowth/client-portal/internal/lib/sl"
	"github.com/nexusgrowth/client-portal/internal/services/operationmap"
)

// Handler управляет HTTP-запросами на карту операций клиента.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики карты операций.
type Service interface {
	Map(ctx context.Context, clientID string) ([]operationmap.MapEntry, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Карта операций клиента
// @Description Возвращает шаги тарифа клиента вместе с прогрессом по каждому.
// @Tags Portal
// @Produce json
// @Param slug path string true "Slug дашборда"
// @Success 200 {object} response.Response "Шаги с прогрессом"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 403 {object} response.ErrorResponse "Чужой дашборд"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /dashboards/{slug}/operation-map [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.portal.mapview"
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

	entries, err := h.service.Map(r.Context(), client.ID)
	if err != nil {
		log.Error("failed to build operation map", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not build operation map"))
		return
	}

	render.JSON(w, r, response.OKWithData(entries))
}

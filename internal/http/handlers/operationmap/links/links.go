// Package links реализует HTTP-обработчик материалов, привязанных к шагам
// карты операций.
package links

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nexusgrowth/client-portal/internal/http/response"
	"github.com/nexusgrowth/client-portal/internal/lib/sl"
	"github.com/nexusgrowth/client-portal/internal/models"
)

// Handler управляет HTTP-запросами на материалы шагов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики материалов шагов.
type Service interface {
	StepLinks(ctx context.Context) ([]models.StepLink, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Материалы шагов
// @Description Возвращает ссылки (материалы), привязанные к шагам карты операций.
// @Tags OperationMap
// @Produce json
// @Success 200 {object} response.Response "Список материалов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/operation-map/links [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.operationmap.links"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	links, err := h.service.StepLinks(r.Context())
	if err != nil {
		log.Error("failed to list step links", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list step links"))
		return
	}

	render.JSON(w, r, response.OKWithData(links))
}

// Package list реализует HTTP-обработчик списка кнопок повышения тарифа.
package list

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

// Handler управляет HTTP-запросами на чтение кнопок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка кнопок.
type Service interface {
	List(ctx context.Context) ([]models.PlanUpgradeLink, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список кнопок тарифов
// @Description Возвращает все настраиваемые кнопки повышения тарифа.
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Response "Список кнопок"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/plan-links [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.planlink.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	links, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list plan links", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list plan links"))
		return
	}

	render.JSON(w, r, response.OKWithData(links))
}

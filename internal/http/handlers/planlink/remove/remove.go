// Package remove реализует HTTP-обработчик удаления кнопки повышения тарифа.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nexusgrowth/client-portal/internal/http/response"
	"github.com/nexusgrowth/client-portal/internal/lib/sl"
)

// Handler управляет HTTP-запросами на удаление кнопок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления кнопки.
type Service interface {
	Delete(ctx context.Context, id string) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить кнопку тарифа
// @Description Удаляет кнопку повышения тарифа по её идентификатору.
// @Tags Settings
// @Produce json
// @Param id path string true "ID кнопки"
// @Success 200 {object} response.Response "Кнопка удалена"
// @Failure 404 {object} response.ErrorResponse "Кнопка не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/plan-links/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.planlink.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	n, err := h.service.Delete(r.Context(), id)
	if err != nil {
		log.Error("failed to delete plan link", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete plan link"))
		return
	}
	if n == 0 {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("plan link not found"))
		return
	}

	log.Info("plan link deleted", slog.String("id", id))
	render.JSON(w, r, response.OK())
}

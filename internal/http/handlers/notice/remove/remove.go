// Package remove реализует HTTP-обработчик удаления уведомления.
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

// Handler управляет HTTP-запросами на удаление уведомлений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления уведомления.
type Service interface {
	Delete(ctx context.Context, id string) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить уведомление
// @Description Удаляет уведомление.
// @Tags Notices
// @Produce json
// @Param id path string true "ID уведомления"
// @Success 200 {object} response.Response "Число удалённых записей"
// @Failure 404 {object} response.ErrorResponse "Уведомление не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/notices/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.notice.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	n, err := h.service.Delete(r.Context(), id)
	if err != nil {
		log.Error("failed to delete notice", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete notice"))
		return
	}
	if n == 0 {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("notice not found"))
		return
	}

	log.Info("notice deleted", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{"deleted": n}))
}

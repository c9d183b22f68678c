// Package remove реализует HTTP-обработчик удаления еженедельного отчёта.
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

// Handler управляет HTTP-запросами на удаление отчётов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления отчёта.
type Service interface {
	Delete(ctx context.Context, id string) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить отчёт
// @Description Удаляет еженедельный отчёт.
// @Tags Reports
// @Produce json
// @Param id path string true "ID отчёта"
// @Success 200 {object} response.Response "Число удалённых записей"
// @Failure 404 {object} response.ErrorResponse "Отчёт не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/reports/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	n, err := h.service.Delete(r.Context(), id)
	if err != nil {
		log.Error("failed to delete report", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete report"))
		return
	}
	if n == 0 {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("report not found"))
		return
	}

	log.Info("report deleted", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{"deleted": n}))
}

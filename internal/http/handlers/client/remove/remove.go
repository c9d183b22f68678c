// Package remove реализует HTTP-обработчик удаления клиента. Вместе с
// клиентом каскадом схемы удаляются его пользователи, доступы, уведомления,
// отчёты и прогресс по шагам.
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

// Handler управляет HTTP-запросами на удаление клиентов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления клиента.
type Service interface {
	Delete(ctx context.Context, id string) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить клиента
// @Description Удаляет клиента и все его дочерние записи.
// @Tags Clients
// @Produce json
// @Param id path string true "ID клиента"
// @Success 200 {object} response.Response "Число удалённых записей"
// @Failure 404 {object} response.ErrorResponse "Клиент не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/clients/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	n, err := h.service.Delete(r.Context(), id)
	if err != nil {
		log.Error("failed to delete client", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete client"))
		return
	}
	if n == 0 {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("client not found"))
		return
	}

	log.Info("client deleted", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{"deleted": n}))
}

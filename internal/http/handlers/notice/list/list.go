// Package list реализует HTTP-обработчик списка уведомлений для админки.
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

// Handler управляет HTTP-запросами на список уведомлений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка уведомлений.
type Service interface {
	List(ctx context.Context) ([]models.Notice, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список уведомлений
// @Description Возвращает все уведомления, адресные и широковещательные.
// @Tags Notices
// @Produce json
// @Success 200 {object} response.Response "Список уведомлений"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/notices [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.notice.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	notices, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list notices", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list notices"))
		return
	}

	render.JSON(w, r, response.OKWithData(notices))
}

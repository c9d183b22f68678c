// Package list реализует HTTP-обработчик списка доступов для админки.
// Необязательный query-параметр client_id сужает выборку до одного клиента.
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

// Handler управляет HTTP-запросами на список доступов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка доступов.
type Service interface {
	List(ctx context.Context, clientID *string) ([]models.AccessWithClient, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список доступов
// @Description Возвращает доступы с данными клиентов. Параметр client_id сужает выборку.
// @Tags Accesses
// @Produce json
// @Param client_id query string false "ID клиента"
// @Success 200 {object} response.Response "Список доступов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/accesses [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.access.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var clientID *string
	if v := r.URL.Query().Get("client_id"); v != "" {
		clientID = &v
	}

	accesses, err := h.service.List(r.Context(), clientID)
	if err != nil {
		log.Error("failed to list accesses", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list accesses"))
		return
	}

	render.JSON(w, r, response.OKWithData(accesses))
}

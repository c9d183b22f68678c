// Package progress реализует HTTP-обработчик чтения карты операций клиента
// для админки: шаги, доступные на тарифе клиента, вместе с прогрессом.
package progress

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nexusgrowth/client-portal/internal/http/response"
	"github.com/nexusgrowth/client-portal/internal/lib/sl"
	"github.com/nexusgrowth/client-portal/internal/services/operationmap"
	"github.com/nexusgrowth/client-portal/internal/storage"
)

// Handler управляет HTTP-запросами на чтение карты операций.
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
// @Description Возвращает шаги, доступные на тарифе клиента, вместе с текущим прогрессом.
// @Tags OperationMap
// @Produce json
// @Param clientID path string true "ID клиента"
// @Success 200 {object} response.Response "Шаги с прогрессом"
// @Failure 404 {object} response.ErrorResponse "Клиент не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/operation-map/{clientID} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.operationmap.progress"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	clientID := chi.URLParam(r, "clientID")
	entries, err := h.service.Map(r.Context(), clientID)
	if errors.Is(err, storage.ErrNotFound) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("client not found"))
		return
	}
	if err != nil {
		log.Error("failed to read operation map", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read operation map"))
		return
	}

	render.JSON(w, r, response.OKWithData(entries))
}

// Package update реализует HTTP-обработчик редактирования доступа.
package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/nexusgrowth/client-portal/internal/http/response"
	"github.com/nexusgrowth/client-portal/internal/lib/sl"
	"github.com/nexusgrowth/client-portal/internal/models"
)

// Handler управляет HTTP-запросами на редактирование доступов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики редактирования доступа.
type Service interface {
	Update(ctx context.Context, id string, req models.DummyAccess) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить доступ
// @Description Обновляет данные доступа клиента к внешнему сервису.
// @Tags Accesses
// @Accept json
// @Produce json
// @Param id path string true "ID доступа"
// @Param request body models.DummyAccess true "Новые данные доступа"
// @Success 200 {object} response.Response "Число изменённых записей"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Доступ не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/accesses/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.access.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyAccess
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	id := chi.URLParam(r, "id")
	n, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		log.Error("failed to update access", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update access"))
		return
	}
	if n == 0 {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("access not found"))
		return
	}

	log.Info("access updated", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{"updated": n}))
}

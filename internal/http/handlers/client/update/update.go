// Package update реализует HTTP-обработчик редактирования клиента.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/nexusgrowth/client-portal/internal/http/response"
	"github.com/nexusgrowth/client-portal/internal/lib/sl"
	"github.com/nexusgrowth/client-portal/internal/models"
	clientservice "github.com/nexusgrowth/client-portal/internal/services/client"
	"github.com/nexusgrowth/client-portal/internal/storage"
)

// Handler управляет HTTP-запросами на редактирование клиентов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики редактирования клиента.
type Service interface {
	Update(ctx context.Context, id string, upd models.DummyClientUpdate) (int, error)
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
// @Summary Обновить клиента
// @Description Обновляет данные клиента. Slug нормализуется перед записью.
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path string true "ID клиента"
// @Param request body models.DummyClientUpdate true "Новые данные клиента"
// @Success 200 {object} response.Response "Число изменённых записей"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или пустой slug"
// @Failure 404 {object} response.ErrorResponse "Клиент не найден"
// @Failure 409 {object} response.ErrorResponse "Slug уже занят"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/clients/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyClientUpdate
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
	switch {
	case errors.Is(err, clientservice.ErrEmptySlug):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("slug is empty after normalization"))
		return
	case errors.Is(err, storage.ErrDuplicate):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.Error("slug already in use"))
		return
	case err != nil:
		log.Error("failed to update client", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update client"))
		return
	}
	if n == 0 {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("client not found"))
		return
	}

	log.Info("client updated", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{"updated": n}))
}

// Package update реализует HTTP-обработчик редактирования пользователя.
// Пустой пароль в запросе оставляет текущий хэш нетронутым.
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

	"github.com/nexusgrowth/client-portal/internal/authz"
	"github.com/nexusgrowth/client-portal/internal/http/response"
	"github.com/nexusgrowth/client-portal/internal/lib/sl"
	"github.com/nexusgrowth/client-portal/internal/models"
	userservice "github.com/nexusgrowth/client-portal/internal/services/user"
	"github.com/nexusgrowth/client-portal/internal/storage"
)

// Handler управляет HTTP-запросами на редактирование пользователей.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики редактирования пользователя.
type Service interface {
	Update(ctx context.Context, id string, req models.DummyUserUpdate) (int, error)
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
// @Summary Обновить пользователя
// @Description Обновляет данные пользователя. Пустой пароль оставляет текущий без изменений.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "ID пользователя"
// @Param request body models.DummyUserUpdate true "Новые данные пользователя"
// @Success 200 {object} response.Response "Число изменённых записей"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или нарушение правил роли"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 409 {object} response.ErrorResponse "Email уже занят"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/users/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyUserUpdate
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
	case errors.Is(err, userservice.ErrTenantWithoutClient):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("client user requires client_id"))
		return
	case errors.Is(err, authz.ErrUnknownRole):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("unknown role"))
		return
	case errors.Is(err, storage.ErrDuplicate):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.Error("email already in use"))
		return
	case err != nil:
		log.Error("failed to update user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update user"))
		return
	}
	if n == 0 {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	}

	log.Info("user updated", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{"updated": n}))
}

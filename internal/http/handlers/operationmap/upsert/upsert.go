// Package upsert реализует HTTP-обработчик записи прогресса по шагу карты
// операций. Пара (client_id, step_id) уникальна: повторная запись обновляет
// существующую строку.
package upsert

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/nexusgrowth/client-portal/internal/http/response"
	"github.com/nexusgrowth/client-portal/internal/lib/sl"
	"github.com/nexusgrowth/client-portal/internal/models"
	"github.com/nexusgrowth/client-portal/internal/services/operationmap"
	"github.com/nexusgrowth/client-portal/internal/steps"
	"github.com/nexusgrowth/client-portal/internal/storage"
)

// Handler управляет HTTP-запросами на запись прогресса по шагам.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики записи прогресса.
type Service interface {
	Upsert(ctx context.Context, req models.DummyStepProgress) (*models.StepProgress, error)
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
// @Summary Записать прогресс по шагу
// @Description Вставляет или обновляет статус шага для клиента. Шаг должен быть доступен на тарифе клиента.
// @Tags OperationMap
// @Accept json
// @Produce json
// @Param request body models.DummyStepProgress true "Клиент, шаг и новый статус"
// @Success 200 {object} response.Response "Итоговая запись прогресса"
// @Failure 400 {object} response.ErrorResponse "Неизвестный шаг, шаг вне тарифа или запрещённый переход"
// @Failure 404 {object} response.ErrorResponse "Клиент не найден"
// @Failure 409 {object} response.ErrorResponse "Переход статуса запрещён политикой"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/operation-map [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.operationmap.upsert"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyStepProgress
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

	result, err := h.service.Upsert(r.Context(), req)
	switch {
	case errors.Is(err, operationmap.ErrUnknownStep):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("unknown step"))
		return
	case errors.Is(err, operationmap.ErrStepNotInPlan):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("step is not available on client plan"))
		return
	case errors.Is(err, steps.ErrForbiddenTransition):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.Error("status transition is not allowed"))
		return
	case errors.Is(err, storage.ErrNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("client not found"))
		return
	case err != nil:
		log.Error("failed to upsert step progress", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not save step progress"))
		return
	}

	log.Info("step progress saved",
		slog.String("client_id", req.ClientID),
		slog.String("step_id", req.StepID),
		slog.String("status", req.Status))
	render.JSON(w, r, response.OKWithData(result))
}

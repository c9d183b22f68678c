// Package bulk реализует HTTP-обработчик массового создания стандартного
// набора доступов для клиента с общей парой логин/пароль.
package bulk

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/nexusgrowth/client-portal/internal/http/response"
	"github.com/nexusgrowth/client-portal/internal/lib/sl"
	"github.com/nexusgrowth/client-portal/internal/models"
)

// Handler управляет HTTP-запросами на массовое создание доступов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики массового создания доступов.
type Service interface {
	CreateBulk(ctx context.Context, req models.DummyBulkAccesses) ([]string, error)
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
// @Summary Создать стандартный набор доступов
// @Description Создает для клиента стандартный набор доступов к рекламным сервисам с общей парой логин/пароль.
// @Tags Accesses
// @Accept json
// @Produce json
// @Param request body models.DummyBulkAccesses true "Клиент и общая пара логин/пароль"
// @Success 200 {object} response.Response "ID созданных доступов"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/accesses/bulk [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.access.bulk"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyBulkAccesses
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

	ids, err := h.service.CreateBulk(r.Context(), req)
	if err != nil {
		log.Error("failed to create bulk accesses", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create accesses"))
		return
	}

	log.Info("bulk accesses created", slog.Int("count", len(ids)))
	render.JSON(w, r, response.OKWithData(map[string]any{"ids": ids}))
}

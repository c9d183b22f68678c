// Package create реализует HTTP-обработчик создания клиента.
//
// Вместе с клиентом в одной транзакции создаётся стартовый пользователь
// с ролью CLIENTE: сбой на любом шаге не оставляет клиента без учётной
// записи для входа.
package create

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
	clientservice "github.com/nexusgrowth/client-portal/internal/services/client"
	"github.com/nexusgrowth/client-portal/internal/storage"
)

// Handler управляет HTTP-запросами на создание клиентов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания клиента.
type Service interface {
	Create(ctx context.Context, req models.DummyClient) (string, error)
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
// @Summary Создать клиента
// @Description Создает клиента и его стартового пользователя в одной транзакции. Slug выводится из имени, если не передан.
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body models.DummyClient true "Данные нового клиента"
// @Success 200 {object} response.Response "ID созданного клиента"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или пустой slug"
// @Failure 409 {object} response.ErrorResponse "Slug или email уже занят"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/clients [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyClient
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

	id, err := h.service.Create(r.Context(), req)
	switch {
	case errors.Is(err, clientservice.ErrEmptySlug):
		log.Info("empty slug after normalization")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("slug is empty after normalization"))
		return
	case errors.Is(err, storage.ErrDuplicate):
		log.Info("duplicate slug or email")
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.Error("slug or email already in use"))
		return
	case err != nil:
		log.Error("failed to create client", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create client"))
		return
	}

	log.Info("client created", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{"id": id}))
}

// Package roles реализует HTTP-обработчик справочника ролей с правами.
package roles

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

// Handler управляет HTTP-запросами на справочник ролей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики справочника ролей.
type Service interface {
	Roles(ctx context.Context) ([]models.Role, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Справочник ролей
// @Description Возвращает роли портала вместе с их правами на ресурсы.
// @Tags Users
// @Produce json
// @Success 200 {object} response.Response "Список ролей"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/roles [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.roles"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	roles, err := h.service.Roles(r.Context())
	if err != nil {
		log.Error("failed to list roles", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list roles"))
		return
	}

	render.JSON(w, r, response.OKWithData(roles))
}

// Package planbutton реализует HTTP-обработчик кнопки повышения тарифа на
// дашборде клиента. При отсутствии настроенной кнопки отдаётся запасной
// вариант со ссылкой на WhatsApp.
package planbutton

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nexusgrowth/client-portal/internal/http/middlewarectx"
	"github.com/nexusgrowth/client-portal/internal/http/response"
	"github.com/nexusgrowth/client-portal/internal/lib/sl"
	"github.com/nexusgrowth/client-portal/internal/models"
)

// Handler управляет HTTP-запросами на кнопку тарифа.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики кнопки тарифа.
type Service interface {
	ButtonForPlan(ctx context.Context, plan string) (*models.PlanButton, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Кнопка тарифа клиента
// @Description Возвращает кнопку повышения тарифа для тарифа клиента.
// @Tags Portal
// @Produce json
// @Param slug path string true "Slug дашборда"
// @Success 200 {object} response.Response "Кнопка тарифа"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 403 {object} response.ErrorResponse "Чужой дашборд"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /dashboards/{slug}/plan-button [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.portal.planbutton"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	client, ok := middlewarectx.Tenant(r.Context())
	if !ok {
		log.Error("tenant missing from context")
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	button, err := h.service.ButtonForPlan(r.Context(), client.Plan)
	if err != nil {
		log.Error("failed to resolve plan button", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not resolve plan button"))
		return
	}

	render.JSON(w, r, response.OKWithData(button))
}

// Package list реализует HTTP-обработчик списка еженедельных отчётов.
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

// Handler управляет HTTP-запросами на список отчётов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка отчётов.
type Service interface {
	List(ctx context.Context) ([]models.WeeklyReportWithClient, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список отчётов
// @Description Возвращает все еженедельные отчёты с данными клиентов.
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Response "Список отчётов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/reports [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	reports, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list reports", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list reports"))
		return
	}

	render.JSON(w, r, response.OKWithData(reports))
}

// Package icon реализует HTTP-обработчик замены иконки доступа.
// Файл приходит multipart-формой в поле file.
package icon

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nexusgrowth/client-portal/internal/http/response"
	"github.com/nexusgrowth/client-portal/internal/lib/sl"
)

// Максимальный размер загружаемого изображения.
const maxUploadSize = 5 << 20

// Handler управляет HTTP-запросами на замену иконки доступа.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики замены иконки.
type Service interface {
	ReplaceIcon(ctx context.Context, id, filename string, r io.Reader) (string, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Заменить иконку доступа
// @Description Загружает новую иконку сервиса. Старый файл удаляется после замены.
// @Tags Accesses
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID доступа"
// @Param file formData file true "Файл иконки"
// @Success 200 {object} response.Response "URL новой иконки"
// @Failure 400 {object} response.ErrorResponse "Файл отсутствует или слишком велик"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/accesses/{id}/icon [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.access.icon"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Error("file field missing", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("file is required"))
		return
	}
	defer file.Close()

	id := chi.URLParam(r, "id")
	url, err := h.service.ReplaceIcon(r.Context(), id, header.Filename, file)
	if err != nil {
		log.Error("failed to replace icon", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not replace icon"))
		return
	}

	log.Info("icon replaced", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{"icon_url": url}))
}

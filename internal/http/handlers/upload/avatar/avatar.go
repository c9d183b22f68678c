// Package avatar реализует HTTP-обработчик замены аватара пользователя.
// Файл приходит multipart-формой в поле file.
package avatar

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

// Handler управляет HTTP-запросами на замену аватара.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики замены аватара.
type Service interface {
	ReplaceAvatar(ctx context.Context, userID, filename string, r io.Reader) (string, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Заменить аватар пользователя
// @Description Загружает новый аватар. Старый файл удаляется после замены.
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID пользователя"
// @Param file formData file true "Файл изображения"
// @Success 200 {object} response.Response "URL нового аватара"
// @Failure 400 {object} response.ErrorResponse "Файл отсутствует или слишком велик"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/users/{id}/avatar [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.upload.avatar"
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
	url, err := h.service.ReplaceAvatar(r.Context(), id, header.Filename, file)
	if err != nil {
		log.Error("failed to replace avatar", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not replace avatar"))
		return
	}

	log.Info("avatar replaced", slog.String("user_id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{"avatar_url": url}))
}

// Package logout реализует HTTP-обработчик выхода из портала.
//
// Handler удаляет серверную сессию по токену из куки и гасит саму куку.
// Выход без действующей сессии не является ошибкой.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nexusgrowth/client-portal/internal/http/response"
	"github.com/nexusgrowth/client-portal/internal/lib/sl"
)

// Handler управляет HTTP-запросами на выход.
type Handler struct {
	log        *slog.Logger
	sessions   SessionDestroyer
	cookieName string
}

// SessionDestroyer описывает интерфейс удаления сессии.
type SessionDestroyer interface {
	Destroy(ctx context.Context, token string) error
}

// New создает новый Handler.
func New(log *slog.Logger, sessions SessionDestroyer, cookieName string) *Handler {
	return &Handler{log: log, sessions: sessions, cookieName: cookieName}
}

// ServeHTTP godoc
// @Summary Выйти из портала
// @Description Удаляет серверную сессию и гасит сессионную куку.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response "Успешный выход"
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if cookie, err := r.Cookie(h.cookieName); err == nil {
		if err := h.sessions.Destroy(r.Context(), cookie.Value); err != nil {
			// Сессия истечёт по TTL сама; выход для клиента всё равно успешен.
			log.Error("failed to destroy session", sl.Err(err))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	render.JSON(w, r, response.OK())
}

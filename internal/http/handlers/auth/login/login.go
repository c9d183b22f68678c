// Package login реализует HTTP-обработчик входа в портал.
//
// Handler принимает JSON с email и паролем, проверяет пару через сервис
// аутентификации, создаёт серверную сессию и выставляет её токен в httpOnly-куку.
// Неверный email и неверный пароль дают одинаковый ответ 401.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/nexusgrowth/client-portal/internal/http/response"
	"github.com/nexusgrowth/client-portal/internal/lib/sl"
	"github.com/nexusgrowth/client-portal/internal/models"
	"github.com/nexusgrowth/client-portal/internal/services/auth"
)

// CookieOptions задаёт параметры сессионной куки.
type CookieOptions struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Handler управляет HTTP-запросами на вход.
type Handler struct {
	log      *slog.Logger
	service  Service
	sessions SessionCreator
	clients  ClientGetter
	cookie   CookieOptions
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// SessionCreator описывает интерфейс создания сессии.
type SessionCreator interface {
	Create(ctx context.Context, userID string) (string, error)
}

// ClientGetter описывает интерфейс загрузки клиента для ответа входа.
type ClientGetter interface {
	Get(ctx context.Context, id string) (*models.Client, error)
}

// New создает новый Handler с переданными логгером и сервисами.
func New(log *slog.Logger, service Service, sessions SessionCreator, clients ClientGetter, cookie CookieOptions) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		sessions: sessions,
		clients:  clients,
		cookie:   cookie,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Войти в портал
// @Description Проверяет email и пароль, создает сессию и выставляет httpOnly-куку.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.DummyLogin true "Данные входа"
// @Success 200 {object} response.Response "Успешный вход"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyLogin
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

	user, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		log.Info("invalid credentials", slog.String("email", req.Email))
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid email or password"))
		return
	}
	if err != nil {
		log.Error("failed to authenticate", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	token, err := h.sessions.Create(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to create session", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	data := map[string]any{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
	// Пользователю клиента сразу сообщается адрес его дашборда
	if user.ClientID != nil {
		client, err := h.clients.Get(r.Context(), *user.ClientID)
		if err != nil {
			log.Error("failed to load client for login response", sl.Err(err))
		} else {
			data["client_slug"] = client.Slug
		}
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	render.JSON(w, r, response.OKWithData(data))
}

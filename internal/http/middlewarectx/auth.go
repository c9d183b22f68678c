// Package middlewarectx содержит HTTP middleware портала: разрешение сессии
// в Principal, охрану админских маршрутов по возможностям роли, привязку
// дашборда к тенанту и ограничение частоты запросов.
//
// Сессионный токен непрозрачен: middleware всегда разрешает его через
// серверное хранилище, в куке нет ничего, чему можно было бы доверять.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nexusgrowth/client-portal/internal/authz"
	"github.com/nexusgrowth/client-portal/internal/http/response"
	"github.com/nexusgrowth/client-portal/internal/lib/sl"
	"github.com/nexusgrowth/client-portal/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// PrincipalKey — ключ Principal текущего запроса в контексте.
	PrincipalKey Key = "principal"
	// TenantKey — ключ клиента, чей дашборд обслуживает запрос.
	TenantKey Key = "tenant"
)

// SessionResolver описывает интерфейс хранилища сессий.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (string, bool, error)
}

// PrincipalResolver описывает интерфейс построения Principal по id пользователя.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, userID string) (*authz.Principal, error)
}

// Principal возвращает Principal текущего запроса из контекста.
func Principal(ctx context.Context) (*authz.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(*authz.Principal)
	return p, ok
}

// Tenant возвращает клиента, чей дашборд обслуживает запрос.
func Tenant(ctx context.Context) (*models.Client, bool) {
	c, ok := ctx.Value(TenantKey).(*models.Client)
	return c, ok
}

// SessionMiddleware возвращает middleware, которое разрешает сессионную куку
// в Principal и кладёт его в контекст. Отсутствующая, неизвестная или
// истёкшая сессия — это 401: все маршруты под этим middleware требуют входа.
func SessionMiddleware(sessions SessionResolver, resolver PrincipalResolver, cookieName string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			cookie, err := r.Cookie(cookieName)
			if err != nil {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			userID, ok, err := sessions.Resolve(r.Context(), cookie.Value)
			if err != nil {
				log.Error("failed to resolve session", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal error"))
				return
			}
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("session expired or invalid"))
				return
			}

			principal, err := resolver.ResolvePrincipal(r.Context(), userID)
			if err != nil {
				// Пользователь удалён или его роль нечитаема: сессия есть,
				// личности нет. Такой запрос эквивалентен анонимному.
				log.Error("failed to resolve principal", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("session expired or invalid"))
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

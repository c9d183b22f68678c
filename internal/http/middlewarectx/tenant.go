package middlewarectx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nexusgrowth/client-portal/internal/http/response"
	"github.com/nexusgrowth/client-portal/internal/lib/sl"
	"github.com/nexusgrowth/client-portal/internal/models"
	"github.com/nexusgrowth/client-portal/internal/storage"
)

// ClientResolver описывает интерфейс поиска клиента по slug.
type ClientResolver interface {
	GetBySlug(ctx context.Context, slug string) (*models.Client, error)
}

// TenantMiddleware возвращает middleware для маршрутов /dashboards/{slug}.
// Slug из URL разрешается в запись клиента (404, если такой нет), после чего
// права проверяются по id найденной записи. Пользователь клиента, открывший
// чужой дашборд, получает 403 с адресом собственного дашборда в сообщении.
func TenantMiddleware(clients ClientResolver, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.TenantMiddleware"
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			principal, ok := Principal(r.Context())
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			slug := chi.URLParam(r, "slug")
			client, err := clients.GetBySlug(r.Context(), slug)
			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("dashboard not found"))
				return
			}
			if err != nil {
				log.Error("failed to resolve dashboard slug", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal error"))
				return
			}

			if !principal.CanViewTenant(client.ID) {
				msg := "access denied"
				if own := principal.OwnSlug(); own != "" {
					msg = fmt.Sprintf("access denied: your dashboard is /dashboards/%s", own)
				}
				log.Info("cross-tenant access denied",
					slog.String("user_id", principal.UserID),
					slog.String("requested_slug", slug))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error(msg))
				return
			}

			ctx := context.WithValue(r.Context(), TenantKey, client)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

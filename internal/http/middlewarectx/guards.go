package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/nexusgrowth/client-portal/internal/authz"
	"github.com/nexusgrowth/client-portal/internal/http/response"
)

// requireCapability строит middleware, пропускающее запрос только если роль
// Principal обладает указанной возможностью. Пользователь клиента на админских
// маршрутах получает 401, как будто он не аутентифицирован вовсе: админка
// для него не существует.
func requireCapability(can func(authz.Role) bool, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := Principal(r.Context())
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}
			if !can(principal.Role) {
				log.Info("capability check failed",
					slog.String("user_id", principal.UserID),
					slog.String("path", r.URL.Path))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdminView пропускает роли с правом чтения админки (ADMIN и Nexus Growth).
func RequireAdminView(log *slog.Logger) func(http.Handler) http.Handler {
	return requireCapability(authz.Role.CanViewAdminArea, log)
}

// RequireAdminMutate пропускает только администратора.
func RequireAdminMutate(log *slog.Logger) func(http.Handler) http.Handler {
	return requireCapability(authz.Role.CanMutateAdminResource, log)
}

// RequireOperationMapEdit пропускает роли с правом редактировать карту операций.
func RequireOperationMapEdit(log *slog.Logger) func(http.Handler) http.Handler {
	return requireCapability(authz.Role.CanEditOperationMap, log)
}

// RequireReportWrite пропускает роли с правом писать еженедельные отчёты.
func RequireReportWrite(log *slog.Logger) func(http.Handler) http.Handler {
	return requireCapability(authz.Role.CanWriteWeeklyReports, log)
}

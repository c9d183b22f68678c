// Package portal собирает HTTP-приложение клиентского портала: админку
// и дашборды клиентов.
package portal

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/nexusgrowth/client-portal/internal/http/handlers/access/bulk"
	accesscreate "github.com/nexusgrowth/client-portal/internal/http/handlers/access/create"
	"github.com/nexusgrowth/client-portal/internal/http/handlers/access/icon"
	accesslist "github.com/nexusgrowth/client-portal/internal/http/handlers/access/list"
	accessremove "github.com/nexusgrowth/client-portal/internal/http/handlers/access/remove"
	accessupdate "github.com/nexusgrowth/client-portal/internal/http/handlers/access/update"
	"github.com/nexusgrowth/client-portal/internal/http/handlers/auth/changepassword"
	"github.com/nexusgrowth/client-portal/internal/http/handlers/auth/login"
	"github.com/nexusgrowth/client-portal/internal/http/handlers/auth/logout"
	clientcreate "github.com/nexusgrowth/client-portal/internal/http/handlers/client/create"
	clientlist "github.com/nexusgrowth/client-portal/internal/http/handlers/client/list"
	clientread "github.com/nexusgrowth/client-portal/internal/http/handlers/client/read"
	clientremove "github.com/nexusgrowth/client-portal/internal/http/handlers/client/remove"
	clientupdate "github.com/nexusgrowth/client-portal/internal/http/handlers/client/update"
	noticecreate "github.com/nexusgrowth/client-portal/internal/http/handlers/notice/create"
	noticelist "github.com/nexusgrowth/client-portal/internal/http/handlers/notice/list"
	noticeremove "github.com/nexusgrowth/client-portal/internal/http/handlers/notice/remove"
	noticeupdate "github.com/nexusgrowth/client-portal/internal/http/handlers/notice/update"
	"github.com/nexusgrowth/client-portal/internal/http/handlers/operationmap/links"
	"github.com/nexusgrowth/client-portal/internal/http/handlers/operationmap/progress"
	"github.com/nexusgrowth/client-portal/internal/http/handlers/operationmap/upsert"
	planlinkcreate "github.com/nexusgrowth/client-portal/internal/http/handlers/planlink/create"
	planlinklist "github.com/nexusgrowth/client-portal/internal/http/handlers/planlink/list"
	planlinkremove "github.com/nexusgrowth/client-portal/internal/http/handlers/planlink/remove"
	planlinkupdate "github.com/nexusgrowth/client-portal/internal/http/handlers/planlink/update"
	portalaccesses "github.com/nexusgrowth/client-portal/internal/http/handlers/portal/accesses"
	portalinfo "github.com/nexusgrowth/client-portal/internal/http/handlers/portal/info"
	portalmap "github.com/nexusgrowth/client-portal/internal/http/handlers/portal/mapview"
	portalnotices "github.com/nexusgrowth/client-portal/internal/http/handlers/portal/notices"
	portalplanbutton "github.com/nexusgrowth/client-portal/internal/http/handlers/portal/planbutton"
	portalreports "github.com/nexusgrowth/client-portal/internal/http/handlers/portal/reports"
	portalsteplinks "github.com/nexusgrowth/client-portal/internal/http/handlers/portal/steplinks"
	reportcreate "github.com/nexusgrowth/client-portal/internal/http/handlers/report/create"
	reportlist "github.com/nexusgrowth/client-portal/internal/http/handlers/report/list"
	reportremove "github.com/nexusgrowth/client-portal/internal/http/handlers/report/remove"
	reportupdate "github.com/nexusgrowth/client-portal/internal/http/handlers/report/update"
	"github.com/nexusgrowth/client-portal/internal/http/handlers/upload/avatar"
	"github.com/nexusgrowth/client-portal/internal/http/handlers/upload/logo"
	usercreate "github.com/nexusgrowth/client-portal/internal/http/handlers/user/create"
	userlist "github.com/nexusgrowth/client-portal/internal/http/handlers/user/list"
	userremove "github.com/nexusgrowth/client-portal/internal/http/handlers/user/remove"
	"github.com/nexusgrowth/client-portal/internal/http/handlers/user/roles"
	userupdate "github.com/nexusgrowth/client-portal/internal/http/handlers/user/update"
	"github.com/nexusgrowth/client-portal/internal/http/middlewarectx"
	accessservice "github.com/nexusgrowth/client-portal/internal/services/access"
	authservice "github.com/nexusgrowth/client-portal/internal/services/auth"
	clientservice "github.com/nexusgrowth/client-portal/internal/services/client"
	noticeservice "github.com/nexusgrowth/client-portal/internal/services/notice"
	mapservice "github.com/nexusgrowth/client-portal/internal/services/operationmap"
	reportservice "github.com/nexusgrowth/client-portal/internal/services/report"
	settingsservice "github.com/nexusgrowth/client-portal/internal/services/settings"
	uploadservice "github.com/nexusgrowth/client-portal/internal/services/upload"
	userservice "github.com/nexusgrowth/client-portal/internal/services/user"
	"github.com/nexusgrowth/client-portal/internal/session"
)

// Services объединяет бизнес-логику портала, необходимую маршрутам.
type Services struct {
	Auth     *authservice.Service
	Clients  *clientservice.Service
	Users    *userservice.Service
	Accesses *accessservice.Service
	Notices  *noticeservice.Service
	Reports  *reportservice.Service
	Map      *mapservice.Service
	Settings *settingsservice.Service
	Uploads  *uploadservice.Service
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, svc *Services, sessions *session.Store, cookie login.CookieOptions, limiter *rate.Limiter) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	withSession := middlewarectx.SessionMiddleware(sessions, svc.Auth, cookie.Name, logger)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/login", login.New(logger, svc.Auth, sessions, svc.Clients, cookie).ServeHTTP)
		r.Post("/logout", logout.New(logger, sessions, cookie.Name).ServeHTTP)

		// Действия авторизованного пользователя, доступные любой роли
		r.Group(func(r chi.Router) {
			r.Use(withSession)
			r.Post("/change-password", changepassword.New(logger, svc.Auth).ServeHTTP)
		})

		// Админка: видна только ролям агентства
		r.Route("/admin", func(r chi.Router) {
			r.Use(withSession)
			r.Use(middlewarectx.RequireAdminView(logger))
			r.Use(middlewarectx.RateLimitMiddleware(limiter, logger))

			r.Get("/clients", clientlist.New(logger, svc.Clients).ServeHTTP)
			r.Get("/clients/{id}", clientread.New(logger, svc.Clients).ServeHTTP)
			r.Get("/users", userlist.New(logger, svc.Users).ServeHTTP)
			r.Get("/roles", roles.New(logger, svc.Users).ServeHTTP)
			r.Get("/accesses", accesslist.New(logger, svc.Accesses).ServeHTTP)
			r.Get("/notices", noticelist.New(logger, svc.Notices).ServeHTTP)
			r.Get("/reports", reportlist.New(logger, svc.Reports).ServeHTTP)
			r.Get("/plan-links", planlinklist.New(logger, svc.Settings).ServeHTTP)
			r.Get("/operation-map/links", links.New(logger, svc.Map).ServeHTTP)
			r.Get("/operation-map/{clientID}", progress.New(logger, svc.Map).ServeHTTP)

			// Изменение сущностей: только полный администратор
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireAdminMutate(logger))

				r.Post("/clients", clientcreate.New(logger, svc.Clients).ServeHTTP)
				r.Put("/clients/{id}", clientupdate.New(logger, svc.Clients).ServeHTTP)
				r.Delete("/clients/{id}", clientremove.New(logger, svc.Clients).ServeHTTP)
				r.Post("/clients/{id}/logo", logo.New(logger, svc.Uploads).ServeHTTP)

				r.Post("/users", usercreate.New(logger, svc.Users).ServeHTTP)
				r.Put("/users/{id}", userupdate.New(logger, svc.Users).ServeHTTP)
				r.Delete("/users/{id}", userremove.New(logger, svc.Users).ServeHTTP)
				r.Post("/users/{id}/avatar", avatar.New(logger, svc.Uploads).ServeHTTP)

				r.Post("/accesses", accesscreate.New(logger, svc.Accesses).ServeHTTP)
				r.Post("/accesses/bulk", bulk.New(logger, svc.Accesses).ServeHTTP)
				r.Put("/accesses/{id}", accessupdate.New(logger, svc.Accesses).ServeHTTP)
				r.Delete("/accesses/{id}", accessremove.New(logger, svc.Accesses).ServeHTTP)
				r.Post("/accesses/{id}/icon", icon.New(logger, svc.Accesses).ServeHTTP)

				r.Post("/notices", noticecreate.New(logger, svc.Notices).ServeHTTP)
				r.Put("/notices/{id}", noticeupdate.New(logger, svc.Notices).ServeHTTP)
				r.Delete("/notices/{id}", noticeremove.New(logger, svc.Notices).ServeHTTP)

				r.Post("/plan-links", planlinkcreate.New(logger, svc.Settings).ServeHTTP)
				r.Put("/plan-links/{id}", planlinkupdate.New(logger, svc.Settings).ServeHTTP)
				r.Delete("/plan-links/{id}", planlinkremove.New(logger, svc.Settings).ServeHTTP)
			})

			// Отчёты пишет и команда Nexus Growth
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireReportWrite(logger))

				r.Post("/reports", reportcreate.New(logger, svc.Reports).ServeHTTP)
				r.Put("/reports/{id}", reportupdate.New(logger, svc.Reports).ServeHTTP)
				r.Delete("/reports/{id}", reportremove.New(logger, svc.Reports).ServeHTTP)
			})

			// Прогресс по шагам отмечает и команда Nexus Growth
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireOperationMapEdit(logger))

				r.Post("/operation-map", upsert.New(logger, svc.Map).ServeHTTP)
			})
		})

		// Дашборды клиентов: доступ по slug после разрешения прав
		r.Route("/dashboards/{slug}", func(r chi.Router) {
			r.Use(withSession)
			r.Use(middlewarectx.TenantMiddleware(svc.Clients, logger))

			r.Get("/", portalinfo.New(logger).ServeHTTP)
			r.Get("/accesses", portalaccesses.New(logger, svc.Accesses).ServeHTTP)
			r.Get("/notices", portalnotices.New(logger, svc.Notices).ServeHTTP)
			r.Get("/reports", portalreports.New(logger, svc.Reports).ServeHTTP)
			r.Get("/operation-map", portalmap.New(logger, svc.Map).ServeHTTP)
			r.Get("/step-links", portalsteplinks.New(logger, svc.Map).ServeHTTP)
			r.Get("/plan-button", portalplanbutton.New(logger, svc.Settings).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

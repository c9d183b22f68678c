package portal

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"golang.org/x/time/rate"

	"github.com/nexusgrowth/client-portal/internal/blob"
	"github.com/nexusgrowth/client-portal/internal/config"
	"github.com/nexusgrowth/client-portal/internal/http/handlers/auth/login"
	"github.com/nexusgrowth/client-portal/internal/migrations"
	"github.com/nexusgrowth/client-portal/internal/secrets"
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
	"github.com/nexusgrowth/client-portal/internal/steps"
	"github.com/nexusgrowth/client-portal/internal/storage"
)

// App инкапсулирует HTTP-сервер портала и его зависимости.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *storage.Storage
	sessions *session.Store
}

// New собирает приложение: подключает PostgreSQL и Redis, применяет
// миграции, создаёт сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	sessions, err := session.New(ctx, cfg.RedisConnection, cfg.Session.TTL)
	if err != nil {
		return nil, err
	}

	blobs, err := blob.NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.BaseURL)
	if err != nil {
		return nil, err
	}

	svc := &Services{
		Auth:     authservice.New(db, db),
		Clients:  clientservice.New(db),
		Users:    userservice.New(db),
		Accesses: accessservice.New(db, secrets.Noop{}, blobs),
		Notices:  noticeservice.New(db),
		Reports:  reportservice.New(db),
		Map:      mapservice.New(db, db, steps.AllowAll),
		Settings: settingsservice.New(db),
		Uploads:  uploadservice.New(db, db, blobs),
	}

	cookie := login.CookieOptions{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.SecureCookie,
	}
	limiter := rate.NewLimiter(rate.Limit(10), 30)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, svc, sessions, cookie, limiter)
	router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Uploads.Dir))))
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		if err := storage.CheckDatabaseReady(db); err != nil {
			http.Error(w, "database is not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		db:       db,
		sessions: sessions,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.sessions.Close()
		_ = a.db.Close()
		return err
	}
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/casadometal/vitrine/internal/gateway/http"
	"github.com/casadometal/vitrine/internal/gateway/service"
	"github.com/casadometal/vitrine/internal/gateway/store"
	"github.com/casadometal/vitrine/internal/gateway/store/drivers/sqlite"
	"github.com/casadometal/vitrine/internal/gateway/upstream"
	"github.com/casadometal/vitrine/pkg/cryptox"
	"github.com/casadometal/vitrine/pkg/httpx"
	"github.com/casadometal/vitrine/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application wires the storefront gateway together: the denylist store, the
// upstream GraphQL client, the services, and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	upstream *upstream.Client

	authService         *service.AuthService
	catalogService      *service.CatalogService
	contentService      *service.ContentService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "vitrine-gateway",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.upstream = upstream.New(cfg.GraphQLURL)
	if !app.upstream.Configured() {
		app.logger.Warn("GRAPHQL_URL not set, upstream calls will fail at first use")
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("storefront gateway starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down storefront gateway...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("storefront gateway stopped")
	return nil
}

// initDatabase opens the denylist database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes the business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Upstream: app.upstream,
		Denylist: app.db.DeniedTokens(),
	}
	app.catalogService = &service.CatalogService{Upstream: app.upstream}
	app.contentService = &service.ContentService{
		Upstream:         app.upstream,
		FallbackWhatsApp: app.cfg.WhatsAppNumber,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db.DeniedTokens(),
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.upstream, app.logger)

	router.AuthService = app.authService
	router.CatalogService = app.catalogService
	router.ContentService = app.contentService
	router.BasicAuth = app.basicAuthCredentials()
	router.SecureCookies = app.cfg.SecureCookies()
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// basicAuthCredentials normalizes the configured password into a PHC hash.
// A plaintext BASIC_AUTH_PASSWORD is hashed at startup so the comparison
// path is identical either way.
func (app *Application) basicAuthCredentials() httpx.BasicAuthCredentials {
	creds := httpx.BasicAuthCredentials{Username: app.cfg.BasicAuthUsername}

	switch {
	case app.cfg.BasicAuthPassword == "":
	case cryptox.IsPHCHash(app.cfg.BasicAuthPassword):
		creds.PasswordHash = app.cfg.BasicAuthPassword
	default:
		hash, err := cryptox.HashPassword(app.cfg.BasicAuthPassword)
		if err != nil {
			app.logger.Error("failed to hash basic auth password", "error", err)
			return httpx.BasicAuthCredentials{}
		}
		creds.PasswordHash = hash
	}

	return creds
}

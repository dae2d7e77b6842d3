// Package app wires configuration, the demo catalog store, the session
// services and the HTTP server into a runnable console backend.
package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/vyaapaarai/console/internal/console/http"
	"github.com/vyaapaarai/console/internal/console/service"
	"github.com/vyaapaarai/console/internal/console/store"
	"github.com/vyaapaarai/console/internal/console/store/drivers/sqlite"
	"github.com/vyaapaarai/console/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application encapsulates the console backend with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	sessionManager   *service.Manager
	tokenService     *service.TokenService
	dashboardService *service.DashboardService
	assistant        *service.Assistant

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "console",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("console starting", "port", app.cfg.Port, "version", BuildVersion)

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

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down console...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the pending inactivity callback before the store goes away.
	app.sessionManager.Close()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("console stopped")
	return nil
}

// initDatabase opens the demo catalog and applies migrations. The default
// DSN is :memory:, so each start seeds a fresh catalog.
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(app.cfg.CatalogDSN)
	if err != nil {
		return fmt.Errorf("failed to initialize catalog store: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply catalog migrations: %w", err)
	}

	app.logger.Info("catalog migrations applied successfully")
	return nil
}

// initServices initializes the session state machine and its collaborators.
func (app *Application) initServices() error {
	otp, err := app.otpAuthenticator()
	if err != nil {
		return err
	}

	app.sessionManager = service.NewManager(service.ManagerConfig{
		Credentials: service.DemoCredentials(),
		OTP:         otp,
		Feed:        service.DemoFeed(),
		Window:      app.cfg.InactivityWindow,
		Logger:      app.logger,
	})

	secret := app.cfg.TokenSecret
	if secret == "" {
		// Ephemeral secret: minted tokens die with the process, which is
		// the right default for a single-session demo.
		secret = randomSecret()
		app.logger.Warn("CONSOLE_TOKEN_SECRET not set, using an ephemeral signing secret")
	}
	app.tokenService = &service.TokenService{
		Secret: []byte(secret),
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.SessionTTL,
	}

	app.dashboardService = &service.DashboardService{Store: app.db}
	app.assistant = service.NewAssistant()
	return nil
}

func (app *Application) otpAuthenticator() (service.OTPAuthenticator, error) {
	switch app.cfg.OTPMode {
	case "", "static":
		return &service.StaticOTP{Code: app.cfg.OTPCode}, nil
	case "totp":
		if app.cfg.TOTPSecret == "" {
			return nil, fmt.Errorf("CONSOLE_TOTP_SECRET is required when CONSOLE_OTP_MODE=totp")
		}
		return &service.TOTP{Secret: app.cfg.TOTPSecret}, nil
	default:
		return nil, fmt.Errorf("unknown CONSOLE_OTP_MODE %q", app.cfg.OTPMode)
	}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.Sessions = app.sessionManager
	router.Tokens = app.tokenService
	router.Dashboard = app.dashboardService
	router.Assistant = app.assistant
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}

package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"goat-tracker/internal/adapters/auth/jwtauth"
	"goat-tracker/internal/adapters/auth/remote"
	pg "goat-tracker/internal/adapters/storage/postgres"
	"goat-tracker/internal/config"
	"goat-tracker/internal/platform/logger"
	"goat-tracker/internal/ports/auth"
	"goat-tracker/internal/router"
)

// @title Goat Tracker API
// @version 1.0
// @description Registro de rebaño caprino: animales, sanidad, montas, avisos y estadísticas.
// @BasePath /
func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "ruta al YAML de configuración (opcional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.NewFromEnv().Error("config load failed", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	if err := run(cfg, *configPath, log); err != nil {
		log.Error("server stopped with error", map[string]any{"err": err})
		os.Exit(1)
	}
}

func run(cfg *config.Config, configPath string, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	verifier, err := newVerifier(cfg.Auth)
	if err != nil {
		return err
	}

	opts := router.Options{AuthVerifier: verifier, Logger: log}

	if dsn := strings.TrimSpace(cfg.Database.DSN); dsn != "" {
		db, err := pg.Open(dsn)
		if err != nil {
			return err
		}
		defer db.Close()

		if cfg.Database.Migrate {
			if err := pg.Migrate(ctx, db); err != nil {
				return err
			}
			log.Info("database migrated", nil)
		}
		opts.DB = db
		log.Info("using postgres store", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory store", nil)
	}

	app := router.Build(opts)
	app.Dashboard.SetRules(cfg.Alerts)
	app.Dashboard.SetRecentWindow(cfg.Analytics.RecentWindow())

	if configPath != "" {
		go func() {
			err := config.Watch(ctx, configPath, log, func(next *config.Config) {
				app.Dashboard.SetRules(next.Alerts)
				app.Dashboard.SetRecentWindow(next.Analytics.RecentWindow())
				log.SetLevel(logger.ParseLevel(next.Log.Level))
			})
			if err != nil {
				log.Error("config watch stopped", map[string]any{"err": err})
			}
		}()
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.Handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "auth_mode": cfg.Auth.Mode})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newVerifier devuelve nil en modo dev (AuthContext usa X-Debug-User-ID).
func newVerifier(cfg config.AuthConfig) (auth.AuthVerifier, error) {
	switch cfg.Mode {
	case config.AuthModeJWT:
		return jwtauth.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	case config.AuthModeRemote:
		return remote.NewVerifier(remote.Config{
			BaseURL:      cfg.BaseURL,
			APIKey:       cfg.APIKey,
			APIKeyHeader: cfg.APIKeyHeader,
			Timeout:      cfg.Timeout,
		})
	default:
		return nil, nil
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/financehelper/internal/auth"
	"github.com/mmynk/financehelper/internal/config"
	"github.com/mmynk/financehelper/internal/handler"
	"github.com/mmynk/financehelper/internal/middleware"
	"github.com/mmynk/financehelper/internal/notify"
	"github.com/mmynk/financehelper/internal/scheduler"
	"github.com/mmynk/financehelper/internal/service"
	"github.com/mmynk/financehelper/internal/storage/sqlite"
	"github.com/mmynk/financehelper/internal/tracing"
	"github.com/mmynk/financehelper/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup structured logging
	logging.Setup(cfg.Log.Level)
	logger := slog.Default()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer, shutdownTracing, err := tracing.Init(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.Server.DBPath)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Server.DBPath)

	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		slog.Warn("Using the development JWT secret; set JWT_SECRET in production")
	}
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	opts := []service.Option{service.WithTracer(tracer)}
	if cfg.SMTP.Enabled() {
		opts = append(opts, service.WithMailer(notify.NewMailer(cfg.SMTP)))
		slog.Info("Loan reminder emails enabled", "smtp_host", cfg.SMTP.Host)
	}
	ledgerSvc := service.NewLedgerService(store, opts...)
	authSvc := service.NewAuthService(auth.NewPasswordAuthenticator(store), store, jwtManager, logger)

	if cfg.Scheduler.RefreshSchedule != "" {
		sched, err := scheduler.New(cfg.Scheduler.RefreshSchedule, store, ledgerSvc)
		if err != nil {
			return err
		}
		sched.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			sched.Stop(stopCtx)
		}()
	}

	router := handler.NewRouter(handler.NewHandler(ledgerSvc, authSvc), jwtManager)
	if cfg.Server.StaticPath != "" {
		staticDir, err := filepath.Abs(cfg.Server.StaticPath)
		if err != nil {
			return fmt.Errorf("resolving static path: %w", err)
		}
		slog.Info("Serving static files", "path", staticDir)
		router.PathPrefix("/").Handler(staticHandler(staticDir))
	}

	// Add logging and CORS middleware, then h2c for HTTP/2 without TLS
	h2cHandler := h2c.NewHandler(middleware.Logging(middleware.CORS(router)), &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           h2cHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// staticHandler serves files from dir, falling back to index.html for
// unknown paths so client-side routes load the app.
func staticHandler(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(dir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	})
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mustafameh/portfolio/internal/api"
	"github.com/mustafameh/portfolio/internal/chat"
	"github.com/mustafameh/portfolio/internal/config"
	"github.com/mustafameh/portfolio/internal/content"
	"github.com/mustafameh/portfolio/internal/log"
	"github.com/mustafameh/portfolio/internal/mail"
	"github.com/mustafameh/portfolio/internal/ratelimit"
	"github.com/mustafameh/portfolio/internal/tools"
)

// Server timeout configuration.
const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 2 * time.Minute // streaming responses need longer timeout
	idleTimeout       = 2 * time.Minute
	shutdownTimeout   = 30 * time.Second
)

// Rate limiter windows. Request limiting is per IP per minute; the send and
// model-call budgets are hourly. Idle buckets are swept every two minutes.
const (
	requestWindow   = time.Minute
	hourlyWindow    = time.Hour
	sweepInterval   = 2 * time.Minute
	maxSendsPerHour = 3
	maxCallsPerHour = 50
)

// mailFrom is the Resend-verified sender identity. The owner address in the
// content model receives the notifications.
const mailFrom = "Portfolio Assistant <onboarding@resend.dev>"

// runServe initializes and starts the HTTP API server.
func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	addr, err := parseServeAddr(cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("parsing address: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := log.New(log.Config{
		Level: logLevel(),
		JSON:  cfg.IsProduction(),
	})
	logger.Info("starting HTTP API server", "version", Version, "env", cfg.Server.Env)

	data := content.Default()
	mailer := mail.NewResend(mailFrom, data.Site.Email, logger)

	registry, err := tools.New(data, mailer, cfg.ToolNames(), logger)
	if err != nil {
		return fmt.Errorf("building tool registry: %w", err)
	}

	requestLimiter := ratelimit.New(requestWindow, cfg.Limits.RateLimitPerMinute)
	sendLimiter := ratelimit.New(hourlyWindow, maxSendsPerHour)
	globalLimiter := ratelimit.New(hourlyWindow, maxCallsPerHour)
	ratelimit.StartSweeper(ctx, sweepInterval, requestLimiter, sendLimiter, globalLimiter)

	model := chat.NewGeminiClient(cfg.Model.Name)
	orchestrator := chat.New(cfg, model, registry, sendLimiter, logger)
	if !orchestrator.Available() {
		logger.Warn("model credential not set, assistant disabled")
	}

	apiServer, err := api.NewServer(api.ServerConfig{
		Logger:         logger,
		Config:         cfg,
		Orchestrator:   orchestrator,
		Content:        data,
		RequestLimiter: requestLimiter,
		GlobalLimiter:  globalLimiter,
		CORSOrigins:    cfg.Server.CORSOrigins,
		TrustProxy:     cfg.Server.TrustProxy,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	logger.Info("HTTP server ready",
		"addr", addr,
		"api", "/api/*",
		"health", "/health",
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down HTTP server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server: %w", err)
	}
}

// logLevel maps the DEBUG environment variable to a log level.
func logLevel() slog.Level {
	if os.Getenv("DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

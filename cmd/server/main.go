package main

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

	"finance-assistant/internal/backend"
	"finance-assistant/internal/config"
	"finance-assistant/internal/handlers"
	"finance-assistant/internal/middleware"
	"finance-assistant/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	sessionSweepInterval = time.Minute
	visitorSweepInterval = time.Minute
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()

	setupLogging(cfg)

	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func setupLogging(cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func run(ctx context.Context, cfg *config.Config) error {
	metrics := services.NewPrometheusMetrics()
	client := backend.NewClient(cfg.Backend, metrics)

	reasoner, err := newReasoner(ctx, cfg, client)
	if err != nil {
		return err
	}

	resolver := services.NewChatResolver(reasoner, cfg.Chat.RemoteTimeout, time.Now, metrics)
	chatService := services.NewChatSessionService(resolver, cfg.Chat.SessionTTL, time.Now, metrics)
	go chatService.Run(ctx, sessionSweepInterval)

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go limiter.Run(ctx, visitorSweepInterval)

	e := newEcho(cfg, limiter)

	e.GET("/health", handlers.NewHealthCheckHandler(client).HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	formService := services.NewFormService(client, time.Now, metrics)
	handlers.RegisterRoutes(e.Group("/api/v1"), handlers.Handlers{
		Dashboard: handlers.NewDashboardHandler(
			services.NewDashboardService(client, cfg.Dashboard.CategoryPeriod, cfg.Dashboard.FetchTimeout, time.Now, metrics),
			cfg.Display.CurrencySymbol,
		),
		Chat:         handlers.NewChatHandler(chatService),
		Transactions: handlers.NewTransactionHandler(formService),
		Goals:        handlers.NewGoalHandler(formService),
		Categories:   handlers.NewCategoryHandler(services.NewCategoryService(client, metrics)),
		Analytics:    handlers.NewAnalyticsHandler(services.NewAnalyticsService(client)),
	})

	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting finance assistant",
			"address", server.Addr,
			"environment", cfg.Server.Environment,
			"backend", cfg.Backend.BaseURL,
			"chat_remote", reasoner.Name(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", server.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}

func newEcho(cfg *config.Config, limiter *middleware.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(middleware.NewErrorCounter(prometheus.DefaultRegisterer))

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit("1M"))
	e.Use(limiter.Middleware())

	return e
}

// newReasoner picks the remote reasoning service named by CHAT_REMOTE
func newReasoner(ctx context.Context, cfg *config.Config, client backend.ClientInterface) (services.RemoteReasoner, error) {
	switch cfg.Chat.Remote {
	case config.ChatRemoteBackend:
		return services.NewBackendReasoner(client), nil
	case config.ChatRemoteGemini:
		reasoner, err := services.NewGeminiReasoner(ctx, cfg.Chat.GeminiAPIKey, cfg.Chat.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("create gemini reasoner: %w", err)
		}
		return reasoner, nil
	default:
		slog.Warn("Remote chat disabled, sessions answer from built-in replies", "chat_remote", cfg.Chat.Remote)
		return services.NewDisabledReasoner(), nil
	}
}

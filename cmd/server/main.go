package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/wordpress-mcp-server/internal/api"
	"github.com/wordpress-mcp-server/internal/config"
	"github.com/wordpress-mcp-server/internal/repository"
	"github.com/wordpress-mcp-server/internal/service"
	"github.com/wordpress-mcp-server/internal/tools"
	"github.com/wordpress-mcp-server/internal/validation"
	"github.com/wordpress-mcp-server/internal/wordpress"
	"github.com/wordpress-mcp-server/pkg/logger"
)

func main() {
	// Load configuration
	cfg, cfgErr := config.Load()
	if cfg == nil {
		log := logger.New("info", "json")
		log.Fatal().Err(cfgErr).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("transport", cfg.Server.Transport).Msg("Starting WordPress MCP server...")

	// Error reporting
	if cfg.Sentry.DSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
			Release:     tools.ServerName + "@" + tools.ServerVersion,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Sentry")
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Initialize gateway and tools
	gateway := newGateway(cfg, cfgErr, log)
	mcpServer := tools.NewServer(gateway, validation.NewValidator(), log)

	switch cfg.Server.Transport {
	case "stdio":
		serveStdio(mcpServer, log)
	case "http":
		serveHTTP(mcpServer, cfg, log)
	default:
		log.Fatal().Str("transport", cfg.Server.Transport).Msg("Unknown MCP_TRANSPORT, expected stdio or http")
	}
}

// newGateway wires the WordPress client. Missing credentials do not stop
// the server: every tool answers with its failure message instead.
func newGateway(cfg *config.Config, cfgErr error, log zerolog.Logger) service.ContentGateway {
	if cfgErr != nil {
		log.Error().Err(cfgErr).Msg("WordPress is not configured, tools are disabled")
		return service.NewUnavailableGateway(cfgErr)
	}

	client, err := wordpress.NewClient(
		cfg.WordPress.URL,
		cfg.WordPress.Username,
		cfg.WordPress.Password,
		wordpress.WithTimeout(cfg.WordPress.Timeout),
	)
	if err != nil {
		cause := &config.ConfigurationError{Vars: []string{"WP_URL"}}
		log.Error().Err(err).Msg("Invalid WP_URL, tools are disabled")
		return service.NewUnavailableGateway(cause)
	}
	log.Info().Str("endpoint", client.BaseURL()).Msg("WordPress client ready")

	repos := repository.New(client)
	return service.NewContentGateway(repos, log)
}

// serveStdio blocks until stdin closes or a termination signal arrives
func serveStdio(s *server.MCPServer, log zerolog.Logger) {
	errLog := stdlog.New(log, "", 0)
	if err := server.ServeStdio(s, server.WithErrorLogger(errLog)); err != nil {
		log.Fatal().Err(err).Msg("Stdio transport failed")
	}
	log.Info().Msg("Server exited gracefully")
}

func serveHTTP(s *server.MCPServer, cfg *config.Config, log zerolog.Logger) {
	router := api.NewRouter(s, log)

	// Create HTTP server. No write timeout: tool responses may be streamed.
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("path", api.MCPPath).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}

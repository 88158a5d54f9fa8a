package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"google.golang.org/grpc"

	"github.com/Belphemur/ShowFinder/internal/config"
	grpcserver "github.com/Belphemur/ShowFinder/internal/grpc"
	"github.com/Belphemur/ShowFinder/internal/metrics"
	"github.com/Belphemur/ShowFinder/internal/render"
	"github.com/Belphemur/ShowFinder/internal/services"
	"github.com/Belphemur/ShowFinder/internal/store"
	"github.com/Belphemur/ShowFinder/internal/tvmaze"
	"github.com/Belphemur/ShowFinder/internal/web"
)

func main() {
	cfg := config.GetConfig()
	logger := config.GetLogger()
	config.WatchConfig()

	logger.Info().
		Str("tvmaze_base_url", cfg.TVMazeBaseURL).
		Str("proxy_connection_string", cfg.ProxyConnectionString).
		Int("max_retries", cfg.MaxRetries).
		Int("server_port", cfg.Server.Port).
		Str("server_address", cfg.Server.Address).
		Str("store_provider", cfg.Store.Provider).
		Msg("Application started with configuration")

	sentryEnabled := cfg.Sentry.DSN != ""
	if sentryEnabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			logger.Error().Err(err).Msg("Failed to initialise Sentry, continuing without it")
			sentryEnabled = false
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	sessionTTL, err := time.ParseDuration(cfg.Session.TTL)
	if err != nil || sessionTTL <= 0 {
		logger.Warn().Str("ttl", cfg.Session.TTL).Msg("Invalid session TTL, using 24h")
		sessionTTL = 24 * time.Hour
	}

	pages, err := store.New(cfg.Store.Provider, store.ProviderConfig{
		Size:          cfg.Store.Size,
		TTL:           sessionTTL,
		Logger:        store.NewZerologLogger(logger),
		RedisAddress:  cfg.Redis.Address,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
		Group:         "pages",
	})
	if err != nil {
		logger.Fatal().Err(err).Str("provider", cfg.Store.Provider).Msg("Failed to create page store")
	}
	defer pages.Close()

	renderer, err := render.NewRenderer()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load templates")
	}

	client := tvmaze.NewClient(cfg)
	defer client.Close()

	webServer := web.NewServer(
		services.NewCatalog(client, renderer),
		client,
		renderer,
		pages,
		web.NewSessionStore(cfg.Session.Secret, sessionTTL),
		web.Options{Sentry: sentryEnabled},
	)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port),
		Handler:           webServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 3)

	go func() {
		logger.Info().Str("address", httpServer.Addr).Msg("Starting web server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("web server: %w", err)
		}
	}()

	// Start Prometheus metrics HTTP server
	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	var grpcServer *grpc.Server
	if cfg.GRPC.Enabled {
		address := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.GRPC.Port)
		listener, err := net.Listen("tcp", address)
		if err != nil {
			logger.Fatal().Err(err).Str("address", address).Msg("Failed to create gRPC listener")
		}
		grpcServer = grpcserver.NewGRPCServer(client)
		go func() {
			logger.Info().Str("address", address).Msg("Starting gRPC server")
			if err := grpcServer.Serve(listener); err != nil {
				errChan <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errChan:
		logger.Error().Err(err).Msg("Server failed, shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to shutdown web server")
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown metrics server")
		}
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}

	logger.Info().Msg("Server stopped gracefully")
}

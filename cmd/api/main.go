package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/phone-lookup-api/internal/config"
	"github.com/deppfellow/phone-lookup-api/internal/handler"
	loggerPkg "github.com/deppfellow/phone-lookup-api/internal/logger"
	"github.com/deppfellow/phone-lookup-api/internal/middleware"
	"github.com/deppfellow/phone-lookup-api/internal/router"
	"github.com/deppfellow/phone-lookup-api/internal/server"
	"github.com/deppfellow/phone-lookup-api/internal/service"
)

// shutdownTimeout bounds how long inflight requests may take to finish
// once a termination signal arrives.
const shutdownTimeout = 10 * time.Second

func main() {
	// Bootstrap logger for the window before config is loaded.
	bootLog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log, loggerService, err := loggerPkg.New(cfg)
	if err != nil {
		// Telemetry misconfiguration is not fatal; the logger itself
		// is fully functional without the agent.
		log.Warn().Err(err).Msg("telemetry disabled: New Relic initialization failed")
	}

	// WORKERS caps process parallelism. The deployment surface keeps
	// the conventional name even though Go uses scheduler threads, not
	// forked workers.
	if cfg.Server.Workers > 0 {
		runtime.GOMAXPROCS(cfg.Server.Workers)
	}

	srv := server.New(cfg, log, loggerService)

	mws := middleware.NewMiddlewares(srv)
	services := service.NewServices(srv)
	handlers := handler.NewHandlers(srv, services)

	e := router.New(mws, handlers)
	srv.SetupHTTPServer(e)

	// Run the server in the background so the main goroutine can wait
	// for termination signals.
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("server failed")
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}

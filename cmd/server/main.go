package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/BaseMax/travel-planner-graphql/config"
	"github.com/BaseMax/travel-planner-graphql/internal/auth"
	"github.com/BaseMax/travel-planner-graphql/internal/email"
	"github.com/BaseMax/travel-planner-graphql/internal/events"
	gql "github.com/BaseMax/travel-planner-graphql/internal/graphql"
	"github.com/BaseMax/travel-planner-graphql/internal/health"
	"github.com/BaseMax/travel-planner-graphql/internal/infrastructure/postgres"
	ctxlog "github.com/BaseMax/travel-planner-graphql/internal/log"
	"github.com/BaseMax/travel-planner-graphql/internal/metrics"
	httptransport "github.com/BaseMax/travel-planner-graphql/internal/transport/http"
	"github.com/BaseMax/travel-planner-graphql/internal/transport/http/handler"
	"github.com/BaseMax/travel-planner-graphql/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		stop()
		log.Fatalf("db schema: %v", err)
	}

	userRepo := postgres.NewUserRepository(pool)
	tripRepo := postgres.NewTripRepository(pool)

	// One hub instance shared by every resolver, closed on shutdown.
	hub := events.NewHub()
	defer hub.Close()

	emailSender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)
	tokens := auth.NewTokenService([]byte(cfg.JWTSecret))
	guard := auth.NewGuard(tokens)

	authUsecase := usecase.NewAuthUsecase(userRepo, tokens)
	tripUsecase := usecase.NewTripUsecase(tripRepo, userRepo, hub, emailSender, logger)
	noteUsecase := usecase.NewNoteUsecase(tripRepo, hub)

	resolver := gql.NewResolver(authUsecase, tripUsecase, noteUsecase, guard, hub, logger)
	schema, err := gql.NewSchema(resolver)
	if err != nil {
		stop()
		log.Fatalf("graphql schema: %v", err)
	}
	graphqlHandler := handler.NewGraphQLHandler(schema, logger)

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)
	checker.Register("events", hub.Check)

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, graphqlHandler, checker),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}

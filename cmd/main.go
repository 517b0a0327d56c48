package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/vacations/internal/api"
	"github.com/samandr77/microservices/vacations/internal/entity"
	"github.com/samandr77/microservices/vacations/internal/repository"
	"github.com/samandr77/microservices/vacations/internal/service"
	"github.com/samandr77/microservices/vacations/internal/storage/photos"
	"github.com/samandr77/microservices/vacations/pkg/broker"
	"github.com/samandr77/microservices/vacations/pkg/config"
	"github.com/samandr77/microservices/vacations/pkg/job"
	"github.com/samandr77/microservices/vacations/pkg/logger"
	"github.com/samandr77/microservices/vacations/pkg/postgres"
)

const (
	ReadTimeout     = 10 * time.Second
	WriteTimeout    = 15 * time.Second
	ShutdownTimeout = 10 * time.Second
)

type eventPublisher interface {
	service.Publisher
	Close()
}

// @title       Vacations API
// @version     1.0
// @description Vacation catalogue with user likes and admin management.
// @BasePath    /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	slog.SetDefault(logger.New(os.Stdout, logger.ParseLevel(cfg.LogLevel)))

	dsn, err := cfg.DSN()
	panicOnErr("select postgres dsn", err)

	if cfg.DBResetOnStart {
		slog.WarnContext(ctx, "resetting database", "env", cfg.AppEnv)

		err = postgres.ResetMigrations(dsn)
		panicOnErr("reset migrations", err)
	} else {
		err = postgres.UpMigrations(dsn)
		panicOnErr("up migrations", err)
	}

	pool, err := postgres.Connect(ctx, dsn, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	users := repository.NewUserRepository(pool)
	roles := repository.NewRoleRepository(pool)
	countries := repository.NewCountryRepository(pool)
	likes := repository.NewLikeRepository(pool)
	vacations := repository.NewVacationRepository(pool)

	var events eventPublisher = broker.Discard{}
	if cfg.Kafka.Enabled {
		events = broker.NewProducer(slog.Default(), cfg.Kafka.Brokers, cfg.Kafka.VacationEventsTopic)
	}
	defer events.Close()

	photoStore, err := photos.NewStore(cfg.UploadDir)
	panicOnErr("open photo store", err)
	slog.InfoContext(ctx, "photo store opened", "dir", photoStore.Dir())

	userService := service.NewUserService(users, roles, likes, vacations, events)
	vacationService := service.NewVacationService(vacations, countries, photoStore, events, cfg.Photos.SweepGrace)

	if cfg.AdminEmail != "" {
		err = userService.GrantAdmin(ctx, cfg.AdminEmail)
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(ctx, "admin user is not registered yet", "email", cfg.AdminEmail)
		} else {
			panicOnErr("grant admin", err)
		}
	}

	jobs := job.NewService(slog.Default()).
		RegisterJob("sweep orphan photos", cfg.Photos.SweepInterval, vacationService.SweepOrphanPhotos)
	jobs.Start(ctx)

	sessions := api.NewSessions(cfg.Session.JWTSecret, cfg.Session.TTL, cfg.AppEnv == config.EnvProd)

	handler := api.NewHandler(userService, vacationService, photoStore, sessions)
	mw := api.NewMiddleware(sessions)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTPPort, "env", cfg.AppEnv)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer shutdownCancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
		jobs.Stop()
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}

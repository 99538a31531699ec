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

	"github.com/baharkarakas/marina-backend/internal/api"
	"github.com/baharkarakas/marina-backend/internal/auth"
	"github.com/baharkarakas/marina-backend/internal/config"
	"github.com/baharkarakas/marina-backend/internal/db"
	"github.com/baharkarakas/marina-backend/internal/logger"
	"github.com/baharkarakas/marina-backend/internal/metrics"
	"github.com/baharkarakas/marina-backend/internal/repository"
	"github.com/baharkarakas/marina-backend/internal/repository/memory"
	"github.com/baharkarakas/marina-backend/internal/repository/postgres"
	"github.com/baharkarakas/marina-backend/internal/services"
	"github.com/baharkarakas/marina-backend/internal/worker"
)

// store is the gateway set selected by STORE_DRIVER.
type store struct {
	catways      repository.Catways
	reservations repository.Reservations
	users        repository.Users
	auditLogs    repository.AuditLogs
	pinger       repository.Pinger
	close        func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env, cfg.LogLevel)
	slog.SetDefault(log)
	metrics.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("store unavailable", "driver", cfg.Store, "err", err)
		os.Exit(1)
	}
	defer st.close()

	wp := worker.NewPool(cfg.Workers, worker.DefaultQueueSize, log)
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
	audit := services.NewAuditor(st.auditLogs, wp, log)

	r := api.NewRouter(api.RouterDeps{
		Cfg:            cfg,
		Log:            log,
		Tokens:         tokens,
		Store:          st.pinger,
		CatwaySvc:      services.NewCatwayService(st.catways, audit),
		ReservationSvc: services.NewReservationService(st.reservations, st.catways, audit),
		UserSvc:        services.NewUserService(st.users, tokens, cfg.BcryptCost, audit),
		DashboardSvc:   services.NewDashboardService(st.catways, st.reservations, st.users),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTP.Port, "store", cfg.Store, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
	// pending audit entries still need the store
	wp.Stop()
}

func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) (store, error) {
	if cfg.Store == config.StoreMemory {
		repos := memory.NewRepositories()
		log.Warn("using in-memory store, data is lost on exit")
		return store{
			catways:      repos.Catways,
			reservations: repos.Reservations,
			users:        repos.Users,
			auditLogs:    repos.AuditLogs,
			pinger:       repos,
			close:        func() {},
		}, nil
	}

	pool, err := db.NewPool(ctx, cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		return store{}, err
	}
	sqlDB := db.SQL(pool)
	closeAll := func() {
		_ = sqlDB.Close()
		pool.Close()
	}
	if cfg.Database.Migrate {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			closeAll()
			return store{}, fmt.Errorf("migrations: %w", err)
		}
	}

	repos := postgres.NewRepositories(sqlDB)
	return store{
		catways:      repos.Catways,
		reservations: repos.Reservations,
		users:        repos.Users,
		auditLogs:    repos.AuditLogs,
		pinger:       repos,
		close:        closeAll,
	}, nil
}

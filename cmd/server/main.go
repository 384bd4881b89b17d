package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thiagomes07/inovacamp/internal/adapter/http/controller"
	"github.com/thiagomes07/inovacamp/internal/adapter/http/middleware"
	"github.com/thiagomes07/inovacamp/internal/adapter/http/router"
	"github.com/thiagomes07/inovacamp/internal/adapter/repository/postgres"
	"github.com/thiagomes07/inovacamp/internal/config"
	"github.com/thiagomes07/inovacamp/internal/jobs"
	"github.com/thiagomes07/inovacamp/internal/logger"
	"github.com/thiagomes07/inovacamp/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := postgres.RunMigrations(migrateCtx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	stores := postgres.NewStores(db)
	uow := postgres.NewUnitOfWork(db)

	scheduleService := services.NewScheduleService()
	ledgerService := services.NewLedgerService(stores, uow)
	matchingService := services.NewMatchingService(stores, uow, scheduleService, cfg.MinCreditAmount)
	poolService := services.NewPoolService(stores, uow, cfg.MinPoolTarget)
	scoreService := services.NewScoreService(stores.Profiles)
	profileService := services.NewProfileService(stores, uow)
	loanService := services.NewLoanService(stores, uow)
	currencyService := services.NewCurrencyService()

	mux := router.New(
		middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey),
		controller.NewProfileController(profileService),
		controller.NewWalletController(ledgerService),
		controller.NewPoolController(poolService),
		controller.NewCreditController(matchingService),
		controller.NewScoreController(scoreService),
		controller.NewLoanController(loanService),
		controller.NewCurrencyController(currencyService),
	)

	sweep, err := jobs.NewOverdueSweep(loanService, cfg.OverdueSweepCron)
	if err != nil {
		log.Fatalf("schedule overdue sweep: %v", err)
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("http server starting", logger.Fields{"addr": cfg.HTTPAddr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		sweep.Start()
		<-groupCtx.Done()
		<-sweep.Stop().Done()
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
	logger.Info("server stopped", nil)
}

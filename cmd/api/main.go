package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/saveeasy/internal/app"
	"github.com/Dan9191/saveeasy/internal/config"
	"github.com/Dan9191/saveeasy/internal/demo"
	"github.com/Dan9191/saveeasy/internal/handler"
	"github.com/Dan9191/saveeasy/internal/middleware"
	"github.com/Dan9191/saveeasy/internal/notify"
	"github.com/Dan9191/saveeasy/internal/rates"
	"github.com/Dan9191/saveeasy/internal/scheduler"
	"github.com/Dan9191/saveeasy/internal/service"
	"github.com/Dan9191/saveeasy/internal/store"
)

const (
	loanReminderSchedule = "0 9 * * *"
	ratesRefreshSchedule = "@every 1h"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Exchange rates
	sheet := rates.Default()
	var ratesClient *rates.Client
	if cfg.RatesURL != "" {
		ratesClient = rates.NewClient(cfg.RatesURL, logger)
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := ratesClient.Refresh(ctx, sheet); err != nil {
			logger.Warnf("Using bundled rates: %v", err)
		}
		cancel()
	}

	// Initialize layers
	st := store.New(store.Seed(), logger)
	opts := []service.Option{service.WithBalance(st), service.WithQuoter(sheet)}
	if cfg.RandomSeed != 0 {
		opts = append(opts, service.WithRandom(service.NewLockedRandom(cfg.RandomSeed)))
	}
	svc := service.NewService(cfg.Rules, logger, opts...)
	a := app.New(st, svc, logger)
	a.RefreshAnalytics()

	sched, err := scheduler.New(a, cfg.AutoSaveSchedule, logger)
	if err != nil {
		logger.Fatalf("Failed to create scheduler: %v", err)
	}
	a.SetAutoPayRegistrar(sched)

	var notifier demo.Notifier
	if cfg.EmailEnabled() {
		sender := notify.NewSender(cfg, logger)
		notifier = sender
		if err := sched.EnableLoanReminders(sender, loanReminderSchedule); err != nil {
			logger.Fatalf("Failed to schedule loan reminders: %v", err)
		}
	}
	if ratesClient != nil {
		err := sched.Add("rates_refresh", ratesRefreshSchedule, func(ctx context.Context) bool {
			if err := ratesClient.Refresh(ctx, sheet); err != nil {
				logger.Warnf("Rates refresh failed: %v", err)
				return false
			}
			return true
		})
		if err != nil {
			logger.Fatalf("Failed to schedule rates refresh: %v", err)
		}
	}

	runner := demo.NewRunner(a, notifier, logger)
	h := handler.NewHandler(a, runner, logger)

	// Setup router
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, logger)
	stopCleanup := make(chan struct{})
	limiter.StartCleanup(10*time.Minute, stopCleanup)

	r := h.Router()
	r.Use(middleware.Logging(logger), limiter.Handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: 10 * time.Second,
		// operations simulate several seconds of latency and demo scenarios chain them
		WriteTimeout: 5 * time.Minute,
	}

	sched.Start()
	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	if err := sched.Stop(ctx); err != nil {
		logger.Errorf("Scheduler shutdown failed: %v", err)
	}
	close(stopCleanup)
}

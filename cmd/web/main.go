package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"event-calendar/config"
	_ "event-calendar/docs" // Swagger docs
	eventHTTP "event-calendar/internal/event/delivery/http"
	restRepo "event-calendar/internal/event/repository/rest"
	"event-calendar/internal/event/usecase"
	"event-calendar/internal/event/validation"
	"event-calendar/internal/httpserver"
	"event-calendar/internal/middleware"
	"event-calendar/internal/probe"
	"event-calendar/pkg/log"
)

// @title       Event Calendar API
// @description JSON endpoints of the event calendar web client: calendar entries, form validation and iCalendar export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Event Calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.URL)

	// 3. Event domain
	client := restRepo.NewClient(cfg.Backend.URL, cfg.Backend.Timeout, cfg.Backend.DefaultTimezone)
	transport := restRepo.New(client, logger)

	validator := validation.New(validation.Options{
		AllowEqualEnd:     cfg.Validation.AllowEqualEnd,
		LocationMaxLength: cfg.Validation.LocationMaxLength,
	})

	views := usecase.NewViews(cfg.Views.Size, cfg.Views.TTL)
	eventUC := usecase.New(transport, validator, views, logger, usecase.Config{
		DefaultTimezone: cfg.Backend.DefaultTimezone,
		WeekStart:       cfg.Calendar.WeekStart,
	})

	eventHandler, err := eventHTTP.New(logger, eventUC)
	if err != nil {
		logger.Error(ctx, "Failed to initialize event handler: ", err)
		return
	}

	mw := middleware.New(logger, middleware.Config{
		DefaultTimezone: cfg.Backend.DefaultTimezone,
		SubmitPerMin:    cfg.RateLimit.SubmitPerMin,
	})

	// 4. Backend readiness probe
	backendProbe, err := probe.New(client, logger, probe.Config{
		Schedule: cfg.Backend.ProbeSchedule,
		Timeout:  cfg.Backend.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize backend probe: ", err)
		return
	}
	backendProbe.Start(ctx)
	defer backendProbe.Stop()

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		EventHandler:    eventHandler,
		Middleware:      mw,
		Probe:           backendProbe,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/receptionist-dashboard/internal/config"
	authHandler "github.com/jwalitptl/receptionist-dashboard/internal/handler/auth"
	callHandler "github.com/jwalitptl/receptionist-dashboard/internal/handler/call"
	clinicHandler "github.com/jwalitptl/receptionist-dashboard/internal/handler/clinic"
	dashboardHandler "github.com/jwalitptl/receptionist-dashboard/internal/handler/dashboard"
	"github.com/jwalitptl/receptionist-dashboard/internal/middleware"
	"github.com/jwalitptl/receptionist-dashboard/internal/repository/postgres"
	"github.com/jwalitptl/receptionist-dashboard/internal/repository/sheets"
	"github.com/jwalitptl/receptionist-dashboard/internal/router"
	authService "github.com/jwalitptl/receptionist-dashboard/internal/service/auth"
	callService "github.com/jwalitptl/receptionist-dashboard/internal/service/call"
	scheduleService "github.com/jwalitptl/receptionist-dashboard/internal/service/schedule"
	"github.com/jwalitptl/receptionist-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.Log.Level, cfg.Log.JSON)

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Initialize spreadsheet client
	sheetsClient, err := sheets.NewClient(context.Background(), cfg.Sheets)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create sheets client")
	}
	scheduleStore := sheets.NewStore(sheetsClient)

	// Initialize repositories and services
	callRepo := postgres.NewCallRepository(db)
	callSvc := callService.NewService(callRepo)
	scheduleSvc := scheduleService.NewService(scheduleStore)
	authSvc, err := authService.NewService(cfg.Auth)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize auth service")
	}

	// Initialize middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	authH := authHandler.NewHandler(authSvc)
	dashboardH := dashboardHandler.NewHandler(scheduleSvc, scheduleStore)
	callH := callHandler.NewHandler(callSvc)
	clinicH := clinicHandler.NewHandler(scheduleSvc)

	// Setup router
	r := router.NewRouter(authMiddleware, authH, dashboardH, callH, clinicH, router.Config{
		RateLimit: middleware.RateLimiterConfig{
			RPS:   cfg.RateLimit.RPS,
			Burst: cfg.RateLimit.Burst,
		},
		MetricsPrefix: "receptionist",
		TemplateGlob:  "web/templates/*.html",
		StaticDir:     "web/static",
	})
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

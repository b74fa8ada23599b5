package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/brightelectricals/backend/internal/config"
	"github.com/brightelectricals/backend/internal/handler"
	"github.com/brightelectricals/backend/internal/logging"
	"github.com/brightelectricals/backend/internal/repository"
	"github.com/brightelectricals/backend/internal/service"
	"github.com/brightelectricals/backend/pkg/mailer"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Setup("")
		logging.Fatal("configuration error", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	submissionRepo := repository.NewPgSubmissionRepository(pool)
	clickRepo := repository.NewPgClickRepository(pool)

	// Email notifications are optional; without a SendGrid key submissions
	// are only persisted.
	m := mailer.New(mailer.Config{
		APIKey: cfg.SendGridAPIKey,
		To:     cfg.NotifyTo,
		From:   cfg.NotifyFrom,
	})
	var notifier service.Notifier
	if m.Enabled() {
		notifier = m
	}

	submissionService := service.NewSubmissionService(submissionRepo, notifier)
	clickService := service.NewClickService(clickRepo)

	h := handler.New(pool, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(submissionService)
	clickHandler := handler.NewClickHandler(clickService)
	dashboardHandler := handler.NewDashboardHandler(submissionService, clickService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	// Public site endpoints
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("POST /api/track-click", clickHandler.Track)

	// Dashboard endpoints (internal; no auth model is defined)
	mux.HandleFunc("GET /api/dashboard/submissions", dashboardHandler.Submissions)
	mux.HandleFunc("GET /api/dashboard/clicks", dashboardHandler.Clicks)
	mux.HandleFunc("GET /api/dashboard/stats", dashboardHandler.Stats)
	mux.HandleFunc("DELETE /api/dashboard/submissions/{id}", dashboardHandler.DeleteSubmission)
	mux.HandleFunc("POST /api/dashboard/submissions/{id}/addressed", dashboardHandler.MarkAddressed)
	mux.HandleFunc("PUT /api/dashboard/submissions/{id}", dashboardHandler.EditSubmission)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h.CORS(handler.RequestLogger(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "mailer_enabled", m.Enabled())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

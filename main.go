package main

import (
	"StarBoard/config"
	"StarBoard/controllers"
	"StarBoard/logging"
	"StarBoard/middlewares"
	"StarBoard/repositories/impl"
	"StarBoard/routes"
	"StarBoard/services"
	"StarBoard/websocket"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.OpenDatabase(cfg)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	repos := impl.NewManager(db)
	calendar := services.NewCalendar(cfg.Location)

	// Initialize services
	templateService := services.NewTemplateService(repos.Templates())
	if err := templateService.SeedDefaults(ctx); err != nil {
		slog.Error("Failed to seed templates", "error", err)
		os.Exit(1)
	}

	authService := services.NewAuthService(repos, services.NewOtpSender(cfg.OtpSMSWebhook, cfg.OtpSMSToken), cfg.OtpDevCode, cfg.IsProduction())
	childService := services.NewChildService(repos)
	taskService := services.NewTaskService(repos, templateService)
	parentService := services.NewParentService(repos.Parents(), repos.Children())
	dashboardService := services.NewDashboardService(repos, calendar, templateService)

	hub := websocket.NewHub()
	go hub.Run()
	defer hub.Stop()

	rewardService := services.NewRewardService(repos, calendar)
	rewardService.Publisher = hub

	fcm, err := config.InitFirebase(ctx, cfg)
	if err != nil {
		slog.Warn("Push notifications disabled", "error", err)
	} else if fcm != nil {
		rewardService.Notifier = services.NewNotificationService(fcm)
	}

	cleanup := services.NewCleanupService(repos, cfg.Location)
	if _, err := cleanup.Schedule(cfg.CleanupSchedule); err != nil {
		slog.Error("Invalid CLEANUP_SCHEDULE", "schedule", cfg.CleanupSchedule, "error", err)
		os.Exit(1)
	}
	cleanup.Start()
	defer cleanup.Stop()

	// Set services in controllers
	controllers.SetAuthService(authService)
	controllers.SetChildService(childService)
	controllers.SetTaskService(taskService)
	controllers.SetRewardService(rewardService)
	controllers.SetDashboardService(dashboardService)
	controllers.SetParentService(parentService)
	controllers.SetTemplateService(templateService)
	controllers.SetWebSocketHub(hub)
	middlewares.SetSecureCookies(cfg.IsProduction())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())
	routes.RegisterRoutes(r, authService)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server started", "port", cfg.Port, "env", cfg.Env, "timezone", cfg.Location.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server stopped with error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	slog.Info("Shutdown complete")
}

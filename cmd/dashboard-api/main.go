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

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/tableturnerr/dashboard-api/api/swagger"
	"github.com/tableturnerr/dashboard-api/internal/handler"
	"github.com/tableturnerr/dashboard-api/internal/middleware"
	"github.com/tableturnerr/dashboard-api/internal/notes"
	"github.com/tableturnerr/dashboard-api/internal/service"
	"github.com/tableturnerr/dashboard-api/internal/session"
	"github.com/tableturnerr/dashboard-api/internal/store"
	"github.com/tableturnerr/dashboard-api/pkg/config"
	"github.com/tableturnerr/dashboard-api/pkg/logger"
	"github.com/tableturnerr/dashboard-api/pkg/middleware/cors"
	"github.com/tableturnerr/dashboard-api/pkg/middleware/requestid"
)

// @title Tableturnerr Dashboard API
// @version 0.1.0
// @description Backend-for-frontend API for the CRM dashboard.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	client := store.New(cfg.Backend)

	var tokens session.TokenStore
	redisClient, err := session.NewRedis(cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, session token will not survive restarts", zap.Error(err))
	} else {
		defer func() { _ = redisClient.Close() }()
		tokens = session.NewRedisTokenStore(redisClient, cfg.Session.TokenKey)
	}

	sessions := session.NewManager(client, tokens, log)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Session.ResolveTimeout)
		defer cancel()
		sessions.Resolve(ctx)
		log.Info("session resolved", zap.String("status", sessions.Status().String()))
	}()

	metricsSvc := service.NewMetricsService()
	activitySvc := service.NewActivityService(client, log)
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Client:        client,
		Logger:        log,
		ActivityLimit: cfg.Dashboard.ActivityLimit,
	})
	coldCallSvc := service.NewColdCallService(client, log)
	notesSvc := notes.NewService(notes.ServiceParams{
		Client:   client,
		Session:  sessions,
		Logger:   log,
		PageSize: cfg.Notes.PageSize,
	})

	var exportSvc *service.ExportService
	if cfg.Export.Enabled {
		exportSvc = service.NewExportService(notesSvc, log)
	}

	validate := validator.New()

	authHandler := handler.NewAuthHandler(sessions, activitySvc, validate)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	coldCallHandler := handler.NewColdCallHandler(coldCallSvc)
	pagesHandler := handler.NewPagesHandler()

	var notesHandler *handler.NotesHandler
	if exportSvc != nil {
		notesHandler = handler.NewNotesHandler(notesSvc, exportSvc)
	} else {
		notesHandler = handler.NewNotesHandler(notesSvc, nil)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.Middleware())
	router.Use(logger.GinMiddleware(log))
	router.Use(cors.New(cfg.CORS.AllowedOrigins))
	router.Use(middleware.Metrics(metricsSvc))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ready",
			"session": sessions.Status().String(),
		})
	})
	router.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET(middleware.LoginPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"page":    "login",
			"session": sessions.Status().String(),
		})
	})
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)
	router.GET("/session", authHandler.Session)

	protected := router.Group("")
	protected.Use(middleware.Guard(sessions))
	{
		protected.GET("/", dashboardHandler.Overview)
		protected.GET("/goals", pagesHandler.Goals)
		protected.GET("/settings", pagesHandler.Settings)
		protected.GET("/cold-calls/:id", coldCallHandler.Get)

		protected.GET("/notes", notesHandler.List)
		protected.GET("/notes/export", notesHandler.Export)
		protected.GET("/notes/draft", notesHandler.GetDraft)
		protected.POST("/notes/draft", notesHandler.BeginNew)
		protected.PUT("/notes/draft", notesHandler.UpdateDraft)
		protected.DELETE("/notes/draft", notesHandler.CancelDraft)
		protected.POST("/notes/draft/save", notesHandler.SaveDraft)
		protected.POST("/notes/draft/:id", notesHandler.BeginEdit)
		protected.POST("/notes/:id/:action", notesHandler.ChangeStatus)
		protected.DELETE("/notes/:id", notesHandler.Delete)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.Int("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}

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

	"github.com/nexthire/api/internal/config"
	"github.com/nexthire/api/internal/database"
	"github.com/nexthire/api/internal/handler"
	"github.com/nexthire/api/internal/middleware"
	"github.com/nexthire/api/internal/repository"
	"github.com/nexthire/api/internal/service"
	"github.com/nexthire/api/pkg/jwt"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection. A failed connection does not abort
	// startup: the server comes up anyway and requests needing the store
	// fail individually until the database is reachable.
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database, starting degraded",
			slog.String("error", err.Error()),
			slog.String("host", cfg.Database.Host),
		)
	} else {
		slog.Info("connected to database",
			slog.String("host", cfg.Database.Host),
			slog.String("database", cfg.Database.Database),
		)
	}
	defer func() { _ = db.Close() }()

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:     cfg.JWT.AccessSecret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: cfg.JWT.Expiration(),
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		JWTService: jwtService,
	})

	jobService := service.NewJobService(service.JobServiceConfig{
		JobRepo: jobRepo,
		Counter: applicationRepo,
	})

	applicationService := service.NewApplicationService(service.ApplicationServiceConfig{
		AppRepo: applicationRepo,
		Jobs:    jobRepo,
	})

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	healthHandler := handler.NewHealthHandler(db)

	// Create router and register routes
	mux := http.NewServeMux()

	// Liveness endpoints
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Auth endpoints (public)
	mux.HandleFunc("POST /jwt", authHandler.Issue)
	mux.HandleFunc("POST /logout", authHandler.Logout)

	// Protected route middleware
	authMiddleware := middleware.Auth(authService)
	ownOrAll := middleware.OwnershipGuard(false)
	ownOnly := middleware.OwnershipGuard(true)

	// Job endpoints
	mux.Handle("GET /jobs", authMiddleware(ownOrAll(http.HandlerFunc(jobHandler.List))))
	mux.HandleFunc("GET /jobs/{id}", jobHandler.Get)
	mux.Handle("POST /jobs", authMiddleware(http.HandlerFunc(jobHandler.Create)))

	// Application endpoints. POST is deliberately public; the by-job
	// listing needs a valid token but not the job's owner.
	mux.Handle("GET /applications", authMiddleware(ownOnly(http.HandlerFunc(applicationHandler.ListByApplicant))))
	mux.Handle("GET /applications/job/{job_id}", authMiddleware(http.HandlerFunc(applicationHandler.ListByJob)))
	mux.HandleFunc("POST /applications", applicationHandler.Create)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}

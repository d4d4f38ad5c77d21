// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/creatorbasehq/creatorbase/internal/audit"
	"github.com/creatorbasehq/creatorbase/internal/auth"
	"github.com/creatorbasehq/creatorbase/internal/authz"
	"github.com/creatorbasehq/creatorbase/internal/config"
	"github.com/creatorbasehq/creatorbase/internal/handler"
	"github.com/creatorbasehq/creatorbase/internal/middleware"
	"github.com/creatorbasehq/creatorbase/internal/repository"
	"github.com/creatorbasehq/creatorbase/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	memberRepo := repository.NewMembershipRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permRepo := repository.NewPermissionRepository(db)
	itemRepo := repository.NewContentItemRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.Session.Secret, cfg.Session.ExpiryPeriod)

	// Authorization core and audit trail
	auditLogger := audit.NewLogger(auditRepo)
	defer auditLogger.Close()
	authorizer := authz.NewAuthorizer(memberRepo, permRepo, auditLogger)

	// Initialize services
	userService := service.NewUserService(userRepo, passwordHasher, tokenManager)
	orgService := service.NewOrganizationService(orgRepo, authorizer)
	memberService := service.NewMemberService(memberRepo, roleRepo, userRepo, orgRepo, authorizer)
	roleService := service.NewRoleService(roleRepo, permRepo, orgRepo, authorizer)
	itemService := service.NewContentItemService(itemRepo, orgRepo, authorizer)
	taskService := service.NewTaskService(taskRepo, itemRepo, memberRepo, orgRepo, authorizer)
	auditService := service.NewAuditService(auditRepo, authorizer)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService)
	orgHandler := handler.NewOrganizationHandler(orgService, auditService)
	memberHandler := handler.NewMemberHandler(memberService)
	roleHandler := handler.NewRoleHandler(roleService)
	itemHandler := handler.NewContentItemHandler(itemService)
	taskHandler := handler.NewTaskHandler(taskService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(tokenManager))

			r.Post("/users/{userID}/organizations", orgHandler.Onboard)
			r.Get("/permissions", roleHandler.PermissionCatalog)

			r.Route("/organizations", func(r chi.Router) {
				r.Get("/", orgHandler.List)
				r.Post("/", orgHandler.Create)
				r.Get("/by-slug/{slug}", orgHandler.GetBySlug)

				r.Route("/{orgID}", func(r chi.Router) {
					r.Get("/", orgHandler.Get)
					r.Patch("/", orgHandler.Update)
					r.Delete("/", orgHandler.Delete)
					r.Get("/audit-logs", orgHandler.AuditLogs)
					r.Post("/ownership-transfers", memberHandler.TransferOwnership)

					r.Route("/members", func(r chi.Router) {
						r.Get("/", memberHandler.List)
						r.Post("/", memberHandler.Add)
						r.Get("/{userID}", memberHandler.Get)
						r.Patch("/{userID}", memberHandler.Update)
						r.Delete("/{userID}", memberHandler.Remove)
					})

					r.Route("/roles", func(r chi.Router) {
						r.Get("/", roleHandler.List)
						r.Post("/", roleHandler.Create)
						r.Get("/{roleID}", roleHandler.Get)
						r.Patch("/{roleID}", roleHandler.Update)
						r.Delete("/{roleID}", roleHandler.Delete)

						r.Route("/{roleID}/permissions", func(r chi.Router) {
							r.Get("/", roleHandler.ListPermissions)
							r.Post("/", roleHandler.AssignPermissions)
							r.Delete("/{permissionID}", roleHandler.RemovePermission)
						})
					})

					r.Route("/content-items", func(r chi.Router) {
						r.Get("/", itemHandler.List)
						r.Post("/", itemHandler.Create)
					})

					r.Route("/tasks", func(r chi.Router) {
						r.Get("/", taskHandler.List)
						r.Post("/", taskHandler.Create)
					})
				})
			})

			r.Route("/content-items/{id}", func(r chi.Router) {
				r.Get("/", itemHandler.Get)
				r.Patch("/", itemHandler.Update)
				r.Delete("/", itemHandler.Delete)
			})

			r.Route("/tasks/{id}", func(r chi.Router) {
				r.Get("/", taskHandler.Get)
				r.Patch("/", taskHandler.Update)
				r.Delete("/", taskHandler.Delete)
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Write([]byte("{\"error\":\"error encountered\"}"))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

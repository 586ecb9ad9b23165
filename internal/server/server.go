// Package server contains the HTTP handlers and routing for the postboard pages.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"postboard/internal/config"
	"postboard/internal/database"
	"postboard/internal/middleware"
	"postboard/internal/models"
	"postboard/internal/repository"
	"postboard/internal/service"
	"postboard/internal/views"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	accountRepo    repository.AccountRepository
	postRepo       repository.PostRepository
	accountService *service.AccountService
	postService    *service.PostService
}

// NewServer connects to the configured database and builds a Server on top of it.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, db)
}

// NewServerWithDeps creates a Server using an already-initialized database.
// Use this in tests or when a bootstrap layer owns the connection.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) (*Server, error) {
	if db == nil {
		return nil, errors.New("database is required")
	}

	server := &Server{
		config:         cfg,
		db:             db,
		promMiddleware: middleware.InitMetrics("postboard"),
		accountRepo:    repository.NewAccountRepository(db),
		postRepo:       repository.NewPostRepository(db),
	}
	server.accountService = service.NewAccountService(server.accountRepo, server.postRepo)
	server.postService = service.NewPostService(server.postRepo)

	return server, nil
}

// NewApp builds the Fiber app with the embedded views, middleware, and routes.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Postboard",
		Views:        views.Engine(),
		ViewsLayout:  views.DefaultLayout,
		ErrorHandler: errorHandler,
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// errorHandler renders errors that escaped a handler as the JSON error body.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(models.ErrorResponse{Detail: fe.Message})
	}
	middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", "error", err)
	return models.RespondWithError(c, mapServiceError(err), err)
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	app.Use(middleware.TracingMiddleware())

	// Context Middleware to propagate Request ID and Trace ID
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.HealthCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	app.Get("/", s.Home)

	// Account pages
	app.Get("/users", s.ListAccounts)
	app.Get("/add_user_form", s.AddAccountForm)
	users := app.Group("/users")
	users.Post("/add", s.CreateAccount)
	users.Get("/:id/edit_form", s.EditAccountForm)
	users.Post("/:id/edit", s.UpdateAccount)
	users.Get("/:id/delete_form", s.DeleteAccountForm)
	users.Post("/:id/delete", s.DeleteAccount)
	users.Get("/:id/posts", s.ListAccountPosts)

	// Post pages
	app.Get("/posts", s.ListPosts)
	app.Get("/add_post_form", s.AddPostForm)
	posts := app.Group("/posts")
	posts.Post("/add", s.CreatePost)
	posts.Get("/:id/edit_form", s.EditPostForm)
	posts.Post("/:id/edit", s.UpdatePost)
	posts.Get("/:id/delete_form", s.DeletePostForm)
	posts.Post("/:id/delete", s.DeletePost)
}

// HealthCheck is an alias for ReadinessCheck
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return s.ReadinessCheck(c)
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck reports whether the database answers a ping.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if s.db == nil {
		dbStatus = "unavailable"
	} else if err := database.Ping(ctx, s.db); err != nil {
		middleware.Logger.WarnContext(ctx, "readiness check failed", "error", err)
		dbStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
		},
		"time": time.Now(),
	})
}

// Shutdown stops the HTTP server and closes the database.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutting down http server: %w", err))
		}
	}
	if s.db != nil {
		if err := database.Close(s.db); err != nil {
			errs = append(errs, fmt.Errorf("closing database: %w", err))
		}
	}

	middleware.Logger.Info("Server shutdown complete")
	return errors.Join(errs...)
}

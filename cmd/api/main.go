// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/marchkeep/marchkeep/internal/audit"
	"github.com/marchkeep/marchkeep/internal/auth"
	"github.com/marchkeep/marchkeep/internal/billing"
	"github.com/marchkeep/marchkeep/internal/cache"
	"github.com/marchkeep/marchkeep/internal/config"
	"github.com/marchkeep/marchkeep/internal/email"
	"github.com/marchkeep/marchkeep/internal/email/mailer"
	"github.com/marchkeep/marchkeep/internal/handler"
	"github.com/marchkeep/marchkeep/internal/metrics"
	"github.com/marchkeep/marchkeep/internal/middleware"
	"github.com/marchkeep/marchkeep/internal/repository"
	"github.com/marchkeep/marchkeep/internal/service"
	"github.com/marchkeep/marchkeep/internal/tenant"

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
	tenantRepo := repository.NewTenantRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	inviteRepo := repository.NewInviteCodeRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	relRepo := repository.NewStudentParentRepository(db)
	categoryRepo := repository.NewPaymentCategoryRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	guestRepo := repository.NewGuestPaymentRepository(db)
	stripeCacheRepo := repository.NewStripeCacheRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.ProviderSendgrid)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	sender := mailer.NewSender(emailService)

	// Tenant resolution caches. Redis is optional; with no address the
	// distributed tier is skipped entirely.
	localCache := cache.NewInMemoryCache(tenant.MemoryTTL, time.Minute)
	localCache.StartCleanup(context.Background())
	defer localCache.StopCleanup()

	var redisCache *cache.RedisCache
	if cfg.Redis.Addr != "" {
		redisCache = cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer redisCache.Close()
	}

	parser := tenant.NewParser(cfg.Routing.RootDomain, cfg.Routing.StagingDomain, cfg.BaseURL)
	resolver := tenant.NewResolver(localCache, redisCache, tenantRepo, logger)

	// Payment provider
	billingClient := billing.NewClient(cfg.Stripe.SecretKey)

	// Initialize services
	auditLogger := audit.NewDBLogger(db, logger)
	userService := service.NewUserService(userRepo, membershipRepo, passwordHasher, tokenManager, cfg)
	tenantService := service.NewTenantService(tenantRepo, membershipRepo, inviteRepo, resolver, parser, sender, logger)
	guestService := service.NewGuestMatchService(guestRepo, studentRepo, userRepo, relRepo, categoryRepo, enrollmentRepo, paymentRepo, auditLogger, sender, logger)
	studentService := service.NewStudentService(studentRepo, relRepo, userRepo, guestService, auditLogger, sender, logger)
	syncService := service.NewSyncService(userRepo, enrollmentRepo, studentRepo, stripeCacheRepo, billingClient, logger)
	paymentService := service.NewPaymentService(categoryRepo, enrollmentRepo, relRepo, studentRepo, userRepo, stripeCacheRepo, billingClient, syncService, logger)

	// Background reconciliation of stale payment snapshots
	reconciler := service.NewReconciliationService(userRepo, stripeCacheRepo, syncService, 30*time.Minute, logger)
	reconciler.Start()
	defer reconciler.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService)
	studentHandler := handler.NewStudentHandler(studentService)
	directorHandler := handler.NewDirectorHandler(userService, studentService, guestService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	webhookHandler := handler.NewWebhookHandler(cfg.Stripe.WebhookSecret, tenantService, paymentRepo, guestRepo, syncService, logger)
	tenantHandler := handler.NewTenantHandler(tenantService, parser)

	tenantRouter := middleware.NewTenantRouter(parser, resolver, logger)
	httpMetrics := metrics.NewHTTPMetrics("marchkeep-api")

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(httpMetrics.Middleware)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(tenantRouter.Handler)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})
	r.Handle("/metrics", metrics.Handler())

	// Placeholder pages tenant traffic is rewritten to
	r.Get("/onboarding-incomplete", placeholderPage("Onboarding in progress", "This school is still setting up payments. Check back soon."))
	r.Get("/maintenance", placeholderPage("Temporarily unavailable", "This site is temporarily unavailable."))
	r.Get("/reserved", placeholderPage("Reserved", "This address is reserved."))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(chimw.AllowContentType("application/json"))

				// Auth routes
				r.Post("/signup", authHandler.SignupHandler)
				r.Post("/login", authHandler.LoginHandler)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthMiddleware(tokenManager))
				r.Get("/me", authHandler.MeHandler)
			})
		})

		// Edge-facing tenant lookup
		r.Get("/internal/tenant", tenantHandler.LookupHandler)

		// Main-site public routes
		r.Get("/subdomain/check", tenantHandler.CheckSubdomainHandler)
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Use(middleware.AuthMiddleware(tokenManager))
			r.Post("/schools/create", tenantHandler.CreateSchoolHandler)
		})

		// Provider webhooks; reachable for pending tenants
		r.Post("/webhooks/stripe", webhookHandler.StripeHandler)

		// Tenant-site public routes
		r.Get("/payments/categories", paymentHandler.CategoriesHandler)
		r.With(chimw.AllowContentType("application/json")).
			Post("/payments/guest-checkout", paymentHandler.GuestCheckoutHandler)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Use(middleware.AuthMiddleware(tokenManager))

			// Parent student routes
			r.Route("/students", func(r chi.Router) {
				r.Get("/", studentHandler.ListHandler)
				r.Post("/", studentHandler.AddHandler)
				r.Post("/add", studentHandler.AddHandler)
				r.Post("/match", studentHandler.MatchHandler)
			})

			// Director routes
			r.Route("/director", func(r chi.Router) {
				r.Get("/students", directorHandler.RosterHandler)
				r.Post("/students", directorHandler.CreateStudentHandler)
				r.Patch("/students/{id}", directorHandler.UpdateStudentHandler)
				r.Get("/links", directorHandler.PendingLinksHandler)
				r.Patch("/links/{id}", directorHandler.LinkActionHandler)
				r.Patch("/students/{id}/link", directorHandler.LinkActionHandler)
				r.Get("/guest-payments", directorHandler.GuestPaymentsHandler)
				r.Get("/guest-payments/{id}/suggestions", directorHandler.GuestSuggestionsHandler)
				r.Post("/guest-payments/{id}/resolve", directorHandler.ResolveGuestPaymentHandler)
			})

			// Payment routes
			r.Route("/payments", func(r chi.Router) {
				r.Post("/create-checkout", paymentHandler.CreateCheckoutHandler)
				r.Post("/enroll", paymentHandler.EnrollHandler)
				r.Delete("/enroll", paymentHandler.UnenrollHandler)
				r.Get("/enrollments", paymentHandler.EnrollmentsHandler)
				r.Get("/history", paymentHandler.HistoryHandler)
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

func placeholderPage(title, body string) http.HandlerFunc {
	page := fmt.Sprintf("<!DOCTYPE html><html><head><title>%s</title></head><body><h1>%s</h1><p>%s</p></body></html>", title, title, body)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(page))
	}
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
		Logger: logger.Default.LogMode(logger.Info),
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

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte("{\"error\":\"error encountered\"}"))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"hrpulse/internal/domain/audit"
	"hrpulse/internal/domain/auth"
	"hrpulse/internal/domain/employee"
	"hrpulse/internal/domain/evaluation"
	"hrpulse/internal/platform/config"
	"hrpulse/internal/platform/db"
	"hrpulse/internal/platform/metrics"
	"hrpulse/internal/transport/http/api"
	analyticshandler "hrpulse/internal/transport/http/handlers/analytics"
	authhandler "hrpulse/internal/transport/http/handlers/auth"
	evaluationhandler "hrpulse/internal/transport/http/handlers/evaluations"
	"hrpulse/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	employees := employee.NewService(employee.NewStore(pool))
	evaluations := evaluation.NewService(evaluation.NewStore(pool))
	auditSvc := audit.NewService(pool)
	collector := metrics.New()

	isProd := cfg.Environment == "production"

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(isProd))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(collector))
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			api.Success(w, map[string]bool{"ok": true}, middleware.GetRequestID(req.Context()))
		})

		r.Get("/ready", func(w http.ResponseWriter, req *http.Request) {
			pingCtx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
			defer cancel()
			if err := pool.Ping(pingCtx); err != nil {
				api.Fail(w, http.StatusServiceUnavailable, "not_ready", "database not ready", middleware.GetRequestID(req.Context()))
				return
			}
			api.Success(w, map[string]bool{"ready": true}, middleware.GetRequestID(req.Context()))
		})

		authHandler := authhandler.NewHandler(employees, cfg.JWTSecret, auditSvc)
		r.With(middleware.RateLimit(
			cfg.LoginRateLimit,
			cfg.LoginRateWindow,
			middleware.WithKeyFunc(middleware.AuthEmailOrIPKey("email")),
		)).Post("/login", authHandler.HandleLogin)

		r.Group(func(protected chi.Router) {
			protected.Use(middleware.Auth(cfg.JWTSecret, employees))

			evaluationhandler.NewHandler(evaluations, employees, auditSvc).RegisterRoutes(protected)
			analyticshandler.NewHandler(evaluations).RegisterRoutes(protected)

			if cfg.MetricsEnabled {
				protected.With(middleware.RequireRole(auth.RoleAdmin)).
					Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
						api.Success(w, collector.Snapshot(), middleware.GetRequestID(req.Context()))
					})
			}
		})
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	log.Printf("server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// spaHandler serves the built frontend and falls back to index.html for
// client-side routes.
type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}

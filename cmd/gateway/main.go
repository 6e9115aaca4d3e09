package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/juris-sim/jurisim/internal/api/http"
	auth "github.com/juris-sim/jurisim/internal/auth/middleware"
	"github.com/juris-sim/jurisim/internal/camara"
	"github.com/juris-sim/jurisim/internal/catalog"
	"github.com/juris-sim/jurisim/internal/config"
	"github.com/juris-sim/jurisim/internal/db"
	"github.com/juris-sim/jurisim/internal/grading"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	// --- Catalog ---
	entries, warnings, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("load catalog %s: %v", cfg.CatalogPath, err)
	}
	for _, wmsg := range warnings {
		log.Printf("catalog warning: %s", wmsg)
	}
	log.Printf("catalog loaded: %d entries from %s", len(entries), cfg.CatalogPath)

	var store catalog.Store
	if cfg.DBDriver != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		sqlStore := catalog.NewSQLStore(dbh, cfg.DBDriver)
		if err := sqlStore.ReplaceAll(ctx, entries); err != nil {
			log.Fatalf("seed catalog: %v", err)
		}
		store = sqlStore
	} else {
		store = catalog.NewMemoryStore(entries)
	}

	evaluator := grading.NewEvaluator(grading.WithThreshold(cfg.MatchThreshold))

	// --- Auth (local JWT) ---
	authSvc := auth.NewAuthService(cfg.AuthHMACSecret)
	creds := auth.Credentials{User: cfg.AdminUser, PassHash: cfg.AdminPassHash}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.EnableLocalAuth {
		r.Post("/auth/login", auth.LoginHandler(authSvc, creds))
	}

	r.Get("/cases", api.ListCasesHandler(store))
	r.Get("/cases/{caseID}/principles", api.CasePrinciplesHandler(store))
	r.Post("/cases/automap", api.AutoMapHandler(store))
	r.Post("/evaluate", api.EvaluateHandler(store, evaluator))
	r.Post("/report", api.ReportHandler(store, evaluator))

	if cfg.EnableCamara {
		client := camara.NewClient(cfg.CamaraBaseURL)
		r.Get("/proposals", api.SearchProposalsHandler(client))
	}

	// Teacher-only catalog replacement
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireRole(authSvc, "teacher"))
		pr.Post("/catalog", api.UploadCatalogHandler(store))
	})

	log.Printf("listening on %s (mode=%s, threshold=%.2f)", cfg.HTTPAddr, cfg.Mode, evaluator.Threshold())
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalf("http server: %v", err)
	}
}

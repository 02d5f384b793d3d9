package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/psymetric/ocean-engine/internal/api/http"
	"github.com/psymetric/ocean-engine/internal/assess"
	auth "github.com/psymetric/ocean-engine/internal/auth/middleware"
	"github.com/psymetric/ocean-engine/internal/cache"
	"github.com/psymetric/ocean-engine/internal/config"
	"github.com/psymetric/ocean-engine/internal/db"
	"github.com/psymetric/ocean-engine/internal/facets"
	"github.com/psymetric/ocean-engine/internal/rbac"
	"github.com/psymetric/ocean-engine/internal/scoring"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := assess.NewSQLStore(dbh)

	// --- Scoring tables (loaded once; immutable afterwards) ---
	norms := scoring.DefaultNorms()
	if cfg.NormTablePath != "" {
		norms, err = scoring.LoadNorms(cfg.NormTablePath)
		if err != nil {
			log.Fatalf("norm table: %v", err)
		}
	}
	resolver := scoring.NewMappingResolver(scoring.NewRegexReverseDetector())
	engine := scoring.NewEngine(norms, resolver)

	var facetEng *facets.Engine
	if cfg.CorrelationTablePath != "" {
		correlations, err := facets.LoadCorrelations(cfg.CorrelationTablePath)
		if err != nil {
			log.Fatalf("correlation table: %v", err)
		}
		facetEng = facets.NewEngine(correlations, nil)
	}

	// --- Result cache (optional; cold cache only costs latency) ---
	var resultCache cache.Cache = cache.None{}
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, "ocean")
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		resultCache = rc
	}

	svc := assess.NewService(store, engine, facetEng, resultCache)

	// --- Auth ---
	secret := getenvOr("AUTH_HMAC_SECRET", "supersecret-dev-key")
	authSvc := auth.NewAuthService(secret, cfg.AdminUser, cfg.AdminPassHash)

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
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.EnableLocalAuth {
		r.Post("/auth/login", auth.LoginHandler(authSvc))
	}

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require(rbac.PermResponsesSubmit)).
			Post("/responses", api.SubmitResponsesHandler(svc))

		pr.With(rbac.Require(rbac.PermScoreCompute)).
			Post("/responses/{responseID}/score", api.ScoreHandler(svc))
		pr.With(rbac.RequireOwnerOr(rbac.PermScoreViewAll, api.ResponseOwner(svc))).
			Get("/responses/{responseID}/score", api.GetScoreHandler(svc))

		pr.With(rbac.Require(rbac.PermRiskView)).
			Get("/responses/{responseID}/report", api.RiskReportHandler(svc))
		pr.With(rbac.Require(rbac.PermRiskView)).
			Post("/responses/{responseID}/report", api.RiskReportHandler(svc))

		pr.With(rbac.Require(rbac.PermAggregateCompute)).
			Post("/subjects/{subjectID}/aggregate", api.AggregateSubjectHandler(svc))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func getenvOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

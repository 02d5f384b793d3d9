package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/psymetric/ocean-engine/internal/assess"
	auth "github.com/psymetric/ocean-engine/internal/auth/middleware"
	"github.com/psymetric/ocean-engine/internal/ocean"
	"github.com/psymetric/ocean-engine/internal/rbac"
	"github.com/psymetric/ocean-engine/internal/scoring"
)

// asUser stands in for the JWT middleware: it injects an authenticated
// subject and role into the request context.
func asUser(sub, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := auth.WithSubject(r.Context(), sub)
			ctx = rbac.WithRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func scoredService(t *testing.T) (*assess.Service, string) {
	t.Helper()
	resolver := scoring.NewMappingResolver(nil)
	resolver.Register("bigfive.v1", []scoring.QuestionTraitMapping{
		{QuestionID: "q1", TraitWeights: map[ocean.Trait]float64{ocean.Openness: 1.0}},
	})
	svc := assess.NewService(assess.NewInMemoryStore(), scoring.NewEngine(nil, resolver), nil, nil)

	ctx := context.Background()
	rs, err := svc.Submit(ctx, assess.ResponseSet{
		AssessmentID: "bigfive.v1",
		SubjectID:    "alice",
		Responses:    []scoring.Response{{QuestionID: "q1", Answer: 4.0}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Score(ctx, rs.ID); err != nil {
		t.Fatal(err)
	}
	return svc, rs.ID
}

func TestGetScoreOwnership(t *testing.T) {
	svc, responseID := scoredService(t)

	cases := []struct {
		name string
		sub  string
		role string
		want int
	}{
		{"owner respondent", "alice", "respondent", http.StatusOK},
		{"other respondent", "mallory", "respondent", http.StatusForbidden},
		{"practitioner", "drdoe", "practitioner", http.StatusOK},
		{"admin", "root", "admin", http.StatusOK},
		{"unauthenticated subject", "", "respondent", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Use(asUser(tc.sub, tc.role))
			r.With(rbac.RequireOwnerOr(rbac.PermScoreViewAll, ResponseOwner(svc))).
				Get("/responses/{responseID}/score", GetScoreHandler(svc))

			req := httptest.NewRequest(http.MethodGet, "/responses/"+responseID+"/score", nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestGetScoreOwnershipUnknownID(t *testing.T) {
	svc, _ := scoredService(t)

	r := chi.NewRouter()
	r.Use(asUser("alice", "respondent"))
	r.With(rbac.RequireOwnerOr(rbac.PermScoreViewAll, ResponseOwner(svc))).
		Get("/responses/{responseID}/score", GetScoreHandler(svc))

	// An ID alice does not own is forbidden before the handler can 404.
	req := httptest.NewRequest(http.MethodGet, "/responses/no-such-set/score", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

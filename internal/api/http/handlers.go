package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/psymetric/ocean-engine/internal/assess"
	auth "github.com/psymetric/ocean-engine/internal/auth/middleware"
	"github.com/psymetric/ocean-engine/internal/ocean"
)

// ResponseOwner reports whether the authenticated subject owns the response
// set addressed by the route. Unknown IDs and lookup failures are simply not
// owned; the handler behind the guard produces the real error.
func ResponseOwner(svc *assess.Service) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		sub := auth.SubjectFromContext(r.Context())
		if sub == "" {
			return false
		}
		owner, err := svc.Owner(r.Context(), chi.URLParam(r, "responseID"))
		return err == nil && owner == sub
	}
}

// SubmitResponsesHandler accepts a raw response set.
// POST /responses
func SubmitResponsesHandler(svc *assess.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rs assess.ResponseSet
		if err := json.NewDecoder(r.Body).Decode(&rs); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		out, err := svc.Submit(r.Context(), rs)
		if err != nil {
			http.Error(w, "submit: "+err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, out)
	}
}

// ScoreHandler recomputes a response set's scores from its raw responses.
// POST /responses/{responseID}/score
func ScoreHandler(svc *assess.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "responseID"))
		if id == "" {
			http.Error(w, "responseID required", http.StatusBadRequest)
			return
		}
		d, err := svc.Score(r.Context(), id)
		if err != nil {
			writeStoreErr(w, "score", err)
			return
		}
		writeJSON(w, d)
	}
}

// GetScoreHandler returns the stored score details.
// GET /responses/{responseID}/score
func GetScoreHandler(svc *assess.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "responseID"))
		if id == "" {
			http.Error(w, "responseID required", http.StatusBadRequest)
			return
		}
		d, err := svc.Result(r.Context(), id)
		if err != nil {
			writeStoreErr(w, "load score", err)
			return
		}
		writeJSON(w, d)
	}
}

type riskReq struct {
	StressLevel int                `json:"stress_level"`
	Observer    map[string]float64 `json:"observer,omitempty"`
}

// RiskReportHandler derives the interpretation/risk report for a scored
// response set. Stress defaults to the scale midpoint when unspecified.
// GET  /responses/{responseID}/report?stress=n
// POST /responses/{responseID}/report  {"stress_level": n, "observer": {"openness": 3.2, ...}}
func RiskReportHandler(svc *assess.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "responseID"))
		if id == "" {
			http.Error(w, "responseID required", http.StatusBadRequest)
			return
		}

		stress := 5
		var observer map[ocean.Trait]float64
		if r.Method == http.MethodPost {
			var req riskReq
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
				return
			}
			if req.StressLevel != 0 {
				stress = req.StressLevel
			}
			if len(req.Observer) > 0 {
				observer = make(map[ocean.Trait]float64, len(req.Observer))
				for name, v := range req.Observer {
					t, err := ocean.ParseTrait(name)
					if err != nil {
						http.Error(w, "observer: "+err.Error(), http.StatusBadRequest)
						return
					}
					observer[t] = v
				}
			}
		} else if s := r.URL.Query().Get("stress"); s != "" {
			v, err := strconv.Atoi(s)
			if err != nil {
				http.Error(w, "stress must be an integer", http.StatusBadRequest)
				return
			}
			stress = v
		}

		rep, err := svc.Report(r.Context(), id, stress, observer)
		if err != nil {
			writeStoreErr(w, "report", err)
			return
		}
		writeJSON(w, rep)
	}
}

type aggregateReq struct {
	Weights []float64 `json:"weights,omitempty"`
}

// AggregateSubjectHandler combines all of a subject's scored response sets.
// POST /subjects/{subjectID}/aggregate  {"weights": [...]}
func AggregateSubjectHandler(svc *assess.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subjectID := strings.TrimSpace(chi.URLParam(r, "subjectID"))
		if subjectID == "" {
			http.Error(w, "subjectID required", http.StatusBadRequest)
			return
		}
		var req aggregateReq
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
				return
			}
		}
		d, err := svc.AggregateSubject(r.Context(), subjectID, req.Weights)
		if err != nil {
			http.Error(w, "aggregate: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
		writeJSON(w, d)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeStoreErr(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, assess.ErrNotFound) {
		http.Error(w, op+": not found", http.StatusNotFound)
		return
	}
	http.Error(w, op+": "+err.Error(), http.StatusInternalServerError)
}

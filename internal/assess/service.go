package assess

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/psymetric/ocean-engine/internal/cache"
	"github.com/psymetric/ocean-engine/internal/facets"
	"github.com/psymetric/ocean-engine/internal/interpret"
	"github.com/psymetric/ocean-engine/internal/ocean"
	"github.com/psymetric/ocean-engine/internal/scoring"
)

const resultTTL = 10 * time.Minute

// Service orchestrates the scoring pipeline over stored response sets:
// resolve mappings, run the trait and facet engines, derive the
// interpretation layers, persist the result. Scoring is a pure function of
// the stored responses, so the injected cache only short-circuits repeat
// reads; a cold cache changes nothing but latency.
type Service struct {
	store    Store
	engine   *scoring.Engine
	facetEng *facets.Engine
	cache    cache.Cache
}

// NewService wires a service. facetEng may be nil when no correlation table
// is configured; results then omit facet detail. A nil cache disables
// caching.
func NewService(store Store, engine *scoring.Engine, facetEng *facets.Engine, c cache.Cache) *Service {
	if c == nil {
		c = cache.None{}
	}
	return &Service{store: store, engine: engine, facetEng: facetEng, cache: c}
}

// Submit stores a new response set, assigning an ID when absent.
func (s *Service) Submit(ctx context.Context, rs ResponseSet) (ResponseSet, error) {
	if rs.ID == "" {
		rs.ID = uuid.NewString()
	}
	if rs.Tier == "" {
		rs.Tier = facets.TierIndividual
	}
	if len(rs.Responses) == 0 {
		return ResponseSet{}, fmt.Errorf("response set %s has no responses", rs.ID)
	}
	if err := s.store.PutResponseSet(ctx, rs); err != nil {
		return ResponseSet{}, err
	}
	// A resubmitted set invalidates any previously cached result.
	s.cache.Invalidate(ctx, resultKey(rs.ID))
	return rs, nil
}

// Score recomputes a response set's result from its raw responses and
// persists it. Scoring is idempotent: repeated calls rebuild the same
// details rather than incrementally mutating the stored ones.
func (s *Service) Score(ctx context.Context, responseID string) (ocean.ScoreDetails, error) {
	rs, err := s.store.GetResponseSet(ctx, responseID)
	if err != nil {
		return ocean.ScoreDetails{}, err
	}

	mappings := s.engine.Resolver().Resolve(rs.AssessmentID, rs.Questions)
	details := s.engine.Score(rs.Responses, mappings)

	if s.facetEng != nil {
		details.FacetDetail = s.facetEng.ScoreAll(rs.Responses, rs.Tier)
	}

	if err := s.store.SaveResult(ctx, rs.ID, rs.AssessmentID, details); err != nil {
		return ocean.ScoreDetails{}, err
	}
	if payload, err := json.Marshal(details); err == nil {
		s.cache.Set(ctx, resultKey(rs.ID), payload, resultTTL)
	}
	return details, nil
}

// Owner returns the subject a response set is about, for ownership checks
// on subject-scoped reads.
func (s *Service) Owner(ctx context.Context, responseID string) (string, error) {
	rs, err := s.store.GetResponseSet(ctx, responseID)
	if err != nil {
		return "", err
	}
	return rs.SubjectID, nil
}

// Result returns the stored score details for a response set, consulting
// the cache first. ErrNotFound means the set has not been scored.
func (s *Service) Result(ctx context.Context, responseID string) (ocean.ScoreDetails, error) {
	if payload, ok := s.cache.Get(ctx, resultKey(responseID)); ok {
		var d ocean.ScoreDetails
		if err := json.Unmarshal(payload, &d); err == nil {
			return d, nil
		}
		// Undecodable cache entries are dropped and recomputed from
		// the store.
		s.cache.Invalidate(ctx, resultKey(responseID))
	}
	d, err := s.store.LoadResult(ctx, responseID)
	if err != nil {
		return ocean.ScoreDetails{}, err
	}
	if payload, err := json.Marshal(d); err == nil {
		s.cache.Set(ctx, resultKey(responseID), payload, resultTTL)
	}
	return d, nil
}

// Report is the enriched reading of one scored response set.
type Report struct {
	ResponseID          string                        `json:"response_id"`
	Details             ocean.ScoreDetails            `json:"details"`
	Interpretation      interpret.Interpretation      `json:"interpretation"`
	EmotionalRegulation interpret.EmotionalRegulation `json:"emotional_regulation"`
	DarkSideRisks       interpret.RiskProfile         `json:"dark_side_risks"`
	Coverage            *facets.CoverageReport        `json:"coverage,omitempty"`
}

// Report derives the full interpretation/risk report for a scored response
// set. stressLevel is the subject's self-reported 1–10 stress; observer
// optionally carries observer trait ratings for the risk model.
func (s *Service) Report(ctx context.Context, responseID string, stressLevel int, observer map[ocean.Trait]float64) (Report, error) {
	d, err := s.Result(ctx, responseID)
	if err != nil {
		return Report{}, err
	}
	rep := Report{
		ResponseID:          responseID,
		Details:             d,
		Interpretation:      interpret.Interpret(d),
		EmotionalRegulation: interpret.AssessRegulation(d),
		DarkSideRisks:       interpret.AssessRisk(d, stressLevel, observer),
	}
	if d.FacetDetail != nil {
		cov := facets.Coverage(d.FacetDetail)
		rep.Coverage = &cov
	}
	return rep, nil
}

// AggregateSubject combines every scored response set for a subject
// (multiple raters or repeated administrations) into one score set. Sets
// without a stored result are scored on the fly. Weights follow the
// subject's response sets in submission order (CreatedAt, ID as tie-break)
// and default to uniform.
func (s *Service) AggregateSubject(ctx context.Context, subjectID string, weights []float64) (ocean.ScoreDetails, error) {
	sets, err := s.store.ListBySubject(ctx, subjectID)
	if err != nil {
		return ocean.ScoreDetails{}, err
	}
	var scored []ocean.ScoreDetails
	for _, rs := range sets {
		d, err := s.store.LoadResult(ctx, rs.ID)
		if errors.Is(err, ErrNotFound) {
			d, err = s.Score(ctx, rs.ID)
		}
		if err != nil {
			return ocean.ScoreDetails{}, err
		}
		scored = append(scored, d)
	}
	return s.engine.CombineScoreSets(scored, weights)
}

func resultKey(responseID string) string { return "result:" + responseID }

package facets

import (
	"math"
	"testing"

	"github.com/psymetric/ocean-engine/internal/ocean"
	"github.com/psymetric/ocean-engine/internal/scoring"
)

func TestScoreFacetNoCoverageSentinel(t *testing.T) {
	e := NewEngine(nil, nil)
	got := e.ScoreFacet([]scoring.Response{{QuestionID: "n1", Answer: 5.0}}, ocean.N1Anxiety, TierIndividual)
	if got.Score != 0 || got.Confidence != 0 || got.NItems != 0 {
		t.Errorf("no-coverage sentinel violated: %+v", got)
	}
	if got.Covered() {
		t.Error("zero-coverage facet must not report as covered")
	}
}

func TestScoreFacetSingleItem(t *testing.T) {
	e := NewEngine([]NodeCorrelation{
		{NodeID: "n1", Facet: ocean.N1Anxiety, Correlation: 0.8, Type: MappingDirect, Confidence: 0.9},
	}, nil)
	resp := []scoring.Response{{QuestionID: "n1", Answer: 6.0, Format: scoring.FormatLikert6}}

	got := e.ScoreFacet(resp, ocean.N1Anxiety, TierIndividual)
	// normalized = (6−3.5)/2.5 = 1.0; weight = 0.8×0.9 = 0.72;
	// score = (1.0×0.8×0.72)/0.72 = 0.8
	if math.Abs(got.Score-0.8) > 1e-12 {
		t.Errorf("score = %v, want 0.8", got.Score)
	}
	if math.Abs(got.Confidence-0.072) > 1e-12 {
		t.Errorf("confidence = %v, want 0.072", got.Confidence)
	}
	if got.NItems != 1 {
		t.Errorf("n_items = %d, want 1", got.NItems)
	}
	// Simplified conversions on the facet path.
	if math.Abs(got.Percentile-(0.8+3)/6*100) > 1e-9 {
		t.Errorf("percentile = %v", got.Percentile)
	}
	if math.Abs(got.TScore-(50+10*0.8/1.5)) > 1e-9 {
		t.Errorf("t_score = %v", got.TScore)
	}
}

func TestScoreFacetConfidenceCap(t *testing.T) {
	// 12 fully-confident unit correlations: Σweight = 12 ≥ 10 caps
	// confidence at 1.0.
	var corrs []NodeCorrelation
	var resps []scoring.Response
	for i := 0; i < 12; i++ {
		id := string(rune('a' + i))
		corrs = append(corrs, NodeCorrelation{NodeID: id, Facet: ocean.C2Order, Correlation: 1.0, Confidence: 1.0})
		resps = append(resps, scoring.Response{QuestionID: id, Answer: 2.0})
	}
	got := NewEngine(corrs, nil).ScoreFacet(resps, ocean.C2Order, TierIndividual)
	if got.Confidence != 1.0 {
		t.Errorf("confidence = %v, want cap at 1.0", got.Confidence)
	}
	if got.NItems != 12 {
		t.Errorf("n_items = %d, want 12", got.NItems)
	}
}

func TestScoreFacetBooleanAndChoice(t *testing.T) {
	e := NewEngine([]NodeCorrelation{
		{NodeID: "b1", Facet: ocean.E1Warmth, Correlation: 1.0, Confidence: 1.0},
		{NodeID: "c1", Facet: ocean.E2Gregariousness, Correlation: 1.0, Confidence: 1.0},
	}, nil)

	boolScore := e.ScoreFacet([]scoring.Response{{QuestionID: "b1", Answer: true, Format: scoring.FormatBoolean}}, ocean.E1Warmth, TierIndividual)
	if boolScore.Score != 1.0 {
		t.Errorf("true → %v, want 1.0", boolScore.Score)
	}
	boolScore = e.ScoreFacet([]scoring.Response{{QuestionID: "b1", Answer: false, Format: scoring.FormatBoolean}}, ocean.E1Warmth, TierIndividual)
	if boolScore.Score != -1.0 {
		t.Errorf("false → %v, want -1.0", boolScore.Score)
	}

	// Multiple-choice values pass through clamped to the facet scale.
	choice := e.ScoreFacet([]scoring.Response{{QuestionID: "c1", Answer: 7.0, Format: scoring.FormatChoice}}, ocean.E2Gregariousness, TierIndividual)
	if choice.Score != 3.0 {
		t.Errorf("choice 7 → %v, want clamp to 3.0", choice.Score)
	}
}

func TestScoreFacetNegativeCorrelation(t *testing.T) {
	e := NewEngine([]NodeCorrelation{
		{NodeID: "n1", Facet: ocean.A1Trust, Correlation: -0.8, Type: MappingInverse, Confidence: 1.0},
	}, nil)
	resp := []scoring.Response{{QuestionID: "n1", Answer: 6.0, Format: scoring.FormatLikert6}}

	got := e.ScoreFacet(resp, ocean.A1Trust, TierIndividual)
	// normalized flips to −1.0, then the correlation factor in the
	// weighted score flips it back: (−1.0×−0.8×0.8)/0.8 = 0.8.
	if math.Abs(got.Score-0.8) > 1e-12 {
		t.Errorf("score = %v, want 0.8", got.Score)
	}
}

func TestTierModifierTable(t *testing.T) {
	mods := TierModifiers{TierExecutive: 0.5}
	e := NewEngine([]NodeCorrelation{
		{NodeID: "n1", Facet: ocean.O5Ideas, Correlation: 1.0, Confidence: 1.0},
	}, mods)
	resp := []scoring.Response{{QuestionID: "n1", Answer: 6.0, Format: scoring.FormatLikert6}}

	exec := e.ScoreFacet(resp, ocean.O5Ideas, TierExecutive)
	if math.Abs(exec.Confidence-0.05) > 1e-12 {
		t.Errorf("executive confidence = %v, want 0.05 (halved weight)", exec.Confidence)
	}
	// Tiers absent from the table default to 1.0.
	ind := e.ScoreFacet(resp, ocean.O5Ideas, TierIndividual)
	if math.Abs(ind.Confidence-0.1) > 1e-12 {
		t.Errorf("individual confidence = %v, want 0.1", ind.Confidence)
	}
}

func TestCoverageClassification(t *testing.T) {
	scores := map[ocean.Facet]ocean.FacetScore{}
	for _, f := range ocean.AllFacets() {
		scores[f] = ocean.FacetScore{} // missing by default
	}
	scores[ocean.O1Fantasy] = ocean.FacetScore{Score: 1.0, Confidence: 0.8, NItems: 4}  // covered
	scores[ocean.C2Order] = ocean.FacetScore{Score: 0.5, Confidence: 0.4, NItems: 2}    // covered but weak
	scores[ocean.N1Anxiety] = ocean.FacetScore{Score: -0.2, Confidence: 0.2, NItems: 1} // weak, not covered

	rep := Coverage(scores)
	if rep.Covered != 2 {
		t.Errorf("covered = %d, want 2", rep.Covered)
	}
	if math.Abs(rep.CoveragePct-2.0/30*100) > 1e-9 {
		t.Errorf("coverage pct = %v", rep.CoveragePct)
	}
	if len(rep.Weak) != 2 {
		t.Errorf("weak = %v, want C2_Order and N1_Anxiety", rep.Weak)
	}
	if len(rep.Missing) != 27 {
		t.Errorf("missing = %d, want 27", len(rep.Missing))
	}
}

func TestScoreAllCoversClosedSet(t *testing.T) {
	e := NewEngine(nil, nil)
	all := e.ScoreAll(nil, TierIndividual)
	if len(all) != ocean.NumFacets {
		t.Fatalf("ScoreAll returned %d facets, want %d", len(all), ocean.NumFacets)
	}
}

package scoring

import (
	"errors"
	"math"
	"testing"

	"github.com/psymetric/ocean-engine/internal/ocean"
)

func testEngine() *Engine {
	return NewEngine(nil, NewMappingResolver(nil))
}

func fullRaw(v float64) map[ocean.Trait]float64 {
	m := make(map[ocean.Trait]float64, len(ocean.AllTraits))
	for _, t := range ocean.AllTraits {
		m[t] = v
	}
	return m
}

func TestCombineEmptyIsHardError(t *testing.T) {
	e := testEngine()
	_, err := e.CombineScoreSets(nil, nil)
	if !errors.Is(err, ErrEmptyAggregation) {
		t.Fatalf("expected ErrEmptyAggregation, got %v", err)
	}
}

func TestCombineIdempotent(t *testing.T) {
	e := testEngine()
	base := e.Convert(RawScores{Traits: map[ocean.Trait]float64{
		ocean.Openness:          4.2,
		ocean.Conscientiousness: 2.8,
		ocean.Extraversion:      3.6,
		ocean.Agreeableness:     4.9,
		ocean.Neuroticism:       1.4,
	}})

	// The same set N times under uniform weights must come back unchanged.
	combined, err := e.CombineScoreSets([]ocean.ScoreDetails{base, base, base}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, tr := range ocean.AllTraits {
		if math.Abs(combined.Raw[tr]-base.Raw[tr]) > 1e-12 {
			t.Errorf("%s raw = %v, want %v", tr, combined.Raw[tr], base.Raw[tr])
		}
		if combined.Percentile[tr] != base.Percentile[tr] {
			t.Errorf("%s percentile = %d, want %d", tr, combined.Percentile[tr], base.Percentile[tr])
		}
		if combined.Stanine[tr] != base.Stanine[tr] {
			t.Errorf("%s stanine = %d, want %d", tr, combined.Stanine[tr], base.Stanine[tr])
		}
	}
}

func TestCombineRepercentilesFromRaw(t *testing.T) {
	e := testEngine()
	a := e.Convert(RawScores{Traits: fullRaw(3.0)})
	b := e.Convert(RawScores{Traits: fullRaw(3.0)})
	a.Raw[ocean.Conscientiousness] = 4.0
	b.Raw[ocean.Conscientiousness] = 2.0

	combined, err := e.CombineScoreSets([]ocean.ScoreDetails{a, b}, []float64{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := combined.Raw[ocean.Conscientiousness]; math.Abs(got-3.0) > 1e-12 {
		t.Fatalf("combined raw = %v, want 3.0", got)
	}
	// Percentile must be derived from the combined raw value, not from
	// averaging the two sets' percentiles.
	want := Percentile(3.0, e.Norms()[ocean.Conscientiousness])
	if got := combined.Percentile[ocean.Conscientiousness]; got != want {
		t.Errorf("combined percentile = %d, want %d (re-derived from raw)", got, want)
	}
}

func TestCombineExplicitWeights(t *testing.T) {
	e := testEngine()
	a := e.Convert(RawScores{Traits: fullRaw(5.0)})
	b := e.Convert(RawScores{Traits: fullRaw(1.0)})

	combined, err := e.CombineScoreSets([]ocean.ScoreDetails{a, b}, []float64{3, 1})
	if err != nil {
		t.Fatal(err)
	}
	// (5×3 + 1×1)/4 = 4.0
	for _, tr := range ocean.AllTraits {
		if got := combined.Raw[tr]; math.Abs(got-4.0) > 1e-12 {
			t.Errorf("%s = %v, want 4.0", tr, got)
		}
	}
}

func TestCombineWeightValidation(t *testing.T) {
	e := testEngine()
	set := e.Convert(RawScores{Traits: fullRaw(3.0)})

	if _, err := e.CombineScoreSets([]ocean.ScoreDetails{set}, []float64{1, 2}); err == nil {
		t.Error("mismatched weight count should error")
	}
	if _, err := e.CombineScoreSets([]ocean.ScoreDetails{set}, []float64{-1}); err == nil {
		t.Error("negative weight should error")
	}
	if _, err := e.CombineScoreSets([]ocean.ScoreDetails{set}, []float64{0}); err == nil {
		t.Error("all-zero weights should error")
	}
}

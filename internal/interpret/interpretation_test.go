package interpret

import (
	"testing"

	"github.com/psymetric/ocean-engine/internal/ocean"
)

func detailsWithStanines(st map[ocean.Trait]int) ocean.ScoreDetails {
	d := ocean.ScoreDetails{
		Raw:        make(map[ocean.Trait]float64),
		Percentile: make(map[ocean.Trait]int),
		Stanine:    make(map[ocean.Trait]int),
	}
	for _, t := range ocean.AllTraits {
		d.Raw[t] = 3.0
		d.Percentile[t] = 50
		d.Stanine[t] = 5
	}
	for t, v := range st {
		d.Stanine[t] = v
	}
	return d
}

func TestInterpretMidbandIsSilent(t *testing.T) {
	got := Interpret(detailsWithStanines(nil))
	if len(got.Strengths)+len(got.Challenges)+len(got.Recommendations) != 0 {
		t.Errorf("mid-band profile should yield no statements: %+v", got)
	}
}

func TestInterpretHighAndLowBands(t *testing.T) {
	got := Interpret(detailsWithStanines(map[ocean.Trait]int{
		ocean.Openness:     9, // strength + recommendation
		ocean.Extraversion: 1, // challenge
	}))
	if len(got.Strengths) != 1 || len(got.Recommendations) != 1 {
		t.Errorf("expected one strength and one recommendation: %+v", got)
	}
	if len(got.Challenges) != 1 {
		t.Errorf("expected one challenge: %+v", got)
	}
}

func TestInterpretNeuroticismInverted(t *testing.T) {
	// Low neuroticism stanine is the strength (stability)...
	got := Interpret(detailsWithStanines(map[ocean.Trait]int{ocean.Neuroticism: 2}))
	if len(got.Strengths) != 1 || len(got.Challenges) != 0 {
		t.Errorf("low neuroticism should be a strength: %+v", got)
	}
	// ...and a high stanine is the challenge.
	got = Interpret(detailsWithStanines(map[ocean.Trait]int{ocean.Neuroticism: 8}))
	if len(got.Challenges) != 1 || len(got.Strengths) != 0 {
		t.Errorf("high neuroticism should be a challenge: %+v", got)
	}
}

func TestInterpretBoundaryStanines(t *testing.T) {
	// Stanine 7 is the lowest strength band, 3 the highest challenge band.
	got := Interpret(detailsWithStanines(map[ocean.Trait]int{
		ocean.Agreeableness:     7,
		ocean.Conscientiousness: 3,
	}))
	if len(got.Strengths) != 1 {
		t.Errorf("stanine 7 should register a strength: %+v", got)
	}
	if len(got.Challenges) != 1 {
		t.Errorf("stanine 3 should register a challenge: %+v", got)
	}
	// 6 and 4 sit inside the mid band.
	got = Interpret(detailsWithStanines(map[ocean.Trait]int{
		ocean.Agreeableness:     6,
		ocean.Conscientiousness: 4,
	}))
	if len(got.Strengths)+len(got.Challenges) != 0 {
		t.Errorf("stanines 6 and 4 should be silent: %+v", got)
	}
}

package interpret

import (
	"math"

	"github.com/psymetric/ocean-engine/internal/ocean"
)

// EmotionalRegulation estimates regulation capacity, 0–100 per index, from
// the neuroticism side of a profile.
type EmotionalRegulation struct {
	Reactivity float64 `json:"reactivity"`
	Recovery   float64 `json:"recovery"`
	Regulation float64 `json:"regulation"`
}

// AssessRegulation derives the regulation sub-profile. When the facet
// engine's detail is available, anxiety (N1), anger (N2), and vulnerability
// (N6) drive reactivity while depression (N3) and impulsiveness (N5) drag
// recovery; facets without coverage fall back to the trait-level score.
// Regulation is the mean of recovery and inverted reactivity, nudged up by
// conscientiousness (deliberate self-control).
func AssessRegulation(d ocean.ScoreDetails) EmotionalRegulation {
	// Trait-level baselines on 0–100: high neuroticism means high
	// reactivity and slow recovery.
	nScaled := (clampRaw(d.Raw[ocean.Neuroticism]) - 1) / 4 * 100
	reactivity := nScaled
	recovery := 100 - nScaled

	if d.FacetDetail != nil {
		if v, ok := facetIndex(d, ocean.N1Anxiety, ocean.N2AngryHostility, ocean.N6Vulnerability); ok {
			reactivity = v
		}
		if v, ok := facetIndex(d, ocean.N3Depression, ocean.N5Impulsiveness); ok {
			recovery = 100 - v
		}
	}

	cScaled := (clampRaw(d.Raw[ocean.Conscientiousness]) - 1) / 4 * 100
	regulation := ((100-reactivity)+recovery)/2*0.8 + cScaled*0.2

	return EmotionalRegulation{
		Reactivity: round1(reactivity),
		Recovery:   round1(recovery),
		Regulation: round1(regulation),
	}
}

// facetIndex averages the covered facets' −3..+3 scores onto 0–100. Returns
// false when none of the facets has coverage.
func facetIndex(d ocean.ScoreDetails, facets ...ocean.Facet) (float64, bool) {
	sum, n := 0.0, 0
	for _, f := range facets {
		fs, ok := d.FacetDetail[f]
		if !ok || !fs.Covered() {
			continue
		}
		sum += (fs.Score + 3) / 6 * 100
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

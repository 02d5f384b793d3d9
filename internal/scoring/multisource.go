package scoring

import (
	"errors"
	"fmt"

	"github.com/psymetric/ocean-engine/internal/ocean"
)

// ErrEmptyAggregation is returned when asked to combine zero score sets.
// There is no meaningful neutral result for an empty aggregation, so this is
// a hard error rather than a fail-soft default.
var ErrEmptyAggregation = errors.New("no score sets to aggregate")

// CombineScoreSets merges several complete score sets (multiple raters or
// repeated administrations) into one. Weights default to uniform when nil.
//
// Raw trait scores combine as Σ(raw_i × w_i)/Σw, and percentile/stanine are
// then re-derived from the combined raw value. Percentiles are never
// averaged directly: re-deriving from raw avoids compounding the rounding
// baked into each individual set.
func (e *Engine) CombineScoreSets(sets []ocean.ScoreDetails, weights []float64) (ocean.ScoreDetails, error) {
	if len(sets) == 0 {
		return ocean.ScoreDetails{}, ErrEmptyAggregation
	}
	if weights == nil {
		weights = make([]float64, len(sets))
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != len(sets) {
		return ocean.ScoreDetails{}, fmt.Errorf("weight count %d does not match score set count %d", len(weights), len(sets))
	}
	totalW := 0.0
	for _, w := range weights {
		if w < 0 {
			return ocean.ScoreDetails{}, fmt.Errorf("negative aggregation weight %v", w)
		}
		totalW += w
	}
	if totalW == 0 {
		return ocean.ScoreDetails{}, errors.New("aggregation weights sum to zero")
	}

	raw := RawScores{Traits: make(map[ocean.Trait]float64, len(ocean.AllTraits))}
	for _, t := range ocean.AllTraits {
		sum := 0.0
		for i, s := range sets {
			v, ok := s.Raw[t]
			if !ok {
				v = neutralScore
			}
			sum += clamp(v, 1, 5) * weights[i]
		}
		raw.Traits[t] = sum / totalW
	}

	// Trait-path facet means combine the same way, over the sets that
	// carry each facet.
	facetSums := map[ocean.Facet]float64{}
	facetWeights := map[ocean.Facet]float64{}
	for i, s := range sets {
		for f, v := range s.Facets {
			facetSums[f] += clamp(v, 1, 5) * weights[i]
			facetWeights[f] += weights[i]
		}
	}
	if len(facetSums) > 0 {
		raw.Facets = make(map[ocean.Facet]float64, len(facetSums))
		for f, sum := range facetSums {
			raw.Facets[f] = sum / facetWeights[f]
		}
	}

	return e.Convert(raw), nil
}

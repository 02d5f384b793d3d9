package scoring

import (
	"github.com/psymetric/ocean-engine/internal/ocean"
)

// neutralScore is the 1–5 midpoint used when a trait receives no
// contributions at all.
const neutralScore = 3.0

// RawScores is the output of trait aggregation before norm conversion.
// Traits always holds all five dimensions; Facets holds only facets that
// received at least one contribution.
type RawScores struct {
	Traits map[ocean.Trait]float64
	Facets map[ocean.Facet]float64
}

// AggregateTraits combines normalized, weighted responses into raw trait and
// facet scores on the 1–5 scale.
//
// Each response is normalized, then pushed into the bucket of every trait
// its mapping weights, scaled by that weight. The trait score is the simple
// arithmetic mean of its bucket — not a weighted mean. Weights scale
// contribution magnitude but the reduction divides by item count, unlike the
// facet engine which divides by total weight. The published norm tables were
// calibrated against this exact behavior, so it is preserved as-is; see
// DESIGN.md.
//
// A trait with an empty bucket scores a neutral 3.0, never an error. Facet
// buckets (from mappings that carry facet weights) aggregate identically and
// independently.
func AggregateTraits(responses []Response, mappings []QuestionTraitMapping) RawScores {
	byQuestion := make(map[string]QuestionTraitMapping, len(mappings))
	for _, m := range mappings {
		byQuestion[m.QuestionID] = m
	}

	traitBuckets := make(map[ocean.Trait][]float64, len(ocean.AllTraits))
	facetBuckets := map[ocean.Facet][]float64{}

	for _, resp := range responses {
		m, ok := byQuestion[resp.QuestionID]
		if !ok {
			// No mapping: the item contributes nothing. Not an error;
			// it just lowers coverage.
			continue
		}
		v := Normalize(resp.Answer, m.Reverse)
		for t, w := range m.TraitWeights {
			if w == 0 {
				continue
			}
			traitBuckets[t] = append(traitBuckets[t], v*w)
		}
		for f, w := range m.FacetWeights {
			if w == 0 {
				continue
			}
			facetBuckets[f] = append(facetBuckets[f], v*w)
		}
	}

	out := RawScores{Traits: make(map[ocean.Trait]float64, len(ocean.AllTraits))}
	for _, t := range ocean.AllTraits {
		bucket := traitBuckets[t]
		if len(bucket) == 0 {
			out.Traits[t] = neutralScore
			continue
		}
		// Re-clamp defensively: normalization bounds each contribution,
		// but negative weights can pull a mean outside [1,5], and the
		// percentile conversion assumes in-range raw scores.
		out.Traits[t] = clamp(mean(bucket), 1, 5)
	}
	if len(facetBuckets) > 0 {
		out.Facets = make(map[ocean.Facet]float64, len(facetBuckets))
		for f, bucket := range facetBuckets {
			out.Facets[f] = clamp(mean(bucket), 1, 5)
		}
	}
	return out
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

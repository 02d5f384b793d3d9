package scoring

import (
	"github.com/psymetric/ocean-engine/internal/ocean"
)

// Engine ties the trait path together: aggregation of normalized weighted
// responses followed by norm-referenced percentile and stanine conversion.
// An Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	norms    NormTable
	resolver *MappingResolver
}

// NewEngine builds an engine over a norm table. A nil table uses the
// built-in defaults.
func NewEngine(norms NormTable, resolver *MappingResolver) *Engine {
	if norms == nil {
		norms = DefaultNorms()
	}
	return &Engine{norms: norms, resolver: resolver}
}

// Norms exposes the engine's norm table for consumers that re-derive
// percentiles from combined raw scores (multi-source aggregation).
func (e *Engine) Norms() NormTable { return e.norms }

// Resolver returns the engine's mapping resolver.
func (e *Engine) Resolver() *MappingResolver { return e.resolver }

// Score runs the full trait path over a response set and its mapping table.
func (e *Engine) Score(responses []Response, mappings []QuestionTraitMapping) ocean.ScoreDetails {
	raw := AggregateTraits(responses, mappings)
	return e.Convert(raw)
}

// ScoreAssessment resolves mappings for an assessment type (generating them
// from question metadata if no predefined table exists) and scores.
func (e *Engine) ScoreAssessment(assessmentType string, questions []Question, responses []Response) ocean.ScoreDetails {
	mappings := e.resolver.Resolve(assessmentType, questions)
	return e.Score(responses, mappings)
}

// Convert derives percentiles and stanines from raw scores. Raw inputs are
// re-clamped to [1,5] so out-of-range values can never reach the CDF math.
func (e *Engine) Convert(raw RawScores) ocean.ScoreDetails {
	d := ocean.ScoreDetails{
		Raw:        make(map[ocean.Trait]float64, len(ocean.AllTraits)),
		Percentile: make(map[ocean.Trait]int, len(ocean.AllTraits)),
		Stanine:    make(map[ocean.Trait]int, len(ocean.AllTraits)),
	}
	for _, t := range ocean.AllTraits {
		v, ok := raw.Traits[t]
		if !ok {
			v = neutralScore
		}
		v = clamp(v, 1, 5)
		d.Raw[t] = v
		p := Percentile(v, e.norms[t])
		d.Percentile[t] = p
		d.Stanine[t] = Stanine(p)
	}
	if len(raw.Facets) > 0 {
		d.Facets = make(map[ocean.Facet]float64, len(raw.Facets))
		for f, v := range raw.Facets {
			d.Facets[f] = clamp(v, 1, 5)
		}
	}
	return d
}

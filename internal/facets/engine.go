package facets

import (
	"encoding/json"
	"math"

	"github.com/psymetric/ocean-engine/internal/ocean"
	"github.com/psymetric/ocean-engine/internal/scoring"
)

// Engine scores the 30 facets from node-correlation mappings. It is
// immutable after construction: the correlation index and tier-modifier
// table are shared read-only state, so concurrent scoring is lock-free.
type Engine struct {
	byNode    map[string][]NodeCorrelation
	modifiers TierModifiers
}

// NewEngine indexes a correlation table. A nil modifier table uses the
// defaults (all 1.0).
func NewEngine(correlations []NodeCorrelation, modifiers TierModifiers) *Engine {
	if modifiers == nil {
		modifiers = DefaultTierModifiers()
	}
	byNode := make(map[string][]NodeCorrelation)
	for _, c := range correlations {
		byNode[c.NodeID] = append(byNode[c.NodeID], c)
	}
	return &Engine{byNode: byNode, modifiers: modifiers}
}

// ScoreFacet scores a single facet from the responses whose nodes correlate
// with it.
//
// Per item: the answer is normalized to the −3..+3 scale for its format,
// sign-flipped when the correlation is negative (reverse coding), and
// weighted by |correlation| × confidence × tierModifier. The facet score is
// Σ(normalized × correlation × weight)/Σ(weight), clamped to [−3,3].
// Confidence is min(1, Σweight/10). Zero accumulated weight yields the
// no-coverage sentinel {0, 0, 0} — deliberately distinguishable from a true
// neutral score.
func (e *Engine) ScoreFacet(responses []scoring.Response, facet ocean.Facet, tier Tier) ocean.FacetScore {
	mod := e.modifiers.Modifier(tier)

	var (
		weightedSum float64
		weightSum   float64
		nItems      int
		rawScores   []float64
	)
	for _, resp := range responses {
		for _, c := range e.byNode[resp.QuestionID] {
			if c.Facet != facet {
				continue
			}
			normalized := normalizeToFacetScale(resp.Answer, resp.Format)
			if c.Correlation < 0 {
				normalized = -normalized
			}
			weight := math.Abs(c.Correlation) * c.Confidence * mod
			if weight == 0 {
				continue
			}
			weightedSum += normalized * c.Correlation * weight
			weightSum += weight
			nItems++
			rawScores = append(rawScores, normalized)
		}
	}

	if weightSum == 0 {
		return ocean.FacetScore{}
	}

	score := clamp3(weightedSum / weightSum)
	return ocean.FacetScore{
		Score:      score,
		Confidence: math.Min(1.0, weightSum/10.0),
		NItems:     nItems,
		RawScores:  rawScores,
		// The facet path keeps its simplified conversions; the trait
		// path's normal-CDF percentile serves a different consumer.
		Percentile: (score + 3) / 6 * 100,
		TScore:     50 + 10*score/1.5,
	}
}

// ScoreAll scores every facet in the closed set.
func (e *Engine) ScoreAll(responses []scoring.Response, tier Tier) map[ocean.Facet]ocean.FacetScore {
	out := make(map[ocean.Facet]ocean.FacetScore, ocean.NumFacets)
	for _, f := range ocean.AllFacets() {
		out[f] = e.ScoreFacet(responses, f, tier)
	}
	return out
}

// CoverageReport summarizes how much of the facet space a response set
// actually reaches.
type CoverageReport struct {
	Covered     int           `json:"covered"`
	CoveragePct float64       `json:"coverage_pct"`
	Weak        []ocean.Facet `json:"weak,omitempty"`
	Missing     []ocean.Facet `json:"missing,omitempty"`
}

// Coverage classifies each facet: covered means confidence > 0.3 with at
// least one item; confidence in (0, 0.5) is weak coverage; confidence of
// exactly zero is missing.
func Coverage(scores map[ocean.Facet]ocean.FacetScore) CoverageReport {
	var rep CoverageReport
	for _, f := range ocean.AllFacets() {
		s := scores[f]
		if s.Covered() {
			rep.Covered++
		}
		switch {
		case s.Confidence == 0:
			rep.Missing = append(rep.Missing, f)
		case s.Confidence < 0.5:
			rep.Weak = append(rep.Weak, f)
		}
	}
	rep.CoveragePct = float64(rep.Covered) / float64(ocean.NumFacets) * 100
	return rep
}

// normalizeToFacetScale maps an answer to −3..+3 for its declared format:
// 6-point Likert centers on 3.5, true/false maps to ±1, multiple-choice
// values pass through clamped, and anything else is clamped directly.
func normalizeToFacetScale(answer any, format string) float64 {
	switch format {
	case scoring.FormatLikert6:
		return (numeric(answer) - 3.5) / 2.5
	case scoring.FormatBoolean:
		if truthy(answer) {
			return 1
		}
		return -1
	case scoring.FormatChoice:
		return clamp3(numeric(answer))
	default:
		return clamp3(numeric(answer))
	}
}

func numeric(answer any) float64 {
	switch a := answer.(type) {
	case float64:
		return a
	case float32:
		return float64(a)
	case int:
		return float64(a)
	case int64:
		return float64(a)
	case json.Number:
		f, _ := a.Float64()
		return f
	case bool:
		if a {
			return 1
		}
		return 0
	case map[string]any:
		if v, ok := a["value"]; ok {
			return numeric(v)
		}
		if v, ok := a["score"]; ok {
			return numeric(v)
		}
		return 0
	default:
		return 0
	}
}

func truthy(answer any) bool {
	switch a := answer.(type) {
	case bool:
		return a
	case string:
		return a == "true" || a == "yes" || a == "1"
	default:
		return numeric(answer) > 0
	}
}

func clamp3(v float64) float64 {
	if v < -3 {
		return -3
	}
	if v > 3 {
		return 3
	}
	return v
}

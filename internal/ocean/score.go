package ocean

// FacetScore is the facet engine's per-facet output. Score is on the −3..+3
// scale. Confidence grows with accumulated mapping weight and caps at 1.0
// once cumulative weight reaches 10. A zero-coverage facet is the sentinel
// {Score:0, Confidence:0, NItems:0}, which is distinct from a genuinely
// neutral score backed by items.
type FacetScore struct {
	Score      float64   `json:"score"`
	Confidence float64   `json:"confidence"`
	NItems     int       `json:"n_items"`
	RawScores  []float64 `json:"raw_scores,omitempty"`
	Percentile float64   `json:"percentile"`
	TScore     float64   `json:"t_score"`
}

// Covered reports whether the facet has enough signal to be interpreted.
func (f FacetScore) Covered() bool { return f.Confidence > 0.3 && f.NItems > 0 }

// ScoreDetails is the principal output value object: raw 1–5 trait scores,
// their population percentiles and stanine bands, and optionally facet
// results. It is immutable once computed; rescoring always recomputes from
// raw responses.
type ScoreDetails struct {
	Raw        map[Trait]float64 `json:"raw"`
	Percentile map[Trait]int     `json:"percentile"`
	Stanine    map[Trait]int     `json:"stanine"`

	// Facets carries trait-path facet means on the 1–5 scale (when the
	// mappings define facet weights).
	Facets map[Facet]float64 `json:"facets,omitempty"`

	// FacetDetail carries the node-correlation engine's −3..+3 results.
	// The two facet paths serve different consumers and are deliberately
	// not unified.
	FacetDetail map[Facet]FacetScore `json:"facet_detail,omitempty"`
}

// Clone returns a deep copy. Stores hand out clones so a cached or persisted
// details value can never be mutated through an alias.
func (d ScoreDetails) Clone() ScoreDetails {
	out := ScoreDetails{
		Raw:        make(map[Trait]float64, len(d.Raw)),
		Percentile: make(map[Trait]int, len(d.Percentile)),
		Stanine:    make(map[Trait]int, len(d.Stanine)),
	}
	for k, v := range d.Raw {
		out.Raw[k] = v
	}
	for k, v := range d.Percentile {
		out.Percentile[k] = v
	}
	for k, v := range d.Stanine {
		out.Stanine[k] = v
	}
	if d.Facets != nil {
		out.Facets = make(map[Facet]float64, len(d.Facets))
		for k, v := range d.Facets {
			out.Facets[k] = v
		}
	}
	if d.FacetDetail != nil {
		out.FacetDetail = make(map[Facet]FacetScore, len(d.FacetDetail))
		for k, v := range d.FacetDetail {
			raw := make([]float64, len(v.RawScores))
			copy(raw, v.RawScores)
			v.RawScores = raw
			out.FacetDetail[k] = v
		}
	}
	return out
}

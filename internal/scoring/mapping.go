package scoring

import (
	"github.com/psymetric/ocean-engine/internal/ocean"
)

// Question is the minimal view of an assessment item the resolver needs.
type Question struct {
	ID     string `json:"id"`
	Text   string `json:"text,omitempty"`
	Domain string `json:"domain,omitempty"`
}

// QuestionTraitMapping ties a question to weighted trait (and optionally
// facet) contributions. Weights are signed and typically within −1..1; a
// trait the question does not address simply has no entry.
type QuestionTraitMapping struct {
	QuestionID   string                  `json:"question_id"`
	TraitWeights map[ocean.Trait]float64 `json:"trait_weights"`
	FacetWeights map[ocean.Facet]float64 `json:"facet_weights,omitempty"`
	Reverse      bool                    `json:"reverse"`
}

// domainTraitWeights carries the known trait loadings per question domain,
// used when no predefined mapping table exists for an assessment type.
var domainTraitWeights = map[string]map[ocean.Trait]float64{
	"imagination":  {ocean.Openness: 0.9},
	"aesthetics":   {ocean.Openness: 0.8},
	"curiosity":    {ocean.Openness: 0.85},
	"organization": {ocean.Conscientiousness: 0.9},
	"diligence":    {ocean.Conscientiousness: 0.85},
	"reliability":  {ocean.Conscientiousness: 0.8},
	"sociability":  {ocean.Extraversion: 0.9},
	"assertion":    {ocean.Extraversion: 0.8},
	"energy":       {ocean.Extraversion: 0.75, ocean.Neuroticism: -0.2},
	"empathy":      {ocean.Agreeableness: 0.9},
	"cooperation":  {ocean.Agreeableness: 0.85},
	"trust":        {ocean.Agreeableness: 0.8},
	"anxiety":      {ocean.Neuroticism: 0.9},
	"moodiness":    {ocean.Neuroticism: 0.85},
	"stress":       {ocean.Neuroticism: 0.8},
}

// uniformFallbackWeight is the neutral low weight applied across all five
// traits when a question's domain is unknown. This is a documented degraded
// mode: the item still contributes a little signal everywhere rather than
// being dropped.
const uniformFallbackWeight = 0.2

// MappingResolver produces QuestionTraitMappings for an assessment type,
// either from a registered predefined table or by generating one from
// question domains.
type MappingResolver struct {
	predefined map[string][]QuestionTraitMapping
	detector   ReverseScoreDetector
}

// NewMappingResolver builds a resolver with the given reverse-scoring
// detector. A nil detector disables heuristic reverse detection.
func NewMappingResolver(detector ReverseScoreDetector) *MappingResolver {
	return &MappingResolver{
		predefined: map[string][]QuestionTraitMapping{},
		detector:   detector,
	}
}

// Register binds a predefined mapping table to an assessment type, e.g.
// "bigfive.v1". Registered tables are returned verbatim by Resolve.
func (r *MappingResolver) Register(assessmentType string, mappings []QuestionTraitMapping) {
	r.predefined[assessmentType] = mappings
}

// Resolve returns the mapping table for an assessment type. When none is
// registered, one mapping per question is generated from its domain's known
// trait loadings; unknown domains fall back to a uniform low weight across
// all five traits. Reverse scoring on generated mappings is detected
// heuristically from the question text.
func (r *MappingResolver) Resolve(assessmentType string, questions []Question) []QuestionTraitMapping {
	if m, ok := r.predefined[assessmentType]; ok {
		return m
	}
	out := make([]QuestionTraitMapping, 0, len(questions))
	for _, q := range questions {
		out = append(out, r.generate(q))
	}
	return out
}

func (r *MappingResolver) generate(q Question) QuestionTraitMapping {
	m := QuestionTraitMapping{QuestionID: q.ID}
	if w, ok := domainTraitWeights[q.Domain]; ok {
		m.TraitWeights = make(map[ocean.Trait]float64, len(w))
		for t, v := range w {
			m.TraitWeights[t] = v
		}
	} else {
		m.TraitWeights = make(map[ocean.Trait]float64, len(ocean.AllTraits))
		for _, t := range ocean.AllTraits {
			m.TraitWeights[t] = uniformFallbackWeight
		}
	}
	if r.detector != nil {
		m.Reverse = r.detector.IsReverse(q.Text)
	}
	return m
}

// Package facets implements the node-correlation scoring path: 30 facets
// scored from per-node correlation mappings with tier-specific weighting,
// confidence estimation, and coverage metrics. It runs parallel to the
// trait path in internal/scoring and deliberately uses its own simplified
// percentile/T-score conversion; the two paths serve different consumers.
package facets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/psymetric/ocean-engine/internal/ocean"
)

// MappingType describes how a node relates to a facet.
type MappingType string

const (
	MappingDirect   MappingType = "direct"
	MappingIndirect MappingType = "indirect"
	MappingInverse  MappingType = "inverse"
)

// NodeCorrelation links an assessment node to one facet. A node may carry
// several correlations and so feed multiple facets.
type NodeCorrelation struct {
	NodeID      string      `json:"node_id" yaml:"node_id"`
	Facet       ocean.Facet `json:"facet" yaml:"facet"`
	Correlation float64     `json:"correlation" yaml:"correlation"`
	Type        MappingType `json:"type" yaml:"type"`
	Confidence  float64     `json:"confidence" yaml:"confidence"`
}

// Tier is the assessment context the engine is scoring under.
type Tier string

const (
	TierIndividual     Tier = "individual"
	TierExecutive      Tier = "executive"
	TierOrganizational Tier = "organizational"
)

// TierModifiers scales item weight per tier. All modifiers are currently
// 1.0: the table is a live extension point for tier-specific recalibration,
// which is why it is configuration rather than a constant folded into the
// weight formula.
type TierModifiers map[Tier]float64

// DefaultTierModifiers returns the current (identity) modifier table.
func DefaultTierModifiers() TierModifiers {
	return TierModifiers{
		TierIndividual:     1.0,
		TierExecutive:      1.0,
		TierOrganizational: 1.0,
	}
}

// Modifier returns the modifier for a tier, defaulting to 1.0 for tiers
// absent from the table.
func (m TierModifiers) Modifier(t Tier) float64 {
	if v, ok := m[t]; ok {
		return v
	}
	return 1.0
}

type correlationFile struct {
	Correlations []struct {
		NodeID      string  `yaml:"node_id"`
		Facet       string  `yaml:"facet"`
		Correlation float64 `yaml:"correlation"`
		Type        string  `yaml:"type"`
		Confidence  float64 `yaml:"confidence"`
	} `yaml:"correlations"`
}

// LoadCorrelations reads a YAML node-correlation table. Facet codes must
// belong to the closed 30-facet set and confidences must sit in [0,1];
// violations are configuration errors.
func LoadCorrelations(path string) ([]NodeCorrelation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read correlation table: %w", err)
	}
	var f correlationFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse correlation table: %w", err)
	}
	out := make([]NodeCorrelation, 0, len(f.Correlations))
	for i, c := range f.Correlations {
		facet, err := ocean.ParseFacet(c.Facet)
		if err != nil {
			return nil, fmt.Errorf("correlation %d: %w", i, err)
		}
		if c.Confidence < 0 || c.Confidence > 1 {
			return nil, fmt.Errorf("correlation %d: confidence %v outside [0,1]", i, c.Confidence)
		}
		mt := MappingType(c.Type)
		switch mt {
		case MappingDirect, MappingIndirect, MappingInverse:
		case "":
			mt = MappingDirect
		default:
			return nil, fmt.Errorf("correlation %d: unknown mapping type %q", i, c.Type)
		}
		out = append(out, NodeCorrelation{
			NodeID:      c.NodeID,
			Facet:       facet,
			Correlation: c.Correlation,
			Type:        mt,
			Confidence:  c.Confidence,
		})
	}
	return out, nil
}

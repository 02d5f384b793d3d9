package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/psymetric/ocean-engine/internal/ocean"
)

// Norm is a population reference for one trait: the mean and standard
// deviation of raw 1–5 scores in the norming sample.
type Norm struct {
	Mean float64 `yaml:"mean"`
	SD   float64 `yaml:"sd"`
}

// NormTable holds one Norm per trait. Tables are loaded once at startup and
// treated as immutable for the process lifetime; concurrent scoring reads
// them without locking.
type NormTable map[ocean.Trait]Norm

// DefaultNorms returns the built-in adult self-report reference table.
func DefaultNorms() NormTable {
	return NormTable{
		ocean.Openness:          {Mean: 3.92, SD: 0.66},
		ocean.Conscientiousness: {Mean: 3.45, SD: 0.73},
		ocean.Extraversion:      {Mean: 3.25, SD: 0.90},
		ocean.Agreeableness:     {Mean: 3.64, SD: 0.72},
		ocean.Neuroticism:       {Mean: 3.32, SD: 0.82},
	}
}

// LoadNorms reads a YAML norm table keyed by trait name:
//
//	openness:          {mean: 3.92, sd: 0.66}
//	conscientiousness: {mean: 3.45, sd: 0.73}
//	...
//
// All five traits must be present with a positive sd; a partial or
// degenerate table is a configuration error, not a fail-soft case.
func LoadNorms(path string) (NormTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read norm table: %w", err)
	}
	var byName map[string]Norm
	if err := yaml.Unmarshal(raw, &byName); err != nil {
		return nil, fmt.Errorf("parse norm table: %w", err)
	}
	out := make(NormTable, len(ocean.AllTraits))
	for name, n := range byName {
		t, err := ocean.ParseTrait(name)
		if err != nil {
			return nil, fmt.Errorf("norm table: %w", err)
		}
		if n.SD <= 0 {
			return nil, fmt.Errorf("norm table: trait %s has non-positive sd %v", t, n.SD)
		}
		out[t] = n
	}
	for _, t := range ocean.AllTraits {
		if _, ok := out[t]; !ok {
			return nil, fmt.Errorf("norm table: missing trait %s", t)
		}
	}
	return out, nil
}

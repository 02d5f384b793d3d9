// Package ocean defines the closed Big Five trait and facet domains and the
// score value objects shared by the scoring, facet, and interpretation
// engines. The trait and facet sets are fixed; unknown keys are rejected at
// parse time rather than created dynamically.
package ocean

import "fmt"

// Trait is one of the five OCEAN dimensions.
type Trait uint8

const (
	Openness Trait = iota
	Conscientiousness
	Extraversion
	Agreeableness
	Neuroticism
)

// AllTraits lists every trait in canonical order. Score maps are always
// populated for the complete set; there is no such thing as a partial
// trait profile.
var AllTraits = [5]Trait{Openness, Conscientiousness, Extraversion, Agreeableness, Neuroticism}

var traitNames = [5]string{
	"openness",
	"conscientiousness",
	"extraversion",
	"agreeableness",
	"neuroticism",
}

func (t Trait) String() string {
	if int(t) < len(traitNames) {
		return traitNames[t]
	}
	return fmt.Sprintf("trait(%d)", uint8(t))
}

// ParseTrait maps a wire/storage key to a Trait. Unknown keys are a hard
// error: trait sets are closed and a typo must not mint a new dimension.
func ParseTrait(s string) (Trait, error) {
	for i, n := range traitNames {
		if n == s {
			return Trait(i), nil
		}
	}
	return 0, fmt.Errorf("unknown trait %q", s)
}

// MarshalText renders the trait name, so map[Trait]x serializes with
// readable JSON keys.
func (t Trait) MarshalText() ([]byte, error) {
	if int(t) >= len(traitNames) {
		return nil, fmt.Errorf("invalid trait value %d", uint8(t))
	}
	return []byte(traitNames[t]), nil
}

func (t *Trait) UnmarshalText(b []byte) error {
	v, err := ParseTrait(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

package ocean

import "fmt"

// Facet is one of the 30 NEO-style sub-dimensions, six per trait. The set is
// closed; codes follow the standard "T#_Name" convention (e.g. O1_Fantasy).
type Facet uint8

const (
	// Openness
	O1Fantasy Facet = iota
	O2Aesthetics
	O3Feelings
	O4Actions
	O5Ideas
	O6Values
	// Conscientiousness
	C1Competence
	C2Order
	C3Dutifulness
	C4AchievementStriving
	C5SelfDiscipline
	C6Deliberation
	// Extraversion
	E1Warmth
	E2Gregariousness
	E3Assertiveness
	E4Activity
	E5ExcitementSeeking
	E6PositiveEmotions
	// Agreeableness
	A1Trust
	A2Straightforwardness
	A3Altruism
	A4Compliance
	A5Modesty
	A6TenderMindedness
	// Neuroticism
	N1Anxiety
	N2AngryHostility
	N3Depression
	N4SelfConsciousness
	N5Impulsiveness
	N6Vulnerability
)

// NumFacets is the size of the closed facet set.
const NumFacets = 30

var facetCodes = [NumFacets]string{
	"O1_Fantasy", "O2_Aesthetics", "O3_Feelings", "O4_Actions", "O5_Ideas", "O6_Values",
	"C1_Competence", "C2_Order", "C3_Dutifulness", "C4_AchievementStriving", "C5_SelfDiscipline", "C6_Deliberation",
	"E1_Warmth", "E2_Gregariousness", "E3_Assertiveness", "E4_Activity", "E5_ExcitementSeeking", "E6_PositiveEmotions",
	"A1_Trust", "A2_Straightforwardness", "A3_Altruism", "A4_Compliance", "A5_Modesty", "A6_TenderMindedness",
	"N1_Anxiety", "N2_AngryHostility", "N3_Depression", "N4_SelfConsciousness", "N5_Impulsiveness", "N6_Vulnerability",
}

// AllFacets lists the 30 facets in canonical order (six per trait, traits in
// canonical order).
func AllFacets() [NumFacets]Facet {
	var out [NumFacets]Facet
	for i := range out {
		out[i] = Facet(i)
	}
	return out
}

// Code returns the stable facet code, e.g. "N1_Anxiety".
func (f Facet) Code() string {
	if int(f) < NumFacets {
		return facetCodes[f]
	}
	return fmt.Sprintf("facet(%d)", uint8(f))
}

func (f Facet) String() string { return f.Code() }

// Trait returns the parent dimension. Facets are laid out six per trait in
// trait order, so this is pure arithmetic.
func (f Facet) Trait() Trait { return Trait(f / 6) }

// TraitFacets returns the six facets belonging to a trait.
func TraitFacets(t Trait) [6]Facet {
	var out [6]Facet
	for i := 0; i < 6; i++ {
		out[i] = Facet(int(t)*6 + i)
	}
	return out
}

// ParseFacet maps a facet code to its Facet. Unknown codes are rejected, not
// created.
func ParseFacet(code string) (Facet, error) {
	for i, c := range facetCodes {
		if c == code {
			return Facet(i), nil
		}
	}
	return 0, fmt.Errorf("unknown facet code %q", code)
}

func (f Facet) MarshalText() ([]byte, error) {
	if int(f) >= NumFacets {
		return nil, fmt.Errorf("invalid facet value %d", uint8(f))
	}
	return []byte(facetCodes[f]), nil
}

func (f *Facet) UnmarshalText(b []byte) error {
	v, err := ParseFacet(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

package interpret

import (
	"testing"

	"github.com/psymetric/ocean-engine/internal/ocean"
)

func detailsWithPercentiles(p map[ocean.Trait]int) ocean.ScoreDetails {
	d := ocean.ScoreDetails{
		Raw:        make(map[ocean.Trait]float64),
		Percentile: make(map[ocean.Trait]int),
		Stanine:    make(map[ocean.Trait]int),
	}
	for _, t := range ocean.AllTraits {
		d.Raw[t] = 3.0
		d.Percentile[t] = 50
		d.Stanine[t] = 5
	}
	for t, v := range p {
		d.Percentile[t] = v
	}
	return d
}

func TestFitForRoleUnknownRole(t *testing.T) {
	got := FitForRole(detailsWithPercentiles(nil), "astronaut")
	if got.Score != 50 {
		t.Errorf("unknown role fit = %v, want neutral 50", got.Score)
	}
}

func TestFitForRoleRewardsProfile(t *testing.T) {
	strong := detailsWithPercentiles(map[ocean.Trait]int{
		ocean.Conscientiousness: 90,
		ocean.Extraversion:      80,
		ocean.Openness:          75,
		ocean.Neuroticism:       10, // negative weight: low percentile helps
	})
	weak := detailsWithPercentiles(map[ocean.Trait]int{
		ocean.Conscientiousness: 20,
		ocean.Neuroticism:       90,
	})
	if FitForRole(strong, "executive").Score <= FitForRole(weak, "executive").Score {
		t.Error("stronger executive profile should score higher")
	}
}

func TestLeadershipStylesSorted(t *testing.T) {
	d := detailsWithPercentiles(map[ocean.Trait]int{ocean.Openness: 95, ocean.Extraversion: 90})
	styles := LeadershipStyles(d)
	if len(styles) == 0 {
		t.Fatal("no styles projected")
	}
	if styles[0].Name != "visionary" {
		t.Errorf("dominant style = %s, want visionary", styles[0].Name)
	}
	for i := 1; i < len(styles); i++ {
		if styles[i].Strength > styles[i-1].Strength {
			t.Fatal("styles not sorted by strength")
		}
	}
}

func TestInfluenceTacticsCollaboration(t *testing.T) {
	d := detailsWithPercentiles(map[ocean.Trait]int{ocean.Agreeableness: 95, ocean.Extraversion: 70})
	tactics := InfluenceTactics(d)
	if tactics[0].Name != "collaboration" {
		t.Errorf("dominant tactic = %s, want collaboration", tactics[0].Name)
	}
}

func TestAssessTeamEmpty(t *testing.T) {
	tp := AssessTeam(nil)
	if tp.Size != 0 || tp.MeanRaw != nil {
		t.Errorf("empty team should be zero valued: %+v", tp)
	}
}

func TestAssessTeamAggregates(t *testing.T) {
	mk := func(o, c float64) ocean.ScoreDetails {
		d := detailsWithPercentiles(nil)
		d.Raw[ocean.Openness] = o
		d.Raw[ocean.Conscientiousness] = c
		return d
	}
	tp := AssessTeam([]ocean.ScoreDetails{mk(5, 4), mk(3, 4)})
	if tp.Size != 2 {
		t.Fatalf("size = %d, want 2", tp.Size)
	}
	if tp.MeanRaw[ocean.Openness] != 4.0 {
		t.Errorf("mean openness = %v, want 4.0", tp.MeanRaw[ocean.Openness])
	}
	if tp.SpreadRaw[ocean.Openness] != 1.0 {
		t.Errorf("spread openness = %v, want 1.0", tp.SpreadRaw[ocean.Openness])
	}
	if tp.SpreadRaw[ocean.Conscientiousness] != 0.0 {
		t.Errorf("spread conscientiousness = %v, want 0.0", tp.SpreadRaw[ocean.Conscientiousness])
	}
	// Conscientiousness mean 4.0 on 1–5 → 75 on 0–100.
	if tp.Execution != 75.0 {
		t.Errorf("execution = %v, want 75.0", tp.Execution)
	}
}

func TestAssessRegulationTraitFallback(t *testing.T) {
	d := detailsWithPercentiles(nil)
	d.Raw[ocean.Neuroticism] = 5.0 // maximally reactive
	reg := AssessRegulation(d)
	if reg.Reactivity != 100 {
		t.Errorf("reactivity = %v, want 100", reg.Reactivity)
	}
	if reg.Recovery != 0 {
		t.Errorf("recovery = %v, want 0", reg.Recovery)
	}

	d.Raw[ocean.Neuroticism] = 1.0
	reg = AssessRegulation(d)
	if reg.Reactivity != 0 || reg.Recovery != 100 {
		t.Errorf("stable profile: %+v", reg)
	}
}

func TestAssessRegulationUsesFacets(t *testing.T) {
	d := detailsWithPercentiles(nil)
	d.Raw[ocean.Neuroticism] = 1.0 // trait says calm...
	d.FacetDetail = map[ocean.Facet]ocean.FacetScore{
		// ...but covered anxiety facet is at the ceiling.
		ocean.N1Anxiety: {Score: 3.0, Confidence: 0.9, NItems: 5},
	}
	reg := AssessRegulation(d)
	if reg.Reactivity != 100 {
		t.Errorf("facet-driven reactivity = %v, want 100", reg.Reactivity)
	}
}

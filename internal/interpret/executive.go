package interpret

import (
	"math"
	"sort"

	"github.com/psymetric/ocean-engine/internal/ocean"
)

// Role reweighting tables: how strongly each trait's percentile counts
// toward fit for a role. Negative weights mean the role favors the low pole.
var roleTraitWeights = map[string]map[ocean.Trait]float64{
	"executive": {
		ocean.Openness:          0.25,
		ocean.Conscientiousness: 0.30,
		ocean.Extraversion:      0.25,
		ocean.Agreeableness:     0.10,
		ocean.Neuroticism:       -0.35,
	},
	"manager": {
		ocean.Conscientiousness: 0.30,
		ocean.Extraversion:      0.20,
		ocean.Agreeableness:     0.25,
		ocean.Neuroticism:       -0.25,
	},
	"analyst": {
		ocean.Openness:          0.30,
		ocean.Conscientiousness: 0.40,
		ocean.Extraversion:      -0.05,
		ocean.Neuroticism:       -0.15,
	},
	"sales": {
		ocean.Extraversion:      0.40,
		ocean.Agreeableness:     0.20,
		ocean.Conscientiousness: 0.15,
		ocean.Neuroticism:       -0.25,
	},
}

// RoleFit is a role-specific reweighting of a trait profile, 0–100.
type RoleFit struct {
	Role  string  `json:"role"`
	Score float64 `json:"score"`
}

// FitForRole projects a profile onto a role's trait weights. Percentiles
// feed the projection; a negative weight credits distance from the high
// pole. Unknown roles report a neutral 50.
func FitForRole(d ocean.ScoreDetails, role string) RoleFit {
	weights, ok := roleTraitWeights[role]
	if !ok {
		return RoleFit{Role: role, Score: 50}
	}
	sum, norm := 0.0, 0.0
	for t, w := range weights {
		p := float64(d.Percentile[t])
		if w < 0 {
			p = 100 - p
			w = -w
		}
		sum += p * w
		norm += w
	}
	if norm == 0 {
		return RoleFit{Role: role, Score: 50}
	}
	return RoleFit{Role: role, Score: math.Round(sum/norm*10) / 10}
}

// StyleProjection scores one leadership style or influence tactic, 0–100.
type StyleProjection struct {
	Name     string  `json:"name"`
	Strength float64 `json:"strength"`
}

type styleDef struct {
	name    string
	weights map[ocean.Trait]float64
}

var leadershipStyles = []styleDef{
	{"visionary", map[ocean.Trait]float64{ocean.Openness: 0.6, ocean.Extraversion: 0.4}},
	{"operational", map[ocean.Trait]float64{ocean.Conscientiousness: 0.7, ocean.Neuroticism: -0.3}},
	{"coaching", map[ocean.Trait]float64{ocean.Agreeableness: 0.6, ocean.Extraversion: 0.4}},
	{"steady-hand", map[ocean.Trait]float64{ocean.Neuroticism: -0.6, ocean.Conscientiousness: 0.4}},
}

var influenceTactics = []styleDef{
	{"rational_persuasion", map[ocean.Trait]float64{ocean.Conscientiousness: 0.5, ocean.Openness: 0.5}},
	{"inspirational_appeal", map[ocean.Trait]float64{ocean.Extraversion: 0.5, ocean.Openness: 0.5}},
	{"collaboration", map[ocean.Trait]float64{ocean.Agreeableness: 0.7, ocean.Extraversion: 0.3}},
	{"assertive_pressure", map[ocean.Trait]float64{ocean.Extraversion: 0.5, ocean.Agreeableness: -0.5}},
}

// LeadershipStyles projects the profile onto the style definitions, sorted
// strongest first.
func LeadershipStyles(d ocean.ScoreDetails) []StyleProjection {
	return project(d, leadershipStyles)
}

// InfluenceTactics projects the profile onto the influence-tactic
// definitions, sorted strongest first.
func InfluenceTactics(d ocean.ScoreDetails) []StyleProjection {
	return project(d, influenceTactics)
}

func project(d ocean.ScoreDetails, defs []styleDef) []StyleProjection {
	out := make([]StyleProjection, 0, len(defs))
	for _, def := range defs {
		sum, norm := 0.0, 0.0
		for t, w := range def.weights {
			p := float64(d.Percentile[t])
			if w < 0 {
				p = 100 - p
				w = -w
			}
			sum += p * w
			norm += w
		}
		out = append(out, StyleProjection{Name: def.name, Strength: math.Round(sum/norm*10) / 10})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Strength > out[j].Strength })
	return out
}

// TeamProfile estimates emergent properties of a group from its members'
// profiles: per-trait means and spread plus a few derived indices.
type TeamProfile struct {
	Size       int                     `json:"size"`
	MeanRaw    map[ocean.Trait]float64 `json:"mean_raw"`
	SpreadRaw  map[ocean.Trait]float64 `json:"spread_raw"`
	Innovation float64                 `json:"innovation"`
	Execution  float64                 `json:"execution"`
	Cohesion   float64                 `json:"cohesion"`
	Resilience float64                 `json:"resilience"`
}

// AssessTeam aggregates member profiles into team-level estimates. Indices
// are 0–100: innovation rewards mean openness plus trait diversity,
// execution tracks conscientiousness, cohesion tracks agreeableness
// discounted by its spread, and resilience tracks low mean neuroticism.
// An empty member list yields a zero-value profile (Size 0).
func AssessTeam(members []ocean.ScoreDetails) TeamProfile {
	tp := TeamProfile{Size: len(members)}
	if len(members) == 0 {
		return tp
	}
	tp.MeanRaw = make(map[ocean.Trait]float64, len(ocean.AllTraits))
	tp.SpreadRaw = make(map[ocean.Trait]float64, len(ocean.AllTraits))

	for _, t := range ocean.AllTraits {
		sum := 0.0
		for _, m := range members {
			sum += m.Raw[t]
		}
		mean := sum / float64(len(members))
		varSum := 0.0
		for _, m := range members {
			d := m.Raw[t] - mean
			varSum += d * d
		}
		tp.MeanRaw[t] = mean
		tp.SpreadRaw[t] = math.Sqrt(varSum / float64(len(members)))
	}

	// Scale a 1–5 mean onto 0–100.
	scale := func(v float64) float64 { return (v - 1) / 4 * 100 }
	diversity := 0.0
	for _, t := range ocean.AllTraits {
		diversity += tp.SpreadRaw[t]
	}
	diversity /= float64(len(ocean.AllTraits))

	tp.Innovation = clamp100(scale(tp.MeanRaw[ocean.Openness])*0.8 + diversity*25)
	tp.Execution = clamp100(scale(tp.MeanRaw[ocean.Conscientiousness]))
	tp.Cohesion = clamp100(scale(tp.MeanRaw[ocean.Agreeableness]) - tp.SpreadRaw[ocean.Agreeableness]*20)
	tp.Resilience = clamp100(100 - scale(tp.MeanRaw[ocean.Neuroticism]))
	return tp
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return math.Round(v*10) / 10
}

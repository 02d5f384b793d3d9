package interpret

import (
	"math"

	"github.com/psymetric/ocean-engine/internal/ocean"
)

// Manifestation classifies how far a trait sits from the population center.
type Manifestation string

const (
	ManifestationNone        Manifestation = "none"
	ManifestationHighExtreme Manifestation = "high_extreme"
	ManifestationLowExtreme  Manifestation = "low_extreme"
	ManifestationWarning     Manifestation = "warning"
)

// RiskLevel is the banded risk reading for a trait or a whole profile.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Extreme classification cut points on the raw 1–5 scale. The warning band
// flags scores approaching the high extreme before they cross it.
const (
	highExtremeThreshold = 4.5
	lowExtremeThreshold  = 1.5
	warningThreshold     = 3.8
)

var riskLevelWeights = map[RiskLevel]float64{
	RiskLow:      1,
	RiskModerate: 2,
	RiskHigh:     3,
	RiskCritical: 4,
}

// TraitRisk is the dark-side reading for a single trait.
type TraitRisk struct {
	Trait         ocean.Trait   `json:"trait"`
	Score         float64       `json:"score"`
	Manifestation Manifestation `json:"manifestation_type"`
	RiskScore     float64       `json:"risk_score"`
	Level         RiskLevel     `json:"risk_level"`
	Derailers     []string      `json:"derailers,omitempty"`
	Compensatory  []string      `json:"compensatory_behaviors,omitempty"`
}

// RiskProfile is the full dark-side report. It is always recomputed from a
// score set plus a stress level; it is never mutated independently.
type RiskProfile struct {
	StressLevel         int                       `json:"stress_level"`
	Traits              map[ocean.Trait]TraitRisk `json:"traits"`
	Overall             RiskLevel                 `json:"overall_risk"`
	StressAmplification float64                   `json:"stress_amplification"`
	Interventions       []string                  `json:"interventions,omitempty"`
}

// AssessRisk derives the dark-side risk profile from raw trait scores, a
// self-reported stress level (1–10, clamped), and optional observer ratings.
// When an observer rating exists for a trait, the classified score is the
// mean of self and observer values.
//
// Per trait: riskScore = |score−3| × (stress/5), banded at 2.0 (critical),
// 1.5 (high), and 1.0 (moderate). The overall level is the mean of the
// per-trait level weights, banded at 3.5/2.5/1.5. StressAmplification,
// 1 + (stress/10)×2, characterizes volatility under rising stress and is
// reported alongside the bands without feeding back into them.
func AssessRisk(d ocean.ScoreDetails, stressLevel int, observer map[ocean.Trait]float64) RiskProfile {
	if stressLevel < 1 {
		stressLevel = 1
	}
	if stressLevel > 10 {
		stressLevel = 10
	}

	profile := RiskProfile{
		StressLevel:         stressLevel,
		Traits:              make(map[ocean.Trait]TraitRisk, len(ocean.AllTraits)),
		StressAmplification: 1.0 + (float64(stressLevel)/10.0)*2.0,
	}

	weightSum := 0.0
	for _, t := range ocean.AllTraits {
		score := clampRaw(d.Raw[t])
		if obs, ok := observer[t]; ok {
			score = (score + clampRaw(obs)) / 2
		}

		tr := TraitRisk{Trait: t, Score: score}
		switch {
		case score >= highExtremeThreshold:
			tr.Manifestation = ManifestationHighExtreme
		case score <= lowExtremeThreshold:
			tr.Manifestation = ManifestationLowExtreme
		case score >= warningThreshold:
			tr.Manifestation = ManifestationWarning
		default:
			tr.Manifestation = ManifestationNone
		}

		tr.RiskScore = math.Abs(score-3) * (float64(stressLevel) / 5.0)
		tr.Level = bandRisk(tr.RiskScore)

		if tr.Manifestation == ManifestationHighExtreme || tr.Manifestation == ManifestationWarning {
			tr.Derailers = derailers[t].high
			tr.Compensatory = compensatory[t].high
		} else if tr.Manifestation == ManifestationLowExtreme {
			tr.Derailers = derailers[t].low
			tr.Compensatory = compensatory[t].low
		}

		profile.Traits[t] = tr
		weightSum += riskLevelWeights[tr.Level]
	}

	profile.Overall = bandOverall(weightSum / float64(len(ocean.AllTraits)))
	profile.Interventions = interventionPlan(profile)
	return profile
}

func bandRisk(score float64) RiskLevel {
	switch {
	case score >= 2.0:
		return RiskCritical
	case score >= 1.5:
		return RiskHigh
	case score >= 1.0:
		return RiskModerate
	default:
		return RiskLow
	}
}

func bandOverall(meanWeight float64) RiskLevel {
	switch {
	case meanWeight >= 3.5:
		return RiskCritical
	case meanWeight >= 2.5:
		return RiskHigh
	case meanWeight >= 1.5:
		return RiskModerate
	default:
		return RiskLow
	}
}

func clampRaw(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

type poleTexts struct {
	high []string
	low  []string
}

// Behavioral derailers by trait and extreme direction.
var derailers = map[ocean.Trait]poleTexts{
	ocean.Openness: {
		high: []string{"eccentric ideation", "chasing novelty over delivery"},
		low:  []string{"rigid thinking", "dismissal of new approaches"},
	},
	ocean.Conscientiousness: {
		high: []string{"perfectionism", "micromanagement"},
		low:  []string{"impulsive decisions", "unreliable follow-through"},
	},
	ocean.Extraversion: {
		high: []string{"attention seeking", "dominating discussions"},
		low:  []string{"withdrawal from stakeholders", "under-communication"},
	},
	ocean.Agreeableness: {
		high: []string{"conflict avoidance", "over-accommodation"},
		low:  []string{"abrasive confrontation", "distrust of collaborators"},
	},
	ocean.Neuroticism: {
		high: []string{"volatility under pressure", "catastrophizing"},
		low:  []string{"underestimating real threats", "complacent risk-taking"},
	},
}

// Compensatory behaviors by trait and extreme direction: what the person
// can deliberately practice to offset the derailer.
var compensatory = map[ocean.Trait]poleTexts{
	ocean.Openness: {
		high: []string{"commit each idea to a written go/no-go review", "pair with a delivery-focused colleague"},
		low:  []string{"trial one unfamiliar method per quarter", "seek out a devil's-advocate reviewer"},
	},
	ocean.Conscientiousness: {
		high: []string{"define explicit good-enough criteria before starting", "delegate verification tasks"},
		low:  []string{"externalize commitments into a shared tracker", "time-box decisions with a checklist"},
	},
	ocean.Extraversion: {
		high: []string{"budget airtime in meetings", "solicit written input before discussion"},
		low:  []string{"schedule recurring stakeholder check-ins", "prepare talking points in advance"},
	},
	ocean.Agreeableness: {
		high: []string{"rehearse delivering unwelcome news", "set non-negotiable boundaries in writing"},
		low:  []string{"open negotiations by naming shared goals", "ask clarifying questions before disagreeing"},
	},
	ocean.Neuroticism: {
		high: []string{"use structured breathing before high-stakes events", "separate facts from projections in writing"},
		low:  []string{"run premortems on major decisions", "invite risk reviews from cautious colleagues"},
	},
}

// interventionPlan assembles the deterministic intervention list for a
// profile: one entry per trait at high or critical risk, plus a profile-wide
// recommendation when the overall band warrants it.
func interventionPlan(p RiskProfile) []string {
	var out []string
	for _, t := range ocean.AllTraits {
		tr := p.Traits[t]
		if tr.Level != RiskHigh && tr.Level != RiskCritical {
			continue
		}
		switch tr.Manifestation {
		case ManifestationHighExtreme, ManifestationWarning:
			out = append(out, "coaching focus: moderate elevated "+t.String()+" expression under stress")
		case ManifestationLowExtreme:
			out = append(out, "coaching focus: build compensating routines for low "+t.String())
		}
	}
	switch p.Overall {
	case RiskCritical:
		out = append(out, "escalate: schedule structured debrief with a qualified practitioner")
	case RiskHigh:
		out = append(out, "recommend stress-management program and 30-day recheck")
	}
	return out
}
